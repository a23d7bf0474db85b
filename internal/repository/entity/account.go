package entity

import "time"

// Account 玩家账号 account 表
// vang 为 BigInt，响应中序列化为字符串避免精度丢失。
type Account struct {
	ID             int        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username       string     `gorm:"column:username" json:"username"`
	Password       string     `gorm:"column:password" json:"password,omitempty"`
	Email          *string    `gorm:"column:email" json:"email"`
	Vang           int64      `gorm:"column:vang" json:"vang,string"`
	Cash           int        `gorm:"column:cash" json:"cash"`
	Danap          int        `gorm:"column:danap" json:"danap"`
	Ban            bool       `gorm:"column:ban" json:"ban"`
	Active         bool       `gorm:"column:active" json:"active"`
	IsAdmin        bool       `gorm:"column:is_admin" json:"is_admin"`
	CreateTime     *time.Time `gorm:"column:create_time" json:"create_time"`
	LastTimeLogin  *time.Time `gorm:"column:last_time_login" json:"last_time_login"`
	LastTimeLogout *time.Time `gorm:"column:last_time_logout" json:"last_time_logout"`
	IPAddress      *string    `gorm:"column:ip_address" json:"ip_address,omitempty"`

	Player *Player `gorm:"foreignKey:AccountID" json:"player,omitempty"`
}

// TableName 指定表名
func (Account) TableName() string {
	return "account"
}

// Player 玩家角色 player 表
type Player struct {
	ID        int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AccountID int    `gorm:"column:account_id" json:"account_id"`
	Name      string `gorm:"column:name" json:"name"`
	Gender    int    `gorm:"column:gender" json:"gender"`
}

// TableName 指定表名
func (Player) TableName() string {
	return "player"
}
