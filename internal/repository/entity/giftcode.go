package entity

import "time"

// Giftcode 游戏数据库 giftcode 表
// detail 列保存奖励明细的 JSON 文本（DetailItem 列表）。
type Giftcode struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Code      string    `gorm:"column:code" json:"code"`
	CountLeft int       `gorm:"column:count_left" json:"count_left"`
	Detail    string    `gorm:"column:detail" json:"detail"`
	Expired   time.Time `gorm:"column:expired" json:"expired"`
	Type      int       `gorm:"column:type" json:"type"`
}

// TableName 指定表名
func (Giftcode) TableName() string {
	return "giftcode"
}
