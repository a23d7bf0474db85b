package entity

import "time"

// HistoryTransaction 交易记录 history_transaction 表
type HistoryTransaction struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Player1     string    `gorm:"column:player_1" json:"player_1"`
	Player2     string    `gorm:"column:player_2" json:"player_2"`
	ItemPlayer1 string    `gorm:"column:item_player_1" json:"item_player_1"`
	ItemPlayer2 string    `gorm:"column:item_player_2" json:"item_player_2"`
	TimeTran    time.Time `gorm:"column:time_tran" json:"time_tran"`
}

// TableName 指定表名
func (HistoryTransaction) TableName() string {
	return "history_transaction"
}
