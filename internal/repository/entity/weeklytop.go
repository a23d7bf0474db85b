package entity

// WeeklyTopType 周排行榜类型 weekly_top_types 表
type WeeklyTopType struct {
	ID         int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"column:name" json:"name"`
	OrderIndex int    `gorm:"column:order_index" json:"order_index"`
	ColumnName string `gorm:"column:column_name" json:"column_name"`

	WeeklyTopRewards []WeeklyTopReward `gorm:"foreignKey:TopTypeID" json:"weekly_top_rewards,omitempty"`
}

// TableName 指定表名
func (WeeklyTopType) TableName() string {
	return "weekly_top_types"
}

// WeeklyTopReward 周排行榜奖励 weekly_top_rewards 表
// details 列保存奖励明细的 JSON 文本（DetailItem 列表）。
type WeeklyTopReward struct {
	ID          int     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TopTypeID   int     `gorm:"column:top_type_id" json:"top_type_id"`
	RankFrom    int     `gorm:"column:rank_from" json:"rank_from"`
	RankTo      int     `gorm:"column:rank_to" json:"rank_to"`
	Details     string  `gorm:"column:details" json:"details"`
	Description *string `gorm:"column:description" json:"description"`
}

// TableName 指定表名
func (WeeklyTopReward) TableName() string {
	return "weekly_top_rewards"
}
