package entity

// BossData 游戏数据库 boss_data 表
// 复合主键 (id, level_index)，同一 Boss 的多个等级共用 id。
// 编码列（hp/outfit/map_join/skills/text_*/rewards）保存 JSON 文本，
// 由 codec 包负责解析。
type BossData struct {
	ID                    int     `gorm:"column:id;primaryKey" json:"id"`
	LevelIndex            int     `gorm:"column:level_index;primaryKey" json:"level_index"`
	BossName              string  `gorm:"column:boss_name" json:"boss_name"`
	DisplayName           string  `gorm:"column:display_name" json:"display_name"`
	LevelName             string  `gorm:"column:level_name" json:"level_name"`
	Gender                int     `gorm:"column:gender" json:"gender"`
	Dame                  int64   `gorm:"column:dame" json:"dame,string"`
	HP                    string  `gorm:"column:hp" json:"hp"`
	Outfit                string  `gorm:"column:outfit" json:"outfit"`
	MapJoin               string  `gorm:"column:map_join" json:"map_join"`
	AppearType            string  `gorm:"column:appear_type" json:"appear_type"`
	SecondsRest           int     `gorm:"column:seconds_rest" json:"seconds_rest"`
	Skills                string  `gorm:"column:skills" json:"skills"`
	TextStart             string  `gorm:"column:text_start" json:"text_start"`
	TextMid               string  `gorm:"column:text_mid" json:"text_mid"`
	TextEnd               string  `gorm:"column:text_end" json:"text_end"`
	Rewards               string  `gorm:"column:rewards" json:"rewards"`
	BossesAppearTogether  *string `gorm:"column:bosses_appear_together" json:"bosses_appear_together"`
	IsNotifyDisabled      bool    `gorm:"column:is_notify_disabled" json:"is_notify_disabled"`
	IsZone01SpawnDisabled bool    `gorm:"column:is_zone01_spawn_disabled" json:"is_zone01_spawn_disabled"`
	SpecialClass          *string `gorm:"column:special_class" json:"special_class"`
	AutoSpawn             bool    `gorm:"column:auto_spawn" json:"auto_spawn"`
}

// TableName 指定表名
func (BossData) TableName() string {
	return "boss_data"
}
