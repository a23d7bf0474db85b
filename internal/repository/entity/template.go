package entity

// ItemTemplate 物品模板 item_template 表
// NAME/TYPE 列为历史遗留的大写列名，JSON 序列化保持一致。
type ItemTemplate struct {
	ID          int    `gorm:"column:id;primaryKey" json:"id"`
	Name        string `gorm:"column:NAME" json:"NAME"`
	Type        int    `gorm:"column:TYPE" json:"TYPE"`
	Gender      int    `gorm:"column:gender" json:"gender"`
	Description string `gorm:"column:description" json:"description"`
	Level       int    `gorm:"column:level" json:"level"`
	IconID      int    `gorm:"column:icon_id" json:"icon_id"`
	Part        int    `gorm:"column:part" json:"part"`
	Gold        int    `gorm:"column:gold" json:"gold"`
	Gem         int    `gorm:"column:gem" json:"gem"`
	Head        int    `gorm:"column:head" json:"head"`
	Body        int    `gorm:"column:body" json:"body"`
	Leg         int    `gorm:"column:leg" json:"leg"`
}

// TableName 指定表名
func (ItemTemplate) TableName() string {
	return "item_template"
}

// ItemOptionTemplate 物品属性模板 item_option_template 表
type ItemOptionTemplate struct {
	ID   int    `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:NAME" json:"NAME"`
	Type int    `gorm:"column:type" json:"type"`
}

// TableName 指定表名
func (ItemOptionTemplate) TableName() string {
	return "item_option_template"
}

// SkillTemplate 技能模板 skill_template 表
type SkillTemplate struct {
	ID       int    `gorm:"column:id;primaryKey" json:"id"`
	NClassID int    `gorm:"column:nclass_id" json:"nclass_id"`
	Name     string `gorm:"column:NAME" json:"NAME"`
}

// TableName 指定表名
func (SkillTemplate) TableName() string {
	return "skill_template"
}

// MapTemplate 地图模板 map_template 表
type MapTemplate struct {
	ID   int    `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:NAME" json:"NAME"`
}

// TableName 指定表名
func (MapTemplate) TableName() string {
	return "map_template"
}
