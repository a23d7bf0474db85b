package entity

// NpcTemplate 游戏数据库 npc_template 表
type NpcTemplate struct {
	ID   int    `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:NAME" json:"NAME"`
}

// TableName 指定表名
func (NpcTemplate) TableName() string {
	return "npc_template"
}

// Shop 游戏数据库 shop 表
type Shop struct {
	ID    int `gorm:"column:id;primaryKey" json:"id"`
	NpcID int `gorm:"column:npc_id" json:"npc_id"`

	NpcTemplate *NpcTemplate `gorm:"foreignKey:NpcID" json:"npc_template,omitempty"`
}

// TableName 指定表名
func (Shop) TableName() string {
	return "shop"
}

// TabShop 游戏数据库 tab_shop 表
// items 列保存商品列表的 JSON 文本（ShopItem 列表）。
type TabShop struct {
	ID       int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ShopID   int    `gorm:"column:shop_id" json:"shop_id"`
	TabName  string `gorm:"column:tab_name" json:"tab_name"`
	TabIndex int    `gorm:"column:tab_index" json:"tab_index"`
	Items    string `gorm:"column:items" json:"items"`

	Shop *Shop `gorm:"foreignKey:ShopID" json:"shop,omitempty"`
}

// TableName 指定表名
func (TabShop) TableName() string {
	return "tab_shop"
}
