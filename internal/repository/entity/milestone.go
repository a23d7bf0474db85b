package entity

// MocNap 充值里程碑 moc_nap 表
type MocNap struct {
	ID             int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Info           string `gorm:"column:info" json:"info"`
	RequiredAmount int    `gorm:"column:required_amount" json:"required_amount"`
	Detail         string `gorm:"column:detail" json:"detail"`
}

// TableName 指定表名
func (MocNap) TableName() string {
	return "moc_nap"
}

// MocOnline 在线时长里程碑 moc_online 表
type MocOnline struct {
	ID             int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Info           string `gorm:"column:info" json:"info"`
	RequiredOnline int    `gorm:"column:required_online" json:"required_online"`
	Detail         string `gorm:"column:detail" json:"detail"`
}

// TableName 指定表名
func (MocOnline) TableName() string {
	return "moc_online"
}

// MocTieuTien 消费里程碑 moc_tieutien 表
type MocTieuTien struct {
	ID            int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Info          string `gorm:"column:info" json:"info"`
	RequiredSpend int    `gorm:"column:required_spend" json:"required_spend"`
	Detail        string `gorm:"column:detail" json:"detail"`
}

// TableName 指定表名
func (MocTieuTien) TableName() string {
	return "moc_tieutien"
}

// GoiQua 礼包 goi_qua 表
type GoiQua struct {
	ID             int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Info           string `gorm:"column:info" json:"info"`
	RequiredAmount int    `gorm:"column:required_amount" json:"required_amount"`
	Detail         string `gorm:"column:detail" json:"detail"`
}

// TableName 指定表名
func (GoiQua) TableName() string {
	return "goi_qua"
}
