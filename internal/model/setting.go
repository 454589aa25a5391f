package model

// Setting 后台可配置的 key/value 展示项，value 一律按字符串存储，
// 布尔值编码为字面量 "true"
type Setting struct {
	Key   string `gorm:"primaryKey;type:varchar(128)" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

// TableName 指定表名
func (Setting) TableName() string {
	return "settings"
}
