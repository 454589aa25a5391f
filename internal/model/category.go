package model

// Category 书签分类，parent_id 形成树结构（0 = 根分类）
type Category struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Catelog   string `gorm:"type:varchar(255);not null;uniqueIndex:uk_category_catelog" json:"catelog"` // 分类名（历史拼写，与线上表结构保持一致）
	ParentID  int    `gorm:"column:parent_id;default:0;index" json:"parent_id"`
	SortOrder int    `gorm:"column:sort_order;default:9999" json:"sort_order"`
	IsPrivate int    `gorm:"column:is_private;default:0" json:"is_private"` // 1 = 仅管理员可见
}

// TableName 指定表名
func (Category) TableName() string {
	return "category"
}
