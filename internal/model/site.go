package model

import "time"

// Site 一条书签记录，属于且仅属于一个分类
type Site struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	URL       string `gorm:"type:varchar(2048)" json:"url"`
	Logo      string `gorm:"type:varchar(2048)" json:"logo"`
	Desc      string `gorm:"column:desc;type:text" json:"desc"`
	CatelogID int    `gorm:"column:catelog_id;index:idx_sites_catelog_id" json:"catelog_id"`
	// 所属分类名的冗余缓存，首次迁移时由 Schema Guard 回填
	CatelogName string    `gorm:"column:catelog_name;type:varchar(255)" json:"catelog_name"`
	SortOrder   int       `gorm:"column:sort_order;default:9999;index:idx_sites_sort_order" json:"sort_order"`
	IsPrivate   int       `gorm:"column:is_private;default:0" json:"is_private"`
	CreateTime  time.Time `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime  time.Time `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

// TableName 指定表名
func (Site) TableName() string {
	return "sites"
}
