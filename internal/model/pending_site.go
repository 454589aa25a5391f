package model

import "gorm.io/datatypes"

// PendingSite 访客提交、等待管理员审核的书签
type PendingSite struct {
	BaseModel
	Ticket      string `gorm:"type:varchar(36);uniqueIndex:uk_pending_ticket" json:"ticket"` // 提交凭据，访客可凭此查询审核进度
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	URL         string `gorm:"type:varchar(2048)" json:"url"`
	Logo        string `gorm:"type:varchar(2048)" json:"logo"`
	Desc        string `gorm:"column:desc;type:text" json:"desc"`
	CatelogID   int    `gorm:"column:catelog_id;index" json:"catelog_id"`
	CatelogName string `gorm:"column:catelog_name;type:varchar(255)" json:"catelog_name"`
	// 提交方元数据（IP / UA / Referer），仅后台展示
	Extra datatypes.JSON `gorm:"column:extra" json:"extra"`
}

// TableName 指定表名
func (PendingSite) TableName() string {
	return "pending_sites"
}
