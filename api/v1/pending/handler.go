package pending

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"iori_nav/internal/config"
	"iori_nav/internal/homecache"
	"iori_nav/internal/httpx"
	"iori_nav/internal/model"
	"iori_nav/internal/sanitize"
)

// Handler 公开提交与后台审核
type Handler struct {
	db    *gorm.DB
	cache *homecache.Gateway
	cfg   *config.Config
}

// NewHandler creates a pending-sites handler
func NewHandler(db *gorm.DB, cache *homecache.Gateway, cfg *config.Config) *Handler {
	return &Handler{db: db, cache: cache, cfg: cfg}
}

// SubmitRequest represents a public submission body
type SubmitRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	URL       string `json:"url" binding:"required"`
	Logo      string `json:"logo"`
	Desc      string `json:"desc" binding:"max=500"`
	CatelogID int    `json:"catelog_id"`
	Catelog   string `json:"catelog"`
}

// submitterMeta 提交方元数据，仅后台审核页展示
type submitterMeta struct {
	IP      string `json:"ip"`
	UA      string `json:"ua"`
	Referer string `json:"referer"`
}

// Submit accepts a visitor-submitted bookmark into the moderation queue.
// Disabled unless public submission is switched on in config.
func (h *Handler) Submit(c *gin.Context) {
	if !h.cfg.Site.PublicSubmission {
		httpx.FailErr(c, httpx.ErrForbidden("public submission is disabled"))
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid request body"))
		return
	}

	safeURL := sanitize.SanitizeURL(req.URL)
	if safeURL == "" {
		httpx.FailErr(c, httpx.ErrParamInvalid("url must be a valid http(s) link"))
		return
	}

	row := model.PendingSite{
		Ticket:      uuid.NewString(),
		Name:        req.Name,
		URL:         safeURL,
		Logo:        sanitize.SanitizeURL(req.Logo),
		Desc:        req.Desc,
		CatelogID:   req.CatelogID,
		CatelogName: req.Catelog,
	}

	// 提交时分类可以只给名字，能对上就顺手补全 id
	if row.CatelogID == 0 && row.CatelogName != "" {
		var category model.Category
		if err := h.db.Where("catelog = ?", row.CatelogName).First(&category).Error; err == nil {
			row.CatelogID = category.ID
		}
	} else if row.CatelogID != 0 && row.CatelogName == "" {
		var category model.Category
		if err := h.db.First(&category, row.CatelogID).Error; err == nil {
			row.CatelogName = category.Catelog
		}
	}

	meta, err := json.Marshal(submitterMeta{
		IP:      c.ClientIP(),
		UA:      c.Request.UserAgent(),
		Referer: c.Request.Referer(),
	})
	if err == nil {
		row.Extra = datatypes.JSON(meta)
	}

	if err := h.db.Create(&row).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to save submission", err))
		return
	}

	httpx.OK(c, gin.H{"ticket": row.Ticket})
}

// List returns the moderation queue, newest first
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 20
	}

	var total int64
	if err := h.db.Model(&model.PendingSite{}).Count(&total).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to count submissions", err))
		return
	}

	var rows []model.PendingSite
	err := h.db.Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to list submissions", err))
		return
	}

	httpx.OKItems(c, rows, total, page, pageSize)
}

// Approve promotes a submission into the live bookmark list and removes it
// from the queue in one transaction.
func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid submission id"))
		return
	}

	var row model.PendingSite
	if err := h.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("submission not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to load submission", err))
		return
	}

	site := model.Site{
		Name:        row.Name,
		URL:         row.URL,
		Logo:        row.Logo,
		Desc:        row.Desc,
		CatelogID:   row.CatelogID,
		CatelogName: row.CatelogName,
		SortOrder:   sanitize.DefaultSortOrder,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&site).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PendingSite{}, row.ID).Error
	})
	if err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to approve submission", err))
		return
	}

	h.cache.PurgeAsync()
	httpx.OK(c, site)
}

// Reject drops a submission from the queue
func (h *Handler) Reject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid submission id"))
		return
	}

	result := h.db.Delete(&model.PendingSite{}, id)
	if result.Error != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to reject submission", result.Error))
		return
	}
	if result.RowsAffected == 0 {
		httpx.FailErr(c, httpx.ErrNotFound("submission not found"))
		return
	}

	httpx.OK(c, nil)
}
