package categories

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iori_nav/api/v1/middleware"
	"iori_nav/internal/homecache"
	"iori_nav/internal/httpx"
	"iori_nav/internal/model"
	"iori_nav/internal/sanitize"
)

// Handler 分类查询与后台维护
type Handler struct {
	db    *gorm.DB
	cache *homecache.Gateway
}

// NewHandler creates a categories handler
func NewHandler(db *gorm.DB, cache *homecache.Gateway) *Handler {
	return &Handler{db: db, cache: cache}
}

// List returns all categories ordered for display. Anonymous viewers only
// see public categories; an admin session includes the private ones.
func (h *Handler) List(c *gin.Context) {
	query := h.db.Model(&model.Category{})
	if !middleware.IsAdmin(c) {
		query = query.Where("is_private = 0")
	}

	var categories []model.Category
	if err := query.Order("sort_order ASC, id ASC").Find(&categories).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to list categories", err))
		return
	}
	httpx.OK(c, categories)
}

// CategoryRequest represents create/update request body
type CategoryRequest struct {
	Catelog   string `json:"catelog" binding:"required"`
	ParentID  int    `json:"parent_id"`
	SortOrder int    `json:"sort_order"`
	IsPrivate int    `json:"is_private"`
}

// Create adds a category
func (h *Handler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid request body"))
		return
	}
	if req.SortOrder == 0 {
		req.SortOrder = sanitize.DefaultSortOrder
	}
	if req.ParentID != 0 && !h.categoryExists(req.ParentID) {
		httpx.FailErr(c, httpx.ErrParamInvalid("parent category does not exist"))
		return
	}

	category := model.Category{
		Catelog:   req.Catelog,
		ParentID:  req.ParentID,
		SortOrder: req.SortOrder,
		IsPrivate: req.IsPrivate,
	}
	if err := h.db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httpx.FailErr(c, httpx.ErrStateConflict("category name already exists"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to create category", err))
		return
	}

	h.cache.PurgeAsync()
	httpx.OK(c, category)
}

// Update modifies a category. Renaming also rewrites the denormalized
// catelog_name column on every referencing site.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid category id"))
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid request body"))
		return
	}
	if req.ParentID == id {
		httpx.FailErr(c, httpx.ErrParamInvalid("category cannot be its own parent"))
		return
	}

	var category model.Category
	if err := h.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("category not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to load category", err))
		return
	}

	renamed := category.Catelog != req.Catelog
	category.Catelog = req.Catelog
	category.ParentID = req.ParentID
	category.SortOrder = req.SortOrder
	category.IsPrivate = req.IsPrivate

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&category).Error; err != nil {
			return err
		}
		if renamed {
			return tx.Model(&model.Site{}).
				Where("catelog_id = ?", category.ID).
				Update("catelog_name", category.Catelog).Error
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httpx.FailErr(c, httpx.ErrStateConflict("category name already exists"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to update category", err))
		return
	}

	h.cache.PurgeAsync()
	httpx.OK(c, category)
}

// Delete removes a category. Refused while sites or child categories still
// reference it, so bookmarks can never silently lose their grouping.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid category id"))
		return
	}

	var siteCount int64
	if err := h.db.Model(&model.Site{}).Where("catelog_id = ?", id).Count(&siteCount).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to count category sites", err))
		return
	}
	if siteCount > 0 {
		httpx.FailErr(c, httpx.ErrStateConflict("category still has bookmarks"))
		return
	}

	var childCount int64
	if err := h.db.Model(&model.Category{}).Where("parent_id = ?", id).Count(&childCount).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to count child categories", err))
		return
	}
	if childCount > 0 {
		httpx.FailErr(c, httpx.ErrStateConflict("category still has sub-categories"))
		return
	}

	result := h.db.Delete(&model.Category{}, id)
	if result.Error != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to delete category", result.Error))
		return
	}
	if result.RowsAffected == 0 {
		httpx.FailErr(c, httpx.ErrNotFound("category not found"))
		return
	}

	h.cache.PurgeAsync()
	httpx.OK(c, nil)
}

func (h *Handler) categoryExists(id int) bool {
	var count int64
	h.db.Model(&model.Category{}).Where("id = ?", id).Count(&count)
	return count > 0
}
