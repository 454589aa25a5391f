package sites

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iori_nav/internal/homecache"
	"iori_nav/internal/httpx"
	"iori_nav/internal/model"
	"iori_nav/internal/sanitize"
)

// Handler 书签后台 CRUD，路由挂在历史路径 /api/config 下
type Handler struct {
	db    *gorm.DB
	cache *homecache.Gateway
}

// NewHandler creates a sites handler
func NewHandler(db *gorm.DB, cache *homecache.Gateway) *Handler {
	return &Handler{db: db, cache: cache}
}

// SiteRequest represents create/update request body
type SiteRequest struct {
	Name      string `json:"name" binding:"required"`
	URL       string `json:"url"`
	Logo      string `json:"logo"`
	Desc      string `json:"desc"`
	CatelogID int    `json:"catelog_id"`
	SortOrder int    `json:"sort_order"`
	IsPrivate int    `json:"is_private"`
}

// List returns sites with pagination, optional keyword search over
// name/url/desc and an optional category filter.
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 20
	}

	query := h.db.Model(&model.Site{})
	if keyword := c.Query("keyword"); keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("name LIKE ? OR url LIKE ? OR `desc` LIKE ?", like, like, like)
	}
	if catalogID := c.Query("catelog_id"); catalogID != "" {
		query = query.Where("catelog_id = ?", catalogID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to count sites", err))
		return
	}

	var sites []model.Site
	err := query.Order("sort_order ASC, create_time DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&sites).Error
	if err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to list sites", err))
		return
	}

	httpx.OKItems(c, sites, total, page, pageSize)
}

// Create adds a bookmark
func (h *Handler) Create(c *gin.Context) {
	var req SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid request body"))
		return
	}

	site := model.Site{
		Name:      req.Name,
		URL:       req.URL,
		Logo:      req.Logo,
		Desc:      req.Desc,
		CatelogID: req.CatelogID,
		SortOrder: req.SortOrder,
		IsPrivate: req.IsPrivate,
	}
	if site.SortOrder == 0 {
		site.SortOrder = sanitize.DefaultSortOrder
	}
	if name, appErr := h.resolveCatalogName(req.CatelogID); appErr != nil {
		httpx.FailErr(c, appErr)
		return
	} else {
		site.CatelogName = name
	}

	if err := h.db.Create(&site).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to create site", err))
		return
	}

	h.cache.PurgeAsync()
	httpx.OK(c, site)
}

// Update modifies a bookmark
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid site id"))
		return
	}

	var req SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid request body"))
		return
	}

	var site model.Site
	if err := h.db.First(&site, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("site not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to load site", err))
		return
	}

	site.Name = req.Name
	site.URL = req.URL
	site.Logo = req.Logo
	site.Desc = req.Desc
	site.CatelogID = req.CatelogID
	site.SortOrder = req.SortOrder
	site.IsPrivate = req.IsPrivate
	if name, appErr := h.resolveCatalogName(req.CatelogID); appErr != nil {
		httpx.FailErr(c, appErr)
		return
	} else {
		site.CatelogName = name
	}

	if err := h.db.Save(&site).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to update site", err))
		return
	}

	h.cache.PurgeAsync()
	httpx.OK(c, site)
}

// Delete removes a bookmark
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid site id"))
		return
	}

	result := h.db.Delete(&model.Site{}, id)
	if result.Error != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to delete site", result.Error))
		return
	}
	if result.RowsAffected == 0 {
		httpx.FailErr(c, httpx.ErrNotFound("site not found"))
		return
	}

	h.cache.PurgeAsync()
	httpx.OK(c, nil)
}

// resolveCatalogName 冗余 catelog_name 在写入时解析，保证首页渲染不回表
func (h *Handler) resolveCatalogName(catelogID int) (string, *httpx.AppError) {
	if catelogID == 0 {
		return "", nil
	}
	var category model.Category
	if err := h.db.First(&category, catelogID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", httpx.ErrParamInvalid("category does not exist")
		}
		return "", httpx.ErrDatabaseError("failed to load category", err)
	}
	return category.Catelog, nil
}
