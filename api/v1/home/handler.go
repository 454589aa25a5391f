package home

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"iori_nav/api/v1/middleware"
	"iori_nav/internal/catalog"
	"iori_nav/internal/config"
	"iori_nav/internal/cookieutil"
	"iori_nav/internal/homecache"
	"iori_nav/internal/model"
	"iori_nav/internal/render"
	"iori_nav/internal/settings"
	"iori_nav/internal/wallpaper"
)

// 站点身份兜底，settings 行与环境配置都为空时使用
const (
	defaultSiteName        = "灰色轨迹"
	defaultSiteDescription = "一个优雅、快速、易于部署的书签（网址）收藏与分享平台"
	defaultFooterText      = "曾梦想仗剑走天涯"
)

// SchemaEnsurer 渲染前保证依赖的列与索引就位，*schema.Guard 实现该接口
type SchemaEnsurer interface {
	Ensure(ctx context.Context)
}

// Handler 首页渲染管线
type Handler struct {
	db      *gorm.DB
	cache   *homecache.Gateway
	guard   SchemaEnsurer
	rotator *wallpaper.Rotator
	cfg     *config.Config
	log     *logrus.Entry
}

// NewHandler creates the home page handler
func NewHandler(db *gorm.DB, cache *homecache.Gateway, guard SchemaEnsurer, rotator *wallpaper.Rotator, cfg *config.Config) *Handler {
	return &Handler{
		db:      db,
		cache:   cache,
		guard:   guard,
		rotator: rotator,
		cfg:     cfg,
		log:     logrus.WithField("component", "home"),
	}
}

// Render serves the home page.
//
// Pipeline: schema guard, auth classification, cache lookup (with the
// stale-cookie bridge), three concurrent queries, category resolution,
// optional wallpaper rotation, template render, async cache write-back.
func (h *Handler) Render(c *gin.Context) {
	ctx := c.Request.Context()
	h.guard.Ensure(ctx)

	isAdmin := middleware.IsAdmin(c)

	// 仅无参首页参与缓存，带 ?catalog= 的请求内容因人而异
	isHomePage := c.Request.URL.Path == "/" && c.Request.URL.RawQuery == ""

	clearStaleCookie := false
	if isHomePage {
		if isAdmin && cookieutil.HasStaleMarker(c.Request) {
			// 后台改过数据：跳过读缓存，先清两份变体
			if err := h.cache.Purge(ctx); err != nil {
				h.log.WithError(err).Warn("failed to purge stale home cache")
			}
			clearStaleCookie = true
		} else if html, hit := h.cache.Read(ctx, isAdmin); hit {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
			return
		}
	}

	// 分类、设置、站点三路并发查询
	var (
		wg         sync.WaitGroup
		categories []model.Category
		rows       []model.Setting
		allSites   []model.Site

		catErr, settingErr, siteErr error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		query := h.db.WithContext(ctx).Model(&model.Category{})
		if !isAdmin {
			query = query.Where("is_private = 0")
		}
		catErr = query.Order("sort_order ASC, id ASC").Find(&categories).Error
	}()
	go func() {
		defer wg.Done()
		settingErr = h.db.WithContext(ctx).
			Where("`key` IN ?", settings.Keys).
			Find(&rows).Error
	}()
	go func() {
		defer wg.Done()
		query := h.db.WithContext(ctx).Model(&model.Site{})
		if !isAdmin {
			query = query.Where("is_private = 0")
		}
		siteErr = query.Order("sort_order ASC, create_time DESC").Find(&allSites).Error
	}()
	wg.Wait()

	// 分类和设置缺了还能渲染（空菜单、默认外观），站点缺了页面没有意义
	if catErr != nil {
		h.log.WithError(catErr).Error("failed to fetch categories")
		categories = nil
	}
	if settingErr != nil {
		h.log.WithError(settingErr).Error("failed to fetch settings")
		rows = nil
	}
	if siteErr != nil {
		h.log.WithError(siteErr).Error("failed to fetch sites")
		c.String(http.StatusInternalServerError, "Failed to fetch sites")
		return
	}

	tree := catalog.Build(categories)
	pageSettings := settings.Resolve(rows)
	resolution := catalog.Resolve(c.Request, c.Query("catalog"),
		pageSettings.HomeRememberLastCategory, pageSettings.HomeDefaultCategory, tree)

	sites := allSites
	if len(resolution.TargetCategoryIDs) > 0 {
		targets := make(map[int]struct{}, len(resolution.TargetCategoryIDs))
		for _, id := range resolution.TargetCategoryIDs {
			targets[id] = struct{}{}
		}
		sites = make([]model.Site, 0, len(allSites))
		for _, site := range allSites {
			if _, ok := targets[site.CatelogID]; ok {
				sites = append(sites, site)
			}
		}
	}

	// 随机壁纸：失败保持原配置与指针不动，指针 Cookie 仍会刷新
	nextWallpaperIndex := 0
	if pageSettings.LayoutRandomWallpaper {
		current := cookieutil.WallpaperIndex(c.Request)
		if res := h.rotator.Rotate(ctx, pageSettings.WallpaperSource,
			pageSettings.WallpaperCid360, pageSettings.BingCountry, current); res.OK {
			pageSettings.LayoutCustomWallpaper = res.URL
			nextWallpaperIndex = res.NextIndex
		}
	}

	html := render.Page(render.Input{
		Settings:          pageSettings,
		Tree:              tree,
		Categories:        categories,
		AllSites:          allSites,
		Sites:             sites,
		Resolution:        resolution,
		SiteName:          firstNonEmpty(pageSettings.HomeSiteName, h.cfg.Site.Name, defaultSiteName),
		SiteDescription:   firstNonEmpty(pageSettings.HomeSiteDescription, h.cfg.Site.Description, defaultSiteDescription),
		FooterText:        firstNonEmpty(h.cfg.Site.FooterText, defaultFooterText),
		SubmissionEnabled: h.cfg.Site.PublicSubmission,
	})

	if clearStaleCookie {
		cookieutil.ClearStaleMarker(c.Writer)
	}
	if pageSettings.LayoutRandomWallpaper {
		// 每次请求换壁纸，缓存任何一层命中都会卡住轮换
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		cookieutil.SetWallpaperIndex(c.Writer, nextWallpaperIndex)
	}

	if isHomePage && !pageSettings.LayoutRandomWallpaper {
		h.cache.StoreAsync(isAdmin, html)
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
