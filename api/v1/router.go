package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"iori_nav/api/v1/auth"
	"iori_nav/api/v1/cache"
	"iori_nav/api/v1/categories"
	"iori_nav/api/v1/home"
	"iori_nav/api/v1/middleware"
	"iori_nav/api/v1/pending"
	"iori_nav/api/v1/sites"
	"iori_nav/internal/config"
	"iori_nav/internal/homecache"
	"iori_nav/internal/httpx"
	"iori_nav/internal/schema"
	"iori_nav/internal/wallpaper"
)

// SetupRouter wires the home page and the API surface.
// API paths follow the historical frontend contract: bookmarks live under
// /api/config, public submission under /api/config/submit.
func SetupRouter(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {
	gateway := homecache.New(rdb)
	guard := schema.New(db, rdb)
	rotator := wallpaper.New(time.Duration(cfg.Wallpaper.FetchTimeoutSec) * time.Second)

	homeHandler := home.NewHandler(db, gateway, guard, rotator, cfg)
	r.GET("/", homeHandler.Render)

	api := r.Group("/api")
	{
		api.GET("/ping", pingHandler)

		api.POST("/login", auth.LoginHandler(db, cfg))
		api.POST("/logout", auth.LogoutHandler())

		categoriesHandler := categories.NewHandler(db, gateway)
		api.GET("/categories", categoriesHandler.List)

		pendingHandler := pending.NewHandler(db, gateway, cfg)
		api.POST("/config/submit", pendingHandler.Submit)

		protected := api.Group("")
		protected.Use(middleware.AdminRequired())
		{
			sitesHandler := sites.NewHandler(db, gateway)
			protected.GET("/config", sitesHandler.List)
			protected.POST("/config", sitesHandler.Create)
			protected.PUT("/config/:id", sitesHandler.Update)
			protected.DELETE("/config/:id", sitesHandler.Delete)

			protected.POST("/categories", categoriesHandler.Create)
			protected.PUT("/categories/:id", categoriesHandler.Update)
			protected.DELETE("/categories/:id", categoriesHandler.Delete)

			protected.GET("/pending", pendingHandler.List)
			protected.POST("/pending/:id/approve", pendingHandler.Approve)
			protected.DELETE("/pending/:id", pendingHandler.Reject)

			protected.POST("/cache/clear", cache.ClearHandler(gateway))
		}
	}
}

// pingHandler handles the ping request using unified response
func pingHandler(c *gin.Context) {
	httpx.OK(c, gin.H{
		"pong": true,
	})
}
