package cache

import (
	"github.com/gin-gonic/gin"

	"iori_nav/internal/cookieutil"
	"iori_nav/internal/homecache"
	"iori_nav/internal/httpx"
)

// ClearHandler drops both home cache variants and clears the stale-cache
// marker cookie, so the admin's next home request renders fresh without
// going through the cookie bridge.
func ClearHandler(gateway *homecache.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gateway.Purge(c.Request.Context()); err != nil {
			httpx.FailErr(c, httpx.ErrInternalError("failed to clear home cache", err))
			return
		}

		cookieutil.ClearStaleMarker(c.Writer)
		httpx.OKMsg(c, "首页缓存已清除", nil)
	}
}
