package cookieutil

import (
	"net/http"
	"strconv"
)

// Cookie names shared between the home pipeline and the admin frontend
const (
	// StaleCacheCookie 后台改动后置 1，提示下一次首页请求先清缓存
	StaleCacheCookie = "iori_cache_stale"
	// LastCategoryCookie 记住上次浏览的分类，值为 "all" 或分类 ID
	LastCategoryCookie = "iori_last_category"
	// WallpaperIndexCookie 随机壁纸轮换指针
	WallpaperIndexCookie = "wallpaper_index"
)

const wallpaperCookieMaxAge = 31536000 // 1 year

// HasStaleMarker reports whether the admin stale-cache marker is set
func HasStaleMarker(r *http.Request) bool {
	c, err := r.Cookie(StaleCacheCookie)
	return err == nil && c.Value == "1"
}

// LastCategory reads the remembered-category cookie.
// Returns isAll=true for the literal "all", or a parsed category id.
// ok is false when the cookie is absent or malformed.
func LastCategory(r *http.Request) (isAll bool, id int, ok bool) {
	c, err := r.Cookie(LastCategoryCookie)
	if err != nil {
		return false, 0, false
	}
	if c.Value == "all" {
		return true, 0, true
	}
	n, err := strconv.Atoi(c.Value)
	if err != nil || n <= 0 {
		return false, 0, false
	}
	return false, n, true
}

// WallpaperIndex reads the rotation pointer; -1 means "none yet", so the
// first rotation lands on index 0.
func WallpaperIndex(r *http.Request) int {
	c, err := r.Cookie(WallpaperIndexCookie)
	if err != nil {
		return -1
	}
	n, err := strconv.Atoi(c.Value)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// ClearStaleMarker expires the stale-cache marker on the response
func ClearStaleMarker(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     StaleCacheCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetWallpaperIndex persists the advanced rotation pointer
func SetWallpaperIndex(w http.ResponseWriter, index int) {
	http.SetCookie(w, &http.Cookie{
		Name:     WallpaperIndexCookie,
		Value:    strconv.Itoa(index),
		Path:     "/",
		MaxAge:   wallpaperCookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}
