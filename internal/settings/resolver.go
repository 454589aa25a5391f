package settings

import "iori_nav/internal/model"

// Keys is the fixed set of setting rows the home page reads, fetched in a
// single query. Unknown keys in the table are ignored; missing keys keep
// the defaults below.
var Keys = []string{
	"layout_hide_desc", "layout_hide_links", "layout_hide_category",
	"layout_hide_title", "home_title_size", "home_title_color",
	"layout_hide_subtitle", "home_subtitle_size", "home_subtitle_color",
	"home_hide_stats", "home_stats_size", "home_stats_color",
	"home_hide_hitokoto", "home_hitokoto_size", "home_hitokoto_color",
	"home_hide_github", "home_hide_admin",
	"home_custom_font_url", "home_title_font", "home_subtitle_font", "home_stats_font", "home_hitokoto_font",
	"home_site_name", "home_site_description",
	"home_search_engine_enabled", "home_default_category", "home_remember_last_category",
	"layout_grid_cols", "layout_custom_wallpaper", "layout_menu_layout",
	"layout_random_wallpaper", "bing_country",
	"layout_enable_frosted_glass", "layout_frosted_glass_intensity",
	"layout_enable_bg_blur", "layout_bg_blur_intensity", "layout_card_style",
	"layout_card_border_radius",
	"wallpaper_source", "wallpaper_cid_360",
	"card_title_font", "card_title_size", "card_title_color",
	"card_desc_font", "card_desc_size", "card_desc_color",
}

// PageSettings 首页展示相关的全部后台配置项。
// 数值类配置保持字符串形态，与存储一致；布尔项由字面量 "true" 解析。
type PageSettings struct {
	LayoutHideDesc     bool
	LayoutHideLinks    bool
	LayoutHideCategory bool

	LayoutHideTitle bool
	HomeTitleSize   string
	HomeTitleColor  string

	LayoutHideSubtitle bool
	HomeSubtitleSize   string
	HomeSubtitleColor  string

	HomeHideStats  bool
	HomeStatsSize  string
	HomeStatsColor string

	HomeHideHitokoto  bool
	HomeHitokotoSize  string
	HomeHitokotoColor string

	HomeHideGithub bool
	HomeHideAdmin  bool

	HomeCustomFontURL string
	HomeTitleFont     string
	HomeSubtitleFont  string
	HomeStatsFont     string
	HomeHitokotoFont  string

	HomeSiteName        string
	HomeSiteDescription string

	HomeSearchEngineEnabled  bool
	HomeDefaultCategory      string
	HomeRememberLastCategory bool

	LayoutGridCols        string
	LayoutCustomWallpaper string
	LayoutMenuLayout      string
	LayoutRandomWallpaper bool
	BingCountry           string

	LayoutEnableFrostedGlass    bool
	LayoutFrostedGlassIntensity string
	LayoutEnableBgBlur          bool
	LayoutBgBlurIntensity       string
	LayoutCardStyle             string
	LayoutCardBorderRadius      string

	WallpaperSource string
	WallpaperCid360 string

	CardTitleFont  string
	CardTitleSize  string
	CardTitleColor string
	CardDescFont   string
	CardDescSize   string
	CardDescColor  string
}

// Defaults returns the hardcoded fallbacks applied before any row is read
func Defaults() PageSettings {
	return PageSettings{
		LayoutGridCols:              "4",
		LayoutMenuLayout:            "horizontal",
		LayoutFrostedGlassIntensity: "15",
		LayoutBgBlurIntensity:       "0",
		LayoutCardStyle:             "style1",
		LayoutCardBorderRadius:      "12",
		WallpaperSource:             "bing",
		WallpaperCid360:             "36",
	}
}

// Resolve maps raw setting rows onto a PageSettings in a single pass.
// Rows with unknown keys leave the defaults untouched. Value ranges are
// not validated here.
func Resolve(rows []model.Setting) PageSettings {
	s := Defaults()

	for _, row := range rows {
		isTrue := row.Value == "true"
		switch row.Key {
		case "layout_hide_desc":
			s.LayoutHideDesc = isTrue
		case "layout_hide_links":
			s.LayoutHideLinks = isTrue
		case "layout_hide_category":
			s.LayoutHideCategory = isTrue
		case "layout_hide_title":
			s.LayoutHideTitle = isTrue
		case "home_title_size":
			s.HomeTitleSize = row.Value
		case "home_title_color":
			s.HomeTitleColor = row.Value
		case "layout_hide_subtitle":
			s.LayoutHideSubtitle = isTrue
		case "home_subtitle_size":
			s.HomeSubtitleSize = row.Value
		case "home_subtitle_color":
			s.HomeSubtitleColor = row.Value
		case "home_hide_stats":
			s.HomeHideStats = isTrue
		case "home_stats_size":
			s.HomeStatsSize = row.Value
		case "home_stats_color":
			s.HomeStatsColor = row.Value
		case "home_hide_hitokoto":
			s.HomeHideHitokoto = isTrue
		case "home_hitokoto_size":
			s.HomeHitokotoSize = row.Value
		case "home_hitokoto_color":
			s.HomeHitokotoColor = row.Value
		case "home_hide_github":
			// 历史数据兼容：旧版本写入 "1"
			s.HomeHideGithub = isTrue || row.Value == "1"
		case "home_hide_admin":
			s.HomeHideAdmin = isTrue || row.Value == "1"
		case "home_custom_font_url":
			s.HomeCustomFontURL = row.Value
		case "home_title_font":
			s.HomeTitleFont = row.Value
		case "home_subtitle_font":
			s.HomeSubtitleFont = row.Value
		case "home_stats_font":
			s.HomeStatsFont = row.Value
		case "home_hitokoto_font":
			s.HomeHitokotoFont = row.Value
		case "home_site_name":
			s.HomeSiteName = row.Value
		case "home_site_description":
			s.HomeSiteDescription = row.Value
		case "home_search_engine_enabled":
			s.HomeSearchEngineEnabled = isTrue
		case "home_default_category":
			s.HomeDefaultCategory = row.Value
		case "home_remember_last_category":
			s.HomeRememberLastCategory = isTrue
		case "layout_grid_cols":
			s.LayoutGridCols = row.Value
		case "layout_custom_wallpaper":
			s.LayoutCustomWallpaper = row.Value
		case "layout_menu_layout":
			s.LayoutMenuLayout = row.Value
		case "layout_random_wallpaper":
			s.LayoutRandomWallpaper = isTrue
		case "bing_country":
			s.BingCountry = row.Value
		case "layout_enable_frosted_glass":
			s.LayoutEnableFrostedGlass = isTrue
		case "layout_frosted_glass_intensity":
			s.LayoutFrostedGlassIntensity = row.Value
		case "layout_enable_bg_blur":
			s.LayoutEnableBgBlur = isTrue
		case "layout_bg_blur_intensity":
			s.LayoutBgBlurIntensity = row.Value
		case "layout_card_style":
			s.LayoutCardStyle = row.Value
		case "layout_card_border_radius":
			s.LayoutCardBorderRadius = row.Value
		case "wallpaper_source":
			s.WallpaperSource = row.Value
		case "wallpaper_cid_360":
			s.WallpaperCid360 = row.Value
		case "card_title_font":
			s.CardTitleFont = row.Value
		case "card_title_size":
			s.CardTitleSize = row.Value
		case "card_title_color":
			s.CardTitleColor = row.Value
		case "card_desc_font":
			s.CardDescFont = row.Value
		case "card_desc_size":
			s.CardDescSize = row.Value
		case "card_desc_color":
			s.CardDescColor = row.Value
		}
	}

	return s
}
