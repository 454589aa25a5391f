package render

import (
	"strings"
	"testing"

	"iori_nav/internal/catalog"
	"iori_nav/internal/model"
	"iori_nav/internal/settings"
)

func testInput() Input {
	categories := []model.Category{
		{ID: 1, Catelog: "工具", SortOrder: 1},
		{ID: 2, Catelog: "前端", SortOrder: 2, ParentID: 1},
	}
	sites := []model.Site{
		{ID: 10, Name: "示例站", URL: "https://example.com", Desc: "一个示例", CatelogID: 1, CatelogName: "工具"},
	}
	return Input{
		Settings:        settings.Defaults(),
		Tree:            catalog.Build(categories),
		Categories:      categories,
		AllSites:        sites,
		Sites:           sites,
		SiteName:        "灰色轨迹",
		SiteDescription: "书签收藏",
		FooterText:      "曾梦想仗剑走天涯",
	}
}

func TestPage_RendersBasicStructure(t *testing.T) {
	html := Page(testInput())

	for _, want := range []string{
		"灰色轨迹",
		"书签收藏",
		"曾梦想仗剑走天涯",
		"示例站",
		`href="https://example.com"`,
		"全部收藏 · 1 个书签",
		"window.IORI_SITES",
		"window.IORI_LAYOUT_CONFIG",
		`<div id="app-scroll">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Rendered page missing %q", want)
		}
	}

	if strings.Contains(html, "{{") {
		t.Error("Rendered page still contains template tokens")
	}
}

func TestPage_EscapesSiteFields(t *testing.T) {
	in := testInput()
	in.Sites = []model.Site{
		{ID: 1, Name: `<script>alert("x")</script>`, URL: "javascript:alert(1)", Desc: "a & b"},
	}
	in.AllSites = in.Sites

	html := Page(in)

	if strings.Contains(html, `<script>alert("x")</script>`) {
		t.Error("Site name must be escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("Expected escaped site name in output")
	}
	if strings.Contains(html, `href="javascript:`) {
		t.Error("Unsafe URL must not render as a live link")
	}
	if !strings.Contains(html, "未提供链接") {
		t.Error("Unsafe URL should fall back to the no-link label")
	}
}

func TestPage_ActiveCategoryHeading(t *testing.T) {
	in := testInput()
	in.Resolution = catalog.Resolution{
		TargetCategoryIDs:  []int{1},
		CurrentCatalogName: "工具",
		CatalogExists:      true,
	}

	html := Page(in)

	if !strings.Contains(html, "工具 · 1 个书签") {
		t.Error("Heading should name the active category")
	}
	if !strings.Contains(html, "nav-item-active") {
		t.Error("Active category should carry the active marker class")
	}
}

func TestPage_EmptyStates(t *testing.T) {
	in := testInput()
	in.Sites = nil

	html := Page(in)
	if !strings.Contains(html, "暂无书签") {
		t.Error("Empty category should show the no-bookmarks state")
	}

	in.Categories = nil
	in.Tree = catalog.Build(nil)
	html = Page(in)
	if !strings.Contains(html, "欢迎使用 iori-nav") {
		t.Error("Fresh install should show the welcome state")
	}
}

func TestPage_HideTogglesRemoveSections(t *testing.T) {
	in := testInput()
	in.Settings.LayoutHideDesc = true
	in.Settings.LayoutHideLinks = true
	in.Settings.LayoutHideCategory = true
	in.Settings.HomeHideHitokoto = true
	in.Settings.HomeHideGithub = true
	in.Settings.HomeHideAdmin = true
	in.Sites[0].Desc = "隐藏我"

	html := Page(in)

	if strings.Contains(html, `title="隐藏我"`) {
		t.Error("Description paragraph should be hidden from the card")
	}
	if strings.Contains(html, "copy-btn") {
		t.Error("Copy button should be hidden with links row")
	}
	if strings.Contains(html, hitokotoText) {
		t.Error("Hitokoto should be hidden")
	}
	if !strings.Contains(html, `a[title="GitHub"] { display: none !important; }`) {
		t.Error("Hidden GitHub icon should inject hiding CSS")
	}
	if !strings.Contains(html, `a[href^="/admin"] { display: none !important; }`) {
		t.Error("Hidden admin icon should inject hiding CSS")
	}
}

func TestPage_CustomWallpaperTheme(t *testing.T) {
	in := testInput()
	in.Settings.LayoutCustomWallpaper = "https://img.example.com/w.jpg"
	in.Settings.LayoutEnableBgBlur = true
	in.Settings.LayoutBgBlurIntensity = "8"

	html := Page(in)

	if !strings.Contains(html, "custom-wallpaper") {
		t.Error("Custom wallpaper should switch the theme class")
	}
	if !strings.Contains(html, `src="https://img.example.com/w.jpg"`) {
		t.Error("Wallpaper image should be in the background layer")
	}
	if !strings.Contains(html, "filter: blur(8px)") {
		t.Error("Background blur should apply the configured intensity")
	}
	if !strings.Contains(html, "bg-transparent border-none") {
		t.Error("Header should go transparent under a wallpaper")
	}
}

func TestPage_MenuLayouts(t *testing.T) {
	in := testInput()

	// 默认水平布局：全部按钮 + 下拉
	html := Page(in)
	if !strings.Contains(html, `href="?catalog=all" class="nav-btn`) {
		t.Error("Horizontal layout should render the all-categories pill")
	}
	if !strings.Contains(html, "dropdown-menu") {
		t.Error("Nested category should render a dropdown")
	}

	in.Settings.LayoutMenuLayout = "vertical"
	html = Page(in)
	if strings.Contains(html, "horizontalCategoryNav") {
		t.Error("Vertical layout should not render the horizontal nav")
	}
	if !strings.Contains(html, "padding-left: 24px") {
		t.Error("Nested sidebar entry should be indented one level")
	}
}

func TestPage_GridColumns(t *testing.T) {
	in := testInput()
	in.Settings.LayoutGridCols = "6"

	html := Page(in)
	if !strings.Contains(html, "min-[1200px]:grid-cols-6") {
		t.Error("Six-column layout should widen at 1200px")
	}
	if strings.Contains(html, gridClassLiteral) {
		t.Error("Template grid class literal should be swapped out")
	}

	// 五列及以上复制按钮只保留图标
	if strings.Contains(html, "copy-text") {
		t.Error("Compact grid should drop the copy button label")
	}
}

func TestPage_FontInjection(t *testing.T) {
	in := testInput()
	in.Settings.HomeTitleFont = "Noto Serif SC"
	in.Settings.CardTitleFont = "ZCOOL KuaiLe"
	in.Settings.CardTitleColor = "#ff0000"

	html := Page(in)

	if !strings.Contains(html, FontMap["Noto Serif SC"]) {
		t.Error("Visible title font should inject its stylesheet")
	}
	if !strings.Contains(html, FontMap["ZCOOL KuaiLe"]) {
		t.Error("Card font should always inject its stylesheet")
	}
	if !strings.Contains(html, ".site-title { color: #ff0000 !important;font-family: ZCOOL KuaiLe !important; }") {
		t.Error("Card title overrides should emit custom CSS")
	}

	// 标题隐藏后其字体不再注入
	in.Settings.LayoutHideTitle = true
	in.Settings.CardTitleFont = ""
	in.Settings.CardTitleColor = ""
	html = Page(in)
	if strings.Contains(html, FontMap["Noto Serif SC"]) {
		t.Error("Hidden title must not pull its font in")
	}
}

func TestStyleAttr(t *testing.T) {
	if got := styleAttr("", "", ""); got != "" {
		t.Errorf("Empty trio should produce no attribute, got %q", got)
	}
	got := styleAttr("18", "#333", "serif")
	want := `style="font-size: 18px;color: #333 !important;font-family: serif !important;"`
	if got != want {
		t.Errorf("styleAttr = %q, want %q", got, want)
	}
}

func TestGridClass(t *testing.T) {
	if !strings.Contains(GridClass("4"), "lg:grid-cols-4") {
		t.Error("Default grid should cap at four columns")
	}
	if !strings.Contains(GridClass("7"), "xl:grid-cols-7") {
		t.Error("Seven-column grid should widen at xl")
	}
	if GridClass("unknown") != GridClass("4") {
		t.Error("Unknown column count should fall back to the default grid")
	}
}

func TestCardCSSVars(t *testing.T) {
	s := settings.Defaults()
	s.LayoutCardBorderRadius = "20"
	s.LayoutFrostedGlassIntensity = "25px"

	css := cardCSSVars(s)
	if !strings.Contains(css, "--card-radius: 20px") {
		t.Errorf("Expected configured radius, got %q", css)
	}
	if !strings.Contains(css, "--frosted-glass-blur: 25px") {
		t.Errorf("Non-digit characters should be stripped from intensity, got %q", css)
	}

	s.LayoutCardBorderRadius = "20px"
	css = cardCSSVars(s)
	if !strings.Contains(css, "--card-radius: 20px") {
		t.Errorf("Unit-suffixed radius should keep its leading digits, got %q", css)
	}

	s.LayoutCardBorderRadius = "not-a-number"
	s.LayoutFrostedGlassIntensity = ""
	css = cardCSSVars(s)
	if !strings.Contains(css, "--card-radius: 12px") || !strings.Contains(css, "--frosted-glass-blur: 15px") {
		t.Errorf("Invalid values should fall back to defaults, got %q", css)
	}

	s.LayoutCardBorderRadius = "0"
	css = cardCSSVars(s)
	if !strings.Contains(css, "--card-radius: 12px") {
		t.Errorf("Zero radius should fall back to the default, got %q", css)
	}
}

func TestFirstInitial(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"github", "G"},
		{"知乎", "知"},
		{"  spaced", "S"},
		{"", "站"},
		{"   ", "站"},
	}
	for _, tt := range tests {
		if got := firstInitial(tt.name); got != tt.want {
			t.Errorf("firstInitial(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
