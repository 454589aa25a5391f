package render

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"iori_nav/internal/catalog"
	"iori_nav/internal/model"
	"iori_nav/internal/sanitize"
	"iori_nav/internal/settings"
)

// 数据缺失时的展示兜底文案
const (
	fallbackSiteName    = "未命名"
	fallbackCatalogName = "未分类"
	fallbackDesc        = "暂无描述"
	fallbackNoURL       = "未提供链接"
)

const defaultBgColor = "#fdf8f3"

const hitokotoText = "疏影横斜水清浅,暗香浮动月黄昏。"

// 入场动画最多错开 20 张卡片，避免长列表末尾等待过久
const maxAnimStagger = 20

// Input carries everything one home page render needs. The caller resolves
// category filtering and wallpaper rotation first; rendering itself is a
// pure string transformation.
type Input struct {
	Settings   settings.PageSettings
	Tree       *catalog.Tree
	Categories []model.Category
	// AllSites 注入给前端搜索脚本的全量数据，Sites 是按分类过滤后的展示集
	AllSites   []model.Site
	Sites      []model.Site
	Resolution catalog.Resolution

	SiteName        string
	SiteDescription string
	FooterText      string

	SubmissionEnabled bool
}

// Page renders the complete home page HTML
func Page(in Input) string {
	s := in.Settings
	theme := ThemeFor(s.LayoutCustomWallpaper != "")

	p := NewReplacer()

	// head 注入顺序与历史版本保持一致：隐藏图标 CSS、滚动样式、
	// 卡片变量、字体、卡片自定义样式、全局数据、布局配置
	p.InjectHead(hideIconsCSS(s))
	p.InjectHead(globalScrollCSS)
	p.Swap(bodyOpenLiteral, bodyOpen(theme, bgLayer(s)))
	p.Swap("</body>", "</div></body>")
	p.InjectHead(cardCSSVars(s))
	p.InjectHead(fontLinks(s))
	p.InjectHead(customCardCSS(s))
	p.InjectHead(sitesDataScript(in.AllSites))
	p.InjectHead(layoutConfigScript(s))

	heading := headingText(in.Resolution, len(in.Sites))

	statsRowVisible := !s.HomeHideStats || !s.HomeHideHitokoto
	statsRowPyClass := "hidden"
	statsRowHidden := "hidden"
	if statsRowVisible {
		statsRowPyClass = "my-8"
		statsRowHidden = ""
	}

	hitokotoContent := ""
	if !s.HomeHideHitokoto {
		hitokotoContent = hitokotoText
	}

	submissionClass := "hidden"
	if in.SubmissionEnabled {
		submissionClass = ""
	}

	headingActive := ""
	if in.Resolution.CatalogExists {
		headingActive = sanitize.EscapeHTML(in.Resolution.CurrentCatalogName)
	}

	layout := layoutFor(s, theme)

	p.Replace("HEADER_CONTENT", headerContent(s, theme, in.Tree, in.Resolution, layout))
	p.Replace("HEADER_CLASS", theme.HeaderClass)
	p.Replace("CONTAINER_CLASS", theme.ContainerClass)
	p.Replace("FOOTER_CLASS", theme.FooterClass)
	p.Replace("HITOKOTO_CLASS", theme.HitokotoClass)
	p.Replace("LEFT_TOP_ACTION", leftTopActions(layout))
	p.Replace("RIGHT_TOP_ACTION", topRightActions(layout))
	p.ReplaceAll("SITE_NAME", sanitize.EscapeHTML(in.SiteName))
	p.ReplaceAll("SITE_DESCRIPTION", sanitize.EscapeHTML(in.SiteDescription))
	p.Replace("FOOTER_TEXT", sanitize.EscapeHTML(in.FooterText))
	p.Replace("CATALOG_EXISTS", strconv.FormatBool(in.Resolution.CatalogExists))
	p.Replace("CATALOG_LINKS", verticalMenu(in.Tree.Roots, 0, in.Resolution.CurrentCatalogName, theme))
	// 提交入口在侧边栏和弹窗各出现一次
	p.ReplaceAll("SUBMISSION_CLASS", submissionClass)
	p.Replace("DATALIST_OPTIONS", datalistOptions(in.Categories))
	p.Replace("TOTAL_SITES", strconv.Itoa(len(in.Sites)))
	p.Replace("CATALOG_COUNT", strconv.Itoa(len(in.Categories)))
	p.Replace("HEADING_TEXT", heading)
	p.Replace("HEADING_DEFAULT", heading)
	p.Replace("HEADING_ACTIVE", headingActive)
	p.Replace("STATS_VISIBLE", hiddenIf(s.HomeHideStats))
	p.Replace("STATS_STYLE", styleAttr(s.HomeStatsSize, s.HomeStatsColor, s.HomeStatsFont))
	p.Replace("HITOKOTO_VISIBLE", hiddenIf(s.HomeHideHitokoto))
	p.Replace("STATS_ROW_PY_CLASS", statsRowPyClass)
	p.Replace("STATS_ROW_MB_CLASS", "")
	p.Replace("STATS_ROW_HIDDEN", statsRowHidden)
	p.Replace("HITOKOTO_CONTENT", hitokotoContent)
	p.ReplaceAll("HITOKOTO_STYLE", styleAttr(s.HomeHitokotoSize, s.HomeHitokotoColor, s.HomeHitokotoFont))
	p.Replace("SITES_GRID", sitesGrid(in))
	p.Replace("CURRENT_YEAR", strconv.Itoa(time.Now().Year()))
	p.Swap(gridClassLiteral, GridClass(s.LayoutGridCols))
	p.Replace("SIDEBAR_CLASS", layout.sidebarClass)
	p.Replace("MAIN_CLASS", layout.mainClass)
	p.Replace("SIDEBAR_TOGGLE_CLASS", layout.sidebarToggleClass)

	return p.Finish()
}

// pageLayout 由菜单布局与图标开关推导出的结构类，水平模式隐藏侧边栏
type pageLayout struct {
	horizontal         bool
	sidebarClass       string
	mainClass          string
	sidebarToggleClass string
	mobileToggleClass  string
	githubIconHTML     string
	adminIconHTML      string
}

func layoutFor(s settings.PageSettings, theme Theme) pageLayout {
	l := pageLayout{
		mainClass:         "lg:ml-64",
		mobileToggleClass: "lg:hidden",
	}
	if s.LayoutMenuLayout != "horizontal" {
		return l
	}

	l.horizontal = true
	l.sidebarClass = "min-[550px]:hidden"
	l.mainClass = ""
	l.sidebarToggleClass = "!hidden"
	l.mobileToggleClass = "min-[550px]:hidden"

	if !s.HomeHideGithub {
		l.githubIconHTML = `<a href="https://slink.661388.xyz/iori-nav" target="_blank" class="fixed top-4 left-4 z-50 hidden min-[550px]:flex items-center justify-center p-2 rounded-lg bg-white/80 backdrop-blur shadow-md hover:bg-white text-gray-700 hover:text-black dark:bg-gray-800/80 dark:text-gray-200 dark:hover:text-white transition-all" title="GitHub">` +
			`<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.403 5.403 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"></path><path d="M9 18c-4.51 2-5-2-7-2"></path></svg></a>`
	}
	if !s.HomeHideAdmin {
		l.adminIconHTML = `<a href="/admin" target="_blank" class="flex items-center justify-center p-2 rounded-lg bg-white/80 backdrop-blur shadow-md hover:bg-white text-gray-700 hover:text-primary-600 dark:bg-gray-800/80 dark:text-gray-200 dark:hover:text-primary-400 transition-all" title="后台管理">` +
			`<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z"/><path d="M12 11a3 3 0 1 0 0-6 3 3 0 0 0 0 6z"/></svg></a>`
	}
	return l
}

// styleAttr builds an inline style attribute from the size/color/font
// settings trio. Values are admin-entered and rendered verbatim.
func styleAttr(size, color, font string) string {
	decl := styleDecl(size, color, font)
	if decl == "" {
		return ""
	}
	return `style="` + decl + `"`
}

func styleDecl(size, color, font string) string {
	var b strings.Builder
	if size != "" {
		fmt.Fprintf(&b, "font-size: %spx;", size)
	}
	if color != "" {
		fmt.Fprintf(&b, "color: %s !important;", color)
	}
	if font != "" {
		fmt.Fprintf(&b, "font-family: %s !important;", font)
	}
	return b.String()
}

func hiddenIf(hide bool) string {
	if hide {
		return "hidden"
	}
	return ""
}

func headingText(res catalog.Resolution, siteCount int) string {
	if res.CurrentCatalogName != "" {
		return sanitize.EscapeHTML(fmt.Sprintf("%s · %d 个书签", res.CurrentCatalogName, siteCount))
	}
	return sanitize.EscapeHTML(fmt.Sprintf("全部收藏 · %d 个书签", siteCount))
}

func datalistOptions(categories []model.Category) string {
	var b strings.Builder
	for _, cat := range categories {
		fmt.Fprintf(&b, `<option value="%s">`, sanitize.EscapeHTML(cat.Catelog))
	}
	return b.String()
}

// horizontalMenu renders the top navigation. Level 0 entries are pill
// buttons; deeper levels become dropdown items nested under their parent.
func horizontalMenu(nodes []*catalog.Node, level int, currentName string) string {
	var b strings.Builder
	for _, node := range nodes {
		isActive := currentName == node.Catelog
		hasChildren := len(node.Children) > 0
		safeName := sanitize.EscapeHTML(node.Catelog)
		linkURL := "?catalog=" + url.QueryEscape(node.Catelog)

		activeMarker := ""
		if isActive {
			activeMarker = "nav-item-active"
		}

		if level == 0 {
			activeClass := "inactive"
			if isActive {
				activeClass = "active"
			}
			b.WriteString(`<div class="menu-item-wrapper relative inline-block text-left">`)
			fmt.Fprintf(&b, `<a href="%s" class="nav-btn %s %s" data-id="%d">%s`, linkURL, activeClass, activeMarker, node.ID, safeName)
			if hasChildren {
				b.WriteString(`<svg class="w-3 h-3 ml-1 opacity-70" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M19 9l-7 7-7-7"></path></svg>`)
			}
			b.WriteString(`</a>`)
		} else {
			activeClass := ""
			if isActive {
				activeClass = "active"
			}
			b.WriteString(`<div class="menu-item-wrapper relative block w-full">`)
			fmt.Fprintf(&b, `<a href="%s" class="dropdown-item %s %s" data-id="%d">%s`, linkURL, activeClass, activeMarker, node.ID, safeName)
			if hasChildren {
				b.WriteString(`<svg class="dropdown-arrow-icon" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M9 5l7 7-7 7"></path></svg>`)
			}
			b.WriteString(`</a>`)
		}

		if hasChildren {
			b.WriteString(`<div class="dropdown-menu">`)
			b.WriteString(horizontalMenu(node.Children, level+1, currentName))
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
	}
	return b.String()
}

// verticalMenu renders the sidebar category list, indenting 12px per level
func verticalMenu(nodes []*catalog.Node, level int, currentName string, theme Theme) string {
	var b strings.Builder
	for _, node := range nodes {
		safeName := sanitize.EscapeHTML(node.Catelog)
		isActive := currentName == node.Catelog

		activeClass := "hover:bg-gray-100 text-gray-700 dark:text-gray-300 dark:hover:bg-gray-800"
		iconClass := theme.DefaultIconColor
		if isActive {
			activeClass = "bg-secondary-100 text-primary-700 dark:bg-gray-800 dark:text-primary-400"
			iconClass = "text-primary-600 dark:text-primary-400"
		}

		fmt.Fprintf(&b,
			`<a href="?catalog=%s" data-id="%d" class="flex items-center px-3 py-2 rounded-lg w-full transition-colors duration-200 %s" style="padding-left: %dpx">`,
			url.QueryEscape(node.Catelog), node.ID, activeClass, 12+level*12)
		fmt.Fprintf(&b,
			`<svg xmlns="http://www.w3.org/2000/svg" class="h-5 w-5 mr-2 %s" fill="none" viewBox="0 0 24 24" stroke="currentColor"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M7 7h.01M7 3h5c.512 0 1.024.195 1.414.586l7 7a2 2 0 010 2.828l-7 7a2 2 0 01-2.828 0l-7-7A1.994 1.994 0 013 12V7a4 4 0 014-4z" /></svg>%s</a>`,
			iconClass, safeName)

		if len(node.Children) > 0 {
			b.WriteString(verticalMenu(node.Children, level+1, currentName, theme))
		}
	}
	return b.String()
}

func horizontalCatalogMarkup(tree *catalog.Tree, res catalog.Resolution, currentName string) string {
	allClass := "inactive"
	allMarker := ""
	if !res.CatalogExists {
		allClass = "active"
		allMarker = "nav-item-active"
	}
	allLink := fmt.Sprintf(
		`<div class="menu-item-wrapper relative inline-block text-left"><a href="?catalog=all" class="nav-btn %s %s">全部</a></div>`,
		allClass, allMarker)
	return allLink + horizontalMenu(tree.Roots, 0, currentName)
}

// sitesGrid renders the bookmark cards, or the empty state when the
// filtered list has nothing to show.
func sitesGrid(in Input) string {
	if len(in.Sites) == 0 {
		return emptyState(len(in.Categories) == 0, in.Settings.HomeHideAdmin)
	}

	s := in.Settings
	// 单字符字典序与数值序一致，布局列数只会是 "4".."7"
	compact := s.LayoutGridCols >= "5"

	var b strings.Builder
	for i, site := range in.Sites {
		b.WriteString(siteCard(site, i, s, compact))
	}
	return b.String()
}

func siteCard(site model.Site, index int, s settings.PageSettings, compact bool) string {
	rawName := site.Name
	if rawName == "" {
		rawName = fallbackSiteName
	}
	rawCatalog := site.CatelogName
	if rawCatalog == "" {
		rawCatalog = fallbackCatalogName
	}
	rawDesc := site.Desc
	if rawDesc == "" {
		rawDesc = fallbackDesc
	}

	normalizedURL := sanitize.SanitizeURL(site.URL)
	hasValidURL := normalizedURL != ""
	safeDisplayURL := normalizedURL
	if safeDisplayURL == "" {
		safeDisplayURL = fallbackNoURL
	}
	logoURL := sanitize.SanitizeURL(site.Logo)

	safeName := sanitize.EscapeHTML(rawName)
	safeCatalog := sanitize.EscapeHTML(rawCatalog)
	safeDesc := sanitize.EscapeHTML(rawDesc)
	cardInitial := sanitize.EscapeHTML(firstInitial(rawName))

	descHTML := ""
	if !s.LayoutHideDesc {
		descHTML = fmt.Sprintf(
			`<p class="mt-2 text-sm text-gray-600 dark:text-gray-400 leading-relaxed line-clamp-2" title="%s">%s</p>`,
			safeDesc, safeDesc)
	}

	linksHTML := ""
	if !s.LayoutHideLinks {
		btnClass := "bg-gray-200 text-gray-400 cursor-not-allowed dark:bg-gray-700 dark:text-gray-500"
		btnDisabled := " disabled"
		if hasValidURL {
			btnClass = "bg-accent-100 text-accent-700 hover:bg-accent-200 dark:bg-accent-900/30 dark:text-accent-300 dark:hover:bg-accent-900/50"
			btnDisabled = ""
		}
		// 五列及以上空间紧张，复制按钮只留图标
		copyIconMargin := " mr-1"
		copyText := `<span class="copy-text">复制</span>`
		if compact {
			copyIconMargin = ""
			copyText = ""
		}
		linksHTML = fmt.Sprintf(`<div class="mt-3 flex items-center justify-between">`+
			`<span class="text-xs text-primary-600 dark:text-primary-400 truncate flex-1 min-w-0 mr-2" title="%s">%s</span>`+
			`<button class="copy-btn relative flex items-center px-2 py-1 %s rounded-full text-xs font-medium transition-colors" data-url="%s"%s>`+
			`<svg xmlns="http://www.w3.org/2000/svg" class="h-3 w-3%s" fill="none" viewBox="0 0 24 24" stroke="currentColor"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M8 5H6a2 2 0 00-2 2v12a2 2 0 002 2h10a2 2 0 002-2v-1M8 5a2 2 0 002 2h2a2 2 0 002-2M8 5a2 2 0 012-2h2a2 2 0 012 2m0 0h2a2 2 0 012 2v3m2 4H10m0 0l3-3m-3 3l3 3" /></svg>`+
			`%s<span class="copy-success hidden absolute -top-8 right-0 bg-accent-500 text-white text-xs px-2 py-1 rounded shadow-md">已复制!</span></button></div>`,
			sanitize.EscapeHTML(safeDisplayURL), sanitize.EscapeHTML(safeDisplayURL),
			btnClass, sanitize.EscapeHTML(normalizedURL), btnDisabled,
			copyIconMargin, copyText)
	}

	categoryHTML := ""
	if !s.LayoutHideCategory {
		categoryHTML = fmt.Sprintf(
			`<span class="inline-flex items-center px-2 py-0.5 mt-1 rounded-full text-xs font-medium bg-secondary-100 text-primary-700 dark:bg-secondary-800 dark:text-primary-300">%s</span>`,
			safeCatalog)
	}

	frostedClass := ""
	baseCardClass := "site-card group h-full flex flex-col bg-white border border-primary-100/60 shadow-sm overflow-hidden dark:bg-gray-800 dark:border-gray-700"
	if s.LayoutEnableFrostedGlass {
		frostedClass = "frosted-glass-effect"
		baseCardClass = "site-card group h-full flex flex-col overflow-hidden transition-all"
	}
	cardStyleClass := ""
	if s.LayoutCardStyle == "style2" {
		cardStyleClass = "style-2"
	}

	delay := index
	if delay > maxAnimStagger {
		delay = maxAnimStagger
	}
	delay *= 30
	animStyle := ""
	if delay > 0 {
		animStyle = fmt.Sprintf(` style="animation-delay: %dms"`, delay)
	}

	iconHTML := fmt.Sprintf(
		`<div class="w-10 h-10 rounded-lg bg-primary-600 flex items-center justify-center text-white font-semibold text-lg shadow-inner">%s</div>`,
		cardInitial)
	if logoURL != "" {
		iconHTML = fmt.Sprintf(
			`<img src="%s" alt="%s" class="w-10 h-10 rounded-lg object-cover bg-gray-100 dark:bg-gray-700" decoding="async" loading="lazy">`,
			sanitize.EscapeHTML(logoURL), safeName)
	}

	linkAttrs := ""
	cardHref := normalizedURL
	if hasValidURL {
		linkAttrs = ` target="_blank" rel="noopener noreferrer"`
	} else {
		cardHref = "#"
	}

	return fmt.Sprintf(
		`<div class="%s %s %s card-anim-enter"%s data-id="%d" data-name="%s" data-url="%s" data-catalog="%s" data-desc="%s">`+
			`<div class="site-card-content">`+
			`<a href="%s"%s class="block">`+
			`<div class="flex items-start">`+
			`<div class="site-icon flex-shrink-0 mr-4 transition-all duration-300">%s</div>`+
			`<div class="flex-1 min-w-0">`+
			`<h3 class="site-title text-base font-medium text-gray-900 dark:text-gray-100 truncate transition-all duration-300 origin-left" title="%s">%s</h3>`+
			`%s</div></div>%s</a>%s</div></div>`,
		baseCardClass, frostedClass, cardStyleClass, animStyle,
		site.ID, sanitize.EscapeHTML(site.Name), sanitize.EscapeHTML(normalizedURL), safeCatalog, safeDesc,
		sanitize.EscapeHTML(cardHref), linkAttrs,
		iconHTML, safeName, safeName, categoryHTML, descHTML, linksHTML)
}

// firstInitial 卡片无 logo 时显示的首字符，空名回退 "站"
func firstInitial(name string) string {
	trimmed := strings.TrimSpace(name)
	for _, r := range trimmed {
		return strings.ToUpper(string(r))
	}
	return "站"
}

func emptyState(noCategories bool, hideAdmin bool) string {
	text := "暂无书签"
	sub := "该分类下还没有添加任何书签。"
	if noCategories {
		text = "欢迎使用 iori-nav"
		sub = "项目初始化完成，请前往后台添加分类和书签。"
	}

	adminLink := ""
	if !hideAdmin {
		adminLink = `<a href="/admin" target="_blank" class="inline-flex items-center px-6 py-3 bg-primary-600 hover:bg-primary-700 text-white rounded-xl transition-all shadow-lg shadow-primary-600/20 hover:shadow-primary-600/40 hover:-translate-y-0.5">` +
			`<svg xmlns="http://www.w3.org/2000/svg" class="h-5 w-5 mr-2" fill="none" viewBox="0 0 24 24" stroke="currentColor"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M10.325 4.317c.426-1.756 2.924-1.756 3.35 0a1.724 1.724 0 002.573 1.066c1.543-.94 3.31.826 2.37 2.37a1.724 1.724 0 001.065 2.572c1.756.426 1.756 2.924 0 3.35a1.724 1.724 0 00-1.066 2.573c.94 1.543-.826 3.31-2.37 2.37a1.724 1.724 0 00-2.572 1.065c-.426 1.756-2.924 1.756-3.35 0a1.724 1.724 0 00-2.573-1.066c-1.543.94-3.31-.826-2.37-2.37a1.724 1.724 0 00-1.065-2.572c-1.756-.426-1.756-2.924 0-3.35a1.724 1.724 0 001.066-2.573c-.94-1.543.826-3.31 2.37-2.37.996.608 2.296.07 2.572-1.065z" /><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M15 12a3 3 0 11-6 0 3 3 0 016 0z" /></svg>前往管理后台</a>`
	}

	return fmt.Sprintf(`<div class="col-span-full flex flex-col items-center justify-center py-24 text-center animate-fade-in">`+
		`<div class="w-32 h-32 mb-6 text-gray-200 dark:text-gray-700/50">`+
		`<svg xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke="currentColor" stroke-width="1"><path stroke-linecap="round" stroke-linejoin="round" d="M5 19a2 2 0 01-2-2V7a2 2 0 012-2h4l2 2h4a2 2 0 012 2v1M5 19h14a2 2 0 002-2v-5a2 2 0 00-2-2H9a2 2 0 00-2 2v5a2 2 0 01-2 2z" /></svg>`+
		`</div>`+
		`<h3 class="text-xl font-medium text-gray-600 dark:text-gray-300 mb-2">%s</h3>`+
		`<p class="text-gray-400 dark:text-gray-500 max-w-md mx-auto mb-8">%s</p>%s</div>`,
		text, sub, adminLink)
}

// searchEngineOptions 搜索引擎切换条，含恢复 localStorage 选择的内联脚本
func searchEngineOptions(enabled bool) string {
	if !enabled {
		return ""
	}
	return `<div class="flex justify-center items-center gap-3 mb-4 text-sm select-none search-engine-wrapper">` +
		`<label class="search-engine-option active" data-engine="local"><span>站内</span></label>` +
		`<label class="search-engine-option" data-engine="google"><span>Google</span></label>` +
		`<label class="search-engine-option" data-engine="baidu"><span>Baidu</span></label>` +
		`<label class="search-engine-option" data-engine="bing"><span>Bing</span></label>` +
		`</div>` +
		`<script>(function(){try{var saved=localStorage.getItem('search_engine');if(saved&&saved!=='local'){document.querySelectorAll('.search-engine-wrapper').forEach(function(w){w.querySelectorAll('.search-engine-option').forEach(function(opt){if(opt.dataset.engine===saved)opt.classList.add('active');else opt.classList.remove('active');});});var ph='搜索书签...';if(saved==='google')ph='Google 搜索...';if(saved==='baidu')ph='百度搜索...';if(saved==='bing')ph='Bing 搜索...';document.querySelectorAll('.search-input-target').forEach(function(i){i.placeholder=ph;});}}catch(e){}})();</script>`
}

func searchBox(theme Theme, inputID string) string {
	idAttr := ""
	if inputID != "" {
		idAttr = ` id="` + inputID + `"`
	}
	return fmt.Sprintf(`<div class="relative">`+
		`<input%s type="text" name="search" placeholder="搜索书签..." class="search-input-target w-full pl-12 pr-4 py-3.5 rounded-2xl transition-all shadow-lg outline-none focus:outline-none focus:ring-2 %s" autocomplete="off">`+
		`<svg xmlns="http://www.w3.org/2000/svg" class="h-6 w-6 absolute left-4 top-3.5 %s" fill="none" viewBox="0 0 24 24" stroke="currentColor"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M21 21l-6-6m2-5a7 7 0 11-14 0 7 7 0 0114 0z" /></svg>`+
		`</div>`, idAttr, theme.SearchInputClass, theme.SearchIconClass)
}

func titleBlock(s settings.PageSettings, theme Theme) string {
	titleHTML := ""
	if !s.LayoutHideTitle {
		titleHTML = fmt.Sprintf(`<h1 class="text-3xl md:text-4xl font-bold tracking-tight mb-3 %s" %s>{{SITE_NAME}}</h1>`,
			theme.TitleColorClass, styleAttr(s.HomeTitleSize, s.HomeTitleColor, s.HomeTitleFont))
	}
	subtitleHTML := ""
	if !s.LayoutHideSubtitle {
		subtitleHTML = fmt.Sprintf(`<p class="%s opacity-90 text-sm md:text-base" %s>{{SITE_DESCRIPTION}}</p>`,
			theme.SubTextColorClass, styleAttr(s.HomeSubtitleSize, s.HomeSubtitleColor, s.HomeSubtitleFont))
	}
	return titleHTML + subtitleHTML
}

func headerContent(s settings.PageSettings, theme Theme, tree *catalog.Tree, res catalog.Resolution, layout pageLayout) string {
	title := titleBlock(s, theme)
	engines := searchEngineOptions(s.HomeSearchEngineEnabled)

	vertical := fmt.Sprintf(`<div class="max-w-4xl mx-auto text-center relative z-10 %s py-8">`+
		`<div class="mb-8">%s</div>`+
		`<div class="relative max-w-xl mx-auto">%s%s</div>`+
		`</div>`, theme.ThemeClass, title, engines, searchBox(theme, ""))

	if !layout.horizontal {
		return vertical
	}

	horizontal := fmt.Sprintf(`<div class="max-w-5xl mx-auto text-center relative z-10 %s">`+
		`<div class="max-w-4xl mx-auto mb-8">%s</div>`+
		`<div class="relative max-w-xl mx-auto mb-8">%s%s</div>`+
		`<div class="relative max-w-5xl mx-auto">`+
		`<div id="horizontalCategoryNav" class="flex flex-wrap justify-center items-center gap-3 overflow-hidden transition-all duration-300" style="max-height: 60px;">%s`+
		`<div id="horizontalMoreWrapper" class="relative hidden">`+
		`<button id="horizontalMoreBtn" class="nav-btn inactive"><svg xmlns="http://www.w3.org/2000/svg" class="h-5 w-5" viewBox="0 0 20 20" fill="currentColor"><path d="M6 10a2 2 0 11-4 0 2 2 0 014 0zM12 10a2 2 0 11-4 0 2 2 0 014 0zM16 12a2 2 0 100-4 2 2 0 000 4z" /></svg></button>`+
		`<div id="horizontalMoreDropdown" class="dropdown-menu hidden absolute mt-2 w-auto z-50"></div>`+
		`</div></div></div></div>`,
		theme.ThemeClass, title, engines, searchBox(theme, "headerSearchInput"),
		horizontalCatalogMarkup(tree, res, res.CurrentCatalogName))

	// 水平模式下窄屏退回竖版头部
	return fmt.Sprintf(`<div class="min-[550px]:hidden">%s</div><div class="hidden min-[550px]:block">%s</div>`, vertical, horizontal)
}

func leftTopActions(layout pageLayout) string {
	return fmt.Sprintf(`<div class="fixed top-4 left-4 z-50 %s">`+
		`<button id="sidebarToggle" class="p-2 rounded-lg bg-white dark:bg-gray-800 shadow-md hover:bg-gray-100 dark:hover:bg-gray-700">`+
		`<svg xmlns="http://www.w3.org/2000/svg" class="h-6 w-6 text-primary-500 dark:text-primary-400" fill="none" viewBox="0 0 24 24" stroke="currentColor"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M4 6h16M4 12h16M4 18h16" /></svg>`+
		`</button></div>%s`, layout.mobileToggleClass, layout.githubIconHTML)
}

func topRightActions(layout pageLayout) string {
	themeToggle := `<button id="themeToggleBtn" class="flex items-center justify-center p-2 rounded-lg bg-white/80 backdrop-blur shadow-md hover:bg-white text-gray-700 hover:text-amber-500 dark:bg-gray-800/80 dark:text-gray-200 dark:hover:text-yellow-300 transition-all cursor-pointer" title="切换主题">` +
		`<svg id="themeIconSun" xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="block dark:hidden"><circle cx="12" cy="12" r="5"></circle><path d="M12 1v2M12 21v2M4.22 4.22l1.42 1.42M18.36 18.36l1.42 1.42M1 12h2M21 12h2M4.22 19.78l1.42-1.42M18.36 5.64l1.42-1.42"></path></svg>` +
		`<svg id="themeIconMoon" xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="hidden dark:block"><path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"></path></svg>` +
		`</button>`
	return fmt.Sprintf(`<div class="fixed top-4 right-4 z-50 flex items-center gap-3">%s%s</div>`, themeToggle, layout.adminIconHTML)
}

// hideIconsCSS hides the GitHub/admin entry points via CSS instead of
// stripping their markup, which survives template restructuring.
func hideIconsCSS(s settings.PageSettings) string {
	var b strings.Builder
	if s.HomeHideGithub {
		b.WriteString(`a[title="GitHub"] { display: none !important; }`)
	}
	if s.HomeHideAdmin {
		b.WriteString(`a[href^="/admin"] { display: none !important; }`)
	}
	if b.Len() == 0 {
		return ""
	}
	return "<style>" + b.String() + "</style>"
}

// globalScrollCSS 禁止 body 滚动、交由 #app-scroll 接管，背景层固定铺满。
// -webkit-fill-available 修复 iOS 上 100vh 含地址栏的问题。
const globalScrollCSS = `<style>
html, body { margin: 0; padding: 0; width: 100%; height: 100%; overflow: hidden; }
#app-scroll { width: 100%; height: 100%; overflow-y: auto; overflow-x: hidden; -webkit-overflow-scrolling: touch; }
body { background-color: transparent !important; }
#fixed-background { transition: background-color 0.3s ease, filter 0.3s ease; }
@supports (-webkit-touch-callout: none) { #fixed-background { height: -webkit-fill-available; } }
</style>`

func bodyOpen(theme Theme, bgLayerHTML string) string {
	wallpaperClass := ""
	if theme.CustomWallpaper {
		wallpaperClass = " custom-wallpaper"
	}
	return fmt.Sprintf(`<body class="bg-secondary-50 dark:bg-gray-900 font-sans text-gray-800 dark:text-gray-100 relative%s">%s<div id="app-scroll">`,
		wallpaperClass, bgLayerHTML)
}

// bgLayer 背景层使用 img 标签而非 background-image，规避移动端缩放问题
func bgLayer(s settings.PageSettings) string {
	safeURL := sanitize.SanitizeURL(s.LayoutCustomWallpaper)
	if safeURL == "" {
		return fmt.Sprintf(`<div id="fixed-background" style="position: fixed; top: 0; left: 0; width: 100%%; height: 100%%; z-index: -9999; pointer-events: none; background-color: %s;"></div>`, defaultBgColor)
	}

	blurStyle := ""
	if s.LayoutEnableBgBlur {
		// scale(1.02) 防止模糊后边缘出现白边
		blurStyle = fmt.Sprintf("filter: blur(%spx); transform: scale(1.02);", s.LayoutBgBlurIntensity)
	}
	return fmt.Sprintf(`<div id="fixed-background" style="position: fixed; top: 0; left: 0; width: 100%%; height: 100%%; z-index: -9999; pointer-events: none; overflow: hidden;"><img src="%s" alt="" style="width: 100%%; height: 100%%; object-fit: cover; %s" /></div>`,
		safeURL, blurStyle)
}

func cardCSSVars(s settings.PageSettings) string {
	// 圆角取前导数字，"20px" 这类带单位的历史值也接受；0 与无法解析都回退默认
	radius := 12
	if m := leadingDigitsPattern.FindString(strings.TrimSpace(s.LayoutCardBorderRadius)); m != "" {
		if n, err := strconv.Atoi(m); err == nil && n > 0 {
			radius = n
		}
	}
	blur := nonDigitPattern.ReplaceAllString(s.LayoutFrostedGlassIntensity, "")
	if blur == "" {
		blur = "15"
	}
	return fmt.Sprintf(`<style>:root { --card-padding: 1.25rem; --card-radius: %dpx; --frosted-glass-blur: %spx; }</style>`, radius, blur)
}

var (
	nonDigitPattern      = regexp.MustCompile(`[^0-9]`)
	leadingDigitsPattern = regexp.MustCompile(`^[0-9]+`)
)

// fontLinks collects stylesheet links for every font actually visible on
// the page. Hidden elements don't pull their font in; card fonts always do.
func fontLinks(s settings.PageSettings) string {
	used := make(map[string]struct{})
	add := func(font string) {
		if font != "" {
			used[font] = struct{}{}
		}
	}
	if !s.LayoutHideTitle {
		add(s.HomeTitleFont)
	}
	if !s.LayoutHideSubtitle {
		add(s.HomeSubtitleFont)
	}
	if !s.HomeHideStats {
		add(s.HomeStatsFont)
	}
	if !s.HomeHideHitokoto {
		add(s.HomeHitokotoFont)
	}
	add(s.CardTitleFont)
	add(s.CardDescFont)

	var b strings.Builder
	for font := range used {
		if href, ok := FontMap[font]; ok {
			fmt.Fprintf(&b, `<link rel="stylesheet" href="%s">`, href)
		}
	}

	// 兼容旧版自定义字体 URL
	if custom := sanitize.SanitizeURL(s.HomeCustomFontURL); custom != "" {
		fmt.Fprintf(&b, `<link rel="stylesheet" href="%s">`, custom)
	}
	return b.String()
}

func customCardCSS(s settings.PageSettings) string {
	var b strings.Builder
	if decl := styleDecl(s.CardTitleSize, s.CardTitleColor, s.CardTitleFont); decl != "" {
		fmt.Fprintf(&b, ".site-title { %s }", decl)
	}
	if decl := styleDecl(s.CardDescSize, s.CardDescColor, s.CardDescFont); decl != "" {
		fmt.Fprintf(&b, ".site-card p { %s }", decl)
	}
	if b.Len() == 0 {
		return ""
	}
	return "<style>" + b.String() + "</style>"
}

// sitesDataScript injects the full bookmark list for the client-side
// search. encoding/json escapes angle brackets by default, keeping the
// payload safe inside a script element.
func sitesDataScript(allSites []model.Site) string {
	if allSites == nil {
		allSites = []model.Site{}
	}
	data, err := json.Marshal(allSites)
	if err != nil {
		logrus.WithError(err).Warn("failed to marshal site list for client script")
		data = []byte("[]")
	}
	return fmt.Sprintf(`<script>window.IORI_SITES = %s;</script>`, data)
}

func layoutConfigScript(s settings.PageSettings) string {
	return fmt.Sprintf(`<script>window.IORI_LAYOUT_CONFIG = {
  hideDesc: %t,
  hideLinks: %t,
  hideCategory: %t,
  gridCols: %q,
  cardStyle: %q,
  enableFrostedGlass: %t,
  rememberLastCategory: %t,
  randomWallpaper: %t,
  wallpaperSource: %q,
  wallpaperCid360: %q,
  bingCountry: %q
};</script>`,
		s.LayoutHideDesc, s.LayoutHideLinks, s.LayoutHideCategory,
		s.LayoutGridCols, s.LayoutCardStyle, s.LayoutEnableFrostedGlass,
		s.HomeRememberLastCategory, s.LayoutRandomWallpaper,
		s.WallpaperSource, s.WallpaperCid360, s.BingCountry)
}
