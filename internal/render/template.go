package render

import (
	_ "embed"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

//go:embed templates/index.html
var baseTemplate string

// gridClassLiteral 模板里书签网格的原始 class，渲染时按配置整体换掉
const gridClassLiteral = "grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 xl:grid-cols-4 gap-4 sm:gap-6"

// bodyOpenLiteral 模板 body 标签原文，渲染时替换为带滚动容器的结构
const bodyOpenLiteral = `<body class="bg-secondary-50 font-sans text-gray-800">`

var tokenPattern = regexp.MustCompile(`\{\{[A-Z_]+\}\}`)

// Replacer performs token substitution over the embedded page template.
// Tokens look like {{SITE_NAME}}. Substitution never fails: a token left
// unmatched at Finish time renders as-is and is logged, so a template edit
// can't take the home page down.
type Replacer struct {
	html string
	log  *logrus.Entry
}

// NewReplacer starts a render pass from the embedded template
func NewReplacer() *Replacer {
	return &Replacer{
		html: baseTemplate,
		log:  logrus.WithField("component", "render"),
	}
}

// Replace substitutes the first occurrence of a token
func (p *Replacer) Replace(token, value string) {
	p.html = strings.Replace(p.html, "{{"+token+"}}", value, 1)
}

// ReplaceAll substitutes every occurrence of a token
func (p *Replacer) ReplaceAll(token, value string) {
	p.html = strings.ReplaceAll(p.html, "{{"+token+"}}", value)
}

// Swap replaces a raw template fragment once, for the two spots that are
// keyed on literal markup instead of a token (grid class list, body tag).
func (p *Replacer) Swap(old, new string) {
	p.html = strings.Replace(p.html, old, new, 1)
}

// InjectHead inserts a fragment immediately before </head>
func (p *Replacer) InjectHead(fragment string) {
	if fragment == "" {
		return
	}
	p.html = strings.Replace(p.html, "</head>", fragment+"</head>", 1)
}

// Finish returns the rendered page, logging any token that survived the
// pass. Leftovers indicate template drift, not a render failure.
func (p *Replacer) Finish() string {
	if leftover := tokenPattern.FindAllString(p.html, -1); len(leftover) > 0 {
		p.log.WithField("tokens", strings.Join(leftover, ",")).Warn("unmatched template tokens left in rendered page")
	}
	return p.html
}
