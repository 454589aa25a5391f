package render

// FontMap 后台字体下拉项到字体样式表的映射。
// 键与 settings 表中 *_font 配置项的取值一一对应，未命中的值按
// 系统字体处理，不注入任何样式表。
var FontMap = map[string]string{
	"Noto Sans SC":          "https://fonts.googleapis.com/css2?family=Noto+Sans+SC:wght@300;400;500;700&display=swap",
	"Noto Serif SC":         "https://fonts.googleapis.com/css2?family=Noto+Serif+SC:wght@400;500;700&display=swap",
	"ZCOOL KuaiLe":          "https://fonts.googleapis.com/css2?family=ZCOOL+KuaiLe&display=swap",
	"ZCOOL XiaoWei":         "https://fonts.googleapis.com/css2?family=ZCOOL+XiaoWei&display=swap",
	"ZCOOL QingKe HuangYou": "https://fonts.googleapis.com/css2?family=ZCOOL+QingKe+HuangYou&display=swap",
	"Ma Shan Zheng":         "https://fonts.googleapis.com/css2?family=Ma+Shan+Zheng&display=swap",
	"Zhi Mang Xing":         "https://fonts.googleapis.com/css2?family=Zhi+Mang+Xing&display=swap",
	"Liu Jian Mao Cao":      "https://fonts.googleapis.com/css2?family=Liu+Jian+Mao+Cao&display=swap",
	"Long Cang":             "https://fonts.googleapis.com/css2?family=Long+Cang&display=swap",
	"LXGW WenKai":           "https://cdn.jsdelivr.net/npm/lxgw-wenkai-webfont@1.1.0/style.css",
}
