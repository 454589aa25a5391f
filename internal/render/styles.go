package render

// Theme bundles every class string that flips between the default (solid
// header) look and the custom-wallpaper (transparent chrome) look, so the
// two visual modes are declared in one place instead of being re-derived
// ad hoc at each injection point.
type Theme struct {
	CustomWallpaper bool

	ThemeClass        string
	HeaderClass       string
	ContainerClass    string
	TitleColorClass   string
	SubTextColorClass string
	SearchInputClass  string
	SearchIconClass   string
	FooterClass       string
	HitokotoClass     string

	// 侧边栏分类图标在壁纸模式下需要更深的颜色保证可读性
	DefaultIconColor string
}

// ThemeFor returns the class bundle for the given wallpaper mode
func ThemeFor(customWallpaper bool) Theme {
	if customWallpaper {
		return Theme{
			CustomWallpaper:   true,
			ThemeClass:        "custom-wallpaper",
			HeaderClass:       "bg-transparent border-none shadow-none transition-colors duration-300",
			ContainerClass:    "rounded-2xl",
			TitleColorClass:   "text-gray-900 dark:text-gray-100",
			SubTextColorClass: "text-gray-600 dark:text-gray-300",
			SearchInputClass:  "bg-white/90 backdrop-blur border border-gray-200 text-gray-800 placeholder-gray-400 focus:ring-primary-200 focus:border-primary-400 focus:bg-white dark:bg-gray-800/90 dark:border-gray-600 dark:text-gray-200 dark:focus:bg-gray-800",
			SearchIconClass:   "text-gray-400 dark:text-gray-500",
			FooterClass:       "bg-transparent py-8 px-6 mt-12 border-none shadow-none text-black dark:text-gray-200",
			HitokotoClass:     "text-black dark:text-gray-200 ml-auto",
			DefaultIconColor:  "text-gray-600",
		}
	}
	return Theme{
		ThemeClass:        "",
		HeaderClass:       "bg-primary-700 text-white border-b border-primary-600 shadow-sm dark:bg-gray-900 dark:border-gray-800",
		ContainerClass:    "rounded-2xl border border-primary-100/60 bg-white/80 backdrop-blur-sm shadow-sm dark:bg-gray-800/80 dark:border-gray-700",
		TitleColorClass:   "text-white",
		SubTextColorClass: "text-primary-100/90 dark:text-gray-400",
		SearchInputClass:  "bg-white/15 text-white placeholder-primary-200 focus:ring-white/30 focus:bg-white/20 border-none dark:bg-gray-800/50 dark:text-gray-200 dark:placeholder-gray-500",
		SearchIconClass:   "text-primary-200 dark:text-gray-500",
		FooterClass:       "bg-white py-8 px-6 mt-12 border-t border-primary-100 dark:bg-gray-900 dark:border-gray-800 dark:text-gray-400",
		HitokotoClass:     "text-gray-500 dark:text-gray-400 ml-auto",
		DefaultIconColor:  "text-gray-400 dark:text-gray-500",
	}
}

// GridClass maps the layout_grid_cols setting to the responsive grid class
// list. Breakpoints widen gradually so mid-width screens never fall back to
// fewer columns than the 4-column default.
func GridClass(cols string) string {
	switch cols {
	case "5":
		return "grid grid-cols-2 md:grid-cols-3 lg:grid-cols-5 gap-3 sm:gap-6 justify-items-center"
	case "6":
		return "grid grid-cols-2 md:grid-cols-3 lg:grid-cols-5 min-[1200px]:grid-cols-6 gap-3 sm:gap-6 justify-items-center"
	case "7":
		return "grid grid-cols-2 md:grid-cols-3 lg:grid-cols-5 xl:grid-cols-7 gap-3 sm:gap-6 justify-items-center"
	default:
		return "grid grid-cols-2 md:grid-cols-3 lg:grid-cols-4 gap-3 sm:gap-6 justify-items-center"
	}
}
