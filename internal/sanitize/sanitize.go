package sanitize

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// DefaultSortOrder 排序值非法时的兜底值，保证排不了序的条目排在最后
const DefaultSortOrder = 9999

var permissiveURLPattern = regexp.MustCompile(`(?i)^https?://`)

// EscapeHTML escapes a string for safe insertion into HTML text or
// attribute context. The ampersand must be replaced first to avoid
// double-escaping the entities produced by later replacements.
func EscapeHTML(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}

// SanitizeURL returns a link-safe form of the input or "" when the input
// must not be rendered as a live link.
//
// Two tiers: a strict absolute-URL parse that only accepts http/https and
// returns the normalized form, then a permissive prefix match that keeps
// historical un-normalized values beginning with http(s):// verbatim.
func SanitizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if u, err := url.Parse(trimmed); err == nil && u.Host != "" {
		if u.Scheme != "http" && u.Scheme != "https" {
			return ""
		}
		return u.String()
	}

	if permissiveURLPattern.MatchString(trimmed) {
		return trimmed
	}
	return ""
}

// NormalizeSortOrder coerces a raw sort_order value (the column predates
// strict typing, old rows may hold text) to a finite number, falling back
// to DefaultSortOrder.
func NormalizeSortOrder(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return DefaultSortOrder
		}
		return int(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return DefaultSortOrder
		}
		return int(f)
	case nil:
		return DefaultSortOrder
	default:
		return DefaultSortOrder
	}
}
