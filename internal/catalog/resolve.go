package catalog

import (
	"net/http"
	"strings"

	"iori_nav/internal/cookieutil"
)

// Resolution is the outcome of the active-category decision for a request
type Resolution struct {
	// TargetCategoryIDs 仅含当前分类自身，不含子分类（产品决策，见注释）
	TargetCategoryIDs  []int
	CurrentCatalogName string
	CatalogExists      bool
}

// Resolve decides which category is active for the request.
//
// Priority: explicit ?catalog= query parameter ("all" forces show-all) >
// remembered-category cookie (only when the remember setting is on) >
// configured default category > show all.
func Resolve(r *http.Request, queryCatalog string, rememberLast bool, defaultCategory string, tree *Tree) Resolution {
	requested := strings.TrimSpace(queryCatalog)
	explicitAll := strings.EqualFold(requested, "all")

	if requested == "" && !explicitAll {
		cookieAll := false
		cookieCatID := 0
		if rememberLast {
			if isAll, id, ok := cookieutil.LastCategory(r); ok {
				cookieAll = isAll
				cookieCatID = id
			}
		}

		if cookieAll {
			// 显式 "all"，跳过默认分类逻辑
			requested = "all"
		} else if node := tree.ByID[cookieCatID]; cookieCatID != 0 && node != nil {
			// 通过 ID 反查名称，后续过滤基于名称
			requested = node.Catelog
		} else {
			if def := strings.TrimSpace(defaultCategory); def != "" {
				if _, ok := tree.IDByName[def]; ok {
					requested = def
				}
			}
		}
	}

	res := Resolution{}
	if requested != "" {
		if rootID, ok := tree.IDByName[requested]; ok {
			res.CatalogExists = true
			res.CurrentCatalogName = requested
			// 用户要求：仅显示当前分类的数据，不包含子分类
			res.TargetCategoryIDs = append(res.TargetCategoryIDs, rootID)
		}
	}
	return res
}
