package catalog

import (
	"sort"

	"iori_nav/internal/model"
)

// Node 分类树节点
type Node struct {
	model.Category
	Children []*Node `json:"children"`
}

// Tree 扁平分类行构建出的分类森林及其索引
type Tree struct {
	Roots    []*Node
	ByID     map[int]*Node
	IDByName map[string]int
}

// Build converts a flat category list into a sorted forest.
//
// Parent linking is a single pass over the flat list, never a pointer walk,
// so a cyclic or self-referencing parent_id cannot loop; a node whose parent
// chain never reaches a known root simply stays unreachable. A parent_id
// that references no existing category degrades to root placement.
func Build(categories []model.Category) *Tree {
	tree := &Tree{
		ByID:     make(map[int]*Node, len(categories)),
		IDByName: make(map[string]int, len(categories)),
	}

	nodes := make([]*Node, 0, len(categories))
	for _, cat := range categories {
		node := &Node{Category: cat, Children: []*Node{}}
		nodes = append(nodes, node)
		tree.ByID[cat.ID] = node
		if cat.Catelog != "" {
			tree.IDByName[cat.Catelog] = cat.ID
		}
	}

	for _, node := range nodes {
		if node.ParentID != 0 && tree.ByID[node.ParentID] != nil {
			parent := tree.ByID[node.ParentID]
			parent.Children = append(parent.Children, node)
		} else {
			tree.Roots = append(tree.Roots, node)
		}
	}

	sortNodes(tree.Roots)
	return tree
}

// sortNodes orders siblings by (sort_order asc, id asc) at every level
func sortNodes(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].SortOrder != nodes[j].SortOrder {
			return nodes[i].SortOrder < nodes[j].SortOrder
		}
		return nodes[i].ID < nodes[j].ID
	})
	for _, n := range nodes {
		sortNodes(n.Children)
	}
}
