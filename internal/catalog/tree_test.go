package catalog

import (
	"testing"

	"iori_nav/internal/model"
)

func cat(id, parentID, sortOrder int, name string) model.Category {
	return model.Category{ID: id, ParentID: parentID, SortOrder: sortOrder, Catelog: name}
}

func TestBuild_RootOrderAndChildren(t *testing.T) {
	tree := Build([]model.Category{
		cat(1, 0, 2, "工具"),
		cat(2, 1, 1, "开发工具"),
		cat(3, 0, 1, "资讯"),
	})

	if len(tree.Roots) != 2 {
		t.Fatalf("Expected 2 roots, got %d", len(tree.Roots))
	}
	if tree.Roots[0].ID != 3 || tree.Roots[1].ID != 1 {
		t.Errorf("Expected root order [3, 1], got [%d, %d]", tree.Roots[0].ID, tree.Roots[1].ID)
	}

	node1 := tree.ByID[1]
	if len(node1.Children) != 1 || node1.Children[0].ID != 2 {
		t.Errorf("Expected node 1's children to be [2], got %+v", node1.Children)
	}
}

func TestBuild_SiblingTieBreakByID(t *testing.T) {
	tree := Build([]model.Category{
		cat(5, 0, 1, "b"),
		cat(2, 0, 1, "a"),
	})

	if tree.Roots[0].ID != 2 || tree.Roots[1].ID != 5 {
		t.Errorf("Equal sort_order should fall back to id order, got [%d, %d]", tree.Roots[0].ID, tree.Roots[1].ID)
	}
}

func TestBuild_MissingParentFallsBackToRoot(t *testing.T) {
	tree := Build([]model.Category{
		cat(1, 99, 1, "孤儿分类"),
	})

	if len(tree.Roots) != 1 || tree.Roots[0].ID != 1 {
		t.Errorf("Node with unknown parent should become a root, got %+v", tree.Roots)
	}
}

func TestBuild_ChildrenSortedRecursively(t *testing.T) {
	tree := Build([]model.Category{
		cat(1, 0, 1, "root"),
		cat(2, 1, 9, "late"),
		cat(3, 1, 1, "early"),
	})

	children := tree.ByID[1].Children
	if len(children) != 2 || children[0].ID != 3 || children[1].ID != 2 {
		t.Errorf("Children should be sorted by sort_order, got %+v", children)
	}
}

func TestBuild_SelfReferenceDoesNotLoop(t *testing.T) {
	// 自引用节点会从根列表消失（链条无法抵达根），但构建必须终止
	tree := Build([]model.Category{
		cat(1, 1, 1, "自引用"),
		cat(2, 0, 1, "正常"),
	})

	if len(tree.Roots) != 1 || tree.Roots[0].ID != 2 {
		t.Errorf("Self-referencing node must not appear at root, got %+v", tree.Roots)
	}
}

func TestBuild_Cycle(t *testing.T) {
	// 1 → 2 → 1 互为父子：单遍挂接保证终止，两个节点都不可达
	tree := Build([]model.Category{
		cat(1, 2, 1, "a"),
		cat(2, 1, 1, "b"),
	})

	if len(tree.Roots) != 0 {
		t.Errorf("Cycle members should be unreachable from root, got %+v", tree.Roots)
	}
	if len(tree.ByID) != 2 {
		t.Errorf("ByID index should still hold both nodes")
	}
}

func TestBuild_NameIndex(t *testing.T) {
	tree := Build([]model.Category{
		cat(7, 0, 1, "工具"),
	})

	if id, ok := tree.IDByName["工具"]; !ok || id != 7 {
		t.Errorf("Expected IDByName to map 工具 → 7, got %d (ok=%v)", id, ok)
	}
}
