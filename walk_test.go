package composite

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRangePreorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "composite")
	defer teardown()

	tree := NewBranch(
		NewBranch(NewLeaf(), NewLeaf()),
		NewLeaf(),
	)
	var kinds []bool
	for node := range Range(tree) {
		kinds = append(kinds, node.IsComposite())
	}
	want := []bool{true, true, false, false, false}
	if len(kinds) != len(want) {
		t.Fatalf("visited %d components, want %d", len(kinds), len(want))
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("visit %d: composite=%v, want %v", i, kinds[i], k)
		}
	}
}

func TestRangeStopsEarly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "composite")
	defer teardown()

	tree := NewBranch(NewLeaf(), NewLeaf())
	count := 0
	for range Range(tree) {
		count++
		break
	}
	if count != 1 {
		t.Errorf("early break visited %d components, want 1", count)
	}
}

func TestEachDepths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "composite")
	defer teardown()

	tree := NewBranch(
		NewBranch(NewLeaf(), NewLeaf()),
		NewLeaf(),
	)
	var depths []int
	err := Each(tree, func(node Component, depth int) error {
		depths = append(depths, depth)
		return nil
	})
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	want := []int{0, 1, 2, 2, 1}
	if len(depths) != len(want) {
		t.Fatalf("visited %d components, want %d", len(depths), len(want))
	}
	for i, d := range want {
		if depths[i] != d {
			t.Errorf("visit %d: depth=%d, want %d", i, depths[i], d)
		}
	}
}

func TestEachStopsOnError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "composite")
	defer teardown()

	tree := NewBranch(NewLeaf(), NewLeaf())
	visits := 0
	err := Each(tree, func(node Component, depth int) error {
		visits++
		return ErrIllegalArguments
	})
	if err != ErrIllegalArguments {
		t.Errorf("walk error: got=%v, want ErrIllegalArguments", err)
	}
	if visits != 1 {
		t.Errorf("walk continued after error: %d visits", visits)
	}
}

func TestRootAndDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "composite")
	defer teardown()

	leaf := NewLeaf()
	inner := NewBranch(leaf)
	tree := NewBranch(inner)
	if Root(leaf) != Component(tree) {
		t.Errorf("root of leaf is not the outermost branch")
	}
	if Root(tree) != Component(tree) {
		t.Errorf("root of a root is not itself")
	}
	if d := Depth(leaf); d != 2 {
		t.Errorf("depth of leaf = %d, want 2", d)
	}
	if d := Depth(tree); d != 0 {
		t.Errorf("depth of root = %d, want 0", d)
	}
}
