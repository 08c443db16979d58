package watch

import (
	"context"
	"testing"

	"github.com/npillmayer/composite"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestJournalBroadcastsMutations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "composite")
	defer teardown()

	tree := composite.NewBranch()
	j := NewJournal()
	j.Watch(tree)
	events, ok := j.Subscribe(context.Background())
	if !ok {
		t.Fatal("subscription refused")
	}
	defer j.Close()

	leaf := composite.NewLeaf()
	tree.Add(leaf)
	tree.Remove(leaf)

	m := <-events
	if m.Op != composite.Added {
		t.Errorf("first event: op=%s, want add", m.Op)
	}
	if m.Child != composite.Component(leaf) || m.Branch != tree {
		t.Errorf("first event does not describe the add")
	}
	m = <-events
	if m.Op != composite.Removed {
		t.Errorf("second event: op=%s, want remove", m.Op)
	}
}

func TestJournalWatchesNestedBranches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "composite")
	defer teardown()

	inner := composite.NewBranch()
	tree := composite.NewBranch(inner)
	j := NewJournal()
	j.Watch(tree)
	events, ok := j.Subscribe(context.Background())
	if !ok {
		t.Fatal("subscription refused")
	}
	defer j.Close()

	inner.Add(composite.NewLeaf())
	m := <-events
	if m.Branch != inner {
		t.Errorf("event branch is not the nested branch")
	}
}

func TestSubscribeAfterClose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "composite")
	defer teardown()

	j := NewJournal()
	j.Close()
	if _, ok := j.Subscribe(context.Background()); ok {
		t.Error("subscription on a closed journal succeeded, may not")
	}
}
