package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/composite"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFprintTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "composite")
	defer teardown()

	tree := composite.NewBranch(
		composite.NewBranch(composite.NewLeaf(), composite.NewLeaf()),
		composite.NewLeaf(),
	)
	var buf bytes.Buffer
	Fprint(&buf, tree)
	want := strings.Join([]string{
		"Branch",
		"├── Branch",
		"│   ├── Leaf",
		"│   └── Leaf",
		"└── Leaf",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("unexpected rendering:\n%s", buf.String())
	}
}

func TestFprintLeafOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "composite")
	defer teardown()

	var buf bytes.Buffer
	Fprint(&buf, composite.NewLeaf())
	if buf.String() != "Leaf\n" {
		t.Errorf("leaf rendering: got=%q want=%q", buf.String(), "Leaf\n")
	}
}

func TestFprintClampsWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "composite")
	defer teardown()

	f := &Formatter{LineWidth: 6}
	tree := composite.NewBranch(composite.NewLeaf())
	var buf bytes.Buffer
	f.Fprint(&buf, tree)
	want := strings.Join([]string{
		"Branch",
		"└── L…",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("clamped rendering: got=%q want=%q", buf.String(), want)
	}
}
