package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/composite"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Formatter renders component trees as indented console output, one line per
// node, drawn with box-drawing connectors.
type Formatter struct {
	LeafStyle   *color.Color   // style for leaf lines; nil renders plain
	BranchStyle *color.Color   // style for branch lines; nil renders plain
	LineWidth   int            // maximum line width in terminal cells; 0 = unlimited
	Context     *uax11.Context // script context for cell widths; nil = Latin
}

// NewFormatter creates a formatter with a default color palette and without
// a line width limit.
func NewFormatter() *Formatter {
	return &Formatter{
		LeafStyle:   color.New(color.FgGreen),
		BranchStyle: color.New(color.FgCyan, color.Bold),
	}
}

// FormatterFromTerminal is a simple helper for creating a Formatter.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and limits output lines accordingly.
func FormatterFromTerminal() *Formatter {
	f := NewFormatter()
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil || w < 10 {
			f.LineWidth = 65
		} else {
			f.LineWidth = w
		}
		f.Context = uax11.ContextFromEnvironment()
	}
	tracer().P("format", "console").Infof("setting line width to %d en", f.LineWidth)
	return f
}

// Print renders root to standard output, uncolored and without width limit.
func Print(root composite.Component) {
	Fprint(os.Stdout, root)
}

// Fprint renders root to w, uncolored and without width limit.
func Fprint(w io.Writer, root composite.Component) {
	f := &Formatter{}
	f.Fprint(w, root)
}

// Fprint renders root and all components below it to w, one line per node.
// Branch lines read "Branch", leaf lines carry the leaf's Operation result.
func (f *Formatter) Fprint(w io.Writer, root composite.Component) {
	if root == nil {
		return
	}
	fmt.Fprintln(w, f.line("", root))
	f.printChildren(w, root, "")
}

func (f *Formatter) printChildren(w io.Writer, node composite.Component, prefix string) {
	children := childrenOf(node)
	for i, child := range children {
		f.printNode(w, child, prefix, i == len(children)-1)
	}
}

func (f *Formatter) printNode(w io.Writer, node composite.Component, prefix string, isLast bool) {
	connector := "├── "
	if isLast {
		connector = "└── "
	}
	fmt.Fprintln(w, f.line(prefix+connector, node))
	childPrefix := prefix + "│   "
	if isLast {
		childPrefix = prefix + "    "
	}
	f.printChildren(w, node, childPrefix)
}

// line assembles one output line. The label is clamped to the formatter's
// line width before any style escape sequences are applied.
func (f *Formatter) line(prefix string, node composite.Component) string {
	label, style := "Branch", f.BranchStyle
	if !node.IsComposite() {
		label, style = node.Operation(), f.LeafStyle
	}
	if f.LineWidth > 0 {
		ctx := f.Context
		if ctx == nil {
			ctx = uax11.LatinContext
		}
		avail := f.LineWidth - cellWidth(prefix, ctx)
		if avail < 1 {
			label = ""
		} else if cellWidth(label, ctx) > avail {
			label = clip(label, avail-1, ctx) + "…"
		}
	}
	if style == nil {
		return prefix + label
	}
	return prefix + style.Sprint(label)
}

func cellWidth(s string, ctx *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

// clip cuts s after at most cells terminal cells.
func clip(s string, cells int, ctx *uax11.Context) string {
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := cellWidth(string(r), ctx)
		if w+rw > cells {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String()
}

func childrenOf(node composite.Component) []composite.Component {
	if c, ok := node.(interface{ Children() []composite.Component }); ok {
		return c.Children()
	}
	return nil
}
