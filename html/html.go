package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/composite"
	"golang.org/x/net/html"
)

// ErrNoListFound is flagged when the HTML input contains no list structure.
const ErrNoListFound = composite.Error("no list element found in HTML input")

// Tree2HTML writes a component tree as nested HTML lists to w.
//
// Branches become <ul> elements holding one <li> per child position; leaves
// become plain <li> text carrying their Operation result. The rendering is
// the inverse of TreeFromHTML.
func Tree2HTML(root composite.Component, w io.Writer) error {
	if root == nil {
		return composite.ErrIllegalArguments
	}
	var sb strings.Builder
	writeNode(&sb, root, 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeNode(sb *strings.Builder, node composite.Component, indent int) {
	in := strings.Repeat("  ", indent)
	if !node.IsComposite() {
		fmt.Fprintf(sb, "%s<li>%s</li>\n", in, node.Operation())
		return
	}
	fmt.Fprintf(sb, "%s<ul>\n", in)
	for _, child := range childrenOf(node) {
		if child.IsComposite() {
			fmt.Fprintf(sb, "%s  <li>\n", in)
			writeNode(sb, child, indent+2)
			fmt.Fprintf(sb, "%s  </li>\n", in)
		} else {
			writeNode(sb, child, indent+1)
		}
	}
	fmt.Fprintf(sb, "%s</ul>\n", in)
}

// TreeFromHTML builds a component tree from nested HTML lists.
//
// The first list element found in the input becomes the root: <ul> elements
// become branches, their <li> children become leaves, except when an <li>
// holds a nested <ul>, in which case it becomes a branch. Markup outside the
// list structure is ignored; the text content of leaf items is not
// interpreted.
func TreeFromHTML(input io.Reader) (composite.Component, error) {
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	list := findList(doc)
	if list == nil {
		return nil, ErrNoListFound
	}
	return buildNode(list), nil
}

func findList(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && (n.Data == "ul" || n.Data == "li") {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findList(c); found != nil {
			return found
		}
	}
	return nil
}

func buildNode(n *html.Node) composite.Component {
	if n.Data == "ul" {
		br := composite.NewBranch()
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "li" {
				br.Add(buildNode(c))
			}
		}
		return br
	}
	// an <li> holding a nested list is a branch, any other <li> is a leaf
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "ul" {
			return buildNode(c)
		}
	}
	return composite.NewLeaf()
}

func childrenOf(node composite.Component) []composite.Component {
	if c, ok := node.(interface{ Children() []composite.Component }); ok {
		return c.Children()
	}
	return nil
}
