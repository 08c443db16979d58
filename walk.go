package composite

import "iter"

// container is the structural capability traversal relies on: any component
// exposing an ordered child list is descended into.
type container interface {
	Children() []Component
}

// Range returns an iterator over root and every component below it, in
// depth-first pre-order. Children are visited in insertion order; a component
// added at more than one position is visited once per position.
func Range(root Component) iter.Seq[Component] {
	return func(yield func(Component) bool) {
		if root == nil {
			return
		}
		rangeComponent(root, yield)
	}
}

func rangeComponent(node Component, yield func(Component) bool) bool {
	if !yield(node) {
		return false
	}
	if c, ok := node.(container); ok {
		for _, child := range c.Children() {
			if !rangeComponent(child, yield) {
				return false
			}
		}
	}
	return true
}

// Each visits root and every component below it in depth-first pre-order.
//
// The callback receives each component together with its nesting depth,
// 0 for the root. Iteration stops at the first callback error and returns
// that error to the caller.
func Each(root Component, f func(node Component, depth int) error) error {
	if root == nil {
		return nil
	}
	return eachComponent(root, 0, f)
}

func eachComponent(node Component, depth int, f func(Component, int) error) error {
	if err := f(node, depth); err != nil {
		return err
	}
	if c, ok := node.(container); ok {
		for _, child := range c.Children() {
			if err := eachComponent(child, depth+1, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Root follows parent links upwards from node and returns the outermost
// container, or node itself if it has no parent.
func Root(node Component) Component {
	if node == nil {
		return nil
	}
	for node.Parent() != nil {
		node = node.Parent()
	}
	return node
}

// Depth returns the number of parent links between node and its root,
// 0 if node is a root.
func Depth(node Component) int {
	if node == nil {
		return 0
	}
	d := 0
	for node.Parent() != nil {
		node = node.Parent()
		d++
	}
	return d
}
