package composite

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strings"
)

// Component is the uniform abstraction over tree nodes, covering both leaves
// and branches.
//
// Clients hold components without knowing their concrete kind and invoke
// Operation uniformly; the concrete variant decides whether this is a direct
// result (leaf) or a recursive aggregation over children (branch).
//
// Add and Remove are part of the uniform surface so that client code may call
// them on any component without type-checking; they only have an effect on
// branches. IsComposite lets clients branch on structural capability where
// they have to.
type Component interface {
	// Operation returns the node's result string, built bottom-up from
	// leaves to root.
	Operation() string

	// Parent returns the component's current container, or nil for roots.
	Parent() Component

	// SetParent stores a non-owning back-reference to the new parent,
	// replacing any prior one. A nil parent is legal (root case).
	SetParent(parent Component)

	// Add appends child to the component's child list, if it has one.
	// Leaves ignore the call.
	Add(child Component)

	// Remove excludes child from the component's child list, if it has one.
	// Leaves ignore the call.
	Remove(child Component)

	// IsComposite reports whether the component may hold children.
	IsComposite() bool
}

// --- Leaf ------------------------------------------------------------------

// Leaf is a terminal tree node. It holds no children and its Operation result
// is a fixed identity value, independent of parent state.
type Leaf struct {
	parent Component
}

// NewLeaf creates a leaf node, initially without a parent.
func NewLeaf() *Leaf {
	return &Leaf{}
}

// Operation returns the leaf's identity value.
func (l *Leaf) Operation() string {
	return "Leaf"
}

// Parent returns the leaf's current container, or nil.
func (l *Leaf) Parent() Component {
	return l.parent
}

// SetParent stores a non-owning back-reference to the new parent.
func (l *Leaf) SetParent(parent Component) {
	l.parent = parent
}

// Add is a no-op: leaves hold no children.
func (l *Leaf) Add(Component) {}

// Remove is a no-op: leaves hold no children.
func (l *Leaf) Remove(Component) {}

// IsComposite returns false for leaves.
func (l *Leaf) IsComposite() bool {
	return false
}

var _ Component = &Leaf{}

// --- Branch ----------------------------------------------------------------

// Branch is an internal tree node owning an ordered list of child components.
//
// The child list order is insertion order and determines the order of child
// results within the branch's Operation result. Branches own their child
// list; the parent links of their children are non-owning back-references,
// used for upward navigation only.
type Branch struct {
	parent    Component
	children  []Component
	observers []func(Mutation)
}

// NewBranch creates a branch node holding the given children, in order.
func NewBranch(children ...Component) *Branch {
	br := &Branch{}
	for _, child := range children {
		br.Add(child)
	}
	return br
}

// Operation invokes Operation on each child in insertion order and joins the
// results:
//
//	"Branch(" + r1 + "+" + r2 + ... + "+" + rn + ")"
//
// A branch without children yields "Branch()".
func (br *Branch) Operation() string {
	results := make([]string, len(br.children))
	for i, child := range br.children {
		results[i] = child.Operation()
	}
	return "Branch(" + strings.Join(results, "+") + ")"
}

// Parent returns the branch's current container, or nil for roots.
func (br *Branch) Parent() Component {
	return br.parent
}

// SetParent stores a non-owning back-reference to the new parent.
func (br *Branch) SetParent(parent Component) {
	br.parent = parent
}

// Add appends child to the ordered child list and re-points the child's
// parent link to br.
//
// There is no duplicate detection: the same component handle may be added
// more than once and will then contribute its result once per position.
// A nil child is ignored.
func (br *Branch) Add(child Component) {
	if child == nil {
		return
	}
	br.children = append(br.children, child)
	child.SetParent(br)
	br.publish(Mutation{Op: Added, Branch: br, Child: child})
}

// Remove excludes all occurrences of child from the child list and clears the
// child's parent link. Components are matched by handle identity. Removing a
// component that is not a child has no effect.
func (br *Branch) Remove(child Component) {
	if child == nil {
		return
	}
	total := len(br.children)
	kept := br.children[:0]
	for _, c := range br.children {
		if c == child {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == total {
		return
	}
	for i := len(kept); i < total; i++ {
		br.children[i] = nil
	}
	br.children = kept
	if child.Parent() == br {
		child.SetParent(nil)
	}
	br.publish(Mutation{Op: Removed, Branch: br, Child: child})
}

// IsComposite returns true for branches.
func (br *Branch) IsComposite() bool {
	return true
}

// Children returns the branch's child components in insertion order.
// The returned slice is a copy; mutating it does not affect the branch.
func (br *Branch) Children() []Component {
	children := make([]Component, len(br.children))
	copy(children, br.children)
	return children
}

// ChildCount returns the number of child positions held by the branch.
func (br *Branch) ChildCount() int {
	return len(br.children)
}

var _ Component = &Branch{}
