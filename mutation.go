package composite

import "fmt"

// MutationOp enumerates the kinds of child-list changes a branch performs.
type MutationOp int8

// Child-list change kinds.
const (
	Added MutationOp = iota
	Removed
)

func (op MutationOp) String() string {
	switch op {
	case Added:
		return "add"
	case Removed:
		return "remove"
	}
	return fmt.Sprintf("mutation(%d)", op)
}

// Mutation describes a single child-list change of a branch. Mutations occur
// during tree assembly only; assembly and traversal never overlap.
type Mutation struct {
	Op     MutationOp
	Branch *Branch
	Child  Component
}

// OnMutation registers f to be called, synchronously and in registration
// order, for every subsequent child-list change of the branch. Changes of
// nested branches are not propagated upwards; observers interested in a whole
// tree register on every branch (see package watch).
func (br *Branch) OnMutation(f func(Mutation)) {
	if f == nil {
		return
	}
	br.observers = append(br.observers, f)
}

func (br *Branch) publish(m Mutation) {
	for _, f := range br.observers {
		f(m)
	}
}
