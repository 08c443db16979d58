/*
Package composite implements trees of uniformly treated components.

Composite Trees

A component tree consists of two kinds of nodes: leaves, which carry no
children, and branches, which hold an ordered list of child components.
Clients never need to know which kind they hold: both satisfy interface
Component and answer the single polymorphic Operation call. For a leaf the
result is its identity value; for a branch the result is aggregated
bottom-up from the results of its children, in insertion order.

	branch := composite.NewBranch(composite.NewLeaf(), composite.NewLeaf())
	fmt.Println(branch.Operation())   // "Branch(Leaf+Leaf)"

Trees are assembled by a single caller, before any traversal. The structure
is not designed for concurrent mutation; construction and Operation calls
must not overlap.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package composite

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'composite'
func tracer() tracing.Trace {
	return tracing.Select("composite")
}

// Error is an error type for the composite module.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrTreeCompleted signals that a tree builder has already completed a tree
// and it's illegal to further add components.
const ErrTreeCompleted = Error("forbidden to add components; tree has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = Error("illegal arguments")
