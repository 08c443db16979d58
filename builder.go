package composite

// Builder incrementally stages components and finalizes them into a tree.
//
// Builder collects child components and materializes the root branch only
// when Tree() is called. This keeps mutation logic in one place and lets
// clients assemble a tree front-to-back, back-to-front, or both.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// front keeps prepended components in reverse logical order.
	front []Component
	// back keeps appended components in logical order.
	back []Component

	done  bool
	dirty bool
	root  *Branch
}

// NewBuilder creates a new and empty tree builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Tree returns the branch built from all staged components.
//
// It is illegal to continue adding components after Tree has been called, but
// Tree may be called multiple times.
func (b *Builder) Tree() *Branch {
	if b == nil {
		return NewBranch()
	}
	if b.root == nil || b.dirty {
		b.root = b.buildTree()
		b.dirty = false
	}
	b.done = true
	if b.root.ChildCount() == 0 {
		tracer().Debugf("tree builder: branch is empty")
	}
	return b.root
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.root = nil
}

// Append appends a component at the end of the staged child sequence.
func (b *Builder) Append(child Component) error {
	if b == nil || child == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTreeCompleted
	}
	b.back = append(b.back, child)
	b.dirty = true
	return nil
}

// Prepend prepends a component at the start of the staged child sequence.
func (b *Builder) Prepend(child Component) error {
	if b == nil || child == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTreeCompleted
	}
	// front is stored in reverse logical order.
	b.front = append(b.front, child)
	b.dirty = true
	return nil
}

func (b *Builder) buildTree() *Branch {
	br := NewBranch()
	for i := len(b.front) - 1; i >= 0; i-- {
		br.Add(b.front[i])
	}
	for _, child := range b.back {
		br.Add(child)
	}
	return br
}
