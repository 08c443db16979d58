package watch

import (
	"context"

	"github.com/guiguan/caster"
	"github.com/npillmayer/composite"
)

// Journal broadcasts the assembly mutations of component trees to any number
// of subscribers.
//
// A journal is attached to branches with Watch and closed when assembly is
// done. Subscribers receive every add and remove of watched branches in
// publication order. Trees are assembled by a single writer; the journal
// reports mutations, it does not make trees safe for concurrent mutation.
type Journal struct {
	cast *caster.Caster
}

// NewJournal creates a journal, ready for Watch and Subscribe.
func NewJournal() *Journal {
	return &Journal{
		cast: caster.New(nil), // we will broadcast mutations as they happen
	}
}

// Watch registers the journal with root and every branch below it.
//
// Branches wired into watched branches later are not picked up
// automatically; call Watch again for them.
func (j *Journal) Watch(root composite.Component) {
	if j == nil || root == nil {
		return
	}
	_ = composite.Each(root, func(node composite.Component, depth int) error {
		if br, ok := node.(*composite.Branch); ok {
			br.OnMutation(j.record)
		}
		return nil
	})
}

func (j *Journal) record(m composite.Mutation) {
	tracer().Debugf("tree mutation: %s", m.Op)
	j.cast.Pub(m)
}

// Subscribe returns a channel receiving all subsequent mutations of watched
// branches. The channel is closed when the journal is closed or ctx is done.
// ctx may be nil. The second return value is false if the journal is already
// closed.
func (j *Journal) Subscribe(ctx context.Context) (<-chan composite.Mutation, bool) {
	ch, ok := j.cast.Sub(ctx, 16)
	if !ok {
		return nil, false
	}
	out := make(chan composite.Mutation, 16)
	go func() {
		defer close(out)
		for m := range ch {
			if mut, ok := m.(composite.Mutation); ok {
				out <- mut
			}
		}
	}()
	return out, true
}

// Close stops the journal and closes all subscription channels. Watched
// branches keep their registration; their subsequent mutations are dropped.
func (j *Journal) Close() {
	j.cast.Close()
}
