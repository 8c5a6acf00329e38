package ast

import (
	"fmt"

	"github.com/ContextLogic/slimit/pkg/errors"
)

// Replace substitutes replacement for n inside n's parent, without the
// caller knowing the parent's concrete variant. Every parent slot currently
// holding n — single fields and list elements alike — is overwritten, and
// replacement's parent link is set to the parent. Slots are matched by
// identity, never by structural equality, so a sibling that happens to be
// an equal-looking node is left alone.
//
// The replacement may be a different variant than n (the typical rewrite:
// swapping a function call for a folded string literal). Slots the grammar
// restricts to a narrower type (a label name, a try clause) only accept a
// replacement of that type; anything else fails with ErrBadSlot. On any
// failure the tree is left unmodified — slots are only written once every
// matched slot has accepted the replacement.
//
// n itself is not modified: its own children and parent link are left in
// place, and the subtree rooted at n becomes an orphan. Nothing cascades —
// replacement's descendants were linked at construction time and siblings
// are untouched.
//
// Replacing the root is not possible this way: when n has no parent,
// Replace fails with a RewriteError wrapping ErrNoParent and the tree is
// left unmodified. A caller that owns the root must swap its own root slot.
func Replace(n, replacement Node) error {
	parent := n.Parent()
	if parent == nil {
		return errors.NewRewrite(nodePos(n), "cannot replace the root node", errors.ErrNoParent)
	}
	count, err := parent.replaceChild(n, replacement)
	if err != nil {
		return err
	}
	if count == 0 {
		return errors.NewRewrite(nodePos(n),
			fmt.Sprintf("node is not a child of its recorded parent (%T)", parent),
			errors.ErrNotChild)
	}
	replacement.setParent(parent)
	return nil
}

func nodePos(n Node) errors.Position {
	return errors.Position{Line: n.Line()}
}

// replacer accumulates the outcome of scanning one parent's slots. Each
// variant's replaceChild lists its slots through slot and list calls — a
// per-variant mutator table standing in for the attribute reflection the
// design was ported from.
//
// The scan is two-phase: matching slots are type-checked and queued first,
// and nothing is written until every matched slot accepts the replacement.
// A node occupying two slots of different static types therefore either
// gets replaced everywhere or not at all; an ErrBadSlot failure leaves the
// tree unmodified.
type replacer struct {
	old         Node
	replacement Node
	commits     []func()
	err         error
}

func (r *replacer) done() (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	for _, commit := range r.commits {
		commit()
	}
	return len(r.commits), nil
}

// slot queues a rewrite of a single-value field when it currently holds the
// target.
func slot[T Node](r *replacer, field *T) {
	if r.err != nil {
		return
	}
	if any(*field) == nil || Node(*field) != r.old {
		return
	}
	rep, ok := r.replacement.(T)
	if !ok {
		r.err = r.badSlot()
		return
	}
	r.commits = append(r.commits, func() { *field = rep })
}

// list queues a rewrite of every element of an ordered child list that
// currently holds the target.
func list[T Node](r *replacer, elems []T) {
	for i := range elems {
		if r.err != nil {
			return
		}
		if any(elems[i]) == nil || Node(elems[i]) != r.old {
			continue
		}
		rep, ok := r.replacement.(T)
		if !ok {
			r.err = r.badSlot()
			return
		}
		i := i
		r.commits = append(r.commits, func() { elems[i] = rep })
	}
}

func (r *replacer) badSlot() error {
	return errors.NewRewrite(nodePos(r.old),
		fmt.Sprintf("replacement %T cannot occupy the slot holding the target", r.replacement),
		errors.ErrBadSlot)
}
