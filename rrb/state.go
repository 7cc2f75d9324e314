package rrb

import (
	"reflect"
	"sync"
)

// State is the root descriptor of a sequence. It holds the total size, the
// ownership group of the current edit session and the two edge views.
//
// A mutable State is edited in place by its methods; it must not be used
// from more than one goroutine. An immutable State is never modified and
// may be shared freely. Mutating methods panic if called on an immutable
// State; clients derive a mutable one with ToMutable first.
type State[T any] struct {
	cfg       Config
	group     int
	size      int
	mutable   bool
	lastWrite Anchor
	left      *view[T]
	right     *view[T]
}

type emptyKey struct {
	typ  reflect.Type
	bits uint
}

// empties holds one shared empty State per element type and branch factor.
var empties sync.Map

// Empty returns the shared immutable empty State for element type T.
func Empty[T any](cfg Config) (*State[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	key := emptyKey{typ: reflect.TypeFor[T](), bits: cfg.BranchBits}
	if s, ok := empties.Load(key); ok {
		return s.(*State[T]), nil
	}
	s, _ := empties.LoadOrStore(key, &State[T]{cfg: cfg, lastWrite: Right})
	return s.(*State[T]), nil
}

// Len returns the number of values in the sequence.
func (s *State[T]) Len() int {
	return s.size
}

// Config returns the tree configuration of s.
func (s *State[T]) Config() Config {
	return s.cfg
}

// IsMutable tells whether s is part of an edit session.
func (s *State[T]) IsMutable() bool {
	return s.mutable
}

func (s *State[T]) clone(group int, mutable bool) *State[T] {
	c := *s
	c.group = group
	c.mutable = mutable
	return &c
}

// ToMutable starts a new edit session. The result shares all nodes and
// views with s; they are copied lazily on first edit.
func (s *State[T]) ToMutable() *State[T] {
	return s.clone(nextGroup(), true)
}

// ToImmutable ends an edit session. If done is true, s itself is frozen
// and returned. Otherwise an immutable snapshot is returned and s stays
// mutable under a fresh group, so that further edits of s copy what the
// snapshot references.
func (s *State[T]) ToImmutable(done bool) *State[T] {
	if done {
		s.mutable = false
		s.group = nextGroup()
		return s
	}
	snapshot := s.clone(s.group, false)
	s.group = nextGroup()
	return snapshot
}

func (s *State[T]) view(a Anchor) *view[T] {
	if a == Left {
		return s.left
	}
	return s.right
}

func (s *State[T]) setView(a Anchor, v *view[T]) {
	if a == Left {
		s.left = v
	} else {
		s.right = v
	}
}

// activeView returns the most recently written view, if present, else the
// other one.
func (s *State[T]) activeView() (Anchor, *view[T]) {
	a := s.lastWrite
	if v := s.view(a); v != nil {
		return a, v
	}
	return a.flip(), s.view(a.flip())
}

func (s *State[T]) shift(level int) uint {
	return uint(level) * s.cfg.BranchBits
}

// ownChain makes every view of the chain starting at v editable by the
// session's group and returns the, possibly copied, leaf view.
func (s *State[T]) ownChain(v *view[T]) *view[T] {
	if v.group != s.group {
		v = v.cloneToGroup(s.group)
	}
	for cur := v; cur.parent != nil; cur = cur.parent {
		if cur.parent.group != s.group {
			cur.parent = cur.parent.cloneToGroup(s.group)
		}
	}
	return v
}

// fold commits the pending changes of view v into its parent, which is a
// node at plevel. v has to be editable; the parent view and node are made
// editable as needed.
func (s *State[T]) fold(v *view[T], plevel int) {
	if v.parent.group != s.group {
		v.parent = v.parent.cloneToGroup(s.group)
	}
	p := v.parent
	if p.node.group != s.group {
		p.node = p.node.cloneToGroup(s.group)
	}
	if v.node.group != s.group {
		v.node = v.node.cloneToGroup(s.group)
	}
	pn := p.node
	pn.updatePlaceholder(v.slot, v.node)
	pn.size += v.sizeDelta
	pn.subcount += v.childDelta
	p.sizeDelta += v.sizeDelta
	v.sizeDelta, v.childDelta = 0, 0
	w := len(pn.slots)
	shift := s.shift(plevel)
	if !pn.isRelaxed() && v.slot < w-1 && v.node.size != 1<<shift {
		pn.recompute = w
	}
	if pn.isRelaxed() {
		pn.recompute = max(pn.recompute, w-v.slot)
	} else {
		v.node.sum = v.slot<<shift + v.node.size
	}
}

// commit folds all pending changes of the active view chain into the tree
// and returns the root node and its level. If anything had to change, the
// opposite view is dropped, as it may refer to outdated ancestors.
func (s *State[T]) commit() (*node[T], int) {
	a, v := s.activeView()
	if v == nil {
		return nil, 0
	}
	if !v.chainDirty() {
		rv, level := v.top()
		return rv.node, level
	}
	assert(s.mutable, "rrb: commit on immutable state")
	v = s.ownChain(v)
	cur, level := v, 0
	for cur.parent != nil {
		if cur.dirty() {
			s.fold(cur, level+1)
		}
		cur = cur.parent
		level++
	}
	cur.sizeDelta, cur.childDelta = 0, 0
	s.setView(a, v)
	s.setView(a.flip(), nil)
	return cur.node, level
}

// committedRoot returns the root of the tree without modifying an
// immutable s.
func (s *State[T]) committedRoot() (*node[T], int) {
	if s.mutable {
		return s.commit()
	}
	return s.ToMutable().commit()
}

// setRoot replaces the tree of s by root and builds a fresh view chain at
// the edge written last.
func (s *State[T]) setRoot(root *node[T], level int) {
	s.left, s.right = nil, nil
	if root == nil || s.size == 0 {
		s.size = 0
		return
	}
	a := s.lastWrite
	rv := &view[T]{anchor: a, group: s.group, node: root}
	ordinal := 0
	if a == Right {
		ordinal = s.size - 1
	}
	s.setView(a, s.descend(rv, level, 0, ordinal, a))
}

// descend builds a view chain from view from, a node at the given level
// starting at ordinal start, down to the leaf owning ordinal.
func (s *State[T]) descend(from *view[T], level, start, ordinal int, a Anchor) *view[T] {
	cur := from
	for ; level > 0; level-- {
		i, child, off, ok := cur.node.resolveChild(ordinal-start, s.shift(level), s.group)
		assert(ok, "rrb: descent to ordinal outside of node")
		start += off
		cur = &view[T]{
			anchor: a,
			group:  s.group,
			node:   child,
			parent: cur,
			slot:   i,
			offset: anchorOffset(a, start, child.size, s.size),
		}
	}
	return cur
}
