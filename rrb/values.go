package rrb

import "fmt"

// Get returns the value at ordinal i. It does not modify an immutable s.
func (s *State[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= s.size {
		return zero, false
	}
	if v := s.covering(i); v != nil {
		return v.node.values[i-v.start(s.size)], true
	}
	t := s
	if !s.mutable {
		t = s.ToMutable()
	}
	v := t.focusOrdinal(i, false)
	return v.node.values[i-v.start(t.size)], true
}

// Set replaces the value at ordinal i.
func (s *State[T]) Set(i int, value T) error {
	if i < 0 || i >= s.size {
		return fmt.Errorf("%w: set at %d, size %d", ErrIndexOutOfRange, i, s.size)
	}
	v := s.focusOrdinal(i, true)
	v.node.values[i-v.start(s.size)] = value
	return nil
}

// Append adds values at the right edge.
func (s *State[T]) Append(values ...T) {
	if len(values) == 0 {
		return
	}
	b := s.cfg.Branching()
	v := s.getView(Right)
	for len(values) > 0 {
		leaf := v.node
		room := b - len(leaf.values)
		if room == 0 {
			v = s.growEdge(v)
			continue
		}
		k := min(room, len(values))
		at := len(leaf.values)
		leaf.adjustRange(0, k, true)
		copy(leaf.values[at:], values[:k])
		v.sizeDelta += k
		v.childDelta += k
		s.size += k
		values = values[k:]
	}
}

// Prepend adds values at the left edge, keeping their order.
func (s *State[T]) Prepend(values ...T) {
	if len(values) == 0 {
		return
	}
	b := s.cfg.Branching()
	v := s.getView(Left)
	for len(values) > 0 {
		leaf := v.node
		room := b - len(leaf.values)
		if room == 0 {
			v = s.growEdge(v)
			continue
		}
		k := min(room, len(values))
		leaf.adjustRange(k, 0, true)
		copy(leaf.values[:k], values[len(values)-k:])
		v.sizeDelta += k
		v.childDelta += k
		s.size += k
		values = values[:len(values)-k]
	}
}

// growEdge is called with a full, editable edge leaf view v. It folds the
// chain upwards to the lowest ancestor with a free slot, growing the tree
// by a new root if there is none, and reserves a fresh path from there down
// to a new empty leaf at the same edge. Returns the view of the new leaf.
func (s *State[T]) growEdge(v *view[T]) *view[T] {
	a := v.anchor
	b := s.cfg.Branching()
	cur, level := v, 0
	for {
		if cur.parent == nil {
			root := &node[T]{
				group:     s.group,
				size:      cur.node.size,
				recompute: -1,
				subcount:  cur.node.width(),
				slots:     make([]*node[T], 1, b),
			}
			root.slots[0] = cur.node
			cur.node.sum = cur.node.size
			cur.parent = &view[T]{anchor: a, group: s.group, node: root}
			cur.slot = 0
			cur.sizeDelta, cur.childDelta = 0, 0
			tracer().Debugf("rrb: tree grows to height %d", level+1)
		}
		s.fold(cur, level+1)
		if cur.parent.node.width() < b {
			break
		}
		cur = cur.parent
		level++
	}
	p := cur.parent
	pn := p.node
	plevel := level + 1
	var idx int
	if a == Right {
		idx = pn.width()
		pn.adjustRange(0, 1, false)
		if !pn.isRelaxed() && pn.slots[idx-1].size != 1<<s.shift(plevel) {
			pn.recompute = pn.width()
		}
	} else {
		idx = 0
		pn.adjustRange(1, 0, false)
	}
	p.childDelta++
	parent := p
	for lvl := plevel - 1; lvl >= 0; lvl-- {
		n := &node[T]{group: s.group, recompute: -1}
		if lvl > 0 {
			n.slots = make([]*node[T], 1, b)
		} else {
			n.values = make([]T, 0, b)
		}
		parent.node.slots[idx] = n.cloneAsPlaceholder(s.group)
		parent = &view[T]{
			anchor:     a,
			group:      s.group,
			node:       n,
			parent:     parent,
			slot:       idx,
			childDelta: n.width(),
		}
		idx = 0
	}
	s.setView(a, parent)
	return parent
}

// trimEdge removes one value at edge a, provided the edge leaf keeps at
// least one value. It reports whether it did.
func (s *State[T]) trimEdge(a Anchor) bool {
	if s.size < 2 {
		return false
	}
	v := s.getView(a)
	if len(v.node.values) < 2 {
		return false
	}
	if a == Right {
		v.node.adjustRange(0, -1, true)
	} else {
		v.node.adjustRange(-1, 0, true)
	}
	v.sizeDelta--
	v.childDelta--
	s.size--
	return true
}

// Insert inserts values before ordinal i; i may equal the size.
func (s *State[T]) Insert(i int, values ...T) error {
	if i < 0 || i > s.size {
		return fmt.Errorf("%w: insert at %d, size %d", ErrIndexOutOfRange, i, s.size)
	}
	switch {
	case len(values) == 0:
	case i == s.size:
		s.Append(values...)
	case i == 0:
		s.Prepend(values...)
	default:
		r := s.split(i)
		s.Append(values...)
		s.concat(r)
	}
	return nil
}

// Delete removes the values in [start, end).
func (s *State[T]) Delete(start, end int) error {
	if start < 0 || end > s.size || start > end {
		return fmt.Errorf("%w: delete [%d,%d), size %d", ErrIndexOutOfRange, start, end, s.size)
	}
	switch {
	case start == end:
	case start == 0 && end == 1 && s.trimEdge(Left):
	case start == s.size-1 && end == s.size && s.trimEdge(Right):
	case start == 0:
		s.slice(end, s.size)
	case end == s.size:
		s.slice(0, start)
	default:
		r := s.split(end)
		s.slice(0, start)
		s.concat(r)
	}
	return nil
}
