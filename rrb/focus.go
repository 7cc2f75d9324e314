package rrb

// covering returns a view whose leaf holds ordinal, or nil. The view
// written last is tried first.
func (s *State[T]) covering(ordinal int) *view[T] {
	a, v := s.activeView()
	if v != nil && v.covers(ordinal, s.size) {
		return v
	}
	if o := s.view(a.flip()); o != nil && o.covers(ordinal, s.size) {
		return o
	}
	return nil
}

func (s *State[T]) nearestAnchor(ordinal int) Anchor {
	if ordinal < s.size/2 {
		return Left
	}
	return Right
}

// focusOrdinal returns a view whose leaf holds ordinal. If no view covers
// it, the tree is committed and a new view chain is built, sharing as
// much of an existing chain as possible. With asWriteTarget, the returned
// view and its leaf are editable by the session. Returns nil if ordinal is
// out of range.
func (s *State[T]) focusOrdinal(ordinal int, asWriteTarget bool) *view[T] {
	if ordinal < 0 || ordinal >= s.size {
		return nil
	}
	v := s.covering(ordinal)
	if v == nil {
		v = s.refocus(ordinal, s.nearestAnchor(ordinal))
	}
	if asWriteTarget {
		v = s.writable(v)
	}
	return v
}

// refocus commits pending changes, then climbs up the active chain to the
// lowest ancestor covering ordinal and descends from there. The new view
// is stored as the view anchored at a.
func (s *State[T]) refocus(ordinal int, a Anchor) *view[T] {
	s.commit()
	_, cur := s.activeView()
	level := 0
	for cur.parent != nil && !cur.covers(ordinal, s.size) {
		cur = cur.parent
		level++
	}
	var v *view[T]
	if level == 0 {
		v = cur.reanchor(a, s.size, s.group)
	} else {
		v = s.descend(cur, level, cur.start(s.size), ordinal, a)
	}
	s.setView(a, v)
	return v
}

// writable makes v and its leaf editable by the session, records v as the
// view written last and drops the opposite view. A copied leaf is
// announced to an editable parent by a reserved placeholder.
func (s *State[T]) writable(v *view[T]) *view[T] {
	assert(s.mutable, "rrb: write access to immutable state")
	a := v.anchor
	if v.group != s.group {
		v = v.cloneToGroup(s.group)
	}
	if v.node.group != s.group {
		v.node = v.node.cloneToGroup(s.group)
		if p := v.parent; p != nil && p.group == s.group && p.node.group == s.group {
			p.node.slots[v.slot] = v.node.cloneAsPlaceholder(s.group)
		}
	}
	s.setView(a, v)
	s.setView(a.flip(), nil)
	s.lastWrite = a
	return v
}

// getView returns an editable view at edge a, i.e. with offset 0. An empty
// sequence gets a fresh leaf. A missing view is derived from the opposite
// one by flipping it, if that one already reaches edge a; otherwise the
// tree is refocused to the edge.
func (s *State[T]) getView(a Anchor) *view[T] {
	if s.size == 0 {
		n := &node[T]{group: s.group, recompute: -1, values: make([]T, 0, s.cfg.Branching())}
		s.left, s.right = nil, nil
		v := &view[T]{anchor: a, group: s.group, node: n}
		s.setView(a, v)
		s.lastWrite = a
		return v
	}
	v := s.view(a)
	if v == nil || v.offset != 0 {
		o := s.view(a.flip())
		if v == nil && o != nil && (o.parent == nil || o.offset+o.node.size == s.size) {
			v = o.flipAnchor(s.size, s.group)
			s.setView(a.flip(), nil)
			s.setView(a, v)
		} else {
			ordinal := 0
			if a == Right {
				ordinal = s.size - 1
			}
			v = s.refocus(ordinal, a)
		}
	}
	return s.writable(v)
}
