package rrb

import "fmt"

// Slice restricts s to the values in [start, end).
func (s *State[T]) Slice(start, end int) error {
	if start < 0 || end > s.size || start > end {
		return fmt.Errorf("%w: slice [%d,%d), size %d", ErrIndexOutOfRange, start, end, s.size)
	}
	s.slice(start, end)
	return nil
}

func (s *State[T]) slice(start, end int) {
	if start == 0 && end == s.size {
		return
	}
	if start == end {
		s.setRoot(nil, 0)
		return
	}
	root, level := s.commit()
	if root.group != s.group {
		root = root.cloneToGroup(s.group)
	}
	s.cutRight(root, level, end)
	s.cutLeft(root, level, start)
	root, level = normalize(root, level)
	s.size = end - start
	s.setRoot(root, level)
	tracer().Debugf("rrb: sliced to [%d,%d), height %d", start, end, level)
}

// cutRight drops everything from ordinal end onwards from the editable
// node n at level. end is relative to n and 0 < end <= n.size.
func (s *State[T]) cutRight(n *node[T], level, end int) {
	if end == n.size {
		return
	}
	if level == 0 {
		n.adjustRange(0, end-len(n.values), true)
		return
	}
	i, child, off, _ := n.resolveChild(end-1, s.shift(level), s.group)
	n.adjustRange(0, i+1-len(n.slots), false)
	if off+child.size != end {
		if child.group != s.group {
			child = child.cloneToGroup(s.group)
			n.slots[i] = child
		}
		s.cutRight(child, level-1, end-off)
	}
	n.rebuild(s.shift(level))
}

// cutLeft drops the first start values from the editable node n at level.
// start is relative to n and 0 <= start < n.size.
func (s *State[T]) cutLeft(n *node[T], level, start int) {
	if start == 0 {
		return
	}
	if level == 0 {
		n.adjustRange(-start, 0, true)
		return
	}
	i, child, off, _ := n.resolveChild(start, s.shift(level), s.group)
	n.adjustRange(-i, 0, false)
	if off != start {
		if child.group != s.group {
			child = child.cloneToGroup(s.group)
			n.slots[0] = child
		}
		s.cutLeft(child, level-1, start-off)
	}
	n.rebuild(s.shift(level))
}

// normalize removes single-child roots.
func normalize[T any](root *node[T], level int) (*node[T], int) {
	for level > 0 && root.width() == 1 {
		root = root.slots[0]
		level--
	}
	return root, level
}

// split cuts s at ordinal at. s keeps [0, at), the returned state holds the
// rest. Both continue in fresh groups, as they share the former tree.
func (s *State[T]) split(at int) *State[T] {
	s.commit()
	s.group = nextGroup()
	r := s.clone(nextGroup(), true)
	r.slice(at, r.size)
	s.slice(0, at)
	return r
}
