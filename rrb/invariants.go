package rrb

import "fmt"

// Check verifies the structural invariants of the tree of s. It is meant
// for tests and debugging and visits every node. It does not modify an
// immutable s.
func (s *State[T]) Check() error {
	if s.size == 0 {
		if s.left != nil || s.right != nil {
			return fmt.Errorf("%w: empty state with views", ErrCorrupted)
		}
		return nil
	}
	if s.left == nil && s.right == nil {
		return fmt.Errorf("%w: state of size %d without views", ErrCorrupted, s.size)
	}
	for _, v := range []*view[T]{s.left, s.right} {
		if v != nil && v.offset < 0 {
			return fmt.Errorf("%w: %s view at negative offset %d", ErrCorrupted, v.anchor, v.offset)
		}
	}
	root, level := s.committedRoot()
	if root.size != s.size {
		return fmt.Errorf("%w: root holds %d values, state claims %d", ErrCorrupted, root.size, s.size)
	}
	return s.checkNode(root, level, true)
}

func (s *State[T]) checkNode(n *node[T], level int, isRoot bool) error {
	b := s.cfg.Branching()
	w := n.width()
	switch {
	case n.isReserved():
		return fmt.Errorf("%w: reserved node at level %d", ErrCorrupted, level)
	case w > b:
		return fmt.Errorf("%w: node of width %d at level %d", ErrCorrupted, w, level)
	case w == 0 && !isRoot:
		return fmt.Errorf("%w: empty node at level %d", ErrCorrupted, level)
	}
	if level == 0 {
		if len(n.slots) > 0 {
			return fmt.Errorf("%w: leaf with child nodes", ErrCorrupted)
		}
		if n.size != len(n.values) {
			return fmt.Errorf("%w: leaf size %d with %d values", ErrCorrupted, n.size, len(n.values))
		}
		return nil
	}
	if len(n.values) > 0 {
		return fmt.Errorf("%w: inner node at level %d with values", ErrCorrupted, level)
	}
	if n.recompute < -1 || n.recompute > w {
		return fmt.Errorf("%w: recompute %d for width %d", ErrCorrupted, n.recompute, w)
	}
	full := 1 << s.shift(level)
	valid := w - max(n.recompute, 0)
	size, sub := 0, 0
	for i, c := range n.slots {
		if c == nil {
			return fmt.Errorf("%w: nil child %d at level %d", ErrCorrupted, i, level)
		}
		size += c.size
		sub += c.width()
		if !n.isRelaxed() && i < w-1 && c.size != full {
			return fmt.Errorf("%w: plain node at level %d with child %d of size %d",
				ErrCorrupted, level, i, c.size)
		}
		if n.isRelaxed() && i < valid && c.sum != size {
			return fmt.Errorf("%w: child %d at level %d has sum %d, expected %d",
				ErrCorrupted, i, level, c.sum, size)
		}
		if err := s.checkNode(c, level-1, false); err != nil {
			return err
		}
	}
	if size != n.size || sub != n.subcount {
		return fmt.Errorf("%w: node at level %d claims size %d/%d children, has %d/%d",
			ErrCorrupted, level, n.size, n.subcount, size, sub)
	}
	return nil
}
