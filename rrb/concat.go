package rrb

import "fmt"

// Concat appends all values of r to s. r is not modified; if r is part of
// an edit session, it is snapshotted first and continues in a fresh group.
func (s *State[T]) Concat(r *State[T]) error {
	if r == nil {
		return fmt.Errorf("%w: concat with nil state", ErrInvalidArgument)
	}
	if r.cfg.BranchBits != s.cfg.BranchBits {
		return fmt.Errorf("%w: branch bits %d and %d", ErrIncompatibleConfig,
			s.cfg.BranchBits, r.cfg.BranchBits)
	}
	if r.mutable {
		r = r.ToImmutable(false)
	}
	s.concat(r)
	return nil
}

// concat appends the tree of r to the tree of s. r must not be edited in
// its own group afterwards.
func (s *State[T]) concat(r *State[T]) {
	assert(s.mutable, "rrb: concat on immutable state")
	if r.size == 0 {
		return
	}
	if s.size == 0 {
		s.size = r.size
		s.left, s.right = r.left, r.right
		s.lastWrite = r.lastWrite
		return
	}
	lroot, lh := s.commit()
	rroot, rh := r.committedRoot()
	root, level := s.concatTrees(lroot, lh, rroot, rh)
	s.size += r.size
	s.setRoot(root, level)
	tracer().Debugf("rrb: concatenated trees of height %d and %d into height %d", lh, rh, level)
}

// concatTrees joins two non-empty trees, given by their roots and heights,
// along their boundary paths. The left tree's rightmost path and the right
// tree's leftmost path are copied into the group of s; the shorter tree is
// lifted by single-child nodes. Then the boundary nodes are joined level by
// level, bottom-up. Returns the new root and its height.
func (s *State[T]) concatTrees(lroot *node[T], lh int, rroot *node[T], rh int) (*node[T], int) {
	h := max(lh, rh, 1)
	left := s.boundaryPath(lroot, lh, h, Right)
	right := s.boundaryPath(rroot, rh, h, Left)
	for k := 1; k <= h; k++ {
		if right[k-1].width() == 0 {
			right[k].adjustRange(-1, 0, false)
		}
		if k > 1 {
			left[k].rebuild(s.shift(k))
			right[k].rebuild(s.shift(k))
		}
		pair := [2]*node[T]{left[k], right[k]}
		s.join(&pair, k, k == h)
	}
	root, level := left[h], h
	if right[h].width() > 0 {
		root = &node[T]{
			group: s.group,
			slots: []*node[T]{left[h], right[h]},
		}
		level = h + 1
		root.rebuild(s.shift(level))
	}
	return normalize(root, level)
}

// boundaryPath returns the nodes along the edge a of a tree of height
// height, indexed by level, copied into the group of s. Above the root the
// path is extended by single-child nodes up to level top.
func (s *State[T]) boundaryPath(root *node[T], height, top int, a Anchor) []*node[T] {
	path := make([]*node[T], top+1)
	n := root
	if n.group != s.group {
		n = n.cloneToGroup(s.group)
	}
	path[height] = n
	for k := height; k > 0; k-- {
		i := 0
		if a == Right {
			i = len(n.slots) - 1
		}
		c := n.slots[i]
		if c.group != s.group {
			c = c.cloneToGroup(s.group)
			n.slots[i] = c
		}
		path[k-1] = c
		n = c
	}
	for k := height + 1; k <= top; k++ {
		path[k] = &node[T]{
			group: s.group,
			slots: []*node[T]{path[k-1]},
		}
		path[k].rebuild(s.shift(k))
	}
	return path
}
