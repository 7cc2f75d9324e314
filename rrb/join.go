package rrb

import "slices"

// maxExtraSteps is the number of children by which a joined pair of nodes
// may exceed the optimal child count before it gets compacted.
const maxExtraSteps = 1

// join balances the children of two adjacent, editable nodes at level,
// where pair[0] is the left one. If the pair has too many children for its
// number of grandchildren, the children are compacted and redistributed,
// filling the left node first. If all children fit into the left node, they
// are moved there. mustMerge is set for the topmost pair, which is merged
// into a single node whenever possible.
//
// join reports whether the right node ended up empty.
func (s *State[T]) join(pair *[2]*node[T], level int, mustMerge bool) bool {
	l, r := pair[0], pair[1]
	b := s.cfg.Branching()
	total := l.width() + r.width()
	grand := l.subcount + r.subcount
	optimal := (grand + b - 1) / b
	reduce := total - optimal - maxExtraSteps
	if mustMerge && grand <= b {
		reduce = total - optimal
	}
	switch {
	case reduce > 0:
		children := s.compact(slices.Concat(l.slots, r.slots), level-1, reduce)
		k := min(b, len(children))
		l.slots = slices.Clone(children[:k])
		r.slots = slices.Clone(children[k:])
	case total <= b:
		l.slots = append(l.slots, r.slots...)
		r.slots = nil
	default:
		return false
	}
	shift := s.shift(level)
	l.rebuild(shift)
	r.rebuild(shift)
	return r.width() == 0
}

// compact repacks the nodes of clevel in children, starting at the first
// one with less than B children of its own, until at least reduce nodes
// have been eliminated. Repacked nodes are new; the nodes before and after
// the repacked range are kept.
func (s *State[T]) compact(children []*node[T], clevel, reduce int) []*node[T] {
	b := s.cfg.Branching()
	i := slices.IndexFunc(children, func(c *node[T]) bool {
		return c.width() < b
	})
	if i < 0 {
		return children
	}
	out := slices.Clone(children[:i])
	var acc *node[T]
	eliminated := 0
	j := i
	for ; j < len(children); j++ {
		if eliminated >= reduce && acc == nil {
			break
		}
		c := children[j]
		eliminated++
		for moved := 0; moved < c.width(); {
			if acc == nil {
				acc = s.newNode(clevel)
				eliminated--
			}
			moved += moveFront(acc, c, moved, b)
			if acc.width() == b {
				out = append(out, s.seal(acc, clevel))
				acc = nil
			}
		}
	}
	if acc != nil {
		out = append(out, s.seal(acc, clevel))
	}
	tracer().Debugf("rrb: compacted level %d, %d of %d nodes eliminated",
		clevel, j-len(out), len(children))
	return append(out, children[j:]...)
}

func (s *State[T]) newNode(level int) *node[T] {
	b := s.cfg.Branching()
	n := &node[T]{group: s.group, recompute: -1}
	if level == 0 {
		n.values = make([]T, 0, b)
	} else {
		n.slots = make([]*node[T], 0, b)
	}
	return n
}

func (s *State[T]) seal(n *node[T], level int) *node[T] {
	if level == 0 {
		n.size = len(n.values)
	} else {
		n.rebuild(s.shift(level))
	}
	return n
}

// moveFront appends the children of src, starting at index from, to dst
// until dst holds b children. It returns the number of children moved.
func moveFront[T any](dst, src *node[T], from, b int) int {
	k := min(b-dst.width(), src.width()-from)
	if len(src.values) > 0 {
		dst.values = append(dst.values, src.values[from:from+k]...)
	} else {
		dst.slots = append(dst.slots, src.slots[from:from+k]...)
	}
	return k
}
