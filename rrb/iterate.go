package rrb

import "iter"

// All iterates over ordinals and values of s, in order.
func (s *State[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if s.size == 0 {
			return
		}
		root, level := s.committedRoot()
		i := 0
		walk(root, level, func(n *node[T]) bool {
			for _, v := range n.values {
				if !yield(i, v) {
					return false
				}
				i++
			}
			return true
		})
	}
}

// Values iterates over the values of s, in order.
func (s *State[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice copies the values of s into a new slice.
func (s *State[T]) ToSlice() []T {
	out := make([]T, 0, s.size)
	for v := range s.Values() {
		out = append(out, v)
	}
	return out
}

// walk calls leaf for every leaf below n, left to right, until leaf
// returns false. It reports whether the walk completed.
func walk[T any](n *node[T], level int, leaf func(*node[T]) bool) bool {
	if level == 0 {
		return leaf(n)
	}
	for _, c := range n.slots {
		if !walk(c, level-1, leaf) {
			return false
		}
	}
	return true
}
