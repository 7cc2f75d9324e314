package rrb

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Stats summarizes the shape of a tree.
type Stats struct {
	Size      int // number of values
	Height    int // level of the root, 0 for a single leaf
	Nodes     int // total number of nodes
	Leaves    int
	Relaxed   int // inner nodes with cumulative sums
	Plain     int // inner nodes resolved by shift and mask
	Branching int
}

// Stats reports the shape of the tree of s. It does not modify an
// immutable s.
func (s *State[T]) Stats() Stats {
	st := Stats{Size: s.size, Branching: s.cfg.Branching()}
	if s.size == 0 {
		return st
	}
	root, level := s.committedRoot()
	st.Height = level
	eachNode(root, level, func(n *node[T], l int) {
		st.Nodes++
		switch {
		case l == 0:
			st.Leaves++
		case n.isRelaxed():
			st.Relaxed++
		default:
			st.Plain++
		}
	})
	return st
}

// SharedNodes counts the nodes which are part of the trees of both a and b.
// Nodes which differ only in their cumulative sum do not count as shared.
func SharedNodes[T any](a, b *State[T]) int {
	collect := func(s *State[T]) mapset.Set[*node[T]] {
		set := mapset.NewThreadUnsafeSet[*node[T]]()
		if s.size == 0 {
			return set
		}
		root, level := s.committedRoot()
		eachNode(root, level, func(n *node[T], _ int) {
			set.Add(n)
		})
		return set
	}
	return collect(a).Intersect(collect(b)).Cardinality()
}

// eachNode visits n and all its descendants in pre-order.
func eachNode[T any](n *node[T], level int, visit func(*node[T], int)) {
	visit(n, level)
	if level == 0 {
		return
	}
	for _, c := range n.slots {
		eachNode(c, level-1, visit)
	}
}

// NodeInfo describes a single tree node for inspection tools.
type NodeInfo struct {
	Size     int  // number of values below the node
	Width    int  // number of children or values
	Leaf     bool // node holds values
	Relaxed  bool
	Editable bool // node may be edited in place by the session of the state
}

// Levels returns descriptions of all nodes of the tree of s, grouped by
// tree level from the root down to the leaves, each level from left to
// right. It does not modify an immutable s.
func (s *State[T]) Levels() [][]NodeInfo {
	if s.size == 0 {
		return nil
	}
	root, height := s.committedRoot()
	levels := make([][]NodeInfo, height+1)
	eachNode(root, height, func(n *node[T], l int) {
		levels[height-l] = append(levels[height-l], NodeInfo{
			Size:     n.size,
			Width:    n.width(),
			Leaf:     l == 0,
			Relaxed:  l > 0 && n.isRelaxed(),
			Editable: s.mutable && n.group == s.group,
		})
	})
	return levels
}
