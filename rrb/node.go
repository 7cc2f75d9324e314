package rrb

import "slices"

// node is a tree node of an RRB tree. Leaf nodes carry values, inner nodes
// carry child nodes. Whether a node is a leaf is a property of its level,
// not of the node itself.
//
// A node is plain if recompute is -1: every child but the last holds
// exactly 1<<shift elements and children are located by shift and mask.
// Otherwise the node is relaxed and the leading width-recompute children
// carry valid cumulative sums.
type node[T any] struct {
	group     int        // ownership group; negative for reserved placeholders
	size      int        // number of values in this subtree
	sum       int        // cumulative size up to and including this node, within its parent
	recompute int        // number of trailing children with unreliable sums, -1 for plain
	subcount  int        // number of grandchildren
	values    []T        // leaf level
	slots     []*node[T] // inner levels
}

func (n *node[T]) width() int {
	return len(n.values) + len(n.slots)
}

func (n *node[T]) isRelaxed() bool {
	return n.recompute != -1
}

func (n *node[T]) isReserved() bool {
	return n.group < 0
}

// cloneToGroup copies n, including its children array, into group g.
// Children themselves are shared.
func (n *node[T]) cloneToGroup(g int) *node[T] {
	return &node[T]{
		group:     g,
		size:      n.size,
		sum:       n.sum,
		recompute: n.recompute,
		subcount:  n.subcount,
		values:    slices.Clone(n.values),
		slots:     slices.Clone(n.slots),
	}
}

// cloneAsPlaceholder creates a reserved stand-in for n. It keeps the
// bookkeeping of n but no children; the real node has to be installed
// with updatePlaceholder before the tree is read.
func (n *node[T]) cloneAsPlaceholder(g int) *node[T] {
	return &node[T]{
		group:     -abs(g),
		size:      n.size,
		sum:       n.sum,
		recompute: n.recompute,
		subcount:  n.subcount,
	}
}

// shallowClone copies n without copying its children and keeps the group.
// It is used to give a shared child a sum of its own; the copy is never
// edited in place by anyone who may not edit the original.
func (n *node[T]) shallowClone() *node[T] {
	c := *n
	return &c
}

// updatePlaceholder installs actual as child i, replacing a reserved
// placeholder or an outdated version of the child. The placeholder may
// carry the group of an earlier session of the same lineage, as freezing
// advances the group while the placeholder is still pending in a view.
func (n *node[T]) updatePlaceholder(i int, actual *node[T]) {
	assert(actual != nil && !actual.isReserved(), "rrb: installing a reserved node")
	n.slots[i] = actual
}

// setChildSum sets the cumulative sum of child i. A child which n's group
// may not edit is replaced by a shallow copy.
func (n *node[T]) setChildSum(i, sum int) {
	c := n.slots[i]
	if c.sum == sum {
		return
	}
	if c.group != n.group {
		c = c.shallowClone()
		n.slots[i] = c
	}
	c.sum = sum
}

// adjustRange grows or shrinks the children of n at both ends. Positive
// pads insert zero values or nil slots, negative pads truncate. Size,
// subcount and recompute are updated; slots which are still nil do not
// count.
func (n *node[T]) adjustRange(padLeft, padRight int, leaf bool) {
	if leaf {
		n.values = pad(n.values, padLeft, padRight)
		n.size = len(n.values)
		return
	}
	n.slots = pad(n.slots, padLeft, padRight)
	size, sub := 0, 0
	for _, c := range n.slots {
		if c != nil {
			size += c.size
			sub += c.width()
		}
	}
	n.size, n.subcount = size, sub
	w := len(n.slots)
	if padLeft != 0 {
		n.recompute = w
	} else if n.isRelaxed() {
		n.recompute = min(max(n.recompute+padRight, 0), w)
	}
}

func pad[E any](s []E, padLeft, padRight int) []E {
	if padLeft < 0 {
		k := copy(s, s[-padLeft:])
		clear(s[k:])
		s = s[:k]
	}
	if padRight < 0 {
		clear(s[len(s)+padRight:])
		s = s[:len(s)+padRight]
	}
	if padLeft > 0 {
		s = slices.Insert(s, 0, make([]E, padLeft)...)
	}
	if padRight > 0 {
		s = append(s, make([]E, padRight)...)
	}
	return s
}

// resolveChild locates the child of an inner node owning ordinal, which is
// relative to the start of n. shift encodes the level of n. It returns the
// child's index, the child and the child's start offset within n.
//
// For relaxed nodes the trailing unvalidated sums are recomputed. If n is
// editable by group g, the sums are stored and the node turns plain again
// when the scan proves every child but the last to be full.
func (n *node[T]) resolveChild(ordinal int, shift uint, g int) (int, *node[T], int, bool) {
	if ordinal < 0 || ordinal >= n.size {
		return -1, nil, 0, false
	}
	w := len(n.slots)
	i := ordinal >> shift
	if !n.isRelaxed() {
		assert(i < w, "rrb: plain node index beyond width")
		return i, n.slots[i], i << shift, true
	}
	valid := w - min(n.recompute, w)
	for ; i < valid; i++ {
		if ordinal < n.slots[i].sum {
			offset := 0
			if i > 0 {
				offset = n.slots[i-1].sum
			}
			return i, n.slots[i], offset, true
		}
	}
	fix := n.group == g && g > 0
	sum := 0
	if valid > 0 {
		sum = n.slots[valid-1].sum
	}
	found, offset := -1, 0
	for j := valid; j < w; j++ {
		prev := sum
		sum += n.slots[j].size
		if fix {
			n.setChildSum(j, sum)
		}
		if found < 0 && ordinal < sum {
			found, offset = j, prev
			if !fix {
				break
			}
		}
	}
	assert(found >= 0, "rrb: relaxed node scan missed an in-range ordinal")
	if fix {
		n.recompute = 0
		if w == 1 || n.slots[w-2].sum == (w-1)<<shift {
			n.recompute = -1
		}
	}
	return found, n.slots[found], offset, true
}

// rebuild recomputes size, subcount and all child sums of an inner node at
// the level encoded by shift, and decides between plain and relaxed.
func (n *node[T]) rebuild(shift uint) {
	size, sub := 0, 0
	plain := true
	last := len(n.slots) - 1
	for i, c := range n.slots {
		if i < last && c.size != 1<<shift {
			plain = false
		}
		size += c.size
		sub += c.width()
		n.setChildSum(i, size)
	}
	n.size, n.subcount = size, sub
	if plain {
		n.recompute = -1
	} else {
		n.recompute = 0
	}
}
