package rrb

// Anchor denotes one of the two edges of a sequence.
type Anchor int8

const (
	// Left is the edge at ordinal 0.
	Left Anchor = iota
	// Right is the edge at the last ordinal.
	Right
)

func (a Anchor) flip() Anchor {
	return 1 - a
}

func (a Anchor) String() string {
	if a == Left {
		return "left"
	}
	return "right"
}

// view is an edge cursor: a chain of node references from a leaf up to the
// root. Offsets are measured from the anchoring edge: for a right view,
// offset counts the values to the right of node. Edits at an edge never
// change the offsets of the views on the edited path.
//
// sizeDelta and childDelta hold changes of node which are not yet
// accounted for in parent.node. A view is clean if there are none and the
// parent's slot refers to node.
type view[T any] struct {
	anchor     Anchor
	group      int
	node       *node[T]
	parent     *view[T]
	slot       int // index of node within parent.node
	offset     int
	sizeDelta  int
	childDelta int
}

func (v *view[T]) cloneToGroup(g int) *view[T] {
	c := *v
	c.group = g
	return &c
}

func (v *view[T]) dirty() bool {
	if v.sizeDelta != 0 || v.childDelta != 0 {
		return true
	}
	return v.parent != nil && v.parent.node.slots[v.slot] != v.node
}

func (v *view[T]) chainDirty() bool {
	for cur := v; cur != nil; cur = cur.parent {
		if cur.dirty() {
			return true
		}
	}
	return false
}

// top returns the root view of the chain and the level of its node.
func (v *view[T]) top() (*view[T], int) {
	level := 0
	for v.parent != nil {
		v = v.parent
		level++
	}
	return v, level
}

// start returns the ordinal of the first value covered by v, given the
// total size of the sequence.
func (v *view[T]) start(total int) int {
	if v.anchor == Left {
		return v.offset
	}
	return total - v.offset - v.node.size
}

func (v *view[T]) covers(ordinal, total int) bool {
	s := v.start(total)
	return ordinal >= s && ordinal < s+v.node.size
}

func anchorOffset(a Anchor, start, size, total int) int {
	if a == Left {
		return start
	}
	return total - start - size
}

// flipAnchor reinterprets v as anchored at the opposite edge. The result
// is a new view owned by group g.
func (v *view[T]) flipAnchor(total, g int) *view[T] {
	c := v.cloneToGroup(g)
	c.anchor = v.anchor.flip()
	c.offset = total - v.offset - v.node.size
	return c
}

// reanchor returns v itself if it is anchored at a, else a flipped copy.
func (v *view[T]) reanchor(a Anchor, total, g int) *view[T] {
	if v.anchor == a {
		return v
	}
	return v.flipAnchor(total, g)
}
