package rrb

import "sync/atomic"

// Ownership groups identify edit sessions. Group 0 is reserved for the
// shared empty states and never editable.
var lastGroup atomic.Int64

func nextGroup() int {
	return int(lastGroup.Add(1))
}

// abs maps the group of a reserved placeholder to the group of its session.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
