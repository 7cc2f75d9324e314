/*
Package rrb provides a relaxed radix balanced tree (RRB tree) as the
persistent backend for ordered sequences.

The package is not a general container API. It offers a State type which
clients wrap into value-like sequence types (see package rrblist). A State
is either mutable, i.e. part of an edit session, or immutable. Immutable
states are never modified; every edit of an immutable state first derives
a mutable state with a fresh ownership group.

Overview:
  - nodes hold either leaf values or child nodes, at most B = 1<<BranchBits,
  - plain nodes resolve ordinals by shift and mask,
  - relaxed nodes carry cumulative sums which are validated lazily,
  - ownership groups decide whether a node may be edited in place,
  - two edge views (left and right) cache the paths to the sequence ends,
    carrying pending size deltas which are folded into ancestors lazily,
  - concatenation joins the boundary paths of two trees bottom-up,
  - slicing cuts the boundary paths and normalizes the root.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rrb

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rrblist'
func tracer() tracing.Trace {
	return tracing.Select("rrblist")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
