/*
Package rrblist offers persistent ordered sequences of arbitrary values.

Lists

A List holds values in the leaves of a relaxed radix balanced tree (RRB tree).
Indexing, updating, appending at either end, concatenation and slicing all
run in (effectively) logarithmic time. Lists are immutable by default: every
operation on an immutable list returns a new list, which shares most of its
structure with the original one. Copies are made on the paths which an
operation touches, only.

For bulk edits a list may be turned into a mutable one (AsMutable), which is
edited in place until it is frozen again (AsImmutable). Batch wraps this
into a single call:

    l := rrblist.Empty[int]().Batch(func(m *rrblist.List[int]) {
        for i := range 1000 {
            m.Append(i)
        }
    })

Mutable lists are not safe for concurrent use. Immutable lists are never
modified and may be read from several goroutines concurrently.

The tree itself lives in package rrb; see there for details on the
structure and its invariants.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.


*/
package rrblist

import (
	"github.com/npillmayer/rrblist/rrb"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Errors reported by list operations. They are shared with package rrb,
// therefore errors.Is works across both packages.
var (
	// ErrInvalidArgument is flagged whenever function parameters are invalid.
	ErrInvalidArgument = rrb.ErrInvalidArgument
	// ErrIndexOutOfRange is flagged whenever an index lies outside of a list.
	ErrIndexOutOfRange = rrb.ErrIndexOutOfRange
	// ErrIncompatibleConfig is flagged when lists with different branch
	// factors are combined.
	ErrIncompatibleConfig = rrb.ErrIncompatibleConfig
)
