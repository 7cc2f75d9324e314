/*
Package textfile provides API helpers to load UTF-8 text files as lists of
lines.

Files are read by a producer goroutine in fragments of lines, while the
caller's goroutine appends the fragments to a list within a single edit
session. Clients may subscribe to a Loader to receive progress messages for
every fragment loaded.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rrblist'
func tracer() tracing.Trace {
	return tracing.Select("rrblist")
}
