/*
Package wordwrap breaks text into lines, holding line-break segments and
lines in rrblist lists.

Segmentation follows the line breaking rules of Unicode UAX#14, widths of
segments are measured in terms of UAX#11 (East Asian Width). Line breaking
is done greedily (first fit), which is what most terminal applications do.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package wordwrap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rrblist'
func tracer() tracing.Trace {
	return tracing.Select("rrblist")
}
