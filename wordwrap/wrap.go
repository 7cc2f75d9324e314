package wordwrap

import (
	"bufio"
	"strings"
	"sync"

	"github.com/npillmayer/rrblist"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

var setupGraphemes sync.Once

// Segment splits text at line-break opportunities. Every segment carries
// its trailing whitespace, if any. Concatenating the segments yields text.
func Segment(text string) *rrblist.List[string] {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	return rrblist.Empty[string]().Batch(func(segs *rrblist.List[string]) {
		for segmenter.Next() {
			segs.Append(string(segmenter.Bytes()))
		}
	})
}

// Width returns the display width of s. A nil context selects
// uax11.LatinContext.
func Width(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

/*
FirstFit distributes segments onto lines of lineWidth display cells:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if Width(Word) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - Width(Word)

It returns the indices of the segments which start a line. The first line
always starts at segment 0; an empty list of segments has no lines.
Segments wider than a line are put on a line of their own.
*/
func FirstFit(segments *rrblist.List[string], lineWidth int, context *uax11.Context) []int {
	if segments.IsEmpty() {
		return nil
	}
	starts := []int{0}
	spaceleft := lineWidth
	for i, seg := range segments.All() {
		w := Width(strings.TrimRight(seg, " "), context)
		if w > spaceleft && i > 0 && spaceleft < lineWidth {
			starts = append(starts, i)
			tracer().Debugf("break before segment %d", i)
			spaceleft = lineWidth
		}
		spaceleft -= Width(seg, context)
	}
	return starts
}

// Wrap breaks text into lines of at most lineWidth display cells, where
// possible. Trailing spaces are removed from lines.
func Wrap(text string, lineWidth int, context *uax11.Context) *rrblist.List[string] {
	segments := Segment(text)
	starts := FirstFit(segments, lineWidth, context)
	return rrblist.Empty[string]().Batch(func(lines *rrblist.List[string]) {
		for k, start := range starts {
			end := segments.Len()
			if k+1 < len(starts) {
				end = starts[k+1]
			}
			line, _ := segments.Slice(start, end)
			lines.Append(strings.TrimRight(strings.Join(line.ToSlice(), ""), " "))
		}
	})
}
