/*
Command rrbdump builds a list of integers and prints the shape of the tree
holding it, level by level. It is a tool for exploring how edits shape an
RRB tree.

Usage:

	rrbdump -n 1000 -bits 2 -prepend 30 -from 10 -to 900 -concat 2

Leaves are printed in green, plain inner nodes in blue and relaxed inner
nodes in red. With -dot, Graphviz output is written instead.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/rrblist"
	"github.com/npillmayer/rrblist/rrb"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/sanity-io/litter"
	"golang.org/x/term"
)

type flags struct {
	n, prepend, from, to, concat int
	bits                         uint
	dot, stats, debug            bool
}

func main() {
	var f flags
	flag.IntVar(&f.n, "n", 100, "number of values to append")
	flag.UintVar(&f.bits, "bits", 2, "branch bits of the tree")
	flag.IntVar(&f.prepend, "prepend", 0, "number of values to prepend one by one")
	flag.IntVar(&f.from, "from", 0, "start of slice")
	flag.IntVar(&f.to, "to", -1, "end of slice, -1 for the end of the list")
	flag.IntVar(&f.concat, "concat", 0, "number of copies to concatenate")
	flag.BoolVar(&f.dot, "dot", false, "write Graphviz DOT output")
	flag.BoolVar(&f.stats, "stats", false, "dump tree statistics")
	flag.BoolVar(&f.debug, "debug", false, "trace to stderr")
	flag.Parse()
	gtrace.CoreTracer = gologadapter.New()
	if f.debug {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
	l, err := build(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rrbdump: %v\n", err)
		os.Exit(1)
	}
	if err := l.Check(); err != nil {
		fmt.Fprintf(os.Stderr, "rrbdump: %v\n", err)
		os.Exit(2)
	}
	switch {
	case f.dot:
		err = l.WriteDot(os.Stdout)
	case f.stats:
		litter.Config.HidePrivateFields = false
		fmt.Println(litter.Sdump(l.Stats()))
	default:
		printLevels(l.Levels(), terminalWidth())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "rrbdump: %v\n", err)
		os.Exit(1)
	}
}

func build(f flags) (*rrblist.List[int], error) {
	l, err := rrblist.Of[int](nil, rrblist.WithBranchBits(f.bits))
	if err != nil {
		return nil, err
	}
	l = l.Batch(func(m *rrblist.List[int]) {
		for i := range f.n {
			m.Append(i)
		}
		for i := range f.prepend {
			m.Prepend(-1 - i)
		}
	})
	to := f.to
	if to < 0 {
		to = l.Len()
	}
	if l, err = l.Slice(f.from, to); err != nil {
		return nil, err
	}
	copies := make([]*rrblist.List[int], f.concat)
	for i := range copies {
		copies[i] = l
	}
	return l.Concat(copies...)
}

// terminalWidth returns the width of stdout if it is a terminal, else 0.
func terminalWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 0
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}

var (
	leafColor    = color.New(color.FgGreen)
	plainColor   = color.New(color.FgBlue)
	relaxedColor = color.New(color.FgRed, color.Bold)
)

// printLevels prints one line per tree level. Lines are truncated to width
// characters, if width is positive.
func printLevels(levels [][]rrb.NodeInfo, width int) {
	for depth, level := range levels {
		prefix := fmt.Sprintf("%2d: ", len(levels)-1-depth)
		used := len(prefix)
		var b strings.Builder
		b.WriteString(prefix)
		for _, n := range level {
			var cell string
			var c *color.Color
			switch {
			case n.Leaf:
				cell, c = fmt.Sprintf("[%d]", n.Size), leafColor
			case n.Relaxed:
				cell, c = fmt.Sprintf("{%d/%d}", n.Size, n.Width), relaxedColor
			default:
				cell, c = fmt.Sprintf("(%d/%d)", n.Size, n.Width), plainColor
			}
			if width > 0 && used+len(cell)+1 > width-1 {
				b.WriteString("…")
				break
			}
			b.WriteString(c.Sprint(cell))
			b.WriteByte(' ')
			used += len(cell) + 1
		}
		fmt.Println(b.String())
	}
}
