package rrb

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of the tree of s in Graphviz DOT
// format (for debugging purposes). Nodes editable by the current session
// are highlighted, as are the nodes the edge views refer to.
func (s *State[T]) ToDot(w io.Writer) error {
	var nodes, edges strings.Builder
	nodes.WriteString("strict digraph {\n")
	nodes.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if s.size > 0 {
		root, level := s.committedRoot()
		ids := newtable[T]()
		focused := map[*node[T]]bool{}
		for _, v := range []*view[T]{s.left, s.right} {
			for ; v != nil; v = v.parent {
				focused[v.node] = true
			}
		}
		eachNode(root, level, func(n *node[T], l int) {
			id := ids.alloc(n)
			styles := nodeDotStyles(l == 0, n.group == s.group, focused[n])
			if l == 0 {
				fmt.Fprintf(&nodes, "\"%d\" [label=\"%d\\n%s\" %s];\n", id, n.size, leafstart(n), styles)
				return
			}
			label := fmt.Sprintf("%d", n.size)
			if n.isRelaxed() {
				label += "\\nrelaxed"
			}
			fmt.Fprintf(&nodes, "\"%d\" [label=\"%s\" %s];\n", id, label, styles)
			for _, c := range n.slots {
				fmt.Fprintf(&edges, "\"%d\" -> \"%d\";\n", id, ids.alloc(c))
			}
		})
	}
	edges.WriteString("}\n")
	if _, err := io.WriteString(w, nodes.String()); err != nil {
		tracer().Errorf("rrb DOT: %s", err.Error())
		return err
	}
	_, err := io.WriteString(w, edges.String())
	return err
}

// leafstart renders the first few values of a leaf.
func leafstart[T any](n *node[T]) string {
	var b strings.Builder
	for i, v := range n.values {
		if i == 3 {
			b.WriteString(" …")
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", v)
	}
	return strings.ReplaceAll(b.String(), "\"", "\\\"")
}

func nodeDotStyles(isleaf, editable, focused bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",shape=circle"
	}
	switch {
	case focused:
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolors[4])
	case editable:
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[2])
	default:
		s += ",fillcolor=white"
	}
	return s
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66"}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF"}
