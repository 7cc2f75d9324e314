/*
Package html extracts the textual content of HTML as lists of text
fragments.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/rrblist"
	"golang.org/x/net/html"
)

// InnerText creates a list of the text fragments of an HTML element and all
// its descendents. Joined, they resemble the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
//
// Every text node contributes one fragment, in document order.
func InnerText(n *html.Node) (*rrblist.List[string], error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil HTML node", rrblist.ErrInvalidArgument)
	}
	return rrblist.Empty[string]().Batch(func(l *rrblist.List[string]) {
		collectText(n, l)
	}), nil
}

func collectText(n *html.Node, l *rrblist.List[string]) {
	if n.Type == html.TextNode {
		l.Append(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, l)
	}
}

// TextFromHTML creates a list of the text fragments of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (*rrblist.List[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	return rrblist.Empty[string]().Batch(func(l *rrblist.List[string]) {
		for _, n := range nodes {
			collectText(n, l)
		}
	}), nil
}

// Text joins the fragments of a list produced by InnerText or TextFromHTML.
func Text(fragments *rrblist.List[string]) string {
	var b strings.Builder
	for frag := range fragments.Values() {
		b.WriteString(frag)
	}
	return b.String()
}
