/*
Package htmltext extracts the textual content of HTML as segments.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package htmltext

import (
	"io"
	"strings"

	"github.com/npillmayer/segment"
	"golang.org/x/net/html"
)

// InnerText creates a segment for the textual content of an HTML element
// and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendents).
//
// The returned segment covers a freshly collected backing string holding
// the concatenated text nodes.
func InnerText(n *html.Node) (segment.Segment, error) {
	if n == nil {
		return segment.Segment{}, segment.ErrIllegalArguments
	}
	var sb strings.Builder
	collectText(n, &sb)
	return segment.FromString(sb.String()), nil
}

// TextFromHTML creates a segment from the textual content of an HTML
// fragment. It does no interpretation of layout and styling, but extracts
// the pure text.
func TextFromHTML(input io.Reader) (segment.Segment, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return segment.Segment{}, err
	}
	var sb strings.Builder
	for _, n := range nodes {
		collectText(n, &sb)
	}
	return segment.FromString(sb.String()), nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
