// Package render builds the HTML fragments for gallery items: caption lines,
// filename lines and the grid cells themselves. Fragments are golang.org/x/net
// html nodes so callers can splice them into a parsed page.
package render

import (
	"regexp"

	"golang.org/x/net/html"
)

// DimClass marks a de-emphasized text span
const DimClass = "dim"

var bracketRegexp = regexp.MustCompile(`\(.*?\)`)

// Segment is one run of caption text. Dim segments are the parenthesized
// groups, rendered at reduced prominence.
type Segment struct {
	Text string
	Dim  bool
}

// SplitBracketed splits text on parenthesized groups. Delimiters and the gaps
// between groups are preserved, so joining the segment texts reproduces the
// input exactly.
func SplitBracketed(text string) []Segment {
	if text == "" {
		return nil
	}

	var segments []Segment
	last := 0
	for _, loc := range bracketRegexp.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Text: text[last:loc[0]]})
		}
		segments = append(segments, Segment{Text: text[loc[0]:loc[1]], Dim: true})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}

// AppendBracketed appends text to parent, wrapping parenthesized groups in
// de-emphasized spans. Empty text is a no-op.
func AppendBracketed(parent *html.Node, text string) {
	for _, seg := range SplitBracketed(text) {
		if seg.Dim {
			span := Element("span", Attr("class", DimClass))
			span.AppendChild(Text(seg.Text))
			parent.AppendChild(span)
			continue
		}
		parent.AppendChild(Text(seg.Text))
	}
}

// Element creates an element node with the given attributes
func Element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type: html.ElementNode,
		Data: tag,
		Attr: attrs,
	}
}

// Text creates a text node
func Text(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// Attr builds one attribute
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}
