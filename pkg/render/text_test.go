package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// attrOf returns an attribute value of a node, empty when absent
func attrOf(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// renderToString serializes a node for content assertions
func renderToString(t *testing.T, n *html.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, html.Render(&sb, n))
	return sb.String()
}

func TestSplitBracketed(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []Segment
	}{
		{
			name: "two groups with gap",
			text: "(a) b (c)",
			expected: []Segment{
				{Text: "(a)", Dim: true},
				{Text: " b "},
				{Text: "(c)", Dim: true},
			},
		},
		{
			name:     "no groups",
			text:     "plain text",
			expected: []Segment{{Text: "plain text"}},
		},
		{
			name: "trailing group",
			text: "Poster series (silkscreen)",
			expected: []Segment{
				{Text: "Poster series "},
				{Text: "(silkscreen)", Dim: true},
			},
		},
		{
			name: "non-greedy stops at first close",
			text: "((inner) outer)",
			expected: []Segment{
				{Text: "((inner)", Dim: true},
				{Text: " outer)"},
			},
		},
		{name: "empty", text: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitBracketed(tt.text))
		})
	}
}

func TestSplitBracketedRoundTrip(t *testing.T) {
	inputs := []string{
		"(a) b (c)",
		"Atelier Nord (identity) and more (print)",
		"no brackets at all",
		"()",
		"unbalanced (open",
	}

	for _, input := range inputs {
		var joined strings.Builder
		for _, seg := range SplitBracketed(input) {
			joined.WriteString(seg.Text)
		}
		assert.Equal(t, input, joined.String())
	}
}

func TestAppendBracketed(t *testing.T) {
	parent := Element("p")
	AppendBracketed(parent, "(a) b (c)")

	first := parent.FirstChild
	require.NotNil(t, first)
	assert.Equal(t, "span", first.Data)
	assert.Equal(t, "(a)", first.FirstChild.Data)
	assert.Equal(t, DimClass, attrOf(first, "class"))

	second := first.NextSibling
	require.NotNil(t, second)
	assert.Equal(t, " b ", second.Data)

	third := second.NextSibling
	require.NotNil(t, third)
	assert.Equal(t, "span", third.Data)
	assert.Equal(t, "(c)", third.FirstChild.Data)
	assert.Nil(t, third.NextSibling)
}

func TestAppendBracketedEmptyIsNoOp(t *testing.T) {
	parent := Element("p")
	AppendBracketed(parent, "")
	assert.Nil(t, parent.FirstChild)
}
