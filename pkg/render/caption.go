package render

import "golang.org/x/net/html"

// dividerGlyph separates the left label from the description in a caption
const dividerGlyph = " ·"

// BuildCaption builds one caption line: a styled left label (client name or
// item number), a de-emphasized divider when both parts are present, then the
// description. Returns nil when both parts are empty so callers can skip the
// line entirely.
func BuildCaption(label, description, labelClass string) *html.Node {
	if label == "" && description == "" {
		return nil
	}

	line := Element("p", Attr("class", "caption-line"))

	if label != "" {
		span := Element("span", Attr("class", labelClass))
		AppendBracketed(span, label)
		line.AppendChild(span)
	}

	if label != "" && description != "" {
		divider := Element("span", Attr("class", DimClass))
		divider.AppendChild(Text(dividerGlyph))
		line.AppendChild(divider)
		AppendBracketed(line, " "+description)
	} else if description != "" {
		AppendBracketed(line, description)
	}

	return line
}
