package gallery

import (
	"strings"

	"golang.org/x/net/html"
)

// findSection finds the gallery-section container whose data-gallery
// attribute names the given kind. Sections are tagged explicitly instead of
// sniffing icon glyphs, so the lookup survives copy changes.
func findSection(doc *html.Node, want string) *html.Node {
	return find(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode &&
			hasClass(n, "gallery-section") &&
			attrValue(n, "data-gallery") == want
	})
}

// findByClass finds the first element under root carrying the given class
func findByClass(root *html.Node, class string) *html.Node {
	return find(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, class)
	})
}

// find walks the tree depth-first and returns the first match
func find(root *html.Node, match func(*html.Node) bool) *html.Node {
	if root == nil {
		return nil
	}
	if match(root) {
		return root
	}
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if found := find(child, match); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attrValue(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// setAttr sets or replaces one attribute in a list
func setAttr(attrs []html.Attribute, key, val string) []html.Attribute {
	for i := range attrs {
		if attrs[i].Key == key {
			attrs[i].Val = val
			return attrs
		}
	}
	return append(attrs, html.Attribute{Key: key, Val: val})
}

// removeChildren detaches all children of a node
func removeChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}
