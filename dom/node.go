package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// IsElement is a predicate for element nodes.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// IsTag checks if n is an element with a given tag name (lower case).
func IsTag(n *html.Node, tag string) bool {
	return IsElement(n) && n.Data == tag
}

// ParentElement returns the parent of n, if it is an element, or nil.
func ParentElement(n *html.Node) *html.Node {
	if n == nil || !IsElement(n.Parent) {
		return nil
	}
	return n.Parent
}

// NextElementSibling returns the next sibling of n which is an element.
func NextElementSibling(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if IsElement(s) {
			return s
		}
	}
	return nil
}

// PrevElementSibling returns the previous sibling of n which is an element.
func PrevElementSibling(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if IsElement(s) {
			return s
		}
	}
	return nil
}

// Children returns the child elements of n.
func Children(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var children []*html.Node
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if IsElement(ch) {
			children = append(children, ch)
		}
	}
	return children
}

// Contains returns true if other is n or a descendant of n.
func Contains(n, other *html.Node) bool {
	for ; other != nil; other = other.Parent {
		if other == n {
			return true
		}
	}
	return false
}

// RootOf returns the topmost ancestor of n (n itself, if n is detached).
func RootOf(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// Detach removes n from its parent. Detaching a detached node is a no-op.
func Detach(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// AppendChild moves child to the end of the children of parent. Moving a
// node into its own subtree is refused.
func AppendChild(parent, child *html.Node) {
	if parent == nil || child == nil {
		return
	}
	if Contains(child, parent) {
		tracer().Errorf("cannot move %s into its own subtree", Describe(child))
		return
	}
	Detach(child)
	parent.AppendChild(child)
}

// InsertBefore moves n before ref, which must have a parent. If ref is nil,
// n is appended to parent.
func InsertBefore(parent, n, ref *html.Node) {
	if parent == nil || n == nil || n == ref {
		return
	}
	if Contains(n, parent) {
		tracer().Errorf("cannot move %s into its own subtree", Describe(n))
		return
	}
	if ref != nil && ref.Parent != parent {
		tracer().Errorf("cannot insert before a node of another parent")
		return
	}
	Detach(n)
	parent.InsertBefore(n, ref)
}

// ReplaceChildren removes all children of n and appends nodes.
func ReplaceChildren(n *html.Node, nodes ...*html.Node) {
	if n == nil {
		return
	}
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	for _, ch := range nodes {
		AppendChild(n, ch)
	}
}

// Clone creates a copy of n. If deep is set, descendants are copied as well.
// The clone is detached. Event listeners are never copied.
func Clone(n *html.Node, deep bool) *html.Node {
	if n == nil {
		return nil
	}
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	if deep {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			c.AppendChild(Clone(ch, true))
		}
	}
	return c
}

// TextContent returns the concatenated text of all descendant text nodes.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			switch ch.Type {
			case html.TextNode:
				b.WriteString(ch.Data)
			case html.ElementNode, html.DocumentNode:
				walk(ch)
			}
		}
	}
	walk(n)
	return b.String()
}

// SetTextContent replaces all children of n by a single text node.
// An empty string leaves n without children.
func SetTextContent(n *html.Node, text string) {
	if n == nil {
		return
	}
	if text == "" {
		ReplaceChildren(n)
		return
	}
	ReplaceChildren(n, &html.Node{Type: html.TextNode, Data: text})
}

// InnerHTML serializes the children of n.
func InnerHTML(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if err := html.Render(&b, ch); err != nil {
			tracer().Errorf("cannot render node: %v", err)
		}
	}
	return b.String()
}

// OuterHTML serializes n.
func OuterHTML(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		tracer().Errorf("cannot render node: %v", err)
	}
	return b.String()
}

// SetInnerHTML replaces the children of n by the nodes parsed from markup,
// using n as the parsing context.
func SetInnerHTML(n *html.Node, markup string) {
	if n == nil {
		return
	}
	ReplaceChildren(n, parseFragment(markup, n)...)
}

// Describe returns a short descriptor of an element, e.g. "div#main.card.wide".
func Describe(n *html.Node) string {
	if n == nil {
		return "<nil>"
	}
	switch n.Type {
	case html.DocumentNode:
		return "#document"
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	case html.ElementNode:
	default:
		return "#node"
	}
	var b strings.Builder
	b.WriteString(n.Data)
	if id, ok := GetAttribute(n, "id"); ok && id != "" {
		b.WriteByte('#')
		b.WriteString(id)
	}
	for _, c := range Classes(n) {
		b.WriteByte('.')
		b.WriteString(c)
	}
	return b.String()
}
