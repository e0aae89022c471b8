package jbase

import (
	"github.com/npillmayer/jbase/dom"
	"golang.org/x/net/html"
)

// Content for insertion operations may be one of
//
//	string        HTML markup, parsed for every target
//	*html.Node    a node
//	[]*html.Node  a list of nodes
//	*Selection    the nodes of a selection
//
// When the same nodes are inserted at more than one target, every target
// but the last receives deep clones; the last target receives the nodes
// themselves, which are moved from where they are.
type Content interface{}

// contentFor returns the nodes to insert at target number i of count.
func contentFor(content Content, i, count int) []*html.Node {
	var nodes []*html.Node
	switch c := content.(type) {
	case string:
		return dom.ParseFragment(c)
	case *html.Node:
		if c != nil {
			nodes = []*html.Node{c}
		}
	case []*html.Node:
		nodes = distinct(c)
	case *Selection:
		if c != nil {
			nodes = c.nodes
		}
	default:
		tracer().Errorf("unsupported content of type %T", content)
		return nil
	}
	if i == count-1 {
		return nodes
	}
	clones := make([]*html.Node, len(nodes))
	for j, n := range nodes {
		clones[j] = dom.Clone(n, true)
	}
	return clones
}

// insert calls f for every target element with the content nodes for
// that target.
func insert(targets []*html.Node, content Content, f func(target *html.Node, nodes []*html.Node)) {
	for i, t := range targets {
		f(t, contentFor(content, i, len(targets)))
	}
}

func (s *Selection) elementNodes() []*html.Node {
	var elems []*html.Node
	s.elements(func(n *html.Node) { elems = append(elems, n) })
	return elems
}

// attachedElements returns the elements having a parent node.
func (s *Selection) attachedElements() []*html.Node {
	var elems []*html.Node
	s.elements(func(n *html.Node) {
		if n.Parent != nil {
			elems = append(elems, n)
		}
	})
	return elems
}

// Remove detaches the nodes of the selection from their parents.
// The selection still holds the (now detached) nodes.
func (s *Selection) Remove() *Selection {
	for _, n := range s.nodes {
		dom.Detach(n)
	}
	return s
}

// Empty removes all children of the elements.
func (s *Selection) Empty() *Selection {
	return s.elements(func(n *html.Node) {
		dom.ReplaceChildren(n)
	})
}

// ReplaceWithClone replaces every element by a deep clone of itself. As
// listeners are bound to nodes, the clones are free of listeners. The
// returned selection holds the clones.
func (s *Selection) ReplaceWithClone() *Selection {
	var clones []*html.Node
	s.elements(func(n *html.Node) {
		c := dom.Clone(n, true)
		if n.Parent != nil {
			dom.InsertBefore(n.Parent, c, n)
			dom.Detach(n)
		}
		clones = append(clones, c)
	})
	return s.derive(clones)
}

// Append inserts content at the end of every element.
func (s *Selection) Append(content Content) *Selection {
	insert(s.elementNodes(), content, func(t *html.Node, nodes []*html.Node) {
		for _, n := range nodes {
			dom.AppendChild(t, n)
		}
	})
	return s
}

// Prepend inserts content at the beginning of every element.
func (s *Selection) Prepend(content Content) *Selection {
	insert(s.elementNodes(), content, func(t *html.Node, nodes []*html.Node) {
		ref := t.FirstChild
		for _, n := range nodes {
			if n == ref {
				ref = ref.NextSibling
				continue
			}
			dom.InsertBefore(t, n, ref)
		}
	})
	return s
}

// Before inserts content in front of every element.
func (s *Selection) Before(content Content) *Selection {
	insert(s.attachedElements(), content, func(t *html.Node, nodes []*html.Node) {
		for _, n := range nodes {
			dom.InsertBefore(t.Parent, n, t)
		}
	})
	return s
}

// After inserts content behind every element.
func (s *Selection) After(content Content) *Selection {
	insert(s.attachedElements(), content, func(t *html.Node, nodes []*html.Node) {
		ref := t.NextSibling
		for _, n := range nodes {
			if n == ref {
				ref = ref.NextSibling
				continue
			}
			dom.InsertBefore(t.Parent, n, ref)
		}
	})
	return s
}

// ReplaceWith replaces every element by content. The returned selection
// still holds the replaced, now detached, elements.
func (s *Selection) ReplaceWith(content Content) *Selection {
	insert(s.attachedElements(), content, func(t *html.Node, nodes []*html.Node) {
		for _, n := range nodes {
			if n != t {
				dom.InsertBefore(t.Parent, n, t)
			}
		}
		if !contains(nodes, t) {
			dom.Detach(t)
		}
	})
	return s
}

func contains(nodes []*html.Node, n *html.Node) bool {
	for _, x := range nodes {
		if x == n {
			return true
		}
	}
	return false
}

// Target of the *To and Insert* operations may be a CSS selector (evaluated
// in the selection's document), a node or a selection.
type Target interface{}

func (s *Selection) targets(target Target) []*html.Node {
	var t *Selection
	if s.doc != nil {
		t = New(target, s.doc)
	} else {
		t = New(target)
	}
	return t.elementNodes()
}

// AppendTo inserts the nodes of the selection at the end of every target.
func (s *Selection) AppendTo(target Target) *Selection {
	s.derive(s.targets(target)).Append(s)
	return s
}

// PrependTo inserts the nodes of the selection at the beginning of every target.
func (s *Selection) PrependTo(target Target) *Selection {
	s.derive(s.targets(target)).Prepend(s)
	return s
}

// InsertBefore inserts the nodes of the selection in front of every target.
func (s *Selection) InsertBefore(target Target) *Selection {
	s.derive(s.targets(target)).Before(s)
	return s
}

// InsertAfter inserts the nodes of the selection behind every target.
func (s *Selection) InsertAfter(target Target) *Selection {
	s.derive(s.targets(target)).After(s)
	return s
}

// Wrap wraps every element into a structure created from markup. The
// element is placed into the innermost first element of the structure.
func (s *Selection) Wrap(markup string) *Selection {
	return s.elements(func(n *html.Node) {
		var wrapper *html.Node
		for _, w := range dom.ParseFragment(markup) {
			if dom.IsElement(w) {
				wrapper = w
				break
			}
		}
		if wrapper == nil {
			tracer().P("markup", markup).Debugf("wrapper markup contains no element")
			return
		}
		inner := wrapper
		for ch := dom.Children(inner); len(ch) > 0; ch = dom.Children(inner) {
			inner = ch[0]
		}
		if n.Parent != nil {
			dom.InsertBefore(n.Parent, wrapper, n)
		}
		dom.AppendChild(inner, n)
	})
}

// Unwrap removes the parents of the elements, keeping their children in
// place. <body> and <html> are never removed.
func (s *Selection) Unwrap() *Selection {
	s.Parent().elements(func(p *html.Node) {
		if dom.IsTag(p, "body") || dom.IsTag(p, "html") || p.Parent == nil {
			return
		}
		for p.FirstChild != nil {
			dom.InsertBefore(p.Parent, p.FirstChild, p)
		}
		dom.Detach(p)
	})
	return s
}
