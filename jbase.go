package jbase

import (
	"strings"

	"github.com/npillmayer/jbase/dom"
	"golang.org/x/net/html"
)

// Selection is an ordered sequence of nodes without duplicates. Every
// operation changing the set of nodes returns a new selection; the receiver
// is never modified.
//
// A selection remembers the document it has been created for. Detached
// nodes (e.g., freshly parsed fragments) still refer to this document for
// event dispatch and timers.
type Selection struct {
	nodes []*html.Node
	doc   *dom.Document
	query string
}

// Predicate is a filter function for selections. It receives the index
// within the selection and the node.
type Predicate func(i int, n *html.Node) bool

// New creates a selection from a selector input:
//
//	string          HTML fragment, if starting with '<' (after spaces);
//	                CSS selector otherwise
//	*html.Node      a single node
//	[]*html.Node    a list of nodes (de-duplicated)
//	*Selection      a copy of another selection
//	*dom.Document   the document node
//	*dom.Window     the document node of the window's document
//	nil             an empty selection
//
// CSS selectors are evaluated against the context, if given, or against
// the document of the installed default window (see Install).
// HTML fragments are parsed into detached nodes; scripts are never executed.
// Invalid selectors and unsupported inputs result in empty selections.
func New(input interface{}, ctx ...dom.Host) *Selection {
	doc := contextDocument(ctx)
	switch in := input.(type) {
	case nil:
		return &Selection{doc: doc}
	case string:
		return fromString(in, doc)
	case *html.Node:
		if in == nil {
			return &Selection{doc: doc}
		}
		return newSelection([]*html.Node{in}, doc)
	case []*html.Node:
		return newSelection(in, doc)
	case *Selection:
		if in == nil {
			return &Selection{doc: doc}
		}
		if doc == nil {
			doc = in.doc
		}
		s := newSelection(in.nodes, doc)
		s.query = in.query
		return s
	case *dom.Document:
		if in == nil {
			return &Selection{doc: doc}
		}
		return newSelection([]*html.Node{in.Root()}, in)
	case *dom.Window:
		if in == nil {
			return &Selection{doc: doc}
		}
		return New(in.Doc())
	case dom.Host:
		if d := in.Doc(); d != nil {
			return newSelection([]*html.Node{d.Root()}, d)
		}
		return &Selection{doc: doc}
	}
	tracer().Errorf("unsupported selector input of type %T", input)
	return &Selection{doc: doc}
}

// contextDocument returns the document of the first non-nil host or else
// the document of the default window.
func contextDocument(ctx []dom.Host) *dom.Document {
	for _, h := range ctx {
		if h != nil {
			if d := h.Doc(); d != nil {
				return d
			}
		}
	}
	if w := Default(); w != nil {
		return w.Doc()
	}
	return nil
}

func fromString(s string, doc *dom.Document) *Selection {
	if isMarkup(s) {
		if doc == nil {
			doc = dom.NewDocument()
		}
		var elements []*html.Node
		for _, n := range doc.ParseFragment(s) {
			if dom.IsElement(n) {
				elements = append(elements, n)
			}
		}
		return newSelection(elements, doc)
	}
	sel := &Selection{doc: doc, query: s}
	if doc == nil {
		tracer().P("selector", s).Debugf("no document to evaluate selector against")
		return sel
	}
	sel.nodes = doc.QuerySelectorAll(s)
	return sel
}

// isMarkup is true if a selector input string is an HTML fragment.
func isMarkup(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "<")
}

// newSelection creates a selection of distinct nodes, keeping the order of
// first occurrence.
func newSelection(nodes []*html.Node, doc *dom.Document) *Selection {
	return &Selection{nodes: distinct(nodes), doc: doc}
}

// derive creates a selection for the same document.
func (s *Selection) derive(nodes []*html.Node) *Selection {
	return newSelection(nodes, s.doc)
}

func distinct(nodes []*html.Node) []*html.Node {
	if len(nodes) == 0 {
		return nil
	}
	seen := make(map[*html.Node]struct{}, len(nodes))
	result := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		result = append(result, n)
	}
	return result
}

// Len returns the number of nodes in the selection.
func (s *Selection) Len() int {
	return len(s.nodes)
}

// Get returns the node at index i. Negative indices count from the end.
// Get returns nil for indices out of range.
func (s *Selection) Get(i int) *html.Node {
	if i < 0 {
		i += len(s.nodes)
	}
	if i < 0 || i >= len(s.nodes) {
		return nil
	}
	return s.nodes[i]
}

// Nodes returns a copy of the nodes of the selection.
func (s *Selection) Nodes() []*html.Node {
	nodes := make([]*html.Node, len(s.nodes))
	copy(nodes, s.nodes)
	return nodes
}

// Each calls f for every node of the selection, in order.
func (s *Selection) Each(f func(i int, n *html.Node)) *Selection {
	for i, n := range s.nodes {
		f(i, n)
	}
	return s
}

// Document returns the document the selection has been created for. It
// is nil for selections created without any context.
func (s *Selection) Document() *dom.Document {
	return s.doc
}

// Query returns the CSS selector a selection has been created from, if any.
func (s *Selection) Query() string {
	return s.query
}

// Add returns the union of the selection and the nodes of a selector input,
// which is evaluated in the context of the selection's document.
// Nodes of the receiver come first; document order is not restored.
func (s *Selection) Add(input interface{}) *Selection {
	var other *Selection
	if s.doc != nil {
		other = New(input, s.doc)
	} else {
		other = New(input)
	}
	nodes := make([]*html.Node, 0, len(s.nodes)+len(other.nodes))
	nodes = append(nodes, s.nodes...)
	nodes = append(nodes, other.nodes...)
	return s.derive(nodes)
}

// elements calls f for every element node of the selection.
func (s *Selection) elements(f func(n *html.Node)) *Selection {
	for _, n := range s.nodes {
		if dom.IsElement(n) {
			f(n)
		}
	}
	return s
}

// first returns the first element node of the selection, or nil.
func (s *Selection) first() *html.Node {
	for _, n := range s.nodes {
		if dom.IsElement(n) {
			return n
		}
	}
	return nil
}

// window returns the window of the selection's document, or nil.
func (s *Selection) window() *dom.Window {
	if s.doc == nil {
		return nil
	}
	return s.doc.Window()
}
