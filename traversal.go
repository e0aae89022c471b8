package jbase

import (
	"github.com/npillmayer/jbase/dom"
	"golang.org/x/net/html"
)

// matching checks an element against an optional selector. Without a
// selector (or with an empty one) every element matches.
func matching(n *html.Node, selector []string) bool {
	if len(selector) == 0 || selector[0] == "" {
		return true
	}
	return dom.Matches(n, selector[0])
}

// collect derives a selection by calling step for every element of s.
func (s *Selection) collect(step func(n *html.Node, found []*html.Node) []*html.Node) *Selection {
	var found []*html.Node
	s.elements(func(n *html.Node) {
		found = step(n, found)
	})
	return s.derive(found)
}

// Closest returns, for every element, the nearest ancestor matching a
// selector. Elements themselves are candidates, too.
func (s *Selection) Closest(selector string) *Selection {
	return s.collect(func(n *html.Node, found []*html.Node) []*html.Node {
		if c := dom.Closest(n, selector); c != nil {
			found = append(found, c)
		}
		return found
	})
}

// Parent returns the parent elements of the elements.
func (s *Selection) Parent() *Selection {
	return s.collect(func(n *html.Node, found []*html.Node) []*html.Node {
		if p := dom.ParentElement(n); p != nil {
			found = append(found, p)
		}
		return found
	})
}

// Children returns the child elements, optionally filtered by a selector.
func (s *Selection) Children(selector ...string) *Selection {
	return s.collect(func(n *html.Node, found []*html.Node) []*html.Node {
		for _, ch := range dom.Children(n) {
			if matching(ch, selector) {
				found = append(found, ch)
			}
		}
		return found
	})
}

// FindAll returns the descendants matching a selector. The document node
// may be part of the selection, making FindAll a document-wide query.
func (s *Selection) FindAll(selector string) *Selection {
	var found []*html.Node
	for _, n := range s.nodes {
		if dom.IsElement(n) || n.Type == html.DocumentNode {
			found = append(found, dom.QuerySelectorAll(n, selector)...)
		}
	}
	return s.derive(found)
}

// Find is an alias of FindAll.
func (s *Selection) Find(selector string) *Selection {
	return s.FindAll(selector)
}

// Descendants returns all descendant elements.
func (s *Selection) Descendants() *Selection {
	return s.FindAll("*")
}

// Parents returns all ancestor elements, optionally filtered by a selector.
func (s *Selection) Parents(selector ...string) *Selection {
	return s.collect(func(n *html.Node, found []*html.Node) []*html.Node {
		for p := dom.ParentElement(n); p != nil; p = dom.ParentElement(p) {
			if matching(p, selector) {
				found = append(found, p)
			}
		}
		return found
	})
}

// ParentsUntil returns the ancestors up to, but not including, the first
// ancestor matching selector stop. The result may be filtered further.
func (s *Selection) ParentsUntil(stop string, filter ...string) *Selection {
	return s.collect(func(n *html.Node, found []*html.Node) []*html.Node {
		for p := dom.ParentElement(n); p != nil && !dom.Matches(p, stop); p = dom.ParentElement(p) {
			if matching(p, filter) {
				found = append(found, p)
			}
		}
		return found
	})
}

// DescendantsUntil returns the descendants in depth-first order, skipping
// every element matching selector stop together with its subtree.
// The result may be filtered further.
func (s *Selection) DescendantsUntil(stop string, filter ...string) *Selection {
	var walk func(n *html.Node, found []*html.Node) []*html.Node
	walk = func(n *html.Node, found []*html.Node) []*html.Node {
		for _, ch := range dom.Children(n) {
			if dom.Matches(ch, stop) {
				continue
			}
			if matching(ch, filter) {
				found = append(found, ch)
			}
			found = walk(ch, found)
		}
		return found
	}
	return s.collect(walk)
}

// Next returns the immediately following sibling elements, kept only if
// they match the optional selector.
func (s *Selection) Next(selector ...string) *Selection {
	return s.collect(func(n *html.Node, found []*html.Node) []*html.Node {
		if next := dom.NextElementSibling(n); next != nil && matching(next, selector) {
			found = append(found, next)
		}
		return found
	})
}

// Prev returns the immediately preceding sibling elements, kept only if
// they match the optional selector.
func (s *Selection) Prev(selector ...string) *Selection {
	return s.collect(func(n *html.Node, found []*html.Node) []*html.Node {
		if prev := dom.PrevElementSibling(n); prev != nil && matching(prev, selector) {
			found = append(found, prev)
		}
		return found
	})
}

// NextSibling is an alias of Next.
func (s *Selection) NextSibling(selector ...string) *Selection { return s.Next(selector...) }

// PrevSibling is an alias of Prev.
func (s *Selection) PrevSibling(selector ...string) *Selection { return s.Prev(selector...) }

// Sibling is an alias of Next.
func (s *Selection) Sibling(selector ...string) *Selection { return s.Next(selector...) }

// NextAll returns all following sibling elements, optionally filtered.
func (s *Selection) NextAll(selector ...string) *Selection {
	return s.siblingsWhile(dom.NextElementSibling, "", selector)
}

// PrevAll returns all preceding sibling elements, optionally filtered.
// Siblings are in reverse document order, nearest first.
func (s *Selection) PrevAll(selector ...string) *Selection {
	return s.siblingsWhile(dom.PrevElementSibling, "", selector)
}

// NextUntil returns the following siblings up to, but not including, the
// first sibling matching selector stop.
func (s *Selection) NextUntil(stop string, filter ...string) *Selection {
	return s.siblingsWhile(dom.NextElementSibling, stop, filter)
}

// PrevUntil returns the preceding siblings up to, but not including, the
// first sibling matching selector stop.
func (s *Selection) PrevUntil(stop string, filter ...string) *Selection {
	return s.siblingsWhile(dom.PrevElementSibling, stop, filter)
}

func (s *Selection) siblingsWhile(step func(*html.Node) *html.Node, stop string,
	filter []string) *Selection {
	//
	return s.collect(func(n *html.Node, found []*html.Node) []*html.Node {
		for sib := step(n); sib != nil; sib = step(sib) {
			if stop != "" && dom.Matches(sib, stop) {
				break
			}
			if matching(sib, filter) {
				found = append(found, sib)
			}
		}
		return found
	})
}

// Siblings returns all sibling elements, excluding the elements themselves.
func (s *Selection) Siblings(selector ...string) *Selection {
	return s.collect(func(n *html.Node, found []*html.Node) []*html.Node {
		parent := dom.ParentElement(n)
		if parent == nil {
			return found
		}
		for _, ch := range dom.Children(parent) {
			if ch != n && matching(ch, selector) {
				found = append(found, ch)
			}
		}
		return found
	})
}

// Eq reduces the selection to the node at index i. Negative indices count
// from the end. Indices out of range produce an empty selection.
func (s *Selection) Eq(i int) *Selection {
	if n := s.Get(i); n != nil {
		return s.derive([]*html.Node{n})
	}
	return s.derive(nil)
}

// First reduces the selection to its first node.
func (s *Selection) First() *Selection {
	return s.Eq(0)
}

// Last reduces the selection to its last node.
func (s *Selection) Last() *Selection {
	return s.Eq(-1)
}

// FilterBy keeps the elements matching a selector.
func (s *Selection) FilterBy(selector string) *Selection {
	return s.FilterByFunc(func(_ int, n *html.Node) bool {
		return dom.Matches(n, selector)
	})
}

// FilterByFunc keeps the elements for which a predicate returns true.
// The predicate receives the index of an element within the selection.
func (s *Selection) FilterByFunc(pred Predicate) *Selection {
	var found []*html.Node
	for i, n := range s.nodes {
		if dom.IsElement(n) && pred(i, n) {
			found = append(found, n)
		}
	}
	return s.derive(found)
}

// Not removes the elements matching a selector.
func (s *Selection) Not(selector string) *Selection {
	return s.NotFunc(func(_ int, n *html.Node) bool {
		return dom.Matches(n, selector)
	})
}

// NotFunc removes the elements for which a predicate returns true.
func (s *Selection) NotFunc(pred Predicate) *Selection {
	return s.FilterByFunc(func(i int, n *html.Node) bool {
		return !pred(i, n)
	})
}
