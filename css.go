package jbase

import (
	"github.com/npillmayer/jbase/dom"
	"github.com/npillmayer/jbase/dom/style"
	"golang.org/x/net/html"
)

// --- Classes ---------------------------------------------------------------

// AddClass adds one or more classes to every element.
func (s *Selection) AddClass(classes ...string) *Selection {
	return s.elements(func(n *html.Node) {
		dom.AddClass(n, classes...)
	})
}

// RemoveClass removes one or more classes from every element.
func (s *Selection) RemoveClass(classes ...string) *Selection {
	return s.elements(func(n *html.Node) {
		dom.RemoveClass(n, classes...)
	})
}

// ToggleClass flips the presence of a class for every element individually.
func (s *Selection) ToggleClass(class string) *Selection {
	return s.elements(func(n *html.Node) {
		dom.ToggleClass(n, class)
	})
}

// HasClass returns true if any element of the selection has a class.
func (s *Selection) HasClass(class string) bool {
	for _, n := range s.nodes {
		if dom.HasClass(n, class) {
			return true
		}
	}
	return false
}

// --- Styles ----------------------------------------------------------------

// Css returns the computed value of a style property of the first element.
// Property names may be given in DOM notation ("backgroundColor") or in
// CSS notation ("background-color").
func (s *Selection) Css(property string) string {
	n := s.first()
	if n == nil {
		return ""
	}
	return s.computed(n).Get(property)
}

// computed returns the computed style of an element. Elements outside of
// the selection's document (e.g., detached fragments) are styled within
// their own tree.
func (s *Selection) computed(n *html.Node) *dom.ComputedStyle {
	if s.doc != nil && s.doc.Owns(n) {
		return s.doc.ComputedStyle(n)
	}
	return dom.WrapNode(dom.RootOf(n)).ComputedStyle(n)
}

// SetCss sets an inline style property for every element. Numeric values
// get unit "px", unless the property is unitless (like "opacity").
// An empty value removes the property.
func (s *Selection) SetCss(property string, value interface{}) *Selection {
	v := style.FormatValue(property, value).String()
	return s.elements(func(n *html.Node) {
		dom.InlineStyle(n).Set(property, v)
	})
}

// inline sets inline properties of an element, in order.
func inline(n *html.Node, kvs ...string) {
	st := dom.InlineStyle(n)
	for i := 0; i+1 < len(kvs); i += 2 {
		st.Set(kvs[i], kvs[i+1])
	}
}
