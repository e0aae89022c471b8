package jbase

import (
	"strings"
	"unicode"

	"github.com/npillmayer/jbase/dom"
	"golang.org/x/net/html"
)

// Attr returns an attribute of the first element.
func (s *Selection) Attr(name string) (string, bool) {
	return dom.GetAttribute(s.first(), name)
}

// SetAttr sets an attribute for every element.
func (s *Selection) SetAttr(name, value string) *Selection {
	return s.elements(func(n *html.Node) {
		dom.SetAttribute(n, name, value)
	})
}

// RemoveAttr removes an attribute from every element.
func (s *Selection) RemoveAttr(name string) *Selection {
	return s.elements(func(n *html.Node) {
		dom.RemoveAttribute(n, name)
	})
}

// Data returns a data-* attribute of the first element. Keys may be given
// in DOM dataset notation ("userId") or attribute notation ("user-id").
func (s *Selection) Data(key string) (string, bool) {
	return dom.GetAttribute(s.first(), dataAttr(key))
}

// SetData sets a data-* attribute for every element.
func (s *Selection) SetData(key, value string) *Selection {
	return s.SetAttr(dataAttr(key), value)
}

func dataAttr(key string) string {
	var b strings.Builder
	b.WriteString("data-")
	for _, r := range strings.TrimPrefix(key, "data-") {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Val returns the value of the first form control: the value of inputs,
// the text of text areas, the value of the selected option of selects.
// Other elements have an empty value.
func (s *Selection) Val() string {
	return dom.Value(s.first())
}

// SetVal sets the value of every form control. For selects, the option
// with the given value gets selected.
func (s *Selection) SetVal(value string) *Selection {
	return s.elements(func(n *html.Node) {
		dom.SetValue(n, value)
	})
}

// --- Content ---------------------------------------------------------------

// HTML returns the inner markup of the first element.
func (s *Selection) HTML() string {
	if n := s.first(); n != nil {
		return dom.InnerHTML(n)
	}
	return ""
}

// SetHTML replaces the content of every element by parsed markup.
func (s *Selection) SetHTML(markup string) *Selection {
	return s.elements(func(n *html.Node) {
		dom.SetInnerHTML(n, markup)
	})
}

// OuterHTML returns the markup of the first element, including the
// element itself.
func (s *Selection) OuterHTML() string {
	if n := s.first(); n != nil {
		return dom.OuterHTML(n)
	}
	return ""
}

// Text returns the text content of the first element.
func (s *Selection) Text() string {
	if n := s.first(); n != nil {
		return dom.TextContent(n)
	}
	return ""
}

// SetText replaces the content of every element by a text node.
func (s *Selection) SetText(text string) *Selection {
	return s.elements(func(n *html.Node) {
		dom.SetTextContent(n, text)
	})
}
