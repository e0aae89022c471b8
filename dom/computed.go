package dom

import (
	"github.com/npillmayer/jbase/dom/style"
	"github.com/npillmayer/jbase/dom/style/css"
	"github.com/npillmayer/jbase/dom/style/cssom"
	"golang.org/x/net/html"
)

// ComputedStyle resolves style properties of an element the way
// getComputedStyle does, minus layout: the inline style wins over
// stylesheet rules (unless a rule is !important), inherited properties
// are taken from the parent element, and finally the user-agent default
// applies. Values are not converted to "used" values, i.e. "2em" stays "2em".
type ComputedStyle struct {
	node   *html.Node
	sheets []cssom.StyleSheet
}

// ComputedStyle returns the computed style of an element. The style sheets
// of the document are read at the time of the call.
func (d *Document) ComputedStyle(n *html.Node) *ComputedStyle {
	return &ComputedStyle{node: n, sheets: d.StyleSheets()}
}

// Get returns the computed value of a property (DOM or CSS name).
func (c *ComputedStyle) Get(name string) string {
	return c.resolve(c.node, style.PropertyName(name)).String()
}

// Display returns the computed display mode.
func (c *ComputedStyle) Display() css.DisplayMode {
	mode, err := css.ParseDisplay(c.Get("display"))
	if err != nil {
		tracer().Debugf(err.Error())
	}
	return mode
}

// IsHidden is true if the element has computed display "none". It does not
// check ancestors.
func (c *ComputedStyle) IsHidden() bool {
	return c.Display().IsNone()
}

func (c *ComputedStyle) resolve(n *html.Node, key string) style.Property {
	if n == nil {
		return style.NullStyle
	}
	if n.Type != html.ElementNode {
		return style.GetUserAgentDefaultProperty(n, key)
	}
	inline, hasInline := InlineStyle(n).lookup(key)
	ruled, hasRule := cssom.Cascade(c.sheets, n, key)
	var p style.Property
	switch {
	case hasRule && ruled.Important && !(hasInline && inline.Important):
		p = ruled.Value
	case hasInline:
		p = inline.Value
	case hasRule:
		p = ruled.Value
	}
	if p.IsInherit() || (p.IsEmpty() && style.IsCascading(key)) {
		if parent := ParentElement(n); parent != nil {
			return c.resolve(parent, key)
		}
		p = style.NullStyle
	}
	if p.IsEmpty() || p.IsInitial() {
		p = style.GetUserAgentDefaultProperty(n, key)
	}
	return p
}
