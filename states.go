package jbase

import (
	"github.com/npillmayer/jbase/dom"
	"golang.org/x/net/html"
)

// Checked returns the checkedness of the first node, which has to be an
// <input>. For other nodes, Checked returns false.
func (s *Selection) Checked() bool {
	return dom.Checked(s.Get(0))
}

// SetChecked checks or unchecks every <input>. Other elements are left alone.
func (s *Selection) SetChecked(on bool) *Selection {
	return s.elements(func(n *html.Node) {
		dom.SetChecked(n, on)
	})
}

// Selected returns the selectedness of the first node, which has to be an
// <option>. For other nodes, Selected returns false.
func (s *Selection) Selected() bool {
	return dom.Selected(s.Get(0))
}

// SetSelected selects or deselects every <option>.
func (s *Selection) SetSelected(on bool) *Selection {
	return s.elements(func(n *html.Node) {
		dom.SetSelected(n, on)
	})
}

// Disabled returns true if the first node is a disabled form control.
func (s *Selection) Disabled() bool {
	return dom.Disabled(s.Get(0))
}

// SetDisabled disables or enables every element supporting attribute
// "disabled". Class "disabled" is toggled accordingly.
func (s *Selection) SetDisabled(on bool) *Selection {
	return s.elements(func(n *html.Node) {
		if !dom.SupportsDisabled(n) {
			return
		}
		dom.SetDisabled(n, on)
		if on {
			dom.AddClass(n, "disabled")
		} else {
			dom.RemoveClass(n, "disabled")
		}
	})
}
