package dom

import (
	"golang.org/x/net/html"
)

// Click simulates a user click at an element: a bubbling, cancelable "click"
// event is dispatched, and, unless a listener prevented it, the activation
// behaviour of the element runs. Checkboxes toggle, radio buttons get checked
// (both followed by "input" and "change" events), submit buttons submit
// their form by dispatching "submit" at it.
//
// Disabled form controls do not receive clicks.
func (d *Document) Click(n *html.Node) {
	if !IsElement(n) || Disabled(n) {
		return
	}
	toggles := IsTag(n, "input") && (inputType(n) == "checkbox" || inputType(n) == "radio")
	var before map[*html.Node]bool
	if toggles { // pre-activation, as in browsers
		before = map[*html.Node]bool{n: Checked(n)}
		if inputType(n) == "checkbox" {
			SetChecked(n, !before[n])
		} else {
			for _, r := range radioGroup(n) {
				before[r] = Checked(r)
			}
			SetChecked(n, true)
		}
	}
	ok := d.DispatchEvent(n, NewEvent("click", EventInit{Bubbles: true, Cancelable: true, Detail: 1}))
	if toggles {
		if !ok { // canceled: restore state
			for r, checked := range before {
				ToggleAttribute(r, "checked", checked)
			}
			return
		}
		if Checked(n) != before[n] {
			d.DispatchEvent(n, NewEvent("input", EventInit{Bubbles: true}))
			d.DispatchEvent(n, NewEvent("change", EventInit{Bubbles: true}))
		}
		return
	}
	if ok && isSubmitter(n) {
		if form := FormOf(n); form != nil {
			d.DispatchEvent(form, NewEvent("submit", EventInit{Bubbles: true, Cancelable: true}))
		}
	}
}

func isSubmitter(n *html.Node) bool {
	switch {
	case IsTag(n, "button"):
		t, ok := GetAttribute(n, "type")
		return !ok || t == "" || t == "submit"
	case IsTag(n, "input"):
		t := inputType(n)
		return t == "submit" || t == "image"
	}
	return false
}

// IsFocusable is true for elements which may receive the focus.
func IsFocusable(n *html.Node) bool {
	if !IsElement(n) || Disabled(n) {
		return false
	}
	if HasAttribute(n, "tabindex") {
		return true
	}
	switch n.Data {
	case "button", "input", "select", "textarea", "iframe", "summary":
		return !(n.Data == "input" && inputType(n) == "hidden")
	case "a", "area":
		return HasAttribute(n, "href")
	}
	return HasAttribute(n, "contenteditable")
}

// Focus moves the focus to an element. The element which currently holds
// the focus is blurred first. Dispatches "focus" (not bubbling) and
// "focusin" (bubbling). Elements which are not focusable are ignored.
func (d *Document) Focus(n *html.Node) {
	if !IsFocusable(n) || d.active == n {
		return
	}
	if d.active != nil {
		d.Blur(d.active)
	}
	d.active = n
	d.DispatchEvent(n, NewEvent("focus", EventInit{}))
	d.DispatchEvent(n, NewEvent("focusin", EventInit{Bubbles: true}))
}

// Blur removes the focus from an element, if it holds the focus. Dispatches
// "blur" (not bubbling) and "focusout" (bubbling).
func (d *Document) Blur(n *html.Node) {
	if n == nil || d.active != n {
		return
	}
	d.active = nil
	d.DispatchEvent(n, NewEvent("blur", EventInit{}))
	d.DispatchEvent(n, NewEvent("focusout", EventInit{Bubbles: true}))
}
