package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// SupportsChecked is true for <input> elements.
func SupportsChecked(n *html.Node) bool {
	return IsTag(n, "input")
}

// Checked reports the checkedness of an <input>. In this DOM, checkedness is
// represented by the attribute "checked".
func Checked(n *html.Node) bool {
	return SupportsChecked(n) && HasAttribute(n, "checked")
}

// SetChecked changes the checkedness of an <input>. Checking a radio button
// unchecks all other radio buttons of the same group.
func SetChecked(n *html.Node, on bool) {
	if !SupportsChecked(n) {
		return
	}
	ToggleAttribute(n, "checked", on)
	if on && inputType(n) == "radio" {
		for _, other := range radioGroup(n) {
			if other != n {
				RemoveAttribute(other, "checked")
			}
		}
	}
}

// SupportsSelected is true for <option> elements.
func SupportsSelected(n *html.Node) bool {
	return IsTag(n, "option")
}

// Selected reports the selectedness of an <option>.
func Selected(n *html.Node) bool {
	return SupportsSelected(n) && HasAttribute(n, "selected")
}

// SetSelected changes the selectedness of an <option>. Within a <select>
// without attribute "multiple", selecting an option deselects all others.
func SetSelected(n *html.Node, on bool) {
	if !SupportsSelected(n) {
		return
	}
	ToggleAttribute(n, "selected", on)
	if !on {
		return
	}
	if sel := owningSelect(n); sel != nil && !HasAttribute(sel, "multiple") {
		for _, opt := range options(sel) {
			if opt != n {
				RemoveAttribute(opt, "selected")
			}
		}
	}
}

// SupportsDisabled is true for elements supporting attribute "disabled".
func SupportsDisabled(n *html.Node) bool {
	if !IsElement(n) {
		return false
	}
	switch n.Data {
	case "button", "fieldset", "input", "optgroup", "option", "select", "textarea":
		return true
	}
	return false
}

// Disabled reports if a form control is disabled.
func Disabled(n *html.Node) bool {
	return SupportsDisabled(n) && HasAttribute(n, "disabled")
}

// SetDisabled enables or disables a form control.
func SetDisabled(n *html.Node, on bool) {
	if SupportsDisabled(n) {
		ToggleAttribute(n, "disabled", on)
	}
}

// IsFormControl is true for <input>, <textarea> and <select>.
func IsFormControl(n *html.Node) bool {
	return IsTag(n, "input") || IsTag(n, "textarea") || IsTag(n, "select")
}

// Value returns the value of a form control: the "value" attribute of an
// <input>, the text of a <textarea>, the value of the selected option of a
// <select>. Other elements have an empty value.
func Value(n *html.Node) string {
	switch {
	case IsTag(n, "input"):
		v, ok := GetAttribute(n, "value")
		if !ok && (inputType(n) == "checkbox" || inputType(n) == "radio") {
			return "on"
		}
		return v
	case IsTag(n, "textarea"):
		return TextContent(n)
	case IsTag(n, "select"):
		opts := options(n)
		for _, opt := range opts {
			if Selected(opt) {
				return optionValue(opt)
			}
		}
		if len(opts) > 0 && !HasAttribute(n, "multiple") {
			return optionValue(opts[0])
		}
	case IsTag(n, "option"):
		return optionValue(n)
	}
	return ""
}

// SetValue sets the value of a form control. For a <select>, the first option
// with the given value gets selected; if there is none, no option is selected.
func SetValue(n *html.Node, value string) {
	switch {
	case IsTag(n, "input"):
		SetAttribute(n, "value", value)
	case IsTag(n, "textarea"):
		SetTextContent(n, value)
	case IsTag(n, "select"):
		var match *html.Node
		for _, opt := range options(n) {
			if match == nil && optionValue(opt) == value {
				match = opt
				continue
			}
			RemoveAttribute(opt, "selected")
		}
		if match != nil {
			SetAttribute(match, "selected", "")
		}
	default:
		tracer().Debugf("value of %s cannot be set", Describe(n))
	}
}

func inputType(n *html.Node) string {
	t, _ := GetAttribute(n, "type")
	t = strings.ToLower(strings.TrimSpace(t))
	if t == "" {
		return "text"
	}
	return t
}

func optionValue(opt *html.Node) string {
	if v, ok := GetAttribute(opt, "value"); ok {
		return v
	}
	return strings.Join(strings.Fields(TextContent(opt)), " ")
}

func options(sel *html.Node) []*html.Node {
	return QuerySelectorAll(sel, "option")
}

func owningSelect(opt *html.Node) *html.Node {
	for p := ParentElement(opt); p != nil; p = ParentElement(p) {
		if IsTag(p, "select") {
			return p
		}
		if !IsTag(p, "optgroup") {
			return nil
		}
	}
	return nil
}

// FormOf returns the form owner of a control, i.e. its nearest <form> ancestor.
func FormOf(n *html.Node) *html.Node {
	for p := ParentElement(n); p != nil; p = ParentElement(p) {
		if IsTag(p, "form") {
			return p
		}
	}
	return nil
}

// radioGroup returns the radio buttons sharing name and form owner with n.
func radioGroup(n *html.Node) []*html.Node {
	name, ok := GetAttribute(n, "name")
	if !ok || name == "" {
		return nil
	}
	scope := FormOf(n)
	if scope == nil {
		scope = RootOf(n)
	}
	var group []*html.Node
	for _, r := range QuerySelectorAll(scope, "input") {
		if inputType(r) != "radio" || FormOf(r) != FormOf(n) {
			continue
		}
		if other, _ := GetAttribute(r, "name"); other == name {
			group = append(group, r)
		}
	}
	return group
}
