package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// GetAttribute returns the value of an attribute of an element, together with
// an indicator if the attribute is present. HTML attribute names are
// case-insensitive.
func GetAttribute(n *html.Node, name string) (string, bool) {
	if !IsElement(n) {
		return "", false
	}
	name = strings.ToLower(name)
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttribute checks for the presence of an attribute.
func HasAttribute(n *html.Node, name string) bool {
	_, ok := GetAttribute(n, name)
	return ok
}

// SetAttribute sets an attribute of an element, adding it at the end of
// the attribute list if it is not yet present.
func SetAttribute(n *html.Node, name, value string) {
	if !IsElement(n) {
		return
	}
	name = strings.ToLower(name)
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute removes an attribute of an element, if present.
func RemoveAttribute(n *html.Node, name string) {
	if !IsElement(n) {
		return
	}
	name = strings.ToLower(name)
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// ToggleAttribute sets a boolean attribute (to the empty string) or removes it.
func ToggleAttribute(n *html.Node, name string, on bool) {
	if on {
		if !HasAttribute(n, name) {
			SetAttribute(n, name, "")
		}
		return
	}
	RemoveAttribute(n, name)
}

// --- Class list ------------------------------------------------------------

// Classes returns the class list of an element.
func Classes(n *html.Node) []string {
	v, _ := GetAttribute(n, "class")
	return strings.Fields(v)
}

// HasClass checks if an element has a class in its class list.
func HasClass(n *html.Node, class string) bool {
	for _, c := range Classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds classes to the class list of an element. Classes already
// present are not duplicated.
func AddClass(n *html.Node, classes ...string) {
	if !IsElement(n) {
		return
	}
	list := Classes(n)
	changed := false
	for _, c := range classes {
		for _, c := range strings.Fields(c) {
			if !contains(list, c) {
				list = append(list, c)
				changed = true
			}
		}
	}
	if changed {
		SetAttribute(n, "class", strings.Join(list, " "))
	}
}

// RemoveClass removes classes from the class list of an element.
func RemoveClass(n *html.Node, classes ...string) {
	if !IsElement(n) || !HasAttribute(n, "class") {
		return
	}
	var remove []string
	for _, c := range classes {
		remove = append(remove, strings.Fields(c)...)
	}
	list := Classes(n)
	kept := list[:0]
	for _, c := range list {
		if !contains(remove, c) {
			kept = append(kept, c)
		}
	}
	SetAttribute(n, "class", strings.Join(kept, " "))
}

// ToggleClass flips the presence of a class and returns true if the class is
// present afterwards.
func ToggleClass(n *html.Node, class string) bool {
	if !IsElement(n) {
		return false
	}
	if HasClass(n, class) {
		RemoveClass(n, class)
		return false
	}
	AddClass(n, class)
	return true
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
