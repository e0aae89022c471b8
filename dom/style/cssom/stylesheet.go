package cssom

import "github.com/npillmayer/jbase/dom/style"

// StyleSheet is the collection of rules of one <style> element. Computed
// styles of a document are resolved against all of its style sheets, in
// document order.
//
// Package douceuradapter implements StyleSheet on top of the douceur parser.
type StyleSheet interface {
	AppendRules(StyleSheet) // rules of the argument are appended, keeping their order
	Empty() bool
	Rules() []Rule
}

// Rule is a qualified rule of a style sheet: a selector group and a block
// of declarations. At-rules are not represented.
type Rule interface {
	Selector() string            // selector group, as written
	Properties() []string        // declared keys in CSS notation, e.g. "margin-top"
	Value(string) style.Property // declared value of a key, or style.NullStyle
	IsImportant(string) bool     // true for declarations marked "!important"
}
