package cssom

import (
	"github.com/andybalholm/cascadia"
	lru "github.com/hashicorp/golang-lru"
	"github.com/npillmayer/jbase/dom/style"
	"golang.org/x/net/html"
)

// candidate is a declared value for a property, competing in the cascade.
type candidate struct {
	value     style.Property
	important bool
	spec      cascadia.Specificity
	order     int
}

// outranks returns true if c wins over other. Candidates are expected to be
// presented in source order, therefore equal candidates let c win.
func (c candidate) outranks(other candidate) bool {
	if c.important != other.important {
		return c.important
	}
	return !c.spec.Less(other.spec)
}

// Lookup finds the cascaded value of a property for an element. It considers
// every rule of sheets (in order) whose selector matches n. key has to be given
// in CSS form, i.e. "margin-top" instead of "marginTop". Values declared with
// a shortcut property ("margin: 0 4px") are found for their long forms.
//
// Lookup returns false if no rule declares the property for n.
func Lookup(sheets []StyleSheet, n *html.Node, key string) (style.Property, bool) {
	kv, ok := Cascade(sheets, n, key)
	return kv.Value, ok
}

// Cascade is like Lookup, but returns the winning declaration, including
// its importance.
func Cascade(sheets []StyleSheet, n *html.Node, key string) (style.KeyValue, bool) {
	if n == nil || n.Type != html.ElementNode {
		return style.KeyValue{Key: key}, false
	}
	var best candidate
	found := false
	order := 0
	for _, sheet := range sheets {
		if sheet == nil {
			continue
		}
		for _, rule := range sheet.Rules() {
			order++
			value, important, ok := declared(rule, key)
			if !ok {
				continue
			}
			spec, matches := specificity(rule.Selector(), n)
			if !matches {
				continue
			}
			c := candidate{value: value, important: important, spec: spec, order: order}
			if !found || c.outranks(best) {
				best, found = c, true
			}
		}
	}
	if found {
		tracer().P("key", key).Debugf("cascaded value %q from rule #%d", best.value, best.order)
	}
	return style.KeyValue{Key: key, Value: best.value, Important: best.important}, found
}

// declared checks if a rule declares a value for key, either directly or
// by a shortcut property. The last declaration in a rule wins.
func declared(rule Rule, key string) (style.Property, bool, bool) {
	var value style.Property
	var important, ok bool
	for _, prop := range rule.Properties() {
		if prop == key {
			value, important, ok = rule.Value(prop), rule.IsImportant(prop), true
			continue
		}
		if !style.IsCompound(prop) {
			continue
		}
		kvs, err := style.SplitCompoundProperty(prop, rule.Value(prop))
		if err != nil {
			tracer().Debugf("ignoring shortcut property: %v", err)
			continue
		}
		for _, kv := range kvs {
			if kv.Key == key {
				value, important, ok = kv.Value, rule.IsImportant(prop), true
			}
		}
	}
	return value, important, ok
}

// selectorCache holds parsed stylesheet selectors. Selectors failing to
// parse are not cached.
var selectorCache = func() *lru.Cache {
	c, err := lru.New(1024)
	if err != nil {
		panic(err)
	}
	return c
}()

// specificity matches a selector group against n and returns the highest
// specificity of all matching selectors in the group.
func specificity(selector string, n *html.Node) (cascadia.Specificity, bool) {
	var group cascadia.SelectorGroup
	if g, ok := selectorCache.Get(selector); ok {
		group = g.(cascadia.SelectorGroup)
	} else {
		g, err := cascadia.ParseGroup(selector)
		if err != nil {
			tracer().P("selector", selector).Debugf("cannot use stylesheet selector: %v", err)
			return cascadia.Specificity{}, false
		}
		selectorCache.Add(selector, g)
		group = g
	}
	var spec cascadia.Specificity
	matches := false
	for _, sel := range group {
		if !sel.Match(n) {
			continue
		}
		if s := sel.Specificity(); !matches || spec.Less(s) {
			spec = s
		}
		matches = true
	}
	return spec, matches
}
