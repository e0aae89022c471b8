/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

It additionally offers parsing of CSS declaration lists, as found in
`style` attributes of HTML elements.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/jbase/dom/style"
	"github.com/npillmayer/jbase/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'jbase.style'.
func tracer() tracing.Trace {
	return tracing.Select("jbase.style")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS source into a stylesheet.
func Parse(source string) (*CSSStyles, error) {
	c, err := parser.Parse(source)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse stylesheet")
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok {
		tracer().Errorf("cannot append rules of stylesheet type %T", other)
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the qualified rules of a stylesheet. At-rules
// (@media, @font-face, …) are not evaluated and therefore skipped.
//
// Interface style.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("skipping at-rule %s", r.Name)
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// If a rule declares a key more than once, the last declaration wins.
func (r Rule) Value(key string) style.Property {
	if d := r.last(key); d != nil {
		return style.Property(d.Value)
	}
	return style.NullStyle
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	if d := r.last(key); d != nil {
		return d.Important
	}
	return false
}

func (r Rule) last(key string) *css.Declaration {
	decl := r.Declarations
	for i := len(decl) - 1; i >= 0; i-- {
		if decl[i].Property == key {
			return decl[i]
		}
	}
	return nil
}

var _ cssom.Rule = &Rule{}

// ExtractStyleElements visits all elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets, in document order.
// Style elements with content which cannot be parsed are skipped.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.ElementNode && ch.DataAtom == atom.Style {
				if c, err := Parse(textOf(ch)); err != nil {
					tracer().Errorf(err.Error())
				} else {
					sheets = append(sheets, c)
				}
				continue
			}
			walk(ch)
		}
	}
	if htmldoc != nil {
		walk(htmldoc)
	}
	return sheets
}

func textOf(n *html.Node) string {
	var b strings.Builder
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			b.WriteString(ch.Data)
		}
	}
	return b.String()
}

// ParseDeclarations parses a list of CSS declarations, as found with
// `style` attributes of HTML elements, e.g.
//
//    color: red; margin: 0 4px !important
//
// Property names are lower-cased, except for custom properties. The final
// declaration need not be terminated by a semicolon. Declarations without a
// value are dropped.
func ParseDeclarations(source string) ([]style.KeyValue, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, nil
	}
	// douceur loses the value of an unterminated last declaration
	if !strings.HasSuffix(source, ";") {
		source += ";"
	}
	decls, err := parser.ParseDeclarations(source)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse declarations %q", source)
	}
	kvs := make([]style.KeyValue, 0, len(decls))
	for _, d := range decls {
		if strings.TrimSpace(d.Value) == "" {
			tracer().Debugf("dropping declaration %q without value", d.Property)
			continue
		}
		key := d.Property
		if !strings.HasPrefix(key, "--") {
			key = strings.ToLower(key)
		}
		kvs = append(kvs, style.KeyValue{
			Key:       key,
			Value:     style.Property(d.Value),
			Important: d.Important,
		})
	}
	return kvs, nil
}
