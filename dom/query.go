package dom

import (
	"strings"

	"github.com/andybalholm/cascadia"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Selector is a compiled CSS selector group, as accepted by
// `querySelectorAll` in browsers.
type Selector struct {
	source string
	group  cascadia.SelectorGroup
}

// SelectorCacheSize is the number of compiled selectors kept for re-use.
const SelectorCacheSize = 512

var compiled = mustCache(SelectorCacheSize) // source -> *Selector

func mustCache(size int) *lru.Cache {
	c, err := lru.New(size)
	if err != nil {
		panic(err)
	}
	return c
}

// Compile parses a CSS selector group. The most recently used selectors
// are cached; invalid selectors are not.
func Compile(selector string) (*Selector, error) {
	selector = strings.TrimSpace(selector)
	if s, ok := compiled.Get(selector); ok {
		return s.(*Selector), nil
	}
	if selector == "" {
		return nil, errors.New("empty selector")
	}
	group, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid selector %q", selector)
	}
	s := &Selector{source: selector, group: group}
	compiled.Add(selector, s)
	return s, nil
}

// mustSelector compiles a selector, tracing compile errors. It
// returns nil for invalid selectors.
func mustSelector(selector string) *Selector {
	s, err := Compile(selector)
	if err != nil {
		tracer().P("selector", selector).Errorf(err.Error())
		return nil
	}
	return s
}

func (s *Selector) String() string {
	return s.source
}

// Match checks if an element matches the selector.
func (s *Selector) Match(n *html.Node) bool {
	return s != nil && IsElement(n) && s.group.Match(n)
}

// QueryAll returns all descendants of n (excluding n) matching the selector,
// in document order.
func (s *Selector) QueryAll(n *html.Node) []*html.Node {
	if s == nil || n == nil {
		return nil
	}
	return cascadia.QueryAll(n, s.group)
}

// Query returns the first descendant of n matching the selector, or nil.
func (s *Selector) Query(n *html.Node) *html.Node {
	if s == nil || n == nil {
		return nil
	}
	return cascadia.Query(n, s.group)
}

// Matches checks an element against a selector string. Invalid selectors
// match nothing.
func Matches(n *html.Node, selector string) bool {
	return mustSelector(selector).Match(n)
}

// QuerySelectorAll returns all descendants of n matching a selector string.
// Invalid selectors produce an empty result.
func QuerySelectorAll(n *html.Node, selector string) []*html.Node {
	return mustSelector(selector).QueryAll(n)
}

// QuerySelector returns the first descendant of n matching a selector
// string, or nil.
func QuerySelector(n *html.Node, selector string) *html.Node {
	return mustSelector(selector).Query(n)
}

// Closest returns the nearest inclusive ancestor of n matching a selector string.
func Closest(n *html.Node, selector string) *html.Node {
	s := mustSelector(selector)
	if s == nil {
		return nil
	}
	for ; n != nil; n = n.Parent {
		if s.Match(n) {
			return n
		}
	}
	return nil
}
