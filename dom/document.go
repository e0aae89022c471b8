package dom

import (
	"io"
	"strings"

	"github.com/npillmayer/jbase/dom/style/cssom"
	"github.com/npillmayer/jbase/dom/style/cssom/douceuradapter"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ReadyState reflects the loading state of a document.
type ReadyState int8

// Document ready states, as in browsers.
const (
	Loading ReadyState = iota
	Interactive
	Complete
)

func (r ReadyState) String() string {
	switch r {
	case Loading:
		return "loading"
	case Interactive:
		return "interactive"
	}
	return "complete"
}

// Host is implemented by documents and windows. Package jbase accepts a host
// as a context for selector evaluation.
type Host interface {
	Doc() *Document
}

// Document is an HTML document. It owns the parse tree (given by Root) and
// the event listeners registered for nodes of the tree.
type Document struct {
	root       *html.Node
	window     *Window
	listeners  *registry
	active     *html.Node
	readyState ReadyState
	closed     bool
}

const emptyDocument = "<!DOCTYPE html><html><head></head><body></body></html>"

// NewDocument creates an empty HTML document with <head> and <body>.
func NewDocument() *Document {
	doc, err := ParseString(emptyDocument)
	if err != nil { // cannot happen with a constant source
		panic(err)
	}
	return doc
}

// Parse reads an HTML document. The parser is the HTML5 parser of
// golang.org/x/net/html, i.e. missing <html>, <head> and <body> elements
// are created. Scripts are never executed. The document will be in
// ready state Complete.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse HTML document")
	}
	return WrapNode(root), nil
}

// ParseString reads an HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// WrapNode creates a document for an existing parse tree.
func WrapNode(root *html.Node) *Document {
	return &Document{
		root:       root,
		listeners:  newRegistry(),
		readyState: Complete,
	}
}

// Doc returns the document itself (interface Host).
func (d *Document) Doc() *Document {
	return d
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// DocumentElement returns the <html> element.
func (d *Document) DocumentElement() *html.Node {
	for ch := d.root.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode && ch.DataAtom == atom.Html {
			return ch
		}
	}
	return nil
}

// Head returns the <head> element.
func (d *Document) Head() *html.Node {
	return childOf(d.DocumentElement(), atom.Head)
}

// Body returns the <body> element.
func (d *Document) Body() *html.Node {
	return childOf(d.DocumentElement(), atom.Body)
}

func childOf(n *html.Node, a atom.Atom) *html.Node {
	if n == nil {
		return nil
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode && ch.DataAtom == a {
			return ch
		}
	}
	return nil
}

// Window returns the window of a document, or nil for stand-alone documents.
func (d *Document) Window() *Window {
	return d.window
}

// ReadyState returns the loading state of the document.
func (d *Document) ReadyState() ReadyState {
	return d.readyState
}

// SetReadyState changes the loading state. Leaving state Loading fires event
// "DOMContentLoaded" at the document; every change fires "readystatechange".
func (d *Document) SetReadyState(state ReadyState) {
	if state == d.readyState {
		return
	}
	old := d.readyState
	d.readyState = state
	d.DispatchEvent(d.root, NewEvent("readystatechange", EventInit{}))
	if old == Loading {
		d.DispatchEvent(d.root, NewEvent("DOMContentLoaded", EventInit{Bubbles: true}))
	}
}

// ActiveElement returns the element holding the focus, or <body>.
func (d *Document) ActiveElement() *html.Node {
	if d.active != nil && Contains(d.root, d.active) {
		return d.active
	}
	return d.Body()
}

// Owns checks if n is part of the parse tree of d.
func (d *Document) Owns(n *html.Node) bool {
	return n != nil && RootOf(n) == d.root
}

// QuerySelectorAll evaluates a selector against the whole document.
func (d *Document) QuerySelectorAll(selector string) []*html.Node {
	return QuerySelectorAll(d.root, selector)
}

// QuerySelector returns the first element of the document matching a selector.
func (d *Document) QuerySelector(selector string) *html.Node {
	return QuerySelector(d.root, selector)
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) *html.Node {
	tag = strings.ToLower(tag)
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// ParseFragment parses markup into detached nodes (elements, text and
// comments), as if it was the content of <body>.
func (d *Document) ParseFragment(markup string) []*html.Node {
	return parseFragment(markup, nil)
}

// ParseFragment parses markup into detached nodes as if it was the
// content of a <body> element.
func ParseFragment(markup string) []*html.Node {
	return parseFragment(markup, nil)
}

func parseFragment(markup string, context *html.Node) []*html.Node {
	if context == nil || context.Type != html.ElementNode {
		context = &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		tracer().Errorf("cannot parse HTML fragment: %v", err)
		return nil
	}
	return nodes
}

// HTML serializes the document.
func (d *Document) HTML() string {
	var b strings.Builder
	if err := html.Render(&b, d.root); err != nil {
		tracer().Errorf("cannot render document: %v", err)
	}
	return b.String()
}

// StyleSheets returns the style sheets of all <style> elements currently
// contained in the document.
func (d *Document) StyleSheets() []cssom.StyleSheet {
	css := douceuradapter.ExtractStyleElements(d.root)
	sheets := make([]cssom.StyleSheet, len(css))
	for i, c := range css {
		sheets[i] = c
	}
	return sheets
}

// Close releases all listeners and stops the window, if any. A closed
// document may still be inspected.
func (d *Document) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.listeners.clear()
	d.active = nil
	if d.window != nil {
		d.window.Close()
	}
}

// IsClosed returns true after Close has been called.
func (d *Document) IsClosed() bool {
	return d.closed
}
