package jbase

import (
	"github.com/npillmayer/jbase/dom"
	"github.com/pkg/errors"
)

// Env is a document together with its window, created from HTML source
// outside of any browser.
type Env struct {
	Document *dom.Document
	Window   *dom.Window
}

// ParseHTML parses an HTML document and creates a window for it. Options
// configure the window, e.g. dom.WithClock for tests.
//
// The environment is not installed as default; use Env.Select to create
// selections for it.
func ParseHTML(src string, opts ...dom.WindowOption) (*Env, error) {
	doc, err := dom.ParseString(src)
	if err != nil {
		return nil, errors.Wrap(err, "jbase cannot set up environment")
	}
	w := dom.NewWindow(doc, opts...)
	return &Env{Document: doc, Window: w}, nil
}

// Select creates a selection in the context of the environment.
func (env *Env) Select(input interface{}) *Selection {
	return New(input, env.Window)
}

// HTML serializes the document of the environment.
func (env *Env) HTML() string {
	return env.Document.HTML()
}

// Close releases listeners and pending timers of the environment. If the
// environment's window is installed as default, it is uninstalled.
func (env *Env) Close() {
	defaultWindow.Lock()
	if defaultWindow.w == env.Window {
		defaultWindow.w = nil
	}
	defaultWindow.Unlock()
	env.Document.Close()
}
