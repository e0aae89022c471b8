package jbase

import (
	"sync"

	"github.com/npillmayer/jbase/dom"
	"github.com/npillmayer/jbase/fetch"
)

var defaultWindow struct {
	sync.RWMutex
	w *dom.Window
}

// Aliases are the names the selection factory is bound to in the global
// scope of an installed window.
var Aliases = []string{"$", "jBase", "jB", "_jB", "__jB", "_jBase", "__jBase", "__"}

// Factory is the type of the selection factory bound as a window global.
type Factory func(input interface{}, ctx ...dom.Host) *Selection

// Install makes w the default context for New and binds the selection
// factory (under every name of Aliases) and the HTTP helper (as "http")
// in its global scope. The factory evaluates selectors in w's document
// unless a context is given.
//
// Install is meant to be called once at startup. Installing another
// window replaces the former default.
func Install(w *dom.Window) {
	if w == nil {
		return
	}
	factory := Factory(func(input interface{}, ctx ...dom.Host) *Selection {
		if len(ctx) == 0 {
			ctx = []dom.Host{w}
		}
		return New(input, ctx...)
	})
	for _, name := range Aliases {
		w.SetGlobal(name, factory)
	}
	w.SetGlobal("http", fetch.Default())
	defaultWindow.Lock()
	defer defaultWindow.Unlock()
	defaultWindow.w = w
	tracer().Infof("jBase installed")
}

// Uninstall removes the default window. Globals bound by Install are kept.
func Uninstall() {
	defaultWindow.Lock()
	defer defaultWindow.Unlock()
	defaultWindow.w = nil
}

// Default returns the installed default window, or nil.
func Default() *dom.Window {
	defaultWindow.RLock()
	defer defaultWindow.RUnlock()
	return defaultWindow.w
}
