/*
Package jbase is a jQuery-style convenience layer over a server-side DOM.

A Selection is an ordered, deduplicated sequence of nodes. Selections are
created from a selector input (a CSS selector, an HTML fragment, nodes,
another selection, a document or a window) and every method either reads
from the first element or returns a selection, which allows chaining:

    env, err := jbase.ParseHTML(`<ul><li>a</li><li class="x">b</li></ul>`)
    env.Select("li").Not(".x").AddClass("first").SetCss("opacity", 0.5)

Selections never hold nodes in an owning way: nodes belong to the tree they
are attached to (or, for freshly parsed fragments, to nobody). Methods never
return errors for "no match"; an empty selection is valid input to every
method and every method is a no-op on it.

Primitive DOM operations are delegated to package dom, which implements
queries, styles, events and an event loop on top of golang.org/x/net/html.

Registration

Install registers a window as the default context of New and binds the
selection factory under its customary aliases as window globals. Without an
installed window, CSS selectors given without context yield empty selections.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package jbase

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jbase'.
func tracer() tracing.Trace {
	return tracing.Select("jbase")
}
