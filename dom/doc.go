/*
Package dom implements a server-side DOM host on top of golang.org/x/net/html.

Package jbase operates on element sequences and delegates every primitive
operation to this package: selector queries (by cascadia), inline and
computed styles (by douceur and package cssom), form control state,
event listeners with bubbling dispatch and default actions, and an
event loop for animation frames and timers.

Document and Window

A Document wraps the root node of an HTML parse tree. A Window is an
optional companion of a document, owning the event loop:

    doc, err := dom.ParseString(`<div id="box">hello</div>`)
    w := dom.NewWindow(doc, dom.WithClock(clock.NewMock()))
    w.SetTimeout(func() { … }, 300*time.Millisecond)
    w.Advance(300 * time.Millisecond) // runs the timer

The event loop never runs tasks concurrently with clients. Tasks are
executed either by an explicit call to RunDue (or Advance, for mock clocks),
or by Run, which blocks until its context is cancelled or the window is closed.
Mutating the DOM from other goroutines while Run is active is not
synchronized.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jbase.dom'.
func tracer() tracing.Trace {
	return tracing.Select("jbase.dom")
}
