package jbase

import (
	"strings"

	"github.com/npillmayer/jbase/dom"
	"golang.org/x/net/html"
)

// On registers a listener for an event type at every element. Listeners
// are identified by pointer: use the same *dom.Listener to remove it with Off.
func (s *Selection) On(event string, l *dom.Listener) *Selection {
	if !s.hasDocument(event) {
		return s
	}
	return s.elements(func(n *html.Node) {
		s.doc.AddEventListener(n, event, l)
	})
}

// Off removes a listener registered with On.
func (s *Selection) Off(event string, l *dom.Listener) *Selection {
	if s.doc == nil {
		return s
	}
	return s.elements(func(n *html.Node) {
		s.doc.RemoveEventListener(n, event, l)
	})
}

// Trigger dispatches a synthetic, bubbling and cancelable event at every
// element. No default actions are performed.
func (s *Selection) Trigger(event string) *Selection {
	return s.dispatch(event, dom.EventInit{Bubbles: true, Cancelable: true})
}

func (s *Selection) dispatch(event string, init dom.EventInit) *Selection {
	if !s.hasDocument(event) {
		return s
	}
	return s.elements(func(n *html.Node) {
		s.doc.DispatchEvent(n, dom.NewEvent(event, init))
	})
}

func (s *Selection) hasDocument(event string) bool {
	if s.doc == nil {
		if s.Len() > 0 {
			tracer().P("event", event).Debugf("selection has no document, no event handling")
		}
		return false
	}
	return true
}

// onOrDo registers listener l, or, without a listener, calls do for
// every element.
func (s *Selection) onOrDo(event string, l []*dom.Listener, do func(d *dom.Document, n *html.Node)) *Selection {
	if len(l) > 0 {
		for _, x := range l {
			s.On(event, x)
		}
		return s
	}
	if !s.hasDocument(event) {
		return s
	}
	return s.elements(func(n *html.Node) {
		do(s.doc, n)
	})
}

// Ready calls f as soon as the document of the selection has been parsed:
// immediately, if it is no longer loading, else on "DOMContentLoaded".
func (s *Selection) Ready(f func()) *Selection {
	if s.doc == nil || s.doc.ReadyState() != dom.Loading {
		f()
		return s
	}
	var l *dom.Listener
	l = dom.NewListener(func(*dom.Event) {
		s.doc.RemoveEventListener(s.doc.Root(), "DOMContentLoaded", l)
		f()
	})
	s.doc.AddEventListener(s.doc.Root(), "DOMContentLoaded", l)
	return s
}

// --- Mouse -----------------------------------------------------------------

// Click registers click listeners. Without a listener, Click clicks every
// element, including its default action: checkboxes and radio buttons
// toggle, submit buttons submit their form.
func (s *Selection) Click(l ...*dom.Listener) *Selection {
	return s.onOrDo("click", l, (*dom.Document).Click)
}

// Dblclick registers dblclick listeners. Without a listener, a "dblclick"
// event is dispatched at every element.
func (s *Selection) Dblclick(l ...*dom.Listener) *Selection {
	return s.onOrDo("dblclick", l, func(d *dom.Document, n *html.Node) {
		d.DispatchEvent(n, dom.NewEvent("dblclick", dom.EventInit{Bubbles: true, Cancelable: true, Detail: 2}))
	})
}

// Mousemove registers a listener for "mousemove".
func (s *Selection) Mousemove(l *dom.Listener) *Selection { return s.On("mousemove", l) }

// Mouseleave registers a listener for "mouseleave".
func (s *Selection) Mouseleave(l *dom.Listener) *Selection { return s.On("mouseleave", l) }

// Mouseenter registers a listener for "mouseenter".
func (s *Selection) Mouseenter(l *dom.Listener) *Selection { return s.On("mouseenter", l) }

// Mousedown registers a listener for "mousedown".
func (s *Selection) Mousedown(l *dom.Listener) *Selection { return s.On("mousedown", l) }

// Mouseup registers a listener for "mouseup".
func (s *Selection) Mouseup(l *dom.Listener) *Selection { return s.On("mouseup", l) }

// Mouseout registers a listener for "mouseout".
func (s *Selection) Mouseout(l *dom.Listener) *Selection { return s.On("mouseout", l) }

// Mouseover registers a listener for "mouseover".
func (s *Selection) Mouseover(l *dom.Listener) *Selection { return s.On("mouseover", l) }

// --- Keyboard --------------------------------------------------------------

// Keydown registers a listener for "keydown".
func (s *Selection) Keydown(l *dom.Listener) *Selection { return s.On("keydown", l) }

// Keyup registers a listener for "keyup".
func (s *Selection) Keyup(l *dom.Listener) *Selection { return s.On("keyup", l) }

// Keypress registers a listener for "keypress".
func (s *Selection) Keypress(l *dom.Listener) *Selection { return s.On("keypress", l) }

// PressedKey calls a listener for "keydown" events of a single key. Keys
// are compared case-insensitively. The listener is wrapped into a key
// filter, i.e. it cannot be removed with Off.
func (s *Selection) PressedKey(key string, l *dom.Listener) *Selection {
	return s.On("keydown", dom.NewListener(func(e *dom.Event) {
		if strings.EqualFold(e.Key, key) {
			l.HandleEvent(e)
		}
	}))
}

// --- Forms -----------------------------------------------------------------

// Submit registers a listener for "submit".
func (s *Selection) Submit(l *dom.Listener) *Selection { return s.On("submit", l) }

// Change registers a listener for "change".
func (s *Selection) Change(l *dom.Listener) *Selection { return s.On("change", l) }

// Input registers a listener for "input".
func (s *Selection) Input(l *dom.Listener) *Selection { return s.On("input", l) }

// Focus registers focus listeners. Without a listener, Focus moves the
// focus to the elements, one after the other.
func (s *Selection) Focus(l ...*dom.Listener) *Selection {
	return s.onOrDo("focus", l, (*dom.Document).Focus)
}

// Blur registers blur listeners. Without a listener, Blur removes the
// focus from the elements.
func (s *Selection) Blur(l ...*dom.Listener) *Selection {
	return s.onOrDo("blur", l, (*dom.Document).Blur)
}

// --- Touch -----------------------------------------------------------------

// Touchstart registers a listener for "touchstart".
func (s *Selection) Touchstart(l *dom.Listener) *Selection { return s.On("touchstart", l) }

// Touchend registers a listener for "touchend".
func (s *Selection) Touchend(l *dom.Listener) *Selection { return s.On("touchend", l) }

// Touchmove registers a listener for "touchmove".
func (s *Selection) Touchmove(l *dom.Listener) *Selection { return s.On("touchmove", l) }

// Touchcancel registers a listener for "touchcancel".
func (s *Selection) Touchcancel(l *dom.Listener) *Selection { return s.On("touchcancel", l) }
