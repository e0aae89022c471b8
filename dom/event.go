package dom

import (
	"time"

	"golang.org/x/net/html"
)

// Event is a DOM event. Events are created with NewEvent and dispatched
// by Document.DispatchEvent.
type Event struct {
	Type          string
	Target        *html.Node // node the event has been dispatched to
	CurrentTarget *html.Node // node whose listeners are currently invoked
	Bubbles       bool
	Cancelable    bool
	Key           string // key identifier for keyboard events
	Detail        int    // click count for mouse events
	TimeStamp     time.Time

	defaultPrevented bool
	stopped          bool
	stoppedNow       bool
}

// EventInit holds the optional properties of a new event.
type EventInit struct {
	Bubbles    bool
	Cancelable bool
	Key        string
	Detail     int
}

// NewEvent creates an event of a given type.
func NewEvent(typ string, init EventInit) *Event {
	return &Event{
		Type:       typ,
		Bubbles:    init.Bubbles,
		Cancelable: init.Cancelable,
		Key:        init.Key,
		Detail:     init.Detail,
	}
}

// PreventDefault cancels the default action of cancelable events.
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

// DefaultPrevented returns true if a listener has cancelled the event.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation stops bubbling after the listeners of the current target.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// StopImmediatePropagation stops propagation and skips the remaining
// listeners of the current target.
func (e *Event) StopImmediatePropagation() {
	e.stopped = true
	e.stoppedNow = true
}

// Listener wraps an event handler. Listeners are identified by pointer,
// therefore the same *Listener has to be used to remove it again.
type Listener struct {
	handler func(*Event)
}

// NewListener creates a listener for a handler function.
func NewListener(handler func(*Event)) *Listener {
	return &Listener{handler: handler}
}

// HandleEvent calls the handler of the listener.
func (l *Listener) HandleEvent(e *Event) {
	if l != nil && l.handler != nil {
		l.handler(e)
	}
}

// --- Registry --------------------------------------------------------------

type registry struct {
	m map[*html.Node]map[string][]*Listener
}

func newRegistry() *registry {
	return &registry{m: make(map[*html.Node]map[string][]*Listener)}
}

func (r *registry) add(n *html.Node, typ string, l *Listener) {
	byType := r.m[n]
	if byType == nil {
		byType = make(map[string][]*Listener)
		r.m[n] = byType
	}
	for _, x := range byType[typ] {
		if x == l { // no duplicates, as in browsers
			return
		}
	}
	byType[typ] = append(byType[typ], l)
}

func (r *registry) remove(n *html.Node, typ string, l *Listener) {
	byType := r.m[n]
	if byType == nil {
		return
	}
	ls := byType[typ]
	for i, x := range ls {
		if x == l {
			kept := make([]*Listener, 0, len(ls)-1)
			kept = append(kept, ls[:i]...)
			byType[typ] = append(kept, ls[i+1:]...)
			break
		}
	}
	if len(byType[typ]) == 0 {
		delete(byType, typ)
	}
	if len(byType) == 0 {
		delete(r.m, n)
	}
}

// snapshot returns the listeners currently registered; the slice is never
// modified by later add/remove operations.
func (r *registry) snapshot(n *html.Node, typ string) []*Listener {
	if byType := r.m[n]; byType != nil {
		return byType[typ]
	}
	return nil
}

func (r *registry) count(n *html.Node, typ string) int {
	return len(r.snapshot(n, typ))
}

func (r *registry) clear() {
	r.m = make(map[*html.Node]map[string][]*Listener)
}

// --- Document API ----------------------------------------------------------

// AddEventListener registers a listener for events of type typ at node n.
// Registering the same listener twice has no effect.
func (d *Document) AddEventListener(n *html.Node, typ string, l *Listener) {
	if n == nil || l == nil || d.closed {
		return
	}
	d.listeners.add(n, typ, l)
}

// RemoveEventListener removes a listener registered with AddEventListener.
func (d *Document) RemoveEventListener(n *html.Node, typ string, l *Listener) {
	if n == nil || l == nil {
		return
	}
	d.listeners.remove(n, typ, l)
}

// ListenerCount returns the number of listeners for an event type at a node.
func (d *Document) ListenerCount(n *html.Node, typ string) int {
	return d.listeners.count(n, typ)
}

// DispatchEvent dispatches an event at target. Listeners at target are
// invoked first, then, for bubbling events, the listeners of the ancestors
// up to the document node. Capturing is not modelled.
// DispatchEvent returns false if the event is cancelable and a listener
// called PreventDefault, true otherwise.
func (d *Document) DispatchEvent(target *html.Node, e *Event) bool {
	if target == nil || e == nil || d.closed {
		return true
	}
	e.Target = target
	if e.TimeStamp.IsZero() {
		e.TimeStamp = d.now()
	}
	tracer().P("event", e.Type).Debugf("dispatch to %s", Describe(target))
	for n := target; n != nil; n = n.Parent {
		e.CurrentTarget = n
		for _, l := range d.listeners.snapshot(n, e.Type) {
			l.HandleEvent(e)
			if e.stoppedNow {
				break
			}
		}
		if e.stopped || !e.Bubbles {
			break
		}
	}
	e.CurrentTarget = nil
	return !e.defaultPrevented
}

func (d *Document) now() time.Time {
	if d.window != nil {
		return d.window.clock.Now()
	}
	return time.Now()
}
