package dom

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/npillmayer/jbase/dom/style/css"
	"golang.org/x/net/html"
)

// Metrics provides layout information. As this DOM does no layout, hosts
// may plug in their own measurements.
type Metrics interface {
	ScrollHeight(n *html.Node) float64 // height of the content of n, in px
}

// MetricsFunc is an adapter to use a function as Metrics.
type MetricsFunc func(n *html.Node) float64

// ScrollHeight calls f(n).
func (f MetricsFunc) ScrollHeight(n *html.Node) float64 {
	return f(n)
}

// Window is the companion of a document which owns the event loop for
// animation frames and timers.
type Window struct {
	doc     *Document
	clock   clock.Clock
	metrics Metrics

	mu     sync.Mutex
	queue  taskQueue
	tasks  map[TaskID]*task
	seq    uint64
	wake   chan struct{}
	done   chan struct{}
	closed bool

	globals map[string]interface{}
}

// WindowOption configures a window.
type WindowOption func(*Window)

// WithClock sets the clock of the event loop. Tests will use a mock clock
// (see github.com/benbjohnson/clock).
func WithClock(c clock.Clock) WindowOption {
	return func(w *Window) {
		if c != nil {
			w.clock = c
		}
	}
}

// WithMetrics sets the layout metrics of a window.
func WithMetrics(m Metrics) WindowOption {
	return func(w *Window) {
		if m != nil {
			w.metrics = m
		}
	}
}

// NewWindow creates a window for a document. A document has at most one
// window; creating a second window replaces (and closes) the first one.
func NewWindow(doc *Document, opts ...WindowOption) *Window {
	w := &Window{
		doc:     doc,
		clock:   clock.New(),
		tasks:   make(map[TaskID]*task),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		globals: make(map[string]interface{}),
	}
	w.metrics = declaredMetrics{doc: doc}
	for _, opt := range opts {
		opt(w)
	}
	if doc.window != nil {
		doc.window.Close()
	}
	doc.window = w
	return w
}

// Doc returns the document of the window (interface Host).
func (w *Window) Doc() *Document {
	return w.doc
}

// Clock returns the clock of the event loop.
func (w *Window) Clock() clock.Clock {
	return w.clock
}

// Metrics returns the layout metrics of the window.
func (w *Window) Metrics() Metrics {
	return w.metrics
}

// RequestAnimationFrame schedules a callback for the next animation frame,
// i.e. the next run of the event loop. The callback receives the frame time.
func (w *Window) RequestAnimationFrame(callback func(time.Time)) TaskID {
	return w.schedule(0, true, callback)
}

// CancelAnimationFrame cancels a callback scheduled with RequestAnimationFrame.
func (w *Window) CancelAnimationFrame(id TaskID) {
	w.cancel(id)
}

// SetTimeout schedules a function to run after a delay.
func (w *Window) SetTimeout(f func(), delay time.Duration) TaskID {
	return w.schedule(delay, false, func(time.Time) { f() })
}

// ClearTimeout cancels a timer scheduled with SetTimeout.
func (w *Window) ClearTimeout(id TaskID) {
	w.cancel(id)
}

// Advance moves a mock clock forward by d, running every task on the way
// at its due time. For other clocks, Advance just runs the due tasks.
// Advance returns the number of tasks run.
func (w *Window) Advance(d time.Duration) int {
	mock, ok := w.clock.(*clock.Mock)
	if !ok {
		tracer().Debugf("clock is not a mock clock, cannot advance")
		return w.RunDue()
	}
	target := mock.Now().Add(d)
	count := w.RunDue()
	for i := 0; i < maxAdvanceSteps; i++ {
		due, ok := w.next()
		if !ok || due.After(target) {
			break
		}
		if step := due.Sub(mock.Now()); step > 0 {
			mock.Add(step)
		}
		count += w.RunDue()
	}
	if rest := target.Sub(mock.Now()); rest > 0 {
		mock.Add(rest)
	}
	return count + w.RunDue()
}

// maxAdvanceSteps limits the number of event loop turns of a single call to
// Advance; animation frame callbacks requesting the next frame would
// otherwise never let time move on.
const maxAdvanceSteps = 10000

// Run runs the event loop until ctx is done or the window is closed.
// It returns the context's error, or nil after Close.
func (w *Window) Run(ctx context.Context) error {
	for {
		w.RunDue()
		var timer *clock.Timer
		var tick <-chan time.Time
		if due, ok := w.next(); ok {
			timer = w.clock.Timer(due.Sub(w.clock.Now()))
			tick = timer.C
		}
		select {
		case <-ctx.Done():
			stop(timer)
			return ctx.Err()
		case <-w.done:
			stop(timer)
			return nil
		case <-w.wake:
		case <-tick:
		}
		stop(timer)
	}
}

func stop(t *clock.Timer) {
	if t != nil {
		t.Stop()
	}
}

// SetGlobal binds a value to a name in the global scope of the window.
func (w *Window) SetGlobal(name string, value interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.globals[name] = value
}

// Global looks up a name in the global scope of the window.
func (w *Window) Global(name string) (interface{}, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	v, ok := w.globals[name]
	return v, ok
}

// Globals returns the names bound in the global scope, sorted.
func (w *Window) Globals() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	names := make([]string, 0, len(w.globals))
	for name := range w.globals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close stops the event loop and drops all pending tasks.
func (w *Window) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	close(w.done)
	for _, t := range w.queue {
		t.canceled = true
	}
	w.queue = nil
	w.tasks = make(map[TaskID]*task)
}

// IsClosed returns true after Close.
func (w *Window) IsClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// --- Default metrics -------------------------------------------------------

// declaredMetrics derives heights from declared styles: the computed "height"
// or "min-height", if given in absolute units, or else the sum of the scroll
// heights of the child elements.
type declaredMetrics struct {
	doc *Document
}

func (m declaredMetrics) ScrollHeight(n *html.Node) float64 {
	if !IsElement(n) {
		return 0
	}
	cs := m.doc.ComputedStyle(n)
	for _, key := range []string{"height", "min-height"} {
		d, err := css.ParseDimen(cs.Get(key))
		if err != nil {
			continue
		}
		if px, ok := d.Pixels(); ok && px > 0 {
			return px
		}
	}
	var h float64
	for _, ch := range Children(n) {
		if !m.doc.ComputedStyle(ch).IsHidden() {
			h += m.ScrollHeight(ch)
		}
	}
	return h
}
