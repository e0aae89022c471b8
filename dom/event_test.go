package dom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDispatchBubbling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.dom")
	defer teardown()
	//
	doc := load(t)
	b := doc.QuerySelector("#c1 b")
	var path []string
	record := func(e *Event) { path = append(path, Describe(e.CurrentTarget)) }
	for _, sel := range []string{"#c1 b", "#c1 p", "#c1", "#main"} {
		doc.AddEventListener(doc.QuerySelector(sel), "ping", NewListener(record))
	}
	doc.AddEventListener(doc.Root(), "ping", NewListener(record))
	doc.DispatchEvent(b, NewEvent("ping", EventInit{Bubbles: true}))
	assert.Equal(t, []string{"b", "p", "div#c1.card", "main#main", "#document"}, path)
	//
	path = nil
	doc.DispatchEvent(b, NewEvent("ping", EventInit{}))
	assert.Equal(t, []string{"b"}, path, "non-bubbling event stays at target")
}

func TestStopPropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.dom")
	defer teardown()
	//
	doc := load(t)
	p, div := doc.QuerySelector("#c1 p"), byID(t, doc, "c1")
	calls := 0
	doc.AddEventListener(p, "x", NewListener(func(e *Event) { calls++; e.StopImmediatePropagation() }))
	doc.AddEventListener(p, "x", NewListener(func(e *Event) { calls++ }))
	doc.AddEventListener(div, "x", NewListener(func(e *Event) { calls++ }))
	doc.DispatchEvent(p, NewEvent("x", EventInit{Bubbles: true}))
	assert.Equal(t, 1, calls)
}

func TestListenerIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.dom")
	defer teardown()
	//
	doc := load(t)
	n := byID(t, doc, "c1")
	calls := 0
	var l *Listener
	l = NewListener(func(e *Event) {
		calls++
		doc.RemoveEventListener(n, "x", l) // removal during dispatch
	})
	doc.AddEventListener(n, "x", l)
	doc.AddEventListener(n, "x", l)
	assert.Equal(t, 1, doc.ListenerCount(n, "x"), "listeners are registered once")
	late := NewListener(func(e *Event) { calls += 10 })
	doc.AddEventListener(n, "x", NewListener(func(e *Event) { doc.AddEventListener(n, "x", late) }))
	doc.DispatchEvent(n, NewEvent("x", EventInit{}))
	assert.Equal(t, 1, calls, "listener added during dispatch must not run")
	doc.DispatchEvent(n, NewEvent("x", EventInit{}))
	assert.Equal(t, 11, calls)
}

func TestPreventDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.dom")
	defer teardown()
	//
	doc := load(t)
	n := byID(t, doc, "c1")
	doc.AddEventListener(n, "x", NewListener(func(e *Event) { e.PreventDefault() }))
	assert.True(t, doc.DispatchEvent(n, NewEvent("x", EventInit{})), "non-cancelable event")
	assert.False(t, doc.DispatchEvent(n, NewEvent("x", EventInit{Cancelable: true})))
}

func TestClickActivation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.dom")
	defer teardown()
	//
	doc := load(t)
	cb := byID(t, doc, "cb")
	var events []string
	for _, typ := range []string{"click", "input", "change"} {
		doc.AddEventListener(cb, typ, NewListener(func(e *Event) { events = append(events, e.Type) }))
	}
	doc.Click(cb)
	assert.True(t, Checked(cb))
	assert.Equal(t, []string{"click", "input", "change"}, events)
	//
	veto := NewListener(func(e *Event) { e.PreventDefault() })
	doc.AddEventListener(cb, "click", veto)
	doc.Click(cb)
	assert.True(t, Checked(cb), "canceled click must restore checkedness")
	doc.RemoveEventListener(cb, "click", veto)
	//
	r2 := byID(t, doc, "r2")
	doc.AddEventListener(r2, "click", veto)
	doc.Click(r2)
	assert.True(t, Checked(byID(t, doc, "r1")), "canceled radio click must restore group")
	assert.False(t, Checked(r2))
	doc.RemoveEventListener(r2, "click", veto)
	doc.Click(r2)
	assert.True(t, Checked(r2))
	assert.False(t, Checked(byID(t, doc, "r1")))
}

func TestClickSubmits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.dom")
	defer teardown()
	//
	doc := load(t)
	submits := 0
	doc.AddEventListener(byID(t, doc, "f"), "submit", NewListener(func(e *Event) { submits++ }))
	doc.Click(byID(t, doc, "go"))
	assert.Equal(t, 1, submits)
	SetDisabled(byID(t, doc, "go"), true)
	doc.Click(byID(t, doc, "go"))
	assert.Equal(t, 1, submits, "disabled buttons do not submit")
}

func TestFocus(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.dom")
	defer teardown()
	//
	doc := load(t)
	txt, ta := byID(t, doc, "t"), byID(t, doc, "ta")
	var events []string
	record := func(e *Event) { events = append(events, e.Type+":"+attr(e.Target, "id")) }
	for _, typ := range []string{"focus", "blur", "focusin", "focusout"} {
		doc.AddEventListener(doc.Root(), typ, NewListener(record))
		doc.AddEventListener(txt, typ, NewListener(record))
	}
	assert.Equal(t, doc.Body(), doc.ActiveElement())
	doc.Focus(txt)
	assert.Equal(t, txt, doc.ActiveElement())
	doc.Focus(ta)
	doc.Focus(byID(t, doc, "c1")) // not focusable
	assert.Equal(t, ta, doc.ActiveElement())
	doc.Blur(ta)
	assert.Equal(t, doc.Body(), doc.ActiveElement())
	assert.Equal(t, []string{
		"focus:t", "focusin:t", "focusin:t",
		"blur:t", "focusout:t", "focusout:t",
		"focusin:ta", "focusout:ta", // focus and blur do not bubble
	}, events)
}

func TestReadyState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase.dom")
	defer teardown()
	//
	doc := load(t)
	doc.readyState = Loading
	loaded := 0
	doc.AddEventListener(doc.Root(), "DOMContentLoaded", NewListener(func(e *Event) { loaded++ }))
	doc.SetReadyState(Interactive)
	doc.SetReadyState(Complete)
	assert.Equal(t, 1, loaded)
	doc.Close()
	assert.True(t, doc.IsClosed())
	assert.Equal(t, 0, doc.ListenerCount(doc.Root(), "DOMContentLoaded"))
}
