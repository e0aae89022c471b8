package jbase

import (
	"testing"

	"github.com/npillmayer/jbase/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func recorder(log *[]string, prefix string) *dom.Listener {
	return dom.NewListener(func(e *dom.Event) {
		*log = append(*log, prefix+":"+e.Type)
	})
}

func TestOnOffTrigger(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase")
	defer teardown()
	//
	env, _ := setup(t)
	var log []string
	l := recorder(&log, "li")
	up := recorder(&log, "ul")
	env.Select("li").On("ping", l)
	env.Select("#list").On("ping", up)
	env.Select("#i1, #i3").Trigger("ping")
	assert.Equal(t, []string{"li:ping", "ul:ping", "li:ping", "ul:ping"}, log, "events bubble")
	//
	log = nil
	env.Select("li").Off("ping", l)
	env.Select("#i2").Trigger("ping")
	assert.Equal(t, []string{"ul:ping"}, log)
	env.Select("li").Off("ping", l) // no-op
}

func TestClickAndShortcuts(t *testing.T) {
	env, _ := setup(t)
	var log []string
	cb := env.Select("#cb")
	cb.Click(recorder(&log, "cb")).Change(recorder(&log, "cb"))
	cb.Click()
	assert.True(t, cb.Checked(), "click toggles checkboxes")
	assert.Equal(t, []string{"cb:click", "cb:change"}, log)
	//
	log = nil
	prevent := dom.NewListener(func(e *dom.Event) { e.PreventDefault() })
	cb.On("click", prevent)
	cb.Click()
	assert.True(t, cb.Checked(), "canceled click restores the state")
	cb.Off("click", prevent)
	//
	log = nil
	env.Select("#list").Dblclick(dom.NewListener(func(e *dom.Event) {
		log = append(log, e.Type)
		assert.Equal(t, 2, e.Detail)
	}))
	env.Select("#i2").Dblclick()
	assert.Equal(t, []string{"dblclick"}, log)
	//
	log = nil
	m := recorder(&log, "m")
	env.Select("#box").Mouseenter(m).Mouseleave(m).Mousemove(m).Mousedown(m).
		Mouseup(m).Mouseover(m).Mouseout(m).Touchstart(m).Touchend(m).Touchmove(m).Touchcancel(m)
	for _, typ := range []string{"mouseenter", "mouseleave", "mousemove", "mousedown", "mouseup",
		"mouseover", "mouseout", "touchstart", "touchend", "touchmove", "touchcancel"} {
		env.Select("#box").Trigger(typ)
	}
	assert.Len(t, log, 11)
}

func TestKeyboard(t *testing.T) {
	env, _ := setup(t)
	var log []string
	name := env.Select("#name")
	name.Keydown(recorder(&log, "down")).Keyup(recorder(&log, "up")).Keypress(recorder(&log, "press"))
	name.PressedKey("enter", dom.NewListener(func(e *dom.Event) { log = append(log, "ENTER") }))
	press := func(typ, key string) {
		env.Document.DispatchEvent(name.Get(0), dom.NewEvent(typ, dom.EventInit{Bubbles: true, Key: key}))
	}
	press("keydown", "a")
	press("keydown", "Enter")
	press("keyup", "Enter")
	press("keypress", "x")
	assert.Equal(t, []string{"down:keydown", "down:keydown", "ENTER", "up:keyup", "press:keypress"}, log)
}

func TestFormEvents(t *testing.T) {
	env, _ := setup(t)
	var log []string
	name := env.Select("#name")
	name.Focus(recorder(&log, "n")).Blur(recorder(&log, "n")).Input(recorder(&log, "n"))
	env.Select("#f").Submit(dom.NewListener(func(e *dom.Event) {
		log = append(log, "submit")
		e.PreventDefault()
	}))
	name.Focus()
	assert.Equal(t, name.Get(0), env.Document.ActiveElement())
	name.Blur()
	assert.NotEqual(t, name.Get(0), env.Document.ActiveElement())
	assert.Equal(t, []string{"n:focus", "n:blur"}, log)
	//
	log = nil
	env.Select("#go").SetDisabled(false).Click()
	assert.Equal(t, []string{"submit"}, log, "submit buttons submit their form")
	name.Trigger("input")
	assert.Equal(t, []string{"submit", "n:input"}, log)
}

func TestReady(t *testing.T) {
	env, _ := setup(t)
	called := 0
	env.Select("body").Ready(func() { called++ })
	assert.Equal(t, 1, called, "document is complete, run at once")
	//
	env.Document.SetReadyState(dom.Loading)
	New(env.Document).Ready(func() { called++ })
	assert.Equal(t, 1, called)
	env.Document.SetReadyState(dom.Interactive)
	assert.Equal(t, 2, called)
	env.Document.SetReadyState(dom.Complete)
	assert.Equal(t, 2, called, "ready listeners run once")
	New(nil).Ready(func() { called++ })
	assert.Equal(t, 3, called)
}
