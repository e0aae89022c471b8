package jbase

import (
	"testing"
	"time"

	"github.com/npillmayer/jbase/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func inlineOf(s *Selection, prop string) string {
	return dom.InlineStyle(s.Get(0)).Get(prop)
}

func TestFade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jbase")
	defer teardown()
	//
	env, _ := setup(t)
	box := env.Select("#box")
	assert.Equal(t, "none", box.Css("display"))
	box.FadeIn(FadeOptions{Duration: 200 * time.Millisecond})
	assert.Equal(t, "0", inlineOf(box, "opacity"), "start value before the next frame")
	assert.Equal(t, "block", inlineOf(box, "display"))
	assert.Equal(t, "opacity 200ms ease-in-out", inlineOf(box, "transition"))
	env.Window.Advance(0)
	assert.Equal(t, "1", inlineOf(box, "opacity"))
	env.Window.Advance(200 * time.Millisecond)
	assert.Equal(t, "", inlineOf(box, "transition"))
	assert.Equal(t, "block", box.Css("display"))
	//
	box.FadeToggle()
	assert.Equal(t, "opacity 300ms ease-in-out", inlineOf(box, "transition"), "default duration")
	env.Window.Advance(299 * time.Millisecond)
	assert.Equal(t, "block", inlineOf(box, "display"))
	env.Window.Advance(time.Millisecond)
	assert.Equal(t, "none", inlineOf(box, "display"))
	assert.Equal(t, "0", inlineOf(box, "opacity"))
	//
	box.FadeToggle(FadeOptions{DisplayType: "flex"})
	assert.Equal(t, "flex", inlineOf(box, "display"))
}

func TestSlideHorizontal(t *testing.T) {
	env, _ := setup(t)
	s1 := env.Select("#s1")
	s1.SlideOut(SlideOptions{Direction: Right})
	assert.Equal(t, "transform", inlineOf(s1, "will-change"))
	assert.Equal(t, "transform 300ms cubic-bezier(0.4, 0.0, 0.2, 1)", inlineOf(s1, "transition"))
	state, _ := s1.Attr("data-slide-state")
	assert.Equal(t, "closed", state)
	env.Window.Advance(0)
	assert.Equal(t, "translateX(100%)", inlineOf(s1, "transform"))
	//
	s1.SlideToggle()
	env.Window.Advance(0)
	assert.Equal(t, "translateX(-100%)", inlineOf(s1, "transform"), "visible elements slide out, to the left by default")
	//
	box := env.Select("#box")
	box.SlideToggle()
	env.Window.Advance(0)
	assert.Equal(t, "translateX(0%)", inlineOf(box, "transform"), "hidden elements slide in")
	state, _ = box.Attr("data-slide-state")
	assert.Equal(t, "open", state)
}

func TestSlideVertical(t *testing.T) {
	env, _ := setup(t)
	box := env.Select("#box")
	box.SlideDown(SlideVerticalOptions{Duration: 100 * time.Millisecond})
	assert.Equal(t, "0px", inlineOf(box, "height"))
	assert.Equal(t, "hidden", inlineOf(box, "overflow"))
	env.Window.Advance(0)
	assert.Equal(t, "80px", inlineOf(box, "height"), "height of .panel")
	env.Window.Advance(100 * time.Millisecond)
	assert.Equal(t, "auto", inlineOf(box, "height"))
	assert.Equal(t, "visible", inlineOf(box, "overflow"))
	assert.Equal(t, "", inlineOf(box, "transition"))
	//
	before := dom.InlineStyle(box.Get(0)).String()
	box.SlideDown()
	assert.Equal(t, before, dom.InlineStyle(box.Get(0)).String(), "visible elements are left alone")
	//
	box.SlideToggleBox()
	assert.Equal(t, "hidden", inlineOf(box, "overflow"))
	env.Window.Advance(0)
	assert.Equal(t, "0px", inlineOf(box, "height"))
	env.Window.Advance(300 * time.Millisecond)
	assert.Equal(t, "none", inlineOf(box, "display"))
	assert.Equal(t, "", inlineOf(box, "height"))
	assert.True(t, box.computed(box.Get(0)).IsHidden())
}

func TestCustomMetrics(t *testing.T) {
	metrics := dom.MetricsFunc(func(*html.Node) float64 { return 42 })
	env, err := ParseHTML(page, dom.WithMetrics(metrics))
	if err != nil {
		t.Fatal(err)
	}
	defer env.Close()
	box := env.Select("#box").SlideDown()
	env.Window.RunDue()
	assert.Equal(t, "42px", inlineOf(box, "height"))
}

func TestEffectsWithoutWindow(t *testing.T) {
	frag := New(`<div style="display:none">x</div>`)
	frag.FadeIn().SlideDown()
	assert.Equal(t, "none", inlineOf(frag, "display"), "no window, no effect")
}

func TestTogglesReadInlineDisplay(t *testing.T) {
	env, _ := setup(t)
	frag := `<div id="inl" style="display:none"><p style="height: 30px">x</p></div>`
	env.Select("body").Append(frag)
	inl := env.Select("#inl")
	assert.Equal(t, "none", inl.Css("display"), "unterminated inline declaration")
	inl.FadeToggle()
	assert.Equal(t, "block", inlineOf(inl, "display"), "hidden elements fade in")
	assert.Equal(t, "0", inlineOf(inl, "opacity"))
	env.Window.Advance(300 * time.Millisecond)
	assert.Equal(t, "1", inlineOf(inl, "opacity"))
	//
	inl.SetCss("display", "none")
	inl.SlideToggleBox()
	assert.Equal(t, "block", inlineOf(inl, "display"), "hidden elements slide down")
	assert.Equal(t, "hidden", inlineOf(inl, "overflow"))
}
