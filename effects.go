package jbase

import (
	"fmt"
	"time"

	"github.com/imdario/mergo"
	"github.com/npillmayer/jbase/dom"
	"golang.org/x/net/html"
)

// Effects set a CSS transition, change the animated property at the next
// animation frame of the window, and clean up with a timer after the
// duration of the transition. Effects do not wait for the animation to end,
// nor do they cancel effects still running on the same elements.
// Selections of documents without a window are left unchanged.

// DefaultDuration is the duration of effects if not set in the options.
const DefaultDuration = 300 * time.Millisecond

// FadeOptions configure FadeIn, FadeOut and FadeToggle.
type FadeOptions struct {
	Duration    time.Duration
	DisplayType string // display value of faded-in elements
}

// Direction is the direction to which horizontal slides move elements out.
type Direction string

// Slide directions
const (
	Left  Direction = "left"
	Right Direction = "right"
)

// SlideOptions configure SlideIn, SlideOut and SlideToggle.
type SlideOptions struct {
	Duration  time.Duration
	Direction Direction
}

// SlideVerticalOptions configure SlideDown, SlideUp and SlideToggleBox.
type SlideVerticalOptions struct {
	Duration    time.Duration
	DisplayType string
}

var (
	fadeDefaults          = FadeOptions{Duration: DefaultDuration, DisplayType: "block"}
	slideDefaults         = SlideOptions{Duration: DefaultDuration, Direction: Left}
	slideVerticalDefaults = SlideVerticalOptions{Duration: DefaultDuration, DisplayType: "block"}
)

// withDefaults fills the zero fields of opts from defaults.
func withDefaults(opts interface{}, defaults interface{}) {
	if err := mergo.Merge(opts, defaults); err != nil {
		tracer().Errorf("cannot apply effect defaults: %v", err)
	}
}

func fadeOptions(opts []FadeOptions) FadeOptions {
	var o FadeOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	withDefaults(&o, fadeDefaults)
	return o
}

func slideOptions(opts []SlideOptions) SlideOptions {
	var o SlideOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	withDefaults(&o, slideDefaults)
	return o
}

func slideVerticalOptions(opts []SlideVerticalOptions) SlideVerticalOptions {
	var o SlideVerticalOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	withDefaults(&o, slideVerticalDefaults)
	return o
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}

// animate calls start for every element, if the selection has a window.
func (s *Selection) animate(name string, start func(w *dom.Window, n *html.Node)) *Selection {
	w := s.window()
	if w == nil {
		if s.Len() > 0 {
			tracer().P("effect", name).Debugf("no window, effect skipped")
		}
		return s
	}
	return s.elements(func(n *html.Node) {
		start(w, n)
	})
}

// ifHidden calls in for elements with computed display "none", out for others.
func (s *Selection) ifHidden(in, out func(single *Selection)) *Selection {
	return s.elements(func(n *html.Node) {
		single := s.derive([]*html.Node{n})
		if s.computed(n).IsHidden() {
			in(single)
		} else {
			out(single)
		}
	})
}

// --- Fade ------------------------------------------------------------------

// FadeIn shows elements by a transition of their opacity from 0 to 1.
func (s *Selection) FadeIn(opts ...FadeOptions) *Selection {
	o := fadeOptions(opts)
	return s.animate("fadeIn", func(w *dom.Window, n *html.Node) {
		inline(n, "opacity", "0", "display", o.DisplayType,
			"transition", "opacity "+ms(o.Duration)+" ease-in-out")
		w.RequestAnimationFrame(func(time.Time) {
			inline(n, "opacity", "1")
		})
		w.SetTimeout(func() {
			inline(n, "transition", "")
		}, o.Duration)
	})
}

// FadeOut hides elements by a transition of their opacity from 1 to 0,
// finally setting display to "none".
func (s *Selection) FadeOut(opts ...FadeOptions) *Selection {
	o := fadeOptions(opts)
	return s.animate("fadeOut", func(w *dom.Window, n *html.Node) {
		inline(n, "opacity", "1", "transition", "opacity "+ms(o.Duration)+" ease-in-out")
		w.RequestAnimationFrame(func(time.Time) {
			inline(n, "opacity", "0")
		})
		w.SetTimeout(func() {
			inline(n, "display", "none", "transition", "")
		}, o.Duration)
	})
}

// FadeToggle fades in hidden elements and fades out the others.
func (s *Selection) FadeToggle(opts ...FadeOptions) *Selection {
	return s.ifHidden(
		func(single *Selection) { single.FadeIn(opts...) },
		func(single *Selection) { single.FadeOut(opts...) },
	)
}

// --- Horizontal slides -----------------------------------------------------

const slideStateAttr = "data-slide-state"

func slideTransition(d time.Duration) string {
	return "transform " + ms(d) + " cubic-bezier(0.4, 0.0, 0.2, 1)"
}

// SlideIn moves elements into view horizontally.
func (s *Selection) SlideIn(opts ...SlideOptions) *Selection {
	o := slideOptions(opts)
	return s.animate("slideIn", func(w *dom.Window, n *html.Node) {
		inline(n, "will-change", "transform", "transition", slideTransition(o.Duration))
		w.RequestAnimationFrame(func(time.Time) {
			inline(n, "transform", "translateX(0%)")
		})
		dom.SetAttribute(n, slideStateAttr, "open")
	})
}

// SlideOut moves elements out of view, to the left or to the right.
func (s *Selection) SlideOut(opts ...SlideOptions) *Selection {
	o := slideOptions(opts)
	translate := "translateX(-100%)"
	if o.Direction == Right {
		translate = "translateX(100%)"
	}
	return s.animate("slideOut", func(w *dom.Window, n *html.Node) {
		inline(n, "will-change", "transform", "transition", slideTransition(o.Duration))
		w.RequestAnimationFrame(func(time.Time) {
			inline(n, "transform", translate)
		})
		dom.SetAttribute(n, slideStateAttr, "closed")
	})
}

// SlideToggle slides out elements which are open (by their slide state or
// their transform) or visible, and slides in the others.
func (s *Selection) SlideToggle(opts ...SlideOptions) *Selection {
	return s.elements(func(n *html.Node) {
		single := s.derive([]*html.Node{n})
		state, _ := dom.GetAttribute(n, slideStateAttr)
		if state == "open" || dom.InlineStyle(n).Get("transform") == "translateX(0%)" ||
			!s.computed(n).IsHidden() {
			single.SlideOut(opts...)
		} else {
			single.SlideIn(opts...)
		}
	})
}

// --- Vertical slides -------------------------------------------------------

// SlideDown reveals hidden elements by a transition of their height from 0
// to their content height. Visible elements are left alone.
func (s *Selection) SlideDown(opts ...SlideVerticalOptions) *Selection {
	o := slideVerticalOptions(opts)
	return s.animate("slideDown", func(w *dom.Window, n *html.Node) {
		if !s.computed(n).IsHidden() {
			return
		}
		inline(n, "display", o.DisplayType)
		height := w.Metrics().ScrollHeight(n)
		inline(n, "height", "0px", "overflow", "hidden",
			"transition", "height "+ms(o.Duration)+" ease-in-out")
		w.RequestAnimationFrame(func(time.Time) {
			inline(n, "height", px(height))
		})
		w.SetTimeout(func() {
			inline(n, "height", "auto", "overflow", "visible", "transition", "")
		}, o.Duration)
	})
}

// SlideUp hides elements by a transition of their height to 0, finally
// setting display to "none".
func (s *Selection) SlideUp(opts ...SlideVerticalOptions) *Selection {
	o := slideVerticalOptions(opts)
	return s.animate("slideUp", func(w *dom.Window, n *html.Node) {
		height := w.Metrics().ScrollHeight(n)
		inline(n, "height", px(height), "overflow", "hidden",
			"transition", "height "+ms(o.Duration)+" ease-in-out")
		w.RequestAnimationFrame(func(time.Time) {
			inline(n, "height", "0px")
		})
		w.SetTimeout(func() {
			inline(n, "display", "none", "height", "", "overflow", "", "transition", "")
		}, o.Duration)
	})
}

// SlideToggleBox slides down hidden elements and slides up the others.
func (s *Selection) SlideToggleBox(opts ...SlideVerticalOptions) *Selection {
	return s.ifHidden(
		func(single *Selection) { single.SlideDown(opts...) },
		func(single *Selection) { single.SlideUp(opts...) },
	)
}

func px(x float64) string {
	return fmt.Sprintf("%gpx", x)
}
