package data

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/time/rate"
)

type timing struct {
	clock clock.Clock
}

// Option configures Throttle and Debounce.
type Option func(*timing)

// WithClock sets the clock to measure time with. Tests use a mock clock.
func WithClock(c clock.Clock) Option {
	return func(t *timing) {
		if c != nil {
			t.clock = c
		}
	}
}

func configure(opts []Option) timing {
	t := timing{clock: clock.New()}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Throttle returns a function which calls fn at most once within limit.
// The first call is executed at once; calls arriving within limit after an
// executed call are dropped.
//
// The returned function is safe for concurrent use.
func Throttle[A any](fn func(A), limit time.Duration, opts ...Option) func(A) {
	t := configure(opts)
	if limit <= 0 {
		return fn
	}
	lim := rate.NewLimiter(rate.Every(limit), 1)
	return func(arg A) {
		if !lim.AllowN(t.clock.Now(), 1) {
			return
		}
		fn(arg)
	}
}

// Debounce returns a function which delays calling fn until delay has
// passed without another call. Every call restarts the delay; fn is called
// with the argument of the latest call.
//
// The returned function is safe for concurrent use. fn is called from a
// timer goroutine.
func Debounce[A any](fn func(A), delay time.Duration, opts ...Option) func(A) {
	t := configure(opts)
	var mu sync.Mutex
	var timer *clock.Timer
	var last A
	return func(arg A) {
		mu.Lock()
		defer mu.Unlock()
		last = arg
		if timer != nil {
			timer.Stop()
		}
		timer = t.clock.AfterFunc(delay, func() {
			mu.Lock()
			a := last
			mu.Unlock()
			fn(a)
		})
	}
}
