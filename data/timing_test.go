package data

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestThrottle(t *testing.T) {
	mock := clock.NewMock()
	var calls []int
	f := Throttle(func(i int) { calls = append(calls, i) }, 100*time.Millisecond, WithClock(mock))
	f(1)
	f(2)
	mock.Add(50 * time.Millisecond)
	f(3)
	mock.Add(50 * time.Millisecond)
	f(4)
	f(5)
	mock.Add(time.Second)
	f(6)
	assert.Equal(t, []int{1, 4, 6}, calls)
}

func TestDebounce(t *testing.T) {
	defer goleak.VerifyNone(t)
	//
	mock := clock.NewMock()
	got := make(chan string, 4)
	f := Debounce(func(s string) { got <- s }, 100*time.Millisecond, WithClock(mock))
	f("a")
	mock.Add(60 * time.Millisecond)
	f("b")
	mock.Add(60 * time.Millisecond)
	f("c")
	select {
	case s := <-got:
		t.Fatalf("debounced function called early with %q", s)
	default:
	}
	mock.Add(100 * time.Millisecond)
	select {
	case s := <-got:
		assert.Equal(t, "c", s, "latest argument wins")
	case <-time.After(time.Second):
		t.Fatalf("debounced function not called")
	}
	assert.Len(t, got, 0)
}
