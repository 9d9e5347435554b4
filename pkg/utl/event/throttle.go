package event

import (
	"sync"
	"time"
)

const DefaultWindow = 50 * time.Millisecond

// Throttler runs a callback once calls have stopped arriving for a window.
// Each call restarts the window, and only the arguments of the last call
// reach the callback.
type Throttler[T any] struct {
	mu       sync.Mutex
	timer    *time.Timer
	window   time.Duration
	callback func(T)
}

// NewThrottler returns a Throttler for callback. A negative window is treated as zero.
func NewThrottler[T any](callback func(T), window time.Duration) *Throttler[T] {
	return &Throttler[T]{callback: callback, window: max(window, 0)}
}

// Throttle is NewThrottler(callback, window).Call.
func Throttle[T any](callback func(T), window time.Duration) func(T) {
	return NewThrottler(callback, window).Call
}

func (t *Throttler[T]) Call(arg T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}

	var fired *time.Timer
	fired = time.AfterFunc(t.window, func() {
		t.mu.Lock()
		if t.timer == fired {
			t.timer = nil
		}
		t.mu.Unlock()

		if t.callback != nil {
			t.callback(arg)
		}
	})
	t.timer = fired
}

// Stop drops a pending call. It reports whether one was pending.
func (t *Throttler[T]) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer == nil {
		return false
	}
	stopped := t.timer.Stop()
	t.timer = nil
	return stopped
}
