package watermark

import (
	"sync"
	"time"
)

// DefaultResizeWait is the minimum interval between resize repaints.
const DefaultResizeWait = 100 * time.Millisecond

// Throttled is a trailing-edge rate limiter around a function. Calls made
// while a run is pending are coalesced into that run; none are lost.
type Throttled struct {
	fn   func()
	wait time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// Throttle wraps fn so that it runs at most once per wait, at the end of
// the window. A non-positive wait runs fn synchronously on every call.
func Throttle(fn func(), wait time.Duration) *Throttled {
	return &Throttled{fn: fn, wait: wait}
}

// Call requests a run of the wrapped function.
func (t *Throttled) Call() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	if t.wait <= 0 {
		t.mu.Unlock()
		t.fn()
		return
	}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.wait, t.fire)
	}
	t.mu.Unlock()
}

func (t *Throttled) fire() {
	t.mu.Lock()
	t.timer = nil
	stopped := t.stopped
	t.mu.Unlock()

	if !stopped {
		t.fn()
	}
}

// Pending reports whether a trailing run is scheduled.
func (t *Throttled) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}

// Stop cancels any pending run and ignores later calls.
func (t *Throttled) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
