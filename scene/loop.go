package scene

import (
	"context"
	"sync"
)

// Loop runs posted tasks one at a time, in the order they were posted.
type Loop struct {
	mu     sync.Mutex
	tasks  []func()
	wakeup chan struct{}
}

// NewLoop returns an empty loop.
func NewLoop() *Loop {
	return &Loop{wakeup: make(chan struct{}, 1)}
}

// Post queues fn. It is safe to call from any goroutine, including from a
// running task.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()

	select {
	case l.wakeup <- struct{}{}:
	default:
	}
}

// Pending returns the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}

func (l *Loop) pop() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.tasks) == 0 {
		return nil, false
	}
	fn := l.tasks[0]
	l.tasks[0] = nil
	l.tasks = l.tasks[1:]
	return fn, true
}

// Drain runs queued tasks, including ones they post, until the queue is
// empty. It returns the number of tasks run.
func (l *Loop) Drain() int {
	n := 0
	for {
		fn, ok := l.pop()
		if !ok {
			return n
		}
		fn()
		n++
	}
}

// RunOne waits for a task and runs it.
func (l *Loop) RunOne(ctx context.Context) error {
	for {
		if fn, ok := l.pop(); ok {
			fn()
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wakeup:
		}
	}
}

// Run processes tasks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := l.RunOne(ctx); err != nil {
			return err
		}
	}
}
