package scene

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLoopRunsTasksInOrder(t *testing.T) {
	l := NewLoop()

	var order []int
	l.Post(func() {
		order = append(order, 1)
		l.Post(func() { order = append(order, 3) })
	})
	l.Post(func() { order = append(order, 2) })

	if n := l.Drain(); n != 3 {
		t.Fatalf("Drain ran %d tasks, want 3", n)
	}
	for i, v := range order {
		if v != i+1 {
			t.Fatalf("order = %v", order)
		}
	}
	if l.Pending() != 0 {
		t.Fatalf("tasks left after Drain")
	}
}

func TestRunOneWaitsForPostFromAnotherGoroutine(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ran := false
	go func() {
		time.Sleep(10 * time.Millisecond)
		l.Post(func() { ran = true })
	}()

	if err := l.RunOne(ctx); err != nil {
		t.Fatalf("RunOne: %v", err)
	}
	if !ran {
		t.Fatalf("posted task did not run")
	}
}

func TestRunOneHonoursContext(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := l.RunOne(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("RunOne = %v, want deadline exceeded", err)
	}
}
