package core

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Expected function to run")
	}
}

func TestRestoreRunsOnce(t *testing.T) {
	var calls atomic.Int32
	SetRestore(func() { calls.Add(1) })

	restore()
	restore()

	if got := calls.Load(); got != 1 {
		t.Errorf("Expected restore to run once, got %d", got)
	}
}

func TestSetRestoreReplaces(t *testing.T) {
	var first, second atomic.Int32
	SetRestore(func() { first.Add(1) })
	SetRestore(func() { second.Add(1) })
	restore()

	if first.Load() != 0 || second.Load() != 1 {
		t.Errorf("Expected only the latest hook, got first=%d second=%d", first.Load(), second.Load())
	}

	SetRestore(nil)
	restore()
	if second.Load() != 1 {
		t.Errorf("Expected cleared hook to stay silent, got %d", second.Load())
	}
}
