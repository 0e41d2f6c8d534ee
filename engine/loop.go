package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrMissingCallback is returned when a loop is configured without Update or Render
var ErrMissingCallback = errors.New("loop: update and render callbacks are required")

const (
	defaultFPS           = 60
	defaultMaxFrameDelta = time.Second
)

// LoopConfig configures a fixed-timestep Loop
type LoopConfig struct {
	FPS           int              // Simulation rate, 60 when zero
	Update        func(dt float64) // Called with the fixed step in seconds
	Render        func()           // Called once per processed frame
	Clock         TimeProvider     // Monotonic clock when nil
	MaxFrameDelta time.Duration    // Frames longer than this are dropped, 1s when zero
}

// Loop decouples real elapsed time from simulation step count
// Each processed frame runs Update(Δ) as many times as the accumulated time allows,
// then Render exactly once. Frames that took longer than MaxFrameDelta are discarded
// without catch-up
type Loop struct {
	update   func(dt float64)
	render   func()
	clock    TimeProvider
	step     time.Duration
	stepSec  float64
	maxDelta time.Duration

	last        time.Time
	accumulator time.Duration

	stopped atomic.Bool
	stopCh  chan struct{}
	stopMu  sync.Mutex

	updates atomic.Int64
	dropped atomic.Int64
}

// NewLoop validates the config and returns a stopped loop
func NewLoop(cfg LoopConfig) (*Loop, error) {
	if cfg.Update == nil || cfg.Render == nil {
		return nil, ErrMissingCallback
	}
	if cfg.FPS <= 0 {
		cfg.FPS = defaultFPS
	}
	if cfg.Clock == nil {
		cfg.Clock = NewMonotonicTimeProvider()
	}
	if cfg.MaxFrameDelta <= 0 {
		cfg.MaxFrameDelta = defaultMaxFrameDelta
	}

	step := time.Second / time.Duration(cfg.FPS)
	l := &Loop{
		update:   cfg.Update,
		render:   cfg.Render,
		clock:    cfg.Clock,
		step:     step,
		stepSec:  step.Seconds(),
		maxDelta: cfg.MaxFrameDelta,
		stopCh:   make(chan struct{}),
	}
	l.stopped.Store(true)
	return l, nil
}

// Start resets the timestamp anchor and clears the stopped state
func (l *Loop) Start() {
	l.stopMu.Lock()
	if l.stopped.Load() {
		l.stopCh = make(chan struct{})
	}
	l.stopped.Store(false)
	l.stopMu.Unlock()

	l.last = l.clock.Now()
}

// Stop cancels future scheduling; the frame in progress runs to completion
// Safe to call more than once and from within Update
func (l *Loop) Stop() {
	l.stopMu.Lock()
	defer l.stopMu.Unlock()
	if l.stopped.Swap(true) {
		return
	}
	close(l.stopCh)
}

// IsStopped reports whether Stop was called since the last Start
func (l *Loop) IsStopped() bool {
	return l.stopped.Load()
}

// Frame processes one real frame and reports whether it was rendered
// Returns false for dropped frames and when the loop is stopped
func (l *Loop) Frame() bool {
	if l.stopped.Load() {
		return false
	}

	now := l.clock.Now()
	elapsed := now.Sub(l.last)
	l.last = now

	if elapsed > l.maxDelta {
		l.dropped.Add(1)
		return false
	}

	l.accumulator += elapsed
	for l.accumulator >= l.step {
		l.update(l.stepSec)
		l.updates.Add(1)
		l.accumulator -= l.step
	}

	l.render()
	return true
}

// Run starts the loop and schedules frames on a ticker until Stop or context cancellation
// Functions received on actions run in the loop goroutine between frames
// Returns nil after Stop, ctx.Err() after cancellation
func (l *Loop) Run(ctx context.Context, actions <-chan func()) error {
	l.Start()

	ticker := time.NewTicker(l.step)
	defer ticker.Stop()

	l.stopMu.Lock()
	stopCh := l.stopCh
	l.stopMu.Unlock()

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-stopCh:
			return nil
		case fn, ok := <-actions:
			if !ok {
				actions = nil
				continue
			}
			fn()
		case <-ticker.C:
			l.Frame()
		}
	}
}

// Step returns the fixed simulation step
func (l *Loop) Step() time.Duration {
	return l.step
}

// Updates returns the total number of Update calls
func (l *Loop) Updates() int64 {
	return l.updates.Load()
}

// Dropped returns the number of discarded frames
func (l *Loop) Dropped() int64 {
	return l.dropped.Load()
}
