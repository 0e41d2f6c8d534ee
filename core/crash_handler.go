package core

import "sync"

var (
	restoreMu sync.Mutex
	restoreFn func()
)

// SetRestore registers the frontend cleanup run before a crash is reported
// The terminal frontend registers its screen teardown; nil clears the hook
func SetRestore(fn func()) {
	restoreMu.Lock()
	restoreFn = fn
	restoreMu.Unlock()
}

// restore runs the registered hook at most once
func restore() {
	restoreMu.Lock()
	fn := restoreFn
	restoreFn = nil
	restoreMu.Unlock()

	if fn != nil {
		fn()
	}
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure screen cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
