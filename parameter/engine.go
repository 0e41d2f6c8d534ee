package parameter

import "time"

// Game Loop
const (
	// DefaultFPS is the simulation rate
	DefaultFPS = 60

	// MaxFrameDelta drops frames that took longer, e.g. after the window was backgrounded
	MaxFrameDelta = time.Second
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Level Geometry
const (
	// GridSize is the pixel size of one level cell
	GridSize = 40
)
