package event

import (
	"github.com/lixenwraith/creepwave/parameter"
)

// EventQueue is a ring buffer for game events
// Single goroutine: producers and the consumer all run on the loop goroutine
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index

	frame   int64
	scratch []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		scratch: make([]GameEvent, 0, 64),
	}
}

// SetFrame stamps subsequently pushed events with frame
func (eq *EventQueue) SetFrame(frame int64) {
	eq.frame = frame
}

// Emit pushes an event stamped with the current frame
func (eq *EventQueue) Emit(t EventType, payload any) {
	eq.Push(GameEvent{Type: t, Payload: payload, Frame: eq.frame})
}

// Push adds an event, overwriting the oldest when full. O(1)
func (eq *EventQueue) Push(event GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = event
	eq.tail++

	// Advance head if overwriting unread events
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and advances head
// The returned slice is reused by the next Consume
func (eq *EventQueue) Consume() []GameEvent {
	if eq.tail == eq.head {
		return nil
	}

	eq.scratch = eq.scratch[:0]
	for i := eq.head; i < eq.tail; i++ {
		idx := i & parameter.EventBufferMask
		eq.scratch = append(eq.scratch, eq.events[idx])
		eq.events[idx] = GameEvent{}
	}
	eq.head = eq.tail

	return eq.scratch
}

// Len returns pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}
