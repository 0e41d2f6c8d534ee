package event

import (
	"testing"

	"github.com/lixenwraith/creepwave/parameter"
)

func TestEventQueueFIFO(t *testing.T) {
	eq := NewEventQueue()
	eq.SetFrame(7)
	eq.Emit(EventCreepSpawned, nil)
	eq.Emit(EventCreepKilled, nil)

	if eq.Len() != 2 {
		t.Fatalf("Expected 2 pending, got %d", eq.Len())
	}

	events := eq.Consume()
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventCreepSpawned || events[1].Type != EventCreepKilled {
		t.Errorf("Expected spawned then killed, got %v then %v", events[0].Type, events[1].Type)
	}
	if events[0].Frame != 7 {
		t.Errorf("Expected frame 7, got %d", events[0].Frame)
	}

	if again := eq.Consume(); again != nil {
		t.Errorf("Expected nil after drain, got %d events", len(again))
	}
}

func TestEventQueueOverflowDropsOldest(t *testing.T) {
	eq := NewEventQueue()
	total := parameter.EventQueueSize + 10

	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventTowerFired, Frame: int64(i)})
	}

	if eq.Len() != parameter.EventQueueSize {
		t.Errorf("Expected %d pending, got %d", parameter.EventQueueSize, eq.Len())
	}

	events := eq.Consume()
	if events[0].Frame != 10 {
		t.Errorf("Expected oldest surviving frame 10, got %d", events[0].Frame)
	}
	if last := events[len(events)-1].Frame; last != int64(total-1) {
		t.Errorf("Expected newest frame %d, got %d", total-1, last)
	}
}

type recordingHandler struct {
	types []EventType
	seen  []EventType
}

func (h *recordingHandler) HandleEvent(ev GameEvent) { h.seen = append(h.seen, ev.Type) }
func (h *recordingHandler) EventTypes() []EventType  { return h.types }

func TestRouterDispatch(t *testing.T) {
	eq := NewEventQueue()
	r := NewRouter(eq)

	a := &recordingHandler{types: []EventType{EventWaveSent, EventGameWon}}
	b := &recordingHandler{types: []EventType{EventWaveSent}}
	r.Register(a)
	r.Register(b)

	var order []string
	r.Register(HandlerFunc{
		Types: []EventType{EventWaveSent},
		Fn:    func(ev GameEvent) { order = append(order, ev.Type.String()) },
	})

	eq.Emit(EventWaveSent, WavePayload{Round: 2})
	eq.Emit(EventCreepLeaked, nil)
	eq.Emit(EventGameWon, nil)

	if n := r.DispatchAll(); n != 3 {
		t.Errorf("Expected 3 dispatched, got %d", n)
	}
	if len(a.seen) != 2 || a.seen[0] != EventWaveSent || a.seen[1] != EventGameWon {
		t.Errorf("Handler a: unexpected events %v", a.seen)
	}
	if len(b.seen) != 1 {
		t.Errorf("Handler b: expected 1 event, got %v", b.seen)
	}
	if len(order) != 1 || order[0] != "WaveSent" {
		t.Errorf("Func handler: unexpected events %v", order)
	}
	if r.HandlerCount(EventWaveSent) != 3 {
		t.Errorf("Expected 3 handlers for WaveSent, got %d", r.HandlerCount(EventWaveSent))
	}
}

func TestEventTypeNames(t *testing.T) {
	for et := EventNone; et < eventTypeCount; et++ {
		name := et.String()
		if name == "" || name == "Unknown" {
			t.Errorf("EventType %d has no name", et)
			continue
		}
		if got, ok := Lookup(name); !ok || got != et {
			t.Errorf("Lookup(%q): expected %d, got %d, %v", name, et, got, ok)
		}
	}
	if EventType(999).String() != "Unknown" {
		t.Error("Expected out of range type to be Unknown")
	}
}
