package system

import (
	"sync/atomic"

	"github.com/lixenwraith/creepwave/event"
	"github.com/lixenwraith/creepwave/parameter"
	"github.com/lixenwraith/creepwave/status"
)

// CreepSystem moves every pooled creep one step and reclaims the dead
type CreepSystem struct {
	field *Field

	statAlive  *atomic.Int64
	statPool   *atomic.Int64
	statLeaked *atomic.Int64
}

// NewCreepSystem creates the creep mover for field
func NewCreepSystem(field *Field) *CreepSystem {
	return &CreepSystem{
		field:      field,
		statAlive:  field.Status.Ints.Get(status.MetricCreepsAlive),
		statPool:   field.Status.Ints.Get(status.MetricPoolSize),
		statLeaked: field.Status.Ints.Get(status.MetricLeaked),
	}
}

// Name returns system's name
func (s *CreepSystem) Name() string {
	return "creep"
}

// Priority returns the system's priority
func (s *CreepSystem) Priority() int {
	return parameter.PriorityCreep
}

// EventTypes returns the event types CreepSystem counts
func (s *CreepSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventCreepLeaked}
}

// HandleEvent tallies leaks
func (s *CreepSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventCreepLeaked {
		s.statLeaked.Add(1)
	}
}

// Update advances the creep pool
func (s *CreepSystem) Update(dt float64) {
	pool := s.field.Creeps
	pool.Update(dt)

	s.statAlive.Store(int64(pool.InUse()))
	s.statPool.Store(int64(pool.Size()))
}
