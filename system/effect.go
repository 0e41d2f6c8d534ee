package system

import (
	"sync/atomic"

	"github.com/lixenwraith/creepwave/parameter"
	"github.com/lixenwraith/creepwave/status"
)

// EffectSystem ages shot tracers
type EffectSystem struct {
	field *Field

	statTracers *atomic.Int64
}

// NewEffectSystem creates the tracer updater for field
func NewEffectSystem(field *Field) *EffectSystem {
	return &EffectSystem{
		field:       field,
		statTracers: field.Status.Ints.Get(status.MetricTracers),
	}
}

// Name returns system's name
func (s *EffectSystem) Name() string {
	return "effect"
}

// Priority returns the system's priority
func (s *EffectSystem) Priority() int {
	return parameter.PriorityEffect
}

// Update advances every tracer one step
func (s *EffectSystem) Update(dt float64) {
	s.field.Shots.Update(dt)
	s.statTracers.Store(int64(s.field.Shots.InUse()))
}
