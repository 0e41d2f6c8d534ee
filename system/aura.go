package system

import (
	"sync/atomic"

	"github.com/lixenwraith/creepwave/parameter"
	"github.com/lixenwraith/creepwave/status"
	"github.com/lixenwraith/creepwave/vmath"
)

// AuraSystem renegotiates magic resistance granted by caster creeps
//
// Every alive creep starts the scan with no resistance; each caster then grants its
// MagicResist to all alive creeps within its aura radius, itself included.
// Overlapping auras keep the strongest value
type AuraSystem struct {
	field *Field

	statCasters *atomic.Int64
}

// NewAuraSystem creates the caster aura scan for field
func NewAuraSystem(field *Field) *AuraSystem {
	return &AuraSystem{
		field:       field,
		statCasters: field.Status.Ints.Get(status.MetricCasters),
	}
}

// Name returns system's name
func (s *AuraSystem) Name() string {
	return "aura"
}

// Priority returns the system's priority
func (s *AuraSystem) Priority() int {
	return parameter.PriorityAura
}

// Update rebuilds ResistPiercing for the alive creeps
func (s *AuraSystem) Update(dt float64) {
	f := s.field
	creeps := f.AliveCreeps()

	for _, c := range creeps {
		c.ResistPiercing = 0
	}

	casters := 0
	for _, caster := range creeps {
		if !caster.IsAlive() || caster.Stats.Aura <= 0 {
			continue
		}
		casters++
		radius := caster.AuraRadius(f.GridSize)
		for _, c := range creeps {
			if !c.IsAlive() {
				continue
			}
			if vmath.Distance(caster.Position, c.Position) <= radius {
				c.ResistPiercing = max(c.ResistPiercing, caster.Stats.MagicResist)
			}
		}
	}

	s.statCasters.Store(int64(casters))
}
