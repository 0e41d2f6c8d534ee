package system

import (
	"sync/atomic"

	"github.com/lixenwraith/creepwave/component"
	"github.com/lixenwraith/creepwave/event"
	"github.com/lixenwraith/creepwave/parameter"
	"github.com/lixenwraith/creepwave/status"
)

// TowerSystem resolves targeting and firing for every active tower
// Kills and shots are reported through the event queue, a tracer is launched per shot
type TowerSystem struct {
	field *Field

	statShots  *atomic.Int64
	statKilled *atomic.Int64
}

// NewTowerSystem creates the tower resolver for field
func NewTowerSystem(field *Field) *TowerSystem {
	return &TowerSystem{
		field:      field,
		statShots:  field.Status.Ints.Get(status.MetricShots),
		statKilled: field.Status.Ints.Get(status.MetricKilled),
	}
}

// Name returns system's name
func (s *TowerSystem) Name() string {
	return "tower"
}

// Priority returns the system's priority
func (s *TowerSystem) Priority() int {
	return parameter.PriorityTower
}

// Update lets each tower pick its target and fire
func (s *TowerSystem) Update(dt float64) {
	f := s.field
	creeps := f.AliveCreeps()

	for _, t := range f.Towers {
		if !t.Update(dt, creeps) {
			continue
		}
		s.resolve(t)
	}
}

func (s *TowerSystem) resolve(t *component.Tower) {
	f := s.field
	target := t.Target

	s.statShots.Add(1)
	f.Events.Emit(event.EventTowerFired, event.ShotPayload{
		Tower:   t.Type,
		FromX:   t.Center.X,
		FromY:   t.Center.Y,
		ToX:     target.Position.X,
		ToY:     target.Position.Y,
		Targets: len(t.Hits),
		Kills:   t.Kills,
	})

	// Killed creeps are already reset, report the position they held when hit
	for _, c := range t.Hits {
		if c.IsAlive() {
			continue
		}
		s.statKilled.Add(1)
		f.Events.Emit(event.EventCreepKilled, event.CreepPayload{
			Label: c.Stats.Label,
			X:     c.Position.X,
			Y:     c.Position.Y,
		})
	}

	f.Shots.Get(component.ShotProps{
		From:  t.Center,
		To:    target.Position,
		Label: t.Stats.Label,
		Steps: parameter.ShotTTL,
		Step:  f.Step * f.Session.GameSpeed,
	})
}
