package system

import (
	"sync/atomic"

	"github.com/lixenwraith/creepwave/component"
	"github.com/lixenwraith/creepwave/engine"
	"github.com/lixenwraith/creepwave/event"
	"github.com/lixenwraith/creepwave/level"
	"github.com/lixenwraith/creepwave/parameter"
	"github.com/lixenwraith/creepwave/status"
)

// WaveSystem runs the economy and the wave cycle
//
// While a wave is active it pays income once per second and spawns one group
// every two seconds until the wave has all its groups. Between waves it finishes
// the constructions scheduled for the current round and telegraphs the next one
type WaveSystem struct {
	field *Field

	cleared bool

	statSpawned *atomic.Int64
}

// NewWaveSystem creates the wave controller for field
func NewWaveSystem(field *Field) *WaveSystem {
	s := &WaveSystem{
		field:       field,
		cleared:     true,
		statSpawned: field.Status.Ints.Get(status.MetricSpawned),
	}
	s.Init()
	return s
}

// Init resets wave bookkeeping
func (s *WaveSystem) Init() {
	s.cleared = true
	s.statSpawned.Store(0)
}

// Name returns system's name
func (s *WaveSystem) Name() string {
	return "wave"
}

// Priority returns the system's priority
func (s *WaveSystem) Priority() int {
	return parameter.PriorityWave
}

// Update advances the economy and wave state by dt scaled seconds
func (s *WaveSystem) Update(dt float64) {
	f := s.field
	session := f.Session
	if session.IsOver() {
		return
	}

	if f.Creeps.InUse() != 0 || session.WaveInProgress {
		session.IncomeAccumulator += dt
		session.SpawnAccumulator += dt

		for session.IncomeAccumulator >= parameter.IncomeInterval {
			session.Money += session.Income
			session.IncomeAccumulator -= parameter.IncomeInterval
		}

		if session.GroupCount < parameter.GroupsPerWave {
			if session.SpawnAccumulator >= parameter.GroupInterval {
				s.spawnGroup()
				session.SpawnAccumulator -= parameter.GroupInterval
			}
		} else if session.WaveInProgress {
			session.WaveInProgress = false
		}
		return
	}

	if !s.cleared {
		s.cleared = true
		f.Events.Emit(event.EventWaveCleared, f.wavePayload(0))
	}

	s.build(session.Round)
	s.telegraph(session.Round + 1)
}

// SendWave starts the next wave if the field is clear, spawning its first group immediately
func (s *WaveSystem) SendWave() bool {
	f := s.field
	if !f.CanSendWave() {
		return false
	}

	session := f.Session
	session.GroupCount = 0
	session.SpawnAccumulator = 0

	spawned := s.spawnGroup()
	if spawned == 0 {
		return false
	}

	session.WaveInProgress = true
	session.WavesLeft--
	session.Round++
	s.cleared = false
	f.Events.Emit(event.EventWaveSent, f.wavePayload(spawned))
	return true
}

// spawnGroup emits one creep batch from every owned spawner
// Batch members are spaced back along the entry heading so they arrive in a column
func (s *WaveSystem) spawnGroup() int {
	f := s.field
	f.Session.GroupCount++

	spawned := 0
	spacer := 0
	for _, sp := range f.Spawners {
		stats := sp.Creep()
		for j := 0; j < stats.Spawns; j++ {
			c, ok := f.Creeps.Get(stats)
			if !ok {
				continue
			}
			offset := (c.Width + parameter.GroupSpacing) * float64(spacer+j)
			c.Position.Set(c.Position.X-c.Velocity.X*offset, c.Position.Y-c.Velocity.Y*offset)
			spawned++
			f.Events.Emit(event.EventCreepSpawned, event.CreepPayload{
				Label: stats.Label,
				X:     c.Position.X,
				Y:     c.Position.Y,
			})
		}
		spacer += stats.Spawns
	}

	s.statSpawned.Add(int64(spawned))
	return spawned
}

// build completes the constructions telegraphed for round
func (s *WaveSystem) build(round int) {
	f := s.field
	if f.builtRounds[round] || len(f.Catalog.Round(round)) == 0 {
		return
	}
	f.builtRounds[round] = true

	for _, t := range f.Upgrading {
		t.Upgrade()
		s.emitTower(event.EventTowerBuilt, t)
	}
	for _, t := range f.Building {
		t.Upgrade()
		f.Towers = append(f.Towers, t)
		s.emitTower(event.EventTowerBuilt, t)
	}
	f.Upgrading = f.Upgrading[:0]
	f.Building = f.Building[:0]
}

// telegraph shows the constructions of round before the wave that triggers them
func (s *WaveSystem) telegraph(round int) {
	f := s.field
	plan := f.Catalog.Round(round)
	if f.telegraphedRounds[round] || len(plan) == 0 {
		return
	}
	f.telegraphedRounds[round] = true

	for _, c := range plan {
		code := c.Code()
		stats, ok := f.Catalog.Towers[code]
		if !ok {
			continue
		}
		cell := level.Cell{Row: c.Row, Col: c.Col}
		if t, ok := f.TowerAt(cell); ok {
			t.BeginUpgrade(code, stats)
			f.Upgrading = append(f.Upgrading, t)
			s.emitTower(event.EventTowerUpgradeStarted, t)
			continue
		}
		t := f.newTower(code, cell, true)
		f.Building = append(f.Building, t)
		s.emitTower(event.EventTowerUpgradeStarted, t)
	}
}

func (s *WaveSystem) emitTower(t event.EventType, tower *component.Tower) {
	s.field.Events.Emit(t, event.TowerPayload{Code: tower.Type, Row: tower.Cell.Row, Col: tower.Cell.Col})
}

var _ engine.System = (*WaveSystem)(nil)
