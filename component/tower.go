package component

import (
	"github.com/lixenwraith/creepwave/engine"
	"github.com/lixenwraith/creepwave/level"
	"github.com/lixenwraith/creepwave/vmath"
)

// Tower is a stationary unit that fires at the creep furthest along the route
type Tower struct {
	engine.Entity

	ID     int
	Type   rune
	Stats  TowerStats
	Cell   level.Cell
	Center vmath.Vector // Cell center, origin of range and shots

	Accumulator float64
	RateOfFire  float64 // Seconds between shots
	IsBuilding  bool

	// Target is a lookup into the creep pool for the current step, never owned
	Target *Creep
	// Hits holds the creeps damaged by the last shot; reused between shots
	Hits  []*Creep
	Kills int

	gridSize float64
}

// NewTower places a tower of type code on cell
func NewTower(id int, code rune, stats TowerStats, cell level.Cell, gridSize float64, building bool) *Tower {
	t := &Tower{
		ID:         id,
		Cell:       cell,
		IsBuilding: building,
		Hits:       make([]*Creep, 0, 8),
		gridSize:   gridSize,
	}
	t.apply(code, stats)
	t.Center = cell.Center(gridSize)
	return t
}

// apply swaps in a stat snapshot and recomputes the derived fields
func (t *Tower) apply(code rune, stats TowerStats) {
	t.Type = code
	t.Stats = stats
	t.RateOfFire = stats.FireInterval()

	origin := t.Cell.Origin(t.gridSize)
	t.Entity.Set(engine.EntityProps{
		X:          origin.X + (t.gridSize-stats.Width)/2,
		Y:          origin.Y + (t.gridSize-stats.Height)/2,
		Color:      stats.Label,
		Width:      stats.Width,
		Height:     stats.Height,
		TimeToLive: engine.Infinite,
	})
}

// RangeRadius returns the targeting radius in pixels
func (t *Tower) RangeRadius() float64 {
	return t.Stats.Range * t.gridSize
}

// Update scans creeps and fires when ready, reporting whether a shot was resolved
//
// Targeting picks the in-range creep with strictly greatest Traveled, first found wins ties
// Readiness accumulates dt; a shot consumes exactly one interval so a late shot can catch up,
// but an idle tower at threshold drains dt instead of banking shots
func (t *Tower) Update(dt float64, creeps []*Creep) bool {
	t.Target = nil
	t.Hits = t.Hits[:0]
	t.Kills = 0

	if t.IsBuilding {
		return false
	}

	maxTraveled := 0.0
	radius := t.RangeRadius()
	for _, c := range creeps {
		if !c.IsAlive() {
			continue
		}
		if vmath.Distance(t.Center, c.Position) <= radius && c.Traveled > maxTraveled {
			maxTraveled = c.Traveled
			t.Target = c
		}
	}

	t.Accumulator += dt

	if t.RateOfFire <= 0 || t.Accumulator < t.RateOfFire {
		return false
	}

	if t.Target == nil {
		t.Accumulator -= dt
		return false
	}

	t.Hits = append(t.Hits, t.Target)
	if t.Stats.Aura > 0 {
		splash := t.Stats.Aura * t.gridSize
		for _, c := range creeps {
			if c == t.Target || !c.IsAlive() {
				continue
			}
			if vmath.Distance(t.Target.Position, c.Position) <= splash {
				t.Hits = append(t.Hits, c)
			}
		}
	}

	sp := Specials{ArmorPiercing: t.Stats.ArmorPiercing}
	for _, c := range t.Hits {
		if c.Damage(t.Stats.Damage, sp) {
			t.Kills++
		}
	}

	t.Accumulator -= t.RateOfFire
	return true
}

// BeginUpgrade puts the tower under construction with the stats of type code
func (t *Tower) BeginUpgrade(code rune, stats TowerStats) {
	t.IsBuilding = true
	t.apply(code, stats)
}

// Upgrade completes construction
func (t *Tower) Upgrade() {
	t.IsBuilding = false
}
