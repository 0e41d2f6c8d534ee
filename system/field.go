package system

import (
	"fmt"

	"github.com/lixenwraith/creepwave/component"
	"github.com/lixenwraith/creepwave/content"
	"github.com/lixenwraith/creepwave/engine"
	"github.com/lixenwraith/creepwave/event"
	"github.com/lixenwraith/creepwave/level"
	"github.com/lixenwraith/creepwave/parameter"
	"github.com/lixenwraith/creepwave/status"
)

// CreepPool recycles creeps for the whole session
type CreepPool = engine.Pool[*component.Creep, component.CreepStats]

// ShotPool recycles tracer entities
type ShotPool = engine.Pool[*component.Shot, component.ShotProps]

// FieldConfig assembles a Field
type FieldConfig struct {
	Session  *engine.Session
	Catalog  *content.Catalog
	GridSize float64
	MaxPool  int     // Creep pool ceiling, 0 for unbounded
	Step     float64 // Fixed simulation step in seconds
	Events   *event.EventQueue
	Status   *status.Registry
	Rand     func() float64 // Dodge roll, nil for math/rand
}

// Field is the simulation state shared by all systems
// Written only from the loop goroutine
type Field struct {
	Session  *engine.Session
	Level    *level.Level
	Catalog  *content.Catalog
	Track    *component.Track
	GridSize float64
	Step     float64

	Creeps *CreepPool
	Shots  *ShotPool

	Towers    []*component.Tower
	Building  []*component.Tower // New towers telegraphed for the next round
	Upgrading []*component.Tower // Existing towers telegraphed for the next round
	Spawners  []*component.Spawner

	Events *event.EventQueue
	Status *status.Registry

	builtRounds       map[int]bool
	telegraphedRounds map[int]bool
	nextTowerID       int
}

// NewField parses the catalog level and creates pools, spawners and initial towers
func NewField(cfg FieldConfig) (*Field, error) {
	if cfg.Session == nil || cfg.Catalog == nil {
		return nil, fmt.Errorf("system: field requires a session and a catalog")
	}
	if cfg.GridSize <= 0 {
		cfg.GridSize = parameter.GridSize
	}
	if cfg.Step <= 0 {
		cfg.Step = 1.0 / parameter.DefaultFPS
	}
	if cfg.Events == nil {
		cfg.Events = event.NewEventQueue()
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}

	lvl, err := level.Parse(cfg.Catalog.Level, cfg.GridSize, cfg.Catalog.IsTower)
	if err != nil {
		return nil, err
	}

	f := &Field{
		Session:           cfg.Session,
		Level:             lvl,
		Catalog:           cfg.Catalog,
		GridSize:          cfg.GridSize,
		Step:              cfg.Step,
		Events:            cfg.Events,
		Status:            cfg.Status,
		builtRounds:       make(map[int]bool),
		telegraphedRounds: make(map[int]bool),
	}

	f.Track = &component.Track{
		Route:   lvl.Route(),
		Field:   lvl.Bounds(),
		Session: cfg.Session,
		Events:  cfg.Events,
		Rand:    cfg.Rand,
	}

	f.Creeps, err = engine.NewPool[*component.Creep, component.CreepStats](engine.PoolConfig[*component.Creep]{
		Create:  func() *component.Creep { return component.NewCreep(f.Track) },
		MaxSize: cfg.MaxPool,
	})
	if err != nil {
		return nil, err
	}

	f.Shots, err = engine.NewPool[*component.Shot, component.ShotProps](engine.PoolConfig[*component.Shot]{
		Create:  component.NewShot,
		MaxSize: parameter.ShotPoolMaxSize,
		Fill:    true,
	})
	if err != nil {
		return nil, err
	}

	for i, cell := range lvl.Spawners {
		f.Spawners = append(f.Spawners, component.NewSpawner(i, cell, cfg.GridSize, cfg.Catalog.Spawners))
	}

	for _, p := range lvl.Towers {
		f.Towers = append(f.Towers, f.newTower(p.Code, p.Cell, false))
	}

	return f, nil
}

func (f *Field) newTower(code rune, cell level.Cell, building bool) *component.Tower {
	t := component.NewTower(f.nextTowerID, code, f.Catalog.Towers[code], cell, f.GridSize, building)
	f.nextTowerID++
	return t
}

// TowerAt returns the active tower on cell
func (f *Field) TowerAt(cell level.Cell) (*component.Tower, bool) {
	for _, t := range f.Towers {
		if t.Cell == cell {
			return t, true
		}
	}
	return nil, false
}

// AliveCreeps returns the alive creeps; valid until the next pool mutation
func (f *Field) AliveCreeps() []*component.Creep {
	return f.Creeps.AliveObjects()
}

// CanSendWave reports whether SendWave would be accepted
func (f *Field) CanSendWave() bool {
	s := f.Session
	return !s.IsOver() && !s.WaveInProgress && f.Creeps.InUse() == 0 && s.WavesLeft > 0
}

// wavePayload snapshots the session for wave events
func (f *Field) wavePayload(spawned int) event.WavePayload {
	return event.WavePayload{
		Round:     f.Session.Round,
		WavesLeft: f.Session.WavesLeft,
		Lives:     f.Session.Lives,
		Spawned:   spawned,
	}
}
