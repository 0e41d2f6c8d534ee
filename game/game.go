// Package game assembles the simulation: field, systems, event routing and the fixed-timestep loop
// Frontends drive it through actions and read it back through Snapshot
package game

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/creepwave/component"
	"github.com/lixenwraith/creepwave/content"
	"github.com/lixenwraith/creepwave/engine"
	"github.com/lixenwraith/creepwave/event"
	"github.com/lixenwraith/creepwave/parameter"
	"github.com/lixenwraith/creepwave/status"
	"github.com/lixenwraith/creepwave/system"
)

var (
	ErrNoSelection    = errors.New("game: no spawner selected")
	ErrInvalidSpawner = errors.New("game: spawner id out of range")
	ErrGameOver       = errors.New("game: session has ended")
)

// Config carries everything needed to build a Game
type Config struct {
	Catalog  *content.Catalog
	Session  engine.SessionConfig
	GridSize float64
	FPS      int
	MaxPool  int
	Clock    engine.TimeProvider // Loop clock, monotonic when nil
	Rand     func() float64      // Dodge roll, math/rand when nil
}

// DefaultConfig returns the stock game
func DefaultConfig() Config {
	return Config{
		Catalog: content.Default(),
		Session: engine.SessionConfig{
			Money:  parameter.StartingMoney,
			Lives:  parameter.StartingLives,
			Waves:  parameter.StartingWaves,
			Bounty: parameter.LeakBounty,
		},
		GridSize: parameter.GridSize,
		FPS:      parameter.DefaultFPS,
		MaxPool:  parameter.CreepPoolMaxSize,
	}
}

// Game owns one session and everything simulated in it
// All methods must be called from the loop goroutine
type Game struct {
	Session *engine.Session
	Field   *system.Field
	World   *engine.World
	Events  *event.EventQueue
	Router  *event.Router
	Status  *status.Registry

	loop     *engine.Loop
	waves    *system.WaveSystem
	render   func()
	frame    int64
	selected int // Spawner index, -1 for none

	snap Snapshot

	statUpdates *atomic.Int64
	statDropped *atomic.Int64
	statEvents  *atomic.Int64
	statSimTime *status.AtomicFloat
}

// New validates cfg and builds the field, systems and loop
func New(cfg Config) (*Game, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("game: catalog is required")
	}
	if err := cfg.Catalog.Validate(); err != nil {
		return nil, err
	}
	if cfg.GridSize <= 0 {
		cfg.GridSize = parameter.GridSize
	}
	if cfg.FPS <= 0 {
		cfg.FPS = parameter.DefaultFPS
	}

	g := &Game{
		Session:  engine.NewSession(cfg.Session),
		World:    engine.NewWorld(),
		Events:   event.NewEventQueue(),
		Status:   status.NewRegistry(),
		selected: -1,
	}
	g.Router = event.NewRouter(g.Events)

	loop, err := engine.NewLoop(engine.LoopConfig{
		FPS:           cfg.FPS,
		Update:        g.Update,
		Render:        g.Render,
		Clock:         cfg.Clock,
		MaxFrameDelta: parameter.MaxFrameDelta,
	})
	if err != nil {
		return nil, err
	}
	g.loop = loop

	field, err := system.NewField(system.FieldConfig{
		Session:  g.Session,
		Catalog:  cfg.Catalog,
		GridSize: cfg.GridSize,
		MaxPool:  cfg.MaxPool,
		Step:     loop.Step().Seconds(),
		Events:   g.Events,
		Status:   g.Status,
		Rand:     cfg.Rand,
	})
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.Field = field

	g.waves = system.NewWaveSystem(field)
	creeps := system.NewCreepSystem(field)
	g.World.AddSystem(g.waves)
	g.World.AddSystem(creeps)
	g.World.AddSystem(system.NewTowerSystem(field))
	g.World.AddSystem(system.NewAuraSystem(field))
	g.World.AddSystem(system.NewEffectSystem(field))
	g.World.AddSystem(system.NewOutcomeSystem(field, g.onOutcome))

	g.Router.Register(creeps)
	g.Router.Register(newLogHandler(g.Session))

	g.statUpdates = g.Status.Ints.Get(status.MetricUpdates)
	g.statDropped = g.Status.Ints.Get(status.MetricDropped)
	g.statEvents = g.Status.Ints.Get(status.MetricEvents)
	g.statSimTime = g.Status.Floats.Get(status.MetricSimTime)

	log.Printf("[%s] game ready: %dx%d grid, %d spawners, %d towers",
		g.Session.ID, field.Level.Width, field.Level.Height, len(field.Spawners), len(field.Towers))

	return g, nil
}

// Loop returns the fixed-timestep driver
func (g *Game) Loop() *engine.Loop {
	return g.loop
}

// SetRenderer installs the frontend draw callback run after each processed frame
func (g *Game) SetRenderer(fn func()) {
	g.render = fn
}

// RegisterHandler subscribes h to game events
func (g *Game) RegisterHandler(h event.Handler) {
	g.Router.Register(h)
}

// Update advances the simulation by one fixed step of dt seconds
// Systems receive dt scaled by the game speed
func (g *Game) Update(dt float64) {
	g.frame++
	g.Events.SetFrame(g.frame)

	scaled := dt * g.Session.GameSpeed
	g.World.Update(scaled)

	n := g.Router.DispatchAll()
	g.statEvents.Add(int64(n))
	g.statSimTime.Add(scaled)
	g.statUpdates.Add(1)
	g.statDropped.Store(g.loop.Dropped())
}

// Render hands the frame to the frontend
func (g *Game) Render() {
	if g.render != nil {
		g.render()
	}
}

// Frame returns the number of simulation steps run
func (g *Game) Frame() int64 {
	return g.frame
}

func (g *Game) onOutcome(o engine.Outcome) {
	g.loop.Stop()
}

// SetGameSpeed sets the speed multiplier, clamped to 1..3
func (g *Game) SetGameSpeed(n int) {
	g.Session.SetGameSpeed(n)
}

// SendWave starts the next wave, false when a wave is active or creeps remain
func (g *Game) SendWave() bool {
	return g.waves.SendWave()
}

// SelectBuilding selects spawner id for purchases
func (g *Game) SelectBuilding(id int) error {
	if id < 0 || id >= len(g.Field.Spawners) {
		return ErrInvalidSpawner
	}
	g.selected = id
	return nil
}

// SelectNext cycles the selection through the spawners
func (g *Game) SelectNext() {
	n := len(g.Field.Spawners)
	if n == 0 {
		return
	}
	g.selected = (g.selected + 1) % n
}

// Deselect clears the selection
func (g *Game) Deselect() {
	g.selected = -1
}

// Selected returns the selected spawner
func (g *Game) Selected() (*component.Spawner, bool) {
	if g.selected < 0 {
		return nil, false
	}
	return g.Field.Spawners[g.selected], true
}

// SpawnerAt hit-tests a pixel position against the spawner slots
func (g *Game) SpawnerAt(x, y float64) (int, bool) {
	for i, sp := range g.Field.Spawners {
		if sp.Bounds().Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}

// Purchase applies option i of the selected spawner
func (g *Game) Purchase(i int) error {
	if g.Session.IsOver() {
		return ErrGameOver
	}
	sp, ok := g.Selected()
	if !ok {
		return ErrNoSelection
	}

	opt, err := sp.Purchase(i, g.Session)
	if err != nil {
		return err
	}

	kind := event.PurchaseBuy
	switch opt.Kind {
	case component.OptionUpgrade:
		kind = event.PurchaseUpgrade
	case component.OptionSell:
		kind = event.PurchaseSell
	}
	g.Events.Emit(event.EventPurchase, event.PurchasePayload{
		Kind:    kind,
		Spawner: sp.ID,
		Title:   opt.Title,
		Amount:  opt.Cost,
	})
	return nil
}

// PurchaseKey buys the creep type bound to key on the selected spawner, when it is empty
func (g *Game) PurchaseKey(key string) error {
	sp, ok := g.Selected()
	if !ok {
		return ErrNoSelection
	}
	if sp.IsOwned() {
		return component.ErrInvalidOption
	}
	for i, o := range sp.Options() {
		if o.Key == key {
			return g.Purchase(i)
		}
	}
	return component.ErrInvalidOption
}
