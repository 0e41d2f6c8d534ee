package component

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/creepwave/engine"
	"github.com/lixenwraith/creepwave/level"
	"github.com/lixenwraith/creepwave/parameter"
)

var (
	ErrCannotAfford  = errors.New("spawner: not enough money")
	ErrCompleted     = errors.New("spawner: upgrade track completed")
	ErrInvalidOption = errors.New("spawner: invalid option")
)

// OptionKind distinguishes purchasable spawner options
type OptionKind int

const (
	OptionBuy OptionKind = iota
	OptionUpgrade
	OptionSell
)

// Option is one entry of a spawner's purchase list
type Option struct {
	Kind      OptionKind
	Title     string
	Desc      string
	Key       string // Quick-buy key for base creeps
	Cost      int    // Refund for OptionSell
	Level     int    // Levels bought, upgrades only
	Levels    int
	Completed bool
}

// Label returns the option text with its level counter
func (o Option) Label() string {
	switch o.Kind {
	case OptionUpgrade:
		return fmt.Sprintf("%s (%d/%d)", o.Title, o.Level, o.Levels)
	case OptionSell:
		return fmt.Sprintf("%s +%d", o.Title, o.Cost)
	default:
		return o.Title
	}
}

// Spawner is a building slot that decides which creep it adds to every group
// State: empty -> owned -> upgraded tracks -> sold back to empty
type Spawner struct {
	engine.Entity

	ID   int
	Cell level.Cell

	defs   []SpawnerDef
	owned  int // Index into defs, -1 when empty
	creep  CreepStats
	levels []int // Levels bought per upgrade track
	refund int
}

// NewSpawner creates an empty spawner slot offering defs
func NewSpawner(id int, cell level.Cell, gridSize float64, defs []SpawnerDef) *Spawner {
	s := &Spawner{
		ID:    id,
		Cell:  cell,
		defs:  defs,
		owned: -1,
	}
	origin := cell.Origin(gridSize)
	s.Entity.Set(engine.EntityProps{
		X:          origin.X,
		Y:          origin.Y,
		Width:      gridSize,
		Height:     gridSize,
		TimeToLive: engine.Infinite,
	})
	return s
}

// IsOwned reports whether a creep type has been bought
func (s *Spawner) IsOwned() bool {
	return s.owned >= 0
}

// Creep returns the stat snapshot for the next group; Spawns is 0 when empty
func (s *Spawner) Creep() CreepStats {
	return s.creep
}

// Def returns the owned definition
func (s *Spawner) Def() (SpawnerDef, bool) {
	if !s.IsOwned() {
		return SpawnerDef{}, false
	}
	return s.defs[s.owned], true
}

// Refund returns the money a sale would return
func (s *Spawner) Refund() int {
	return s.refund
}

// Options returns the purchase list for the current state
// Empty: one entry per creep type. Owned: each upgrade track, then Sell
func (s *Spawner) Options() []Option {
	if !s.IsOwned() {
		opts := make([]Option, len(s.defs))
		for i, d := range s.defs {
			opts[i] = Option{
				Kind:  OptionBuy,
				Title: d.Creep.Title,
				Desc:  d.Creep.Desc,
				Key:   d.Creep.Key,
				Cost:  d.Creep.Cost,
			}
		}
		return opts
	}

	def := s.defs[s.owned]
	opts := make([]Option, 0, len(def.Upgrades)+1)
	for i, track := range def.Upgrades {
		lvl := s.levels[i]
		o := Option{
			Kind:      OptionUpgrade,
			Title:     track.Title,
			Desc:      track.Desc,
			Level:     lvl,
			Levels:    len(track.Levels),
			Completed: lvl >= len(track.Levels),
		}
		if !o.Completed {
			o.Cost = track.Levels[lvl].Cost
		}
		opts = append(opts, o)
	}
	opts = append(opts, Option{
		Kind:  OptionSell,
		Title: "Sell",
		Desc:  fmt.Sprintf("Sell for %d%% of the total cost", int(parameter.RefundRate*100)),
		Cost:  s.refund,
	})
	return opts
}

// Purchase applies option i of Options against the session
func (s *Spawner) Purchase(i int, session *engine.Session) (Option, error) {
	opts := s.Options()
	if i < 0 || i >= len(opts) {
		return Option{}, ErrInvalidOption
	}
	o := opts[i]

	switch o.Kind {
	case OptionBuy:
		if !session.Spend(o.Cost) {
			return o, ErrCannotAfford
		}
		def := s.defs[i]
		s.owned = i
		s.creep = def.Creep
		s.levels = make([]int, len(def.Upgrades))
		s.refund = refundFor(o.Cost)
		session.Income += def.Creep.IncomeSec

	case OptionUpgrade:
		if o.Completed {
			return o, ErrCompleted
		}
		if !session.Spend(o.Cost) {
			return o, ErrCannotAfford
		}
		track := s.defs[s.owned].Upgrades[i]
		track.Levels[s.levels[i]].Apply.ApplyTo(&s.creep)
		s.levels[i]++
		s.refund += refundFor(o.Cost)

	case OptionSell:
		session.Money += s.refund
		session.Income -= s.creep.IncomeSec
		s.owned = -1
		s.creep = CreepStats{}
		s.levels = nil
		s.refund = 0
	}

	return o, nil
}

func refundFor(cost int) int {
	return int(math.Round(float64(cost) * parameter.RefundRate))
}
