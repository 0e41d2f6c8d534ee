package game

import (
	"github.com/lixenwraith/creepwave/component"
	"github.com/lixenwraith/creepwave/engine"
	"github.com/lixenwraith/creepwave/vmath"
)

// CreepView is a creep as drawn
type CreepView struct {
	X, Y          float64 // Box top-left
	Width, Height float64
	CenterX       float64
	CenterY       float64
	Health        float64 // Ratio in [0, 1]
	AuraRadius    float64 // Pixels, 0 for non-casters
	Color         string
	Label         string
}

// TowerView is an active or pending tower
type TowerView struct {
	Box      vmath.Rect
	Center   vmath.Vector
	Range    float64 // Pixels
	Code     rune
	Label    string
	Title    string
	Building bool
}

// ShotView is a tracer from the tower to its current head
type ShotView struct {
	From, Head vmath.Vector
	Label      string
}

// OptionView is a spawner option with affordability resolved
type OptionView struct {
	component.Option
	Text       string
	Affordable bool
}

// SpawnerView is a spawner slot
type SpawnerView struct {
	ID       int
	Box      vmath.Rect
	Owned    bool
	Title    string
	Label    string
	Color    string
	Selected bool
}

// HUD carries the session counters and the selection menu
type HUD struct {
	Money     int
	Income    int
	Lives     int
	WavesLeft int
	Round     int
	GameSpeed float64
	CanSend   bool
	Selected  int // Spawner index, -1 for none
	Options   []OptionView
	Outcome   engine.Outcome
}

// Snapshot is the plain-data view of one frame
// Slices are reused between calls; copy what must outlive the next Snapshot
type Snapshot struct {
	Width, Height float64 // Playfield in pixels
	GridSize      float64
	Path          []vmath.Rect

	Creeps   []CreepView
	Towers   []TowerView
	Shots    []ShotView
	Spawners []SpawnerView

	HUD     HUD
	Metrics string
}

// Snapshot captures the current state for rendering
func (g *Game) Snapshot() *Snapshot {
	f := g.Field
	s := &g.snap
	grid := f.GridSize

	s.Width = f.Level.PixelWidth()
	s.Height = f.Level.PixelHeight()
	s.GridSize = grid

	if s.Path == nil {
		for _, c := range f.Level.PathCells() {
			s.Path = append(s.Path, c.Rect(grid))
		}
	}

	s.Creeps = s.Creeps[:0]
	f.Creeps.Each(func(c *component.Creep) {
		if !c.IsAlive() {
			return
		}
		s.Creeps = append(s.Creeps, CreepView{
			X:          float64(c.CenterX),
			Y:          float64(c.CenterY),
			Width:      c.Width,
			Height:     c.Height,
			CenterX:    c.Position.X,
			CenterY:    c.Position.Y,
			Health:     c.HealthRatio(),
			AuraRadius: c.AuraRadius(grid),
			Color:      c.Stats.Color,
			Label:      c.Stats.Label,
		})
	})

	s.Towers = s.Towers[:0]
	for _, list := range [][]*component.Tower{f.Towers, f.Building} {
		for _, t := range list {
			s.Towers = append(s.Towers, towerView(t))
		}
	}

	s.Shots = s.Shots[:0]
	f.Shots.Each(func(sh *component.Shot) {
		s.Shots = append(s.Shots, ShotView{From: sh.From, Head: sh.Head(), Label: sh.Label})
	})

	s.Spawners = s.Spawners[:0]
	for i, sp := range f.Spawners {
		v := SpawnerView{
			ID:       sp.ID,
			Box:      sp.Bounds(),
			Owned:    sp.IsOwned(),
			Selected: i == g.selected,
		}
		if v.Owned {
			c := sp.Creep()
			v.Title, v.Label, v.Color = c.Title, c.Label, c.Color
		}
		s.Spawners = append(s.Spawners, v)
	}

	g.fillHUD(&s.HUD)
	s.Metrics = g.Status.Line()
	return s
}

func towerView(t *component.Tower) TowerView {
	return TowerView{
		Box:      t.Bounds(),
		Center:   t.Center,
		Range:    t.RangeRadius(),
		Code:     t.Type,
		Label:    t.Stats.Label,
		Title:    t.Stats.Title,
		Building: t.IsBuilding,
	}
}

func (g *Game) fillHUD(h *HUD) {
	session := g.Session
	h.Money = session.Money
	h.Income = session.Income
	h.Lives = session.Lives
	h.WavesLeft = session.WavesLeft
	h.Round = session.Round
	h.GameSpeed = session.GameSpeed
	h.CanSend = g.Field.CanSendWave()
	h.Selected = g.selected
	h.Outcome = session.Outcome

	h.Options = h.Options[:0]
	sp, ok := g.Selected()
	if !ok {
		return
	}
	for _, o := range sp.Options() {
		affordable := o.Kind == component.OptionSell || (!o.Completed && session.CanAfford(o.Cost))
		h.Options = append(h.Options, OptionView{Option: o, Text: o.Label(), Affordable: affordable})
	}
}
