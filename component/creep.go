package component

import (
	"math/rand/v2"

	"github.com/lixenwraith/creepwave/engine"
	"github.com/lixenwraith/creepwave/event"
	"github.com/lixenwraith/creepwave/level"
	"github.com/lixenwraith/creepwave/parameter"
	"github.com/lixenwraith/creepwave/vmath"
)

// Track is the shared environment every creep of a session moves through
type Track struct {
	Route   *level.Route
	Field   vmath.Rect // Playfield in pixels; traveled distance accrues only inside it
	Session *engine.Session
	Events  *event.EventQueue // Optional
	Rand    func() float64    // Dodge roll in [0, 1), rand.Float64 when nil
}

func (t *Track) roll() float64 {
	if t.Rand == nil {
		return rand.Float64()
	}
	return t.Rand()
}

// Specials are the modifiers carried by a hit
type Specials struct {
	ArmorPiercing float64 // Also tags the hit as magic for resistance
}

// Creep is a waypoint-following unit
//
// States: traveling until the last waypoint is passed or health reaches zero,
// then dead until the pool hands it out again
type Creep struct {
	engine.Entity

	Stats          CreepStats
	Health         float64
	FullHealth     float64
	ResistPiercing float64 // Negotiated each step by the caster aura scan

	WP            int     // Index of the waypoint being approached
	WPX, WPY      float64 // Pixel center of that waypoint
	Traveled      float64
	StartCounting bool

	// Integer draw origin, top-left of the creep box
	CenterX, CenterY int

	healAccumulator float64
	track           *Track
}

// NewCreep returns a dead creep bound to track, ready for pooling
func NewCreep(track *Track) *Creep {
	return &Creep{track: track}
}

// Set reinitializes the creep at the route entry with a copy of stats
func (c *Creep) Set(stats CreepStats) {
	c.Entity.Set(engine.EntityProps{
		Color:      stats.Color,
		Width:      stats.Width,
		Height:     stats.Height,
		TimeToLive: engine.Infinite,
	})

	route := c.track.Route
	start := route.Point(0)
	c.Position.Set(start.X, start.Y)
	heading := route.Heading(1)
	c.Velocity.Set(heading.X, heading.Y)

	c.WP = 1
	next := route.Point(1)
	c.WPX, c.WPY = next.X, next.Y

	c.Stats = stats
	c.Health = stats.Health
	c.FullHealth = stats.Health
	c.ResistPiercing = 0
	c.Traveled = 0
	c.StartCounting = false
	c.healAccumulator = 0
	c.updateCenter()
}

// Update moves the creep one step along the route
// Movement is per step, scaled by speed and game speed; dt drives only the heal timer
func (c *Creep) Update(dt float64) {
	session := c.track.Session
	step := c.Stats.Speed * session.GameSpeed
	c.Position.Add(c.Velocity.Scaled(step), 1)
	c.updateCenter()

	if c.Stats.HealSec > 0 {
		c.healAccumulator += dt
		for c.healAccumulator >= parameter.HealInterval {
			c.Health = min(c.FullHealth, c.Health+c.Stats.HealSec)
			c.healAccumulator -= parameter.HealInterval
		}
	}

	// Distance only counts once the creep has entered the field
	if c.StartCounting {
		c.Traveled += c.Stats.Speed
	} else {
		f := c.track.Field
		c.StartCounting = c.Position.X > f.X && c.Position.X < f.X+f.Width &&
			c.Position.Y > f.Y && c.Position.Y < f.Y+f.Height
	}

	if !c.reachedWaypoint() {
		return
	}

	c.WP++
	route := c.track.Route
	if c.WP >= route.Len() {
		payload := c.payload()
		c.Kill()
		c.reset()
		session.Leak()
		if c.track.Events != nil {
			c.track.Events.Emit(event.EventCreepLeaked, payload)
		}
		return
	}

	next := route.Point(c.WP)
	c.WPX, c.WPY = next.X, next.Y
	heading := route.Heading(c.WP)
	c.Velocity.Set(heading.X, heading.Y)
}

// reachedWaypoint compares position with the target along the direction of travel
func (c *Creep) reachedWaypoint() bool {
	vx, vy := c.Velocity.X, c.Velocity.Y
	px, py := c.Position.X, c.Position.Y
	return (vx > 0 && px >= c.WPX) || (vx < 0 && px <= c.WPX) ||
		(vy > 0 && py >= c.WPY) || (vy < 0 && py <= c.WPY)
}

// Damage applies one hit and reports whether it killed the creep
// Armor is reduced by armor piercing; magic resistance only applies to piercing hits
func (c *Creep) Damage(amount float64, sp Specials) bool {
	if !c.IsAlive() {
		return false
	}

	reduction := max(0, c.Stats.Armor-sp.ArmorPiercing)
	resist := 0.0
	if sp.ArmorPiercing > 0 && c.ResistPiercing > 0 {
		resist = c.ResistPiercing
	}

	miss := false
	if c.Stats.Dodge > 0 {
		miss = c.track.roll() <= c.Stats.Dodge/100
	}

	if !miss {
		c.Health -= max(0, amount-reduction-resist)
	}

	if c.Health <= 0 {
		c.Kill()
		c.reset()
		return true
	}
	return false
}

// HealthRatio returns health over full health in [0, 1]
func (c *Creep) HealthRatio() float64 {
	if c.FullHealth <= 0 {
		return 0
	}
	return max(0, min(1, c.Health/c.FullHealth))
}

// AuraRadius returns the caster radius in pixels
func (c *Creep) AuraRadius(gridSize float64) float64 {
	return c.Stats.Aura * gridSize
}

func (c *Creep) updateCenter() {
	c.CenterX = int(c.Position.X - c.Width/2)
	c.CenterY = int(c.Position.Y - c.Height/2)
}

func (c *Creep) payload() event.CreepPayload {
	return event.CreepPayload{Label: c.Stats.Label, X: c.Position.X, Y: c.Position.Y}
}

// reset zeroes all numeric state of a dead creep
func (c *Creep) reset() {
	c.Stats.reset()
	c.Health, c.FullHealth, c.ResistPiercing = 0, 0, 0
	c.WP, c.WPX, c.WPY = 0, 0, 0
	c.Traveled, c.healAccumulator = 0, 0
	c.CenterX, c.CenterY = 0, 0
	c.Velocity.Set(0, 0)
}
