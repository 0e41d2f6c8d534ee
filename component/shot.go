package component

import (
	"github.com/lixenwraith/creepwave/engine"
	"github.com/lixenwraith/creepwave/vmath"
)

// ShotProps initialize a tracer
type ShotProps struct {
	From, To vmath.Vector
	Label    string  // Tower label, selects the tracer color
	Steps    int     // Lifetime in simulation steps
	Step     float64 // Seconds per step
}

// Shot is a short-lived tracer whose head travels from the tower to its target
type Shot struct {
	engine.Entity

	From, To vmath.Vector
	Label    string
}

// NewShot returns a dead shot for pooling
func NewShot() *Shot {
	return &Shot{}
}

// Set launches the tracer; the head reaches To when its lifetime ends
func (s *Shot) Set(p ShotProps) {
	steps := max(p.Steps, 1)
	duration := float64(steps) * p.Step
	if duration <= 0 {
		duration = float64(steps)
	}

	s.From, s.To, s.Label = p.From, p.To, p.Label
	s.Entity.Set(engine.EntityProps{
		X:          p.From.X,
		Y:          p.From.Y,
		DX:         (p.To.X - p.From.X) / duration,
		DY:         (p.To.Y - p.From.Y) / duration,
		TimeToLive: steps,
		Color:      p.Label,
		Width:      2,
		Height:     2,
	})
}

// Update advances the head by one step
func (s *Shot) Update(dt float64) {
	s.Advance(dt)
}

// Head returns the current head position
func (s *Shot) Head() vmath.Vector {
	return s.Position
}
