package engine

import (
	"math"
	"sort"

	"github.com/lixenwraith/creepwave/vmath"
)

// Infinite is the TimeToLive of an entity that only dies when told to
const Infinite = math.MaxInt

// Kind selects how an entity advances and draws, fixed at Set time
type Kind uint8

const (
	KindRect Kind = iota
	KindImage
	KindAnimation
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindImage:
		return "image"
	case KindAnimation:
		return "animation"
	default:
		return "unknown"
	}
}

// Sprite is a static image reference; frontends resolve Name to pixels
type Sprite struct {
	Name          string
	Width, Height float64
}

// Animation cycles Frames at FrameRate frames per second
type Animation struct {
	Name          string
	Frames        int
	FrameRate     float64
	Width, Height float64

	frame   int
	elapsed float64
}

// Update advances the frame counter by dt seconds
func (a *Animation) Update(dt float64) {
	if a.FrameRate <= 0 || a.Frames <= 1 {
		return
	}
	a.elapsed += dt
	step := 1 / a.FrameRate
	for a.elapsed >= step {
		a.elapsed -= step
		a.frame = (a.frame + 1) % a.Frames
	}
}

// Frame returns the current frame index
func (a *Animation) Frame() int {
	return a.frame
}

// Appearance is the drawable variant of an entity
type Appearance struct {
	Kind       Kind
	Color      string
	Image      *Sprite
	Animations map[string]*Animation
	Current    *Animation
}

// EntityProps are the construction-time properties shared by all entities
type EntityProps struct {
	X, Y       float64
	DX, DY     float64
	DDX, DDY   float64
	TimeToLive int

	Image      *Sprite
	Animations map[string]*Animation
	Color      string
	Width      float64
	Height     float64
}

// Entity is the position/velocity/lifetime contract embedded by creeps, towers and shots
type Entity struct {
	Position     vmath.Vector
	Velocity     vmath.Vector
	Acceleration vmath.Vector
	TimeToLive   int
	Width        float64
	Height       float64
	Look         Appearance
}

// Set reinitializes the entity in place
// Image wins over animations, animations over color+dimensions
func (e *Entity) Set(p EntityProps) {
	e.Position.Set(p.X, p.Y)
	e.Velocity.Set(p.DX, p.DY)
	e.Acceleration.Set(p.DDX, p.DDY)
	e.TimeToLive = p.TimeToLive

	switch {
	case p.Image != nil:
		e.Look = Appearance{Kind: KindImage, Image: p.Image}
		e.Width = p.Image.Width
		e.Height = p.Image.Height

	case len(p.Animations) > 0:
		names := make([]string, 0, len(p.Animations))
		for name := range p.Animations {
			names = append(names, name)
		}
		sort.Strings(names)
		current := p.Animations[names[0]]
		e.Look = Appearance{Kind: KindAnimation, Animations: p.Animations, Current: current}
		e.Width = current.Width
		e.Height = current.Height

	default:
		e.Look = Appearance{Kind: KindRect, Color: p.Color}
		e.Width = p.Width
		e.Height = p.Height
	}
}

// Advance integrates acceleration and velocity over dt and ages the entity by one step
func (e *Entity) Advance(dt float64) {
	e.Velocity.Add(e.Acceleration, dt)
	e.Position.Add(e.Velocity, dt)

	if e.TimeToLive != Infinite {
		e.TimeToLive--
	}

	if e.Look.Kind == KindAnimation && e.Look.Current != nil {
		e.Look.Current.Update(dt)
	}
}

// PlayAnimation switches the current animation, false if unknown
func (e *Entity) PlayAnimation(name string) bool {
	a, ok := e.Look.Animations[name]
	if !ok {
		return false
	}
	e.Look.Current = a
	return true
}

// IsAlive reports TimeToLive > 0
func (e *Entity) IsAlive() bool {
	return e.TimeToLive > 0
}

// Kill zeroes TimeToLive
func (e *Entity) Kill() {
	e.TimeToLive = 0
}

// Bounds returns the box with Position as its top-left corner
func (e *Entity) Bounds() vmath.Rect {
	return vmath.Rect{X: e.Position.X, Y: e.Position.Y, Width: e.Width, Height: e.Height}
}

// CollidesWith is the AABB test against r
func (e *Entity) CollidesWith(r vmath.Rect) bool {
	return e.Bounds().Overlaps(r)
}
