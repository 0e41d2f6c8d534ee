package vmath

import "math"

// Vector is a mutable 2D accumulator used for position, velocity and acceleration
// Each entity owns its vectors; they are never shared
type Vector struct {
	X, Y float64

	clamped                bool
	xMin, yMin, xMax, yMax float64
}

// NewVector returns an unclamped vector at x, y
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Set overwrites both components, clamp bounds are kept
func (v *Vector) Set(x, y float64) *Vector {
	v.X = x
	v.Y = y
	return v
}

// Add accumulates o scaled by dt; dt of 0 counts as 1
// When clamped, the result is pinned inside the clamp rectangle
func (v *Vector) Add(o Vector, dt float64) {
	if dt == 0 {
		dt = 1
	}
	x := v.X + o.X*dt
	y := v.Y + o.Y*dt

	if v.clamped {
		x = math.Min(math.Max(x, v.xMin), v.xMax)
		y = math.Min(math.Max(y, v.yMin), v.yMax)
	}

	v.X = x
	v.Y = y
}

// Clamp bounds every subsequent Add to the rectangle
// The current value is not moved; clamping only applies through Add
func (v *Vector) Clamp(xMin, yMin, xMax, yMax float64) {
	v.clamped = true
	v.xMin, v.yMin = xMin, yMin
	v.xMax, v.yMax = xMax, yMax
}

// Unclamp removes clamp bounds
func (v *Vector) Unclamp() {
	v.clamped = false
}

// IsClamped reports whether Add is bounded
func (v *Vector) IsClamped() bool {
	return v.clamped
}

// Scaled returns a copy of the components multiplied by s, without clamp bounds
func (v Vector) Scaled(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Dir returns the sign of a-b: 1, 0 or -1
func Dir(a, b float64) float64 {
	switch {
	case a-b > 0:
		return 1
	case a-b < 0:
		return -1
	default:
		return 0
	}
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Vector) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}
