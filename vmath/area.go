package vmath

// Rect is an axis-aligned box in pixel space
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// Center returns the center point of the rect
func (r Rect) Center() Vector {
	return Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains checks if point is within the rect, right/bottom edges exclusive
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Overlaps is the AABB intersection test
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}
