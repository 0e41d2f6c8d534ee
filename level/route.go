package level

import (
	"github.com/lixenwraith/creepwave/vmath"
)

// Route is an ordered waypoint list with pixel centers
type Route struct {
	cells  []Cell
	points []vmath.Vector
}

// NewRoute builds a route from cells; callers are responsible for off-field extension
func NewRoute(cells []Cell, gridSize float64) (*Route, error) {
	if len(cells) < 2 {
		return nil, ErrNoRoute
	}
	r := &Route{
		cells:  append([]Cell(nil), cells...),
		points: make([]vmath.Vector, len(cells)),
	}
	for i, c := range cells {
		r.points[i] = c.Center(gridSize)
	}
	return r, nil
}

// Len returns the number of waypoints
func (r *Route) Len() int {
	return len(r.cells)
}

// Point returns the pixel center of waypoint i
func (r *Route) Point(i int) vmath.Vector {
	return r.points[i]
}

// Cell returns the grid cell of waypoint i
func (r *Route) Cell(i int) Cell {
	return r.cells[i]
}

// Heading returns the unit axis direction from waypoint i-1 to waypoint i
func (r *Route) Heading(i int) vmath.Vector {
	prev, cur := r.cells[i-1], r.cells[i]
	return vmath.NewVector(
		vmath.Dir(float64(cur.Col), float64(prev.Col)),
		vmath.Dir(float64(cur.Row), float64(prev.Row)),
	)
}
