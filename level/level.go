// Package level parses ASCII level layouts into a route, spawner slots and tower placements
//
// Layout key:
//
//	#      path
//	*      spawner slot
//	a-z    ordered waypoint (also path)
//	other  tower type code when accepted by the caller
package level

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lixenwraith/creepwave/vmath"
)

// ErrNoRoute is returned when a layout has fewer than two waypoints
var ErrNoRoute = errors.New("level: route needs at least two waypoints")

const (
	PathRune    = '#'
	SpawnerRune = '*'
)

// Cell is a grid coordinate
type Cell struct {
	Row, Col int
}

// Origin returns the pixel position of the cell's top-left corner
func (c Cell) Origin(gridSize float64) vmath.Vector {
	return vmath.NewVector(float64(c.Col)*gridSize, float64(c.Row)*gridSize)
}

// Center returns the pixel position of the cell's center
func (c Cell) Center(gridSize float64) vmath.Vector {
	return vmath.NewVector((float64(c.Col)+0.5)*gridSize, (float64(c.Row)+0.5)*gridSize)
}

// Rect returns the cell's pixel box
func (c Cell) Rect(gridSize float64) vmath.Rect {
	return vmath.Rect{X: float64(c.Col) * gridSize, Y: float64(c.Row) * gridSize, Width: gridSize, Height: gridSize}
}

// Waypoint is an ordered route node
type Waypoint struct {
	Marker rune
	Cell
}

// Placement is a tower type code at a cell
type Placement struct {
	Code rune
	Cell
}

// Level is a parsed layout
type Level struct {
	Rows     []string
	Width    int // Columns, longest row
	Height   int // Rows
	GridSize float64

	Waypoints []Waypoint // Sorted, first and last moved off-field
	Spawners  []Cell     // Reading order
	Towers    []Placement

	path map[Cell]bool
}

// Parse reads rows into a Level
// isTower reports which runes are tower codes; nil accepts none
func Parse(rows []string, gridSize float64, isTower func(rune) bool) (*Level, error) {
	if gridSize <= 0 {
		return nil, fmt.Errorf("level: invalid grid size %v", gridSize)
	}

	l := &Level{
		Rows:     rows,
		Height:   len(rows),
		GridSize: gridSize,
		path:     make(map[Cell]bool),
	}

	for r, row := range rows {
		c := 0
		for _, ch := range row {
			cell := Cell{Row: r, Col: c}
			switch {
			case ch >= 'a' && ch <= 'z':
				l.Waypoints = append(l.Waypoints, Waypoint{Marker: ch, Cell: cell})
				l.path[cell] = true
			case ch == PathRune:
				l.path[cell] = true
			case ch == SpawnerRune:
				l.Spawners = append(l.Spawners, cell)
			case ch == ' ':
			case isTower != nil && isTower(ch):
				l.Towers = append(l.Towers, Placement{Code: ch, Cell: cell})
			}
			c++
		}
		l.Width = max(l.Width, c)
	}

	if len(l.Waypoints) < 2 {
		return nil, ErrNoRoute
	}

	sort.SliceStable(l.Waypoints, func(i, j int) bool {
		return l.Waypoints[i].Marker < l.Waypoints[j].Marker
	})

	l.extendOffField(&l.Waypoints[0].Cell)
	l.extendOffField(&l.Waypoints[len(l.Waypoints)-1].Cell)

	return l, nil
}

// extendOffField moves an edge waypoint one cell outside the field
// Top row goes up, bottom row goes down, first column goes left, anything else goes right
func (l *Level) extendOffField(c *Cell) {
	switch {
	case c.Row == 0:
		c.Row = -1
	case c.Row == l.Height-1:
		c.Row = l.Height
	case c.Col == 0:
		c.Col = -1
	default:
		c.Col = l.Width
	}
}

// PixelWidth returns the field width in pixels
func (l *Level) PixelWidth() float64 {
	return float64(l.Width) * l.GridSize
}

// PixelHeight returns the field height in pixels
func (l *Level) PixelHeight() float64 {
	return float64(l.Height) * l.GridSize
}

// Bounds returns the field rectangle in pixels
func (l *Level) Bounds() vmath.Rect {
	return vmath.Rect{Width: l.PixelWidth(), Height: l.PixelHeight()}
}

// IsPath reports whether the cell is drawn as path
func (l *Level) IsPath(c Cell) bool {
	return l.path[c]
}

// PathCells returns all path cells in reading order
func (l *Level) PathCells() []Cell {
	cells := make([]Cell, 0, len(l.path))
	for c := range l.path {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

// Route returns the waypoint route in pixel space
func (l *Level) Route() *Route {
	r := &Route{
		cells:  make([]Cell, len(l.Waypoints)),
		points: make([]vmath.Vector, len(l.Waypoints)),
	}
	for i, wp := range l.Waypoints {
		r.cells[i] = wp.Cell
		r.points[i] = wp.Center(l.GridSize)
	}
	return r
}
