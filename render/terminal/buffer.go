package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/creepwave/parameter"
	"github.com/lixenwraith/creepwave/render"
	"github.com/lixenwraith/creepwave/vmath"
)

// cell is one terminal character with colors
type cell struct {
	r      rune
	fg, bg render.RGB
}

// CellBuffer rasterizes pixel-space draw calls onto a terminal grid
// One cell spans TerminalCellWidth x TerminalCellHeight pixels
type CellBuffer struct {
	cols, rows int
	cells      []cell
}

// NewCellBuffer creates a buffer of cols x rows cells
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{}
	b.Resize(cols, rows)
	return b
}

// Resize reallocates when dimensions change and clears
func (b *CellBuffer) Resize(cols, rows int) {
	if cols != b.cols || rows != b.rows {
		b.cols, b.rows = max(cols, 0), max(rows, 0)
		b.cells = make([]cell, b.cols*b.rows)
	}
	b.Clear()
}

// Clear resets every cell to a blank on black
func (b *CellBuffer) Clear() {
	for i := range b.cells {
		b.cells[i] = cell{r: ' '}
	}
}

// Cell returns the rune and colors at col, row
func (b *CellBuffer) Cell(col, row int) (rune, render.RGB, render.RGB) {
	if !b.inBounds(col, row) {
		return 0, render.RGB{}, render.RGB{}
	}
	c := b.cells[row*b.cols+col]
	return c.r, c.fg, c.bg
}

func (b *CellBuffer) inBounds(col, row int) bool {
	return col >= 0 && col < b.cols && row >= 0 && row < b.rows
}

func (b *CellBuffer) at(col, row int) *cell {
	if !b.inBounds(col, row) {
		return nil
	}
	return &b.cells[row*b.cols+col]
}

// toCell maps a pixel to the cell containing it
func toCell(x, y float64) (int, int) {
	return int(math.Floor(x / parameter.TerminalCellWidth)), int(math.Floor(y / parameter.TerminalCellHeight))
}

// plot sets a glyph on a cell keeping its background
func (b *CellBuffer) plot(col, row int, r rune, c render.RGB) {
	if p := b.at(col, row); p != nil {
		p.r = r
		p.fg = c
	}
}

// Size returns the buffer area in pixels
func (b *CellBuffer) Size() (float64, float64) {
	return float64(b.cols * parameter.TerminalCellWidth), float64(b.rows * parameter.TerminalCellHeight)
}

// FillRect paints the background of every cell the rect overlaps, at least one
func (b *CellBuffer) FillRect(r vmath.Rect, c render.RGB) {
	c0, r0 := toCell(r.X, r.Y)
	c1, r1 := toCell(r.X+r.Width-1e-9, r.Y+r.Height-1e-9)
	c1, r1 = max(c1, c0), max(r1, r0)

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if p := b.at(col, row); p != nil {
				*p = cell{r: ' ', bg: c}
			}
		}
	}
}

// StrokeRect marks the corners; full borders would cover small boxes entirely
func (b *CellBuffer) StrokeRect(r vmath.Rect, c render.RGB) {
	c0, r0 := toCell(r.X, r.Y)
	c1, r1 := toCell(r.X+r.Width-1e-9, r.Y+r.Height-1e-9)
	if c1 <= c0 || r1 <= r0 {
		return
	}
	b.plot(c0, r0, '┌', c)
	b.plot(c1, r0, '┐', c)
	b.plot(c0, r1, '└', c)
	b.plot(c1, r1, '┘', c)
}

// StrokeCircle plots one dot per cell crossed by the circumference
func (b *CellBuffer) StrokeCircle(center vmath.Vector, radius float64, c render.RGB) {
	if radius <= 0 {
		return
	}
	steps := max(int(2*math.Pi*radius/parameter.TerminalCellWidth)*2, 8)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		col, row := toCell(center.X+radius*math.Cos(a), center.Y+radius*math.Sin(a))
		b.plot(col, row, '·', c)
	}
}

// Line plots a cell-space Bresenham line
func (b *CellBuffer) Line(from, to vmath.Vector, c render.RGB) {
	x0, y0 := toCell(from.X, from.Y)
	x1, y1 := toCell(to.X, to.Y)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		b.plot(x0, y0, '•', c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Text writes one rune per cell starting at the containing cell
func (b *CellBuffer) Text(x, y float64, s string, c render.RGB) {
	col, row := toCell(x, y)
	for _, r := range s {
		b.plot(col, row, r, c)
		col++
	}
}

// Flush copies the buffer to the screen
func (b *CellBuffer) Flush(screen tcell.Screen) {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			c := b.cells[row*b.cols+col]
			style := tcell.StyleDefault.Foreground(tcellColor(c.fg)).Background(tcellColor(c.bg))
			screen.SetContent(col, row, c.r, nil, style)
		}
	}
}

func tcellColor(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var _ render.Surface = (*CellBuffer)(nil)
