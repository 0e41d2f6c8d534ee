package render

import "github.com/lixenwraith/creepwave/vmath"

// Surface is the drawing target a frontend provides for one frame
// Coordinates are playfield pixels; backends map them to their own units
type Surface interface {
	// Size returns the drawable area in pixels, HUD included
	Size() (width, height float64)

	FillRect(r vmath.Rect, c RGB)
	StrokeRect(r vmath.Rect, c RGB)
	StrokeCircle(center vmath.Vector, radius float64, c RGB)
	Line(from, to vmath.Vector, c RGB)

	// Text draws s with its top-left corner at x, y
	Text(x, y float64, s string, c RGB)
}

// LayerRenderer draws one layer of the frame
type LayerRenderer interface {
	Render(ctx RenderContext, s Surface)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
