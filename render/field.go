package render

import (
	"github.com/lixenwraith/creepwave/vmath"
)

// BackgroundRenderer draws grass, the grid and the creep path
type BackgroundRenderer struct{}

func (r *BackgroundRenderer) Render(ctx RenderContext, s Surface) {
	snap := ctx.Snapshot
	s.FillRect(vmath.Rect{Width: snap.Width, Height: snap.Height}, RGBGround)

	if ctx.Debug && snap.GridSize > 0 {
		for x := snap.GridSize; x < snap.Width; x += snap.GridSize {
			s.Line(vmath.Vector{X: x}, vmath.Vector{X: x, Y: snap.Height}, RGBGrid)
		}
		for y := snap.GridSize; y < snap.Height; y += snap.GridSize {
			s.Line(vmath.Vector{Y: y}, vmath.Vector{X: snap.Width, Y: y}, RGBGrid)
		}
	}

	for _, cell := range snap.Path {
		s.FillRect(cell, RGBPath)
	}
}

// TowerRenderer draws active and pending towers
type TowerRenderer struct {
	// ShowRange draws range rings outside debug mode
	ShowRange bool
}

func (r *TowerRenderer) Render(ctx RenderContext, s Surface) {
	for _, t := range ctx.Snapshot.Towers {
		if t.Building {
			s.FillRect(t.Box, RGBBuilding)
			s.StrokeRect(t.Box, RGBBlack)
			// Blink the pending marker
			if ctx.Frame/30%2 == 0 {
				s.Text(t.Box.X+2, t.Box.Y+2, "?", RGBText)
			}
			continue
		}

		s.FillRect(t.Box, TowerColor(t.Label))
		s.StrokeRect(t.Box, RGBBlack)
		s.Text(t.Box.X+2, t.Box.Y+2, string(t.Code), RGBText)

		if r.ShowRange || ctx.Debug {
			s.StrokeCircle(t.Center, t.Range, RGBRange)
		}
	}
}

// SpawnerRenderer draws spawner slots and the selection outline
type SpawnerRenderer struct{}

func (r *SpawnerRenderer) Render(ctx RenderContext, s Surface) {
	for _, sp := range ctx.Snapshot.Spawners {
		if sp.Owned {
			s.FillRect(sp.Box, ParseColor(sp.Color).Scale(0.5))
			if sp.Title != "" {
				s.Text(sp.Box.X+2, sp.Box.Y+2, string([]rune(sp.Title)[0]), RGBText)
			}
		} else {
			s.FillRect(sp.Box, RGBSpawner)
		}

		outline := RGBBlack
		if sp.Selected {
			outline = RGBSelected
		}
		s.StrokeRect(sp.Box, outline)
	}
}
