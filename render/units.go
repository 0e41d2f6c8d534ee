package render

import (
	"github.com/lixenwraith/creepwave/parameter"
	"github.com/lixenwraith/creepwave/vmath"
)

// CreepRenderer draws creeps with their aura ring and health bar
type CreepRenderer struct{}

func (r *CreepRenderer) Render(ctx RenderContext, s Surface) {
	for _, c := range ctx.Snapshot.Creeps {
		s.FillRect(vmath.Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}, ParseColor(c.Color))

		if c.AuraRadius > 0 {
			s.StrokeCircle(vmath.Vector{X: c.CenterX, Y: c.CenterY}, c.AuraRadius, RGBAura)
		}

		bar := vmath.Rect{
			X:      c.X,
			Y:      c.CenterY - parameter.HealthBarOffset,
			Width:  c.Width,
			Height: parameter.HealthBarHeight,
		}
		s.FillRect(bar, RGBHealthBack)
		bar.Width = c.Width * min(max(c.Health, 0), 1)
		if bar.Width > 0 {
			s.FillRect(bar, RGBHealthFill)
		}
	}
}

// ShotRenderer draws tower tracers
type ShotRenderer struct{}

func (r *ShotRenderer) Render(ctx RenderContext, s Surface) {
	for _, sh := range ctx.Snapshot.Shots {
		s.Line(sh.From, sh.Head, ShotColor(sh.Label))
	}
}
