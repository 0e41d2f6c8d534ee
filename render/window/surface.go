package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/creepwave/render"
	"github.com/lixenwraith/creepwave/vmath"
)

const strokeWidth = 1

// surface draws onto the ebiten screen image of the current frame
type surface struct {
	img *ebiten.Image
}

func (s *surface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *surface) FillRect(r vmath.Rect, c render.RGB) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.Color(), false)
}

func (s *surface) StrokeRect(r vmath.Rect, c render.RGB) {
	vector.StrokeRect(s.img, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), strokeWidth, c.Color(), false)
}

func (s *surface) StrokeCircle(center vmath.Vector, radius float64, c render.RGB) {
	vector.StrokeCircle(s.img, float32(center.X), float32(center.Y), float32(radius), strokeWidth, c.Color(), true)
}

func (s *surface) Line(from, to vmath.Vector, c render.RGB) {
	vector.StrokeLine(s.img, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), strokeWidth, c.Color(), true)
}

// Text converts the top-left anchor to the font baseline
func (s *surface) Text(x, y float64, str string, c render.RGB) {
	face := basicfont.Face7x13
	text.Draw(s.img, str, face, int(x), int(y)+face.Ascent, c.Color())
}
