package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenSurface adapts the ebiten frame image to the renderer's Surface.
type screenSurface struct {
	img *ebiten.Image
}

func (s *screenSurface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *screenSurface) Clear(c color.Color) {
	s.img.Fill(c)
}

func (s *screenSurface) Line(x0, y0, x1, y1 float64, c color.Color) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), 1, c, false)
}

func (s *screenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, false)
}
