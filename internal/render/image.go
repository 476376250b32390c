package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
)

// ImageSurface rasterizes into an in-memory RGBA image. It backs the PNG
// export and gives tests a Surface with observable pixels.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface allocates a surface of the given pixel size.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (s *ImageSurface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *ImageSurface) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// Line rasterizes the segment with Bresenham stepping. The segment is
// clipped to the surface rectangle first; a projection can place endpoints
// arbitrarily far outside it.
func (s *ImageSurface) Line(x0, y0, x1, y1 float64, c color.Color) {
	x0, y0, x1, y1, ok := s.clip(x0, y0, x1, y1)
	if !ok {
		return
	}

	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))

	dx := abs(ix1 - ix0)
	dy := -abs(iy1 - iy0)
	sx, sy := 1, 1
	if ix0 > ix1 {
		sx = -1
	}
	if iy0 > iy1 {
		sy = -1
	}
	e := dx + dy

	for {
		s.img.Set(ix0, iy0, c)
		if ix0 == ix1 && iy0 == iy1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ix0 += sx
		}
		if e2 <= dx {
			e += dx
			iy0 += sy
		}
	}
}

func (s *ImageSurface) FillCircle(cx, cy, r float64, c color.Color) {
	b := s.img.Bounds()
	minX := clampInt(int(math.Floor(cx-r)), 0, b.Dx()-1)
	maxX := clampInt(int(math.Ceil(cx+r)), 0, b.Dx()-1)
	minY := clampInt(int(math.Floor(cy-r)), 0, b.Dy()-1)
	maxY := clampInt(int(math.Ceil(cy+r)), 0, b.Dy()-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r*r {
				s.img.Set(x, y, c)
			}
		}
	}
}

// Image exposes the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// WritePNG encodes the current pixels to w.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// clip truncates the segment to the pixel rectangle with the Liang-Barsky
// parametric test. ok is false when the segment lies fully outside.
func (s *ImageSurface) clip(x0, y0, x1, y1 float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	b := s.img.Bounds()
	maxX := float64(b.Dx() - 1)
	maxY := float64(b.Dy() - 1)
	dx := x1 - x0
	dy := y1 - y0
	t0, t1 := 0.0, 1.0

	for _, e := range [4][2]float64{
		{-dx, x0},
		{dx, maxX - x0},
		{-dy, y0},
		{dy, maxY - y0},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
