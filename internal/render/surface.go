// Package render draws the encrypted point surfaces: a fixed reference
// wireframe of the carrier torus, plus a connected polyline and per-point
// markers for each enabled surface. Drawing goes through the Surface
// interface so the same renderer serves the window and the PNG exporter.
package render

import "image/color"

// Surface is the pixel target the renderer draws through.
type Surface interface {
	// Size returns the drawable area in pixels.
	Size() (width, height float64)
	// Clear fills the whole surface with c.
	Clear(c color.Color)
	// Line strokes a thin segment from (x0, y0) to (x1, y1).
	Line(x0, y0, x1, y1 float64, c color.Color)
	// FillCircle fills a disc of radius r centered on (cx, cy).
	FillCircle(cx, cy, r float64, c color.Color)
}
