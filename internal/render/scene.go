package render

import (
	"image/color"
	"math"

	"github.com/iburimskiy/cipher-visualization/internal/cipher"
	"github.com/iburimskiy/cipher-visualization/internal/geom"
	"github.com/iburimskiy/cipher-visualization/internal/view"
)

const (
	// Wireframe sampling of the carrier torus.
	gridMajorSteps = 24
	gridMinorSteps = 12

	markerRadius = 4.0

	// Marker hue ramps (degrees). Each surface sweeps hueSpan along its
	// point sequence so the character order reads visually.
	hueSpan       = 140.0
	torusHueStart = 160.0
	polyHueStart  = 20.0
)

// Scene palette.
var (
	backgroundColor = color.RGBA{R: 12, G: 14, B: 22, A: 255}
	gridColor       = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	torusLineColor  = color.RGBA{R: 90, G: 170, B: 255, A: 255}
	polyLineColor   = color.RGBA{R: 255, G: 170, B: 90, A: 255}
)

// SceneRenderer projects and draws one frame: reference grid first, then the
// torus surface, then the polynomial surface. Passes always run in that order
// and there is no depth sorting, so later passes paint over earlier ones
// regardless of distance.
type SceneRenderer struct {
	grid [][2]geom.Point3
}

// NewSceneRenderer builds the renderer. The reference grid lives on the
// canonical torus and never changes, so its segments are sampled once here.
func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{grid: torusGrid()}
}

// Frame draws one complete frame through dst using cam for projection.
// Disabled or empty surfaces draw nothing.
func (r *SceneRenderer) Frame(dst Surface, cam *view.Camera, torus, poly []geom.Point3, showTorus, showPoly bool) {
	dst.Clear(backgroundColor)
	w, h := dst.Size()

	for _, seg := range r.grid {
		x0, y0, _ := cam.Project(seg[0], w, h)
		x1, y1, _ := cam.Project(seg[1], w, h)
		dst.Line(x0, y0, x1, y1, gridColor)
	}

	if showTorus {
		drawSurface(dst, cam, w, h, torus, torusLineColor, torusHueStart)
	}
	if showPoly {
		drawSurface(dst, cam, w, h, poly, polyLineColor, polyHueStart)
	}
}

// drawSurface strokes the open polyline through points, then a hue-ramped
// marker per point. The polyline never closes back to the first point.
func drawSurface(dst Surface, cam *view.Camera, w, h float64, points []geom.Point3, line color.Color, hueStart float64) {
	if len(points) == 0 {
		return
	}

	prevX, prevY, _ := cam.Project(points[0], w, h)
	for _, p := range points[1:] {
		x, y, _ := cam.Project(p, w, h)
		dst.Line(prevX, prevY, x, y, line)
		prevX, prevY = x, y
	}

	for i, p := range points {
		x, y, _ := cam.Project(p, w, h)
		hue := hueStart + hueSpan*float64(i)/float64(len(points))
		cr, cg, cb := hsvToRgb(hue, 0.8, 0.95)
		dst.FillCircle(x, y, markerRadius, color.RGBA{R: cr, G: cg, B: cb, A: 255})
	}
}

// torusGrid samples the canonical torus into closed wireframe rings: one
// ring of constant theta per major step, one ring of constant phi per minor
// step. Rings close via the modulo index.
func torusGrid() [][2]geom.Point3 {
	segs := make([][2]geom.Point3, 0, 2*gridMajorSteps*gridMinorSteps)

	for i := 0; i < gridMajorSteps; i++ {
		theta := 2 * math.Pi * float64(i) / gridMajorSteps
		for j := 0; j < gridMinorSteps; j++ {
			phi0 := 2 * math.Pi * float64(j) / gridMinorSteps
			phi1 := 2 * math.Pi * float64((j+1)%gridMinorSteps) / gridMinorSteps
			segs = append(segs, [2]geom.Point3{torusPoint(theta, phi0), torusPoint(theta, phi1)})
		}
	}
	for j := 0; j < gridMinorSteps; j++ {
		phi := 2 * math.Pi * float64(j) / gridMinorSteps
		for i := 0; i < gridMajorSteps; i++ {
			theta0 := 2 * math.Pi * float64(i) / gridMajorSteps
			theta1 := 2 * math.Pi * float64((i+1)%gridMajorSteps) / gridMajorSteps
			segs = append(segs, [2]geom.Point3{torusPoint(theta0, phi), torusPoint(theta1, phi)})
		}
	}
	return segs
}

func torusPoint(theta, phi float64) geom.Point3 {
	ring := cipher.MajorRadius + cipher.MinorRadius*math.Cos(phi)
	return geom.Point3{
		X: ring * math.Cos(theta),
		Y: ring * math.Sin(theta),
		Z: cipher.MinorRadius * math.Sin(phi),
	}
}
