// Package view holds the orbit camera: rotation state, the fixed perspective
// projection, and the pointer-drag controller that drives it.
package view

import (
	"math"

	"github.com/iburimskiy/cipher-visualization/internal/geom"
)

// Projection constants. The camera itself never moves; the scene is rotated
// in front of it and pushed Distance units down the view axis.
const (
	Distance   = 10.0
	PixelScale = 120.0
)

// Default orbit angles, chosen so the torus reads three-quarter on at startup.
const (
	DefaultRotX = 0.4
	DefaultRotY = 0.6
)

// Camera is the orbit rotation applied to every point before projection.
// It is a plain value owned by whoever drives the frame loop; Orbit is its
// only writer and Project its only reader.
type Camera struct {
	RotX, RotY float64
}

// NewCamera returns a camera at the default view angles.
func NewCamera() *Camera {
	return &Camera{RotX: DefaultRotX, RotY: DefaultRotY}
}

// Project rotates p around the X axis then the Y axis, translates it away
// from the camera, and applies a pinhole perspective divide. It returns
// surface coordinates centered on (width/2, height/2) with y growing
// downward, plus the camera-space depth.
//
// There is no near-plane clamp: a point whose depth approaches zero projects
// arbitrarily far off-surface.
func (c *Camera) Project(p geom.Point3, width, height float64) (sx, sy, depth float64) {
	cosX, sinX := math.Cos(c.RotX), math.Sin(c.RotX)
	cosY, sinY := math.Cos(c.RotY), math.Sin(c.RotY)

	y1 := p.Y*cosX - p.Z*sinX
	z1 := p.Y*sinX + p.Z*cosX
	x2 := p.X*cosY + z1*sinY
	z2 := -p.X*sinY + z1*cosY

	zCam := z2 + Distance
	scale := Distance / zCam
	sx = x2*scale*PixelScale + width/2
	sy = -y1*scale*PixelScale + height/2
	return sx, sy, zCam
}
