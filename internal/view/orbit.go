package view

import "math"

// PointerKind discriminates the pointer actions Orbit reacts to.
type PointerKind uint8

const (
	PointerPress PointerKind = iota
	PointerMove
	PointerRelease
	PointerLeave
)

// PointerEvent is a single pointer action at surface coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

const (
	dragSpeed  = 0.005
	pitchLimit = math.Pi/2 - 0.1
)

// Orbit turns pointer drags into camera rotation. It has two states, idle
// and dragging: press records the pointer position and starts a drag, moves
// while dragging apply the position delta to the camera, release or leaving
// the surface ends the drag. Moves while idle are ignored, as is a second
// press during a drag (it only re-anchors the reference position).
type Orbit struct {
	dragging     bool
	lastX, lastY float64
}

// Handle feeds one pointer event through the state machine, mutating cam
// when a drag is in progress. Horizontal motion spins the scene around the
// vertical axis, vertical motion tilts it; the tilt is clamped short of
// straight up and straight down so the view cannot flip over the pole.
func (o *Orbit) Handle(ev PointerEvent, cam *Camera) {
	switch ev.Kind {
	case PointerPress:
		o.dragging = true
		o.lastX, o.lastY = ev.X, ev.Y
	case PointerMove:
		if !o.dragging {
			return
		}
		cam.RotY += (ev.X - o.lastX) * dragSpeed
		cam.RotX += (ev.Y - o.lastY) * dragSpeed
		if cam.RotX > pitchLimit {
			cam.RotX = pitchLimit
		} else if cam.RotX < -pitchLimit {
			cam.RotX = -pitchLimit
		}
		o.lastX, o.lastY = ev.X, ev.Y
	case PointerRelease, PointerLeave:
		o.dragging = false
	}
}

// Dragging reports whether a drag is in progress.
func (o *Orbit) Dragging() bool {
	return o.dragging
}
