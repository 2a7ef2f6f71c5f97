package projector

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// nearPlane is the minimum view depth a point needs to be drawn.
const nearPlane = 0.1

// Camera is a perspective look-at camera rendering into Viewport.
type Camera struct {
	Eye      r3.Vec
	Target   r3.Vec
	FOV      float64 // vertical field of view, degrees
	Viewport Rect
}

// DefaultCamera looks down at the pitch from behind the near touchline.
func DefaultCamera() Camera {
	return Camera{
		Eye:    r3.Vec{X: 0, Y: 60, Z: 50},
		Target: r3.Vec{},
		FOV:    45,
	}
}

// minAxis is the smallest view-axis length, and the smallest sine between
// the view axis and vertical, for which the look-at basis is defined.
const minAxis = 1e-6

// Degenerate reports whether the camera has no usable orientation: the eye
// sits on the target or on the vertical line through it.
func (c Camera) Degenerate() bool {
	d := r3.Sub(c.Target, c.Eye)
	n := r3.Norm(d)
	if n < minAxis {
		return true
	}
	return r3.Norm(r3.Cross(r3.Scale(1/n, d), r3.Vec{Y: 1})) < minAxis
}

// basis returns the camera's right, up and forward unit vectors.
func (c Camera) basis() (right, up, fwd r3.Vec) {
	fwd = r3.Unit(r3.Sub(c.Target, c.Eye))
	right = r3.Unit(r3.Cross(fwd, r3.Vec{Y: 1}))
	up = r3.Cross(right, fwd)
	return right, up, fwd
}

// focal is the distance in pixels at which one world unit spans one pixel.
func (c Camera) focal() float64 {
	return (c.Viewport.H / 2) / math.Tan(c.FOV*math.Pi/360)
}

// Project maps a world point to viewport pixels. depth is the distance along
// the view axis; ok is false when the point is behind the near plane or the
// camera is degenerate.
func (c Camera) Project(p r3.Vec) (sx, sy, depth float64, ok bool) {
	if c.Degenerate() {
		return 0, 0, 0, false
	}
	right, up, fwd := c.basis()
	d := r3.Sub(p, c.Eye)
	depth = r3.Dot(d, fwd)
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	f := c.focal() / depth
	sx = c.Viewport.X + c.Viewport.W/2 + r3.Dot(d, right)*f
	sy = c.Viewport.Y + c.Viewport.H/2 - r3.Dot(d, up)*f
	return sx, sy, depth, true
}

// PixelsPerUnit is the on-screen size of one world unit at depth.
func (c Camera) PixelsPerUnit(depth float64) float64 {
	if depth < nearPlane {
		depth = nearPlane
	}
	return c.focal() / depth
}

// Orbit returns the camera with its eye rotated about the vertical axis
// through Target by angle radians.
func (c Camera) Orbit(angle float64) Camera {
	rot := r3.NewRotation(angle, r3.Vec{Y: 1})
	c.Eye = r3.Add(c.Target, rot.Rotate(r3.Sub(c.Eye, c.Target)))
	return c
}
