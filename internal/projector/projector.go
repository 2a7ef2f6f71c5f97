// Package projector maps between normalized board coordinates, 3D world space
// and screen pixels. Everything here is pure arithmetic on value types.
package projector

import "gonum.org/v1/gonum/spatial/r3"

// Rect is a screen-space rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (px, py) lies inside r.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Projector converts board percentages to world units. The pitch is centered
// on the world origin and its depth axis is squashed by DepthScale so a
// 100x100 board becomes a 100x70 pitch.
type Projector struct {
	Center     float64
	DepthScale float64
}

// Default matches a 100x70 pitch.
func Default() Projector {
	return Projector{Center: 50, DepthScale: 0.7}
}

// BoardToWorld places board (x, y) on the ground plane (world Y = 0).
func (p Projector) BoardToWorld(x, y float64) r3.Vec {
	return r3.Vec{
		X: x - p.Center,
		Y: 0,
		Z: (y - p.Center) * p.DepthScale,
	}
}

// WorldToBoard is the inverse of BoardToWorld; world Y is ignored.
func (p Projector) WorldToBoard(v r3.Vec) (x, y float64) {
	scale := p.DepthScale
	if scale == 0 {
		scale = 1
	}
	return v.X + p.Center, v.Z/scale + p.Center
}

// ScreenToBoard converts a pointer position to board percentages relative to
// the rendered pitch rectangle. pitch must be the on-screen rectangle after
// any zoom has been applied, not the enclosing panel.
func ScreenToBoard(px, py float64, pitch Rect) (x, y float64) {
	if pitch.W == 0 || pitch.H == 0 {
		return 0, 0
	}
	return (px - pitch.X) / pitch.W * 100, (py - pitch.Y) / pitch.H * 100
}

// BoardToScreen is the inverse of ScreenToBoard.
func BoardToScreen(x, y float64, pitch Rect) (px, py float64) {
	return pitch.X + x/100*pitch.W, pitch.Y + y/100*pitch.H
}
