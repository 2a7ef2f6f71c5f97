package game

import "github.com/Garsondee/Soccer-Tactics/internal/projector"

// Window layout in screen pixels.
const (
	borderWidth  = 16
	headerHeight = 28
)

// Pitch geometry inside the board panel.
const (
	pitchAspect = 0.7  // height / width
	pitchFill   = 0.7  // pitch width as a share of the panel width
	pitchInset  = 0.06 // left margin as a share of the panel width
	zoomMin     = 0.5
	zoomMax     = 3.0
	zoomStep    = 1.12
)

// panels is the screen split: 2D board, 3D scene, activity log.
type panels struct {
	board projector.Rect
	scene projector.Rect
	logX  int
}

// layoutPanels divides a w x h window. The activity log takes a fixed strip
// on the right; the board and scene share the rest equally.
func layoutPanels(w, h int) panels {
	avail := float64(w - logPanelWidth - 3*borderWidth)
	pw := avail / 2
	top := float64(headerHeight + borderWidth)
	ph := float64(h) - top - borderWidth
	if pw < 0 {
		pw = 0
	}
	if ph < 0 {
		ph = 0
	}
	return panels{
		board: projector.Rect{X: borderWidth, Y: top, W: pw, H: ph},
		scene: projector.Rect{X: 2*borderWidth + pw, Y: top, W: pw, H: ph},
		logX:  w - logPanelWidth,
	}
}

// pitchRect is the on-screen pitch inside panel at the given zoom. Zoom
// scales about the panel centre, so the returned rectangle is what pointer
// coordinates must be measured against.
func pitchRect(panel projector.Rect, zoom float64) projector.Rect {
	pw := panel.W * pitchFill
	ph := pw * pitchAspect
	if maxH := panel.H * 0.9; ph > maxH {
		ph = maxH
		pw = ph / pitchAspect
	}
	x := panel.X + panel.W*pitchInset
	y := panel.Y + (panel.H-ph)/2

	cx := panel.X + panel.W/2
	cy := panel.Y + panel.H/2
	return projector.Rect{
		X: cx + (x-cx)*zoom,
		Y: cy + (y-cy)*zoom,
		W: pw * zoom,
		H: ph * zoom,
	}
}

func clampZoom(z float64) float64 {
	if z < zoomMin {
		return zoomMin
	}
	if z > zoomMax {
		return zoomMax
	}
	return z
}
