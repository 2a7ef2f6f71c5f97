package game

import (
	"image"
	"image/color"

	"github.com/Garsondee/Soccer-Tactics/internal/board"
	"github.com/Garsondee/Soccer-Tactics/internal/layout"
	"github.com/Garsondee/Soccer-Tactics/internal/projector"
	"github.com/Garsondee/Soccer-Tactics/internal/roster"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Bench zone extent in board units.
const (
	benchLeft  = 105.0
	benchRight = 125.0
)

var (
	labelFace = text.NewGoXFace(basicfont.Face7x13)

	boardBg     = color.RGBA{R: 22, G: 46, B: 28, A: 255}
	pitchGreen  = color.RGBA{R: 40, G: 110, B: 55, A: 255}
	pitchLine   = color.RGBA{R: 230, G: 240, B: 230, A: 220}
	gridLine    = color.RGBA{R: 255, G: 255, B: 255, A: 18}
	benchLine   = color.RGBA{R: 180, G: 200, B: 180, A: 160}
	dragRing    = color.RGBA{R: 255, G: 235, B: 90, A: 255}
	markerEdge  = color.RGBA{R: 255, G: 255, B: 255, A: 230}
	panelBorder = color.RGBA{R: 65, G: 90, B: 65, A: 255}
)

// drawLabel draws s centred on (x, y).
func drawLabel(dst *ebiten.Image, s string, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, labelFace, op)
}

// subImage clips dst to r.
func subImage(dst *ebiten.Image, r projector.Rect) *ebiten.Image {
	return dst.SubImage(image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))).(*ebiten.Image)
}

// drawBoard renders the 2D tactics board into panel.
func (g *Game) drawBoard(screen *ebiten.Image, panel projector.Rect) {
	dst := subImage(screen, panel)
	vector.FillRect(dst, float32(panel.X), float32(panel.Y), float32(panel.W), float32(panel.H), boardBg, false)

	pitch := pitchRect(panel, g.zoom)
	drawPitch(dst, pitch)
	drawBenchZone(dst, pitch)

	state := g.session.Drag.State()
	g.session.Store.Each(func(e roster.Entity) {
		sx, sy := projector.BoardToScreen(e.X, e.Y, pitch)
		drawMarker(dst, e, float32(sx), float32(sy), g.session.Palette, state.Is(e.ID))
	})

	vector.StrokeRect(screen, float32(panel.X)-1, float32(panel.Y)-1, float32(panel.W)+2, float32(panel.H)+2, 2.0, panelBorder, false)
}

// drawPitch fills the playing area and draws its markings.
func drawPitch(dst *ebiten.Image, pitch projector.Rect) {
	x, y, w, h := float32(pitch.X), float32(pitch.Y), float32(pitch.W), float32(pitch.H)
	vector.FillRect(dst, x, y, w, h, pitchGreen, false)

	// Grid every 10 board units.
	for i := 1; i < 10; i++ {
		gx := x + w*float32(i)/10
		gy := y + h*float32(i)/10
		vector.StrokeLine(dst, gx, y, gx, y+h, 1.0, gridLine, false)
		vector.StrokeLine(dst, x, gy, x+w, gy, 1.0, gridLine, false)
	}

	vector.StrokeRect(dst, x, y, w, h, 2.0, pitchLine, true)
	vector.StrokeLine(dst, x+w/2, y, x+w/2, y+h, 2.0, pitchLine, true)
	vector.StrokeCircle(dst, x+w/2, y+h/2, w*0.0915, 2.0, pitchLine, true)
	vector.FillCircle(dst, x+w/2, y+h/2, 3, pitchLine, true)

	// Penalty areas: 16.5 deep, 60 wide in board units.
	bw, bh := w*0.165, h*0.6
	by := y + (h-bh)/2
	vector.StrokeRect(dst, x, by, bw, bh, 2.0, pitchLine, true)
	vector.StrokeRect(dst, x+w-bw, by, bw, bh, 2.0, pitchLine, true)

	// Goals.
	gh := h * 0.12
	gy := y + (h-gh)/2
	vector.FillRect(dst, x-6, gy, 6, gh, pitchLine, false)
	vector.FillRect(dst, x+w, gy, 6, gh, pitchLine, false)
}

// drawBenchZone outlines the substitutes' area right of the pitch.
func drawBenchZone(dst *ebiten.Image, pitch projector.Rect) {
	x0, y0 := projector.BoardToScreen(benchLeft, 0, pitch)
	x1, y1 := projector.BoardToScreen(benchRight, 100, pitch)
	dashedRect(dst, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), benchLine)
	drawLabel(dst, "BENCH", (x0+x1)/2, y0-10, benchLine)
}

func dashedRect(dst *ebiten.Image, x, y, w, h float32, col color.Color) {
	dashedLine(dst, x, y, x+w, y, col)
	dashedLine(dst, x, y+h, x+w, y+h, col)
	dashedLine(dst, x, y, x, y+h, col)
	dashedLine(dst, x+w, y, x+w, y+h, col)
}

// dashedLine draws an axis-aligned dashed line.
func dashedLine(dst *ebiten.Image, x0, y0, x1, y1 float32, col color.Color) {
	const dash, gap = 6, 4
	if y0 == y1 {
		for x := x0; x < x1; x += dash + gap {
			vector.StrokeLine(dst, x, y0, min(x+dash, x1), y0, 1.5, col, false)
		}
		return
	}
	for y := y0; y < y1; y += dash + gap {
		vector.StrokeLine(dst, x0, y, x0, min(y+dash, y1), 1.5, col, false)
	}
}

// drawMarker draws a player disc with its number and name, or the ball.
// Markers keep a fixed pixel size at every zoom level.
func drawMarker(dst *ebiten.Image, e roster.Entity, sx, sy float32, pal layout.Palette, dragged bool) {
	col := pal.Color(e.Class)
	if e.IsBall() {
		vector.FillCircle(dst, sx, sy, board.BallRadius, col, true)
		vector.StrokeCircle(dst, sx, sy, board.BallRadius, 1.5, color.RGBA{A: 200}, true)
		if dragged {
			vector.StrokeCircle(dst, sx, sy, board.BallRadius+4, 2.0, dragRing, true)
		}
		return
	}

	r := float32(board.PlayerRadius)
	// Drop shadow.
	vector.FillCircle(dst, sx+2, sy+2, r, color.RGBA{A: 90}, true)
	vector.FillCircle(dst, sx, sy, r, col, true)
	vector.StrokeCircle(dst, sx, sy, r, 1.5, markerEdge, true)
	if dragged {
		vector.StrokeCircle(dst, sx, sy, r+4, 2.0, dragRing, true)
	}
	drawLabel(dst, e.Number, float64(sx), float64(sy), layout.Shade(col, 0.8))
	drawLabel(dst, e.Name, float64(sx), float64(sy+r+9), color.White)
}
