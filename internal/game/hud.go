package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var stateColors = map[LoadState]color.RGBA{
	StateLoading: {R: 200, G: 200, B: 90, A: 255},
	StateLoaded:  {R: 90, G: 190, B: 110, A: 255},
	StateEmpty:   {R: 230, G: 150, B: 60, A: 255},
	StateFailed:  {R: 230, G: 80, B: 70, A: 255},
}

// drawHeader renders the status strip across the top of the window.
func (g *Game) drawHeader(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(g.width), headerHeight, color.RGBA{R: 20, G: 24, B: 20, A: 255}, false)
	vector.StrokeLine(screen, 0, headerHeight, float32(g.width), headerHeight, 1.0, panelBorder, false)

	st := g.session.State()
	vector.FillCircle(screen, 14, headerHeight/2, 5, stateColors[st], true)
	line := fmt.Sprintf("%s  |  formation %s  bench %s  |  zoom %.1fx",
		g.session.Status(), g.session.Formation(), g.session.BenchPolicy(), g.zoom)
	ebitenutil.DebugPrintAt(screen, line, 26, 7)
}

// drawHUD renders the key legend. Text is drawn into hudBuf at 1x then
// composited onto the screen at hudScale.
func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := []string{
		"drag markers to reposition",
		"[R] reload roster",
		fmt.Sprintf("[F] formation: %s", g.session.Formation()),
		fmt.Sprintf("[B] bench: %s", g.session.BenchPolicy()),
		"[C] copy layout",
		"scroll or =/- zoom  [0] reset",
		"[Q]/[E] orbit 3D view",
		"[H] toggle HUD",
	}

	const lineH = 12 // debug font line height at 1x
	const charW = 6  // debug font char width at 1x
	const padX = 5
	const padY = 4

	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := float32(maxLen*charW + padX*2)
	boxH := float32(len(lines)*lineH + padY*2)

	// Bottom-left of the board panel, in unscaled coordinates.
	bufH := float32(g.height / hudScale)
	bx := float32(borderWidth/hudScale + 4)
	by := bufH - boxH - float32(borderWidth/hudScale) - 4

	g.hudBuf.Clear()
	vector.FillRect(g.hudBuf, bx, by, boxW, boxH, color.RGBA{R: 6, G: 10, B: 6, A: 200}, false)
	vector.StrokeRect(g.hudBuf, bx, by, boxW, boxH, 1.0, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)
	vector.StrokeLine(g.hudBuf, bx+1, by+1, bx+boxW-1, by+1, 1.0, color.RGBA{R: 80, G: 140, B: 80, A: 80}, false)

	for i, line := range lines {
		ebitenutil.DebugPrintAt(g.hudBuf, line, int(bx)+padX, int(by)+padY+i*lineH)
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(hudScale), float64(hudScale))
	screen.DrawImage(g.hudBuf, opts)
}
