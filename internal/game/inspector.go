package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Soccer-Tactics/internal/board"
	"github.com/Garsondee/Soccer-Tactics/internal/projector"
	"github.com/Garsondee/Soccer-Tactics/internal/roster"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Inspector panel, rendered into an offscreen buffer at 1x then blitted at inspScale.
const (
	inspScale = 2
	inspBufW  = 170
	inspBufH  = 118
	inspPad   = 4
	inspLineH = 13
)

// Inspector remembers the last entity picked up on the board.
type Inspector struct {
	selected roster.ID
	active   bool
}

// inspectorLines describes e for the panel.
func inspectorLines(e roster.Entity, dragging bool) []string {
	state := "resting"
	if dragging {
		state = "dragging"
	}
	lines := []string{
		fmt.Sprintf("[ %s ]", e.Name),
		fmt.Sprintf("id     %s", e.ID),
	}
	if !e.IsBall() {
		lines = append(lines,
			fmt.Sprintf("number %s", e.Number),
			fmt.Sprintf("role   %s", e.Role),
			fmt.Sprintf("class  %s", e.Class),
		)
	}
	return append(lines,
		fmt.Sprintf("pos    %.1f, %.1f", e.X, e.Y),
		fmt.Sprintf("zone   %s  %s", board.Zone(e), state),
	)
}

// drawInspector shows the selected entity in the top-right corner of the
// board panel. A roster reload that drops the entity hides the panel.
func (g *Game) drawInspector(screen *ebiten.Image, panel projector.Rect) {
	if !g.inspector.active {
		return
	}
	e, ok := g.session.Store.Get(g.inspector.selected)
	if !ok {
		g.inspector.active = false
		return
	}

	buf := g.inspBuf
	buf.Clear()
	bw, bh := float32(inspBufW), float32(inspBufH)
	border := color.RGBA{R: 55, G: 80, B: 55, A: 255}
	vector.FillRect(buf, 0, 0, bw, bh, color.RGBA{R: 14, G: 16, B: 14, A: 230}, false)
	vector.StrokeRect(buf, 0, 0, bw, bh, 1.0, border, false)
	vector.FillRect(buf, 1, 1, 4, bh-2, g.session.Palette.Color(e.Class), false)

	ly := inspPad
	for i, line := range inspectorLines(e, g.session.Drag.State().Is(e.ID)) {
		ebitenutil.DebugPrintAt(buf, line, inspPad+6, ly)
		ly += inspLineH
		if i == 0 {
			vector.StrokeLine(buf, inspPad, float32(ly), bw-inspPad, float32(ly), 1.0, border, false)
			ly += 3
		}
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(inspScale, inspScale)
	opts.GeoM.Translate(panel.X+panel.W-inspBufW*inspScale-8, panel.Y+8)
	screen.DrawImage(buf, opts)
}
