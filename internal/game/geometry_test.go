package game

import (
	"testing"

	"github.com/Garsondee/Soccer-Tactics/internal/projector"
)

func TestLayoutPanels_Split(t *testing.T) {
	p := layoutPanels(1600, 900)
	if p.board.W != p.scene.W || p.board.W <= 0 {
		t.Fatalf("board and scene should share width: %+v", p)
	}
	if p.scene.X+p.scene.W > float64(p.logX) {
		t.Fatalf("scene overlaps the log panel: %+v", p)
	}
	if p.board.Y != float64(headerHeight+borderWidth) {
		t.Fatalf("panels should sit below the header: %+v", p.board)
	}
}

func TestPitchRect_BenchFitsAtDefaultZoom(t *testing.T) {
	panel := layoutPanels(1600, 900).board
	pitch := pitchRect(panel, 1)
	bx, _ := projector.BoardToScreen(benchRight, 0, pitch)
	if bx > panel.X+panel.W {
		t.Fatalf("bench edge %.1f past panel edge %.1f", bx, panel.X+panel.W)
	}
	if pitch.H/pitch.W < pitchAspect-1e-9 || pitch.H/pitch.W > pitchAspect+1e-9 {
		t.Fatalf("aspect %.3f", pitch.H/pitch.W)
	}
}

func TestPitchRect_ZoomAboutCentre(t *testing.T) {
	panel := projector.Rect{X: 0, Y: 0, W: 600, H: 800}
	a := pitchRect(panel, 1)
	b := pitchRect(panel, 2)
	if b.W != 2*a.W || b.H != 2*a.H {
		t.Fatalf("zoom should scale size: %+v -> %+v", a, b)
	}
	// The panel centre maps to the same board point at every zoom.
	ax, ay := projector.ScreenToBoard(300, 400, a)
	bx, by := projector.ScreenToBoard(300, 400, b)
	if !near(ax, bx) || !near(ay, by) {
		t.Fatalf("centre drifted: (%.3f,%.3f) vs (%.3f,%.3f)", ax, ay, bx, by)
	}
}

func TestClampZoom(t *testing.T) {
	if clampZoom(0.1) != zoomMin || clampZoom(10) != zoomMax || clampZoom(1.5) != 1.5 {
		t.Fatal("clampZoom bounds")
	}
}

func TestInspectorLines(t *testing.T) {
	h := newHarness(t)
	e, _ := h.Entity("0")
	lines := inspectorLines(e, true)
	if lines[0] != "[ Aoki ]" {
		t.Fatalf("title %q", lines[0])
	}
	if got := lines[len(lines)-1]; got != "zone   pitch  dragging" {
		t.Fatalf("last line %q", got)
	}
	ball, _ := h.Entity("ball")
	if len(inspectorLines(ball, false)) >= len(lines) {
		t.Fatal("ball panel should omit player fields")
	}
}
