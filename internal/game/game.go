package game

import (
	"bytes"
	"context"
	"image/color"
	"math"

	"github.com/Garsondee/Soccer-Tactics/internal/board"
	"github.com/Garsondee/Soccer-Tactics/internal/config"
	"github.com/Garsondee/Soccer-Tactics/internal/projector"
	"github.com/Garsondee/Soccer-Tactics/internal/source"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// hudScale is the integer upscale factor applied to HUD text.
const hudScale = 2

// orbitStep is the scene rotation per frame while Q or E is held, in radians.
const orbitStep = 0.02

// Game is the Ebiten front end: a 2D board on the left, the 3D scene on the
// right, both reading the session's store.
type Game struct {
	width  int
	height int
	ctx    context.Context
	log    *zap.Logger

	session *Session
	loader  *source.Loader

	camera projector.Camera
	orbit  float64
	zoom   float64

	showHUD  bool
	prevKeys map[ebiten.Key]bool
	tick     int

	// Offscreen buffer for HUD text, rendered at 1x then blitted at hudScale.
	hudBuf *ebiten.Image
	// Offscreen buffer for the inspector panel.
	inspBuf   *ebiten.Image
	inspector Inspector

	scene *sceneRenderer
}

// New builds the front end and starts the first roster load.
func New(ctx context.Context, cfg config.Config, session *Session, loader *source.Loader, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		ctx:      ctx,
		log:      log,
		session:  session,
		loader:   loader,
		camera:   cfg.BuildCamera(),
		zoom:     1,
		showHUD:  true,
		prevKeys: make(map[ebiten.Key]bool),
	}
	g.hudBuf = ebiten.NewImage(g.width/hudScale, g.height/hudScale)
	g.inspBuf = ebiten.NewImage(inspBufW, inspBufH)
	g.scene = newSceneRenderer()
	g.reload()
	return g
}

func (g *Game) Update() error {
	g.tick++
	g.session.SetTick(g.tick)

	if res, ok := g.loader.Poll(); ok {
		g.session.Apply(res)
	}
	g.handleInput()
	return nil
}

// reload starts a background fetch unless one is already running.
func (g *Game) reload() {
	if g.loader.Start(g.ctx) {
		g.session.BeginLoad()
		g.log.Info("roster reload started", zap.String("source", g.loader.Source().String()))
	}
}

// pressed reports a key going down this frame and records it for the next.
func (g *Game) pressed(cur map[ebiten.Key]bool, k ebiten.Key) bool {
	cur[k] = ebiten.IsKeyPressed(k)
	return cur[k] && !g.prevKeys[k]
}

func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}

	if g.pressed(currentKeys, ebiten.KeyR) {
		g.reload()
	}
	if g.pressed(currentKeys, ebiten.KeyF) {
		g.session.CycleFormation()
	}
	if g.pressed(currentKeys, ebiten.KeyB) {
		g.session.CycleBench()
	}
	if g.pressed(currentKeys, ebiten.KeyC) {
		g.copyReport()
	}
	if g.pressed(currentKeys, ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if g.pressed(currentKeys, ebiten.Key0) {
		g.zoom = 1
		g.orbit = 0
	}

	// Scene orbit: held keys.
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.orbit -= orbitStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		g.orbit += orbitStep
	}

	lay := layoutPanels(g.width, g.height)
	mx, my := ebiten.CursorPosition()
	px, py := float64(mx), float64(my)
	overBoard := lay.board.Contains(px, py)

	// Board zoom: mouse wheel over the board, or =/- keys.
	if _, wy := ebiten.Wheel(); wy != 0 && overBoard {
		g.zoom *= math.Pow(zoomStep, wy)
	}
	if g.pressed(currentKeys, ebiten.KeyEqual) {
		g.zoom *= 1.25
	}
	if g.pressed(currentKeys, ebiten.KeyMinus) {
		g.zoom /= 1.25
	}
	g.zoom = clampZoom(g.zoom)

	g.handlePointer(lay.board, px, py, overBoard)
	g.prevKeys = currentKeys
}

// handlePointer feeds mouse events on the board panel to the drag controller.
func (g *Game) handlePointer(panel projector.Rect, px, py float64, over bool) {
	drag := g.session.Drag
	pitch := pitchRect(panel, g.zoom)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && over {
		if id, ok := drag.PointerDown(px, py, pitch); ok {
			g.inspector.selected = id
			g.inspector.active = true
		}
	}

	id, dragging := drag.State().Dragging()
	if !dragging {
		return
	}
	if !over {
		drag.PointerLeave()
		g.session.RecordDrag(id)
		return
	}
	drag.PointerMove(px, py, pitch)
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		drag.PointerUp()
		g.session.RecordDrag(id)
	}
}

// copyReport puts the current layout table on the system clipboard.
func (g *Game) copyReport() {
	var buf bytes.Buffer
	if err := board.WriteReport(&buf, g.session.Store); err != nil {
		g.log.Warn("building report", zap.Error(err))
		return
	}
	if err := clipboard.WriteAll(buf.String()); err != nil {
		g.log.Warn("clipboard unavailable", zap.Error(err))
		g.session.Activity.Add(g.tick, "--", ActivityError, "clipboard unavailable")
		return
	}
	g.session.Activity.Add(g.tick, "--", ActivityLayout, "report copied")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 12, A: 255})

	lay := layoutPanels(g.width, g.height)
	g.drawHeader(screen)
	g.drawBoard(screen, lay.board)
	g.drawScene(screen, lay.scene)
	g.session.Activity.Draw(screen, lay.logX, headerHeight, g.height-headerHeight)

	if g.showHUD {
		g.drawHUD(screen)
	}
	g.drawInspector(screen, lay.board)
}

// sceneCamera is the configured camera orbited by the user and fitted to panel.
func (g *Game) sceneCamera(panel projector.Rect) projector.Camera {
	cam := g.camera.Orbit(g.orbit)
	cam.Viewport = panel
	return cam
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
