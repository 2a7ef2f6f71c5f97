package game

import (
	"image"
	"image/color"
	"math"

	"github.com/Garsondee/Soccer-Tactics/internal/layout"
	"github.com/Garsondee/Soccer-Tactics/internal/projector"
	"github.com/Garsondee/Soccer-Tactics/internal/scene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r3"
)

const circleSize = 64

var (
	skyTop     = color.RGBA{R: 18, G: 24, B: 34, A: 255}
	groundCol  = color.RGBA{R: 38, G: 104, B: 52, A: 255}
	benchFloor = color.RGBA{R: 52, G: 62, B: 56, A: 255}
)

// sceneRenderer draws scene props with 2D primitives: discs and spheres are
// scaled circle sprites, pillars are rectangles.
type sceneRenderer struct {
	dst    *ebiten.Image
	cam    projector.Camera
	circle *ebiten.Image
	white  *ebiten.Image
}

func newSceneRenderer() *sceneRenderer {
	return &sceneRenderer{}
}

// begin targets dst for one frame. Sprites are created on first use, inside
// the game loop.
func (r *sceneRenderer) begin(dst *ebiten.Image, cam projector.Camera) {
	if r.circle == nil {
		r.circle = ebiten.NewImage(circleSize, circleSize)
		vector.FillCircle(r.circle, circleSize/2, circleSize/2, circleSize/2, color.White, true)
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	r.dst = dst
	r.cam = cam
}

func (r *sceneRenderer) ellipse(cx, cy, rx, ry float64, col color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2*rx/circleSize, 2*ry/circleSize)
	op.GeoM.Translate(cx-rx, cy-ry)
	op.ColorScale.ScaleWithColor(col)
	op.Filter = ebiten.FilterLinear
	r.dst.DrawImage(r.circle, op)
}

// quad fills the projection of four world points. Nothing is drawn if any
// corner is behind the camera.
func (r *sceneRenderer) quad(pts [4]r3.Vec, col color.RGBA) {
	var vs [4]ebiten.Vertex
	cr, cg, cb, ca := float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255
	for i, p := range pts {
		sx, sy, _, ok := r.cam.Project(p)
		if !ok {
			return
		}
		vs[i] = ebiten.Vertex{
			DstX: float32(sx), DstY: float32(sy),
			SrcX: 1.5, SrcY: 1.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	r.dst.DrawTriangles(vs[:], []uint16{0, 1, 2, 0, 2, 3}, r.white, nil)
}

// line draws a world-space segment.
func (r *sceneRenderer) line(a, b r3.Vec, width float32, col color.Color) {
	ax, ay, _, okA := r.cam.Project(a)
	bx, by, _, okB := r.cam.Project(b)
	if !okA || !okB {
		return
	}
	vector.StrokeLine(r.dst, float32(ax), float32(ay), float32(bx), float32(by), width, col, true)
}

// drawGround lays out the pitch, its markings and the bench strip.
func (r *sceneRenderer) drawGround(proj projector.Projector) {
	at := func(x, y float64) r3.Vec { return proj.BoardToWorld(x, y) }

	r.quad([4]r3.Vec{at(0, 0), at(100, 0), at(100, 100), at(0, 100)}, groundCol)
	r.quad([4]r3.Vec{at(benchLeft, 0), at(benchRight, 0), at(benchRight, 100), at(benchLeft, 100)}, benchFloor)

	for i := 10; i < 100; i += 10 {
		f := float64(i)
		r.line(at(f, 0), at(f, 100), 1, gridLine)
		r.line(at(0, f), at(100, f), 1, gridLine)
	}

	outline := [][2]float64{{0, 0}, {100, 0}, {100, 100}, {0, 100}, {0, 0}}
	for i := 1; i < len(outline); i++ {
		a, b := outline[i-1], outline[i]
		r.line(at(a[0], a[1]), at(b[0], b[1]), 2, pitchLine)
	}
	r.line(at(50, 0), at(50, 100), 2, pitchLine)

	// Centre circle as a polyline in board space.
	const segs = 32
	radius := 9.15
	for i := 0; i < segs; i++ {
		t0 := 2 * math.Pi * float64(i) / segs
		t1 := 2 * math.Pi * float64(i+1) / segs
		r.line(
			at(50+radius*math.Cos(t0), 50+radius*math.Sin(t0)/pitchAspect),
			at(50+radius*math.Cos(t1), 50+radius*math.Sin(t1)/pitchAspect),
			2, pitchLine)
	}
}

// DrawProp implements scene.Renderer.
func (r *sceneRenderer) DrawProp(p scene.Prop) {
	switch p.Shape {
	case scene.ShapeSphere:
		r.drawSphere(p)
	default:
		r.drawPlayer(p)
	}
}

// discAxes returns the screen half-axes of a horizontal disc of radius
// rad centred on c.
func (r *sceneRenderer) discAxes(c r3.Vec, rad float64) (sx, sy, rx, ry float64, ok bool) {
	sx, sy, depth, ok := r.cam.Project(c)
	if !ok {
		return 0, 0, 0, 0, false
	}
	rx = rad * r.cam.PixelsPerUnit(depth)
	_, nearY, _, okN := r.cam.Project(r3.Add(c, r3.Vec{Z: rad}))
	_, farY, _, okF := r.cam.Project(r3.Sub(c, r3.Vec{Z: rad}))
	if okN && okF {
		ry = math.Abs(nearY-farY) / 2
	}
	if ry < 1 {
		ry = 1
	}
	return sx, sy, rx, ry, true
}

func (r *sceneRenderer) drawPlayer(p scene.Prop) {
	base := p.World
	sx, sy, rx, ry, ok := r.discAxes(base, scene.DiscRadius)
	if !ok {
		return
	}
	// Shadow, disc side, disc top.
	r.ellipse(sx+2, sy+2, rx, ry, color.RGBA{A: 80})
	r.ellipse(sx, sy, rx, ry, layout.Shade(p.Color, 0.45))
	top := r3.Add(base, r3.Vec{Y: scene.DiscHeight})
	tx, ty, trx, try, ok := r.discAxes(top, scene.DiscRadius)
	if ok {
		r.ellipse(tx, ty, trx, try, p.Color)
	}

	// Pillar.
	head := r3.Add(base, r3.Vec{Y: scene.DiscHeight + scene.PillarHeight})
	hx, hy, prx, pry, okH := r.discAxes(head, scene.PillarRadius)
	if okH && ok {
		vector.FillRect(r.dst, float32(hx-prx), float32(hy), float32(2*prx), float32(ty-hy), layout.Shade(p.Color, 0.2), true)
		r.ellipse(hx, hy, prx, pry, p.Color)
	}

	lx, ly, _, okL := r.cam.Project(r3.Add(base, r3.Vec{Y: scene.LabelHeight}))
	if okL {
		drawLabel(r.dst, p.Label, lx, ly, color.White)
		drawLabel(r.dst, p.Number, lx, ly-13, p.Color)
	}
}

func (r *sceneRenderer) drawSphere(p scene.Prop) {
	centre := r3.Add(p.World, r3.Vec{Y: scene.BallRadius})
	sx, sy, depth, ok := r.cam.Project(centre)
	if !ok {
		return
	}
	rad := scene.BallRadius * r.cam.PixelsPerUnit(depth)
	gx, gy, grx, gry, okG := r.discAxes(p.World, scene.BallRadius)
	if okG {
		r.ellipse(gx+1, gy+1, grx, gry, color.RGBA{A: 90})
	}
	r.ellipse(sx, sy, rad, rad, layout.Shade(p.Color, 0.25))
	r.ellipse(sx-rad*0.15, sy-rad*0.15, rad*0.8, rad*0.8, p.Color)
}

// drawScene renders the 3D view into panel.
func (g *Game) drawScene(screen *ebiten.Image, panel projector.Rect) {
	dst := subImage(screen, panel)
	vector.FillRect(dst, float32(panel.X), float32(panel.Y), float32(panel.W), float32(panel.H), skyTop, false)

	cam := g.sceneCamera(panel)
	g.scene.begin(dst, cam)
	g.scene.drawGround(g.session.Proj)
	g.session.Scene.Render(g.scene, cam)

	ebitenutil.DebugPrintAt(screen, "3D view  Q/E orbit", int(panel.X)+6, int(panel.Y)+4)
	vector.StrokeRect(screen, float32(panel.X)-1, float32(panel.Y)-1, float32(panel.W)+2, float32(panel.H)+2, 2.0, panelBorder, false)
}
