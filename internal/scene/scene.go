// Package scene derives 3D props from the shared layout state. It keeps no
// positions of its own; every prop is rebuilt from the store after a change.
package scene

import (
	"image/color"
	"sort"

	"github.com/Garsondee/Soccer-Tactics/internal/board"
	"github.com/Garsondee/Soccer-Tactics/internal/layout"
	"github.com/Garsondee/Soccer-Tactics/internal/projector"
	"github.com/Garsondee/Soccer-Tactics/internal/roster"
	"gonum.org/v1/gonum/spatial/r3"
)

// Shape selects the primitive a prop is drawn with.
type Shape int

const (
	ShapeDiscPillar Shape = iota // player: base disc plus a pillar
	ShapeSphere                  // ball
)

// Prop dimensions in world units.
const (
	DiscRadius   = 1.5
	DiscHeight   = 0.5
	PillarRadius = 0.5
	PillarHeight = 3.0
	BallRadius   = 0.8
	LabelHeight  = 5.0
)

// Prop is one positioned primitive with a label.
type Prop struct {
	ID     roster.ID
	Shape  Shape
	World  r3.Vec // ground contact point
	Color  color.RGBA
	Label  string
	Number string
}

// Renderer is the capability the scene needs from a 3D backend: place a
// coloured primitive with a label at a world position.
type Renderer interface {
	DrawProp(p Prop)
}

// Model is a read-only consumer of a board.Store.
type Model struct {
	store   *board.Store
	proj    projector.Projector
	palette layout.Palette
	cancel  func()

	dirty   bool
	props   []Prop
	rebuilt int
}

// NewModel subscribes to store. Call Close to unsubscribe.
func NewModel(store *board.Store, proj projector.Projector, palette layout.Palette) *Model {
	m := &Model{store: store, proj: proj, palette: palette, dirty: true}
	m.cancel = store.Subscribe(func(board.Change) { m.dirty = true })
	return m
}

// Close stops change notifications.
func (m *Model) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// SetPalette swaps the colour scheme and forces a rebuild.
func (m *Model) SetPalette(p layout.Palette) {
	m.palette = p
	m.dirty = true
}

// Props returns the props in store order, rebuilding them if the store
// changed since the last call. A returned slice is never modified later.
func (m *Model) Props() []Prop {
	if m.dirty {
		m.rebuild()
	}
	return m.props
}

// Rebuilds counts how many times props were derived; exposed for tests.
func (m *Model) Rebuilds() int { return m.rebuilt }

func (m *Model) rebuild() {
	props := make([]Prop, 0, m.store.Len())
	m.store.Each(func(e roster.Entity) {
		props = append(props, m.propFor(e))
	})
	m.props = props
	m.dirty = false
	m.rebuilt++
}

func (m *Model) propFor(e roster.Entity) Prop {
	p := Prop{
		ID:     e.ID,
		World:  m.proj.BoardToWorld(e.X, e.Y),
		Color:  m.palette.Color(e.Class),
		Label:  e.Name,
		Number: e.Number,
	}
	switch e.Class.(type) {
	case roster.Ball:
		p.Shape = ShapeSphere
		p.Label = ""
	case roster.Cohort:
		p.Shape = ShapeDiscPillar
	}
	return p
}

// Render hands props to r back to front as seen from cam.
func (m *Model) Render(r Renderer, cam projector.Camera) {
	props := m.Props()
	type ordered struct {
		depth float64
		i     int
	}
	order := make([]ordered, 0, len(props))
	for i, p := range props {
		_, _, depth, ok := cam.Project(p.World)
		if !ok {
			continue
		}
		order = append(order, ordered{depth: depth, i: i})
	}
	sort.SliceStable(order, func(a, b int) bool { return order[a].depth > order[b].depth })
	for _, o := range order {
		r.DrawProp(props[o.i])
	}
}
