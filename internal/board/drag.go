package board

import (
	"github.com/Garsondee/Soccer-Tactics/internal/projector"
	"github.com/Garsondee/Soccer-Tactics/internal/roster"
)

// Marker hit radii in screen pixels.
const (
	PlayerRadius = 12.0
	BallRadius   = 7.0
)

// DragState is Idle or Dragging(id). The active flag carries the state so
// that any id value, "0" included, is a valid drag target.
type DragState struct {
	id     roster.ID
	active bool
}

// Dragging reports the entity being dragged, if any.
func (d DragState) Dragging() (roster.ID, bool) {
	return d.id, d.active
}

// Is reports whether id is the entity being dragged.
func (d DragState) Is(id roster.ID) bool {
	return d.active && d.id == id
}

// Controller turns pointer events on the board view into Store.Move commands.
type Controller struct {
	store *Store
	drag  DragState
}

// NewController binds a controller to store. A roster replacement while a
// drag is in progress ends the drag.
func NewController(store *Store) *Controller {
	c := &Controller{store: store}
	store.Subscribe(func(ch Change) {
		if ch.Kind == ChangeReplaced {
			c.drag = DragState{}
		}
	})
	return c
}

// State returns the current drag state.
func (c *Controller) State() DragState { return c.drag }

// Begin starts dragging id. Unknown ids leave the controller idle.
func (c *Controller) Begin(id roster.ID) bool {
	if _, ok := c.store.Get(id); !ok {
		return false
	}
	c.drag = DragState{id: id, active: true}
	return true
}

// PointerDown starts a drag on the marker under the pointer. When markers
// overlap the closest centre wins.
func (c *Controller) PointerDown(px, py float64, pitch projector.Rect) (roster.ID, bool) {
	id, ok := c.HitTest(px, py, pitch)
	if !ok {
		return "", false
	}
	c.drag = DragState{id: id, active: true}
	return id, true
}

// HitTest returns the marker under (px, py), if any.
func (c *Controller) HitTest(px, py float64, pitch projector.Rect) (roster.ID, bool) {
	var (
		hit   roster.ID
		found bool
		best  float64
	)
	c.store.Each(func(e roster.Entity) {
		mx, my := projector.BoardToScreen(e.X, e.Y, pitch)
		r := PlayerRadius
		if e.IsBall() {
			r = BallRadius
		}
		dx, dy := mx-px, my-py
		d2 := dx*dx + dy*dy
		if d2 > r*r {
			return
		}
		if !found || d2 <= best {
			hit, best, found = e.ID, d2, true
		}
	})
	return hit, found
}

// PointerMove writes the pointer's board position to the dragged entity.
// Without an active drag it does nothing.
func (c *Controller) PointerMove(px, py float64, pitch projector.Rect) bool {
	if !c.drag.active {
		return false
	}
	x, y := projector.ScreenToBoard(px, py, pitch)
	return c.store.Move(c.drag.id, x, y)
}

// PointerUp ends any drag.
func (c *Controller) PointerUp() { c.drag = DragState{} }

// PointerLeave ends any drag, same as PointerUp.
func (c *Controller) PointerLeave() { c.drag = DragState{} }
