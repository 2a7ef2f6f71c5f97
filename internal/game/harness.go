package game

import (
	"context"

	"github.com/Garsondee/Soccer-Tactics/internal/config"
	"github.com/Garsondee/Soccer-Tactics/internal/projector"
	"github.com/Garsondee/Soccer-Tactics/internal/roster"
	"github.com/Garsondee/Soccer-Tactics/internal/source"
	"go.uber.org/zap"
)

// Harness is a headless board used by tests and the report CLI.
// It mirrors the pointer handling in Game.Update without Ebiten: pointer
// coordinates are screen pixels measured against a fixed pitch rectangle.
type Harness struct {
	Session *Session
	Pitch   projector.Rect

	cfg    config.Config
	log    *zap.Logger
	src    source.Source
	layout []func(*Session)
}

// harnessOptionKind controls the pass in which an option is applied.
type harnessOptionKind int

const (
	harnessOptInfra  harnessOptionKind = iota // config, logger, pitch, source
	harnessOptLayout                          // formation and bench, after the session exists
)

// HarnessOption is a builder function applied to a Harness during construction.
type HarnessOption struct {
	kind harnessOptionKind
	fn   func(*Harness)
}

// WithConfig replaces the default configuration.
func WithConfig(cfg config.Config) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) { h.cfg = cfg }}
}

// WithLogger routes session logs to log.
func WithLogger(log *zap.Logger) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) { h.log = log }}
}

// WithPitch sets the on-screen pitch rectangle pointer events are measured against.
func WithPitch(r projector.Rect) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) { h.Pitch = r }}
}

// WithRosterText loads raw CSV text.
func WithRosterText(text string) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) {
		h.src = source.StaticSource{Name: "inline", Text: text}
	}}
}

// WithSource loads from src.
func WithSource(src source.Source) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) { h.src = src }}
}

// WithFormation cycles the session until the named formation is active.
func WithFormation(name string) HarnessOption {
	return HarnessOption{harnessOptLayout, func(h *Harness) {
		for range h.Session.formations {
			if h.Session.Formation() == name {
				return
			}
			h.Session.CycleFormation()
		}
	}}
}

// WithBench cycles the session until the named bench policy is active.
func WithBench(policy string) HarnessOption {
	return HarnessOption{harnessOptLayout, func(h *Harness) {
		for range h.Session.benches {
			if h.Session.BenchPolicy() == policy {
				return
			}
			h.Session.CycleBench()
		}
	}}
}

// NewHarness constructs a Harness in ordered passes:
//  1. Infrastructure (config, logger, pitch, source)
//  2. Session build and a synchronous load
//  3. Layout selection
func NewHarness(opts ...HarnessOption) (*Harness, error) {
	h := &Harness{
		cfg:   config.Default(),
		log:   zap.NewNop(),
		Pitch: projector.Rect{X: 100, Y: 100, W: 700, H: 490},
		src:   source.Demo(),
	}
	for _, o := range opts {
		if o.kind == harnessOptInfra {
			o.fn(h)
		}
	}
	s, err := NewSession(h.cfg, h.log)
	if err != nil {
		return nil, err
	}
	h.Session = s
	s.Apply(source.Load(context.Background(), h.src, h.log))
	for _, o := range opts {
		if o.kind == harnessOptLayout {
			o.fn(h)
		}
	}
	return h, nil
}

// ScreenOf returns the pixel position of a board coordinate.
func (h *Harness) ScreenOf(x, y float64) (float64, float64) {
	return projector.BoardToScreen(x, y, h.Pitch)
}

// Press issues a pointer-down at pixel (px, py).
func (h *Harness) Press(px, py float64) (roster.ID, bool) {
	return h.Session.Drag.PointerDown(px, py, h.Pitch)
}

// MoveTo issues a pointer-move at pixel (px, py).
func (h *Harness) MoveTo(px, py float64) bool {
	return h.Session.Drag.PointerMove(px, py, h.Pitch)
}

// Release ends the drag and records it.
func (h *Harness) Release() {
	id, ok := h.Session.Drag.State().Dragging()
	h.Session.Drag.PointerUp()
	if ok {
		h.Session.RecordDrag(id)
	}
}

// Leave ends the drag as if the pointer left the board. The entity keeps
// its last position and the drag is recorded, as on release.
func (h *Harness) Leave() {
	id, ok := h.Session.Drag.State().Dragging()
	h.Session.Drag.PointerLeave()
	if ok {
		h.Session.RecordDrag(id)
	}
}

// Drag picks up id and drops it at board position (x, y), using the same
// pointer path as the live board.
func (h *Harness) Drag(id roster.ID, x, y float64) bool {
	if !h.Session.Drag.Begin(id) {
		return false
	}
	h.MoveTo(h.ScreenOf(x, y))
	h.Release()
	return true
}

// Entity returns the current state of id.
func (h *Harness) Entity(id roster.ID) (roster.Entity, bool) {
	return h.Session.Store.Get(id)
}

// Close releases the session.
func (h *Harness) Close() {
	h.Session.Close()
}
