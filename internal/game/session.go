package game

import (
	"errors"
	"fmt"

	"github.com/Garsondee/Soccer-Tactics/internal/board"
	"github.com/Garsondee/Soccer-Tactics/internal/config"
	"github.com/Garsondee/Soccer-Tactics/internal/layout"
	"github.com/Garsondee/Soccer-Tactics/internal/projector"
	"github.com/Garsondee/Soccer-Tactics/internal/roster"
	"github.com/Garsondee/Soccer-Tactics/internal/scene"
	"github.com/Garsondee/Soccer-Tactics/internal/source"
	"go.uber.org/zap"
)

// LoadState is the roster status shown in the header.
type LoadState int

const (
	StateLoading LoadState = iota
	StateLoaded
	StateEmpty
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateEmpty:
		return "empty"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Session owns the layout pipeline: the last parsed rows, the assigner that
// places them, the shared store and its two consumers. It has no Ebiten
// dependency so tests and the report CLI can drive it directly.
type Session struct {
	cfg      config.Config
	log      *zap.Logger
	Store    *board.Store
	Drag     *board.Controller
	Scene    *scene.Model
	Proj     projector.Projector
	Palette  layout.Palette
	Activity *ActivityLog

	assigner   layout.Assigner
	formations []string
	benches    []layout.BenchPolicy
	benchIdx   int

	parsed []roster.Entity
	last   source.Result
	state  LoadState
	tick   int
}

// NewSession builds the pipeline from configuration. The store starts empty.
func NewSession(cfg config.Config, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	assigner, err := cfg.Assigner()
	if err != nil {
		return nil, err
	}
	palette, err := cfg.BuildPalette()
	if err != nil {
		return nil, err
	}

	store := board.NewStore(log.Named("store"))
	proj := cfg.BuildProjector()
	s := &Session{
		cfg:        cfg,
		log:        log,
		Store:      store,
		Drag:       board.NewController(store),
		Scene:      scene.NewModel(store, proj, palette),
		Proj:       proj,
		Palette:    palette,
		Activity:   NewActivityLog(),
		assigner:   assigner,
		formations: cfg.FormationNames(),
		state:      StateLoading,
	}

	// The configured bench leads the cycle, followed by the other presets.
	s.benches = append(s.benches, assigner.Bench)
	for _, b := range layout.BenchPresets() {
		if b.Name() != assigner.Bench.Name() {
			s.benches = append(s.benches, b)
		}
	}
	return s, nil
}

// SetTick stamps subsequent activity entries with the frame counter.
func (s *Session) SetTick(t int) { s.tick = t }

// Apply installs a load result. Failed and empty loads still replace the
// roster, leaving only the ball on the board.
func (s *Session) Apply(res source.Result) {
	s.last = res
	s.parsed = res.Records
	s.relayout()

	switch {
	case res.Err == nil:
		s.state = StateLoaded
		s.Activity.Add(s.tick, res.Short(), ActivityLoad,
			fmt.Sprintf("%d players from %s", len(res.Records), res.Source))
	case errors.Is(res.Err, source.ErrEmptySource):
		s.state = StateEmpty
		s.Activity.Add(s.tick, res.Short(), ActivityError, "source has no players")
	default:
		s.state = StateFailed
		s.Activity.Add(s.tick, res.Short(), ActivityError, "load failed")
	}
}

// BeginLoad marks a reload in progress. The current roster stays visible.
func (s *Session) BeginLoad() {
	s.state = StateLoading
}

// relayout re-runs the assigner over the last parsed rows, discarding drags.
func (s *Session) relayout() {
	s.Store.Replace(s.assigner.Assign(s.parsed))
}

// CycleFormation switches to the next formation and re-lays the roster.
func (s *Session) CycleFormation() string {
	if len(s.formations) == 0 {
		return s.assigner.Formation.Name
	}
	idx := 0
	for i, n := range s.formations {
		if n == s.assigner.Formation.Name {
			idx = (i + 1) % len(s.formations)
			break
		}
	}
	f, err := s.cfg.FormationNamed(s.formations[idx])
	if err != nil {
		s.log.Warn("formation unavailable", zap.String("formation", s.formations[idx]), zap.Error(err))
		return s.assigner.Formation.Name
	}
	s.assigner.Formation = f
	s.relayout()
	s.log.Info("formation changed", zap.String("formation", f.Name))
	s.Activity.Add(s.tick, "--", ActivityLayout, "formation "+f.Name)
	return f.Name
}

// CycleBench switches to the next bench policy and re-lays the roster.
func (s *Session) CycleBench() string {
	s.benchIdx = (s.benchIdx + 1) % len(s.benches)
	s.assigner.Bench = s.benches[s.benchIdx]
	s.relayout()
	name := s.assigner.Bench.Name()
	s.log.Info("bench policy changed", zap.String("policy", name))
	s.Activity.Add(s.tick, "--", ActivityLayout, "bench "+name)
	return name
}

// Formation is the active formation name.
func (s *Session) Formation() string { return s.assigner.Formation.Name }

// BenchPolicy is the active bench policy name.
func (s *Session) BenchPolicy() string { return s.assigner.Bench.Name() }

// State is the current load state.
func (s *Session) State() LoadState { return s.state }

// Last is the most recent load result.
func (s *Session) Last() source.Result { return s.last }

// Status is a one-line description of the roster for the header.
func (s *Session) Status() string {
	switch s.state {
	case StateLoading:
		return "loading roster..."
	case StateLoaded:
		return fmt.Sprintf("%d players from %s  [%s] fp=%016x",
			s.Store.Players(), s.last.Source, s.last.Short(), s.last.Fingerprint)
	case StateEmpty:
		return fmt.Sprintf("no players in %s", s.last.Source)
	case StateFailed:
		return fmt.Sprintf("roster unavailable (%v)", s.last.Err)
	default:
		return ""
	}
}

// RecordDrag logs the end of a drag on id.
func (s *Session) RecordDrag(id roster.ID) {
	e, ok := s.Store.Get(id)
	if !ok {
		return
	}
	s.log.Debug("entity moved", zap.String("id", string(id)), zap.Float64("x", e.X), zap.Float64("y", e.Y))
	s.Activity.Add(s.tick, string(id), ActivityDrag,
		fmt.Sprintf("%s -> (%.0f,%.0f) %s", e.Name, e.X, e.Y, board.Zone(e)))
}

// Close releases store subscriptions.
func (s *Session) Close() {
	s.Scene.Close()
}
