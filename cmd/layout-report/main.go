package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/Garsondee/Soccer-Tactics/internal/board"
	"github.com/Garsondee/Soccer-Tactics/internal/config"
	"github.com/Garsondee/Soccer-Tactics/internal/game"
	"github.com/Garsondee/Soccer-Tactics/internal/layout"
	"github.com/Garsondee/Soccer-Tactics/internal/logging"
	"github.com/Garsondee/Soccer-Tactics/internal/roster"
	"github.com/Garsondee/Soccer-Tactics/internal/source"
)

// move is one -move id=x,y argument.
type move struct {
	id   roster.ID
	x, y float64
}

// moveList collects repeated -move flags.
type moveList []move

func (m *moveList) String() string {
	parts := make([]string, len(*m))
	for i, mv := range *m {
		parts[i] = fmt.Sprintf("%s=%g,%g", mv.id, mv.x, mv.y)
	}
	return strings.Join(parts, " ")
}

func (m *moveList) Set(s string) error {
	mv, err := parseMove(s)
	if err != nil {
		return err
	}
	*m = append(*m, mv)
	return nil
}

// parseMove reads "id=x,y".
func parseMove(s string) (move, error) {
	id, pos, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(id) == "" {
		return move{}, fmt.Errorf("move %q: want id=x,y", s)
	}
	xs, ys, ok := strings.Cut(pos, ",")
	if !ok {
		return move{}, fmt.Errorf("move %q: want id=x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return move{}, fmt.Errorf("move %q: x: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return move{}, fmt.Errorf("move %q: y: %w", s, err)
	}
	return move{id: roster.ID(strings.TrimSpace(id)), x: x, y: y}, nil
}

// sourceFor maps a -source value to a roster source. Empty means the
// configured source.
func sourceFor(arg string, cfg config.Config) source.Source {
	switch {
	case arg == "":
		return cfg.BuildSource()
	case arg == "demo":
		return source.Demo()
	case strings.HasPrefix(arg, "http://"), strings.HasPrefix(arg, "https://"):
		return source.NewHTTP(arg, cfg.Source.Timeout, cfg.Source.UserAgent)
	default:
		return source.FileSource{Path: arg}
	}
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("layout-report", flag.ContinueOnError)
	var cfgPath, src, formation, bench string
	var moves moveList
	fs.StringVar(&cfgPath, "config", "", "YAML config file")
	fs.StringVar(&src, "source", "", "roster: demo, a CSV URL or a file path (default from config)")
	fs.StringVar(&formation, "formation", "", "formation name")
	fs.StringVar(&bench, "bench", "", "bench policy: grid, vertical or equal")
	fs.Var(&moves, "move", "drag an entity, id=x,y (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if formation != "" && !slices.Contains(cfg.FormationNames(), formation) {
		return fmt.Errorf("unknown formation %q (have %s)", formation, strings.Join(cfg.FormationNames(), ", "))
	}
	if bench != "" && !validBench(bench) {
		return fmt.Errorf("unknown bench policy %q", bench)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	opts := []game.HarnessOption{
		game.WithConfig(cfg),
		game.WithLogger(logger),
		game.WithSource(sourceFor(src, cfg)),
	}
	if formation != "" {
		opts = append(opts, game.WithFormation(formation))
	}
	if bench != "" {
		opts = append(opts, game.WithBench(bench))
	}
	h, err := game.NewHarness(opts...)
	if err != nil {
		return err
	}
	defer h.Close()

	for _, mv := range moves {
		if !h.Drag(mv.id, mv.x, mv.y) {
			return fmt.Errorf("move: no entity %q", mv.id)
		}
	}

	s := h.Session
	fmt.Fprintf(out, "=== Layout Report ===\n")
	fmt.Fprintf(out, "status=%s formation=%s bench=%s\n", s.State(), s.Formation(), s.BenchPolicy())
	fmt.Fprintf(out, "%s\n\n", s.Status())
	return board.WriteReport(out, s.Store)
}

func validBench(name string) bool {
	for _, p := range layout.BenchPresets() {
		if p.Name() == name {
			return true
		}
	}
	return false
}
