// Package config loads application settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/Garsondee/Soccer-Tactics/internal/layout"
	"github.com/Garsondee/Soccer-Tactics/internal/projector"
	"github.com/Garsondee/Soccer-Tactics/internal/source"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Source    SourceConfig    `yaml:"source"`
	Window    WindowConfig    `yaml:"window"`
	Log       LogConfig       `yaml:"log"`
	Layout    LayoutConfig    `yaml:"layout"`
	Palette   PaletteConfig   `yaml:"palette"`
	Projector ProjectorConfig `yaml:"projector"`
	Camera    CameraConfig    `yaml:"camera"`
}

type SourceConfig struct {
	URL       string        `yaml:"url"`
	File      string        `yaml:"file"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

type LayoutConfig struct {
	Formation  string                   `yaml:"formation"`
	Formations map[string][][2]float64 `yaml:"formations,omitempty"`
	Bench      BenchConfig              `yaml:"bench"`
}

// BenchConfig selects a bench policy. Fields not used by the chosen policy
// are ignored.
type BenchConfig struct {
	Policy     string  `yaml:"policy"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Spacing    float64 `yaml:"spacing"`
	Span       float64 `yaml:"span"`
	Columns    int     `yaml:"columns"`
	ColSpacing float64 `yaml:"col_spacing"`
	RowSpacing float64 `yaml:"row_spacing"`
}

type PaletteConfig struct {
	Grades map[int]string `yaml:"grades"`
	Other  string         `yaml:"other"`
	Ball   string         `yaml:"ball"`
}

type ProjectorConfig struct {
	Center     float64 `yaml:"center"`
	DepthScale float64 `yaml:"depth_scale"`
}

type CameraConfig struct {
	Eye [3]float64 `yaml:"eye"`
	FOV float64    `yaml:"fov"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Source: SourceConfig{
			Timeout:   15 * time.Second,
			UserAgent: "Mozilla/5.0 (compatible; TacticsBoard/1.0)",
		},
		Window: WindowConfig{Title: "Tactics 3D", Width: 1600, Height: 900},
		Log:    LogConfig{Level: "info", Format: "console"},
		Layout: LayoutConfig{
			Formation: layout.DefaultFormation,
			Bench: BenchConfig{
				Policy:     layout.PolicyGrid,
				X:          105,
				Y:          8,
				Spacing:    15,
				Span:       100,
				Columns:    4,
				ColSpacing: 5,
				RowSpacing: 12,
			},
		},
		Palette: PaletteConfig{
			Grades: map[int]string{1: "#2196f3", 2: "#ffc107", 3: "#f44336"},
			Other:  "#9e9e9e",
			Ball:   "#ffffff",
		},
		Projector: ProjectorConfig{Center: 50, DepthScale: 0.7},
		Camera:    CameraConfig{Eye: [3]float64{0, 60, 50}, FOV: 45},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("opening config: %w", err)
		}
		defer f.Close()
		if cfg, err = Decode(f); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode reads YAML from r over the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Source.URL = getEnv("ROSTER_URL", c.Source.URL)
	c.Source.File = getEnv("ROSTER_FILE", c.Source.File)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Validate checks every derived object can be built.
func (c Config) Validate() error {
	if c.Source.Timeout <= 0 {
		return fmt.Errorf("%w: source.timeout must be positive", ErrInvalid)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if _, err := c.Formation(); err != nil {
		return err
	}
	for name := range c.Layout.Formations {
		if _, err := c.FormationNamed(name); err != nil {
			return err
		}
	}
	if _, err := c.Bench(); err != nil {
		return err
	}
	if _, err := c.BuildPalette(); err != nil {
		return err
	}
	if c.Projector.DepthScale <= 0 {
		return fmt.Errorf("%w: projector.depth_scale must be positive", ErrInvalid)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("%w: camera.fov %.1f out of range", ErrInvalid, c.Camera.FOV)
	}
	if c.BuildCamera().Degenerate() {
		return fmt.Errorf("%w: camera.eye %v is on the vertical through the target", ErrInvalid, c.Camera.Eye)
	}
	return nil
}

// Formation returns the configured starter table.
func (c Config) Formation() (layout.Formation, error) {
	return c.FormationNamed(c.Layout.Formation)
}

// FormationNamed resolves a custom table first, then a built-in preset.
func (c Config) FormationNamed(name string) (layout.Formation, error) {
	if pts, ok := c.Layout.Formations[name]; ok {
		f := layout.Formation{Name: name, Slots: make([]layout.Slot, len(pts))}
		for i, p := range pts {
			f.Slots[i] = layout.Slot{X: p[0], Y: p[1]}
		}
		if err := f.Validate(); err != nil {
			return layout.Formation{}, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		return f, nil
	}
	f, ok := layout.Preset(name)
	if !ok {
		return layout.Formation{}, fmt.Errorf("%w: unknown formation %q", ErrInvalid, name)
	}
	return f, nil
}

// FormationNames lists built-in presets followed by custom tables, each in
// sorted order.
func (c Config) FormationNames() []string {
	var custom []string
	for name := range c.Layout.Formations {
		if _, builtin := layout.Preset(name); !builtin {
			custom = append(custom, name)
		}
	}
	sort.Strings(custom)
	return append(layout.PresetNames(), custom...)
}

// Bench builds the configured bench policy.
func (c Config) Bench() (layout.BenchPolicy, error) {
	b := c.Layout.Bench
	var p layout.BenchPolicy
	switch b.Policy {
	case layout.PolicyGrid:
		p = layout.Grid{Columns: b.Columns, BaseX: b.X, BaseY: b.Y, ColSpacing: b.ColSpacing, RowSpacing: b.RowSpacing}
	case layout.PolicyVertical:
		p = layout.VerticalList{X: b.X, BaseY: b.Y, Spacing: b.Spacing}
	case layout.PolicyEqual:
		p = layout.EqualSpacing{X: b.X, Top: b.Y, Span: b.Span}
	default:
		return nil, fmt.Errorf("%w: unknown bench policy %q", ErrInvalid, b.Policy)
	}
	if err := layout.ValidateBench(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return p, nil
}

// Assigner builds the layout assigner from the configured formation and bench.
func (c Config) Assigner() (layout.Assigner, error) {
	f, err := c.Formation()
	if err != nil {
		return layout.Assigner{}, err
	}
	b, err := c.Bench()
	if err != nil {
		return layout.Assigner{}, err
	}
	return layout.Assigner{Formation: f, Bench: b}, nil
}

// BuildPalette parses the configured colours.
func (c Config) BuildPalette() (layout.Palette, error) {
	p, err := layout.ParsePalette(c.Palette.Grades, c.Palette.Other, c.Palette.Ball)
	if err != nil {
		return layout.Palette{}, fmt.Errorf("%w: palette: %v", ErrInvalid, err)
	}
	return p, nil
}

// BuildProjector returns the board-to-world projector.
func (c Config) BuildProjector() projector.Projector {
	return projector.Projector{Center: c.Projector.Center, DepthScale: c.Projector.DepthScale}
}

// BuildCamera returns the scene camera aimed at the pitch centre.
func (c Config) BuildCamera() projector.Camera {
	cam := projector.DefaultCamera()
	cam.Eye = r3.Vec{X: c.Camera.Eye[0], Y: c.Camera.Eye[1], Z: c.Camera.Eye[2]}
	cam.FOV = c.Camera.FOV
	return cam
}

// BuildSource picks the roster source: a URL wins over a file, and with
// neither set the embedded demo roster is used.
func (c Config) BuildSource() source.Source {
	switch {
	case c.Source.URL != "":
		return source.NewHTTP(c.Source.URL, c.Source.Timeout, c.Source.UserAgent)
	case c.Source.File != "":
		return source.FileSource{Path: c.Source.File}
	default:
		return source.Demo()
	}
}
