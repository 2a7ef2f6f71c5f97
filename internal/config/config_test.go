package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Garsondee/Soccer-Tactics/internal/layout"
	"github.com/Garsondee/Soccer-Tactics/internal/roster"
	"github.com/Garsondee/Soccer-Tactics/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	a, err := cfg.Assigner()
	require.NoError(t, err)
	assert.Equal(t, layout.DefaultFormation, a.Formation.Name)
	assert.Equal(t, layout.PolicyGrid, a.Bench.Name())
}

func TestDecode_OverlaysDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
source:
  url: https://example.com/pub?output=csv
  timeout: 3s
layout:
  formation: 4-4-2
  bench:
    policy: vertical
    x: 106
    y: 10
    spacing: 15
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "https://example.com/pub?output=csv", cfg.Source.URL)
	assert.Equal(t, 3*time.Second, cfg.Source.Timeout)
	assert.Equal(t, "Tactics 3D", cfg.Window.Title, "untouched fields keep defaults")

	b, err := cfg.Bench()
	require.NoError(t, err)
	assert.Equal(t, layout.VerticalList{X: 106, BaseY: 10, Spacing: 15}, b)
}

func TestDecode_EmptyInput(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default().Window, cfg.Window)
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("layout:\n  formaton: 4-4-2\n"))
	require.Error(t, err)
}

func TestCustomFormation(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
layout:
  formation: diamond
  formations:
    diamond: [[10, 50], [30, 30], [30, 70]]
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	f, err := cfg.Formation()
	require.NoError(t, err)
	assert.Equal(t, layout.Slot{X: 30, Y: 70}, f.Slot(2))
	assert.Equal(t, layout.CenterSlot, f.Slot(3), "gaps fall back to the centre")
	assert.Contains(t, cfg.FormationNames(), "diamond")
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*Config){
		"bench on pitch":    func(c *Config) { c.Layout.Bench.X = 90 },
		"unknown policy":    func(c *Config) { c.Layout.Bench.Policy = "spiral" },
		"unknown formation": func(c *Config) { c.Layout.Formation = "1-1-8" },
		"bad colour":        func(c *Config) { c.Palette.Grades[2] = "yellow" },
		"zero timeout":      func(c *Config) { c.Source.Timeout = 0 },
		"flat projector":    func(c *Config) { c.Projector.DepthScale = 0 },
		"bad fov":           func(c *Config) { c.Camera.FOV = 180 },
		"eye above target":  func(c *Config) { c.Camera.Eye = [3]float64{0, 60, 0} },
		"eye on target":     func(c *Config) { c.Camera.Eye = [3]float64{} },
		"off-pitch slot": func(c *Config) {
			c.Layout.Formations = map[string][][2]float64{"wide": {{10, 50}, {120, 40}}}
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			cfg.Palette.Grades = map[int]string{1: "#2196f3", 2: "#ffc107"}
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tactics.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\nsource:\n  url: https://a.example/csv\n"), 0o600))

	t.Setenv("ROSTER_URL", "https://b.example/csv")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://b.example/csv", cfg.Source.URL, "env wins over file")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestBuildPalette(t *testing.T) {
	p, err := Default().BuildPalette()
	require.NoError(t, err)
	assert.Equal(t, layout.DefaultPalette().Color(roster.Cohort(2)), p.Color(roster.Cohort(2)))
}

func TestBuildCamera(t *testing.T) {
	cfg := Default()
	cfg.Camera.Eye = [3]float64{10, 40, 30}
	cam := cfg.BuildCamera()
	assert.Equal(t, 10.0, cam.Eye.X)
	assert.Equal(t, 40.0, cam.Eye.Y)
	assert.Equal(t, 45.0, cam.FOV)
}

func TestBuildSource(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "demo", cfg.BuildSource().String())

	cfg.Source.File = "roster.csv"
	assert.Equal(t, source.FileSource{Path: "roster.csv"}, cfg.BuildSource())

	cfg.Source.URL = "https://example.com/csv"
	src, ok := cfg.BuildSource().(*source.HTTPSource)
	require.True(t, ok, "url wins over file")
	assert.Equal(t, "https://example.com/csv", src.URL)
}

func TestFormationNames_CustomSorted(t *testing.T) {
	cfg := Default()
	cfg.Layout.Formations = map[string][][2]float64{
		"zeta": {{10, 50}}, "alpha": {{10, 50}}, "mid": {{10, 50}}, "4-4-2": {{10, 50}},
	}
	want := append(layout.PresetNames(), "alpha", "mid", "zeta")
	for i := 0; i < 5; i++ {
		assert.Equal(t, want, cfg.FormationNames())
	}
}
