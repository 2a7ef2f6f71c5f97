package layout

import (
	"math"
	"testing"

	"github.com/Garsondee/Soccer-Tactics/internal/roster"
)

func TestGrid_WrapsEveryFourColumns(t *testing.T) {
	g := Grid{Columns: 4, BaseX: 105, BaseY: 10, ColSpacing: 5, RowSpacing: 12}
	cases := []struct {
		i    int
		x, y float64
	}{
		{0, 105, 10}, {3, 120, 10}, {4, 105, 22}, {9, 110, 34},
	}
	for _, c := range cases {
		x, y := g.Place(c.i, 10)
		if x != c.x || y != c.y {
			t.Fatalf("index %d: expected (%.0f,%.0f), got (%.1f,%.1f)", c.i, c.x, c.y, x, y)
		}
	}
}

func TestVerticalList_MatchesRowSpacing(t *testing.T) {
	v := VerticalList{X: 105, BaseY: 10, Spacing: 15}
	for i := 0; i < 6; i++ {
		x, y := v.Place(i, 6)
		if x != 105 || y != 10+float64(i)*15 {
			t.Fatalf("index %d: got (%.1f,%.1f)", i, x, y)
		}
	}
}

func TestEqualSpacing_EvenDistribution(t *testing.T) {
	e := EqualSpacing{X: 108, Top: 0, Span: 100}
	for _, count := range []int{1, 3, 7} {
		prev := e.Top
		unit := e.Span / float64(count+1)
		for i := 0; i < count; i++ {
			_, y := e.Place(i, count)
			if math.Abs((y-prev)-unit) > 1e-9 {
				t.Fatalf("count=%d index %d: gap %.3f, expected %.3f", count, i, y-prev, unit)
			}
			prev = y
		}
		if math.Abs((e.Top+e.Span)-prev-unit) > 1e-9 {
			t.Fatalf("count=%d: last gap to the end should also be %.3f", count, unit)
		}
	}
}

func TestValidateBench(t *testing.T) {
	for _, p := range BenchPresets() {
		if err := ValidateBench(p); err != nil {
			t.Fatalf("preset %s should validate: %v", p.Name(), err)
		}
	}
	bad := []BenchPolicy{
		nil,
		VerticalList{X: 100, BaseY: 10, Spacing: 15},
		Grid{Columns: 0, BaseX: 110},
		EqualSpacing{X: 60, Span: 100},
	}
	for _, p := range bad {
		if err := ValidateBench(p); err == nil {
			t.Fatalf("expected %#v to be rejected", p)
		}
	}
}

func TestFormation_Validate(t *testing.T) {
	for _, name := range PresetNames() {
		f, ok := Preset(name)
		if !ok {
			t.Fatalf("preset %s missing", name)
		}
		if len(f.Slots) != StarterCount {
			t.Fatalf("preset %s: expected %d slots, got %d", name, StarterCount, len(f.Slots))
		}
		if err := f.Validate(); err != nil {
			t.Fatalf("preset %s: %v", name, err)
		}
	}
	off := Formation{Name: "off", Slots: []Slot{{110, 50}}}
	if err := off.Validate(); err == nil {
		t.Fatal("slot beyond the right edge should be rejected")
	}
}

func TestPreset_ReturnsCopy(t *testing.T) {
	f, _ := Preset(DefaultFormation)
	f.Slots[0] = Slot{99, 99}
	g, _ := Preset(DefaultFormation)
	if g.Slots[0] == f.Slots[0] {
		t.Fatal("mutating a preset copy leaked into the table")
	}
}

func TestPalette_Classify(t *testing.T) {
	p := DefaultPalette()
	if c := p.Color(roster.Cohort(1)); c.B != 0xf3 || c.R != 0x21 {
		t.Fatalf("grade 1 should be blue, got %+v", c)
	}
	if c := p.Color(roster.Cohort(3)); c.R != 0xf4 {
		t.Fatalf("grade 3 should be red, got %+v", c)
	}
	if p.Color(roster.Cohort(0)) != p.Other || p.Color(roster.Cohort(7)) != p.Other {
		t.Fatal("unknown cohorts should use the fallback colour")
	}
	if p.Color(roster.Ball{}) != p.Ball {
		t.Fatal("ball should use the ball colour")
	}
}

func TestParsePalette_RejectsBadHex(t *testing.T) {
	if _, err := ParsePalette(map[int]string{1: "blue"}, "#9e9e9e", "#ffffff"); err == nil {
		t.Fatal("expected an error for a non-hex colour")
	}
}

func TestShade_Darkens(t *testing.T) {
	base := DefaultPalette().Color(roster.Cohort(2))
	dark := Shade(base, 0.5)
	if dark.R >= base.R || dark.G >= base.G {
		t.Fatalf("expected darker colour, got %+v from %+v", dark, base)
	}
	if dark.A != base.A {
		t.Fatal("alpha should be preserved")
	}
}
