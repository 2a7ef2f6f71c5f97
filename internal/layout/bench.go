package layout

import "fmt"

// BenchPolicy places substitutes beyond the right edge of the pitch.
// Place must be deterministic in (benchIndex, benchCount).
type BenchPolicy interface {
	Name() string
	Place(benchIndex, benchCount int) (x, y float64)
	// MinX is the smallest x the policy can return.
	MinX() float64
}

// Bench policy names accepted by configuration.
const (
	PolicyVertical = "vertical"
	PolicyEqual    = "equal"
	PolicyGrid     = "grid"
)

// VerticalList stacks the bench in one column.
type VerticalList struct {
	X       float64
	BaseY   float64
	Spacing float64
}

func (v VerticalList) Name() string  { return PolicyVertical }
func (v VerticalList) MinX() float64 { return v.X }

func (v VerticalList) Place(i, _ int) (float64, float64) {
	return v.X, v.BaseY + float64(i)*v.Spacing
}

// EqualSpacing spreads the whole bench evenly over Span.
type EqualSpacing struct {
	X    float64
	Top  float64
	Span float64
}

func (e EqualSpacing) Name() string  { return PolicyEqual }
func (e EqualSpacing) MinX() float64 { return e.X }

func (e EqualSpacing) Place(i, count int) (float64, float64) {
	if count < 1 {
		count = 1
	}
	unit := e.Span / float64(count+1)
	return e.X, e.Top + float64(i+1)*unit
}

// Grid wraps the bench into Columns columns.
type Grid struct {
	Columns    int
	BaseX      float64
	BaseY      float64
	ColSpacing float64
	RowSpacing float64
}

func (g Grid) Name() string  { return PolicyGrid }
func (g Grid) MinX() float64 { return g.BaseX }

func (g Grid) Place(i, _ int) (float64, float64) {
	cols := g.Columns
	if cols < 1 {
		cols = 1
	}
	col := i % cols
	row := i / cols
	return g.BaseX + float64(col)*g.ColSpacing, g.BaseY + float64(row)*g.RowSpacing
}

// DefaultBench is a 4-column grid starting just right of the pitch.
func DefaultBench() BenchPolicy {
	return Grid{Columns: 4, BaseX: 105, BaseY: 8, ColSpacing: 5, RowSpacing: 12}
}

// BenchPresets returns one instance of every policy with its default parameters,
// in the order the board cycles through them.
func BenchPresets() []BenchPolicy {
	return []BenchPolicy{
		DefaultBench(),
		VerticalList{X: 105, BaseY: 10, Spacing: 15},
		EqualSpacing{X: 108, Top: 0, Span: 100},
	}
}

// ValidateBench rejects policies that could place a substitute on the pitch.
func ValidateBench(p BenchPolicy) error {
	if p == nil {
		return fmt.Errorf("bench policy is nil")
	}
	if p.MinX() <= PitchRight {
		return fmt.Errorf("bench policy %s: x %.1f must be right of the pitch edge %.0f", p.Name(), p.MinX(), PitchRight)
	}
	if g, ok := p.(Grid); ok && (g.Columns < 1 || g.ColSpacing < 0) {
		return fmt.Errorf("bench policy grid: columns=%d col_spacing=%.1f", g.Columns, g.ColSpacing)
	}
	return nil
}
