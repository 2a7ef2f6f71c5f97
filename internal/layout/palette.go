package layout

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Soccer-Tactics/internal/roster"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps an entity class to its marker colour.
type Palette struct {
	Cohorts map[roster.Cohort]color.RGBA
	Other   color.RGBA // cohorts without an entry, including unclassified
	Ball    color.RGBA
}

// DefaultPalette is blue/yellow/red for grades 1-3, grey otherwise.
func DefaultPalette() Palette {
	p, err := ParsePalette(map[int]string{
		1: "#2196f3",
		2: "#ffc107",
		3: "#f44336",
	}, "#9e9e9e", "#ffffff")
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePalette builds a palette from hex colour strings.
func ParsePalette(cohorts map[int]string, other, ball string) (Palette, error) {
	p := Palette{Cohorts: make(map[roster.Cohort]color.RGBA, len(cohorts))}
	for grade, hex := range cohorts {
		c, err := hexColor(hex)
		if err != nil {
			return Palette{}, fmt.Errorf("grade %d: %w", grade, err)
		}
		p.Cohorts[roster.Cohort(grade)] = c
	}
	var err error
	if p.Other, err = hexColor(other); err != nil {
		return Palette{}, fmt.Errorf("other: %w", err)
	}
	if p.Ball, err = hexColor(ball); err != nil {
		return Palette{}, fmt.Errorf("ball: %w", err)
	}
	return p, nil
}

// Color classifies c.
func (p Palette) Color(c roster.Class) color.RGBA {
	switch v := c.(type) {
	case roster.Ball:
		return p.Ball
	case roster.Cohort:
		if col, ok := p.Cohorts[v]; ok {
			return col
		}
		return p.Other
	default:
		return p.Other
	}
}

// Shade darkens col by t in [0,1], blending in RGB space.
func Shade(col color.RGBA, t float64) color.RGBA {
	c, _ := colorful.MakeColor(col)
	r, g, b := c.BlendRgb(colorful.Color{}, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: col.A}
}

func hexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
