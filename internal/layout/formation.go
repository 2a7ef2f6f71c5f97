package layout

import (
	"fmt"
	"sort"
)

// StarterCount is the number of rows placed from the formation table.
const StarterCount = 11

// Pitch bounds in normalized board coordinates.
const (
	PitchLeft   = 0.0
	PitchRight  = 100.0
	PitchTop    = 0.0
	PitchBottom = 100.0
	PitchMid    = 50.0
)

// Slot is one starter position on the board.
type Slot struct {
	X, Y float64
}

// CenterSlot is used when a formation has no entry for a starter index.
var CenterSlot = Slot{X: PitchMid, Y: PitchMid}

// Formation is a named static table of starter slots, indexed by row order.
type Formation struct {
	Name  string
	Slots []Slot
}

// Slot returns the starter slot for row i, or CenterSlot if the table has a gap.
func (f Formation) Slot(i int) Slot {
	if i < 0 || i >= len(f.Slots) {
		return CenterSlot
	}
	return f.Slots[i]
}

// MaxX returns the right-most x used by any slot the assigner can read.
func (f Formation) MaxX() float64 {
	max := CenterSlot.X
	for i := 0; i < StarterCount; i++ {
		if s := f.Slot(i); s.X > max {
			max = s.X
		}
	}
	return max
}

// Validate checks that every slot lies on the pitch.
func (f Formation) Validate() error {
	if len(f.Slots) > StarterCount {
		return fmt.Errorf("formation %q: %d slots, at most %d", f.Name, len(f.Slots), StarterCount)
	}
	for i, s := range f.Slots {
		if s.X < PitchLeft || s.X > PitchRight || s.Y < PitchTop || s.Y > PitchBottom {
			return fmt.Errorf("formation %q: slot %d (%.1f,%.1f) is off the pitch", f.Name, i, s.X, s.Y)
		}
	}
	return nil
}

// Preset formations. Slot 0 is the keeper; play runs left to right.
var presets = map[string][]Slot{
	"4-3-3": {
		{10, 50}, // GK
		{30, 20}, {30, 80}, {30, 35}, {30, 65}, // DF
		{50, 50}, {50, 30}, {50, 70}, // MF
		{70, 40}, {70, 60}, {80, 50}, // FW
	},
	"4-4-2": {
		{10, 50},
		{30, 15}, {30, 38}, {30, 62}, {30, 85},
		{52, 15}, {50, 38}, {50, 62}, {52, 85},
		{75, 38}, {75, 62},
	},
	"3-5-2": {
		{10, 50},
		{28, 25}, {28, 50}, {28, 75},
		{50, 10}, {46, 35}, {42, 50}, {46, 65}, {50, 90},
		{75, 38}, {75, 62},
	},
}

// DefaultFormation is the table used when configuration names none.
const DefaultFormation = "4-3-3"

// Preset returns a copy of a built-in formation.
func Preset(name string) (Formation, bool) {
	slots, ok := presets[name]
	if !ok {
		return Formation{}, false
	}
	return Formation{Name: name, Slots: append([]Slot(nil), slots...)}, true
}

// PresetNames lists the built-in formations in a stable order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
