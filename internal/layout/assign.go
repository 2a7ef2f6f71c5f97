package layout

import "github.com/Garsondee/Soccer-Tactics/internal/roster"

// Assigner computes initial board positions for a parsed roster.
type Assigner struct {
	Formation Formation
	Bench     BenchPolicy
}

// NewAssigner returns an assigner for the default formation and bench.
func NewAssigner() Assigner {
	f, _ := Preset(DefaultFormation)
	return Assigner{Formation: f, Bench: DefaultBench()}
}

// Assign returns a copy of records with X/Y set, followed by the ball.
// Rows below StarterCount take formation slots; the rest go to the bench.
// The input slice is not modified.
func (a Assigner) Assign(records []roster.Entity) []roster.Entity {
	bench := a.Bench
	if bench == nil {
		bench = DefaultBench()
	}
	benchCount := len(records) - StarterCount
	if benchCount < 0 {
		benchCount = 0
	}

	out := make([]roster.Entity, 0, len(records)+1)
	for i, e := range records {
		if i < StarterCount {
			s := a.Formation.Slot(i)
			e.X, e.Y = s.X, s.Y
		} else {
			e.X, e.Y = bench.Place(i-StarterCount, benchCount)
		}
		out = append(out, e)
	}
	return append(out, roster.NewBall(PitchMid, PitchMid))
}
