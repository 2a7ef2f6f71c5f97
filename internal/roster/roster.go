package roster

import "strconv"

// ID identifies an entity within one roster load. Players use their
// decimal row index; the ball uses BallID.
type ID string

// BallID is the synthetic id of the ball entity.
const BallID ID = "ball"

// PlayerID returns the id for the player parsed from data row i.
func PlayerID(i int) ID {
	return ID(strconv.Itoa(i))
}

const (
	DefaultName   = "unregistered"
	DefaultNumber = "?"
	DefaultRole   = "PLY"
)

// Class distinguishes players (by cohort) from the ball.
// The interface is sealed; switch on Cohort and Ball.
type Class interface {
	isClass()
	String() string
}

// Cohort is a player's year/grade. Zero means the source value was not numeric.
type Cohort int

// Ball classifies the single ball entity.
type Ball struct{}

func (Cohort) isClass() {}
func (Ball) isClass()   {}

func (c Cohort) String() string {
	if c == 0 {
		return "unclassified"
	}
	return "grade " + strconv.Itoa(int(c))
}

func (Ball) String() string { return "ball" }

// DefaultCohort is used when the grade column is missing or empty.
const DefaultCohort Cohort = 1

// Entity is one marker on the board: a player row or the ball.
// Only X and Y change after creation.
type Entity struct {
	ID     ID
	Name   string
	Number string
	Role   string
	Class  Class
	X, Y   float64
}

// IsBall reports whether e is the ball.
func (e Entity) IsBall() bool {
	_, ok := e.Class.(Ball)
	return ok
}

// NewBall returns the ball entity placed at (x, y).
func NewBall(x, y float64) Entity {
	return Entity{
		ID:    BallID,
		Name:  "ball",
		Class: Ball{},
		X:     x,
		Y:     y,
	}
}
