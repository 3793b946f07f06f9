// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/blocklearn/blocklearn/block"
)

// StepType denotes the type of step that a TimeStep can be, either the first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// Observation is the state information an environment hands to an agent
// on each step. There are exactly two observation shapes, corresponding
// to the two observation contracts: ProfileObservation for the learning
// agent and BoardObservation for the baseline policies. Policies declare
// which shape they need at construction time.
type Observation interface {
	// ActivePiece returns the currently falling piece, which every
	// observation shape carries.
	ActivePiece() block.Piece

	observation()
}

// ProfileObservation is the learning-mode observation: the active piece
// together with the per-column free-space profile. Profile holds, for each
// column, the number of contiguous free cells below the profile row before
// the first occupied cell.
type ProfileObservation struct {
	Piece   block.Piece
	Profile []int
}

// ActivePiece returns the currently falling piece
func (o ProfileObservation) ActivePiece() block.Piece { return o.Piece }

func (o ProfileObservation) observation() {}

// BoardObservation is the baseline-mode observation: the active and next
// pieces together with the full board occupancy grid. A cell of the grid is
// non-zero iff it is occupied.
type BoardObservation struct {
	Piece block.Piece
	Next  block.Piece
	Board *mat.Dense
}

// ActivePiece returns the currently falling piece
func (o BoardObservation) ActivePiece() block.Piece { return o.Piece }

func (o BoardObservation) observation() {}

// TimeStep packages together a single timestep in an environment
type TimeStep struct {
	stepType    StepType
	Reward      float64
	Discount    float64
	Observation Observation
	Number      int
}

func New(t StepType, r, d float64, o Observation, n int) TimeStep {
	return TimeStep{t, r, d, o, n}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.stepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.stepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.stepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.stepType, t.Reward, t.Discount, t.Number)
}
