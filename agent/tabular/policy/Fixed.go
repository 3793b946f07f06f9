package policy

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/blocklearn/blocklearn/agent/tabular/actions"
	"github.com/blocklearn/blocklearn/block"
	"github.com/blocklearn/blocklearn/timestep"
)

// Scan band of the deepest-run search. The search only inspects rows
// scanRow through scanRow+maxScanDepth-1 of the board, which assumes the
// standard board height and spawn area.
const (
	scanRow      = 2
	maxScanDepth = 3
)

// Fixed deterministically drops the active piece into the deepest hole it
// can find in the scan band, preferring the leftmost hole on ties. It is a
// hand-written baseline: for the single-cell piece it searches for the
// deepest single-column run, for every other piece the deepest
// two-column-wide run, laying the narrow piece flat so it spans the run.
// When no two-wide run exists anywhere it falls back to the random
// distribution for that single decision.
//
// Fixed requires the full-board observation.
type Fixed struct {
	rng *rand.Rand
}

// NewFixed creates a new Fixed policy. The seed is only used for the
// random fallback.
func NewFixed(seed uint64) *Fixed {
	return &Fixed{rng: rand.New(rand.NewSource(seed))}
}

// SelectAction selects the deepest-hole placement for the active piece
func (p *Fixed) SelectAction(t timestep.TimeStep) (actions.Action, error) {
	obs, ok := t.Observation.(timestep.BoardObservation)
	if !ok {
		return actions.Action{}, fmt.Errorf("select action: fixed policy "+
			"requires the board observation, got %T", t.Observation)
	}

	piece := obs.Piece

	if piece == block.Mono {
		left, found := deepestRun(obs.Board, 1)
		if !found {
			// A live board always has an empty cell in the scan band,
			// but recover anyway
			return randomAction(p.rng, piece), nil
		}
		return actions.Action{MoveRight: left}, nil
	}

	left, found := deepestRun(obs.Board, 2)
	if !found {
		return randomAction(p.rng, piece), nil
	}

	act := actions.Action{MoveRight: left}
	if piece == block.Post {
		// lay the narrow piece flat so it spans the two-wide run
		act.Rotations = 1
	}
	return act, nil
}

// deepestRun scans the fixed band for the deepest run of empty cells that
// is width columns wide, returning the leftmost column of the run. A run's
// depth must strictly exceed the current best to replace it, so ties go to
// the first column encountered.
func deepestRun(board *mat.Dense, width int) (left int, found bool) {
	_, cols := board.Dims()
	deep := 0

	for i := 0; i+width-1 < cols; i++ {
		if !emptyAcross(board, scanRow, i, width) {
			continue
		}

		depth := 1
		for j := 1; j < maxScanDepth; j++ {
			if !emptyAcross(board, scanRow+j, i, width) {
				break
			}
			depth = j + 1
		}

		if depth > deep {
			deep = depth
			left = i
			found = true
		}
	}
	return left, found
}

// emptyAcross returns whether the width cells starting at (row, col) are
// all free
func emptyAcross(board *mat.Dense, row, col, width int) bool {
	for w := 0; w < width; w++ {
		if board.At(row, col+w) != 0 {
			return false
		}
	}
	return true
}
