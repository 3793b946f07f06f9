// Package policy implements the action-selection strategies of the tabular
// agents
package policy

import (
	"golang.org/x/exp/rand"

	"github.com/blocklearn/blocklearn/agent/tabular/actions"
	"github.com/blocklearn/blocklearn/block"
	"github.com/blocklearn/blocklearn/timestep"
)

// Random selects actions uniformly at random, bounding the horizontal move
// by the active piece's width so that wide pieces stay on the board. It is
// useful as a baseline to compare a learning agent against. Random works
// with either observation shape.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a new Random policy
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// SelectAction draws a uniform move and rotation for the active piece
func (p *Random) SelectAction(t timestep.TimeStep) (actions.Action, error) {
	return randomAction(p.rng, t.Observation.ActivePiece()), nil
}

// randomAction draws from the random policy's distribution: moves uniform
// over [0, 5) for width-2 pieces and [0, 6) otherwise, rotations uniform
// over [0, 4).
func randomAction(rng *rand.Rand, piece block.Piece) actions.Action {
	moves := actions.NumMoves
	if piece.Width() == 2 {
		moves = actions.NumMoves - 1
	}

	return actions.Action{
		MoveRight: rng.Intn(moves),
		Rotations: rng.Intn(actions.NumRotations),
	}
}
