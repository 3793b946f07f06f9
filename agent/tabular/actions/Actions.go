// Package actions enumerates the discrete action space shared by all
// tabular policies.
//
// An action is a pair (number of columns to move the piece right, number of
// times to rotate it before the drop). The space is flattened into integer
// indices in row-major order over (move, rotation) so that tabular stores
// can index action values by a single int. Both Decode and Encode follow
// the same ordering, so a raw uniform draw over [0, NumActions) decodes
// consistently with the indices used for greedy lookup.
package actions

import "fmt"

const (
	// NumMoves is the number of horizontal-offset choices.
	NumMoves = 6

	// NumRotations is the number of rotation choices.
	NumRotations = 4

	// NumActions is the size of the flattened action space.
	NumActions = NumMoves * NumRotations
)

// Action is a single environment action: move the falling piece MoveRight
// columns to the right, rotate it Rotations times, then drop it.
type Action struct {
	MoveRight int
	Rotations int
}

func (a Action) String() string {
	return fmt.Sprintf("Action | Move right: %d  |  Rotations: %d",
		a.MoveRight, a.Rotations)
}

// Decode maps an action index in [0, NumActions) to its (move, rotation)
// pair. Decode is a bijection over the index range: every index decodes to
// exactly one pair and every pair is the image of exactly one index.
func Decode(index int) (Action, error) {
	if index < 0 || index >= NumActions {
		return Action{}, fmt.Errorf("decode: action index %d out of range "+
			"[0, %d)", index, NumActions)
	}

	return Action{
		MoveRight: index / NumRotations,
		Rotations: index % NumRotations,
	}, nil
}

// Encode is the inverse of Decode
func Encode(a Action) (int, error) {
	if a.MoveRight < 0 || a.MoveRight >= NumMoves {
		return 0, fmt.Errorf("encode: move %d out of range [0, %d)",
			a.MoveRight, NumMoves)
	}
	if a.Rotations < 0 || a.Rotations >= NumRotations {
		return 0, fmt.Errorf("encode: rotation %d out of range [0, %d)",
			a.Rotations, NumRotations)
	}

	return a.MoveRight*NumRotations + a.Rotations, nil
}
