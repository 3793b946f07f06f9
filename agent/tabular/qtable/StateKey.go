// Package qtable implements the tabular action-value store used by the
// learning agent.
package qtable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blocklearn/blocklearn/block"
)

// StateKey is a compact, comparable abstraction of the current situation:
// the active piece together with the per-column free-space profile. Two
// StateKeys compare equal iff the pieces match and the profiles are
// element-wise equal, regardless of which slices they were built from, so
// a StateKey is usable directly as a map key.
type StateKey struct {
	piece   block.Piece
	profile string
}

// NewStateKey builds a StateKey from the active piece and the free-space
// profile. The profile is captured by value; the caller may reuse or
// mutate the slice afterwards.
func NewStateKey(piece block.Piece, profile []int) StateKey {
	var b strings.Builder
	for i, count := range profile {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(count))
	}

	return StateKey{piece: piece, profile: b.String()}
}

// Piece returns the piece the key was built from
func (k StateKey) Piece() block.Piece {
	return k.piece
}

func (k StateKey) String() string {
	return fmt.Sprintf("%v|%v", k.piece, k.profile)
}
