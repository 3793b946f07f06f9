// Package block describes the falling pieces that environments spawn.
package block

// Piece identifies one of the falling-piece variants. A Piece is an
// immutable descriptor: its width and height are derived from its
// identity and never change.
type Piece int

const (
	// Square is the 2x2 piece.
	Square Piece = iota

	// Brick is the flat piece, two wide and one tall.
	Brick

	// StepLeft and StepRight are the two corner pieces. Each fits in a
	// 2x2 bounding box with one cell missing.
	StepLeft
	StepRight

	// Post is the narrow piece, one wide and two tall. The fixed policy
	// lays it flat before dropping it into a two-wide run.
	Post

	// Mono is the single-cell piece. The fixed policy drops it into the
	// deepest single-column run it can find.
	Mono
)

// NumPieces is the number of piece variants.
const NumPieces = 6

// Width returns the unrotated width of the piece in columns.
func (p Piece) Width() int {
	switch p {
	case Post, Mono:
		return 1
	default:
		return 2
	}
}

// Height returns the unrotated height of the piece in rows.
func (p Piece) Height() int {
	switch p {
	case Brick, Mono:
		return 1
	default:
		return 2
	}
}

func (p Piece) String() string {
	switch p {
	case Square:
		return "Square"
	case Brick:
		return "Brick"
	case StepLeft:
		return "StepLeft"
	case StepRight:
		return "StepRight"
	case Post:
		return "Post"
	case Mono:
		return "Mono"
	default:
		return "Unknown"
	}
}
