// Package blockdrop implements the falling-block game environment that the
// tabular agents play.
//
// The board is a fixed-size occupancy grid. On each step the environment
// takes a (move right, rotate) action for the currently falling piece,
// clamps the move against the board and piece geometry, drops the piece
// straight down as far as it will go, clears any rows the drop completed,
// and spawns the next piece. The episode ends when a piece no longer fits
// on the board.
package blockdrop

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/blocklearn/blocklearn/agent/tabular/actions"
	"github.com/blocklearn/blocklearn/block"
	"github.com/blocklearn/blocklearn/environment"
	"github.com/blocklearn/blocklearn/timestep"
	"github.com/blocklearn/blocklearn/utils/matutils"
)

const (
	// Rows and Cols are the board dimensions. Six horizontal offsets for
	// two-wide pieces mean the rightmost column only ever holds the right
	// half of a wide piece.
	Rows = 16
	Cols = 7

	// ProfileRow is the row the free-space profile is counted from. The
	// rows above it form the spawn area. The fixed policy's scan band
	// starts at the same row.
	ProfileRow = 2
)

// Env is a concrete falling-block environment
type Env struct {
	board    *mat.Dense
	current  block.Piece
	next     block.Piece
	mode     environment.ObsMode
	discount float64
	rng      *rand.Rand

	currentStep timestep.TimeStep
}

var _ environment.Environment = (*Env)(nil)

// New creates a new falling-block environment serving the argument
// observation mode. The environment starts ready to use. Environments
// created from the same seed behave identically.
func New(mode environment.ObsMode, discount float64, seed uint64) *Env {
	e := &Env{
		board:    mat.NewDense(Rows, Cols, nil),
		mode:     mode,
		discount: discount,
		rng:      rand.New(rand.NewSource(seed)),
	}
	e.Reset()

	return e
}

// ObsMode returns the observation contract this environment serves
func (e *Env) ObsMode() environment.ObsMode {
	return e.mode
}

// Reset resets the environment between episodes: the board is cleared and
// fresh pieces are spawned.
func (e *Env) Reset() timestep.TimeStep {
	e.board.Zero()
	e.current = e.spawn()
	e.next = e.spawn()

	step := timestep.New(timestep.First, 0, e.discount, e.observation(), 0)
	e.currentStep = step
	return step
}

// Step executes an action for the currently falling piece, returning the
// resulting timestep and whether that timestep is the last in the episode.
// The requested move is clamped so the rotated piece stays on the board.
func (e *Env) Step(a actions.Action) (timestep.TimeStep, bool) {
	cells, w, h := rotated(e.current, a.Rotations)

	col := a.MoveRight
	if col > Cols-w {
		col = Cols - w
	}
	if col < 0 {
		col = 0
	}

	number := e.currentStep.Number + 1

	row, ok := e.landingRow(cells, col, h)
	if !ok {
		// The piece no longer fits: the board has topped out
		step := timestep.New(timestep.Last, 0, e.discount, e.observation(),
			number)
		e.currentStep = step
		return step, true
	}

	for _, c := range cells {
		e.board.Set(row+c.dr, col+c.dc, 1)
	}
	reward := float64(e.clearFullRows())

	e.current = e.next
	e.next = e.spawn()

	step := timestep.New(timestep.Mid, reward, e.discount, e.observation(),
		number)
	e.currentStep = step
	return step, false
}

// Profile returns the free-space profile of the board: for each column,
// the number of contiguous free cells from ProfileRow down to the first
// occupied cell.
func (e *Env) Profile() []int {
	profile := make([]int, Cols)
	for c := 0; c < Cols; c++ {
		for r := ProfileRow; r < Rows && e.board.At(r, c) == 0; r++ {
			profile[c]++
		}
	}
	return profile
}

func (e *Env) String() string {
	return matutils.Format(e.board)
}

// observation builds the observation shape this environment was
// constructed to serve
func (e *Env) observation() timestep.Observation {
	if e.mode == environment.ProfileObs {
		return timestep.ProfileObservation{
			Piece:   e.current,
			Profile: e.Profile(),
		}
	}

	return timestep.BoardObservation{
		Piece: e.current,
		Next:  e.next,
		Board: mat.DenseCopyOf(e.board),
	}
}

func (e *Env) spawn() block.Piece {
	return block.Piece(e.rng.Intn(block.NumPieces))
}

// landingRow drops the piece straight down from the top of the board,
// returning the topmost row of its final position. ok is false when the
// piece does not fit even at the top.
func (e *Env) landingRow(cells []cell, col, h int) (row int, ok bool) {
	if !e.fits(cells, 0, col) {
		return 0, false
	}

	for row+1 <= Rows-h && e.fits(cells, row+1, col) {
		row++
	}
	return row, true
}

// fits returns whether every cell of the piece is free when its bounding
// box sits at (row, col)
func (e *Env) fits(cells []cell, row, col int) bool {
	for _, c := range cells {
		r := row + c.dr
		if r >= Rows || e.board.At(r, col+c.dc) != 0 {
			return false
		}
	}
	return true
}

// clearFullRows removes every fully-occupied row, shifting the rows above
// it down, and returns the number of rows cleared
func (e *Env) clearFullRows() int {
	cleared := 0

	for r := Rows - 1; r >= 0; r-- {
		full := true
		for c := 0; c < Cols; c++ {
			if e.board.At(r, c) == 0 {
				full = false
				break
			}
		}
		if !full {
			continue
		}

		cleared++
		for rr := r; rr > 0; rr-- {
			for c := 0; c < Cols; c++ {
				e.board.Set(rr, c, e.board.At(rr-1, c))
			}
		}
		for c := 0; c < Cols; c++ {
			e.board.Set(0, c, 0)
		}
		r++ // the shifted row must be rechecked
	}
	return cleared
}

// cell is one occupied cell of a piece, as a row/column offset from the
// top-left of the piece's bounding box
type cell struct {
	dr, dc int
}

// shapes holds the unrotated cells of each piece
var shapes = map[block.Piece][]cell{
	block.Square:    {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	block.Brick:     {{0, 0}, {0, 1}},
	block.StepLeft:  {{0, 0}, {1, 0}, {1, 1}},
	block.StepRight: {{0, 1}, {1, 0}, {1, 1}},
	block.Post:      {{0, 0}, {1, 0}},
	block.Mono:      {{0, 0}},
}

// rotated returns the piece's cells after rotating its bounding box
// clockwise the given number of quarter turns, along with the rotated
// bounding width and height.
func rotated(p block.Piece, rotations int) (cells []cell, w, h int) {
	cells = append([]cell(nil), shapes[p]...)
	w, h = p.Width(), p.Height()

	for i := 0; i < rotations%actions.NumRotations; i++ {
		for j, c := range cells {
			cells[j] = cell{dr: c.dc, dc: h - 1 - c.dr}
		}
		w, h = h, w
	}
	return cells, w, h
}
