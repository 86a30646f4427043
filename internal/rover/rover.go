package rover

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPlaced is returned by operations issued before a successful Place.
	ErrNotPlaced = errors.New("rover is not placed")
	// ErrOutOfBounds is returned when a placement or move would leave the board.
	ErrOutOfBounds = errors.New("out of bounds")
)

// Rover is the simulated entity: a position and a heading on a board. It is
// unplaced until the first successful Place; until then every other operation
// fails with ErrNotPlaced.
type Rover struct {
	board  Board
	placed bool
	pos    Position
	dir    Direction
}

func New(board Board) *Rover {
	return &Rover{board: board}
}

// Place puts the rover at the given position with the given heading,
// overwriting any previous state. A position outside the board is rejected
// and the previous state kept.
func (r *Rover) Place(pos Position, dir Direction) error {
	if !r.board.Contains(pos) {
		return fmt.Errorf("%w: cannot place rover at %s", ErrOutOfBounds, pos)
	}
	r.pos = pos
	r.dir = dir
	r.placed = true
	return nil
}

// Move advances the rover one unit along its heading. A move that would leave
// the board is rejected and the position kept.
func (r *Rover) Move() error {
	if !r.placed {
		return ErrNotPlaced
	}
	dx, dy := r.dir.Delta()
	target := r.pos.Translate(dx, dy)
	if !r.board.Contains(target) {
		return fmt.Errorf("%w: cannot move to %s", ErrOutOfBounds, target)
	}
	r.pos = target
	return nil
}

// Left rotates the rover 90 degrees counter-clockwise.
func (r *Rover) Left() error {
	if !r.placed {
		return ErrNotPlaced
	}
	r.dir = r.dir.Left()
	return nil
}

// Right rotates the rover 90 degrees clockwise.
func (r *Rover) Right() error {
	if !r.placed {
		return ErrNotPlaced
	}
	r.dir = r.dir.Right()
	return nil
}

// Report returns the visible rover state as "x,y,DIRECTION".
func (r *Rover) Report() (string, error) {
	if !r.placed {
		return "", ErrNotPlaced
	}
	return fmt.Sprintf("%s,%s", r.pos, r.dir), nil
}

func (r *Rover) Placed() bool {
	return r.placed
}

func (r *Rover) Position() Position {
	return r.pos
}

func (r *Rover) Heading() Direction {
	return r.dir
}
