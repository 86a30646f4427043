package rover

// Board defines the simulation space bounds. Coordinates from 0 up to and
// including Width/Height are valid. A board with a non-positive dimension is
// unbounded and contains every point.
type Board struct {
	Width, Height int
}

func NewBoard(width, height int) Board {
	return Board{Width: width, Height: height}
}

// Unbounded reports whether the board performs no containment checks.
func (b Board) Unbounded() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Contains reports whether the point lies within the board space.
// Obstacle checks would go here if the simulation ever grows them.
func (b Board) Contains(p Position) bool {
	if b.Unbounded() {
		return true
	}
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}
