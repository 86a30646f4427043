package rover

import "fmt"

// Position is a point on the board, measured from the south-west corner.
type Position struct {
	X, Y int
}

// Translate returns a new Position offset by the given vector.
func (p Position) Translate(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}
