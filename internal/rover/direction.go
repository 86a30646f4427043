package rover

import (
	"fmt"
	"strings"
)

// Direction is one of the four cardinal compass headings.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{"NORTH", "EAST", "SOUTH", "WEST"}

func (d Direction) String() string {
	if d < North || d > West {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Right returns the next heading clockwise.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Left returns the next heading counter-clockwise.
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Delta returns the unit movement vector for the heading.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	return 0, 0
}

// ParseDirection resolves a direction name, ignoring case.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "NORTH":
		return North, nil
	case "EAST":
		return East, nil
	case "SOUTH":
		return South, nil
	case "WEST":
		return West, nil
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}
