package interpreter

import "github.com/WilliamJWhite1999/ToyRover/internal/rover"

// Command is a parsed, validated instruction derived from one input line.
// The set of implementations is closed: exactly one per verb the simulator
// understands, so the dispatcher can switch over them exhaustively.
type Command interface {
	isCommand()
}

// Place puts the rover at a position with a heading.
type Place struct {
	Pos rover.Position
	Dir rover.Direction
}

// Move advances the rover one unit forwards.
type Move struct{}

// Left rotates the rover 90 degrees counter-clockwise.
type Left struct{}

// Right rotates the rover 90 degrees clockwise.
type Right struct{}

// Report prints the rover position and heading.
type Report struct{}

// Help prints the command reference.
type Help struct{}

// File replays commands from a script file.
type File struct {
	Path string
}

// Exit ends the session.
type Exit struct{}

func (Place) isCommand()  {}
func (Move) isCommand()   {}
func (Left) isCommand()   {}
func (Right) isCommand()  {}
func (Report) isCommand() {}
func (Help) isCommand()   {}
func (File) isCommand()   {}
func (Exit) isCommand()   {}
