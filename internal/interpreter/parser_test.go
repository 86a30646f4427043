package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WilliamJWhite1999/ToyRover/internal/rover"
)

func TestParseValidCommands(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"PLACE 1,2,NORTH", Place{Pos: rover.Position{X: 1, Y: 2}, Dir: rover.North}},
		{"place 0,0,south", Place{Pos: rover.Position{X: 0, Y: 0}, Dir: rover.South}},
		{"PLACE -3, 7 , west", Place{Pos: rover.Position{X: -3, Y: 7}, Dir: rover.West}},
		{"MOVE", Move{}},
		{"  move  ", Move{}},
		{"LEFT", Left{}},
		{"Right", Right{}},
		{"REPORT", Report{}},
		{"HELP", Help{}},
		{"EXIT", Exit{}},
		{"FILE demo.txt", File{Path: "demo.txt"}},
		{"FILE scripts/with space.txt", File{Path: "scripts/with space.txt"}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.line)
		require.NoError(t, err, "line %q", tt.line)
		assert.Equal(t, tt.want, got, "line %q", tt.line)
	}
}

func TestParseBlankLines(t *testing.T) {
	for _, line := range []string{"", "   ", "\t"} {
		cmd, err := Parse(line)
		require.NoError(t, err)
		assert.Nil(t, cmd)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	for _, line := range []string{"JUMP", "PLACE1,2,NORTH", "123", "!?"} {
		_, err := Parse(line)
		assert.ErrorIs(t, err, ErrUnknownCommand, "line %q", line)
	}
}

func TestParseInvalidPlacement(t *testing.T) {
	lines := []string{
		"PLACE",
		"PLACE 1,2",
		"PLACE 1,2,3,4",
		"PLACE abc,2,NORTH",
		"PLACE 1,abc,NORTH",
		"PLACE 1,2,UP",
		"PLACE 1.5,2,NORTH",
	}
	for _, line := range lines {
		_, err := Parse(line)
		assert.ErrorIs(t, err, ErrInvalidPlacement, "line %q", line)
	}
}

func TestParseFileWithoutPath(t *testing.T) {
	_, err := Parse("FILE")
	assert.ErrorIs(t, err, ErrFileUnavailable)
}
