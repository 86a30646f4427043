package interpreter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/WilliamJWhite1999/ToyRover/internal/rover"
)

var (
	// ErrUnknownCommand is returned when a line's keyword matches no verb.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidPlacement is returned for malformed PLACE arguments.
	ErrInvalidPlacement = errors.New("invalid placement")
)

// A line is a verb followed by the raw remainder of the line. Splitting the
// remainder is each verb's own business (PLACE splits on commas, FILE takes
// it whole), so the lexer switches state after the verb and captures the rest
// as a single token.
type commandLine struct {
	Verb string `parser:"@Verb"`
	Args string `parser:"@Args?"`
}

var lineLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "whitespace", Pattern: `[ \t]+`},
		{Name: "Verb", Pattern: `[A-Za-z]+`, Action: lexer.Push("Args")},
	},
	"Args": {
		{Name: "whitespace", Pattern: `[ \t]+`},
		{Name: "Args", Pattern: `[^\r\n]+`},
	},
})

var lineParser = participle.MustBuild[commandLine](participle.Lexer(lineLexer))

// Parse turns one raw input line into a Command. Blank lines yield a nil
// Command and no error. Verbs are matched case-insensitively.
func Parse(line string) (Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := lineParser.ParseString("", trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, trimmed)
	}
	// The verb must be a whole word: "PLACE1,2,NORTH" is not a PLACE.
	if rest := trimmed[len(parsed.Verb):]; rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, trimmed)
	}
	args := strings.TrimSpace(parsed.Args)
	switch strings.ToUpper(parsed.Verb) {
	case "PLACE":
		return parsePlace(args)
	case "MOVE":
		return Move{}, nil
	case "LEFT":
		return Left{}, nil
	case "RIGHT":
		return Right{}, nil
	case "REPORT":
		return Report{}, nil
	case "HELP":
		return Help{}, nil
	case "FILE":
		if args == "" {
			return nil, fmt.Errorf("%w: FILE requires a path", ErrFileUnavailable)
		}
		return File{Path: args}, nil
	case "EXIT":
		return Exit{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, parsed.Verb)
}

// parsePlace validates a "x,y,DIRECTION" argument string.
func parsePlace(args string) (Command, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected x,y,DIRECTION, got %q", ErrInvalidPlacement, args)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: x coordinate %q is not an integer", ErrInvalidPlacement, parts[0])
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: y coordinate %q is not an integer", ErrInvalidPlacement, parts[1])
	}
	dir, err := rover.ParseDirection(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlacement, err)
	}
	return Place{Pos: rover.Position{X: x, Y: y}, Dir: dir}, nil
}
