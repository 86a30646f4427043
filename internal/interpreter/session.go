package interpreter

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/WilliamJWhite1999/ToyRover/internal/rover"
)

// ErrRecursiveInclude is returned when a FILE command would re-enter a file
// already on the source stack, or nest deeper than the configured cap.
var ErrRecursiveInclude = errors.New("recursive file inclusion")

// DefaultMaxIncludeDepth bounds FILE nesting when Options leaves it zero.
const DefaultMaxIncludeDepth = 16

// Options tunes session behaviour.
type Options struct {
	// MaxIncludeDepth caps the source stack depth reachable through FILE.
	MaxIncludeDepth int
}

type frame struct {
	src Source
	// canonical path for file sources, "" otherwise
	canon string
}

// Session owns the rover and the stack of line sources, and runs the
// read-eval loop: pull a line from the top source, parse it, dispatch it.
// Every error is reported as a one-line diagnostic on the output writer and
// the loop carries on; only EXIT or exhaustion of all sources ends it.
type Session struct {
	rover    *rover.Rover
	out      io.Writer
	stack    []frame
	included map[string]bool
	maxDepth int
}

func NewSession(r *rover.Rover, out io.Writer, opts Options) *Session {
	depth := opts.MaxIncludeDepth
	if depth <= 0 {
		depth = DefaultMaxIncludeDepth
	}
	return &Session{
		rover:    r,
		out:      out,
		included: make(map[string]bool),
		maxDepth: depth,
	}
}

// Run consumes the given root source until it and everything it includes is
// exhausted, or an EXIT command is processed.
func (s *Session) Run(root Source) {
	s.stack = append(s.stack, frame{src: root})
	defer func() {
		for len(s.stack) > 0 {
			s.pop()
		}
	}()

	for len(s.stack) > 0 {
		top := s.stack[len(s.stack)-1]
		line, err := top.src.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.diag(err)
			}
			s.pop()
			continue
		}
		cmd, err := Parse(line)
		if err != nil {
			s.diag(err)
			continue
		}
		if cmd == nil {
			continue
		}
		halt, err := s.Exec(cmd)
		if err != nil {
			s.diag(err)
			continue
		}
		if halt {
			return
		}
	}
}

// Exec dispatches a single command against the rover or the source stack.
// It reports whether the session should halt.
func (s *Session) Exec(cmd Command) (halt bool, err error) {
	switch c := cmd.(type) {
	case Place:
		return false, s.rover.Place(c.Pos, c.Dir)
	case Move:
		return false, s.rover.Move()
	case Left:
		return false, s.rover.Left()
	case Right:
		return false, s.rover.Right()
	case Report:
		state, err := s.rover.Report()
		if err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, state)
		return false, nil
	case Help:
		fmt.Fprint(s.out, helpText)
		return false, nil
	case File:
		return false, s.pushFile(c.Path)
	case Exit:
		return true, nil
	}
	return false, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
}

// pushFile opens a script and makes it the active source. The canonical path
// of every file on the stack is tracked so a script cannot include itself,
// directly or through intermediaries.
func (s *Session) pushFile(path string) error {
	canon, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrFileUnavailable, path)
	}
	if s.included[canon] {
		return fmt.Errorf("%w: %s is already being read", ErrRecursiveInclude, path)
	}
	if len(s.stack) >= s.maxDepth {
		return fmt.Errorf("%w: nesting deeper than %d files", ErrRecursiveInclude, s.maxDepth)
	}
	src, err := OpenFileSource(path)
	if err != nil {
		return err
	}
	s.stack = append(s.stack, frame{src: src, canon: canon})
	s.included[canon] = true
	return nil
}

// pop closes the active source and returns control to its parent.
func (s *Session) pop() {
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	if top.canon != "" {
		delete(s.included, top.canon)
	}
	if err := top.src.Close(); err != nil {
		s.diag(fmt.Errorf("closing %s: %v", top.src.Name(), err))
	}
}

func (s *Session) diag(err error) {
	fmt.Fprintf(s.out, "error: %v\n", err)
}
