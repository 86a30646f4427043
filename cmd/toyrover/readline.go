package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/WilliamJWhite1999/ToyRover/internal/interpreter"
)

// interactiveSource returns a readline-backed source with history and prompt
// support, falling back to plain stdin scanning when no terminal is
// available (piped input, dumb terminals).
func interactiveSource(historyFile string) interpreter.Source {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "Enter Command > ",
		HistoryFile:     historyFile,
		HistoryLimit:    100,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline unavailable (%v), falling back to simple input\n", err)
		return interpreter.NewReaderSource("stdin", os.Stdin)
	}
	return &readlineSource{rl: rl}
}

type readlineSource struct {
	rl *readline.Instance
}

func (s *readlineSource) Next() (string, error) {
	line, err := s.rl.Readline()
	if err != nil {
		// Ctrl+C and Ctrl+D both end the interactive source.
		if err == readline.ErrInterrupt || err == io.EOF {
			return "", io.EOF
		}
		return "", err
	}
	return line, nil
}

func (s *readlineSource) Name() string {
	return "interactive"
}

func (s *readlineSource) Close() error {
	return s.rl.Close()
}
