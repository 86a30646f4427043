package interpreter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrFileUnavailable is returned when a FILE path is missing or unreadable.
var ErrFileUnavailable = errors.New("file unavailable")

// Source is an ordered stream of textual command lines: the interactive
// terminal or a script file. Next returns io.EOF once exhausted. Sources are
// closed by the session when popped.
type Source interface {
	Next() (string, error)
	Name() string
	Close() error
}

type fileSource struct {
	path    string
	f       *os.File
	scanner *bufio.Scanner
}

// OpenFileSource opens a script file as a line source.
func OpenFileSource(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileUnavailable, path)
	}
	return &fileSource{path: path, f: f, scanner: bufio.NewScanner(f)}, nil
}

func (s *fileSource) Next() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrFileUnavailable, s.path, err)
	}
	return "", io.EOF
}

func (s *fileSource) Name() string {
	return s.path
}

func (s *fileSource) Close() error {
	return s.f.Close()
}

type readerSource struct {
	name    string
	scanner *bufio.Scanner
}

// NewReaderSource wraps any reader as a line source. Used for plain stdin
// when no terminal is available, and for scripted sessions in tests.
func NewReaderSource(name string, r io.Reader) Source {
	return &readerSource{name: name, scanner: bufio.NewScanner(r)}
}

func (s *readerSource) Next() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (s *readerSource) Name() string {
	return s.name
}

func (s *readerSource) Close() error {
	return nil
}
