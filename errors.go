package packet

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates malformed packet text.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidAppend indicates an attempt to append a child to a node that cannot hold one.
	ErrInvalidAppend = errors.New("invalid append")
)

// SyntaxError describes malformed packet text at a position.
// It matches ErrInvalidFormat with errors.Is.
type SyntaxError struct {
	Msg  string // Description of the problem
	Line int    // Line number, 1-based
	Col  int    // Column number, 1-based
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at %d:%d: %s", ErrInvalidFormat, e.Line, e.Col, e.Msg)
}

// Unwrap returns ErrInvalidFormat.
func (e *SyntaxError) Unwrap() error {
	return ErrInvalidFormat
}

// syntaxErrorf creates a SyntaxError at line:col.
func syntaxErrorf(line, col int, format string, args ...any) error {
	return &SyntaxError{Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}
