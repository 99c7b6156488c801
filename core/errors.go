package core

import (
	"errors"
	"fmt"
)

var (
	ErrNotTerminal      = errors.New("output is not a terminal")
	ErrTerminalTooSmall = errors.New("terminal is too small for a playable board")
)

// TerminalError records a failed terminal operation.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}
