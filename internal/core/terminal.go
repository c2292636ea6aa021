package core

import (
	"errors"
	"fmt"
	"time"
)

// Terminal is the capability the game loop needs from a terminal.
// Backends (Bubble Tea, tcell) implement it; tests use an in-memory fake.
type Terminal interface {
	// EnableRawMode takes exclusive control of terminal input.
	// Every successful call must be paired with DisableRawMode.
	EnableRawMode() error

	// DisableRawMode restores the terminal to its prior mode.
	DisableRawMode() error

	// PollKey waits up to timeout for a single key press.
	// ok is false when no key arrived within the window.
	PollKey(timeout time.Duration) (ev KeyEvent, ok bool, err error)

	// Clear erases the screen.
	Clear() error

	// MoveCursor positions the write cursor (0-indexed).
	MoveCursor(x, y int) error

	// WriteLine writes text at the cursor and moves to the next row.
	WriteLine(text string) error

	// Flush makes everything written since the last Clear visible.
	Flush() error
}

// ErrTerminalClosed is reported when the backend went away underneath the loop.
var ErrTerminalClosed = errors.New("terminal closed")

// TermError is the single error kind for terminal I/O failures:
// raw-mode changes, polling and drawing.
type TermError struct {
	Op  string // Operation that failed, e.g. "poll" or "flush"
	Err error
}

// Error implements error.
func (e *TermError) Error() string {
	return fmt.Sprintf("terminal: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TermError) Unwrap() error {
	return e.Err
}

// WrapTermError wraps err as a TermError for op.
// Returns nil if err is nil and leaves existing TermErrors untouched.
func WrapTermError(op string, err error) error {
	if err == nil {
		return nil
	}
	var te *TermError
	if errors.As(err, &te) {
		return err
	}
	return &TermError{Op: op, Err: err}
}
