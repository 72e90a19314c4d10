// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates a coordinate off the 8x8 board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidPlacement indicates a malformed piece-placement string.
	ErrInvalidPlacement = errors.New("invalid piece placement")

	// ErrMissingKing indicates a board without exactly one king per colour.
	// Once a game is running this is an engine defect, not a user mistake.
	ErrMissingKing = errors.New("missing king")

	// ErrIllegalMove indicates a move that is not in the current legal set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move submitted after the game reached an outcome.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrArchive indicates a failure of the game archive store.
	ErrArchive = errors.New("archive failure")

	// ErrGameNotFound indicates an archive lookup for an unknown game.
	ErrGameNotFound = errors.New("game not found")
)

// MoveError wraps errors with move context: the ply at which the move was
// submitted and the move itself. It implements the error interface and
// supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Ply    int    // 1-based ply the move would have been
	Move   string // The move in coordinate form
	Colour string // Side that submitted the move (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
