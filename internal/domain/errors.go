package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/turtle/internal/model"
)

var (
	// ErrInvalidArgument is returned by constructors given values they cannot accept.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned by direct grid accessors for coordinates outside the grid.
	ErrOutOfRange = errors.New("position out of range")
	// ErrIterationLimit is returned when a RepeatUntil loop runs MaxIterations
	// times without its condition holding.
	ErrIterationLimit = errors.New("RepeatUntil exceeded maximum iterations")
	// ErrInvalidFormat is returned by the grid parser and the program importer.
	ErrInvalidFormat = errors.New("invalid format")
)

// OutOfBoundsError is raised when a bound character tries to leave the grid.
type OutOfBoundsError struct {
	Position m.Position
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("Attempted to move to position %s which is outside the grid bounds", e.Position)
}

// BlockedCellError is raised when a bound character tries to enter a blocked cell.
type BlockedCellError struct {
	Position m.Position
}

func (e *BlockedCellError) Error() string {
	return fmt.Sprintf("Attempted to move to blocked cell at position %s", e.Position)
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func outOfRange(x, y int) error {
	return fmt.Errorf("%w: position (%d,%d) is outside grid bounds", ErrOutOfRange, x, y)
}

func invalidFormat(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFormat, fmt.Sprintf(format, args...))
}

// classify maps an execution error onto the model's error description.
func classify(err error) *m.ExecutionError {
	var (
		oob     *OutOfBoundsError
		blocked *BlockedCellError
	)

	switch {
	case errors.As(err, &oob):
		pos := oob.Position
		return &m.ExecutionError{Kind: m.ErrorOutOfBounds, Position: &pos, Message: err.Error()}
	case errors.As(err, &blocked):
		pos := blocked.Position
		return &m.ExecutionError{Kind: m.ErrorBlockedCell, Position: &pos, Message: err.Error()}
	case errors.Is(err, ErrIterationLimit):
		return &m.ExecutionError{Kind: m.ErrorIterationLimit, Message: err.Error()}
	default:
		return &m.ExecutionError{Kind: m.ErrorRuntime, Message: err.Error()}
	}
}
