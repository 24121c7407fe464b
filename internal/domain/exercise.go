package domain

import (
	"strings"

	m "github.com/mouse-blink/turtle/internal/model"
)

// PathfindingExercise is a grid with a start position. It is completed when
// the character ends on the grid's end cell.
type PathfindingExercise struct {
	name  string
	grid  *Grid
	start m.Position
}

// ExerciseOption configures a PathfindingExercise.
type ExerciseOption func(*PathfindingExercise)

// WithStartPosition overrides the default start position.
func WithStartPosition(pos m.Position) ExerciseOption {
	return func(e *PathfindingExercise) {
		e.start = pos
	}
}

// NewPathfindingExercise creates an exercise. The start position defaults to
// (0, height-1).
func NewPathfindingExercise(name string, grid *Grid, opts ...ExerciseOption) (*PathfindingExercise, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalidArgument("exercise name cannot be empty")
	}

	if grid == nil {
		return nil, invalidArgument("exercise grid is required")
	}

	e := &PathfindingExercise{
		name:  name,
		grid:  grid,
		start: m.NewPosition(0, grid.Height()-1),
	}

	for _, opt := range opts {
		opt(e)
	}

	if !grid.Contains(e.start) {
		return nil, invalidArgument("start position %s must be within grid bounds", e.start)
	}

	return e, nil
}

// Name returns the exercise name.
func (e *PathfindingExercise) Name() string { return e.name }

// Grid returns the exercise grid.
func (e *PathfindingExercise) Grid() *Grid { return e.grid }

// StartPosition returns where the character starts.
func (e *PathfindingExercise) StartPosition() m.Position { return e.start }

// IsCompleted reports whether pos is the grid's end position.
func (e *PathfindingExercise) IsCompleted(pos m.Position) bool {
	end, ok := e.grid.EndPosition()
	return ok && pos == end
}

// Reset clears the visited flags left by a previous run.
func (e *PathfindingExercise) Reset() {
	e.grid.Reset()
}

// View returns a grid snapshot that includes the start position.
func (e *PathfindingExercise) View() m.GridView {
	view := e.grid.View()
	start := e.start
	view.Start = &start

	return view
}
