package domain

import (
	"slices"

	m "github.com/mouse-blink/turtle/internal/model"
)

// Character is the execution cursor moved around by commands. A character
// bound to a grid validates every step; an unbound one moves freely.
type Character struct {
	position  m.Position
	direction m.Direction
	path      []m.Position
	grid      *Grid
}

// NewCharacter creates a character at (0,0) facing east. grid may be nil.
func NewCharacter(grid *Grid) *Character {
	c := &Character{grid: grid}
	c.Reset()

	return c
}

// Reset returns the character to (0,0) facing east with a one-entry path.
func (c *Character) Reset() {
	c.PlaceAt(m.NewPosition(0, 0))
	c.direction = m.East
}

// PlaceAt moves the character to pos without validation and restarts the path there.
func (c *Character) PlaceAt(pos m.Position) {
	c.position = pos
	c.path = []m.Position{pos}
}

// Position returns the current position.
func (c *Character) Position() m.Position { return c.position }

// Direction returns the facing direction.
func (c *Character) Direction() m.Direction { return c.direction }

// Grid returns the bound grid or nil.
func (c *Character) Grid() *Grid { return c.grid }

// Path returns every position occupied so far, starting with the start position.
func (c *Character) Path() []m.Position {
	return slices.Clone(c.path)
}

// Move advances steps unit steps one at a time. When bound to a grid the
// first invalid step stops the move and is returned as an error; steps
// already taken stay in the path.
func (c *Character) Move(steps int) error {
	for range steps {
		if err := c.step(); err != nil {
			return err
		}
	}

	return nil
}

func (c *Character) step() error {
	next := c.position.Step(c.direction)

	if c.grid != nil {
		if !c.grid.Contains(next) {
			return &OutOfBoundsError{Position: next}
		}

		if c.grid.IsCellBlocked(next.X, next.Y) {
			return &BlockedCellError{Position: next}
		}

		c.grid.markVisited(next)
	}

	c.position = next
	c.path = append(c.path, next)

	return nil
}

// TurnLeft rotates the character counter-clockwise.
func (c *Character) TurnLeft() {
	c.direction = c.direction.TurnLeft()
}

// TurnRight rotates the character clockwise.
func (c *Character) TurnRight() {
	c.direction = c.direction.TurnRight()
}

// Turn applies a TurnDirection.
func (c *Character) Turn(t m.TurnDirection) {
	if t == m.TurnLeft {
		c.TurnLeft()
		return
	}

	c.TurnRight()
}
