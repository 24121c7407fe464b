package model

import "fmt"

// Position is a point on the grid. (0,0) is the bottom-left cell and Y grows
// upwards. Positions are values: moving produces a new Position.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// NewPosition constructs a Position.
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// Step returns the neighbouring position one unit away in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Vector()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
