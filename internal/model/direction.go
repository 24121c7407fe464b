package model

import (
	"fmt"
	"strings"
)

// Direction is one of the four compass directions a character can face.
type Direction int

// Available Direction values.
const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{"North", "East", "South", "West"}

// TurnLeft returns the direction 90 degrees counter-clockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	default:
		return North
	}
}

// TurnRight returns the direction 90 degrees clockwise.
func (d Direction) TurnRight() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

// Vector returns the unit movement for the direction.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}

	return 0, 0
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}

	return directionNames[d]
}

// Lower returns the lower-case name, e.g. "east".
func (d Direction) Lower() string {
	return strings.ToLower(d.String())
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}

	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name (case-insensitive).
func (d *Direction) UnmarshalText(text []byte) error {
	for i, name := range directionNames {
		if strings.EqualFold(name, string(text)) {
			*d = Direction(i)
			return nil
		}
	}

	return fmt.Errorf("unknown direction %q", string(text))
}
