package model

import (
	"fmt"
	"strings"
)

// TurnDirection is the rotation applied by a Turn command.
type TurnDirection string

const (
	// TurnLeft rotates the character counter-clockwise.
	TurnLeft TurnDirection = "left"
	// TurnRight rotates the character clockwise.
	TurnRight TurnDirection = "right"
)

// Valid reports whether t is left or right.
func (t TurnDirection) Valid() bool {
	return t == TurnLeft || t == TurnRight
}

// ParseTurnDirection parses "left" or "right" (case-insensitive).
func ParseTurnDirection(s string) (TurnDirection, error) {
	t := TurnDirection(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown turn direction %q", s)
	}

	return t, nil
}

// Condition is the predicate a RepeatUntil command tests before each iteration.
type Condition string

const (
	// ConditionWallAhead holds when the next cell is off the grid or blocked.
	ConditionWallAhead Condition = "WallAhead"
	// ConditionGridEdge holds when the next cell is off the grid.
	ConditionGridEdge Condition = "GridEdge"
)

// Valid reports whether c is a known condition.
func (c Condition) Valid() bool {
	return c == ConditionWallAhead || c == ConditionGridEdge
}

// ParseCondition parses a condition name (case-insensitive).
func ParseCondition(s string) (Condition, error) {
	for _, c := range []Condition{ConditionWallAhead, ConditionGridEdge} {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}

	return "", fmt.Errorf("unknown condition %q", s)
}

// CommandType tags a CommandNode.
type CommandType string

// Available CommandType values.
const (
	CommandMove        CommandType = "Move"
	CommandTurn        CommandType = "Turn"
	CommandRepeat      CommandType = "Repeat"
	CommandRepeatUntil CommandType = "RepeatUntil"
)

// CommandNode is the public, serializable shape of a command tree. It is what
// exporters write and what block editors and importers read back.
type CommandNode struct {
	Type      CommandType   `json:"type" yaml:"type"`
	Steps     *int          `json:"steps,omitempty" yaml:"steps,omitempty"`
	Direction TurnDirection `json:"direction,omitempty" yaml:"direction,omitempty"`
	Times     *int          `json:"times,omitempty" yaml:"times,omitempty"`
	Condition Condition     `json:"condition,omitempty" yaml:"condition,omitempty"`
	Commands  []CommandNode `json:"commands,omitempty" yaml:"commands,omitempty"`
}

// ProgramDocument is a named list of command nodes.
type ProgramDocument struct {
	Name     string        `json:"name" yaml:"name"`
	Commands []CommandNode `json:"commands" yaml:"commands"`
	// Text is the rendered program, used by the plain text exporter.
	Text string `json:"-" yaml:"-"`
}

// Metrics are aggregate counts derived from a command tree.
type Metrics struct {
	CommandCount    int `json:"command_count"`
	MaxNestingLevel int `json:"max_nesting_level"`
	RepeatCount     int `json:"repeat_count"`
}

func (m Metrics) String() string {
	return fmt.Sprintf("Commands: %d, Max Nesting: %d, Repeats: %d", m.CommandCount, m.MaxNestingLevel, m.RepeatCount)
}

// ProgramSummary describes a built-in sample program.
type ProgramSummary struct {
	Key     string
	Name    string
	Metrics Metrics
	Text    string
}
