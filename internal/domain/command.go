package domain

import (
	"fmt"
	"slices"
	"strings"

	m "github.com/mouse-blink/turtle/internal/model"
)

const indentWidth = 4

// Command is a node of a program's command tree. The set of implementations
// is closed: Move, Turn, Repeat and RepeatUntil.
type Command interface {
	// Execute runs the command against c without collecting a trace.
	Execute(c *Character) error
	// CommandCount counts this command and all of its descendants.
	CommandCount() int
	// MaxNestingLevel is 0 for leaves and 1 + the deepest child for containers.
	MaxNestingLevel() int
	// RepeatCount counts Repeat and RepeatUntil nodes in the subtree.
	RepeatCount() int
	// Render returns the command as indented text, 4 spaces per level.
	Render(indentLevel int) string

	isCommand()
}

// Move walks the character forward.
type Move struct {
	steps int
}

// NewMove creates a Move of steps unit steps. steps must not be negative.
func NewMove(steps int) (Move, error) {
	if steps < 0 {
		return Move{}, invalidArgument("steps must be non-negative, got %d", steps)
	}

	return Move{steps: steps}, nil
}

// Steps returns the number of unit steps.
func (c Move) Steps() int { return c.steps }

// Execute implements Command.
func (c Move) Execute(ch *Character) error { return executeCommand(c, ch) }

// CommandCount implements Command.
func (c Move) CommandCount() int { return 1 }

// MaxNestingLevel implements Command.
func (c Move) MaxNestingLevel() int { return 0 }

// RepeatCount implements Command.
func (c Move) RepeatCount() int { return 0 }

// Render implements Command.
func (c Move) Render(indentLevel int) string {
	return indent(indentLevel) + fmt.Sprintf("Move %d", c.steps)
}

func (Move) isCommand() {}

// Turn rotates the character by 90 degrees.
type Turn struct {
	direction m.TurnDirection
}

// NewTurn creates a Turn. direction must be left or right.
func NewTurn(direction m.TurnDirection) (Turn, error) {
	if !direction.Valid() {
		return Turn{}, invalidArgument("turn direction must be left or right, got %q", direction)
	}

	return Turn{direction: direction}, nil
}

// Direction returns the rotation.
func (c Turn) Direction() m.TurnDirection { return c.direction }

// Execute implements Command.
func (c Turn) Execute(ch *Character) error { return executeCommand(c, ch) }

// CommandCount implements Command.
func (c Turn) CommandCount() int { return 1 }

// MaxNestingLevel implements Command.
func (c Turn) MaxNestingLevel() int { return 0 }

// RepeatCount implements Command.
func (c Turn) RepeatCount() int { return 0 }

// Render implements Command.
func (c Turn) Render(indentLevel int) string {
	return indent(indentLevel) + "Turn " + string(c.direction)
}

func (Turn) isCommand() {}

// Repeat runs its children a fixed number of times.
type Repeat struct {
	times    int
	commands []Command
}

// NewRepeat creates a Repeat. times must not be negative and commands must not be empty.
func NewRepeat(times int, commands []Command) (Repeat, error) {
	if times < 0 {
		return Repeat{}, invalidArgument("times must be non-negative, got %d", times)
	}

	if err := validateChildren(commands); err != nil {
		return Repeat{}, err
	}

	return Repeat{times: times, commands: slices.Clone(commands)}, nil
}

// Times returns the repetition count.
func (c Repeat) Times() int { return c.times }

// Commands returns a copy of the children.
func (c Repeat) Commands() []Command { return slices.Clone(c.commands) }

// Execute implements Command.
func (c Repeat) Execute(ch *Character) error { return executeCommand(c, ch) }

// CommandCount implements Command.
func (c Repeat) CommandCount() int { return 1 + sumCommandCount(c.commands) }

// MaxNestingLevel implements Command.
func (c Repeat) MaxNestingLevel() int { return containerNesting(c.commands) }

// RepeatCount implements Command.
func (c Repeat) RepeatCount() int { return 1 + sumRepeatCount(c.commands) }

// Render implements Command.
func (c Repeat) Render(indentLevel int) string {
	return renderBlock(indentLevel, fmt.Sprintf("Repeat %d times", c.times), c.commands)
}

func (Repeat) isCommand() {}

// RepeatUntil runs its children until its condition holds, at most
// MaxIterations times.
type RepeatUntil struct {
	condition m.Condition
	commands  []Command
}

// NewRepeatUntil creates a RepeatUntil. commands must not be empty.
func NewRepeatUntil(condition m.Condition, commands []Command) (RepeatUntil, error) {
	if !condition.Valid() {
		return RepeatUntil{}, invalidArgument("unknown condition %q", condition)
	}

	if err := validateChildren(commands); err != nil {
		return RepeatUntil{}, err
	}

	return RepeatUntil{condition: condition, commands: slices.Clone(commands)}, nil
}

// Condition returns the loop's stop condition.
func (c RepeatUntil) Condition() m.Condition { return c.condition }

// Commands returns a copy of the children.
func (c RepeatUntil) Commands() []Command { return slices.Clone(c.commands) }

// Execute implements Command.
func (c RepeatUntil) Execute(ch *Character) error { return executeCommand(c, ch) }

// CommandCount implements Command.
func (c RepeatUntil) CommandCount() int { return 1 + sumCommandCount(c.commands) }

// MaxNestingLevel implements Command.
func (c RepeatUntil) MaxNestingLevel() int { return containerNesting(c.commands) }

// RepeatCount implements Command.
func (c RepeatUntil) RepeatCount() int { return 1 + sumRepeatCount(c.commands) }

// Render implements Command.
func (c RepeatUntil) Render(indentLevel int) string {
	return renderBlock(indentLevel, "RepeatUntil "+string(c.condition), c.commands)
}

func (RepeatUntil) isCommand() {}

func validateChildren(commands []Command) error {
	if len(commands) == 0 {
		return invalidArgument("commands list cannot be empty")
	}

	for i, cmd := range commands {
		if cmd == nil {
			return invalidArgument("command %d is nil", i)
		}
	}

	return nil
}

func executeCommand(cmd Command, ch *Character) error {
	return newInterpreter(nil, nil).exec(cmd, ch)
}

func indent(level int) string {
	return strings.Repeat(" ", level*indentWidth)
}

func renderBlock(indentLevel int, header string, children []Command) string {
	lines := make([]string, 0, len(children)+1)
	lines = append(lines, indent(indentLevel)+header)

	for _, child := range children {
		lines = append(lines, child.Render(indentLevel+1))
	}

	return strings.Join(lines, "\n")
}

func sumCommandCount(commands []Command) int {
	total := 0
	for _, cmd := range commands {
		total += cmd.CommandCount()
	}

	return total
}

func sumRepeatCount(commands []Command) int {
	total := 0
	for _, cmd := range commands {
		total += cmd.RepeatCount()
	}

	return total
}

func maxNesting(commands []Command) int {
	deepest := 0
	for _, cmd := range commands {
		deepest = max(deepest, cmd.MaxNestingLevel())
	}

	return deepest
}

func containerNesting(children []Command) int {
	if len(children) == 0 {
		return 0
	}

	return 1 + maxNesting(children)
}
