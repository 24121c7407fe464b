package domain

import (
	"fmt"

	m "github.com/mouse-blink/turtle/internal/model"
)

// Defaults applied to nodes that omit their parameter, matching what a block
// editor inserts for a freshly dropped block.
const (
	defaultNodeSteps = 1
	defaultNodeTimes = 2
)

// ToNode converts a command into its serializable tree shape.
func ToNode(cmd Command) m.CommandNode {
	switch cmd := cmd.(type) {
	case Move:
		steps := cmd.steps
		return m.CommandNode{Type: m.CommandMove, Steps: &steps}
	case Turn:
		return m.CommandNode{Type: m.CommandTurn, Direction: cmd.direction}
	case Repeat:
		times := cmd.times
		return m.CommandNode{Type: m.CommandRepeat, Times: &times, Commands: ToNodes(cmd.commands)}
	case RepeatUntil:
		return m.CommandNode{Type: m.CommandRepeatUntil, Condition: cmd.condition, Commands: ToNodes(cmd.commands)}
	}

	return m.CommandNode{}
}

// ToNodes converts a command sequence.
func ToNodes(commands []Command) []m.CommandNode {
	nodes := make([]m.CommandNode, 0, len(commands))
	for _, cmd := range commands {
		nodes = append(nodes, ToNode(cmd))
	}

	return nodes
}

// Document returns the program as a serializable document.
func (p *Program) Document() m.ProgramDocument {
	return m.ProgramDocument{Name: p.name, Commands: ToNodes(p.commands), Text: p.TextRepresentation()}
}

// FromNode builds a command from its tree shape.
func FromNode(node m.CommandNode) (Command, error) {
	switch node.Type {
	case m.CommandMove:
		return NewMove(intOr(node.Steps, defaultNodeSteps))
	case m.CommandTurn:
		return NewTurn(node.Direction)
	case m.CommandRepeat:
		children, err := FromNodes(node.Commands)
		if err != nil {
			return nil, err
		}

		return NewRepeat(intOr(node.Times, defaultNodeTimes), children)
	case m.CommandRepeatUntil:
		children, err := FromNodes(node.Commands)
		if err != nil {
			return nil, err
		}

		condition := node.Condition
		if condition == "" {
			condition = m.ConditionWallAhead
		}

		return NewRepeatUntil(condition, children)
	default:
		return nil, invalidFormat("unknown command type %q", node.Type)
	}
}

// FromNodes builds a command sequence.
func FromNodes(nodes []m.CommandNode) ([]Command, error) {
	commands := make([]Command, 0, len(nodes))

	for i, node := range nodes {
		cmd, err := FromNode(node)
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}

		commands = append(commands, cmd)
	}

	return commands, nil
}

// FromDocument builds a program from a document.
func FromDocument(doc m.ProgramDocument) (*Program, error) {
	commands, err := FromNodes(doc.Commands)
	if err != nil {
		return nil, err
	}

	return NewProgram(doc.Name, commands)
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}

	return *v
}
