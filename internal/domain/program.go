package domain

import (
	"slices"
	"strings"

	m "github.com/mouse-blink/turtle/internal/model"
)

// Program is a named, ordered sequence of commands.
type Program struct {
	name     string
	commands []Command
}

// NewProgram creates a Program. The name must not be blank; commands may be empty.
func NewProgram(name string, commands []Command) (*Program, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalidArgument("program name cannot be empty")
	}

	for i, cmd := range commands {
		if cmd == nil {
			return nil, invalidArgument("command %d is nil", i)
		}
	}

	return &Program{name: name, commands: slices.Clone(commands)}, nil
}

// Name returns the program name.
func (p *Program) Name() string { return p.name }

// Commands returns a copy of the top-level commands.
func (p *Program) Commands() []Command { return slices.Clone(p.commands) }

// CalculateMetrics sums command and repeat counts over the top-level commands
// and takes the deepest nesting level.
func (p *Program) CalculateMetrics() m.Metrics {
	return m.Metrics{
		CommandCount:    sumCommandCount(p.commands),
		MaxNestingLevel: maxNesting(p.commands),
		RepeatCount:     sumRepeatCount(p.commands),
	}
}

// TextRepresentation renders every top-level command and joins them with newlines.
func (p *Program) TextRepresentation() string {
	lines := make([]string, 0, len(p.commands))
	for _, cmd := range p.commands {
		lines = append(lines, cmd.Render(0))
	}

	return strings.Join(lines, "\n")
}

// Execute runs the program on a fresh, unbound character. It is the
// grid-agnostic shortcut for ProgramRunner without an exercise.
func (p *Program) Execute() m.ExecutionResult {
	runner := &ProgramRunner{program: p, logger: discardLogger()}
	return runner.Execute()
}
