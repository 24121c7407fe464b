package domain

import (
	"fmt"
	"log/slog"

	m "github.com/mouse-blink/turtle/internal/model"
)

// MaxIterations bounds the number of times a RepeatUntil body may run.
const MaxIterations = 10000

// StepObserver receives every observable step of an execution as it happens.
type StepObserver func(step m.Step)

// interpreter walks a command tree against a character. Validation depends
// only on whether the character is bound to a grid, so the same walk serves
// Command.Execute, Program.Execute and ProgramRunner.Execute.
type interpreter struct {
	trace    []string
	observer StepObserver
	logger   *slog.Logger
	steps    int
}

func newInterpreter(observer StepObserver, logger *slog.Logger) *interpreter {
	if logger == nil {
		logger = discardLogger()
	}

	return &interpreter{observer: observer, logger: logger}
}

func (in *interpreter) run(commands []Command, c *Character) error {
	for _, cmd := range commands {
		if err := in.exec(cmd, c); err != nil {
			return err
		}
	}

	return nil
}

func (in *interpreter) exec(cmd Command, c *Character) error {
	switch cmd := cmd.(type) {
	case Move:
		for i := range cmd.steps {
			if err := c.Move(1); err != nil {
				return err
			}

			in.emit(c, fmt.Sprintf("Move (step %d of %d)", i+1, cmd.steps))
		}

		in.trace = append(in.trace, cmd.Render(0))
	case Turn:
		c.Turn(cmd.direction)
		in.emit(c, cmd.Render(0))
		in.trace = append(in.trace, cmd.Render(0))
	case Repeat:
		in.logger.Debug("executing repeat", "times", cmd.times)

		for range cmd.times {
			if err := in.run(cmd.commands, c); err != nil {
				return err
			}
		}
	case RepeatUntil:
		return in.repeatUntil(cmd, c)
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}

	return nil
}

func (in *interpreter) repeatUntil(cmd RepeatUntil, c *Character) error {
	in.logger.Debug("executing repeat until", "condition", cmd.condition)

	iterations := 0
	for !conditionHolds(cmd.condition, c) {
		if iterations >= MaxIterations {
			in.logger.Error("repeat until exceeded maximum iterations", "max", MaxIterations)
			return fmt.Errorf("%w (%d) - possible infinite loop", ErrIterationLimit, MaxIterations)
		}

		if err := in.run(cmd.commands, c); err != nil {
			return err
		}

		iterations++
	}

	in.logger.Debug("repeat until completed", "iterations", iterations)

	return nil
}

// start reports the initial state as step 0.
func (in *interpreter) start(c *Character) {
	in.emit(c, "Start")
}

func (in *interpreter) emit(c *Character, description string) {
	if in.observer == nil {
		return
	}

	in.observer(m.Step{
		Index:       in.steps,
		Position:    c.Position(),
		Direction:   c.Direction(),
		Description: description,
	})
	in.steps++
}

// conditionHolds evaluates a RepeatUntil condition against the character's
// current state. Without a grid there are no walls or edges.
func conditionHolds(condition m.Condition, c *Character) bool {
	grid := c.Grid()
	if grid == nil {
		return false
	}

	next := grid.NextPosition(c.Position(), c.Direction())

	switch condition {
	case m.ConditionWallAhead:
		return grid.IsCellBlocked(next.X, next.Y)
	case m.ConditionGridEdge:
		return !grid.Contains(next)
	default:
		return false
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
