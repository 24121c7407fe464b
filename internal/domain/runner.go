package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	m "github.com/mouse-blink/turtle/internal/model"
)

// RunnerOption is a functional option for NewProgramRunner.
type RunnerOption func(*ProgramRunner)

// WithLogger sets the logger used while executing.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *ProgramRunner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithStepObserver registers a callback for every execution step.
func WithStepObserver(observer StepObserver) RunnerOption {
	return func(r *ProgramRunner) {
		r.observer = observer
	}
}

// ProgramRunner executes a program, optionally against an exercise, and turns
// every outcome, including movement errors, into an ExecutionResult.
type ProgramRunner struct {
	program  *Program
	exercise *PathfindingExercise
	observer StepObserver
	logger   *slog.Logger
	steps    []m.Step
}

// NewProgramRunner creates a runner. exercise may be nil.
func NewProgramRunner(program *Program, exercise *PathfindingExercise, opts ...RunnerOption) (*ProgramRunner, error) {
	if program == nil {
		return nil, invalidArgument("program is required")
	}

	r := &ProgramRunner{
		program:  program,
		exercise: exercise,
		logger:   discardLogger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.logger.Debug("program runner created", "program", program.Name())

	if exercise != nil {
		r.logger.Debug("exercise loaded", "exercise", exercise.Name())
	}

	return r, nil
}

// Execute runs the program once on a fresh character. It never returns an
// error: failures are reported through the result's status and message.
func (r *ProgramRunner) Execute() m.ExecutionResult {
	r.logger.Info("starting program execution", "program", r.program.Name())

	character := r.newCharacter()
	r.steps = nil
	in := newInterpreter(r.record, r.logger)
	in.start(character)

	err := in.run(r.program.commands, character)

	result := m.ExecutionResult{
		Trace:          in.trace,
		FinalPosition:  character.Position(),
		FinalDirection: character.Direction(),
	}
	if result.Trace == nil {
		result.Trace = []string{}
	}

	switch {
	case err != nil:
		r.fail(&result, err)
	case r.exercise == nil:
		result.Status = m.StatusSuccess
		r.logger.Info("program executed successfully", "position", result.FinalPosition)
	case r.exercise.IsCompleted(character.Position()):
		result.Status = m.StatusSuccess
		r.logger.Info("exercise completed", "exercise", r.exercise.Name(), "position", result.FinalPosition)
	default:
		result.Status = m.StatusFailure
		result.ErrorMessage = fmt.Sprintf("Character did not reach the end position. Current: %s, Target: %s",
			character.Position(), r.targetString())
		r.logger.Warn("exercise failed", "exercise", r.exercise.Name(), "message", result.ErrorMessage)
	}

	r.logger.Info("program execution completed", "status", result.Status)

	return result
}

// Steps returns the steps recorded by the last Execute call.
func (r *ProgramRunner) Steps() []m.Step {
	return slices.Clone(r.steps)
}

func (r *ProgramRunner) record(step m.Step) {
	r.steps = append(r.steps, step)

	if r.observer != nil {
		r.observer(step)
	}
}

func (r *ProgramRunner) newCharacter() *Character {
	if r.exercise == nil {
		return NewCharacter(nil)
	}

	r.exercise.Reset()

	character := NewCharacter(r.exercise.Grid())
	character.PlaceAt(r.exercise.StartPosition())

	return character
}

func (r *ProgramRunner) fail(result *m.ExecutionResult, err error) {
	var (
		oob     *OutOfBoundsError
		blocked *BlockedCellError
	)

	result.Status = m.StatusRuntimeError
	result.Err = err
	result.Cause = classify(err)

	switch {
	case errors.As(err, &oob):
		result.ErrorMessage = "Out of bounds error: " + err.Error()
	case errors.As(err, &blocked):
		result.ErrorMessage = "Blocked cell error: " + err.Error()
	default:
		result.ErrorMessage = "Runtime error: " + err.Error()
	}

	r.logger.Error("execution stopped", "error", err, "position", result.FinalPosition)
}

func (r *ProgramRunner) targetString() string {
	end, ok := r.exercise.Grid().EndPosition()
	if !ok {
		return "none"
	}

	return end.String()
}
