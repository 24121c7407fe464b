package model

import (
	"fmt"
	"strings"
)

// ExecutionStatus is the outcome of running a program.
type ExecutionStatus string

const (
	// StatusSuccess means the program ran to completion (and reached the end
	// cell when an exercise was loaded).
	StatusSuccess ExecutionStatus = "success"
	// StatusFailure means the program completed but missed the end cell.
	StatusFailure ExecutionStatus = "failure"
	// StatusRuntimeError means execution stopped on an error.
	StatusRuntimeError ExecutionStatus = "runtime_error"
)

// ErrorKind classifies the error that stopped an execution.
type ErrorKind string

// Available ErrorKind values.
const (
	ErrorOutOfBounds    ErrorKind = "out_of_bounds"
	ErrorBlockedCell    ErrorKind = "blocked_cell"
	ErrorIterationLimit ErrorKind = "iteration_limit"
	ErrorRuntime        ErrorKind = "runtime"
)

// ExecutionError describes the error behind a runtime_error result.
type ExecutionError struct {
	Kind     ErrorKind `json:"kind"`
	Position *Position `json:"position,omitempty"`
	Message  string    `json:"message"`
}

// ExecutionResult is produced by a single run.
type ExecutionResult struct {
	Status         ExecutionStatus `json:"status"`
	Trace          []string        `json:"trace"`
	FinalPosition  Position        `json:"final_position"`
	FinalDirection Direction       `json:"final_direction"`
	ErrorMessage   string          `json:"error_message,omitempty"`
	Cause          *ExecutionError `json:"cause,omitempty"`
	Err            error           `json:"-"`
}

// IsSuccess reports whether the status is success.
func (r ExecutionResult) IsSuccess() bool {
	return r.Status == StatusSuccess
}

// String renders the trace and the end state on two lines.
func (r ExecutionResult) String() string {
	return fmt.Sprintf("%s.\nEnd state %s facing %s.", strings.Join(r.Trace, ", "), r.FinalPosition, r.FinalDirection.Lower())
}

// Step is one observable event of an execution: the start state, a single
// unit move or a turn.
type Step struct {
	Index       int       `json:"index"`
	Position    Position  `json:"position"`
	Direction   Direction `json:"direction"`
	Description string    `json:"description"`
}
