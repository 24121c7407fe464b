package model

import "time"

// RunReport bundles everything known about one execution of a program,
// optionally against an exercise. Reports are displayed and persisted.
type RunReport struct {
	ID        string          `json:"id"`
	Program   string          `json:"program"`
	Exercise  string          `json:"exercise,omitempty"`
	Source    Path            `json:"source,omitempty"`
	GridFile  Path            `json:"grid_file,omitempty"`
	Metrics   Metrics         `json:"metrics"`
	Result    ExecutionResult `json:"result"`
	Steps     []Step          `json:"steps,omitempty"`
	Grid      *GridView       `json:"grid,omitempty"`
	StartedAt time.Time       `json:"started_at"`
	Duration  time.Duration   `json:"duration"`
}
