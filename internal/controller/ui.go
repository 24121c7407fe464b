// Package controller provides the user interfaces that display programs,
// metrics and execution results.
package controller

import (
	"time"

	m "github.com/mouse-blink/turtle/internal/model"
)

const defaultStepDelay = 150 * time.Millisecond

// UIOption is a functional option for NewUI.
type UIOption func(*UIConfig)

// UIConfig holds configuration shared by the UI implementations.
type UIConfig struct {
	stepDelay time.Duration
}

// WithStepDelay sets the delay between steps during playback.
func WithStepDelay(delay time.Duration) UIOption {
	return func(c *UIConfig) {
		if delay >= 0 {
			c.stepDelay = delay
		}
	}
}

func newUIConfig(options ...UIOption) UIConfig {
	cfg := UIConfig{stepDelay: defaultStepDelay}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for presenting programs and their executions.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayProgram(doc m.ProgramDocument, metrics m.Metrics) error
	DisplayMetrics(program string, metrics m.Metrics) error
	DisplaySamples(samples []m.ProgramSummary) error
	DisplayRun(report m.RunReport) error
	DisplaySummary(reports []m.RunReport) error
	DisplayReports(reports []m.RunReport) error
	DisplayMessage(format string, args ...any)
}
