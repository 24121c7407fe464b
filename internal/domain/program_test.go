package domain

import (
	"testing"

	m "github.com/mouse-blink/turtle/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgram(t *testing.T) {
	tests := []struct {
		name     string
		progName string
		commands []Command
		wantErr  bool
	}{
		{"valid", "Square", []Command{must(NewMove(1))}, false},
		{"no commands", "Empty", nil, false},
		{"blank name", "   ", nil, true},
		{"nil command", "Broken", []Command{nil}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProgram(tt.progName, tt.commands)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				assert.Nil(t, p)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.progName, p.Name())
		})
	}
}

func TestProgram_CommandsIsACopy(t *testing.T) {
	p, err := NewProgram("Copy", []Command{must(NewMove(1))})
	require.NoError(t, err)

	commands := p.Commands()
	commands[0] = must(NewMove(9))

	assert.Equal(t, "Move 1", p.TextRepresentation())
}

func TestProgram_ExecuteUnbound(t *testing.T) {
	p, err := NewProgram("Walk", []Command{
		must(NewMove(5)),
		must(NewTurn(m.TurnRight)),
		must(NewMove(3)),
	})
	require.NoError(t, err)

	result := p.Execute()

	assert.Equal(t, m.StatusSuccess, result.Status)
	assert.Equal(t, []string{"Move 5", "Turn right", "Move 3"}, result.Trace)
	assert.Equal(t, m.NewPosition(5, -3), result.FinalPosition)
	assert.Equal(t, m.South, result.FinalDirection)
	assert.Empty(t, result.ErrorMessage)
	assert.Equal(t, "Move 5, Turn right, Move 3.\nEnd state (5,-3) facing south.", result.String())
}

func TestProgram_ExecuteEmpty(t *testing.T) {
	p, err := NewProgram("Empty", nil)
	require.NoError(t, err)

	result := p.Execute()

	assert.Equal(t, m.StatusSuccess, result.Status)
	assert.Equal(t, []string{}, result.Trace)
	assert.Equal(t, m.NewPosition(0, 0), result.FinalPosition)
	assert.Equal(t, m.East, result.FinalDirection)
}

func TestProgram_ExecuteIsRepeatable(t *testing.T) {
	p, err := Sample(SampleAdvanced)
	require.NoError(t, err)

	first := p.Execute()
	second := p.Execute()

	assert.Equal(t, first, second)
	assert.Equal(t, m.NewPosition(0, 0), first.FinalPosition)
	assert.Equal(t, m.East, first.FinalDirection)
}

func TestProgram_MetricsAndText(t *testing.T) {
	p, err := NewProgram("Nested", []Command{
		must(NewMove(2)),
		nestedCommand(),
	})
	require.NoError(t, err)

	assert.Equal(t, m.Metrics{CommandCount: 6, MaxNestingLevel: 2, RepeatCount: 2}, p.CalculateMetrics())
	assert.Equal(t, "Move 2\nRepeat 3 times\n    Move 2\n    RepeatUntil WallAhead\n        Turn left\n        Move 1",
		p.TextRepresentation())
}
