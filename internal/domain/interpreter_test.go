package domain

import (
	"testing"

	m "github.com/mouse-blink/turtle/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeatUntil_GridEdgeStopsAtLastCell(t *testing.T) {
	grid := mustGrid(t, 5, 1)
	c := NewCharacter(grid)

	cmd := must(NewRepeatUntil(m.ConditionGridEdge, []Command{must(NewMove(1))}))
	require.NoError(t, cmd.Execute(c))

	assert.Equal(t, 4, c.Position().X)
	assert.Equal(t, m.East, c.Direction())
}

func TestRepeatUntil_WallAheadStopsBeforeBlock(t *testing.T) {
	grid := mustGrid(t, 5, 1)
	require.NoError(t, grid.SetCellBlocked(3, 0, true))
	c := NewCharacter(grid)

	cmd := must(NewRepeatUntil(m.ConditionWallAhead, []Command{must(NewMove(1))}))
	require.NoError(t, cmd.Execute(c))

	assert.Equal(t, 2, c.Position().X)
}

func TestRepeatUntil_WallAheadCountsTheEdge(t *testing.T) {
	grid := mustGrid(t, 3, 1)
	c := NewCharacter(grid)

	cmd := must(NewRepeatUntil(m.ConditionWallAhead, []Command{must(NewMove(1))}))
	require.NoError(t, cmd.Execute(c))

	assert.Equal(t, 2, c.Position().X)
}

func TestRepeatUntil_ConditionAlreadyHolds(t *testing.T) {
	grid := mustGrid(t, 1, 1)
	c := NewCharacter(grid)

	cmd := must(NewRepeatUntil(m.ConditionGridEdge, []Command{must(NewMove(1))}))
	require.NoError(t, cmd.Execute(c))

	assert.Len(t, c.Path(), 1)
}

func TestRepeatUntil_UnboundHitsIterationLimit(t *testing.T) {
	c := NewCharacter(nil)

	cmd := must(NewRepeatUntil(m.ConditionWallAhead, []Command{must(NewMove(1))}))
	err := cmd.Execute(c)

	require.ErrorIs(t, err, ErrIterationLimit)
	assert.Contains(t, err.Error(), "10000")
	assert.Equal(t, MaxIterations, c.Position().X, "body runs exactly MaxIterations times")
}

func TestRepeat_ZeroTimesDoesNothing(t *testing.T) {
	c := NewCharacter(nil)
	require.NoError(t, c.Move(2))

	before := c.Path()

	require.NoError(t, must(NewRepeat(0, []Command{must(NewMove(1))})).Execute(c))

	assert.Equal(t, m.NewPosition(2, 0), c.Position())
	assert.Equal(t, before, c.Path())
}

func TestInterpreter_TraceAndSteps(t *testing.T) {
	var steps []m.Step

	in := newInterpreter(func(step m.Step) { steps = append(steps, step) }, nil)
	c := NewCharacter(nil)
	in.start(c)

	commands := []Command{
		must(NewRepeat(2, []Command{must(NewMove(2)), must(NewTurn(m.TurnLeft))})),
	}
	require.NoError(t, in.run(commands, c))

	assert.Equal(t, []string{"Move 2", "Turn left", "Move 2", "Turn left"}, in.trace)

	descriptions := make([]string, 0, len(steps))
	for i, step := range steps {
		assert.Equal(t, i, step.Index)
		descriptions = append(descriptions, step.Description)
	}

	assert.Equal(t, []string{
		"Start",
		"Move (step 1 of 2)",
		"Move (step 2 of 2)",
		"Turn left",
		"Move (step 1 of 2)",
		"Move (step 2 of 2)",
		"Turn left",
	}, descriptions)

	last := steps[len(steps)-1]
	assert.Equal(t, m.NewPosition(2, 2), last.Position)
	assert.Equal(t, m.West, last.Direction)
}

func TestInterpreter_FailedMoveIsNotTraced(t *testing.T) {
	grid := mustGrid(t, 2, 1)
	in := newInterpreter(nil, nil)
	c := NewCharacter(grid)

	err := in.run([]Command{must(NewMove(1)), must(NewMove(3))}, c)

	var oob *OutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, m.NewPosition(2, 0), oob.Position)
	assert.Equal(t, []string{"Move 1"}, in.trace)
	assert.Equal(t, m.NewPosition(1, 0), c.Position())
}
