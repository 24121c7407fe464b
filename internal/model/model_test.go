package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection_TurnCycle(t *testing.T) {
	left := []Direction{North, West, South, East, North}
	for i := 0; i < len(left)-1; i++ {
		assert.Equal(t, left[i+1], left[i].TurnLeft(), "%s turned left", left[i])
		assert.Equal(t, left[i], left[i+1].TurnRight(), "%s turned right", left[i+1])
	}

	for _, d := range []Direction{North, East, South, West} {
		assert.Equal(t, d, d.TurnLeft().TurnLeft().TurnLeft().TurnLeft())
		assert.Equal(t, d, d.TurnLeft().TurnRight())
	}
}

func TestDirection_Vector(t *testing.T) {
	tests := []struct {
		d      Direction
		dx, dy int
	}{
		{North, 0, 1},
		{East, 1, 0},
		{South, 0, -1},
		{West, -1, 0},
	}

	for _, tt := range tests {
		dx, dy := tt.d.Vector()
		assert.Equal(t, tt.dx, dx, tt.d.String())
		assert.Equal(t, tt.dy, dy, tt.d.String())
	}
}

func TestDirection_Text(t *testing.T) {
	assert.Equal(t, "South", South.String())
	assert.Equal(t, "south", South.Lower())
	assert.Equal(t, "Direction(7)", Direction(7).String())

	data, err := json.Marshal(struct {
		D Direction `json:"d"`
	}{West})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"West"}`, string(data))

	var d Direction
	require.NoError(t, d.UnmarshalText([]byte("north")))
	assert.Equal(t, North, d)

	assert.Error(t, d.UnmarshalText([]byte("up")))

	_, err = Direction(-1).MarshalText()
	assert.Error(t, err)
}

func TestPosition(t *testing.T) {
	p := NewPosition(2, 3)

	assert.Equal(t, "(2,3)", p.String())
	assert.Equal(t, NewPosition(2, 4), p.Step(North))
	assert.Equal(t, NewPosition(1, 3), p.Step(West))
	assert.Equal(t, NewPosition(2, 3), p, "Step returns a new value")
	assert.Equal(t, "(-1,0)", NewPosition(0, 0).Step(West).String())
}

func TestCell_Reset(t *testing.T) {
	c := Cell{Blocked: true, EndPosition: true, Visited: true}
	c.Reset()

	assert.Equal(t, Cell{Blocked: true, EndPosition: true}, c)
}

func TestGridView_Lookups(t *testing.T) {
	view := GridView{
		Width:   2,
		Height:  2,
		Blocked: []Position{{X: 1, Y: 1}},
		Visited: []Position{{X: 1, Y: 0}},
	}

	assert.True(t, view.IsBlocked(NewPosition(1, 1)))
	assert.False(t, view.IsBlocked(NewPosition(1, 0)))
	assert.True(t, view.IsVisited(NewPosition(1, 0)))
	assert.False(t, view.IsVisited(NewPosition(0, 0)))
}

func TestParseTurnDirection(t *testing.T) {
	d, err := ParseTurnDirection(" Right ")
	require.NoError(t, err)
	assert.Equal(t, TurnRight, d)

	_, err = ParseTurnDirection("around")
	assert.Error(t, err)
	assert.False(t, TurnDirection("").Valid())
}

func TestParseCondition(t *testing.T) {
	c, err := ParseCondition("wallahead")
	require.NoError(t, err)
	assert.Equal(t, ConditionWallAhead, c)

	c, err = ParseCondition("GridEdge")
	require.NoError(t, err)
	assert.Equal(t, ConditionGridEdge, c)

	_, err = ParseCondition("Forever")
	assert.Error(t, err)
}

func TestExecutionResult_String(t *testing.T) {
	r := ExecutionResult{
		Status:         StatusSuccess,
		Trace:          []string{"Move 5", "Turn right", "Move 3"},
		FinalPosition:  NewPosition(5, -3),
		FinalDirection: South,
	}

	assert.True(t, r.IsSuccess())
	assert.Equal(t, "Move 5, Turn right, Move 3.\nEnd state (5,-3) facing south.", r.String())
}

func TestExecutionResult_JSONOmitsErr(t *testing.T) {
	pos := NewPosition(3, 0)
	r := ExecutionResult{
		Status:         StatusRuntimeError,
		Trace:          []string{},
		FinalDirection: East,
		ErrorMessage:   "Blocked cell error: boom",
		Cause:          &ExecutionError{Kind: ErrorBlockedCell, Position: &pos, Message: "boom"},
		Err:            errors.New("boom"),
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var back ExecutionResult
	require.NoError(t, json.Unmarshal(data, &back))

	assert.False(t, back.IsSuccess())
	assert.Nil(t, back.Err)
	require.NotNil(t, back.Cause)
	assert.Equal(t, ErrorBlockedCell, back.Cause.Kind)
	assert.Equal(t, pos, *back.Cause.Position)
	assert.Equal(t, East, back.FinalDirection)
}

func TestMetrics_String(t *testing.T) {
	assert.Equal(t, "Commands: 11, Max Nesting: 1, Repeats: 2",
		Metrics{CommandCount: 11, MaxNestingLevel: 1, RepeatCount: 2}.String())
}

func TestPath(t *testing.T) {
	p := Path("grids/Maze.One.TXT")

	assert.Equal(t, "Maze.One", p.BaseName())
	assert.Equal(t, ".txt", p.Ext())
}

func TestProgramSource_String(t *testing.T) {
	assert.Equal(t, "sample:basic", ProgramSource{Sample: "basic"}.String())
	assert.Equal(t, "square.txt", ProgramSource{Path: "square.txt"}.String())
}
