package domain

import (
	"errors"
	"testing"

	adaptermocks "github.com/mouse-blink/turtle/internal/adapter/mocks"
	m "github.com/mouse-blink/turtle/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squareText = `Move 2

Repeat 3 times
    Move 2
    RepeatUntil WallAhead
        Turn left
        Move 1
`

func TestParseProgramText(t *testing.T) {
	program, err := ParseProgramText("square", []byte(squareText))
	require.NoError(t, err)

	assert.Equal(t, "square", program.Name())
	assert.Equal(t, m.Metrics{CommandCount: 6, MaxNestingLevel: 2, RepeatCount: 2}, program.CalculateMetrics())
	assert.Equal(t, "Move 2\nRepeat 3 times\n    Move 2\n    RepeatUntil WallAhead\n        Turn left\n        Move 1",
		program.TextRepresentation())
}

func TestParseProgramText_RendersBack(t *testing.T) {
	for _, name := range SampleNames() {
		t.Run(name, func(t *testing.T) {
			sample, err := Sample(name)
			require.NoError(t, err)

			parsed, err := ParseProgramText(sample.Name(), []byte(sample.TextRepresentation()))
			require.NoError(t, err)

			assert.Equal(t, sample.TextRepresentation(), parsed.TextRepresentation())
			assert.Equal(t, sample.CalculateMetrics(), parsed.CalculateMetrics())
		})
	}
}

func TestParseProgramText_CaseInsensitiveArguments(t *testing.T) {
	program, err := ParseProgramText("p", []byte("Turn LEFT\nRepeatUntil gridedge\n    Move 1\n"))
	require.NoError(t, err)

	assert.Equal(t, "Turn left\nRepeatUntil GridEdge\n    Move 1", program.TextRepresentation())
}

func TestParseProgramText_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"unknown command", "Jump 3", `line 1: unknown command: "Jump 3"`},
		{"bad number", "Move many", `line 1: unknown command: "Move many"`},
		{"negative move", "Move -1", "line 1"},
		{"bad direction", "Turn around", `unknown command: "Turn around"`},
		{"missing times", "Repeat 3\n    Move 1", `unknown command: "Repeat 3"`},
		{"odd indentation", "Repeat 2 times\n  Move 1", "indentation must be a multiple of 4 spaces"},
		{"tab indentation", "Repeat 2 times\n\tMove 1", "line 2"},
		{"empty block", "Repeat 2 times\nMove 1", `line 1: block has no commands: "Repeat 2 times"`},
		{"over indented", "Move 1\n    Move 2", `line 2: unexpected indentation: "Move 2"`},
		{"skipped level", "Repeat 2 times\n        Move 1", "unexpected indentation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProgramText("bad", []byte(tt.input))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestProgramImporter_ImportFile(t *testing.T) {
	tests := []struct {
		name     string
		path     m.Path
		content  string
		wantName string
	}{
		{
			name:     "text",
			path:     "programs/walk.txt",
			content:  "Move 3\nTurn right\n",
			wantName: "walk",
		},
		{
			name:     "json",
			path:     "programs/walk.json",
			content:  `{"name":"Walker","commands":[{"type":"Move","steps":3},{"type":"Turn","direction":"right"}]}`,
			wantName: "Walker",
		},
		{
			name:     "yaml without name",
			path:     "programs/walk.yml",
			content:  "commands:\n  - type: Move\n    steps: 3\n  - type: Turn\n    direction: right\n",
			wantName: "walk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := adaptermocks.NewMockFSAdapter(t)
			fs.EXPECT().ReadFile(tt.path).Return([]byte(tt.content), nil)

			program, err := NewProgramImporter(fs).ImportFile(tt.path)
			require.NoError(t, err)

			assert.Equal(t, tt.wantName, program.Name())
			assert.Equal(t, "Move 3\nTurn right", program.TextRepresentation())
		})
	}
}

func TestProgramImporter_ImportFileErrors(t *testing.T) {
	t.Run("read failure", func(t *testing.T) {
		fs := adaptermocks.NewMockFSAdapter(t)
		fs.EXPECT().ReadFile(m.Path("p.txt")).Return(nil, errors.New("denied"))

		_, err := NewProgramImporter(fs).ImportFile("p.txt")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read program file p.txt")
	})

	t.Run("malformed json", func(t *testing.T) {
		fs := adaptermocks.NewMockFSAdapter(t)
		fs.EXPECT().ReadFile(m.Path("p.json")).Return([]byte("{"), nil)

		_, err := NewProgramImporter(fs).ImportFile("p.json")

		require.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("turn without direction", func(t *testing.T) {
		fs := adaptermocks.NewMockFSAdapter(t)
		fs.EXPECT().ReadFile(m.Path("p.yaml")).Return([]byte("commands:\n  - type: Turn\n"), nil)

		_, err := NewProgramImporter(fs).ImportFile("p.yaml")

		require.ErrorIs(t, err, ErrInvalidFormat)
		require.ErrorIs(t, err, ErrInvalidArgument)
		assert.Contains(t, err.Error(), "turn direction must be left or right")
	})

	t.Run("negative times", func(t *testing.T) {
		fs := adaptermocks.NewMockFSAdapter(t)
		fs.EXPECT().ReadFile(m.Path("p.json")).Return(
			[]byte(`{"commands":[{"type":"Repeat","times":-1,"commands":[{"type":"Move"}]}]}`), nil)

		_, err := NewProgramImporter(fs).ImportFile("p.json")

		require.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("unknown node type", func(t *testing.T) {
		fs := adaptermocks.NewMockFSAdapter(t)
		fs.EXPECT().ReadFile(m.Path("p.json")).Return([]byte(`{"commands":[{"type":"Jump"}]}`), nil)

		_, err := NewProgramImporter(fs).ImportFile("p.json")

		require.ErrorIs(t, err, ErrInvalidFormat)
		assert.Contains(t, err.Error(), "program file p.json")
	})
}
