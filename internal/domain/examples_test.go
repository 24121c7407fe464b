package domain

import (
	"path/filepath"
	"testing"

	"github.com/mouse-blink/turtle/internal/adapter"
	m "github.com/mouse-blink/turtle/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func examplePath(parts ...string) m.Path {
	return m.Path(filepath.Join(append([]string{"..", "..", "examples"}, parts...)...))
}

func TestBundledExamples(t *testing.T) {
	fs := adapter.NewLocalFSAdapter()
	importer := NewProgramImporter(fs)
	parser := NewGridFileParser(fs)

	tests := []struct {
		program    string
		grid       string
		wantStatus m.ExecutionStatus
		wantFinal  m.Position
	}{
		{"staircase.txt", "stairs.txt", m.StatusSuccess, m.NewPosition(4, 0)},
		{"wall_follow.txt", "corridor.txt", m.StatusSuccess, m.NewPosition(4, 0)},
		{"wall_follow.txt", "stairs.txt", m.StatusRuntimeError, m.NewPosition(1, 3)},
		{"spiral.yaml", "corridor.txt", m.StatusFailure, m.NewPosition(2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.program+" on "+tt.grid, func(t *testing.T) {
			program, err := importer.ImportFile(examplePath("programs", tt.program))
			require.NoError(t, err)

			exercise, err := parser.ParseFile(examplePath("grids", tt.grid))
			require.NoError(t, err)

			runner, err := NewProgramRunner(program, exercise)
			require.NoError(t, err)

			result := runner.Execute()

			assert.Equal(t, tt.wantStatus, result.Status, result.ErrorMessage)
			assert.Equal(t, tt.wantFinal, result.FinalPosition)
		})
	}
}
