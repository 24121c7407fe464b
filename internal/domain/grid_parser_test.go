package domain

import (
	"errors"
	"testing"

	adaptermocks "github.com/mouse-blink/turtle/internal/adapter/mocks"
	m "github.com/mouse-blink/turtle/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid_FlipsRows(t *testing.T) {
	exercise, err := ParseGrid("small", []byte("oo+\r\nxoo\n\n"))
	require.NoError(t, err)

	grid := exercise.Grid()
	assert.Equal(t, 3, grid.Width())
	assert.Equal(t, 2, grid.Height())
	assert.True(t, grid.IsCellBlocked(2, 1), "first file row is the top of the grid")
	assert.False(t, grid.IsCellBlocked(2, 0))

	end, ok := grid.EndPosition()
	require.True(t, ok)
	assert.Equal(t, m.NewPosition(0, 0), end)
	assert.Equal(t, m.NewPosition(0, 1), exercise.StartPosition())
	assert.Equal(t, "small", exercise.Name())
}

func TestParseGrid_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty", "\n  \n", "grid file is empty"},
		{"ragged rows", "ooo\noo\nxoo", "row 2 has 2 cells, expected 3"},
		{"unknown character", "oo\noz\nxo", "invalid character 'z' in grid file at row 2, column 2"},
		{"non-ascii character", "oéx\n", "invalid character 'é' in grid file at row 1, column 2"},
		{"multi-byte cell is one cell wide", "éo\nox", "invalid character 'é' in grid file at row 1, column 1"},
		{"invalid utf-8", "o\xffx\n", "not valid UTF-8"},
		{"two ends", "ox\nxo", "exactly one end position"},
		{"no end", "oo\no+", "must contain an end position"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGrid("bad", []byte(tt.input))

			require.ErrorIs(t, err, ErrInvalidFormat)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestGridFileParser_ParseFile(t *testing.T) {
	fs := adaptermocks.NewMockFSAdapter(t)
	fs.EXPECT().ReadFile(m.Path("grids/maze.txt")).Return([]byte("oox\n+oo\noo+\n"), nil)

	exercise, err := NewGridFileParser(fs).ParseFile("grids/maze.txt")
	require.NoError(t, err)

	assert.Equal(t, "maze", exercise.Name())
	assert.Equal(t, m.NewPosition(0, 2), exercise.StartPosition())
	assert.True(t, exercise.Grid().IsCellBlocked(0, 1))
	assert.True(t, exercise.Grid().IsCellBlocked(2, 0))
	assert.True(t, exercise.IsCompleted(m.NewPosition(2, 2)))
}

func TestGridFileParser_ParseFileErrors(t *testing.T) {
	t.Run("read failure", func(t *testing.T) {
		fs := adaptermocks.NewMockFSAdapter(t)
		fs.EXPECT().ReadFile(m.Path("missing.txt")).Return(nil, errors.New("no such file"))

		_, err := NewGridFileParser(fs).ParseFile("missing.txt")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read grid file missing.txt")
	})

	t.Run("invalid content", func(t *testing.T) {
		fs := adaptermocks.NewMockFSAdapter(t)
		fs.EXPECT().ReadFile(m.Path("bad.txt")).Return([]byte("ooo"), nil)

		_, err := NewGridFileParser(fs).ParseFile("bad.txt")

		require.ErrorIs(t, err, ErrInvalidFormat)
		assert.Contains(t, err.Error(), "grid file bad.txt")
	})
}
