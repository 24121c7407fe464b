package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mouse-blink/turtle/internal/adapter"
	m "github.com/mouse-blink/turtle/internal/model"
)

// Grid map characters.
const (
	cellOpen    = 'o'
	cellBlocked = '+'
	cellEnd     = 'x'
)

// GridFileParser builds pathfinding exercises from grid map files.
type GridFileParser struct {
	fs adapter.FSAdapter
}

// NewGridFileParser constructs a parser reading through fs.
func NewGridFileParser(fs adapter.FSAdapter) *GridFileParser {
	return &GridFileParser{fs: fs}
}

// ParseFile reads a grid map file. The exercise is named after the file.
func (p *GridFileParser) ParseFile(path m.Path) (*PathfindingExercise, error) {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid file %s: %w", path, err)
	}

	exercise, err := ParseGrid(path.BaseName(), data)
	if err != nil {
		return nil, fmt.Errorf("grid file %s: %w", path, err)
	}

	return exercise, nil
}

// ParseGrid parses grid map text. Each non-blank line is a row, the first
// line being the top of the grid: it becomes Y = rows-1.
func ParseGrid(name string, data []byte) (*PathfindingExercise, error) {
	if !utf8.Valid(data) {
		return nil, invalidFormat("grid file is not valid UTF-8")
	}

	rows := gridRows(string(data))
	if len(rows) == 0 {
		return nil, invalidFormat("grid file is empty")
	}

	height := len(rows)
	width := len(rows[0])

	for i, row := range rows {
		if len(row) != width {
			return nil, invalidFormat("all grid rows must have the same length: row %d has %d cells, expected %d", i+1, len(row), width)
		}
	}

	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	hasEnd := false

	for fileY, row := range rows {
		y := height - 1 - fileY

		for x, c := range row {
			switch c {
			case cellOpen:
			case cellBlocked:
				if err := grid.SetCellBlocked(x, y, true); err != nil {
					return nil, err
				}
			case cellEnd:
				if hasEnd {
					return nil, invalidFormat("grid must contain exactly one end position, found another at (%d,%d)", x, y)
				}

				if err := grid.SetEndPosition(x, y); err != nil {
					return nil, err
				}

				hasEnd = true
			default:
				return nil, invalidFormat("invalid character %q in grid file at row %d, column %d", c, fileY+1, x+1)
			}
		}
	}

	if !hasEnd {
		return nil, invalidFormat("grid must contain an end position marked with 'x'")
	}

	return NewPathfindingExercise(name, grid)
}

// gridRows splits text into rows of cells, one rune per cell.
func gridRows(text string) [][]rune {
	var rows [][]rune

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		rows = append(rows, []rune(line))
	}

	return rows
}
