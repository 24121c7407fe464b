package domain

import (
	m "github.com/mouse-blink/turtle/internal/model"
)

// Grid is a bounded W×H board of cells. (0,0) is the bottom-left cell.
type Grid struct {
	width  int
	height int
	cells  [][]m.Cell // indexed [x][y]
	end    *m.Position
}

// NewGrid creates a grid with every cell open.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, invalidArgument("grid dimensions must be positive, got %dx%d", width, height)
	}

	cells := make([][]m.Cell, width)
	for x := range cells {
		cells[x] = make([]m.Cell, height)
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// EndPosition returns the designated end cell, if one was set.
func (g *Grid) EndPosition() (m.Position, bool) {
	if g.end == nil {
		return m.Position{}, false
	}

	return *g.end, true
}

// IsWithinBounds reports whether 0 <= x < W and 0 <= y < H.
func (g *Grid) IsWithinBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains is IsWithinBounds for a Position.
func (g *Grid) Contains(pos m.Position) bool {
	return g.IsWithinBounds(pos.X, pos.Y)
}

// Cell returns a copy of the cell at (x,y).
func (g *Grid) Cell(x, y int) (m.Cell, error) {
	if !g.IsWithinBounds(x, y) {
		return m.Cell{}, outOfRange(x, y)
	}

	return g.cells[x][y], nil
}

// SetCellBlocked sets or clears the blocked flag of the cell at (x,y).
func (g *Grid) SetCellBlocked(x, y int, blocked bool) error {
	if !g.IsWithinBounds(x, y) {
		return outOfRange(x, y)
	}

	g.cells[x][y].Blocked = blocked

	return nil
}

// SetEndPosition designates (x,y) as the end cell.
func (g *Grid) SetEndPosition(x, y int) error {
	if !g.IsWithinBounds(x, y) {
		return outOfRange(x, y)
	}

	if g.end != nil {
		g.cells[g.end.X][g.end.Y].EndPosition = false
	}

	end := m.NewPosition(x, y)
	g.end = &end
	g.cells[x][y].EndPosition = true

	return nil
}

// IsCellBlocked reports whether (x,y) is blocked. Coordinates outside the grid
// count as blocked so that "off the edge" and "into a wall" read the same.
func (g *Grid) IsCellBlocked(x, y int) bool {
	if !g.IsWithinBounds(x, y) {
		return true
	}

	return g.cells[x][y].Blocked
}

// NextPosition applies the direction's unit vector. Bounds are not checked.
func (g *Grid) NextPosition(current m.Position, direction m.Direction) m.Position {
	return current.Step(direction)
}

// Reset clears the visited flag of every cell.
func (g *Grid) Reset() {
	for x := range g.cells {
		for y := range g.cells[x] {
			g.cells[x][y].Reset()
		}
	}
}

func (g *Grid) markVisited(pos m.Position) {
	g.cells[pos.X][pos.Y].Visited = true
}

// View returns a snapshot of the grid for display.
func (g *Grid) View() m.GridView {
	view := m.GridView{Width: g.width, Height: g.height}

	for x := range g.cells {
		for y, cell := range g.cells[x] {
			if cell.Blocked {
				view.Blocked = append(view.Blocked, m.NewPosition(x, y))
			}

			if cell.Visited {
				view.Visited = append(view.Visited, m.NewPosition(x, y))
			}
		}
	}

	if g.end != nil {
		end := *g.end
		view.End = &end
	}

	return view
}
