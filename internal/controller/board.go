package controller

import (
	"strings"

	m "github.com/mouse-blink/turtle/internal/model"
)

// cellKind classifies a board square for rendering.
type cellKind int

const (
	kindOpen cellKind = iota
	kindVisited
	kindBlocked
	kindEnd
	kindStart
	kindCharacter
)

var glyphs = map[cellKind]string{
	kindOpen:    ".",
	kindVisited: "*",
	kindBlocked: "+",
	kindEnd:     "x",
	kindStart:   "s",
}

// painter decorates a glyph. The plain painter returns it unchanged.
type painter func(kind cellKind, glyph string) string

func plainPainter(_ cellKind, glyph string) string {
	return glyph
}

func characterGlyph(d m.Direction) string {
	switch d {
	case m.North:
		return "^"
	case m.East:
		return ">"
	case m.South:
		return "v"
	default:
		return "<"
	}
}

// boardFrame is the state of the board after a given step.
type boardFrame struct {
	position  m.Position
	direction m.Direction
	visited   map[m.Position]bool
}

// frameAt replays steps[0..index] and returns the resulting board state.
func frameAt(steps []m.Step, index int) boardFrame {
	frame := boardFrame{visited: make(map[m.Position]bool)}

	if len(steps) == 0 {
		return frame
	}

	if index >= len(steps) {
		index = len(steps) - 1
	}

	for i := 0; i <= index; i++ {
		if i > 0 {
			frame.visited[steps[i].Position] = true
		}

		frame.position = steps[i].Position
		frame.direction = steps[i].Direction
	}

	return frame
}

// Largest board drawn in cells. Bigger areas are cut to a window that
// follows the character.
const (
	maxBoardWidth  = 60
	maxBoardHeight = 20
)

// bounds is an inclusive rectangle of board coordinates.
type bounds struct {
	minX, minY, maxX, maxY int
}

// window cuts b down to at most width x height cells around center,
// staying inside b.
func (b bounds) window(center m.Position, width, height int) bounds {
	minX, maxX := clampAxis(b.minX, b.maxX, center.X, width)
	minY, maxY := clampAxis(b.minY, b.maxY, center.Y, height)

	return bounds{minX: minX, minY: minY, maxX: maxX, maxY: maxY}
}

func clampAxis(lo, hi, center, size int) (int, int) {
	if hi-lo+1 <= size {
		return lo, hi
	}

	start := max(lo, center-size/2)
	end := start + size - 1

	if end > hi {
		end = hi
		start = end - size + 1
	}

	return start, end
}

func gridBounds(grid *m.GridView) bounds {
	return bounds{minX: 0, minY: 0, maxX: grid.Width - 1, maxY: grid.Height - 1}
}

// pathBounds is the box around every position of an unbound run.
func pathBounds(steps []m.Step) bounds {
	b := bounds{}

	for i, step := range steps {
		p := step.Position
		if i == 0 {
			b = bounds{minX: p.X, minY: p.Y, maxX: p.X, maxY: p.Y}

			continue
		}

		b.minX = min(b.minX, p.X)
		b.minY = min(b.minY, p.Y)
		b.maxX = max(b.maxX, p.X)
		b.maxY = max(b.maxY, p.Y)
	}

	return b
}

// renderBoard draws the board after steps[index]. Rows are written top down,
// so the highest Y comes first. When grid is nil the board covers the path.
// Either way at most maxBoardWidth x maxBoardHeight cells are drawn.
func renderBoard(grid *m.GridView, steps []m.Step, index int, paint painter) string {
	if paint == nil {
		paint = plainPainter
	}

	var area bounds
	if grid != nil {
		area = gridBounds(grid)
	} else {
		if len(steps) == 0 {
			return ""
		}

		area = pathBounds(steps)
	}

	frame := frameAt(steps, index)
	hasCharacter := len(steps) > 0

	center := m.NewPosition(area.minX, area.maxY)
	if hasCharacter {
		center = frame.position
	} else if grid.Start != nil {
		center = *grid.Start
	}

	area = area.window(center, maxBoardWidth, maxBoardHeight)

	var sb strings.Builder

	for y := area.maxY; y >= area.minY; y-- {
		for x := area.minX; x <= area.maxX; x++ {
			pos := m.NewPosition(x, y)

			if hasCharacter && pos == frame.position {
				sb.WriteString(paint(kindCharacter, characterGlyph(frame.direction)))

				continue
			}

			kind := classifyCell(grid, frame, pos)
			sb.WriteString(paint(kind, glyphs[kind]))
		}

		if y > area.minY {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func classifyCell(grid *m.GridView, frame boardFrame, pos m.Position) cellKind {
	switch {
	case grid != nil && grid.IsBlocked(pos):
		return kindBlocked
	case grid != nil && grid.End != nil && *grid.End == pos:
		return kindEnd
	case frame.visited[pos]:
		return kindVisited
	case grid != nil && grid.Start != nil && *grid.Start == pos:
		return kindStart
	default:
		return kindOpen
	}
}
