package model

// Cell is a single square of a grid.
type Cell struct {
	Blocked     bool
	EndPosition bool
	// Visited is execution scoped and cleared by Reset.
	Visited bool
}

// Reset clears the visited flag. Blocked and end flags are untouched.
func (c *Cell) Reset() {
	c.Visited = false
}

// GridView is a read-only snapshot of a grid used by the presentation layer.
type GridView struct {
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Blocked []Position `json:"blocked,omitempty"`
	Visited []Position `json:"visited,omitempty"`
	End     *Position  `json:"end,omitempty"`
	Start   *Position  `json:"start,omitempty"`
}

// IsBlocked reports whether pos is listed as blocked.
func (g GridView) IsBlocked(pos Position) bool {
	return containsPosition(g.Blocked, pos)
}

// IsVisited reports whether pos is listed as visited.
func (g GridView) IsVisited(pos Position) bool {
	return containsPosition(g.Visited, pos)
}

func containsPosition(list []Position, pos Position) bool {
	for _, p := range list {
		if p == pos {
			return true
		}
	}

	return false
}
