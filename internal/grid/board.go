package grid

import "strings"

// Board cell glyphs.
const (
	GlyphHider    = 'H'
	GlyphSeeker   = 'S'
	GlyphObstacle = '■'
	GlyphEmpty    = '.'
)

// Rows renders the grid as one string per row. The hider is drawn over the
// seeker when both share a cell, and agents are drawn over obstacles.
func (g Grid) Rows(hider, seeker Position) []string {
	rows := make([]string, g.Size)
	var sb strings.Builder
	for y := 0; y < g.Size; y++ {
		sb.Reset()
		sb.Grow(g.Size)
		for x := 0; x < g.Size; x++ {
			sb.WriteRune(g.glyph(Position{X: x, Y: y}, hider, seeker))
		}
		rows[y] = sb.String()
	}
	return rows
}

// String renders the grid with agents on their start corners.
func (g Grid) String() string {
	return strings.Join(g.Rows(g.HiderStart(), g.SeekerStart()), "\n")
}

func (g Grid) glyph(p, hider, seeker Position) rune {
	switch {
	case p == hider:
		return GlyphHider
	case p == seeker:
		return GlyphSeeker
	case g.IsObstacle(p):
		return GlyphObstacle
	default:
		return GlyphEmpty
	}
}
