package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hideseek/internal/grid"
)

// glyphStyles maps board glyphs to lipgloss styles.
var glyphStyles = map[rune]lipgloss.Style{
	grid.GlyphHider:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	grid.GlyphSeeker:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	grid.GlyphObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	grid.GlyphEmpty:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// RenderBoard draws the grid with colored glyphs.
// Groups adjacent cells with the same glyph to minimize ANSI escape sequences.
func RenderBoard(g grid.Grid, hider, seeker grid.Position) string {
	rows := g.Rows(hider, seeker)

	var sb strings.Builder
	for y, row := range rows {
		if y > 0 {
			sb.WriteRune('\n')
		}

		cells := []rune(row)
		x := 0
		for x < len(cells) {
			start := cells[x]
			var run strings.Builder
			for x < len(cells) && cells[x] == start {
				run.WriteRune(cells[x])
				x++
			}

			style, ok := glyphStyles[start]
			if !ok {
				style = lipgloss.NewStyle()
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
