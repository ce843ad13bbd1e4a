package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/hideseek/internal/tournament"
)

// Standings layout constants
const (
	playerColWidth = 16
	countColWidth  = 10
	maxTableRows   = 12
)

var standingsHeaders = []string{"Player", "Seeker wins", "Hider survived", "Played"}

// newStandingsTable creates an unfocused table for a standings panel.
func newStandingsTable(height int) table.Model {
	columns := []table.Column{
		{Title: standingsHeaders[0], Width: playerColWidth},
		{Title: standingsHeaders[1], Width: countColWidth + 1},
		{Title: standingsHeaders[2], Width: countColWidth + 4},
		{Title: standingsHeaders[3], Width: countColWidth - 4},
	}

	if height <= 0 || height > maxTableRows {
		height = maxTableRows
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// No cursor highlight in a read-only panel
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// standingsRows converts a table into rows ordered by points.
func standingsRows(s tournament.Standings) []table.Row {
	sorted := s.Sorted()
	rows := make([]table.Row, len(sorted))
	for i, r := range sorted {
		rows[i] = table.Row{
			r.ID,
			fmt.Sprintf("%d", r.SeekerWins),
			fmt.Sprintf("%d", r.HiderSurvived),
			fmt.Sprintf("%d", r.GamesPlayed),
		}
	}
	return rows
}

// panel renders a titled standings table with a rounded border.
func panel(title string, t table.Model, empty bool) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	if empty {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Render("No games recorded yet."))
	} else {
		b.WriteString(t.View())
	}
	return boxStyle.Render(b.String())
}

// StandingsTable renders s as a static bordered table for plain output.
func StandingsTable(s tournament.Standings) string {
	t := lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(standingsHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == lgtable.HeaderRow {
				return style.Bold(true)
			}
			if col > 0 {
				return style.Align(lipgloss.Right)
			}
			return style
		})

	for _, r := range standingsRows(s) {
		t.Row(r...)
	}
	return t.Render()
}
