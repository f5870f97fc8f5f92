package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// newScoreTable creates the high-score table shown on the start and
// game-over screens. highlight is the 1-based rank to select, 0 for none.
func newScoreTable(scores []int, highlight int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
	}

	rows := make([]table.Row, len(scores))
	for i, score := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", score),
		}
	}

	// Header and its border take two lines
	height := len(rows) + 3
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(highlight > 0),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	if highlight > 0 {
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetCursor(highlight - 1)
	} else {
		s.Selected = s.Cell
	}
	t.SetStyles(s)

	return t
}

// renderScores renders the score table or an empty message.
func renderScores(scores []int, highlight int) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		return boxStyle.Render(emptyStyle.Render("No scores recorded yet."))
	}

	return boxStyle.Render(newScoreTable(scores, highlight).View())
}
