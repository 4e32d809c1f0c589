package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/breakout"
)

var (
	layoutBrickStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9933"))
	layoutEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	layoutTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
)

// levelsTable builds the campaign overview table.
func levelsTable(layouts []breakout.Layout, columns, rows int) table.Model {
	cols := []table.Column{
		{Title: "Level", Width: 6},
		{Title: "ID", Width: 10},
		{Title: "Name", Width: 14},
		{Title: "Bricks", Width: 8},
	}

	tableRows := make([]table.Row, 0, len(layouts))
	for i, l := range layouts {
		tableRows = append(tableRows, table.Row{
			fmt.Sprint(i + 1),
			l.ID,
			l.Name,
			fmt.Sprint(l.Bricks(columns, rows)),
		})
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(tableRows),
		table.WithHeight(len(tableRows)+3), // Header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Not interactive: no row is highlighted
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// drawLayout renders a layout as a columns x rows grid of blocks.
func drawLayout(l breakout.Layout, columns, rows int) string {
	var sb strings.Builder
	for row := range rows {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := range columns {
			if l.Has(row, col) {
				sb.WriteString(layoutBrickStyle.Render("██"))
			} else {
				sb.WriteString(layoutEmptyStyle.Render("··"))
			}
		}
	}
	return sb.String()
}

// RenderLevels renders the campaign table followed by a preview of each layout.
func RenderLevels(layouts []breakout.Layout, columns, rows int) string {
	parts := []string{levelsTable(layouts, columns, rows).View()}

	for i, l := range layouts {
		parts = append(parts, "",
			layoutTitleStyle.Render(fmt.Sprintf("%d. %s", i+1, l.Name)),
			drawLayout(l, columns, rows),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
