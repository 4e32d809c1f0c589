package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/breakout"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Screen layout: one HUD row above the field, one help row below.
const (
	hudRows  = 1
	helpRows = 1
	minCols  = 30
	minRows  = 8
)

var (
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	hudLivesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3366"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00DDFF")).
			Padding(1, 4).
			Align(lipgloss.Center)
	panelTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF33")).Bold(true)
	panelTextStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	panelButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("#33FF66")).
				Padding(0, 2)
)

// cellStyles caches one lipgloss style per field color.
var cellStyles = map[core.Color]lipgloss.Style{}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := cellStyles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	cellStyles[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Colored != first.Colored || cell.Color != first.Color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !first.Colored {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(first.Color).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderHUD renders the score, level and lives row.
func RenderHUD(hud breakout.HUD, width int) string {
	lives := strings.Repeat("♥", max(hud.Lives, 0))
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		hudLabelStyle.Render("Score "), hudValueStyle.Render(fmt.Sprint(hud.Score)),
		hudLabelStyle.Render("   Level "), hudValueStyle.Render(fmt.Sprintf("%d/%d", hud.Level, breakout.TotalLevels)),
		hudLabelStyle.Render("   Lives "), hudLivesStyle.Render(lives),
	)
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(line)
}

// RenderPanel renders an overlay panel. confirm is the key hint shown on
// the button.
func RenderPanel(c breakout.PanelContent, confirm string) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		panelTitleStyle.Render(c.Title),
		"",
		panelTextStyle.Render(c.Message),
		"",
		panelButtonStyle.Render(fmt.Sprintf("%s [%s]", c.Button, confirm)),
	)
	return panelStyle.Render(body)
}

// RenderTooSmall renders the notice shown when the terminal cannot fit the game.
func RenderTooSmall(width, height int) string {
	msg := fmt.Sprintf("Terminal too small (%dx%d)\nneed at least %dx%d", width, height, minCols, minRows)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
