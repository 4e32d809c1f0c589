package breakout

import (
	"fmt"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Panel identifies the overlay a front-end should show.
type Panel int

const (
	PanelNone Panel = iota
	PanelStart
	PanelLevelComplete
	PanelGameOver
	PanelWin
)

// String returns the panel name.
func (p Panel) String() string {
	switch p {
	case PanelStart:
		return "start"
	case PanelLevelComplete:
		return "level-complete"
	case PanelGameOver:
		return "game-over"
	case PanelWin:
		return "win"
	default:
		return "none"
	}
}

// Action returns the button action of the panel.
// PanelNone has no button and returns core.ActionNone.
func (p Panel) Action() core.Action {
	switch p {
	case PanelStart:
		return core.ActionStart
	case PanelLevelComplete:
		return core.ActionNextLevel
	case PanelGameOver, PanelWin:
		return core.ActionRestart
	default:
		return core.ActionNone
	}
}

// PanelContent is the text of an overlay panel.
type PanelContent struct {
	Title   string
	Message string
	Button  string
}

// Panel returns the overlay that should be visible.
func (g *Game) Panel() Panel {
	switch g.state {
	case StateStart:
		return PanelStart
	case StateLevelComplete:
		return PanelLevelComplete
	case StateGameOver:
		return PanelGameOver
	case StateWin:
		return PanelWin
	default:
		return PanelNone
	}
}

// PanelContent returns the text of the visible panel.
// ok is false while no panel is shown.
func (g *Game) PanelContent() (content PanelContent, ok bool) {
	switch g.Panel() {
	case PanelStart:
		return PanelContent{
			Title:   "BRICK BREAKER",
			Message: "Move the paddle with the pointer.\nClick to launch the ball.",
			Button:  "Start",
		}, true
	case PanelLevelComplete:
		return PanelContent{
			Title:   "Level Complete!",
			Message: fmt.Sprintf("Level %d of %d is next.", g.HUD().Level, TotalLevels),
			Button:  "Next Level",
		}, true
	case PanelGameOver:
		return PanelContent{
			Title:   "Game Over",
			Message: fmt.Sprintf("Final score: %d", g.finalScore),
			Button:  "Restart",
		}, true
	case PanelWin:
		return PanelContent{
			Title:   "You Win!",
			Message: fmt.Sprintf("Final score: %d", g.finalScore),
			Button:  "Play Again",
		}, true
	default:
		return PanelContent{}, false
	}
}
