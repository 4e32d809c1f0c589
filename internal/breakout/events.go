package breakout

import (
	"fmt"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventBrickDestroyed EventKind = iota // X, Y: brick center; Value: new score
	EventPowerUpSpawned                  // X, Y: drop point; PowerUp: type
	EventPowerUpCaught                   // PowerUp: type
	EventPowerUpMissed                   // PowerUp: type
	EventWideExpired                     // Paddle back to base width
	EventBallLost                        // X, Y: last position; Value: balls left
	EventLifeLost                        // Value: lives left
	EventLevelComplete                   // Value: the level now loaded
	EventGameOver                        // Value: final score
	EventWin                             // Value: final score
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventBrickDestroyed:
		return "brick-destroyed"
	case EventPowerUpSpawned:
		return "powerup-spawned"
	case EventPowerUpCaught:
		return "powerup-caught"
	case EventPowerUpMissed:
		return "powerup-missed"
	case EventWideExpired:
		return "wide-expired"
	case EventBallLost:
		return "ball-lost"
	case EventLifeLost:
		return "life-lost"
	case EventLevelComplete:
		return "level-complete"
	case EventGameOver:
		return "game-over"
	case EventWin:
		return "win"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is one observable outcome of a tick.
type Event struct {
	Kind    EventKind
	X, Y    float64
	PowerUp PowerUpType
	Value   int
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State  core.GameState
	Events []Event
}

// Has reports whether the result contains an event of the given kind.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
