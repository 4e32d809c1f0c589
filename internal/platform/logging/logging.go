// Package logging builds the structured loggers used by the front-ends and
// turns simulation results into log records.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/breakout"
)

// New creates a logger writing to w at the named level
// ("debug", "info", "warn", "error").
func New(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
	return logger, nil
}

// Discard returns a logger that drops every record.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// Recorder logs the outcome of every Step: events at debug,
// state transitions at info.
type Recorder struct {
	logger *log.Logger
	last   breakout.State
}

// NewRecorder creates a recorder for a session currently in state.
func NewRecorder(logger *log.Logger, state breakout.State) *Recorder {
	return &Recorder{logger: logger, last: state}
}

// Record logs one step result. state is the session state after the step.
func (r *Recorder) Record(state breakout.State, res breakout.StepResult) {
	for _, e := range res.Events {
		switch e.Kind {
		case breakout.EventPowerUpSpawned, breakout.EventPowerUpCaught, breakout.EventPowerUpMissed:
			r.logger.Debug(e.Kind.String(), "powerup", e.PowerUp, "x", e.X, "y", e.Y)
		case breakout.EventBrickDestroyed, breakout.EventBallLost:
			r.logger.Debug(e.Kind.String(), "x", e.X, "y", e.Y, "value", e.Value)
		default:
			r.logger.Debug(e.Kind.String(), "value", e.Value)
		}
	}

	if state != r.last {
		r.logger.Info("state changed",
			"from", r.last,
			"to", state,
			"score", res.State.Score,
			"lives", res.State.Lives,
			"level", res.State.Level,
		)
		r.last = state
	}
}
