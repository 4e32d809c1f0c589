package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/breakout"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud", "test"); err == nil {
		t.Error("New should reject an unknown level")
	}
}

func TestRecorderLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info", "test")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	r := NewRecorder(logger, breakout.StateStart)
	res := breakout.StepResult{
		State:  core.GameState{Score: 10, Lives: 3, Level: 1, Running: true},
		Events: []breakout.Event{{Kind: breakout.EventBrickDestroyed, Value: 10}},
	}

	r.Record(breakout.StateStart, res)
	if buf.Len() != 0 {
		t.Errorf("no transition and events below info should log nothing, got %q", buf.String())
	}

	r.Record(breakout.StatePlaying, res)
	out := buf.String()
	if !strings.Contains(out, "state changed") || !strings.Contains(out, "playing") {
		t.Errorf("transition not logged: %q", out)
	}
}

func TestRecorderLogsEventsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug", "test")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	r := NewRecorder(logger, breakout.StatePlaying)
	r.Record(breakout.StatePlaying, breakout.StepResult{
		Events: []breakout.Event{{Kind: breakout.EventPowerUpCaught, PowerUp: breakout.PowerUpMultiBall}},
	})

	out := buf.String()
	if !strings.Contains(out, "powerup-caught") || !strings.Contains(out, "multi-ball") {
		t.Errorf("event not logged: %q", out)
	}
}
