package breakout

import "github.com/vovakirdan/brickbreaker/internal/core"

// Autopilot returns an input frame that plays the game: it tracks the lowest
// falling ball, launches held balls and confirms every panel.
// The aim point drifts across the paddle over time so the steering varies.
func Autopilot(g *Game) core.InputFrame {
	in := core.NewInputFrame()

	switch g.state {
	case StateStart:
		in.Set(core.ActionStart)
		return in
	case StateLevelComplete:
		in.Set(core.ActionNextLevel)
		return in
	case StateGameOver, StateWin:
		return in
	}

	var target *Ball
	for _, b := range g.balls {
		if b.OnPaddle {
			in.Set(core.ActionLaunch)
			continue
		}
		if b.SpeedY <= 0 {
			continue
		}
		if target == nil || b.Y > target.Y {
			target = b
		}
	}
	if target == nil {
		return in
	}

	offset := float64((g.tick/97)%5-2) * g.paddle.Width / 10
	in.SetPointer(target.X + offset)
	return in
}
