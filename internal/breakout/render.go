package breakout

import "github.com/vovakirdan/brickbreaker/internal/core"

// Render draws the play field onto dst. It never changes the session.
// Draw order: bricks, paddle, power-ups, balls.
func (g *Game) Render(dst core.Surface) {
	dst.Clear()

	g.grid.Each(func(b *Brick) {
		if !b.Alive {
			return
		}
		dst.FillRect(b.X, b.Y, b.W, b.H, b.Color)
	})

	dst.FillRect(g.paddle.X, g.paddle.Y, g.paddle.Width, g.paddle.Height, core.ColorPaddle)

	for _, p := range g.powerups.Pickups {
		dst.FillRect(p.X, p.Y, p.Size, p.Size, p.Type.Color())
		cx, cy := p.Rect().Center()
		dst.DrawTextCentered(cx, cy, p.Type.Symbol(), core.ColorBlack)
	}

	for _, b := range g.balls {
		dst.FillCircle(b.X, b.Y, b.Radius, core.ColorWhite)
	}
}
