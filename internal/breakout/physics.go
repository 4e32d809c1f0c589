package breakout

import "github.com/vovakirdan/brickbreaker/internal/core"

// Ball is a ball in play. Position is the center, velocity is pixels per tick.
type Ball struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Radius         float64
	OnPaddle       bool // Rides the paddle until launched; velocity is kept for launch
}

// Move integrates velocity over one tick.
func (b *Ball) Move() {
	b.X += b.SpeedX
	b.Y += b.SpeedY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.SpeedX = -b.SpeedX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.SpeedY = -b.SpeedY
}

// Paddle is the player's paddle. Y is the top of the paddle band.
type Paddle struct {
	X      float64 // Left edge
	Y      float64
	Width  float64
	Height float64
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Right returns the paddle's right edge.
func (p *Paddle) Right() float64 {
	return p.X + p.Width
}

// Rect returns the paddle's drawn bounds.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Band returns the zero-height strip at the paddle's top edge where
// falling power-ups are caught.
func (p *Paddle) Band() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, 0)
}

// BottomResult tells what happened when a ball reached the bottom line.
type BottomResult int

const (
	BottomNone   BottomResult = iota // Ball is not at the bottom line
	BottomPaddle                     // Ball bounced off the paddle
	BottomMiss                       // Ball went past the paddle
)

// ReflectWalls bounces the ball off the side and top walls and resolves the
// bottom line against the paddle. Checks use the position the ball would
// reach this tick.
//
// A paddle hit reverses vertical velocity and replaces horizontal velocity
// with steering * (ball x - paddle center), so edge hits leave at steeper angles.
func ReflectWalls(b *Ball, p *Paddle, fieldW, fieldH, steering float64) BottomResult {
	nextX := b.X + b.SpeedX
	if nextX > fieldW-b.Radius || nextX < b.Radius {
		b.BounceX()
	}

	nextY := b.Y + b.SpeedY
	if nextY < b.Radius {
		b.BounceY()
		return BottomNone
	}
	if nextY <= fieldH-b.Radius {
		return BottomNone
	}

	// Current x against the current paddle span
	if b.X > p.X && b.X < p.Right() {
		b.BounceY()
		b.SpeedX = (b.X - p.CenterX()) * steering
		return BottomPaddle
	}
	return BottomMiss
}

// HitBricks destroys every alive brick whose interior holds the ball's center.
// Each hit reverses vertical velocity regardless of the edge struck.
// onHit runs once per destroyed brick, after it is marked dead.
func HitBricks(b *Ball, grid *Grid, onHit func(brick *Brick)) int {
	hits := 0
	grid.Each(func(brick *Brick) {
		if !brick.Alive || !brick.Rect().Contains(b.X, b.Y) {
			return
		}
		b.BounceY()
		brick.Alive = false
		hits++
		if onHit != nil {
			onHit(brick)
		}
	})
	return hits
}
