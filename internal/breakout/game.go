package breakout

import (
	"fmt"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// State is the screen-level state of a session.
type State string

// Session states. Only StatePlaying runs the per-frame tick.
const (
	StateStart         State = "start"          // Start panel shown
	StatePlaying       State = "playing"        // Tick running
	StateLevelComplete State = "level_complete" // Next level loaded, waiting for the player
	StateGameOver      State = "gameover"       // No lives left
	StateWin           State = "win"            // All levels cleared
)

// HUD is the text shown next to the play field.
type HUD struct {
	Score int
	Level int
	Lives int
}

// Game is one Breakout session. It owns all mutable state; any number of
// sessions may run side by side.
type Game struct {
	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig
	geom    GridGeometry

	state      State
	score      int
	lives      int
	level      int
	finalScore int
	tick       int

	paddle   *Paddle
	balls    []*Ball
	grid     *Grid
	powerups *PowerUpManager
	effects  EffectQueue

	wideTicks int     // Ticks a wide paddle lasts
	events    []Event // Collected during the current Step
}

// New creates a session showing the start panel with level 1 behind it.
func New(cfg config.BreakoutConfig, runtime core.RuntimeConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	geom, err := GeometryFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}

	g := &Game{
		cfg:     cfg,
		runtime: runtime,
		geom:    geom,
		paddle: &Paddle{
			Y:      cfg.Field.Height - cfg.Paddle.Height,
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
		},
		powerups: NewPowerUpManager(runtime.Seed, PowerUpConfig{
			SpawnChance: cfg.PowerUps.SpawnChance,
			Size:        cfg.PowerUps.Size,
			FallSpeed:   cfg.PowerUps.FallSpeed,
		}),
		wideTicks: runtime.Ticks(cfg.PowerUps.WideDuration),
	}
	g.resetSession()
	g.state = StateStart
	return g, nil
}

// resetSession restores score, lives and level 1.
func (g *Game) resetSession() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.finalScore = 0
	g.powerups.Clear()
	g.grid = BuildGrid(g.level, g.geom)
	g.resetRound()
}

// resetRound puts a single ball on a centered, normal-width paddle and drops
// any pending paddle revert.
func (g *Game) resetRound() {
	g.paddle.Width = g.cfg.Paddle.Width
	g.effects.Cancel(EffectWideRevert)
	g.paddle.X = (g.cfg.Field.Width - g.paddle.Width) / 2

	g.balls = g.balls[:0]
	g.balls = append(g.balls, &Ball{
		X:        g.cfg.Field.Width / 2,
		Y:        g.cfg.Field.Height - g.cfg.Paddle.Height - g.cfg.Ball.Radius - g.cfg.Ball.SpawnGap,
		SpeedX:   g.cfg.Ball.SpeedX,
		SpeedY:   g.cfg.Ball.SpeedY,
		Radius:   g.cfg.Ball.Radius,
		OnPaddle: true,
	})
}

// PressStart handles the start button: full reset, then play.
// Ignored unless the start panel is showing.
func (g *Game) PressStart() bool {
	if g.state != StateStart {
		return false
	}
	g.resetSession()
	g.state = StatePlaying
	return true
}

// PressNextLevel handles the next-level button. Score and lives carry over.
// Ignored unless the level-complete panel is showing.
func (g *Game) PressNextLevel() bool {
	if g.state != StateLevelComplete {
		return false
	}
	g.resetRound()
	g.state = StatePlaying
	return true
}

// PressRestart handles both restart buttons: back to the start panel.
// Ignored unless the game-over or win panel is showing.
func (g *Game) PressRestart() bool {
	if g.state != StateGameOver && g.state != StateWin {
		return false
	}
	g.state = StateStart
	return true
}

// MovePointer centers the paddle on a pointer at field x, keeping it inside
// the field. Positions outside the field are ignored.
func (g *Game) MovePointer(x float64) {
	w := g.cfg.Field.Width
	if x <= 0 || x >= w {
		return
	}
	g.paddle.X = core.ClampF(x-g.paddle.Width/2, 0, w-g.paddle.Width)
}

// Launch releases every ball riding the paddle. Only acts while playing.
func (g *Game) Launch() {
	if g.state != StatePlaying {
		return
	}
	for _, b := range g.balls {
		b.OnPaddle = false
	}
}

// Step applies one frame of input and, while playing, advances the
// simulation by one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.events = nil

	if x, ok := in.Pointer(); ok {
		g.MovePointer(x)
	}
	switch {
	case in.Has(core.ActionStart):
		g.PressStart()
	case in.Has(core.ActionNextLevel):
		g.PressNextLevel()
	case in.Has(core.ActionRestart):
		g.PressRestart()
	}
	if in.Has(core.ActionLaunch) {
		g.Launch()
	}

	if g.state == StatePlaying {
		g.update()
	}

	return StepResult{State: g.Summary(), Events: g.events}
}

// update runs one tick: deferred effects, collisions, power-ups, movement.
// A transition out of StatePlaying during collisions still lets the rest of
// the tick run.
func (g *Game) update() {
	g.tick++

	for _, e := range g.effects.Due(g.tick) {
		g.applyEffect(e)
	}

	g.collide()

	g.powerups.Update(g.paddle, g.cfg.Field.Height,
		func(p *PowerUp) {
			g.emit(Event{Kind: EventPowerUpCaught, X: p.X, Y: p.Y, PowerUp: p.Type})
			g.activate(p.Type)
		},
		func(p *PowerUp) {
			g.emit(Event{Kind: EventPowerUpMissed, X: p.X, Y: p.Y, PowerUp: p.Type})
		},
	)

	anchorY := g.paddle.Y - g.cfg.Ball.AnchorGap
	for _, b := range g.balls {
		if b.OnPaddle {
			b.X = g.paddle.CenterX()
			b.Y = anchorY - b.Radius
			continue
		}
		b.Move()
	}
}

// collide resolves walls, paddle and bricks for every ball, then settles
// lost lives and cleared levels.
func (g *Game) collide() {
	w, h := g.cfg.Field.Width, g.cfg.Field.Height

	for i := len(g.balls) - 1; i >= 0; i-- {
		ball := g.balls[i]

		if ReflectWalls(ball, g.paddle, w, h, g.cfg.Physics.Steering) == BottomMiss {
			g.balls = append(g.balls[:i], g.balls[i+1:]...)
			g.emit(Event{Kind: EventBallLost, X: ball.X, Y: ball.Y, Value: len(g.balls)})
			// A lost ball is gone for this tick too; it never scores a brick
			continue
		}

		HitBricks(ball, g.grid, func(b *Brick) {
			g.score += g.cfg.Bricks.Points
			cx, cy := b.Center()
			g.emit(Event{Kind: EventBrickDestroyed, X: cx, Y: cy, Value: g.score})
			if p, ok := g.powerups.TrySpawn(cx, cy); ok {
				g.emit(Event{Kind: EventPowerUpSpawned, X: p.X, Y: p.Y, PowerUp: p.Type})
			}
		})
	}

	if len(g.balls) == 0 {
		g.lives--
		g.emit(Event{Kind: EventLifeLost, Value: g.lives})
		if g.lives <= 0 {
			g.state = StateGameOver
			g.finalScore = g.score
			g.emit(Event{Kind: EventGameOver, Value: g.finalScore})
			return
		}
		g.resetRound()
	}

	if g.grid.CountAlive() == 0 {
		g.advanceLevel()
	}
}

// advanceLevel moves to the next layout or ends the campaign.
func (g *Game) advanceLevel() {
	g.level++
	if g.level > TotalLevels {
		g.state = StateWin
		g.finalScore = g.score
		g.emit(Event{Kind: EventWin, Value: g.finalScore})
		return
	}

	g.state = StateLevelComplete
	g.powerups.Clear()
	g.grid = BuildGrid(g.level, g.geom)
	g.resetRound()
	g.emit(Event{Kind: EventLevelComplete, Value: g.level})
}

// activate applies a caught power-up.
func (g *Game) activate(t PowerUpType) {
	switch t {
	case PowerUpWidePaddle:
		// Re-catching refreshes the timer; width never stacks
		g.effects.Cancel(EffectWideRevert)
		g.paddle.Width = g.cfg.Paddle.Width * g.cfg.PowerUps.WideFactor
		g.effects.Schedule(EffectWideRevert, g.tick+g.wideTicks)

	case PowerUpMultiBall:
		if len(g.balls) == 0 {
			return
		}
		src := *g.balls[0]

		mirrored := src
		mirrored.SpeedX = -src.SpeedX
		mirrored.OnPaddle = false

		steep := src
		steep.SpeedX = src.SpeedX / 2
		steep.SpeedY = -src.SpeedY
		steep.OnPaddle = false

		g.balls = append(g.balls, &mirrored, &steep)
	}
}

// applyEffect runs a deferred effect whose tick has come.
func (g *Game) applyEffect(e ScheduledEffect) {
	switch e.Kind {
	case EffectWideRevert:
		g.paddle.Width = g.cfg.Paddle.Width
		g.emit(Event{Kind: EventWideExpired})
	}
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// State returns the current screen-level state.
func (g *Game) State() State {
	return g.state
}

// Running reports whether the per-frame tick is active.
func (g *Game) Running() bool {
	return g.state == StatePlaying
}

// HUD returns score, level and lives for display.
func (g *Game) HUD() HUD {
	return HUD{
		Score: g.score,
		Level: min(g.level, TotalLevels),
		Lives: g.lives,
	}
}

// FinalScore returns the score recorded when the session ended.
func (g *Game) FinalScore() int {
	return g.finalScore
}

// Field returns the play-field size.
func (g *Game) Field() (float64, float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Tick returns the number of ticks simulated so far.
func (g *Game) Tick() int {
	return g.tick
}

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle {
	return *g.paddle
}

// Balls returns copies of the balls in play.
func (g *Game) Balls() []Ball {
	out := make([]Ball, len(g.balls))
	for i, b := range g.balls {
		out[i] = *b
	}
	return out
}

// PowerUps returns copies of the falling power-ups.
func (g *Game) PowerUps() []PowerUp {
	out := make([]PowerUp, len(g.powerups.Pickups))
	for i, p := range g.powerups.Pickups {
		out[i] = *p
	}
	return out
}

// BricksLeft returns the number of bricks still standing.
func (g *Game) BricksLeft() int {
	return g.grid.CountAlive()
}

// Summary returns the compact session state.
func (g *Game) Summary() core.GameState {
	return core.GameState{
		Score:   g.score,
		Lives:   g.lives,
		Level:   min(g.level, TotalLevels),
		Running: g.Running(),
		Over:    g.state == StateGameOver || g.state == StateWin,
	}
}
