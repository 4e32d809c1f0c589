package breakout

import (
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

func newTestGame(t *testing.T, mutate func(cfg *config.BreakoutConfig)) *Game {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := New(cfg, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

// startedGame returns a playing session that never spawns power-ups on its own.
func startedGame(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t, func(cfg *config.BreakoutConfig) {
		cfg.PowerUps.SpawnChance = 0
	})
	if !g.PressStart() {
		t.Fatal("PressStart should succeed from the start panel")
	}
	return g
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func inputWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// clearAllBut kills every brick except the one at (row, col).
func clearAllBut(g *Game, row, col int) {
	g.grid.Each(func(b *Brick) {
		b.Alive = b.Row == row && b.Col == col
	})
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.Lives = 0

	if _, err := New(cfg, core.DefaultConfig()); err == nil {
		t.Error("New should reject a config with no lives")
	}

	// A doubled paddle would not fit the field and could not be clamped
	cfg = config.DefaultBreakoutConfig()
	cfg.Paddle.Width = 500
	if _, err := New(cfg, core.DefaultConfig()); err == nil {
		t.Error("New should reject a paddle whose wide form exceeds the field")
	}
}

func TestNewShowsStartPanel(t *testing.T) {
	g := newTestGame(t, nil)

	if g.State() != StateStart || g.Panel() != PanelStart {
		t.Errorf("state = %s, panel = %s; want start", g.State(), g.Panel())
	}
	if g.Running() {
		t.Error("new session should not be running")
	}
	if hud := g.HUD(); hud != (HUD{Score: 0, Level: 1, Lives: 3}) {
		t.Errorf("HUD() = %+v", hud)
	}
	if g.BricksLeft() != 45 {
		t.Errorf("BricksLeft() = %d, want 45", g.BricksLeft())
	}

	balls := g.Balls()
	if len(balls) != 1 {
		t.Fatalf("got %d balls, want 1", len(balls))
	}
	b := balls[0]
	if !b.OnPaddle || b.X != 400 || b.Y != 570 || b.SpeedX != 5 || b.SpeedY != -5 {
		t.Errorf("initial ball = %+v", b)
	}
	if p := g.Paddle(); p.X != 340 || p.Width != 120 || p.Y != 585 {
		t.Errorf("initial paddle = %+v", p)
	}

	// No tick while the start panel is up
	g.Step(noInput())
	if g.Tick() != 0 {
		t.Errorf("Tick() = %d after stepping on the start panel, want 0", g.Tick())
	}
}

func TestMovePointer(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		wantX float64
	}{
		{"center", 400, 340},
		{"clamped left", 10, 0},
		{"clamped right", 790, 680},
		{"on left border ignored", 0, 100},
		{"on right border ignored", 800, 100},
		{"outside ignored", -50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, nil)
			g.MovePointer(160) // Paddle at 100

			g.MovePointer(tt.x)
			if got := g.Paddle().X; got != tt.wantX {
				t.Errorf("paddle X = %v, want %v", got, tt.wantX)
			}
		})
	}
}

func TestPointerMovesPaddleInEveryState(t *testing.T) {
	g := newTestGame(t, nil)

	in := noInput()
	in.SetPointer(200)
	g.Step(in)

	if g.Paddle().X != 140 {
		t.Errorf("paddle X on start panel = %v, want 140", g.Paddle().X)
	}
}

func TestLaunchOnlyWhilePlaying(t *testing.T) {
	g := newTestGame(t, nil)

	g.Launch()
	if !g.Balls()[0].OnPaddle {
		t.Error("Launch on the start panel should do nothing")
	}

	g.PressStart()
	g.Launch()
	if g.Balls()[0].OnPaddle {
		t.Error("Launch while playing should free the ball")
	}
}

func TestAnchoredBallTracksPaddle(t *testing.T) {
	g := startedGame(t)

	in := noInput()
	in.SetPointer(200)
	g.Step(in)

	b := g.Balls()[0]
	if !b.OnPaddle {
		t.Fatal("ball should still be held")
	}
	if b.X != 200 || b.Y != 574 {
		t.Errorf("held ball at (%v, %v), want (200, 574)", b.X, b.Y)
	}
}

func TestLaunchedBallMoves(t *testing.T) {
	g := startedGame(t)

	g.Step(inputWith(core.ActionLaunch))

	b := g.Balls()[0]
	if b.OnPaddle {
		t.Fatal("ball should be free after launch")
	}
	if b.X != 405 || b.Y != 565 {
		t.Errorf("ball at (%v, %v) after one tick, want (405, 565)", b.X, b.Y)
	}
}

func TestBrickScoresExactlyOnce(t *testing.T) {
	g := startedGame(t)
	cx, cy := g.grid.Bricks[0][0].Center()
	g.balls = []*Ball{{X: cx, Y: cy, SpeedX: 5, SpeedY: -5, Radius: 10}}

	res := g.Step(noInput())
	if res.State.Score != 10 {
		t.Fatalf("score = %d, want 10", res.State.Score)
	}
	if !res.Has(EventBrickDestroyed) {
		t.Error("expected a brick-destroyed event")
	}
	if g.BricksLeft() != 44 {
		t.Errorf("BricksLeft() = %d, want 44", g.BricksLeft())
	}

	// Ball is still inside the dead brick's bounds
	res = g.Step(noInput())
	if res.State.Score != 10 {
		t.Errorf("score = %d after second tick, want 10", res.State.Score)
	}
}

func TestBrickSpawnsPowerUpAtCenter(t *testing.T) {
	g := newTestGame(t, func(cfg *config.BreakoutConfig) {
		cfg.PowerUps.SpawnChance = 1
	})
	g.PressStart()
	cx, cy := g.grid.Bricks[0][0].Center()
	g.balls = []*Ball{{X: cx, Y: cy, SpeedX: 5, SpeedY: -5, Radius: 10}}

	res := g.Step(noInput())
	if !res.Has(EventPowerUpSpawned) {
		t.Fatal("expected a power-up-spawned event")
	}

	pus := g.PowerUps()
	if len(pus) != 1 {
		t.Fatalf("got %d power-ups, want 1", len(pus))
	}
	// Spawned at the brick center, then fell once in the same tick
	if pus[0].X != cx || pus[0].Y != cy+2 {
		t.Errorf("power-up at (%v, %v), want (%v, %v)", pus[0].X, pus[0].Y, cx, cy+2)
	}
}

func TestLastBallLostCostsLife(t *testing.T) {
	g := startedGame(t)
	g.balls = []*Ball{{X: 100, Y: 586, SpeedX: 0, SpeedY: 5, Radius: 10}}

	res := g.Step(noInput())

	if !res.Has(EventBallLost) || !res.Has(EventLifeLost) {
		t.Errorf("events = %v, want ball-lost and life-lost", res.Events)
	}
	if res.State.Lives != 2 {
		t.Errorf("lives = %d, want 2", res.State.Lives)
	}
	if g.State() != StatePlaying {
		t.Errorf("state = %s, want playing", g.State())
	}

	balls := g.Balls()
	if len(balls) != 1 || !balls[0].OnPaddle {
		t.Fatalf("balls after life loss = %+v, want one held ball", balls)
	}
	if balls[0].X != 400 || g.Paddle().X != 340 {
		t.Errorf("round not reset: ball X %v, paddle X %v", balls[0].X, g.Paddle().X)
	}
}

func TestLostBallSkipsBricks(t *testing.T) {
	g := startedGame(t)
	clearAllBut(g, 0, 0)
	brick := &g.grid.Bricks[0][0]
	brick.X, brick.Y, brick.W, brick.H = 50, 570, 100, 30
	g.balls = []*Ball{{X: 100, Y: 586, SpeedX: 0, SpeedY: 5, Radius: 10}}

	res := g.Step(noInput())

	if res.Has(EventBrickDestroyed) || !brick.Alive {
		t.Error("a ball that missed the paddle should not break a brick")
	}
	if res.State.Score != 0 || res.State.Lives != 2 {
		t.Errorf("score %d lives %d, want 0 and 2", res.State.Score, res.State.Lives)
	}
}

func TestLosingOneOfSeveralBalls(t *testing.T) {
	g := startedGame(t)
	g.balls = []*Ball{
		{X: 100, Y: 586, SpeedX: 0, SpeedY: 5, Radius: 10},
		{X: 400, Y: 300, SpeedX: 5, SpeedY: 5, Radius: 10},
	}

	res := g.Step(noInput())

	if res.State.Lives != 3 {
		t.Errorf("lives = %d, want 3", res.State.Lives)
	}
	if res.Has(EventLifeLost) {
		t.Error("no life should be lost while a ball remains")
	}
	if len(g.Balls()) != 1 {
		t.Errorf("got %d balls, want 1", len(g.Balls()))
	}
}

func TestGameOver(t *testing.T) {
	g := startedGame(t)
	g.lives = 1
	g.score = 120
	g.balls = []*Ball{{X: 100, Y: 586, SpeedX: 0, SpeedY: 5, Radius: 10}}

	res := g.Step(noInput())

	if !res.Has(EventGameOver) {
		t.Error("expected a game-over event")
	}
	if g.State() != StateGameOver || g.Panel() != PanelGameOver {
		t.Errorf("state = %s, panel = %s; want game over", g.State(), g.Panel())
	}
	if g.FinalScore() != 120 {
		t.Errorf("FinalScore() = %d, want 120", g.FinalScore())
	}
	if !res.State.Over || res.State.Running {
		t.Errorf("summary = %+v, want over and not running", res.State)
	}

	// Frozen: further steps do nothing
	tick := g.Tick()
	g.Step(inputWith(core.ActionLaunch))
	if g.Tick() != tick {
		t.Error("tick advanced after game over")
	}

	// Restart returns to the start panel; start then resets the session
	g.Step(inputWith(core.ActionRestart))
	if g.State() != StateStart {
		t.Fatalf("state after restart = %s, want start", g.State())
	}
	g.Step(inputWith(core.ActionStart))
	if hud := g.HUD(); hud != (HUD{Score: 0, Level: 1, Lives: 3}) {
		t.Errorf("HUD after new start = %+v", hud)
	}
	if g.BricksLeft() != 45 {
		t.Errorf("BricksLeft() = %d, want 45", g.BricksLeft())
	}
}

func TestLevelComplete(t *testing.T) {
	g := startedGame(t)
	g.score = 440
	clearAllBut(g, 0, 0)
	cx, cy := g.grid.Bricks[0][0].Center()
	g.balls = []*Ball{{X: cx, Y: cy, SpeedX: 5, SpeedY: -5, Radius: 10}}
	g.powerups.Pickups = append(g.powerups.Pickups, &PowerUp{Type: PowerUpMultiBall, X: 10, Y: 10, Size: 25})

	res := g.Step(noInput())

	if !res.Has(EventLevelComplete) {
		t.Error("expected a level-complete event")
	}
	if g.State() != StateLevelComplete || g.Panel() != PanelLevelComplete {
		t.Fatalf("state = %s, want level complete", g.State())
	}
	if hud := g.HUD(); hud != (HUD{Score: 450, Level: 2, Lives: 3}) {
		t.Errorf("HUD() = %+v", hud)
	}
	if g.BricksLeft() != 25 {
		t.Errorf("BricksLeft() = %d, want the pyramid's 25", g.BricksLeft())
	}
	if len(g.PowerUps()) != 0 {
		t.Error("power-ups should be cleared")
	}
	balls := g.Balls()
	if len(balls) != 1 || !balls[0].OnPaddle || balls[0].X != 400 {
		t.Errorf("balls = %+v, want one centered held ball", balls)
	}

	tick := g.Tick()
	g.Step(noInput())
	if g.Tick() != tick {
		t.Error("tick advanced on the level-complete panel")
	}

	g.Step(inputWith(core.ActionNextLevel))
	if g.State() != StatePlaying {
		t.Errorf("state after next level = %s, want playing", g.State())
	}
	if hud := g.HUD(); hud.Score != 450 || hud.Lives != 3 || hud.Level != 2 {
		t.Errorf("HUD after next level = %+v", hud)
	}
}

func TestWinAfterLastLevel(t *testing.T) {
	g := startedGame(t)
	g.level = TotalLevels
	g.grid = BuildGrid(TotalLevels, g.geom)
	clearAllBut(g, 0, 0)
	cx, cy := g.grid.Bricks[0][0].Center()
	g.balls = []*Ball{{X: cx, Y: cy, SpeedX: 5, SpeedY: -5, Radius: 10}}

	res := g.Step(noInput())

	if !res.Has(EventWin) {
		t.Error("expected a win event")
	}
	if g.State() != StateWin || g.Panel() != PanelWin {
		t.Fatalf("state = %s, want win", g.State())
	}
	if g.FinalScore() != 10 {
		t.Errorf("FinalScore() = %d, want 10", g.FinalScore())
	}
	if g.HUD().Level != TotalLevels {
		t.Errorf("HUD level = %d, want %d", g.HUD().Level, TotalLevels)
	}

	if g.PressNextLevel() || g.PressStart() {
		t.Error("only restart should act on the win panel")
	}
	if !g.PressRestart() || g.State() != StateStart {
		t.Error("restart should return to the start panel")
	}
}

func TestButtonsIgnoredInWrongState(t *testing.T) {
	g := startedGame(t)

	if g.PressStart() || g.PressNextLevel() || g.PressRestart() {
		t.Error("no button should act while playing")
	}
	if g.State() != StatePlaying {
		t.Errorf("state = %s, want playing", g.State())
	}
}

func TestWidePaddleCatchAndRevert(t *testing.T) {
	g := startedGame(t)
	g.powerups.Pickups = append(g.powerups.Pickups, &PowerUp{Type: PowerUpWidePaddle, X: 350, Y: 559, Size: 25})

	res := g.Step(noInput())
	if !res.Has(EventPowerUpCaught) {
		t.Fatal("expected the power-up to be caught")
	}
	if w := g.Paddle().Width; w != 240 {
		t.Fatalf("paddle width = %v, want 240", w)
	}

	for i := 2; i <= 600; i++ {
		if res := g.Step(noInput()); res.Has(EventWideExpired) {
			t.Fatalf("wide paddle expired early at tick %d", i)
		}
	}
	if w := g.Paddle().Width; w != 240 {
		t.Fatalf("paddle width at tick 600 = %v, want 240", w)
	}

	res = g.Step(noInput())
	if !res.Has(EventWideExpired) {
		t.Error("expected wide-expired on tick 601")
	}
	if w := g.Paddle().Width; w != 120 {
		t.Errorf("paddle width after expiry = %v, want 120", w)
	}
}

func TestWidePaddleRecatchRefreshes(t *testing.T) {
	g := startedGame(t)
	drop := func() {
		g.powerups.Pickups = append(g.powerups.Pickups, &PowerUp{Type: PowerUpWidePaddle, X: 350, Y: 559, Size: 25})
	}

	drop()
	g.Step(noInput()) // Tick 1
	for range 99 {
		g.Step(noInput())
	}
	drop()
	g.Step(noInput()) // Tick 101

	if w := g.Paddle().Width; w != 240 {
		t.Errorf("width after second catch = %v, want 240 (no stacking)", w)
	}
	e, ok := g.effects.Pending(EffectWideRevert)
	if !ok || e.DueTick != 701 {
		t.Errorf("pending revert = %+v, %v; want due at 701", e, ok)
	}
	if g.effects.Len() != 1 {
		t.Errorf("effects pending = %d, want 1", g.effects.Len())
	}
}

func TestRoundResetCancelsWidePaddle(t *testing.T) {
	g := startedGame(t)
	g.powerups.Pickups = append(g.powerups.Pickups, &PowerUp{Type: PowerUpWidePaddle, X: 350, Y: 559, Size: 25})
	g.Step(noInput())

	g.balls = []*Ball{{X: 20, Y: 586, SpeedX: 0, SpeedY: 5, Radius: 10}}
	g.paddle.X = 400
	g.Step(noInput())

	if w := g.Paddle().Width; w != 120 {
		t.Errorf("width after round reset = %v, want 120", w)
	}
	if g.effects.Len() != 0 {
		t.Errorf("effects pending after round reset = %d, want 0", g.effects.Len())
	}
}

func TestMultiBallClonesFirstBall(t *testing.T) {
	g := startedGame(t)
	g.powerups.Pickups = append(g.powerups.Pickups, &PowerUp{Type: PowerUpMultiBall, X: 350, Y: 559, Size: 25})

	g.Step(noInput())

	balls := g.Balls()
	if len(balls) != 3 {
		t.Fatalf("got %d balls, want 3", len(balls))
	}
	if !balls[0].OnPaddle {
		t.Error("the original ball should stay held")
	}

	mirrored, steep := balls[1], balls[2]
	if mirrored.OnPaddle || mirrored.SpeedX != -5 || mirrored.SpeedY != -5 {
		t.Errorf("mirrored clone = %+v, want free with speed (-5, -5)", mirrored)
	}
	if steep.OnPaddle || steep.SpeedX != 2.5 || steep.SpeedY != 5 {
		t.Errorf("steep clone = %+v, want free with speed (2.5, 5)", steep)
	}
	// Clones start where the source was and move in the same tick
	if mirrored.X != 395 || mirrored.Y != 565 {
		t.Errorf("mirrored clone at (%v, %v), want (395, 565)", mirrored.X, mirrored.Y)
	}
}

func TestPowerUpMissedEvent(t *testing.T) {
	g := startedGame(t)
	g.powerups.Pickups = append(g.powerups.Pickups, &PowerUp{Type: PowerUpMultiBall, X: 0, Y: 574, Size: 25})

	res := g.Step(noInput())

	if !res.Has(EventPowerUpMissed) || res.Has(EventPowerUpCaught) {
		t.Errorf("events = %v, want only a miss", res.Events)
	}
	if len(g.Balls()) != 1 {
		t.Error("a missed power-up should have no effect")
	}
}

func TestEventsResetEachStep(t *testing.T) {
	g := startedGame(t)
	g.balls = []*Ball{{X: 100, Y: 586, SpeedX: 0, SpeedY: 5, Radius: 10}}

	if res := g.Step(noInput()); len(res.Events) == 0 {
		t.Fatal("expected events on the losing tick")
	}
	if res := g.Step(noInput()); len(res.Events) != 0 {
		t.Errorf("events carried over: %v", res.Events)
	}
}
