package breakout

import "math"

// Snapshot contains the complete session state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	State      string
	Score      int
	Lives      int
	Level      int
	FinalScore int

	PaddleX     float64
	PaddleWidth float64

	// Each ball is 5 floats: X, Y, SpeedX, SpeedY, OnPaddle (0 or 1)
	BallCount int
	BallData  []float64

	// Each power-up is 3 floats: Type, X, Y
	PowerUpCount int
	PowerUpData  []float64

	// Each effect is 2 ints: Kind, DueTick
	EffectCount int
	EffectData  []int

	// Alive flags, row*columns + col = index
	BrickData       []int
	BricksRemaining int

	// RNG state for the power-up manager
	RNGState uint64
}

// Snapshot returns the current session state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, g.grid.Columns*g.grid.Rows)
	for row := range g.grid.Rows {
		for col := range g.grid.Columns {
			if g.grid.Bricks[row][col].Alive {
				brickData[row*g.grid.Columns+col] = 1
			}
		}
	}

	ballData := make([]float64, len(g.balls)*5)
	for i, ball := range g.balls {
		idx := i * 5
		ballData[idx] = ball.X
		ballData[idx+1] = ball.Y
		ballData[idx+2] = ball.SpeedX
		ballData[idx+3] = ball.SpeedY
		if ball.OnPaddle {
			ballData[idx+4] = 1
		}
	}

	powerUpData := make([]float64, len(g.powerups.Pickups)*3)
	for i, p := range g.powerups.Pickups {
		idx := i * 3
		powerUpData[idx] = float64(p.Type)
		powerUpData[idx+1] = p.X
		powerUpData[idx+2] = p.Y
	}

	effects := g.effects.Items()
	effectData := make([]int, len(effects)*2)
	for i, e := range effects {
		effectData[i*2] = int(e.Kind)
		effectData[i*2+1] = e.DueTick
	}

	return Snapshot{
		Tick:       uint64(g.tick), //#nosec G115 -- tick count is always positive
		State:      string(g.state),
		Score:      g.score,
		Lives:      g.lives,
		Level:      g.level,
		FinalScore: g.finalScore,

		PaddleX:     g.paddle.X,
		PaddleWidth: g.paddle.Width,

		BallCount:    len(g.balls),
		BallData:     ballData,
		PowerUpCount: len(g.powerups.Pickups),
		PowerUpData:  powerUpData,
		EffectCount:  len(effects),
		EffectData:   effectData,

		BrickData:       brickData,
		BricksRemaining: g.grid.CountAlive(),
		RNGState:        g.powerups.RNG.state,
	}
}

// ApplySnapshot restores session state from a snapshot taken from a Game
// with the same config.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tick = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.state = State(snap.State)
	g.score = snap.Score
	g.lives = snap.Lives
	g.level = snap.Level
	g.finalScore = snap.FinalScore

	g.paddle.X = snap.PaddleX
	g.paddle.Width = snap.PaddleWidth

	// Bricks: rebuild the layout the snapshot was taken on, then apply flags
	g.grid = BuildGrid(min(max(g.level, 1), TotalLevels), g.geom)
	if len(snap.BrickData) == g.grid.Columns*g.grid.Rows {
		for row := range g.grid.Rows {
			for col := range g.grid.Columns {
				g.grid.Bricks[row][col].Alive = snap.BrickData[row*g.grid.Columns+col] == 1
			}
		}
	}

	g.balls = g.balls[:0]
	for i := range snap.BallCount {
		idx := i * 5
		if idx+4 >= len(snap.BallData) {
			break
		}
		g.balls = append(g.balls, &Ball{
			X:        snap.BallData[idx],
			Y:        snap.BallData[idx+1],
			SpeedX:   snap.BallData[idx+2],
			SpeedY:   snap.BallData[idx+3],
			Radius:   g.cfg.Ball.Radius,
			OnPaddle: snap.BallData[idx+4] == 1,
		})
	}

	g.powerups.Clear()
	for i := range snap.PowerUpCount {
		idx := i * 3
		if idx+2 >= len(snap.PowerUpData) {
			break
		}
		g.powerups.Pickups = append(g.powerups.Pickups, &PowerUp{
			Type: PowerUpType(snap.PowerUpData[idx]),
			X:    snap.PowerUpData[idx+1],
			Y:    snap.PowerUpData[idx+2],
			Size: g.cfg.PowerUps.Size,
		})
	}

	g.effects.Clear()
	for i := range snap.EffectCount {
		idx := i * 2
		if idx+1 >= len(snap.EffectData) {
			break
		}
		g.effects.Schedule(EffectKind(snap.EffectData[idx]), snap.EffectData[idx+1])
	}

	g.powerups.RNG.state = snap.RNGState
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FinalScore) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleWidth)
	h = h*31 + uint64(snap.BallCount)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUpCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EffectCount)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.PowerUpData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.EffectData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
