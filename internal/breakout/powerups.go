package breakout

import "github.com/vovakirdan/brickbreaker/internal/core"

// PowerUpType represents the kinds of falling power-ups.
type PowerUpType int

const (
	PowerUpWidePaddle PowerUpType = iota // Doubles paddle width for a while
	PowerUpMultiBall                     // Splits the first ball into three
)

// Symbol returns the letter drawn on the power-up.
func (t PowerUpType) Symbol() string {
	switch t {
	case PowerUpWidePaddle:
		return "W"
	case PowerUpMultiBall:
		return "M"
	default:
		return "?"
	}
}

// Color returns the power-up's fill color.
func (t PowerUpType) Color() core.Color {
	switch t {
	case PowerUpWidePaddle:
		return core.ColorGreen
	case PowerUpMultiBall:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// String returns the name of the power-up type.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpWidePaddle:
		return "wide-paddle"
	case PowerUpMultiBall:
		return "multi-ball"
	default:
		return "unknown"
	}
}

// PowerUp is a falling square. X, Y is its top-left corner.
type PowerUp struct {
	Type PowerUpType
	X, Y float64
	Size float64
}

// Rect returns the power-up's bounds.
func (p *PowerUp) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}

// PowerUpConfig holds power-up spawning and falling parameters.
type PowerUpConfig struct {
	SpawnChance float64 // Probability per destroyed brick
	Size        float64
	FallSpeed   float64 // Pixels per tick
}

// PowerUpManager handles power-up spawning, falling and catching.
// Effects are applied by the Game through the catch callback.
type PowerUpManager struct {
	Config  PowerUpConfig
	Pickups []*PowerUp
	RNG     *SimpleRNG
}

// NewPowerUpManager creates a new power-up manager with the given seed.
func NewPowerUpManager(seed int64, cfg PowerUpConfig) *PowerUpManager {
	return &PowerUpManager{
		Config:  cfg,
		Pickups: make([]*PowerUp, 0),
		RNG:     NewSimpleRNG(seed),
	}
}

// Clear removes every falling power-up.
func (pm *PowerUpManager) Clear() {
	pm.Pickups = pm.Pickups[:0]
}

// TrySpawn rolls the spawn chance and, on success, drops a power-up of a
// uniformly chosen type with its corner at (x, y).
func (pm *PowerUpManager) TrySpawn(x, y float64) (*PowerUp, bool) {
	if pm.RNG.Float64() >= pm.Config.SpawnChance {
		return nil, false
	}

	t := PowerUpMultiBall
	if pm.RNG.Float64() < 0.5 {
		t = PowerUpWidePaddle
	}

	p := &PowerUp{
		Type: t,
		X:    x,
		Y:    y,
		Size: pm.Config.Size,
	}
	pm.Pickups = append(pm.Pickups, p)
	return p, true
}

// Update advances every power-up by one tick, newest first.
// A power-up overlapping the paddle band is removed and passed to onCatch;
// one that fell past the bottom edge is removed and passed to onMiss.
// onCatch may change the paddle; later power-ups see the change.
func (pm *PowerUpManager) Update(paddle *Paddle, fieldH float64, onCatch, onMiss func(p *PowerUp)) {
	for i := len(pm.Pickups) - 1; i >= 0; i-- {
		p := pm.Pickups[i]
		p.Y += pm.Config.FallSpeed

		switch {
		case p.Rect().Intersects(paddle.Band()):
			pm.Pickups = append(pm.Pickups[:i], pm.Pickups[i+1:]...)
			if onCatch != nil {
				onCatch(p)
			}
		case p.Y+p.Size > fieldH:
			pm.Pickups = append(pm.Pickups[:i], pm.Pickups[i+1:]...)
			if onMiss != nil {
				onMiss(p)
			}
		}
	}
}
