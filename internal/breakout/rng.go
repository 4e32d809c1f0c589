package breakout

// SimpleRNG is a deterministic pseudo-random number generator (64-bit LCG).
// Its whole state is one word, so it can be stored in a Snapshot.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	// High 53 bits: the LCG's low bits have short periods
	return float64(r.Next()>>11) / (1 << 53)
}
