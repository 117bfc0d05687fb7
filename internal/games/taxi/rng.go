package taxi

// SimpleRNG is a deterministic pseudo-random number generator (LCG).
// Its state is a single word so snapshots can capture it.
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

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits of an LCG are far better distributed than the low ones.
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Range returns a random int in [lo, hi].
func (r *SimpleRNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// OneIn returns true with probability 1/n.
func (r *SimpleRNG) OneIn(n int) bool {
	return r.Intn(n) == 0
}

// pick returns a random element of a non-empty slice.
func pick[T any](r *SimpleRNG, items []T) T {
	return items[r.Intn(len(items))]
}
