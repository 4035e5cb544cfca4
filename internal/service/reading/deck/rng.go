package deck

import (
	"math/rand/v2"
	"sync"
)

// RNG is the randomness source used for shuffles and coin flips.
// Implementations must be safe for concurrent use.
type RNG interface {
	// IntN returns a uniform value in [0, n). n > 0.
	IntN(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededRNG returns a deterministic, concurrency-safe RNG. Useful for
// tests and reproducible draws.
func NewSeededRNG(seed1, seed2 uint64) RNG {
	return &lockedRand{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func newDefaultRNG() RNG {
	return NewSeededRNG(rand.Uint64(), rand.Uint64())
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}
