package planner

import (
	"math/rand/v2"
	"sync"
)

// Random is the source of the selector's tie-breaks. *rand.Rand satisfies it.
type Random interface {
	IntN(n int) int
}

type systemRandom struct{}

func (systemRandom) IntN(n int) int { return rand.IntN(n) }

// SystemRandom draws from the runtime's global generator. Plans made with it
// differ between runs even for identical input.
func SystemRandom() Random {
	return systemRandom{}
}

type seededRandom struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *seededRandom) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// SeededRandom returns a reproducible source that is safe to share between
// goroutines.
func SeededRandom(seed uint64) Random {
	return &seededRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}
