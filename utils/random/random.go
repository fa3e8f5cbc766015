package random

import (
	"math/rand"
	"sync"
)

// Source yields pseudo-random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int {
	return rand.Intn(n)
}

// Default returns the process-wide source.
func Default() Source {
	return globalSource{}
}

func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLocked returns a seeded source safe to share between goroutines.
func NewLocked(seed int64) Source {
	return &lockedSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
