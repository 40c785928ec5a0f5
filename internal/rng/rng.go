package rng

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/fx"
)

// Source is the uniform random source behind generated game values
// (employee traits today). Injectable so tests can pin exact draws.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Intn returns a uniform draw in [0, n).
	Intn(n int) int
}

var Module = fx.Provide(NewSeeded)

type seeded struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewSeeded() Source {
	return &seeded{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}
