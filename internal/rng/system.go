package rng

import (
	"math/rand/v2"
	"sync"
)

type system struct{}

// NewSystem глобальный генератор math/rand/v2
func NewSystem() Source {
	return system{}
}

func (system) Uniform() float64 {
	return rand.Float64()
}

func (system) UniformInt(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}

type seeded struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeeded воспроизводимый поток PCG
func NewSeeded(seed uint64) Source {
	return &seeded{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seeded) Uniform() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *seeded) UniformInt(lo, hi int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.r.IntN(hi-lo+1)
}
