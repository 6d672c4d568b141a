package rng

import "sync"

// Sequence заранее заданные значения для тестов. Дробные и целые берутся
// из разных очередей, пустая очередь - паника.
type Sequence struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
}

func NewSequence(floats []float64, ints []int) *Sequence {
	return &Sequence{floats: floats, ints: ints}
}

func (s *Sequence) Uniform() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		panic("rng: float sequence exhausted")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// UniformInt следующее целое, оно должно лежать в [lo, hi]
func (s *Sequence) UniformInt(lo, hi int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		panic("rng: int sequence exhausted")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < lo || v > hi {
		panic("rng: scripted int out of range")
	}
	return v
}

// Remaining сколько значений осталось в каждой очереди
func (s *Sequence) Remaining() (floats, ints int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.floats), len(s.ints)
}
