package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constSource float64

func (c constSource) Uniform() float64        { return float64(c) }
func (c constSource) UniformInt(lo, _ int) int { return lo }

func TestWeightedChoice_Threshold(t *testing.T) {
	items := []Weighted[string]{
		{Value: "a", Weight: 0.4},
		{Value: "b", Weight: 0.3},
		{Value: "c", Weight: 0.3},
	}

	tests := []struct {
		draw float64
		want string
	}{
		{0.0, "a"},
		{0.39, "a"},
		{0.4, "a"},
		{0.41, "b"},
		{0.69, "b"},
		{0.71, "c"},
		{0.999, "c"},
	}
	for _, tt := range tests {
		got := WeightedChoice(NewSequence([]float64{tt.draw}, nil), items)
		assert.Equal(t, tt.want, got, "draw %v", tt.draw)
	}
}

func TestWeightedChoice_FallsBackToLast(t *testing.T) {
	items := []Weighted[int]{{Value: 1, Weight: 1}, {Value: 2, Weight: 1}}
	// порог за пределами суммы весов
	assert.Equal(t, 2, WeightedChoice[int](constSource(1.5), items))
}

func TestBetween(t *testing.T) {
	assert.InDelta(t, 2.0, Between(constSource(0), 2, 10), 1e-12)
	assert.InDelta(t, 6.0, Between(constSource(0.5), 2, 10), 1e-12)
}

func TestSequence(t *testing.T) {
	s := NewSequence([]float64{0.25}, []int{7})
	assert.Equal(t, 0.25, s.Uniform())
	assert.Equal(t, 7, s.UniformInt(0, 36))

	f, i := s.Remaining()
	assert.Zero(t, f)
	assert.Zero(t, i)

	assert.Panics(t, func() { s.Uniform() })
	assert.Panics(t, func() { NewSequence(nil, []int{40}).UniformInt(0, 36) })
}

func TestSeeded_Reproducible(t *testing.T) {
	a, b := NewSeeded(42), NewSeeded(42)
	for range 100 {
		require.Equal(t, a.Uniform(), b.Uniform())
		require.Equal(t, a.UniformInt(1, 10), b.UniformInt(1, 10))
	}
}

func TestSystem_Ranges(t *testing.T) {
	src := NewSystem()
	for range 1000 {
		u := src.Uniform()
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)

		n := src.UniformInt(0, 23)
		require.GreaterOrEqual(t, n, 0)
		require.LessOrEqual(t, n, 23)
	}
}

func TestHMAC_Deterministic(t *testing.T) {
	a := NewHMAC("server-seed", "round-1")
	b := NewHMAC("server-seed", "round-1")
	other := NewHMAC("server-seed", "round-2")

	first := a.Uniform()
	assert.Equal(t, first, b.Uniform())
	assert.NotEqual(t, first, other.Uniform())

	for range 500 {
		u := a.Uniform()
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)
		n := a.UniformInt(1, 10)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 10)
	}
	// отбросы при выборке целых могут добавить значений
	assert.GreaterOrEqual(t, a.Draws(), 1001)
}

func TestHMAC_UniformIntPowerOfTwoNeverRejects(t *testing.T) {
	a := NewHMAC("server-seed", "round-1")
	raw := NewHMAC("server-seed", "round-1")

	for i := range 200 {
		require.Equal(t, int(raw.next()%8), a.UniformInt(0, 7), "draw %d", i)
	}
	assert.Equal(t, 200, a.Draws())
}

func TestHMAC_UniformIntRejectsBiasedTail(t *testing.T) {
	// для n = 2^62+1 почти четверть 64-битных значений лежит ниже порога
	a := NewHMAC("server-seed", "round-1")
	hi := 1 << 62
	for range 200 {
		n := a.UniformInt(0, hi)
		require.GreaterOrEqual(t, n, 0)
		require.LessOrEqual(t, n, hi)
	}
	assert.Greater(t, a.Draws(), 200)

	b := NewHMAC("server-seed", "round-1")
	c := NewHMAC("server-seed", "round-1")
	for range 50 {
		require.Equal(t, b.UniformInt(0, hi), c.UniformInt(0, hi))
	}
}

func TestHMAC_UniformIntCoversRange(t *testing.T) {
	a := NewHMAC("server-seed", "round-1")
	counts := make([]int, 37)
	for range 37 * 200 {
		counts[a.UniformInt(0, 36)]++
	}
	for v, c := range counts {
		assert.Positive(t, c, "value %d never drawn", v)
		assert.InDelta(t, 200, c, 80, "value %d", v)
	}
}

func TestHMACFactory(t *testing.T) {
	f := NewHMACFactory("seed")
	assert.Equal(t, Commitment("seed"), f.Commitment())
	assert.Len(t, f.Commitment(), 64)

	x := f.ForRound("r-1").Uniform()
	y := f.ForRound("r-1").Uniform()
	assert.Equal(t, x, y)

	assert.NotEmpty(t, NewHMACFactory("").Commitment())
}
