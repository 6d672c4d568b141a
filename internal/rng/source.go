// Package rng источники случайности для генераторов исходов.
package rng

// Source равномерные случайные значения. Реализации, которые делят между
// горутинами, должны быть потокобезопасны.
type Source interface {
	// Uniform число в [0, 1)
	Uniform() float64
	// UniformInt целое в [lo, hi], обе границы включены
	UniformInt(lo, hi int) int
}

// Between число в [lo, hi)
func Between(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Uniform()
}

// Pick случайный элемент items
func Pick[T any](src Source, items []T) T {
	return items[src.UniformInt(0, len(items)-1)]
}

// Weighted значение и его вес
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// WeightedChoice идёт по накопленной сумме весов и отдаёт первый элемент,
// чья сумма достигла порога. Если из-за округления порог не достигнут,
// отдаёт последний.
func WeightedChoice[T any](src Source, items []Weighted[T]) T {
	var total float64
	for _, it := range items {
		total += it.Weight
	}

	threshold := src.Uniform() * total
	var cumulative float64
	for _, it := range items {
		cumulative += it.Weight
		if cumulative >= threshold {
			return it.Value
		}
	}
	return items[len(items)-1].Value
}
