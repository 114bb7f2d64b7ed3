package rng

import (
	"math"

	"github.com/KirkDiggler/oripheon-api/internal/errors"
)

// Weighted pairs an item with its sampling weight.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// Int returns an integer in [minValue, maxValue], both inclusive.
func Int(src Source, minValue, maxValue int) int {
	return int(math.Floor(src.Next()*float64(maxValue-minValue+1))) + minValue
}

// Float remaps one draw linearly onto [minValue, maxValue).
func Float(src Source, minValue, maxValue float64) float64 {
	return src.Next()*(maxValue-minValue) + minValue
}

// Bool returns true with probability p.
func Bool(src Source, p float64) bool {
	return src.Next() < p
}

// Choice picks one element uniformly. Returns errors.EmptyInput for an empty list.
func Choice[T any](src Source, list []T) (T, error) {
	var zero T
	if len(list) == 0 {
		return zero, errors.EmptyInput("cannot choose from an empty list")
	}
	return list[int(math.Floor(src.Next()*float64(len(list))))], nil
}

// MustChoice is Choice for compiled-in pools that are never empty.
func MustChoice[T any](src Source, list []T) T {
	v, err := Choice(src, list)
	if err != nil {
		panic(err)
	}
	return v
}

// WeightedChoice scans cumulative weights against one draw. When every
// weight is zero the last entry is returned without consuming a draw.
func WeightedChoice[T any](src Source, entries []Weighted[T]) (T, error) {
	var zero T
	if len(entries) == 0 {
		return zero, errors.EmptyInput("cannot choose from an empty weighted list")
	}

	total := 0.0
	for _, e := range entries {
		total += e.Weight
	}
	last := entries[len(entries)-1].Item
	if total == 0 {
		return last, nil
	}

	// The comparison is inclusive on purpose: a draw of exactly 0 selects a
	// leading zero-weight entry. Changing it would move every seeded result
	// that hits the boundary.
	threshold := src.Next() * total
	cumulative := 0.0
	for _, e := range entries {
		cumulative += e.Weight
		if threshold <= cumulative {
			return e.Item, nil
		}
	}
	return last, nil
}

// Shuffle returns a Fisher-Yates shuffled copy; the input is not modified.
func Shuffle[T any](src Source, list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	for i := len(out) - 1; i > 0; i-- {
		j := int(math.Floor(src.Next() * float64(i+1)))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns the first n elements of a shuffled copy.
func Sample[T any](src Source, list []T, n int) []T {
	shuffled := Shuffle(src, list)
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
