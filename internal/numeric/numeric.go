// Package numeric holds the aggregation kernels shared by collection and seq.
package numeric

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds values. An empty slice sums to zero.
func Sum[N Number](values []N) N {
	var total N
	for _, v := range values {
		total += v
	}
	return total
}

// Avg returns Sum(values) divided by the count, false when values is empty.
// The total is accumulated in N and converted to float64 once, so it wraps
// on integer overflow exactly like Sum does.
func Avg[N Number](values []N) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	return float64(Sum(values)) / float64(len(values)), true
}

// Extreme returns the value that wins every comparison against better,
// false when values is empty.
func Extreme[T cmp.Ordered](values []T, better func(a, b T) bool) (T, bool) {
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	best := values[0]
	for _, v := range values[1:] {
		if better(v, best) {
			best = v
		}
	}
	return best, true
}

// Less and Greater are the comparisons used by Min and Max.
func Less[T cmp.Ordered](a, b T) bool    { return cmp.Less(a, b) }
func Greater[T cmp.Ordered](a, b T) bool { return cmp.Less(b, a) }
