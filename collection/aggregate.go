package collection

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"

	"github.com/charmingruby/collect/internal/numeric"
)

// Number is any built-in integer or floating point type.
type Number = numeric.Number

// Sum adds all values. An empty collection sums to zero.
func Sum[K comparable, N Number](c *Collection[K, N]) N {
	return numeric.Sum(c.Values())
}

// Avg returns the arithmetic mean, or ErrEmptyCollection.
func Avg[K comparable, N Number](c *Collection[K, N]) (float64, error) {
	avg, ok := numeric.Avg(c.Values())
	if !ok {
		return 0, errors.Wrap(ErrEmptyCollection, "avg")
	}
	return avg, nil
}

// Min returns the smallest value, or ErrEmptyCollection.
func Min[K comparable, V cmp.Ordered](c *Collection[K, V]) (V, error) {
	v, ok := numeric.Extreme(c.Values(), numeric.Less[V])
	if !ok {
		return v, errors.Wrap(ErrEmptyCollection, "min")
	}
	return v, nil
}

// Max returns the largest value, or ErrEmptyCollection.
func Max[K comparable, V cmp.Ordered](c *Collection[K, V]) (V, error) {
	v, ok := numeric.Extreme(c.Values(), numeric.Greater[V])
	if !ok {
		return v, errors.Wrap(ErrEmptyCollection, "max")
	}
	return v, nil
}

// Reduce folds the values from left to right, seeding the accumulator with
// the first value. It returns ErrEmptyCollection when there is nothing to
// seed with.
func (c *Collection[K, V]) Reduce(fn func(acc V, v V, k K) V) (V, error) {
	if c.IsEmpty() {
		var zero V
		return zero, errors.Wrap(ErrEmptyCollection, "reduce")
	}
	_, acc := c.items.At(0)
	for i := 1; i < c.items.Len(); i++ {
		k, v := c.items.At(i)
		acc = fn(acc, v, k)
	}
	return acc, nil
}

// Fold reduces the collection from left to right starting at initial.
//
// Example:
//
//	total := collection.Fold(collection.Of(1, 2, 3), 0, func(acc, v, _ int) int { return acc + v })
func Fold[K comparable, V any, A any](c *Collection[K, V], initial A, fn func(acc A, v V, k K) A) A {
	acc := initial
	for k, v := range c.All() {
		acc = fn(acc, v, k)
	}
	return acc
}

// SortFunc returns a copy ordered by compare. The sort is stable and keys
// travel with their values.
func (c *Collection[K, V]) SortFunc(compare func(a, b V) int) *Collection[K, V] {
	order := make([]int, c.items.Len())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int {
		_, a := c.items.At(i)
		_, b := c.items.At(j)
		return compare(a, b)
	})
	out := c.derive(len(order))
	for _, i := range order {
		out.items.Put(c.items.At(i))
	}
	return out
}

// Sort returns a copy in ascending natural order.
func Sort[K comparable, V cmp.Ordered](c *Collection[K, V]) *Collection[K, V] {
	return c.SortFunc(cmp.Compare[V])
}

// SortDesc returns a copy in descending natural order.
func SortDesc[K comparable, V cmp.Ordered](c *Collection[K, V]) *Collection[K, V] {
	return c.SortFunc(func(a, b V) int { return cmp.Compare(b, a) })
}
