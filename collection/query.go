package collection

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
)

// First returns the first value, or ErrEmptyCollection.
func (c *Collection[K, V]) First() (V, error) {
	if c.IsEmpty() {
		var zero V
		return zero, ErrEmptyCollection
	}
	_, v := c.items.At(0)
	return v, nil
}

// FirstWhere returns the first value matching predicate. It fails with
// ErrEmptyCollection on an empty collection and ErrNotFound otherwise.
func (c *Collection[K, V]) FirstWhere(predicate func(V, K) bool) (V, error) {
	return c.find(predicate, false)
}

// FirstOr returns the first value matching predicate, or fallback.
func (c *Collection[K, V]) FirstOr(predicate func(V, K) bool, fallback V) V {
	if v, err := c.find(predicate, false); err == nil {
		return v
	}
	return fallback
}

// Last returns the last value, or ErrEmptyCollection.
func (c *Collection[K, V]) Last() (V, error) {
	if c.IsEmpty() {
		var zero V
		return zero, ErrEmptyCollection
	}
	_, v := c.items.At(c.items.Len() - 1)
	return v, nil
}

// LastWhere returns the last value matching predicate.
func (c *Collection[K, V]) LastWhere(predicate func(V, K) bool) (V, error) {
	return c.find(predicate, true)
}

// LastOr returns the last value matching predicate, or fallback.
func (c *Collection[K, V]) LastOr(predicate func(V, K) bool, fallback V) V {
	if v, err := c.find(predicate, true); err == nil {
		return v
	}
	return fallback
}

func (c *Collection[K, V]) find(predicate func(V, K) bool, reverse bool) (V, error) {
	var zero V
	n := c.items.Len()
	if n == 0 {
		return zero, ErrEmptyCollection
	}
	for i := range n {
		if reverse {
			i = n - 1 - i
		}
		k, v := c.items.At(i)
		if predicate(v, k) {
			return v, nil
		}
	}
	return zero, ErrNotFound
}

// Random returns a uniformly selected value.
func (c *Collection[K, V]) Random() (V, error) {
	return c.pick(rand.IntN)
}

// RandomWith behaves like Random but draws from r, which makes the choice
// reproducible with a seeded source.
func (c *Collection[K, V]) RandomWith(r *rand.Rand) (V, error) {
	return c.pick(r.IntN)
}

func (c *Collection[K, V]) pick(intN func(int) int) (V, error) {
	if c.IsEmpty() {
		var zero V
		return zero, errors.Wrap(ErrEmptyCollection, "random")
	}
	_, v := c.items.At(intN(c.items.Len()))
	return v, nil
}

// ContainsFunc reports whether any entry satisfies predicate. It stops at
// the first match.
func (c *Collection[K, V]) ContainsFunc(predicate func(V, K) bool) bool {
	return c.indexOf(predicate) < c.items.Len()
}

// Contains reports whether value is present in c.
func Contains[K comparable, V comparable](c *Collection[K, V], value V) bool {
	return c.ContainsFunc(func(v V, _ K) bool { return v == value })
}

// Join concatenates the values' default formatting with sep. When lastSep is
// given it is used between the final two values instead.
//
// Example:
//
//	collection.Of("Rama", "Fajar", "Fadhillah").Join(", ", " and ") // "Rama, Fajar and Fadhillah"
func (c *Collection[K, V]) Join(sep string, lastSep ...string) string {
	parts := make([]string, 0, c.Count())
	for _, v := range c.All() {
		parts = append(parts, fmt.Sprint(v))
	}
	if len(lastSep) == 0 || len(parts) < 2 {
		return strings.Join(parts, sep)
	}
	last := len(parts) - 1
	return strings.Join(parts[:last], sep) + lastSep[0] + parts[last]
}
