// Package collection implements an eager, ordered, keyed collection whose
// operators run immediately and return new collections.
//
// Example:
//
//	doubled := collection.Map(collection.Of(1, 2, 3), func(v int) int { return v * 2 })
//	fmt.Println(doubled.Values()) // [2 4 6]
//
// Operators that keep the element type are methods; operators that introduce
// a new type parameter (Map, GroupBy, Zip, ...) are package functions because
// Go methods cannot declare their own type parameters.
package collection

import (
	"fmt"
	"iter"
	"strings"

	"github.com/charmingruby/collect/internal/ordered"
)

// Collection is an ordered mapping from K to V. Push, Pop, Put and Forget
// mutate the receiver; every other operator returns a fresh Collection that
// shares no backing storage with it. Values themselves are copied shallowly.
type Collection[K comparable, V any] struct {
	items *ordered.Map[K, V]
}

// New returns an empty Collection.
func New[K comparable, V any]() *Collection[K, V] {
	return &Collection[K, V]{items: ordered.New[K, V](0)}
}

// Of builds a list collection keyed 0..n-1.
//
// Example:
//
//	names := collection.Of("Rama", "Fajar")
func Of[V any](values ...V) *Collection[int, V] {
	return FromSlice(values)
}

// FromSlice builds a list collection keyed 0..n-1. The slice is copied.
func FromSlice[V any](values []V) *Collection[int, V] {
	c := &Collection[int, V]{items: ordered.New[int, V](len(values))}
	for i, v := range values {
		c.items.Put(i, v)
	}
	return c
}

// FromMap builds a keyed collection. Go maps are unordered, so the caller
// provides the key order; keys missing from m are skipped and keys of m not
// listed in order are appended afterwards in unspecified order.
func FromMap[K comparable, V any](m map[K]V, order ...K) *Collection[K, V] {
	c := &Collection[K, V]{items: ordered.New[K, V](len(m))}
	for _, k := range order {
		if v, ok := m[k]; ok {
			c.items.Put(k, v)
		}
	}
	for k, v := range m {
		if !c.items.Has(k) {
			c.items.Put(k, v)
		}
	}
	return c
}

// Times builds a list by calling fn with 1..n.
func Times[V any](n int, fn func(int) V) *Collection[int, V] {
	c := &Collection[int, V]{items: ordered.New[int, V](n)}
	for i := range n {
		c.items.Put(i, fn(i+1))
	}
	return c
}

func newItems[K comparable, V any](size int) *ordered.Map[K, V] {
	return ordered.New[K, V](size)
}

func (c *Collection[K, V]) derive(size int) *Collection[K, V] {
	return &Collection[K, V]{items: newItems[K, V](size)}
}

// Count returns the number of entries.
func (c *Collection[K, V]) Count() int {
	return c.items.Len()
}

// IsEmpty reports whether the collection has no entries.
func (c *Collection[K, V]) IsEmpty() bool {
	return c.items.Len() == 0
}

// IsNotEmpty reports whether the collection has at least one entry.
func (c *Collection[K, V]) IsNotEmpty() bool {
	return c.items.Len() > 0
}

// Keys returns the keys in order.
func (c *Collection[K, V]) Keys() []K {
	return c.items.Keys()
}

// Values returns the values in order. Use it to re-index a filtered list.
func (c *Collection[K, V]) Values() []V {
	return c.items.Values()
}

// Get returns the value stored under key.
func (c *Collection[K, V]) Get(key K) (V, bool) {
	return c.items.Get(key)
}

// Has reports whether key is present.
func (c *Collection[K, V]) Has(key K) bool {
	return c.items.Has(key)
}

// ToMap copies the entries into a Go map, dropping order.
func (c *Collection[K, V]) ToMap() map[K]V {
	out := make(map[K]V, c.items.Len())
	for k, v := range c.All() {
		out[k] = v
	}
	return out
}

// All iterates over the entries in order.
//
// Example:
//
//	for key, value := range c.All() {
//		fmt.Println(key, value)
//	}
func (c *Collection[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range c.items.Len() {
			if !yield(c.items.At(i)) {
				return
			}
		}
	}
}

// Each calls fn for every entry until fn returns false.
func (c *Collection[K, V]) Each(fn func(V, K) bool) {
	for k, v := range c.All() {
		if !fn(v, k) {
			return
		}
	}
}

// Clone returns an independent copy of the collection.
func (c *Collection[K, V]) Clone() *Collection[K, V] {
	return &Collection[K, V]{items: c.items.Clone()}
}

// Put stores value under key, keeping the position of an existing key.
func (c *Collection[K, V]) Put(key K, value V) *Collection[K, V] {
	c.items.Put(key, value)
	return c
}

// Forget removes key from the collection.
func (c *Collection[K, V]) Forget(key K) *Collection[K, V] {
	c.items.Delete(key)
	return c
}

// Push appends values under the next integer key (the largest key plus one,
// or zero on an empty collection). It panics when K is not int.
func (c *Collection[K, V]) Push(values ...V) *Collection[K, V] {
	next := 0
	for i := range c.items.Len() {
		k, _ := c.items.At(i)
		ik, ok := any(k).(int)
		if !ok {
			panic(fmt.Sprintf("collection: Push requires int keys, got %T", k))
		}
		if ik >= next {
			next = ik + 1
		}
	}
	for _, v := range values {
		key, ok := any(next).(K)
		if !ok {
			var zero K
			panic(fmt.Sprintf("collection: Push requires int keys, got %T", zero))
		}
		c.items.Put(key, v)
		next++
	}
	return c
}

// Pop removes and returns the last value. ok is false on an empty collection.
func (c *Collection[K, V]) Pop() (V, bool) {
	_, v, ok := c.items.PopLast()
	return v, ok
}

// String renders the entries in order, e.g. {0:1 1:2}.
func (c *Collection[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i := range c.items.Len() {
		if i > 0 {
			b.WriteByte(' ')
		}
		k, v := c.items.At(i)
		fmt.Fprintf(&b, "%v:%v", k, v)
	}
	b.WriteByte('}')
	return b.String()
}
