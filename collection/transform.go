package collection

import (
	"reflect"

	"github.com/pkg/errors"
)

// Map transforms each value with fn, keeping keys and order.
//
// Example:
//
//	doubled := collection.Map(collection.Of(1, 2, 3), func(v int) int { return v * 2 })
func Map[K comparable, V any, U any](c *Collection[K, V], fn func(V) U) *Collection[K, U] {
	return MapWithKey(c, func(_ K, v V) U { return fn(v) })
}

// MapWithKey behaves like Map but also hands fn the key.
func MapWithKey[K comparable, V any, U any](c *Collection[K, V], fn func(K, V) U) *Collection[K, U] {
	out := &Collection[K, U]{items: newItems[K, U](c.Count())}
	for k, v := range c.All() {
		out.items.Put(k, fn(k, v))
	}
	return out
}

// MapInto converts each value with a single-argument constructor.
//
// Example:
//
//	people := collection.MapInto(collection.Of("Fajar"), NewPerson)
func MapInto[K comparable, V any, U any](c *Collection[K, V], ctor func(V) U) *Collection[K, U] {
	return Map(c, ctor)
}

// Spreader is implemented by values that MapSpread can unpack without
// reflection.
type Spreader interface {
	Spread() []any
}

// MapSpread unpacks every value (a slice, an array or a Spreader) into the
// variadic arguments of fn. It fails with ErrTypeMismatch when a value is not
// an ordered sequence or one of its items is not an E.
//
// Example:
//
//	names := collection.Of([]string{"Rama", "Fajar"})
//	full, err := collection.MapSpread(names, func(parts ...string) string {
//		return strings.Join(parts, " ")
//	})
func MapSpread[K comparable, V any, E any, U any](c *Collection[K, V], fn func(...E) U) (*Collection[K, U], error) {
	out := &Collection[K, U]{items: newItems[K, U](c.Count())}
	for k, v := range c.All() {
		args, err := spread[E](v)
		if err != nil {
			return nil, errors.Wrapf(err, "map spread: key %v", k)
		}
		out.items.Put(k, fn(args...))
	}
	return out, nil
}

func spread[E any](value any) ([]E, error) {
	if s, ok := value.(Spreader); ok {
		return castAll[E](s.Spread())
	}
	if direct, ok := value.([]E); ok {
		out := make([]E, len(direct))
		copy(out, direct)
		return out, nil
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, errors.Wrapf(ErrTypeMismatch, "%T is not an ordered sequence", value)
	}
	items := make([]any, rv.Len())
	for i := range rv.Len() {
		items[i] = rv.Index(i).Interface()
	}
	return castAll[E](items)
}

func castAll[E any](items []any) ([]E, error) {
	out := make([]E, len(items))
	for i, item := range items {
		e, ok := item.(E)
		if !ok {
			return nil, errors.Wrapf(ErrTypeMismatch, "item %d is %T, want %T", i, item, *new(E))
		}
		out[i] = e
	}
	return out, nil
}

// FlatMap maps every entry to a slice and concatenates the slices. The
// result is re-indexed from zero.
func FlatMap[K comparable, V any, U any](c *Collection[K, V], fn func(V, K) []U) *Collection[int, U] {
	out := New[int, U]()
	for k, v := range c.All() {
		for _, u := range fn(v, k) {
			out.items.Put(out.items.Len(), u)
		}
	}
	return out
}

// Collapse flattens a collection of slices by one level.
func Collapse[K comparable, V any](c *Collection[K, []V]) *Collection[int, V] {
	return FlatMap(c, func(v []V, _ K) []V { return v })
}

// Flatten flattens a collection of collections by one level, discarding the
// inner keys.
func Flatten[K comparable, IK comparable, V any](c *Collection[K, *Collection[IK, V]]) *Collection[int, V] {
	return FlatMap(c, func(inner *Collection[IK, V], _ K) []V {
		if inner == nil {
			return nil
		}
		return inner.Values()
	})
}

// Concat returns the receiver's values followed by other's values, keyed
// 0..n-1.
func (c *Collection[K, V]) Concat(other *Collection[K, V]) *Collection[int, V] {
	return Concat(c, other)
}

// Concat appends b's values after a's values. Keys of both sides are
// discarded and the result is keyed 0..n-1, so it has no key collisions.
func Concat[K1 comparable, K2 comparable, V any](a *Collection[K1, V], b *Collection[K2, V]) *Collection[int, V] {
	out := &Collection[int, V]{items: newItems[int, V](a.Count() + b.Count())}
	for _, v := range a.All() {
		out.items.Put(out.items.Len(), v)
	}
	for _, v := range b.All() {
		out.items.Put(out.items.Len(), v)
	}
	return out
}

// Combine uses the values of keys as keys for the values of values,
// pairing them positionally. When the lengths differ the longer side is
// truncated.
//
// Example:
//
//	person := collection.Combine(collection.Of("name", "country"), collection.Of("Fajar", "Indonesia"))
func Combine[K1 comparable, K2 comparable, NK comparable, V any](keys *Collection[K1, NK], values *Collection[K2, V]) *Collection[NK, V] {
	ks, vs := keys.Values(), values.Values()
	limit := min(len(ks), len(vs))
	out := &Collection[NK, V]{items: newItems[NK, V](limit)}
	for i := range limit {
		out.items.Put(ks[i], vs[i])
	}
	return out
}

// Pair represents two values zipped together.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Spread implements Spreader.
func (p Pair[A, B]) Spread() []any {
	return []any{p.First, p.Second}
}

// Zip pairs the values of a and b by position up to the shorter length.
func Zip[K1 comparable, K2 comparable, A any, B any](a *Collection[K1, A], b *Collection[K2, B]) *Collection[int, Pair[A, B]] {
	as, bs := a.Values(), b.Values()
	limit := min(len(as), len(bs))
	out := &Collection[int, Pair[A, B]]{items: newItems[int, Pair[A, B]](limit)}
	for i := range limit {
		out.items.Put(i, Pair[A, B]{First: as[i], Second: bs[i]})
	}
	return out
}

// KeyBy re-keys the collection with fn. Later values win on key collisions.
func KeyBy[K comparable, V any, NK comparable](c *Collection[K, V], fn func(V, K) NK) *Collection[NK, V] {
	out := &Collection[NK, V]{items: newItems[NK, V](c.Count())}
	for k, v := range c.All() {
		out.items.Put(fn(v, k), v)
	}
	return out
}
