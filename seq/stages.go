package seq

import "github.com/charmingruby/collect/collection"

// FromCollection yields the values of c in order. The values are read when
// the first pass opens.
func FromCollection[K comparable, V any](c *collection.Collection[K, V]) Seq[V] {
	return New(func() func() (V, bool) {
		return FromSlice(c.Values()).Cursor().Next
	})
}

// Map lazily transforms values. Each downstream pull makes exactly one
// upstream pull.
func Map[T any, U any](s Seq[T], fn func(T) U) Seq[U] {
	return MapWithIndex(s, func(_ int, v T) U { return fn(v) })
}

// MapWithIndex behaves like Map but also hands fn the position of the value.
func MapWithIndex[T any, U any](s Seq[T], fn func(int, T) U) Seq[U] {
	return derive(s, func(up *Cursor[T]) func() (U, bool) {
		i := 0
		return func() (U, bool) {
			v, ok := up.Next()
			if !ok {
				var zero U
				return zero, false
			}
			out := fn(i, v)
			i++
			return out, true
		}
	})
}

// Filter keeps values satisfying predicate, pulling upstream until a value
// matches or the upstream is exhausted.
func (s Seq[T]) Filter(predicate func(T) bool) Seq[T] {
	return derive(s, func(up *Cursor[T]) func() (T, bool) {
		return func() (T, bool) {
			for {
				v, ok := up.Next()
				if !ok || predicate(v) {
					return v, ok
				}
			}
		}
	})
}

// Reject drops values satisfying predicate.
func (s Seq[T]) Reject(predicate func(T) bool) Seq[T] {
	return s.Filter(func(v T) bool { return !predicate(v) })
}

// Take yields at most n values and stops pulling upstream as soon as the
// n-th value was delivered. Take(0) never opens the upstream.
func (s Seq[T]) Take(n int) Seq[T] {
	if n <= 0 {
		return Seq[T]{}
	}
	return derive(s, func(up *Cursor[T]) func() (T, bool) {
		count := 0
		return func() (T, bool) {
			if count >= n {
				var zero T
				return zero, false
			}
			count++
			return up.Next()
		}
	})
}

// TakeWhile yields values until, excluding, the first one failing predicate.
func (s Seq[T]) TakeWhile(predicate func(T) bool) Seq[T] {
	return s.TakeUntil(func(v T) bool { return !predicate(v) })
}

// TakeUntil yields values until, excluding, the first one matching predicate.
func (s Seq[T]) TakeUntil(predicate func(T) bool) Seq[T] {
	return derive(s, func(up *Cursor[T]) func() (T, bool) {
		return func() (T, bool) {
			v, ok := up.Next()
			if !ok || predicate(v) {
				var zero T
				return zero, false
			}
			return v, true
		}
	})
}

// Skip drops the first n values.
func (s Seq[T]) Skip(n int) Seq[T] {
	if n <= 0 {
		return s
	}
	return derive(s, func(up *Cursor[T]) func() (T, bool) {
		skipped := false
		return func() (T, bool) {
			if !skipped {
				skipped = true
				for range n {
					if _, ok := up.Next(); !ok {
						var zero T
						return zero, false
					}
				}
			}
			return up.Next()
		}
	})
}

// SkipWhile drops values while predicate holds.
func (s Seq[T]) SkipWhile(predicate func(T) bool) Seq[T] {
	return derive(s, func(up *Cursor[T]) func() (T, bool) {
		skipping := true
		return func() (T, bool) {
			for {
				v, ok := up.Next()
				if !ok || !skipping || !predicate(v) {
					skipping = false
					return v, ok
				}
			}
		}
	})
}

// Tap calls fn with every value that passes through.
func (s Seq[T]) Tap(fn func(T)) Seq[T] {
	return derive(s, func(up *Cursor[T]) func() (T, bool) {
		return func() (T, bool) {
			v, ok := up.Next()
			if ok {
				fn(v)
			}
			return v, ok
		}
	})
}

// FlatMap maps each value to a slice and yields the slices' items in order.
func FlatMap[T any, U any](s Seq[T], fn func(T) []U) Seq[U] {
	return derive(s, func(up *Cursor[T]) func() (U, bool) {
		var pending []U
		return func() (U, bool) {
			for len(pending) == 0 {
				v, ok := up.Next()
				if !ok {
					var zero U
					return zero, false
				}
				pending = fn(v)
			}
			out := pending[0]
			pending = pending[1:]
			return out, true
		}
	})
}

// Chunk groups consecutive values into collections of at most size values.
// Values keep their position in the sequence as key. A size below one yields
// an empty sequence.
func Chunk[T any](s Seq[T], size int) Seq[*collection.Collection[int, T]] {
	if size < 1 {
		return Seq[*collection.Collection[int, T]]{}
	}
	return derive(s, func(up *Cursor[T]) func() (*collection.Collection[int, T], bool) {
		pos := 0
		return func() (*collection.Collection[int, T], bool) {
			chunk := collection.New[int, T]()
			for chunk.Count() < size {
				v, ok := up.Next()
				if !ok {
					break
				}
				chunk.Put(pos, v)
				pos++
			}
			return chunk, chunk.IsNotEmpty()
		}
	})
}

// Zip pairs values of a and b by position, stopping with the shorter side.
// b is not pulled once a is exhausted.
func Zip[A any, B any](a Seq[A], b Seq[B]) Seq[collection.Pair[A, B]] {
	return New(func() func() (collection.Pair[A, B], bool) {
		left, right := a.Cursor(), b.Cursor()
		return func() (collection.Pair[A, B], bool) {
			var pair collection.Pair[A, B]
			va, ok := left.Next()
			if !ok {
				return pair, false
			}
			vb, ok := right.Next()
			if !ok {
				return pair, false
			}
			pair.First, pair.Second = va, vb
			return pair, true
		}
	})
}
