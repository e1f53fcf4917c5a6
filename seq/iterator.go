// Package seq offers lazy, pull-based sequences that materialize only what a
// consumer asks for.
//
// Example:
//
//	firstFive := seq.Count(0).Take(5).Collect() // 0 1 2 3 4
package seq

// Cursor is the resumable state of one pass over a sequence. Next is the
// nextOrDone primitive: once it reports false it keeps doing so and the
// upstream is never pulled again.
type Cursor[T any] struct {
	next func() (T, bool)
}

// Next yields the next value. When ok is false, iteration is complete.
func (c *Cursor[T]) Next() (T, bool) {
	if c == nil || c.next == nil {
		var zero T
		return zero, false
	}
	v, ok := c.next()
	if !ok {
		c.next = nil
		var zero T
		return zero, false
	}
	return v, true
}

// Seq is a lazy pipeline. It holds only the recipe for opening a Cursor;
// every terminal operation opens a fresh one, so a Seq over a restartable
// producer can be consumed many times. The zero value is empty.
type Seq[T any] struct {
	open func() *Cursor[T]
}

// Cursor opens a new pass over the sequence. The producer is not touched
// until the first call to Next.
func (s Seq[T]) Cursor() *Cursor[T] {
	if s.open == nil {
		return &Cursor[T]{}
	}
	return s.open()
}

// New builds a sequence from a producer factory. open is called on the first
// pull of each pass and returns the function yielding that pass's values.
//
// Example:
//
//	fib := seq.New(func() func() (int, bool) {
//		a, b := 0, 1
//		return func() (int, bool) {
//			v := a
//			a, b = b, a+b
//			return v, true
//		}
//	})
func New[T any](open func() func() (T, bool)) Seq[T] {
	return Seq[T]{
		open: func() *Cursor[T] {
			var next func() (T, bool)
			return &Cursor[T]{
				next: func() (T, bool) {
					if next == nil {
						next = open()
					}
					return next()
				},
			}
		},
	}
}

// derive wraps s with a stage. build receives the upstream cursor, opened on
// the first downstream pull.
func derive[T any, U any](s Seq[T], build func(up *Cursor[T]) func() (U, bool)) Seq[U] {
	return New(func() func() (U, bool) {
		return build(s.Cursor())
	})
}

// FromSlice creates a sequence over the provided slice without copying.
func FromSlice[T any](values []T) Seq[T] {
	return New(func() func() (T, bool) {
		idx := 0
		return func() (T, bool) {
			if idx >= len(values) {
				var zero T
				return zero, false
			}
			v := values[idx]
			idx++
			return v, true
		}
	})
}

// Of creates a sequence over values.
func Of[T any](values ...T) Seq[T] {
	return FromSlice(values)
}

// Range yields start, start+1, ... up to but excluding end.
func Range(start, end int) Seq[int] {
	return New(func() func() (int, bool) {
		current := start
		return func() (int, bool) {
			if current >= end {
				return 0, false
			}
			v := current
			current++
			return v, true
		}
	})
}

// Count yields start, start+1, ... without end.
func Count(start int) Seq[int] {
	return Iterate(start, func(v int) int { return v + 1 })
}

// Iterate yields seed, fn(seed), fn(fn(seed)), ... without end.
func Iterate[T any](seed T, fn func(T) T) Seq[T] {
	return New(func() func() (T, bool) {
		current, started := seed, false
		return func() (T, bool) {
			if started {
				current = fn(current)
			}
			started = true
			return current, true
		}
	})
}

// Repeat yields value forever.
func Repeat[T any](value T) Seq[T] {
	return Generate(func(int) T { return value })
}

// Generate yields fn(0), fn(1), ... without end.
func Generate[T any](fn func(i int) T) Seq[T] {
	return New(func() func() (T, bool) {
		i := 0
		return func() (T, bool) {
			v := fn(i)
			i++
			return v, true
		}
	})
}
