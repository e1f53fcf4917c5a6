package seq

import (
	"iter"

	"github.com/charmingruby/collect/collection"
	"github.com/charmingruby/collect/internal/numeric"
	"github.com/charmingruby/collect/internal/ordered"
)

// The operations below drive the pipeline. On an infinite sequence only the
// bounded ones (First, FirstWhere with a reachable match, ContainsFunc with a
// reachable match, Each stopping early) return; bound the sequence with Take,
// TakeWhile or TakeUntil before calling the others.

// All iterates over the sequence with range-over-func. Breaking out of the
// loop stops pulling.
//
// Example:
//
//	for i, v := range seq.Count(1).Take(3).All() {
//		fmt.Println(i, v)
//	}
func (s Seq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		c := s.Cursor()
		for i := 0; ; i++ {
			v, ok := c.Next()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}

// Each calls fn with every value until fn returns false.
func (s Seq[T]) Each(fn func(T) bool) {
	for _, v := range s.All() {
		if !fn(v) {
			return
		}
	}
}

// Collect materializes the sequence into a list collection keyed 0..n-1.
func (s Seq[T]) Collect() *collection.Collection[int, T] {
	return collection.FromSlice(s.ToSlice())
}

// ToSlice exhausts the sequence and collects its values.
func (s Seq[T]) ToSlice() []T {
	result := []T{}
	for _, v := range s.All() {
		result = append(result, v)
	}
	return result
}

// Count exhausts the sequence and returns how many values it yielded.
func (s Seq[T]) Count() int {
	n := 0
	for range s.All() {
		n++
	}
	return n
}

// First pulls a single value. It returns collection.ErrEmptyCollection when
// the sequence is empty.
func (s Seq[T]) First() (T, error) {
	v, ok := s.Cursor().Next()
	if !ok {
		return v, collection.ErrEmptyCollection
	}
	return v, nil
}

// FirstWhere pulls until a value satisfies predicate. It returns
// collection.ErrEmptyCollection for an empty sequence and
// collection.ErrNotFound when the sequence ends without a match.
func (s Seq[T]) FirstWhere(predicate func(T) bool) (T, error) {
	var zero T
	seen := false
	for _, v := range s.All() {
		seen = true
		if predicate(v) {
			return v, nil
		}
	}
	if !seen {
		return zero, collection.ErrEmptyCollection
	}
	return zero, collection.ErrNotFound
}

// ContainsFunc reports whether any value satisfies predicate, stopping at the
// first match.
func (s Seq[T]) ContainsFunc(predicate func(T) bool) bool {
	_, err := s.FirstWhere(predicate)
	return err == nil
}

// Reduce folds the sequence seeded by its first value. It returns
// collection.ErrEmptyCollection when the sequence is empty.
func (s Seq[T]) Reduce(fn func(acc T, v T) T) (T, error) {
	c := s.Cursor()
	acc, ok := c.Next()
	if !ok {
		return acc, collection.ErrEmptyCollection
	}
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		acc = fn(acc, v)
	}
	return acc, nil
}

// Fold reduces the sequence from left to right starting at initial.
func Fold[T any, A any](s Seq[T], initial A, fn func(acc A, v T) A) A {
	acc := initial
	for _, v := range s.All() {
		acc = fn(acc, v)
	}
	return acc
}

// Sum adds all values of s.
func Sum[N numeric.Number](s Seq[N]) N {
	return Fold(s, N(0), func(acc, v N) N { return acc + v })
}

// GroupBy exhausts s and groups its values by keySelector in first-seen key
// order. Members are keyed by their position in s.
func GroupBy[T any, G comparable](s Seq[T], keySelector func(T) G) *collection.Collection[G, *collection.Collection[int, T]] {
	groups := ordered.NewGroups[G, collection.Pair[int, T]]()
	for i, v := range s.All() {
		groups.Add(keySelector(v), collection.Pair[int, T]{First: i, Second: v})
	}
	out := collection.New[G, *collection.Collection[int, T]]()
	groups.Each(func(g G, members []collection.Pair[int, T]) {
		group := collection.New[int, T]()
		for _, m := range members {
			group.Put(m.First, m.Second)
		}
		out.Put(g, group)
	})
	return out
}
