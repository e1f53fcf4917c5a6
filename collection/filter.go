package collection

// Filter keeps the entries for which predicate returns true. Original keys
// are preserved, so a filtered list may have gaps; call Values to re-index.
func (c *Collection[K, V]) Filter(predicate func(V, K) bool) *Collection[K, V] {
	out := c.derive(c.Count())
	for k, v := range c.All() {
		if predicate(v, k) {
			out.items.Put(k, v)
		}
	}
	return out
}

// Reject is the inverse of Filter.
func (c *Collection[K, V]) Reject(predicate func(V, K) bool) *Collection[K, V] {
	return c.Filter(func(v V, k K) bool { return !predicate(v, k) })
}

// Partition splits the entries into those matching predicate and the rest,
// keeping keys and relative order on both sides.
func (c *Collection[K, V]) Partition(predicate func(V, K) bool) (*Collection[K, V], *Collection[K, V]) {
	matched, rest := c.derive(c.Count()), c.derive(c.Count())
	for k, v := range c.All() {
		if predicate(v, k) {
			matched.items.Put(k, v)
		} else {
			rest.items.Put(k, v)
		}
	}
	return matched, rest
}

func (c *Collection[K, V]) between(from, to int) *Collection[K, V] {
	from = max(from, 0)
	to = min(to, c.Count())
	if from >= to {
		return c.derive(0)
	}
	out := c.derive(to - from)
	for i := from; i < to; i++ {
		out.items.Put(c.items.At(i))
	}
	return out
}

// Slice returns the entries starting at offset. A negative offset counts
// from the end. The optional length limits the result; a negative length
// stops that many entries before the end. Keys are preserved.
//
// Example:
//
//	collection.Of(1, 2, 3, 4, 5).Slice(1, 2).Values() // [2 3]
func (c *Collection[K, V]) Slice(offset int, length ...int) *Collection[K, V] {
	n := c.Count()
	if offset < 0 {
		offset = max(n+offset, 0)
	}
	end := n
	if len(length) > 0 {
		switch l := length[0]; {
		case l >= 0:
			end = offset + min(l, max(n-offset, 0))
		default:
			end = n + l
		}
	}
	return c.between(offset, end)
}

// Take returns the first n entries, or the last -n entries when n is negative.
func (c *Collection[K, V]) Take(n int) *Collection[K, V] {
	if n < 0 {
		return c.between(c.Count()+n, c.Count())
	}
	return c.between(0, n)
}

// TakeWhile returns entries up to, excluding, the first one failing predicate.
func (c *Collection[K, V]) TakeWhile(predicate func(V, K) bool) *Collection[K, V] {
	return c.between(0, c.indexOf(func(v V, k K) bool { return !predicate(v, k) }))
}

// TakeUntil returns entries up to, excluding, the first one matching predicate.
func (c *Collection[K, V]) TakeUntil(predicate func(V, K) bool) *Collection[K, V] {
	return c.between(0, c.indexOf(predicate))
}

// Skip drops the first n entries.
func (c *Collection[K, V]) Skip(n int) *Collection[K, V] {
	return c.between(n, c.Count())
}

// SkipWhile drops entries while predicate holds.
func (c *Collection[K, V]) SkipWhile(predicate func(V, K) bool) *Collection[K, V] {
	return c.between(c.indexOf(func(v V, k K) bool { return !predicate(v, k) }), c.Count())
}

// SkipUntil drops entries until predicate first holds.
func (c *Collection[K, V]) SkipUntil(predicate func(V, K) bool) *Collection[K, V] {
	return c.between(c.indexOf(predicate), c.Count())
}

// indexOf returns the position of the first entry matching predicate, or
// Count when none does.
func (c *Collection[K, V]) indexOf(predicate func(V, K) bool) int {
	for i := range c.items.Len() {
		k, v := c.items.At(i)
		if predicate(v, k) {
			return i
		}
	}
	return c.items.Len()
}

// Chunk splits the collection into consecutive collections of at most size
// entries, keeping the original keys inside each chunk. A size below one
// yields an empty result.
//
// Example:
//
//	collection.Of(1, 2, 3, 4, 5).Chunk(2) // {0:{0:1 1:2} 1:{2:3 3:4} 2:{4:5}}
func (c *Collection[K, V]) Chunk(size int) *Collection[int, *Collection[K, V]] {
	out := New[int, *Collection[K, V]]()
	if size < 1 {
		return out
	}
	for from := 0; from < c.Count(); from += size {
		out.items.Put(out.items.Len(), c.between(from, from+size))
	}
	return out
}

// Unique removes duplicate values, keeping the first occurrence and its key.
func Unique[K comparable, V comparable](c *Collection[K, V]) *Collection[K, V] {
	return UniqueBy(c, func(v V) V { return v })
}

// UniqueBy removes entries whose keySelector result was already seen.
func UniqueBy[K comparable, V any, U comparable](c *Collection[K, V], keySelector func(V) U) *Collection[K, V] {
	seen := make(map[U]struct{}, c.Count())
	return c.Filter(func(v V, _ K) bool {
		key := keySelector(v)
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = struct{}{}
		return true
	})
}
