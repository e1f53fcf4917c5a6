// Package ordered hosts the insertion-ordered backing store shared by the
// eager and lazy packages.
package ordered

// Map keeps key uniqueness and insertion order. Keys and values live in
// parallel slices; pos maps a key to its slot. It is not safe for
// concurrent mutation.
type Map[K comparable, V any] struct {
	pos    map[K]int
	keys   []K
	values []V
}

// New returns an empty Map with room for size entries.
func New[K comparable, V any](size int) *Map[K, V] {
	if size < 0 {
		size = 0
	}
	return &Map[K, V]{
		pos:    make(map[K]int, size),
		keys:   make([]K, 0, size),
		values: make([]V, 0, size),
	}
}

// Put stores value under key. Existing keys keep their position.
func (m *Map[K, V]) Put(key K, value V) {
	if i, ok := m.pos[key]; ok {
		m.values[i] = value
		return
	}
	m.pos[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, ok := m.pos[key]; ok {
		return m.values[i], true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.pos[key]
	return ok
}

// Delete removes key, shifting later entries down by one.
func (m *Map[K, V]) Delete(key K) bool {
	i, ok := m.pos[key]
	if !ok {
		return false
	}
	delete(m.pos, key)
	copy(m.keys[i:], m.keys[i+1:])
	copy(m.values[i:], m.values[i+1:])
	var (
		zeroK K
		zeroV V
	)
	m.keys[len(m.keys)-1] = zeroK
	m.values[len(m.values)-1] = zeroV
	m.keys = m.keys[:len(m.keys)-1]
	m.values = m.values[:len(m.values)-1]
	for j := i; j < len(m.keys); j++ {
		m.pos[m.keys[j]] = j
	}
	return true
}

// PopLast removes and returns the newest entry.
func (m *Map[K, V]) PopLast() (K, V, bool) {
	if len(m.keys) == 0 {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}
	last := len(m.keys) - 1
	key, value := m.keys[last], m.values[last]
	m.Delete(key)
	return key, value, true
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// At returns the entry in slot i. The caller guarantees 0 <= i < Len().
func (m *Map[K, V]) At(i int) (K, V) {
	return m.keys[i], m.values[i]
}

// Keys returns a copy of the keys in order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns a copy of the values in order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, len(m.values))
	copy(out, m.values)
	return out
}

// Clone returns an independent copy. Values are copied shallowly.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := New[K, V](len(m.keys))
	for i, k := range m.keys {
		out.pos[k] = i
	}
	out.keys = append(out.keys, m.keys...)
	out.values = append(out.values, m.values...)
	return out
}
