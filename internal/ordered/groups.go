package ordered

// Groups accumulates values under computed keys, remembering the order in
// which each key was first seen.
type Groups[G comparable, V any] struct {
	m *Map[G, []V]
}

// NewGroups returns an empty accumulator.
func NewGroups[G comparable, V any]() *Groups[G, V] {
	return &Groups[G, V]{m: New[G, []V](0)}
}

// Add appends value to the group identified by key.
func (g *Groups[G, V]) Add(key G, value V) {
	members, _ := g.m.Get(key)
	g.m.Put(key, append(members, value))
}

// Len returns the number of distinct keys.
func (g *Groups[G, V]) Len() int {
	return g.m.Len()
}

// Each visits groups in first-seen order.
func (g *Groups[G, V]) Each(fn func(key G, members []V)) {
	for i := range g.m.Len() {
		fn(g.m.At(i))
	}
}
