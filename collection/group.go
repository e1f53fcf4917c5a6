package collection

import (
	"github.com/pkg/errors"

	"github.com/charmingruby/collect/internal/ordered"
)

// KeySelector tells GroupBy how to compute a group key. It holds either a
// field name or a callback; build it with ByField or ByFunc.
type KeySelector[K comparable, V any, G comparable] struct {
	field string
	fn    func(V, K) G
}

// ByField groups by a named field of each value. Structs (by field name or
// mapstructure tag), pointers to structs and maps with string keys are
// supported; a dotted path such as "address.city" descends into nested
// records.
//
// Example:
//
//	collection.ByField[int, Employee, string]("Department")
func ByField[K comparable, V any, G comparable](name string) KeySelector[K, V, G] {
	return KeySelector[K, V, G]{field: name}
}

// ByFunc groups by the result of fn.
func ByFunc[K comparable, V any, G comparable](fn func(V, K) G) KeySelector[K, V, G] {
	return KeySelector[K, V, G]{fn: fn}
}

func (s KeySelector[K, V, G]) key(v V, k K) (G, error) {
	if s.fn != nil {
		return s.fn(v, k), nil
	}
	var zero G
	raw, err := Field(v, s.field)
	if err != nil {
		return zero, err
	}
	g, ok := raw.(G)
	if !ok {
		return zero, errors.Wrapf(ErrTypeMismatch, "field %q is %T, want %T", s.field, raw, zero)
	}
	return g, nil
}

// GroupBy collects entries into groups keyed by selector. Groups appear in
// the order their key was first seen and keep the original keys of their
// members. Only ByField selectors can fail.
//
// Example:
//
//	byDept, err := collection.GroupBy(staff, collection.ByFunc(func(e Employee, _ int) string {
//		return e.Department
//	}))
func GroupBy[K comparable, V any, G comparable](c *Collection[K, V], selector KeySelector[K, V, G]) (*Collection[G, *Collection[K, V]], error) {
	groups := ordered.NewGroups[G, int]()
	for i := range c.items.Len() {
		k, v := c.items.At(i)
		g, err := selector.key(v, k)
		if err != nil {
			return nil, errors.Wrapf(err, "group by: key %v", k)
		}
		groups.Add(g, i)
	}
	out := &Collection[G, *Collection[K, V]]{items: newItems[G, *Collection[K, V]](groups.Len())}
	groups.Each(func(g G, positions []int) {
		members := c.derive(len(positions))
		for _, i := range positions {
			members.items.Put(c.items.At(i))
		}
		out.items.Put(g, members)
	})
	return out, nil
}

// MapToGroups maps each entry to a (group key, value) pair and gathers the
// values per group in first-seen order. Members are keyed 0..n-1.
//
// Example:
//
//	names := collection.MapToGroups(staff, func(e Employee, _ int) (string, string) {
//		return e.Department, e.Name
//	})
func MapToGroups[K comparable, V any, G comparable, U any](c *Collection[K, V], fn func(V, K) (G, U)) *Collection[G, *Collection[int, U]] {
	groups := ordered.NewGroups[G, U]()
	for k, v := range c.All() {
		groups.Add(fn(v, k))
	}
	out := &Collection[G, *Collection[int, U]]{items: newItems[G, *Collection[int, U]](groups.Len())}
	groups.Each(func(g G, members []U) {
		out.items.Put(g, FromSlice(members))
	})
	return out
}
