package collection

import "github.com/davecgh/go-spew/spew"

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type dumpEntry struct {
	Key   any
	Value any
}

// Dump renders every entry, in order, with its full nested structure. It is
// meant for debugging.
func (c *Collection[K, V]) Dump() string {
	entries := make([]dumpEntry, 0, c.Count())
	for k, v := range c.All() {
		entries = append(entries, dumpEntry{Key: k, Value: v})
	}
	return dumper.Sdump(entries)
}
