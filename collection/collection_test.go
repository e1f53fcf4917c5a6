package collection_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/collect/collection"
)

func TestCreateCollection(t *testing.T) {
	c := collection.Of(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, c.Values())
	assert.Equal(t, []int{0, 1, 2}, c.Keys())
	assert.Equal(t, 3, c.Count())
	assert.True(t, c.IsNotEmpty())
	assert.True(t, collection.Of[int]().IsEmpty())
}

func TestIterationFollowsKeys(t *testing.T) {
	c := collection.Of(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	for key, value := range c.All() {
		assert.Equal(t, key+1, value)
	}

	visited := 0
	c.Each(func(v, _ int) bool {
		visited++
		return v < 3
	})
	assert.Equal(t, 3, visited)
}

func TestPushPop(t *testing.T) {
	c := collection.New[int, int]()
	c.Push(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, c.Values())

	last, ok := c.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, last)
	assert.Equal(t, []int{1, 2}, c.Values())

	c.Pop()
	c.Pop()
	_, ok = c.Pop()
	assert.False(t, ok)
}

func TestPushContinuesAfterLargestKey(t *testing.T) {
	c := collection.Of(1, 2, 3, 4).Filter(func(v, _ int) bool { return v%2 == 1 })
	c.Push(9)
	assert.Equal(t, []int{0, 2, 3}, c.Keys())
}

func TestPushPanicsOnNonIntKeys(t *testing.T) {
	c := collection.New[string, int]()
	assert.Panics(t, func() { c.Push(1) })
}

func TestPutForgetKeepOrder(t *testing.T) {
	c := collection.New[string, int]().Put("a", 1).Put("b", 2).Put("a", 3)
	assert.Equal(t, []string{"a", "b"}, c.Keys())
	assert.Equal(t, map[string]int{"a": 3, "b": 2}, c.ToMap())

	c.Forget("a")
	assert.False(t, c.Has("a"))
	v, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestFromMapUsesGivenOrder(t *testing.T) {
	c := collection.FromMap(map[string]int{"x": 1, "y": 2, "z": 3}, "z", "x", "missing")
	keys := c.Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, []string{"z", "x"}, keys[:2])
	assert.Equal(t, "y", keys[2])
}

func TestOperatorsDoNotAliasReceiver(t *testing.T) {
	src := collection.Of(3, 1, 2)
	sorted := collection.Sort(src)
	sorted.Push(10)
	clone := src.Clone()
	clone.Put(0, 99)

	assert.Equal(t, []int{3, 1, 2}, src.Values())
	assert.Equal(t, []int{1, 2, 3, 10}, sorted.Values())
}

func TestTimes(t *testing.T) {
	c := collection.Times(3, func(i int) int { return i * 10 })
	assert.Equal(t, []int{10, 20, 30}, c.Values())
}

func TestStringAndDump(t *testing.T) {
	c := collection.FromMap(map[string]int{"a": 1, "b": 2}, "a", "b")
	assert.Equal(t, "{a:1 b:2}", c.String())

	dump := c.Dump()
	assert.True(t, strings.Index(dump, `"a"`) < strings.Index(dump, `"b"`))
	assert.Contains(t, dump, "Value")
}
