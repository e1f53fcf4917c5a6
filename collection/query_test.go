package collection_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/collect/collection"
)

func TestFirstAndLast(t *testing.T) {
	c := collection.Of(1, 2, 3, 4)

	first, err := c.First()
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	last, err := c.Last()
	require.NoError(t, err)
	assert.Equal(t, 4, last)

	even := func(v, _ int) bool { return v%2 == 0 }
	v, err := c.FirstWhere(even)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	v, err = c.LastWhere(even)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

func TestFirstAndLastFailures(t *testing.T) {
	empty := collection.Of[int]()
	_, err := empty.First()
	assert.ErrorIs(t, err, collection.ErrEmptyCollection)
	_, err = empty.Last()
	assert.ErrorIs(t, err, collection.ErrEmptyCollection)

	never := func(v, _ int) bool { return v > 100 }
	c := collection.Of(1, 2)
	_, err = c.FirstWhere(never)
	assert.ErrorIs(t, err, collection.ErrNotFound)
	_, err = c.LastWhere(never)
	assert.ErrorIs(t, err, collection.ErrNotFound)

	assert.Equal(t, -1, c.FirstOr(never, -1))
	assert.Equal(t, -1, c.LastOr(never, -1))
	assert.Equal(t, 2, c.LastOr(func(v, _ int) bool { return v > 0 }, -1))
}

func TestRandom(t *testing.T) {
	c := collection.Of("Rama", "Fajar", "Fadhillah")
	for range 20 {
		v, err := c.Random()
		require.NoError(t, err)
		assert.True(t, collection.Contains(c, v))
	}

	r := rand.New(rand.NewPCG(1, 2))
	again := rand.New(rand.NewPCG(1, 2))
	a, err := c.RandomWith(r)
	require.NoError(t, err)
	b, err := c.RandomWith(again)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = collection.Of[string]().Random()
	assert.ErrorIs(t, err, collection.ErrEmptyCollection)
}

func TestContains(t *testing.T) {
	c := collection.Of("Rama", "Fajar", "Fadhillah")
	assert.True(t, collection.Contains(c, "Rama"))
	assert.False(t, collection.Contains(c, "Azmi"))

	calls := 0
	found := c.ContainsFunc(func(v string, _ int) bool {
		calls++
		return v == "Fajar"
	})
	assert.True(t, found)
	assert.Equal(t, 2, calls)
}

func TestJoin(t *testing.T) {
	c := collection.Of("Rama", "Fajar", "Fadhillah")
	assert.Equal(t, "Rama_Fajar_Fadhillah", c.Join("_"))
	assert.Equal(t, "Rama_Fajar-Fadhillah", c.Join("_", "-"))
	assert.Equal(t, "Rama", collection.Of("Rama").Join("_", "-"))
	assert.Equal(t, "", collection.Of[string]().Join(","))
	assert.Equal(t, "1, 2 and 3", collection.Of(1, 2, 3).Join(", ", " and "))
}
