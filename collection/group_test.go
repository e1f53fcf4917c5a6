package collection_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/collect/collection"
)

type address struct {
	City string
}

type employee struct {
	Name       string
	Department string `mapstructure:"department"`
	Address    address
	Level      int
}

func staffRecords() *collection.Collection[int, map[string]string] {
	return collection.Of(
		map[string]string{"name": "Rama", "department": "IT"},
		map[string]string{"name": "Fajar", "department": "IT"},
		map[string]string{"name": "Fadhillah", "department": "HR"},
	)
}

func TestGroupByField(t *testing.T) {
	staff := staffRecords()
	groups, err := collection.GroupBy(staff, collection.ByField[int, map[string]string, string]("department"))
	require.NoError(t, err)

	assert.Equal(t, []string{"IT", "HR"}, groups.Keys())
	it, _ := groups.Get("IT")
	assert.Equal(t, []map[string]string{
		{"name": "Rama", "department": "IT"},
		{"name": "Fajar", "department": "IT"},
	}, it.Values())
	hr, _ := groups.Get("HR")
	assert.Equal(t, []int{2}, hr.Keys())
}

func TestGroupByFunc(t *testing.T) {
	staff := staffRecords()
	groups, err := collection.GroupBy(staff, collection.ByFunc(func(v map[string]string, _ int) string {
		return v["department"]
	}))
	require.NoError(t, err)

	byField, err := collection.GroupBy(staff, collection.ByField[int, map[string]string, string]("department"))
	require.NoError(t, err)
	assert.Equal(t, byField.Keys(), groups.Keys())
	for dept, members := range groups.All() {
		other, ok := byField.Get(dept)
		require.True(t, ok)
		assert.Equal(t, other.Values(), members.Values())
	}
}

func TestGroupByStructFields(t *testing.T) {
	people := collection.Of(
		employee{Name: "Rama", Department: "IT", Address: address{City: "Bandung"}, Level: 2},
		employee{Name: "Entong", Department: "HR", Address: address{City: "Jakarta"}, Level: 1},
		employee{Name: "Fajar", Department: "IT", Address: address{City: "Bandung"}, Level: 2},
	)

	byTag, err := collection.GroupBy(people, collection.ByField[int, employee, string]("department"))
	require.NoError(t, err)
	assert.Equal(t, []string{"IT", "HR"}, byTag.Keys())

	byCity, err := collection.GroupBy(people, collection.ByField[int, employee, string]("Address.City"))
	require.NoError(t, err)
	bandung, _ := byCity.Get("Bandung")
	assert.Equal(t, 2, bandung.Count())

	byLevel, err := collection.GroupBy(people, collection.ByField[int, employee, int]("Level"))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, byLevel.Keys())
}

func TestGroupByPointerRecords(t *testing.T) {
	people := collection.Of(&employee{Name: "Rama", Department: "IT"}, &employee{Name: "Entong", Department: "HR"})
	groups, err := collection.GroupBy(people, collection.ByField[int, *employee, string]("Name"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Rama", "Entong"}, groups.Keys())
}

func TestGroupByFieldErrors(t *testing.T) {
	staff := staffRecords()

	_, err := collection.GroupBy(staff, collection.ByField[int, map[string]string, string]("salary"))
	assert.ErrorIs(t, err, collection.ErrNotFound)

	_, err = collection.GroupBy(staff, collection.ByField[int, map[string]string, int]("department"))
	assert.ErrorIs(t, err, collection.ErrTypeMismatch)

	_, err = collection.GroupBy(collection.Of(1, 2), collection.ByField[int, int, string]("department"))
	assert.ErrorIs(t, err, collection.ErrTypeMismatch)
}

func TestMapToGroups(t *testing.T) {
	staff := staffRecords()
	names := collection.MapToGroups(staff, func(v map[string]string, _ int) (string, string) {
		return v["department"], v["name"]
	})

	assert.Equal(t, []string{"IT", "HR"}, names.Keys())
	it, _ := names.Get("IT")
	assert.Equal(t, []string{"Rama", "Fajar"}, it.Values())
	hr, _ := names.Get("HR")
	assert.Equal(t, []string{"Fadhillah"}, hr.Values())
}

func TestField(t *testing.T) {
	e := employee{Name: "Rama", Address: address{City: "Bandung"}}
	city, err := collection.Field(e, "Address.City")
	require.NoError(t, err)
	assert.Equal(t, "Bandung", city)

	nested := map[string]any{"team": map[string]any{"lead": "Rama"}}
	lead, err := collection.Field(nested, "team.lead")
	require.NoError(t, err)
	assert.Equal(t, "Rama", lead)

	_, err = collection.Field(e, "Address.Street")
	assert.ErrorIs(t, err, collection.ErrNotFound)
}

type hire struct {
	Name    string
	Hired   time.Time
	Address address `mapstructure:"addr"`
}

func TestGroupByStructValuedFields(t *testing.T) {
	jan := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	hires := collection.Of(
		hire{Name: "Rama", Hired: jan, Address: address{City: "Bandung"}},
		hire{Name: "Entong", Hired: mar, Address: address{City: "Jakarta"}},
		hire{Name: "Fajar", Hired: jan, Address: address{City: "Bandung"}},
	)

	byDate, err := collection.GroupBy(hires, collection.ByField[int, hire, time.Time]("Hired"))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{jan, mar}, byDate.Keys())
	january, _ := byDate.Get(jan)
	assert.Equal(t, []int{0, 2}, january.Keys())

	byAddress, err := collection.GroupBy(hires, collection.ByField[int, hire, address]("addr"))
	require.NoError(t, err)
	assert.Equal(t, []address{{City: "Bandung"}, {City: "Jakarta"}}, byAddress.Keys())

	_, err = collection.GroupBy(hires, collection.ByField[int, hire, address]("Address"))
	assert.ErrorIs(t, err, collection.ErrNotFound)
}

func TestFieldReturnsOriginalValues(t *testing.T) {
	jan := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
	h := &hire{Name: "Rama", Hired: jan, Address: address{City: "Bandung"}}

	hired, err := collection.Field(h, "Hired")
	require.NoError(t, err)
	assert.IsType(t, time.Time{}, hired)
	assert.True(t, jan.Equal(hired.(time.Time)))

	addr, err := collection.Field(map[string]hire{"lead": *h}, "lead.addr")
	require.NoError(t, err)
	assert.Equal(t, address{City: "Bandung"}, addr)

	_, err = collection.Field((*hire)(nil), "Name")
	assert.ErrorIs(t, err, collection.ErrNotFound)
	_, err = collection.Field(42, "Name")
	assert.ErrorIs(t, err, collection.ErrTypeMismatch)
}
