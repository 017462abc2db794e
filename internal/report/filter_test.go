package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterRows() []Row {
	return []Row{
		mkRow(1, "Ana", "Corolla", time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC), 2, 1000),
		mkRow(2, "Bruno", "Gol", time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC), 3, 2000),
		mkRow(3, "Ana", "Gol", time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC), 1, 500),
	}
}

func TestFilterDateRange(t *testing.T) {
	f := NewFilter(time.UTC)
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	f.SetDateRange(&from, &to)

	out := f.Apply(filterRows())
	require.Len(t, out, 1)
	assert.Equal(t, uint(2), out[0].RentalID)
}

func TestFilterDateRangeInclusiveBounds(t *testing.T) {
	f := NewFilter(time.UTC)
	exact := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	f.SetDateRange(&exact, &exact)

	out := f.Apply(filterRows())
	require.Len(t, out, 1, "bound filter is inclusive")
	assert.Equal(t, uint(2), out[0].RentalID)
}

func TestFilterMonthRange(t *testing.T) {
	f := NewFilter(time.UTC)
	f.SetMonthRange(time.January, time.March)

	out := f.Apply(filterRows())
	require.Len(t, out, 2)
	assert.Equal(t, uint(1), out[0].RentalID)
	assert.Equal(t, uint(2), out[1].RentalID)
}

func TestFilterModesAreMutuallyExclusive(t *testing.T) {
	f := NewFilter(time.UTC)

	// Month range first, then a date range: the month range must stop
	// having any effect.
	f.SetMonthRange(time.January, time.January)
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f.SetDateRange(&from, nil)

	assert.True(t, f.DateRangeActive())
	assert.False(t, f.MonthRangeActive())

	out := f.Apply(filterRows())
	require.Len(t, out, 1)
	assert.Equal(t, uint(3), out[0].RentalID)

	// And the other way around.
	f.SetMonthRange(time.January, time.January)
	assert.False(t, f.DateRangeActive())
	assert.True(t, f.MonthRangeActive())

	out = f.Apply(filterRows())
	require.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].RentalID)
}

func TestFilterVehicleCombinesWithRanges(t *testing.T) {
	f := NewFilter(time.UTC)
	f.SetVehicle("Gol")
	f.SetMonthRange(time.January, time.June)

	out := f.Apply(filterRows())
	require.Len(t, out, 2)
	for _, r := range out {
		assert.Equal(t, "Gol", r.VehicleName)
	}
}

func TestFilterReset(t *testing.T) {
	f := NewFilter(time.UTC)
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	f.SetDateRange(&from, nil)
	f.SetVehicle("Gol")

	f.Reset()
	assert.False(t, f.DateRangeActive())
	assert.False(t, f.MonthRangeActive())

	out := f.Apply(filterRows())
	assert.Len(t, out, 3, "reset clears all filter modes at once")
}

func TestFilterEmptySource(t *testing.T) {
	f := NewFilter(time.UTC)
	f.SetMonthRange(time.January, time.December)
	out := f.Apply(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
