package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkRow(id uint, client, vehicle string, start time.Time, days int, total float64) Row {
	return Row{
		RentalID:    id,
		ClientID:    uint(len(client)), // deterministic fake ids for grouping
		ClientName:  client,
		VehicleID:   uint(len(vehicle)),
		VehicleName: vehicle,
		StartTime:   start,
		EndTime:     start.AddDate(0, 0, days),
		Total:       total,
	}
}

func TestGroupByClient(t *testing.T) {
	jan := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 5, 12, 0, 0, 0, time.UTC)

	rows := []Row{
		mkRow(1, "Ana", "Corolla", jan, 2, 1000),
		mkRow(2, "Ana", "Gol", feb, 3, 2000),
		mkRow(3, "Bruno", "Corolla", feb, 1, 500),
	}

	groups := GroupByClient(rows)
	require.Len(t, groups, 2)

	byName := make(map[string]GroupSummary)
	for _, g := range groups {
		byName[g.Name] = g
	}

	ana := byName["Ana"]
	assert.Equal(t, 2, ana.Count)
	assert.Equal(t, 3000.0, ana.Total)
	assert.Equal(t, feb.AddDate(0, 0, 3), ana.LatestEnd, "latest end date is the max across the group")

	bruno := byName["Bruno"]
	assert.Equal(t, 1, bruno.Count)
	assert.Equal(t, 500.0, bruno.Total)
}

func TestGroupByVehicleEmpty(t *testing.T) {
	groups := GroupByVehicle(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups, "empty source yields an empty table, not an error")
}

func TestQuarterlyBoundary(t *testing.T) {
	// Two rentals in March (Q1) and two in April (Q2); the Q1/Q2 boundary
	// must be respected.
	march := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	april := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	rows := []Row{
		mkRow(1, "Ana", "Corolla", march, 1, 1000),
		mkRow(2, "Bruno", "Gol", march.AddDate(0, 0, 5), 1, 2000),
		mkRow(3, "Ana", "Corolla", april, 1, 1000),
		mkRow(4, "Bruno", "Gol", april.AddDate(0, 0, 10), 1, 2000),
	}

	quarters := QuarterlyTotals(rows, time.UTC)
	require.Len(t, quarters, 4)
	assert.Equal(t, 2, quarters[0].Count)
	assert.Equal(t, 3000.0, quarters[0].Total)
	assert.Equal(t, 2, quarters[1].Count)
	assert.Equal(t, 3000.0, quarters[1].Total)
	assert.Equal(t, 0, quarters[2].Count)
	assert.Equal(t, 0, quarters[3].Count)
}

func TestMonthlyTotalsTimezoneNormalization(t *testing.T) {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)

	// 2025-04-01T01:00 UTC is still March 31st in Buenos Aires (UTC-3); it
	// must land in the March bucket, not April.
	edge := time.Date(2025, 4, 1, 1, 0, 0, 0, time.UTC)
	rows := []Row{mkRow(1, "Ana", "Corolla", edge, 1, 1000)}

	months := MonthlyTotals(rows, loc)
	require.Len(t, months, 1)
	assert.Equal(t, "2025-03", months[0].Period)

	quarters := QuarterlyTotals(rows, loc)
	assert.Equal(t, 1, quarters[0].Count, "normalized start belongs to Q1")
	assert.Equal(t, 0, quarters[1].Count)
}

func TestMonthlyTotalsOrdering(t *testing.T) {
	rows := []Row{
		mkRow(1, "Ana", "Corolla", time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC), 1, 100),
		mkRow(2, "Ana", "Corolla", time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC), 1, 200),
		mkRow(3, "Ana", "Corolla", time.Date(2025, 2, 20, 12, 0, 0, 0, time.UTC), 1, 300),
	}

	months := MonthlyTotals(rows, time.UTC)
	require.Len(t, months, 2)
	assert.Equal(t, "2025-02", months[0].Period)
	assert.Equal(t, 500.0, months[0].Total)
	assert.Equal(t, "2025-05", months[1].Period)
}
