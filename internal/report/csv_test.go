package report

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeField(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "plain", in: "abc", expected: "abc"},
		{name: "comma", in: "a,b", expected: `"a,b"`},
		{name: "quote", in: `a"b`, expected: `"a""b"`},
		{name: "comma and quotes", in: `a,"b"`, expected: `"a,""b"""`},
		{name: "newline", in: "a\nb", expected: "\"a\nb\""},
		{name: "empty", in: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EscapeField(tc.in))
		})
	}
}

func TestExportCSVRoundTrip(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	rows := []Row{
		{
			RentalID:    7,
			ClientName:  `Pérez, "Juan"`,
			VehicleName: "Corolla",
			StartTime:   start,
			EndTime:     start.Add(48 * time.Hour),
			Total:       3500,
		},
	}

	out := ExportCSV(rows)

	// A standard CSV parser must recover the original field.
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Rental ID", "Client", "Vehicle", "Start", "End", "Total"}, records[0])
	assert.Equal(t, `Pérez, "Juan"`, records[1][1])
	assert.Equal(t, "3500.00", records[1][5])
}

func TestExportCSVEmpty(t *testing.T) {
	out := ExportCSV(nil)
	assert.Equal(t, "Rental ID,Client,Vehicle,Start,End,Total\n", out)
}
