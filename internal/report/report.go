// Package report provides pure, read-only views over finished rentals for
// the dashboard: grouping by client or vehicle, month/quarter bucketing, and
// CSV export. Every view is independently re-derivable from the same source
// slice; nothing here touches the database.
package report

import (
	"sort"
	"time"
)

// Row is one finished rental as consumed by the reporting views.
type Row struct {
	RentalID    uint      `json:"rentalId"`
	ClientID    uint      `json:"clientId"`
	ClientName  string    `json:"clientName"`
	VehicleID   uint      `json:"vehicleId"`
	VehicleName string    `json:"vehicleName"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Total       float64   `json:"total"`
}

// GroupSummary is one aggregation bucket keyed by client or vehicle.
type GroupSummary struct {
	Key       uint      `json:"key"`
	Name      string    `json:"name"`
	Count     int       `json:"count"`
	Total     float64   `json:"total"`
	LatestEnd time.Time `json:"latestEnd"`
}

// PeriodSummary is one calendar bucket (month or quarter).
type PeriodSummary struct {
	Period string  `json:"period"` // "2025-03" or "Q1"
	Count  int     `json:"count"`
	Total  float64 `json:"total"`
}

// GroupByClient aggregates rows per client: rental count, sum of totals and
// the latest end date seen in the group. An empty input yields an empty
// slice, not an error.
func GroupByClient(rows []Row) []GroupSummary {
	return groupBy(rows, func(r Row) (uint, string) { return r.ClientID, r.ClientName })
}

// GroupByVehicle aggregates rows per vehicle.
func GroupByVehicle(rows []Row) []GroupSummary {
	return groupBy(rows, func(r Row) (uint, string) { return r.VehicleID, r.VehicleName })
}

func groupBy(rows []Row, key func(Row) (uint, string)) []GroupSummary {
	groups := make(map[uint]*GroupSummary)
	for _, r := range rows {
		k, name := key(r)
		g, ok := groups[k]
		if !ok {
			g = &GroupSummary{Key: k, Name: name}
			groups[k] = g
		}
		g.Count++
		g.Total += r.Total
		if r.EndTime.After(g.LatestEnd) {
			g.LatestEnd = r.EndTime
		}
	}

	out := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// MonthlyTotals buckets rows by the calendar month of the start timestamp in
// the business timezone. Months appear only when they have at least one row,
// ordered chronologically.
func MonthlyTotals(rows []Row, loc *time.Location) []PeriodSummary {
	buckets := make(map[string]*PeriodSummary)
	var order []string
	for _, r := range rows {
		m := Normalize(r.StartTime, loc).Format("2006-01")
		b, ok := buckets[m]
		if !ok {
			b = &PeriodSummary{Period: m}
			buckets[m] = b
			order = append(order, m)
		}
		b.Count++
		b.Total += r.Total
	}

	sort.Strings(order)
	out := make([]PeriodSummary, 0, len(order))
	for _, m := range order {
		out = append(out, *buckets[m])
	}
	return out
}

// QuarterlyTotals buckets rows into Q1-Q4 by fixed 3-month windows derived
// from the start timestamp's month in the business timezone. All four
// quarters are always present.
func QuarterlyTotals(rows []Row, loc *time.Location) []PeriodSummary {
	out := []PeriodSummary{
		{Period: "Q1"}, {Period: "Q2"}, {Period: "Q3"}, {Period: "Q4"},
	}
	for _, r := range rows {
		month := int(Normalize(r.StartTime, loc).Month())
		q := (month - 1) / 3
		out[q].Count++
		out[q].Total += r.Total
	}
	return out
}

// Normalize shifts a timestamp into the business timezone before any
// month/quarter derivation. Bucketing on the raw UTC instant misclassifies
// rentals that start near local midnight at a month boundary.
func Normalize(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc)
}
