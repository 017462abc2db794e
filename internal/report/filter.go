package report

import "time"

// Filter narrows the source rows before aggregation. Date-range and
// month-range are mutually exclusive modes: activating one clears the other,
// they never compose. The vehicle cross-filter (from a chart click) combines
// with either mode.
type Filter struct {
	from       *time.Time
	to         *time.Time
	monthFrom  time.Month
	monthTo    time.Month
	monthsSet  bool
	vehicle    string
	loc        *time.Location
}

// NewFilter creates a filter that evaluates timestamps in the given
// business timezone.
func NewFilter(loc *time.Location) *Filter {
	return &Filter{loc: loc}
}

// SetDateRange activates the inclusive date-range mode on the start
// timestamp and clears any month-range. Either bound may be nil.
func (f *Filter) SetDateRange(from, to *time.Time) {
	f.from = from
	f.to = to
	f.monthsSet = false
}

// SetMonthRange activates the month-range mode (inclusive, within one
// calendar year) and clears any date-range.
func (f *Filter) SetMonthRange(from, to time.Month) {
	f.monthFrom = from
	f.monthTo = to
	f.monthsSet = true
	f.from = nil
	f.to = nil
}

// SetVehicle sets the cross-filter to a single vehicle name; empty clears it.
func (f *Filter) SetVehicle(name string) {
	f.vehicle = name
}

// Reset clears all three filter modes atomically.
func (f *Filter) Reset() {
	f.from = nil
	f.to = nil
	f.monthsSet = false
	f.vehicle = ""
}

// DateRangeActive reports whether the date-range mode is in effect.
func (f *Filter) DateRangeActive() bool { return f.from != nil || f.to != nil }

// MonthRangeActive reports whether the month-range mode is in effect. An
// active date-range always wins.
func (f *Filter) MonthRangeActive() bool { return f.monthsSet && !f.DateRangeActive() }

// Apply returns the rows passing the active filter modes. Filtering an
// empty slice yields an empty slice.
func (f *Filter) Apply(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if f.vehicle != "" && r.VehicleName != f.vehicle {
			continue
		}
		start := Normalize(r.StartTime, f.loc)
		if f.DateRangeActive() {
			if f.from != nil && start.Before(*f.from) {
				continue
			}
			if f.to != nil && start.After(*f.to) {
				continue
			}
		} else if f.monthsSet {
			m := start.Month()
			if m < f.monthFrom || m > f.monthTo {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
