package domain

import (
	"math"
	"time"
)

// EstimateCost computes the base lease cost: the calendar-day ceiling of the
// elapsed wall-clock duration times the daily rate. A 25-hour rental bills
// as 2 days. Returns 0 when end <= start or when the rate is not a usable
// non-negative number; the caller is still expected to block such input.
func EstimateCost(start, end time.Time, dailyRate float64) float64 {
	if !end.After(start) {
		return 0
	}
	if math.IsNaN(dailyRate) || math.IsInf(dailyRate, 0) || dailyRate < 0 {
		return 0
	}
	days := math.Ceil(end.Sub(start).Hours() / 24)
	return days * dailyRate
}

// DayCount returns the billable day count for a rental period, using the
// same calendar-day ceiling as EstimateCost.
func DayCount(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}
