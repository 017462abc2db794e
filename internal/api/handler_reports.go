package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"vehicle-rental-backend/internal/report"
)

// reportFilter builds a row filter from query parameters. from/to take
// "2006-01-02" dates; monthFrom/monthTo take 1-12. Supplying a date range
// overrides a month range, mirroring the filter's own exclusivity rule.
func (h *Handler) reportFilter(c *gin.Context) (*report.Filter, bool) {
	f := report.NewFilter(h.loc)

	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return nil, false
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return nil, false
		}
		to = &t
	}

	if raw := c.Query("monthFrom"); raw != "" {
		mf, err := strconv.Atoi(raw)
		if err != nil || mf < 1 || mf > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid monthFrom"})
			return nil, false
		}
		mt := mf
		if rawTo := c.Query("monthTo"); rawTo != "" {
			mt, err = strconv.Atoi(rawTo)
			if err != nil || mt < 1 || mt > 12 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid monthTo"})
				return nil, false
			}
		}
		f.SetMonthRange(time.Month(mf), time.Month(mt))
	}
	if from != nil || to != nil {
		f.SetDateRange(from, to)
	}
	if vehicle := c.Query("vehicle"); vehicle != "" {
		f.SetVehicle(vehicle)
	}
	return f, true
}

func (h *Handler) filteredRows(c *gin.Context) ([]report.Row, bool) {
	f, ok := h.reportFilter(c)
	if !ok {
		return nil, false
	}
	rows, err := h.store.FinishedRentalRows(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return f.Apply(rows), true
}

// ListReportRentals returns the filtered finished-rental rows.
func (h *Handler) ListReportRentals(c *gin.Context) {
	rows, ok := h.filteredRows(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ReportByClient aggregates the filtered rows per client.
func (h *Handler) ReportByClient(c *gin.Context) {
	rows, ok := h.filteredRows(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.GroupByClient(rows))
}

// ReportByVehicle aggregates the filtered rows per vehicle.
func (h *Handler) ReportByVehicle(c *gin.Context) {
	rows, ok := h.filteredRows(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.GroupByVehicle(rows))
}

// ReportMonthly buckets the filtered rows by calendar month.
func (h *Handler) ReportMonthly(c *gin.Context) {
	rows, ok := h.filteredRows(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.MonthlyTotals(rows, h.loc))
}

// ReportQuarterly buckets the filtered rows into the four quarters.
func (h *Handler) ReportQuarterly(c *gin.Context) {
	rows, ok := h.filteredRows(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.QuarterlyTotals(rows, h.loc))
}

// ExportRentalsCSV streams the filtered rows as a CSV download.
func (h *Handler) ExportRentalsCSV(c *gin.Context) {
	rows, ok := h.filteredRows(c)
	if !ok {
		return
	}
	csv := report.ExportCSV(rows)
	c.Header("Content-Disposition", `attachment; filename="rentals.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
