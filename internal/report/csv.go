package report

import (
	"fmt"
	"strings"
)

// csvHeader is the fixed header row of the rentals export.
var csvHeader = []string{
	"Rental ID", "Client", "Vehicle", "Start", "End", "Total",
}

// ExportCSV renders the rows as a CSV document: one header row, UTF-8,
// fields double-quoted only when they contain a comma, quote or newline.
func ExportCSV(rows []Row) string {
	var b strings.Builder
	b.WriteString(joinRecord(csvHeader))
	for _, r := range rows {
		b.WriteString(joinRecord([]string{
			fmt.Sprintf("%d", r.RentalID),
			r.ClientName,
			r.VehicleName,
			r.StartTime.Format("2006-01-02 15:04"),
			r.EndTime.Format("2006-01-02 15:04"),
			fmt.Sprintf("%.2f", r.Total),
		}))
	}
	return b.String()
}

func joinRecord(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = EscapeField(f)
	}
	return strings.Join(escaped, ",") + "\n"
}

// EscapeField quotes a field per RFC 4180: embedded quotes are doubled and
// the field is wrapped in quotes when it contains a comma, quote or newline.
func EscapeField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
