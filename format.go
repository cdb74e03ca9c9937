package ledger

import (
	"strconv"
	"strings"
)

// FormatLine renders a row as a normalized data line, the inverse of ParseRow.
// Negative amounts carry a leading dash.
func FormatLine(r *Row) string {
	parts := make([]string, 0, FieldCount)
	parts = append(parts, strconv.Itoa(r.FiscalYear))
	for _, d := range r.Amounts() {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, " ")
}

// FormatRecord renders a row as string values in Columns order.
// Dates use ISO 8601 (YYYY-MM-DD); amounts keep two decimal places.
func FormatRecord(r *Row) []string {
	rec := make([]string, 0, len(Columns))
	rec = append(rec,
		strconv.Itoa(r.FiscalYear),
		r.PeriodStart.Format("2006-01-02"),
		r.PeriodEnd.Format("2006-01-02"),
	)
	for _, d := range r.Amounts() {
		rec = append(rec, d.StringFixed(2))
	}
	return rec
}
