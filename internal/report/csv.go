package report

import (
	"strings"
)

// ToCSV renders the report with its fixed column order: header row, body
// rows, then a blank line separating the grand-total row. Cells containing
// commas, quotes or newlines are quoted.
func ToCSV(r *Report) string {
	var b strings.Builder
	writeCSVRow(&b, r.Header)
	for _, row := range r.Rows {
		writeCSVRow(&b, row)
	}
	b.WriteString("\n")
	writeCSVRow(&b, r.Total)
	return b.String()
}

func writeCSVRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(escapeCSV(cell))
	}
	b.WriteString("\n")
}

func escapeCSV(cell string) string {
	if !strings.ContainsAny(cell, ",\"\n") {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
