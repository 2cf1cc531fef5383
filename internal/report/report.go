package report

import (
	"fmt"
	"time"

	"home-services-backend/internal/database/models"

	apperrors "home-services-backend/internal/errors"
)

// Type selects one of the four admin report shapes.
type Type string

const (
	TypeSummary    Type = "summary"
	TypeRevenue    Type = "revenue"
	TypeLabor      Type = "labor"
	TypeWorkOrders Type = "work-orders"
)

// ValidType reports whether t names a known report type.
func ValidType(t Type) bool {
	switch t {
	case TypeSummary, TypeRevenue, TypeLabor, TypeWorkOrders:
		return true
	}
	return false
}

// Report is a rendered table: header row, body rows and a grand-total row.
// All cells are display strings; numeric cells carry exactly two decimals
// except margins (one decimal) and counts.
type Report struct {
	Type   Type     `json:"type"`
	Range  Range    `json:"range"`
	Header []string `json:"header"`
	Rows   [][]string `json:"rows"`
	Total  []string `json:"total"`
}

// Build filters records to the range spec's period resolved against now, then
// renders the requested report shape. An empty period yields a zero-row
// report with zeroed totals, never an error; only an unknown report type
// fails.
func Build(records []models.WorkOrder, typ Type, spec RangeSpec, now time.Time) (*Report, error) {
	filtered := FilterByDateRange(records, spec, now)

	r := &Report{Type: typ, Range: spec.Range}
	switch typ {
	case TypeSummary:
		buildSummary(r, filtered)
	case TypeRevenue:
		buildRevenue(r, filtered)
	case TypeLabor:
		buildLabor(r, filtered)
	case TypeWorkOrders:
		buildWorkOrders(r, filtered)
	default:
		return nil, apperrors.ErrInvalidReportType
	}
	return r, nil
}

func buildSummary(r *Report, records []models.WorkOrder) {
	r.Header = []string{"Service Type", "Orders", "Revenue", "Labor Cost", "Material Cost", "Net Profit", "Margin %"}

	var totals Totals
	for _, g := range GroupByService(records) {
		r.Rows = append(r.Rows, []string{
			g.Service,
			fmt.Sprintf("%d", g.Orders),
			money(g.Revenue),
			money(g.Labor),
			money(g.Material),
			money(g.Profit()),
			g.Margin(),
		})
		totals.Orders += g.Orders
		totals.Revenue += g.Revenue
		totals.Labor += g.Labor
		totals.Material += g.Material
	}

	r.Total = []string{
		"TOTAL",
		fmt.Sprintf("%d", totals.Orders),
		money(totals.Revenue),
		money(totals.Labor),
		money(totals.Material),
		money(totals.Profit()),
		totals.Margin(),
	}
}

func buildRevenue(r *Report, records []models.WorkOrder) {
	r.Header = []string{"Date", "Work Order ID", "Customer", "Service", "Revenue", "Status"}

	var totalRevenue float64
	for _, rec := range records {
		r.Rows = append(r.Rows, []string{
			rec.Date.Format("2006-01-02"),
			rec.Code,
			rec.CustomerName,
			rec.Service,
			money(rec.Revenue),
			string(rec.Status),
		})
		totalRevenue += rec.Revenue
	}

	r.Total = []string{"", "", "", "TOTAL REVENUE", money(totalRevenue), ""}
}

func buildLabor(r *Report, records []models.WorkOrder) {
	r.Header = []string{"Date", "Work Order ID", "Service", "Duration (hrs)", "Labor Cost", "Hourly Rate"}

	var totalLabor, totalHours float64
	for _, rec := range records {
		r.Rows = append(r.Rows, []string{
			rec.Date.Format("2006-01-02"),
			rec.Code,
			rec.Service,
			hours(rec.DurationHrs),
			money(rec.LaborCost),
			rate(rec.LaborCost, rec.DurationHrs),
		})
		totalLabor += rec.LaborCost
		totalHours += rec.DurationHrs
	}

	r.Total = []string{"", "", "TOTAL", hours(totalHours), money(totalLabor), rate(totalLabor, totalHours)}
}

func buildWorkOrders(r *Report, records []models.WorkOrder) {
	r.Header = []string{"Work Order ID", "Date", "Customer", "Service", "Revenue", "Total Cost", "Profit", "Status"}

	var totals Totals
	for _, rec := range records {
		r.Rows = append(r.Rows, []string{
			rec.Code,
			rec.Date.Format("2006-01-02"),
			rec.CustomerName,
			rec.Service,
			money(rec.Revenue),
			money(rec.TotalCost()),
			money(rec.Profit()),
			string(rec.Status),
		})
		totals.Revenue += rec.Revenue
		totals.Labor += rec.LaborCost
		totals.Material += rec.MaterialCost
	}

	r.Total = []string{"", "", "", "TOTAL", money(totals.Revenue), money(totals.Labor + totals.Material), money(totals.Profit()), ""}
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func hours(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// rate renders an hourly rate, guarding the zero-duration division the
// source UI left unchecked.
func rate(cost, hrs float64) string {
	if hrs == 0 {
		return MarginUndefined
	}
	return fmt.Sprintf("%.2f", cost/hrs)
}

// FileName names a CSV download, e.g. "summary_report_current-month_2025-10-20.csv".
func FileName(typ Type, rng Range, now time.Time) string {
	name := string(typ)
	if typ == TypeWorkOrders {
		name = "work_orders"
	}
	return fmt.Sprintf("%s_report_%s_%s.csv", name, rng, now.Format("2006-01-02"))
}
