package report

import (
	"fmt"

	"home-services-backend/internal/database/models"
)

// MarginUndefined is rendered when a margin is computed against zero
// revenue. The source UI serialized NaN here; reports must never carry a
// non-numeric float.
const MarginUndefined = "undefined"

// Margin renders profit/revenue as a percentage with one decimal place,
// or MarginUndefined when revenue is zero.
func Margin(profit, revenue float64) string {
	if revenue == 0 {
		return MarginUndefined
	}
	return fmt.Sprintf("%.1f", profit/revenue*100)
}

// ServiceGroup aggregates the work orders of one service category.
type ServiceGroup struct {
	Service  string
	Orders   int
	Revenue  float64
	Labor    float64
	Material float64
}

// Profit is revenue minus labor and material cost.
func (g ServiceGroup) Profit() float64 {
	return g.Revenue - g.Labor - g.Material
}

// Margin renders the group's profit margin percentage.
func (g ServiceGroup) Margin() string {
	return Margin(g.Profit(), g.Revenue)
}

// GroupByService aggregates records per service category. Groups are
// ordered by the first occurrence of each service key, which fixes the
// display order of report rows.
func GroupByService(records []models.WorkOrder) []ServiceGroup {
	index := make(map[string]int)
	groups := make([]ServiceGroup, 0)

	for _, r := range records {
		i, ok := index[r.Service]
		if !ok {
			i = len(groups)
			index[r.Service] = i
			groups = append(groups, ServiceGroup{Service: r.Service})
		}
		groups[i].Orders++
		groups[i].Revenue += r.Revenue
		groups[i].Labor += r.LaborCost
		groups[i].Material += r.MaterialCost
	}
	return groups
}

// Totals is the grand-total line of a report, always computed over the
// same filtered record set as the body rows.
type Totals struct {
	Orders   int
	Revenue  float64
	Labor    float64
	Material float64
	Hours    float64
}

// Profit is total revenue minus total labor and material cost.
func (t Totals) Profit() float64 {
	return t.Revenue - t.Labor - t.Material
}

// Margin renders the grand-total margin percentage.
func (t Totals) Margin() string {
	return Margin(t.Profit(), t.Revenue)
}

// SumRecords totals the given records directly.
func SumRecords(records []models.WorkOrder) Totals {
	var t Totals
	for _, r := range records {
		t.Orders++
		t.Revenue += r.Revenue
		t.Labor += r.LaborCost
		t.Material += r.MaterialCost
		t.Hours += r.DurationHrs
	}
	return t
}
