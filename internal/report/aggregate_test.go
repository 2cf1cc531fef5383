package report

import (
	"testing"

	"home-services-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestMargin(t *testing.T) {
	assert.Equal(t, "0.0", Margin(0, 100))
	assert.Equal(t, "46.7", Margin(70, 150))
	assert.Equal(t, "-10.0", Margin(-10, 100))

	// zero revenue never serializes NaN/Infinity into a report
	assert.Equal(t, MarginUndefined, Margin(50, 0))
	assert.Equal(t, MarginUndefined, Margin(0, 0))
}

func TestGroupByService(t *testing.T) {
	records := []models.WorkOrder{
		record("WO-1", "2025-10-01", "A", 100, 40, 20),
		record("WO-2", "2025-10-02", "A", 50, 10, 10),
		record("WO-3", "2025-10-03", "B", 200, 80, 40),
	}

	groups := GroupByService(records)
	assert.Len(t, groups, 2)

	a := groups[0]
	assert.Equal(t, "A", a.Service)
	assert.Equal(t, 2, a.Orders)
	assert.Equal(t, 150.0, a.Revenue)
	assert.Equal(t, 50.0, a.Labor)
	assert.Equal(t, 30.0, a.Material)
	assert.Equal(t, 70.0, a.Profit())
	assert.Equal(t, "46.7", a.Margin())

	b := groups[1]
	assert.Equal(t, "B", b.Service)
	assert.Equal(t, 1, b.Orders)
	assert.Equal(t, 200.0, b.Revenue)
	assert.Equal(t, 80.0, b.Profit())
	assert.Equal(t, "40.0", b.Margin())

	// grand totals across groups
	totals := SumRecords(records)
	assert.Equal(t, 350.0, totals.Revenue)
	assert.Equal(t, 150.0, totals.Profit())
	assert.Equal(t, "42.9", totals.Margin())
}

func TestGroupByServicePreservesFirstOccurrenceOrder(t *testing.T) {
	records := []models.WorkOrder{
		record("WO-1", "2025-10-01", "Roof Repair", 100, 10, 10),
		record("WO-2", "2025-10-02", "HVAC Repair", 100, 10, 10),
		record("WO-3", "2025-10-03", "Roof Repair", 100, 10, 10),
		record("WO-4", "2025-10-04", "Drywall Repair", 100, 10, 10),
	}

	groups := GroupByService(records)
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Service
	}
	assert.Equal(t, []string{"Roof Repair", "HVAC Repair", "Drywall Repair"}, keys)
}

func TestGroupTotalsMatchGrandTotals(t *testing.T) {
	// partition invariant: sum of per-group sums equals the direct sum
	records := []models.WorkOrder{
		record("WO-1", "2025-10-01", "A", 450.25, 180.10, 120.05),
		record("WO-2", "2025-10-02", "B", 650.50, 280.20, 200.15),
		record("WO-3", "2025-10-03", "C", 320.75, 150.30, 80.25),
		record("WO-4", "2025-10-04", "A", 3500.00, 1800.40, 1200.35),
		record("WO-5", "2025-10-05", "B", 2800.10, 1200.50, 1000.45),
	}

	var groupRevenue, groupLabor, groupMaterial float64
	var groupOrders int
	for _, g := range GroupByService(records) {
		groupRevenue += g.Revenue
		groupLabor += g.Labor
		groupMaterial += g.Material
		groupOrders += g.Orders
	}

	totals := SumRecords(records)
	assert.InDelta(t, totals.Revenue, groupRevenue, 1e-9)
	assert.InDelta(t, totals.Labor, groupLabor, 1e-9)
	assert.InDelta(t, totals.Material, groupMaterial, 1e-9)
	assert.Equal(t, totals.Orders, groupOrders)
}

func TestGroupByServiceEmpty(t *testing.T) {
	assert.Empty(t, GroupByService(nil))
	totals := SumRecords(nil)
	assert.Equal(t, 0, totals.Orders)
	assert.Equal(t, 0.0, totals.Revenue)
	assert.Equal(t, MarginUndefined, totals.Margin())
}
