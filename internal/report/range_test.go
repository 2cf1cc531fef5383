package report

import (
	"testing"
	"time"

	"home-services-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

// fixed clock: Monday, 2025-10-20
var now = time.Date(2025, time.October, 20, 10, 30, 0, 0, time.UTC)

func record(code, date, service string, revenue, labor, material float64) models.WorkOrder {
	d, _ := time.Parse("2006-01-02", date)
	return models.WorkOrder{
		Code:         code,
		Date:         d,
		Service:      service,
		Revenue:      revenue,
		LaborCost:    labor,
		MaterialCost: material,
		Status:       models.WorkOrderStatusCompleted,
	}
}

func TestBoundsCurrentMonth(t *testing.T) {
	start, end, ok := RangeSpec{Range: RangeCurrentMonth}.Bounds(now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestBoundsLastMonth(t *testing.T) {
	start, end, ok := RangeSpec{Range: RangeLastMonth}.Bounds(now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC), end)
}

func TestBoundsCurrentQuarter(t *testing.T) {
	start, end, ok := RangeSpec{Range: RangeCurrentQuarter}.Bounds(now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), end)

	// Q1 edge
	jan := time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC)
	start, end, _ = RangeSpec{Range: RangeCurrentQuarter}.Bounds(jan)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestBoundsCurrentYear(t *testing.T) {
	start, end, ok := RangeSpec{Range: RangeCurrentYear}.Bounds(now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestFilterByDateRange(t *testing.T) {
	records := []models.WorkOrder{
		record("WO-2025-001", "2025-10-01", "HVAC Repair", 450, 180, 120),
		record("WO-2025-002", "2025-10-31", "Plumbing Installation", 650, 280, 200),
		record("WO-2025-003", "2025-09-15", "Electrical Repair", 320, 150, 80),
		record("WO-2025-004", "2025-11-01", "Roof Repair", 2800, 1200, 1000),
	}

	current := FilterByDateRange(records, RangeSpec{Range: RangeCurrentMonth}, now)
	assert.Len(t, current, 2)
	assert.Equal(t, "WO-2025-001", current[0].Code)
	assert.Equal(t, "WO-2025-002", current[1].Code)

	last := FilterByDateRange(records, RangeSpec{Range: RangeLastMonth}, now)
	assert.Len(t, last, 1)
	assert.Equal(t, "WO-2025-003", last[0].Code)

	year := FilterByDateRange(records, RangeSpec{Range: RangeCurrentYear}, now)
	assert.Len(t, year, 4)
}

func TestFilterByDateRangeCustom(t *testing.T) {
	records := []models.WorkOrder{
		record("WO-2025-001", "2025-10-05", "HVAC Repair", 450, 180, 120),
		record("WO-2025-002", "2025-10-14", "Plumbing Installation", 650, 280, 200),
	}

	start := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC)
	got := FilterByDateRange(records, RangeSpec{Range: RangeCustom, Start: &start, End: &end}, now)
	assert.Len(t, got, 1)
	assert.Equal(t, "WO-2025-001", got[0].Code)

	// custom with missing bounds is a permissive fallback: input unchanged
	got = FilterByDateRange(records, RangeSpec{Range: RangeCustom, Start: &start}, now)
	assert.Equal(t, records, got)
	got = FilterByDateRange(records, RangeSpec{Range: RangeCustom}, now)
	assert.Equal(t, records, got)
}

func TestFilterByDateRangeInclusiveBounds(t *testing.T) {
	records := []models.WorkOrder{
		record("WO-2025-001", "2025-10-01", "HVAC Repair", 450, 180, 120),
		record("WO-2025-002", "2025-10-31", "HVAC Repair", 450, 180, 120),
		record("WO-2025-003", "2025-09-30", "HVAC Repair", 450, 180, 120),
	}
	got := FilterByDateRange(records, RangeSpec{Range: RangeCurrentMonth}, now)
	assert.Len(t, got, 2)
}

func TestValidRange(t *testing.T) {
	assert.True(t, ValidRange(RangeCurrentMonth))
	assert.True(t, ValidRange(RangeCustom))
	assert.False(t, ValidRange(Range("next-month")))
}
