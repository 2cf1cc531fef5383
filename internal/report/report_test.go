package report

import (
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"home-services-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func octoberRecords() []models.WorkOrder {
	return []models.WorkOrder{
		record("WO-2025-001", "2025-10-01", "HVAC Repair", 450, 180, 120),
		record("WO-2025-002", "2025-10-03", "HVAC Repair", 650, 280, 200),
		record("WO-2025-003", "2025-10-05", "Electrical Repair", 320, 150, 80),
		record("WO-2025-004", "2025-09-07", "Kitchen Remodel", 3500, 1800, 1200), // out of month
	}
}

func TestBuildSummary(t *testing.T) {
	r, err := Build(octoberRecords(), TypeSummary, RangeSpec{Range: RangeCurrentMonth}, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"Service Type", "Orders", "Revenue", "Labor Cost", "Material Cost", "Net Profit", "Margin %"}, r.Header)
	require.Len(t, r.Rows, 2)
	assert.Equal(t, []string{"HVAC Repair", "2", "1100.00", "460.00", "320.00", "320.00", "29.1"}, r.Rows[0])
	assert.Equal(t, []string{"Electrical Repair", "1", "320.00", "150.00", "80.00", "90.00", "28.1"}, r.Rows[1])
	assert.Equal(t, []string{"TOTAL", "3", "1420.00", "610.00", "400.00", "410.00", "28.9"}, r.Total)
}

func TestBuildRevenue(t *testing.T) {
	r, err := Build(octoberRecords(), TypeRevenue, RangeSpec{Range: RangeCurrentMonth}, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Work Order ID", "Customer", "Service", "Revenue", "Status"}, r.Header)
	require.Len(t, r.Rows, 3)
	assert.Equal(t, "2025-10-01", r.Rows[0][0])
	assert.Equal(t, "WO-2025-001", r.Rows[0][1])
	assert.Equal(t, "450.00", r.Rows[0][4])
	assert.Equal(t, []string{"", "", "", "TOTAL REVENUE", "1420.00", ""}, r.Total)
}

func TestBuildLabor(t *testing.T) {
	records := []models.WorkOrder{
		record("WO-2025-001", "2025-10-01", "HVAC Repair", 450, 180, 120),
	}
	records[0].DurationHrs = 3.5
	zeroDur := record("WO-2025-002", "2025-10-02", "Drywall Repair", 100, 50, 10)
	records = append(records, zeroDur)

	r, err := Build(records, TypeLabor, RangeSpec{Range: RangeCurrentMonth}, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Work Order ID", "Service", "Duration (hrs)", "Labor Cost", "Hourly Rate"}, r.Header)
	assert.Equal(t, []string{"2025-10-01", "WO-2025-001", "HVAC Repair", "3.5", "180.00", "51.43"}, r.Rows[0])
	// zero-duration rate is undefined, not +Inf
	assert.Equal(t, MarginUndefined, r.Rows[1][5])
	assert.Equal(t, "3.5", r.Total[3])
	assert.Equal(t, "230.00", r.Total[4])
}

func TestBuildWorkOrders(t *testing.T) {
	r, err := Build(octoberRecords(), TypeWorkOrders, RangeSpec{Range: RangeCurrentMonth}, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"Work Order ID", "Date", "Customer", "Service", "Revenue", "Total Cost", "Profit", "Status"}, r.Header)
	require.Len(t, r.Rows, 3)
	assert.Equal(t, []string{"WO-2025-001", "2025-10-01", "", "HVAC Repair", "450.00", "300.00", "150.00", "completed"}, r.Rows[0])
	assert.Equal(t, []string{"", "", "", "TOTAL", "1420.00", "1010.00", "410.00", ""}, r.Total)
}

func TestBuildUnknownType(t *testing.T) {
	_, err := Build(nil, Type("quarterly"), RangeSpec{Range: RangeCurrentMonth}, now)
	assert.Error(t, err)
}

func TestBuildEmptyRangeNeverFails(t *testing.T) {
	for _, typ := range []Type{TypeSummary, TypeRevenue, TypeLabor, TypeWorkOrders} {
		r, err := Build(nil, typ, RangeSpec{Range: RangeCurrentMonth}, now)
		require.NoError(t, err, "type %s", typ)
		assert.Empty(t, r.Rows)
		assert.NotEmpty(t, r.Total)
	}

	// zero totals, margin undefined instead of NaN
	r, _ := Build(nil, TypeSummary, RangeSpec{Range: RangeCurrentMonth}, now)
	assert.Equal(t, "0", r.Total[1])
	assert.Equal(t, "0.00", r.Total[2])
	assert.Equal(t, MarginUndefined, r.Total[6])
}

func TestToCSVRoundTrip(t *testing.T) {
	records := octoberRecords()
	r, err := Build(records, TypeSummary, RangeSpec{Range: RangeCurrentMonth}, now)
	require.NoError(t, err)

	out := ToCSV(r)
	reader := csv.NewReader(strings.NewReader(out))
	reader.FieldsPerRecord = -1
	parsed, err := reader.ReadAll()
	require.NoError(t, err)

	// header + 2 groups + total (csv.Reader skips the blank separator line)
	require.Len(t, parsed, 4)
	assert.Equal(t, r.Header, parsed[0])

	// order count and revenue sum survive the round trip
	var orders int
	var revenue float64
	for _, row := range parsed[1:3] {
		n, err := strconv.Atoi(row[1])
		require.NoError(t, err)
		orders += n
		v, err := strconv.ParseFloat(row[2], 64)
		require.NoError(t, err)
		revenue += v
	}

	direct := SumRecords(FilterByDateRange(records, RangeSpec{Range: RangeCurrentMonth}, now))
	assert.Equal(t, direct.Orders, orders)
	assert.InDelta(t, direct.Revenue, revenue, 0.001)
}

func TestToCSVQuotesCommaCells(t *testing.T) {
	records := []models.WorkOrder{
		record("WO-2025-001", "2025-10-01", "Heating, Ventilation & AC", 450, 180, 120),
	}
	records[0].CustomerName = `Smith, John`

	r, err := Build(records, TypeRevenue, RangeSpec{Range: RangeCurrentMonth}, now)
	require.NoError(t, err)
	out := ToCSV(r)

	assert.Contains(t, out, `"Smith, John"`)
	assert.Contains(t, out, `"Heating, Ventilation & AC"`)

	reader := csv.NewReader(strings.NewReader(out))
	reader.FieldsPerRecord = -1
	parsed, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Smith, John", parsed[1][2])
}

func TestToCSVBlankLineBeforeTotal(t *testing.T) {
	r, err := Build(octoberRecords(), TypeSummary, RangeSpec{Range: RangeCurrentMonth}, now)
	require.NoError(t, err)
	lines := strings.Split(ToCSV(r), "\n")

	// header, rows, blank, total, trailing newline
	require.Len(t, lines, 6)
	assert.Equal(t, "", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "TOTAL,"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "summary_report_current-month_2025-10-20.csv", FileName(TypeSummary, RangeCurrentMonth, now))
	assert.Equal(t, "work_orders_report_current-year_2025-10-20.csv", FileName(TypeWorkOrders, RangeCurrentYear, now))
}
