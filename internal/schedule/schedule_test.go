package schedule

import (
	"testing"
	"time"

	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var (
	techA = uuid.New()
	techB = uuid.New()
)

func block(tech uuid.UUID, day time.Time, start, end int, status models.BlockStatus) models.AvailabilityBlock {
	return models.AvailabilityBlock{
		TechnicianID: tech,
		Date:         day,
		StartMinute:  start,
		EndMinute:    end,
		Status:       status,
	}
}

func sampleBlocks(w PeriodWindow) []models.AvailabilityBlock {
	day0 := w.Start
	day3 := w.Start.AddDate(0, 0, 3)
	outside := w.Start.AddDate(0, 0, 20)
	return []models.AvailabilityBlock{
		block(techA, day3, 9*60, 17*60, models.BlockStatusAssigned),
		block(techA, day0, 9*60, 17*60, models.BlockStatusAvailable),
		block(techB, day0, 8*60, 16*60, models.BlockStatusUnavailable),
		block(techB, day3, 8*60, 16*60, models.BlockStatusAvailable),
		block(techA, outside, 9*60, 17*60, models.BlockStatusAvailable),
	}
}

func TestFilterWindowBounds(t *testing.T) {
	w := NewPeriodWindow(time.Date(2025, time.October, 20, 0, 0, 0, 0, time.Local))
	got := Filter(sampleBlocks(w), w, uuid.Nil, StatusAll)

	for _, b := range got {
		assert.True(t, w.Contains(b.Date), "block on %s escaped the window", b.Date.Format("2006-01-02"))
	}
	// out-of-window block and unavailable block are both dropped
	assert.Len(t, got, 3)
}

func TestFilterExcludesUnavailableByDefault(t *testing.T) {
	w := NewPeriodWindow(time.Date(2025, time.October, 20, 0, 0, 0, 0, time.Local))
	blocks := sampleBlocks(w)

	defaultView := Filter(blocks, w, uuid.Nil, StatusAll)
	for _, b := range defaultView {
		assert.NotEqual(t, models.BlockStatusUnavailable, b.Status)
	}

	// explicit selection reveals them
	unavailable := Filter(blocks, w, uuid.Nil, models.BlockStatusUnavailable)
	assert.Len(t, unavailable, 1)
	assert.Equal(t, techB, unavailable[0].TechnicianID)
}

func TestFilterByTechnicianAndStatus(t *testing.T) {
	w := NewPeriodWindow(time.Date(2025, time.October, 20, 0, 0, 0, 0, time.Local))
	blocks := sampleBlocks(w)

	onlyA := Filter(blocks, w, techA, StatusAll)
	assert.Len(t, onlyA, 2)
	for _, b := range onlyA {
		assert.Equal(t, techA, b.TechnicianID)
	}

	// both filters are ANDed
	assignedA := Filter(blocks, w, techA, models.BlockStatusAssigned)
	assert.Len(t, assignedA, 1)
	assert.Equal(t, models.BlockStatusAssigned, assignedA[0].Status)
}

func TestFilterStableOrdering(t *testing.T) {
	w := NewPeriodWindow(time.Date(2025, time.October, 20, 0, 0, 0, 0, time.Local))
	day := w.Start.AddDate(0, 0, 1)
	blocks := []models.AvailabilityBlock{
		block(techB, day, 10*60, 12*60, models.BlockStatusAvailable),
		block(techA, w.Start, 9*60, 17*60, models.BlockStatusAvailable),
		block(techA, day, 13*60, 15*60, models.BlockStatusAvailable),
	}

	got := Filter(blocks, w, uuid.Nil, StatusAll)

	// ascending date, then input order within a day (no sort by technician)
	assert.Equal(t, w.Start, got[0].Date)
	assert.Equal(t, techB, got[1].TechnicianID)
	assert.Equal(t, techA, got[2].TechnicianID)
}

func TestDurations(t *testing.T) {
	b := block(techA, time.Now(), 9*60, 17*60+30, models.BlockStatusAvailable)
	assert.Equal(t, 510, DurationMinutes(b))
	// rounds to the nearest whole hour for summaries
	assert.Equal(t, 9, DurationHours(b))

	short := block(techA, time.Now(), 9*60, 9*60+20, models.BlockStatusAvailable)
	assert.Equal(t, 0, DurationHours(short))
}

func TestOverlaps(t *testing.T) {
	day := time.Date(2025, time.October, 21, 0, 0, 0, 0, time.Local)

	a := block(techA, day, 9*60, 12*60, models.BlockStatusAvailable)
	b := block(techA, day, 11*60, 14*60, models.BlockStatusAssigned)
	c := block(techA, day, 12*60, 14*60, models.BlockStatusAvailable)
	otherTech := block(techB, day, 9*60, 12*60, models.BlockStatusAvailable)
	otherDay := block(techA, day.AddDate(0, 0, 1), 9*60, 12*60, models.BlockStatusAvailable)

	assert.True(t, Overlaps(a, b))
	assert.False(t, Overlaps(a, c), "touching ranges do not overlap")
	assert.False(t, Overlaps(a, otherTech))
	assert.False(t, Overlaps(a, otherDay))
}

func TestFindOverlaps(t *testing.T) {
	day := time.Date(2025, time.October, 21, 0, 0, 0, 0, time.Local)
	blocks := []models.AvailabilityBlock{
		block(techA, day, 9*60, 12*60, models.BlockStatusAvailable),
		block(techA, day, 11*60, 14*60, models.BlockStatusAssigned),
		block(techA, day, 14*60, 16*60, models.BlockStatusAvailable),
		block(techB, day, 9*60, 17*60, models.BlockStatusAvailable),
	}

	overlaps := FindOverlaps(blocks)
	assert.Len(t, overlaps, 1)
	assert.Equal(t, 9*60, overlaps[0].A.StartMinute)
	assert.Equal(t, 11*60, overlaps[0].B.StartMinute)

	assert.Empty(t, FindOverlaps(blocks[2:]))
}
