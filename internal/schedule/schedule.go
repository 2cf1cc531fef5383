package schedule

import (
	"math"
	"sort"

	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
)

// StatusAll selects every block status when filtering.
const StatusAll = models.BlockStatus("")

// Filter returns the blocks whose calendar day falls inside the window,
// matching both filters when given (logical AND). technicianID == uuid.Nil
// selects all technicians. The default view (status == StatusAll) excludes
// unavailable blocks; they only appear when explicitly selected.
// Ordering is stable: ascending date, then the order blocks were supplied.
func Filter(blocks []models.AvailabilityBlock, window PeriodWindow, technicianID uuid.UUID, status models.BlockStatus) []models.AvailabilityBlock {
	out := make([]models.AvailabilityBlock, 0, len(blocks))
	for _, b := range blocks {
		if !window.Contains(b.Date) {
			continue
		}
		if status == StatusAll && b.Status == models.BlockStatusUnavailable {
			continue
		}
		if status != StatusAll && b.Status != status {
			continue
		}
		if technicianID != uuid.Nil && b.TechnicianID != technicianID {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// DurationMinutes returns the block length in minutes.
func DurationMinutes(b models.AvailabilityBlock) int {
	return b.EndMinute - b.StartMinute
}

// DurationHours returns the block length rounded to the nearest whole hour.
// Summary displays intentionally trade precision for readability here.
func DurationHours(b models.AvailabilityBlock) int {
	return int(math.Round(float64(DurationMinutes(b)) / 60))
}

// Overlaps reports whether two blocks belong to the same technician on the
// same calendar day and their time ranges intersect.
func Overlaps(a, b models.AvailabilityBlock) bool {
	if a.TechnicianID != b.TechnicianID {
		return false
	}
	ay, am, ad := a.Date.Date()
	by, bm, bd := b.Date.Date()
	if ay != by || am != bm || ad != bd {
		return false
	}
	return a.StartMinute < b.EndMinute && b.StartMinute < a.EndMinute
}

// Overlap is a pair of conflicting blocks for one technician.
type Overlap struct {
	A models.AvailabilityBlock
	B models.AvailabilityBlock
}

// FindOverlaps returns every conflicting pair among the given blocks.
// Source data may legitimately contain overlaps; callers decide whether
// to surface or reject them.
func FindOverlaps(blocks []models.AvailabilityBlock) []Overlap {
	var out []Overlap
	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			if Overlaps(blocks[i], blocks[j]) {
				out = append(out, Overlap{A: blocks[i], B: blocks[j]})
			}
		}
	}
	return out
}
