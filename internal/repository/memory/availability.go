package memory

import (
	"sort"
	"sync"
	"time"

	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityRepository is an in-memory AvailabilityRepositoryInterface
type AvailabilityRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.AvailabilityBlock
}

// NewAvailabilityRepository creates an empty in-memory availability repository
func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{items: make(map[uuid.UUID]models.AvailabilityBlock)}
}

// Create stores a new availability block
func (r *AvailabilityRepository) Create(block *models.AvailabilityBlock) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if block.ID == uuid.Nil {
		block.ID = uuid.New()
	}
	if block.CreatedAt.IsZero() {
		block.CreatedAt = time.Now()
		block.UpdatedAt = block.CreatedAt
	}
	r.items[block.ID] = *block
	return nil
}

// GetByID retrieves an availability block by ID
func (r *AvailabilityRepository) GetByID(id uuid.UUID) (*models.AvailabilityBlock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

// GetByDateRange retrieves blocks with a date in [start, end)
func (r *AvailabilityRepository) GetByDateRange(start, end time.Time) ([]models.AvailabilityBlock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(b models.AvailabilityBlock) bool {
		return !b.Date.Before(start) && b.Date.Before(end)
	}), nil
}

// GetByTechnicianAndDateRange retrieves one technician's blocks in [start, end)
func (r *AvailabilityRepository) GetByTechnicianAndDateRange(technicianID uuid.UUID, start, end time.Time) ([]models.AvailabilityBlock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(b models.AvailabilityBlock) bool {
		return b.TechnicianID == technicianID && !b.Date.Before(start) && b.Date.Before(end)
	}), nil
}

// GetOverlapping retrieves a technician's blocks on a day intersecting the minute range
func (r *AvailabilityRepository) GetOverlapping(technicianID uuid.UUID, date time.Time, startMinute, endMinute int) ([]models.AvailabilityBlock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(b models.AvailabilityBlock) bool {
		return b.TechnicianID == technicianID &&
			sameDay(b.Date, date) &&
			b.StartMinute < endMinute && startMinute < b.EndMinute
	}), nil
}

// DeleteByTechnicianAndDate removes all of a technician's blocks on a calendar day
func (r *AvailabilityRepository) DeleteByTechnicianAndDate(technicianID uuid.UUID, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, b := range r.items {
		if b.TechnicianID == technicianID && sameDay(b.Date, date) {
			delete(r.items, id)
		}
	}
	return nil
}

// Update replaces a stored availability block
func (r *AvailabilityRepository) Update(block *models.AvailabilityBlock) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[block.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	block.UpdatedAt = time.Now()
	r.items[block.ID] = *block
	return nil
}

// Delete removes an availability block
func (r *AvailabilityRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func (r *AvailabilityRepository) sorted(keep func(models.AvailabilityBlock) bool) []models.AvailabilityBlock {
	out := make([]models.AvailabilityBlock, 0, len(r.items))
	for _, b := range r.items {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].StartMinute < out[j].StartMinute
	})
	return out
}
