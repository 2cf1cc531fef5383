// Package memory provides in-memory repository implementations used as test
// doubles for the service and handler layers. They satisfy the same interfaces
// as the gorm-backed repositories and return gorm.ErrRecordNotFound for
// missing rows so error mapping behaves identically.
package memory

import (
	"sort"
	"sync"
	"time"

	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TechnicianRepository is an in-memory TechnicianRepositoryInterface
type TechnicianRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.Technician
}

// NewTechnicianRepository creates an empty in-memory technician repository
func NewTechnicianRepository() *TechnicianRepository {
	return &TechnicianRepository{items: make(map[uuid.UUID]models.Technician)}
}

// Create stores a new technician
func (r *TechnicianRepository) Create(technician *models.Technician) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if technician.ID == uuid.Nil {
		technician.ID = uuid.New()
	}
	if technician.CreatedAt.IsZero() {
		technician.CreatedAt = time.Now()
		technician.UpdatedAt = technician.CreatedAt
	}
	for _, existing := range r.items {
		if existing.Email == technician.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.items[technician.ID] = *technician
	return nil
}

// GetByID retrieves a technician by ID
func (r *TechnicianRepository) GetByID(id uuid.UUID) (*models.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

// GetByEmail retrieves a technician by email
func (r *TechnicianRepository) GetByEmail(email string) (*models.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.items {
		if t.Email == email {
			out := t
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetAll retrieves all technicians ordered by last name with pagination
func (r *TechnicianRepository) GetAll(limit, offset int) ([]models.Technician, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sorted(func(models.Technician) bool { return true })
	return paginateTechnicians(all, limit, offset), int64(len(all)), nil
}

// GetByStatus retrieves technicians with a given status with pagination
func (r *TechnicianRepository) GetByStatus(status models.TechnicianStatus, limit, offset int) ([]models.Technician, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matching := r.sorted(func(t models.Technician) bool { return t.Status == status })
	return paginateTechnicians(matching, limit, offset), int64(len(matching)), nil
}

// Update replaces a stored technician
func (r *TechnicianRepository) Update(technician *models.Technician) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[technician.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	technician.UpdatedAt = time.Now()
	r.items[technician.ID] = *technician
	return nil
}

// Delete removes a technician
func (r *TechnicianRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func (r *TechnicianRepository) sorted(keep func(models.Technician) bool) []models.Technician {
	out := make([]models.Technician, 0, len(r.items))
	for _, t := range r.items {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out
}

func paginateTechnicians(items []models.Technician, limit, offset int) []models.Technician {
	if offset >= len(items) {
		return []models.Technician{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
