package memory

import (
	"sort"
	"sync"
	"time"

	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WarrantyRepository is an in-memory WarrantyRepositoryInterface
type WarrantyRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.Warranty
}

// NewWarrantyRepository creates an empty in-memory warranty repository
func NewWarrantyRepository() *WarrantyRepository {
	return &WarrantyRepository{items: make(map[uuid.UUID]models.Warranty)}
}

// Create stores a new warranty
func (r *WarrantyRepository) Create(warranty *models.Warranty) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if warranty.ID == uuid.Nil {
		warranty.ID = uuid.New()
	}
	if warranty.CreatedAt.IsZero() {
		warranty.CreatedAt = time.Now()
		warranty.UpdatedAt = warranty.CreatedAt
	}
	r.items[warranty.ID] = *warranty
	return nil
}

// GetByID retrieves a warranty by ID
func (r *WarrantyRepository) GetByID(id uuid.UUID) (*models.Warranty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &w, nil
}

// GetByWorkOrderCode retrieves the warranty attached to a work order
func (r *WarrantyRepository) GetByWorkOrderCode(code string) (*models.Warranty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, w := range r.items {
		if w.WorkOrderCode == code {
			out := w
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetByContact retrieves warranties matching a customer email or phone
func (r *WarrantyRepository) GetByContact(email, phone string) ([]models.Warranty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if email == "" && phone == "" {
		return []models.Warranty{}, nil
	}

	out := []models.Warranty{}
	for _, w := range r.items {
		if (email != "" && w.CustomerEmail == email) || (phone != "" && w.CustomerPhone == phone) {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndDate.After(out[j].EndDate) })
	return out, nil
}

// GetAll retrieves all warranties with pagination
func (r *WarrantyRepository) GetAll(limit, offset int) ([]models.Warranty, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Warranty, 0, len(r.items))
	for _, w := range r.items {
		all = append(all, w)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].EndDate.After(all[j].EndDate) })

	total := int64(len(all))
	if offset >= len(all) {
		return []models.Warranty{}, total, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

// Update replaces a stored warranty
func (r *WarrantyRepository) Update(warranty *models.Warranty) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[warranty.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	warranty.UpdatedAt = time.Now()
	r.items[warranty.ID] = *warranty
	return nil
}

// Delete removes a warranty
func (r *WarrantyRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
