package memory

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkOrderRepository is an in-memory WorkOrderRepositoryInterface
type WorkOrderRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.WorkOrder
}

// NewWorkOrderRepository creates an empty in-memory work order repository
func NewWorkOrderRepository() *WorkOrderRepository {
	return &WorkOrderRepository{items: make(map[uuid.UUID]models.WorkOrder)}
}

// Create stores a new work order
func (r *WorkOrderRepository) Create(order *models.WorkOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
		order.UpdatedAt = order.CreatedAt
	}
	for _, existing := range r.items {
		if existing.Code == order.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	r.items[order.ID] = *order
	return nil
}

// GetByID retrieves a work order by ID
func (r *WorkOrderRepository) GetByID(id uuid.UUID) (*models.WorkOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &o, nil
}

// GetByCode retrieves a work order by its display code
func (r *WorkOrderRepository) GetByCode(code string) (*models.WorkOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.items {
		if o.Code == code {
			out := o
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetAll retrieves all work orders with pagination, newest first
func (r *WorkOrderRepository) GetAll(limit, offset int) ([]models.WorkOrder, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sorted(func(models.WorkOrder) bool { return true })
	sort.Slice(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.After(all[j].Date)
		}
		return all[i].Code > all[j].Code
	})

	total := int64(len(all))
	if offset >= len(all) {
		return []models.WorkOrder{}, total, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

// GetByDateRange retrieves work orders with a date inside [start, end], both inclusive
func (r *WorkOrderRepository) GetByDateRange(start, end time.Time) ([]models.WorkOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(o models.WorkOrder) bool {
		return !o.Date.Before(start) && !o.Date.After(end)
	}), nil
}

// GetByTechnicianID retrieves work orders assigned to a technician with pagination
func (r *WorkOrderRepository) GetByTechnicianID(technicianID uuid.UUID, limit, offset int) ([]models.WorkOrder, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matching := r.sorted(func(o models.WorkOrder) bool {
		return o.TechnicianID != nil && *o.TechnicianID == technicianID
	})

	total := int64(len(matching))
	if offset >= len(matching) {
		return []models.WorkOrder{}, total, nil
	}
	matching = matching[offset:]
	if limit > 0 && limit < len(matching) {
		matching = matching[:limit]
	}
	return matching, total, nil
}

// CountByTechnicianAndDate counts a technician's work orders on a calendar day
func (r *WorkOrderRepository) CountByTechnicianAndDate(technicianID uuid.UUID, date time.Time) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, o := range r.items {
		if o.TechnicianID == nil || *o.TechnicianID != technicianID {
			continue
		}
		if sameDay(o.Date, date) {
			count++
		}
	}
	return count, nil
}

// NextCode returns the next unused work order code for a year
func (r *WorkOrderRepository) NextCode(year int) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix := fmt.Sprintf("WO-%d-", year)
	max := 0
	for _, o := range r.items {
		if !strings.HasPrefix(o.Code, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(o.Code, prefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1), nil
}

// Update replaces a stored work order
func (r *WorkOrderRepository) Update(order *models.WorkOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[order.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	order.UpdatedAt = time.Now()
	r.items[order.ID] = *order
	return nil
}

// Delete removes a work order
func (r *WorkOrderRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func (r *WorkOrderRepository) sorted(keep func(models.WorkOrder) bool) []models.WorkOrder {
	out := make([]models.WorkOrder, 0, len(r.items))
	for _, o := range r.items {
		if keep(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Code < out[j].Code
	})
	return out
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
