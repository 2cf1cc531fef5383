package memory

import (
	"sort"
	"sync"
	"time"

	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityRequestRepository is an in-memory AvailabilityRequestRepositoryInterface
type AvailabilityRequestRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.AvailabilityRequest
}

// NewAvailabilityRequestRepository creates an empty in-memory availability request repository
func NewAvailabilityRequestRepository() *AvailabilityRequestRepository {
	return &AvailabilityRequestRepository{items: make(map[uuid.UUID]models.AvailabilityRequest)}
}

// Create stores a new availability request
func (r *AvailabilityRequestRepository) Create(request *models.AvailabilityRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
		request.UpdatedAt = request.CreatedAt
	}
	r.items[request.ID] = *request
	return nil
}

// GetByID retrieves an availability request by ID
func (r *AvailabilityRequestRepository) GetByID(id uuid.UUID) (*models.AvailabilityRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &req, nil
}

// GetByStatus retrieves availability requests in a review state, oldest first
func (r *AvailabilityRequestRepository) GetByStatus(status models.AvailabilityRequestStatus) ([]models.AvailabilityRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedByRequestedAt(func(req models.AvailabilityRequest) bool {
		return req.Status == status
	}), nil
}

// GetAll retrieves all availability requests, oldest first
func (r *AvailabilityRequestRepository) GetAll() ([]models.AvailabilityRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedByRequestedAt(func(models.AvailabilityRequest) bool { return true }), nil
}

// Update replaces a stored availability request
func (r *AvailabilityRequestRepository) Update(request *models.AvailabilityRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[request.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	request.UpdatedAt = time.Now()
	r.items[request.ID] = *request
	return nil
}

// Delete removes an availability request
func (r *AvailabilityRequestRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func (r *AvailabilityRequestRepository) sortedByRequestedAt(keep func(models.AvailabilityRequest) bool) []models.AvailabilityRequest {
	out := make([]models.AvailabilityRequest, 0, len(r.items))
	for _, req := range r.items {
		if keep(req) {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].RequestedAt.Equal(out[j].RequestedAt) {
			return out[i].RequestedAt.Before(out[j].RequestedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}
