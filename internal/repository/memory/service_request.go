package memory

import (
	"sort"
	"sync"
	"time"

	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRequestRepository is an in-memory ServiceRequestRepositoryInterface
type ServiceRequestRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.ServiceRequest
}

// NewServiceRequestRepository creates an empty in-memory service request repository
func NewServiceRequestRepository() *ServiceRequestRepository {
	return &ServiceRequestRepository{items: make(map[uuid.UUID]models.ServiceRequest)}
}

// Create stores a new service request
func (r *ServiceRequestRepository) Create(request *models.ServiceRequest) error {
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

// GetByID retrieves a service request by ID
func (r *ServiceRequestRepository) GetByID(id uuid.UUID) (*models.ServiceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &req, nil
}

// GetByCustomerID retrieves all service requests for a customer, newest first
func (r *ServiceRequestRepository) GetByCustomerID(customerID uuid.UUID) ([]models.ServiceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.ServiceRequest{}
	for _, req := range r.items {
		if req.CustomerID == customerID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// GetAll retrieves all service requests with pagination, newest first
func (r *ServiceRequestRepository) GetAll(limit, offset int) ([]models.ServiceRequest, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.ServiceRequest, 0, len(r.items))
	for _, req := range r.items {
		all = append(all, req)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	if offset >= len(all) {
		return []models.ServiceRequest{}, total, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

// Update replaces a stored service request
func (r *ServiceRequestRepository) Update(request *models.ServiceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[request.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	request.UpdatedAt = time.Now()
	r.items[request.ID] = *request
	return nil
}

// Delete removes a service request
func (r *ServiceRequestRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
