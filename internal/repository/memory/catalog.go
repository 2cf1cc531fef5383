package memory

import (
	"sort"
	"sync"
	"time"

	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceTypeRepository is an in-memory ServiceTypeRepositoryInterface
type ServiceTypeRepository struct {
	mu       sync.RWMutex
	items    map[uuid.UUID]models.ServiceType
	services *ServiceRepository
}

// NewServiceTypeRepository creates an empty in-memory service type repository.
// The service repository is optional and only needed for GetAllWithServices.
func NewServiceTypeRepository(services *ServiceRepository) *ServiceTypeRepository {
	return &ServiceTypeRepository{
		items:    make(map[uuid.UUID]models.ServiceType),
		services: services,
	}
}

// Create stores a new service type
func (r *ServiceTypeRepository) Create(serviceType *models.ServiceType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if serviceType.ID == uuid.Nil {
		serviceType.ID = uuid.New()
	}
	if serviceType.CreatedAt.IsZero() {
		serviceType.CreatedAt = time.Now()
		serviceType.UpdatedAt = serviceType.CreatedAt
	}
	for _, existing := range r.items {
		if existing.Name == serviceType.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	r.items[serviceType.ID] = *serviceType
	return nil
}

// GetByID retrieves a service type by ID
func (r *ServiceTypeRepository) GetByID(id uuid.UUID) (*models.ServiceType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &st, nil
}

// GetByName retrieves a service type by name
func (r *ServiceTypeRepository) GetByName(name string) (*models.ServiceType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, st := range r.items {
		if st.Name == name {
			out := st
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetAll retrieves all service types ordered by name
func (r *ServiceTypeRepository) GetAll() ([]models.ServiceType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedByName(), nil
}

// GetAllWithServices retrieves all service types with their services attached,
// both levels ordered by name
func (r *ServiceTypeRepository) GetAllWithServices() ([]models.ServiceType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.sortedByName()
	if r.services == nil {
		return out, nil
	}
	for i := range out {
		services, err := r.services.GetByServiceTypeID(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Services = services
	}
	return out, nil
}

// Update replaces a stored service type
func (r *ServiceTypeRepository) Update(serviceType *models.ServiceType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[serviceType.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	serviceType.UpdatedAt = time.Now()
	r.items[serviceType.ID] = *serviceType
	return nil
}

// Delete removes a service type
func (r *ServiceTypeRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func (r *ServiceTypeRepository) sortedByName() []models.ServiceType {
	out := make([]models.ServiceType, 0, len(r.items))
	for _, st := range r.items {
		st.Services = nil
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ServiceRepository is an in-memory ServiceRepositoryInterface
type ServiceRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.Service
}

// NewServiceRepository creates an empty in-memory catalog service repository
func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{items: make(map[uuid.UUID]models.Service)}
}

// Create stores a new service
func (r *ServiceRepository) Create(service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	if service.CreatedAt.IsZero() {
		service.CreatedAt = time.Now()
		service.UpdatedAt = service.CreatedAt
	}
	r.items[service.ID] = *service
	return nil
}

// GetByID retrieves a service by ID
func (r *ServiceRepository) GetByID(id uuid.UUID) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

// GetByJobName retrieves a service by job name
func (r *ServiceRepository) GetByJobName(jobName string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.items {
		if s.JobName == jobName {
			out := s
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetAll retrieves all services ordered by job name with pagination
func (r *ServiceRepository) GetAll(limit, offset int) ([]models.Service, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sorted(func(models.Service) bool { return true })
	total := int64(len(all))
	if offset >= len(all) {
		return []models.Service{}, total, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

// GetByServiceTypeID retrieves services under a service type ordered by job name
func (r *ServiceRepository) GetByServiceTypeID(serviceTypeID uuid.UUID) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(s models.Service) bool { return s.ServiceTypeID == serviceTypeID }), nil
}

// Update replaces a stored service
func (r *ServiceRepository) Update(service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[service.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	service.UpdatedAt = time.Now()
	r.items[service.ID] = *service
	return nil
}

// Delete removes a service
func (r *ServiceRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func (r *ServiceRepository) sorted(keep func(models.Service) bool) []models.Service {
	out := make([]models.Service, 0, len(r.items))
	for _, s := range r.items {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JobName < out[j].JobName })
	return out
}
