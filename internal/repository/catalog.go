package repository

import (
	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceTypeRepository handles database operations for service types
type ServiceTypeRepository struct {
	db *gorm.DB
}

// NewServiceTypeRepository creates a new service type repository
func NewServiceTypeRepository(db *gorm.DB) *ServiceTypeRepository {
	return &ServiceTypeRepository{db: db}
}

// Create creates a new service type
func (r *ServiceTypeRepository) Create(serviceType *models.ServiceType) error {
	return r.db.Create(serviceType).Error
}

// GetByID retrieves a service type by ID
func (r *ServiceTypeRepository) GetByID(id uuid.UUID) (*models.ServiceType, error) {
	var serviceType models.ServiceType
	err := r.db.First(&serviceType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &serviceType, nil
}

// GetByName retrieves a service type by its unique name
func (r *ServiceTypeRepository) GetByName(name string) (*models.ServiceType, error) {
	var serviceType models.ServiceType
	err := r.db.First(&serviceType, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &serviceType, nil
}

// GetAll retrieves all service types ordered by name
func (r *ServiceTypeRepository) GetAll() ([]models.ServiceType, error) {
	var serviceTypes []models.ServiceType
	err := r.db.Order("name").Find(&serviceTypes).Error
	if err != nil {
		return nil, err
	}
	return serviceTypes, nil
}

// GetAllWithServices retrieves all service types with their services preloaded,
// both levels ordered by name
func (r *ServiceTypeRepository) GetAllWithServices() ([]models.ServiceType, error) {
	var serviceTypes []models.ServiceType
	err := r.db.Preload("Services", func(db *gorm.DB) *gorm.DB {
		return db.Order("job_name")
	}).Order("name").Find(&serviceTypes).Error
	if err != nil {
		return nil, err
	}
	return serviceTypes, nil
}

// Update updates a service type
func (r *ServiceTypeRepository) Update(serviceType *models.ServiceType) error {
	return r.db.Save(serviceType).Error
}

// Delete deletes a service type
func (r *ServiceTypeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ServiceType{}, "id = ?", id).Error
}

// ServiceRepository handles database operations for catalog services
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new catalog service repository
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// Create creates a new service
func (r *ServiceRepository) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

// GetByID retrieves a service by ID
func (r *ServiceRepository) GetByID(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := r.db.First(&service, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// GetByJobName retrieves a service by job name
func (r *ServiceRepository) GetByJobName(jobName string) (*models.Service, error) {
	var service models.Service
	err := r.db.First(&service, "job_name = ?", jobName).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// GetAll retrieves all services with pagination, with their service type preloaded
func (r *ServiceRepository) GetAll(limit, offset int) ([]models.Service, int64, error) {
	var services []models.Service
	var total int64

	if err := r.db.Model(&models.Service{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Model(&models.Service{}).
		Preload("ServiceType").
		Order("job_name").
		Limit(limit).Offset(offset).
		Find(&services).Error
	if err != nil {
		return nil, 0, err
	}

	return services, total, nil
}

// GetByServiceTypeID retrieves all services under a service type
func (r *ServiceRepository) GetByServiceTypeID(serviceTypeID uuid.UUID) ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("service_type_id = ?", serviceTypeID).
		Order("job_name").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

// Update updates a service
func (r *ServiceRepository) Update(service *models.Service) error {
	return r.db.Save(service).Error
}

// Delete deletes a service
func (r *ServiceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Service{}, "id = ?", id).Error
}
