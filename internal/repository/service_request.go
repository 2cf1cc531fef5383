package repository

import (
	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRequestRepository handles database operations for service requests
type ServiceRequestRepository struct {
	db *gorm.DB
}

// NewServiceRequestRepository creates a new service request repository
func NewServiceRequestRepository(db *gorm.DB) *ServiceRequestRepository {
	return &ServiceRequestRepository{db: db}
}

// Create creates a new service request
func (r *ServiceRequestRepository) Create(request *models.ServiceRequest) error {
	return r.db.Create(request).Error
}

// GetByID retrieves a service request by ID
func (r *ServiceRequestRepository) GetByID(id uuid.UUID) (*models.ServiceRequest, error) {
	var request models.ServiceRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetByCustomerID retrieves all service requests for a customer, newest first
func (r *ServiceRequestRepository) GetByCustomerID(customerID uuid.UUID) ([]models.ServiceRequest, error) {
	var requests []models.ServiceRequest
	err := r.db.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// GetAll retrieves all service requests with pagination, newest first
func (r *ServiceRequestRepository) GetAll(limit, offset int) ([]models.ServiceRequest, int64, error) {
	var requests []models.ServiceRequest
	var total int64

	if err := r.db.Model(&models.ServiceRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Model(&models.ServiceRequest{}).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// Update updates a service request
func (r *ServiceRequestRepository) Update(request *models.ServiceRequest) error {
	return r.db.Save(request).Error
}

// Delete deletes a service request
func (r *ServiceRequestRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ServiceRequest{}, "id = ?", id).Error
}
