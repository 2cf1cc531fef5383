package repository

import (
	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityRequestRepository handles database operations for availability requests
type AvailabilityRequestRepository struct {
	db *gorm.DB
}

// NewAvailabilityRequestRepository creates a new availability request repository
func NewAvailabilityRequestRepository(db *gorm.DB) *AvailabilityRequestRepository {
	return &AvailabilityRequestRepository{db: db}
}

// Create creates a new availability request
func (r *AvailabilityRequestRepository) Create(request *models.AvailabilityRequest) error {
	return r.db.Create(request).Error
}

// GetByID retrieves an availability request by ID
func (r *AvailabilityRequestRepository) GetByID(id uuid.UUID) (*models.AvailabilityRequest, error) {
	var request models.AvailabilityRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetByStatus retrieves availability requests in a review state, oldest first
func (r *AvailabilityRequestRepository) GetByStatus(status models.AvailabilityRequestStatus) ([]models.AvailabilityRequest, error) {
	var requests []models.AvailabilityRequest
	err := r.db.Where("status = ?", status).
		Order("requested_at").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// GetAll retrieves all availability requests, oldest first
func (r *AvailabilityRequestRepository) GetAll() ([]models.AvailabilityRequest, error) {
	var requests []models.AvailabilityRequest
	err := r.db.Order("requested_at").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// Update updates an availability request
func (r *AvailabilityRequestRepository) Update(request *models.AvailabilityRequest) error {
	return r.db.Save(request).Error
}

// Delete deletes an availability request
func (r *AvailabilityRequestRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AvailabilityRequest{}, "id = ?", id).Error
}
