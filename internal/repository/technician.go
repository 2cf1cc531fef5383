package repository

import (
	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TechnicianRepository handles database operations for technicians
type TechnicianRepository struct {
	db *gorm.DB
}

// NewTechnicianRepository creates a new technician repository
func NewTechnicianRepository(db *gorm.DB) *TechnicianRepository {
	return &TechnicianRepository{db: db}
}

// Create creates a new technician
func (r *TechnicianRepository) Create(technician *models.Technician) error {
	return r.db.Create(technician).Error
}

// GetByID retrieves a technician by ID
func (r *TechnicianRepository) GetByID(id uuid.UUID) (*models.Technician, error) {
	var technician models.Technician
	err := r.db.First(&technician, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &technician, nil
}

// GetByEmail retrieves a technician by email
func (r *TechnicianRepository) GetByEmail(email string) (*models.Technician, error) {
	var technician models.Technician
	err := r.db.First(&technician, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &technician, nil
}

// GetAll retrieves all technicians with pagination, ordered by last name
func (r *TechnicianRepository) GetAll(limit, offset int) ([]models.Technician, int64, error) {
	var technicians []models.Technician
	var total int64

	if err := r.db.Model(&models.Technician{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Model(&models.Technician{}).
		Order("last_name, first_name").
		Limit(limit).Offset(offset).
		Find(&technicians).Error
	if err != nil {
		return nil, 0, err
	}

	return technicians, total, nil
}

// GetByStatus retrieves technicians with a given status with pagination
func (r *TechnicianRepository) GetByStatus(status models.TechnicianStatus, limit, offset int) ([]models.Technician, int64, error) {
	var technicians []models.Technician
	var total int64

	query := r.db.Model(&models.Technician{}).Where("status = ?", status)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("last_name, first_name").
		Limit(limit).Offset(offset).
		Find(&technicians).Error
	if err != nil {
		return nil, 0, err
	}

	return technicians, total, nil
}

// Update updates a technician
func (r *TechnicianRepository) Update(technician *models.Technician) error {
	return r.db.Save(technician).Error
}

// Delete deletes a technician
func (r *TechnicianRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Technician{}, "id = ?", id).Error
}
