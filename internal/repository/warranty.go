package repository

import (
	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WarrantyRepository handles database operations for warranties
type WarrantyRepository struct {
	db *gorm.DB
}

// NewWarrantyRepository creates a new warranty repository
func NewWarrantyRepository(db *gorm.DB) *WarrantyRepository {
	return &WarrantyRepository{db: db}
}

// Create creates a new warranty
func (r *WarrantyRepository) Create(warranty *models.Warranty) error {
	return r.db.Create(warranty).Error
}

// GetByID retrieves a warranty by ID
func (r *WarrantyRepository) GetByID(id uuid.UUID) (*models.Warranty, error) {
	var warranty models.Warranty
	err := r.db.First(&warranty, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &warranty, nil
}

// GetByWorkOrderCode retrieves the warranty attached to a work order
func (r *WarrantyRepository) GetByWorkOrderCode(code string) (*models.Warranty, error) {
	var warranty models.Warranty
	err := r.db.First(&warranty, "work_order_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &warranty, nil
}

// GetByContact retrieves warranties matching a customer email or phone.
// Either field may be empty; a warranty matches when any provided field does.
func (r *WarrantyRepository) GetByContact(email, phone string) ([]models.Warranty, error) {
	query := r.db.Model(&models.Warranty{})
	switch {
	case email != "" && phone != "":
		query = query.Where("customer_email = ? OR customer_phone = ?", email, phone)
	case email != "":
		query = query.Where("customer_email = ?", email)
	case phone != "":
		query = query.Where("customer_phone = ?", phone)
	default:
		return []models.Warranty{}, nil
	}

	var warranties []models.Warranty
	err := query.Order("end_date DESC").Find(&warranties).Error
	if err != nil {
		return nil, err
	}
	return warranties, nil
}

// GetAll retrieves all warranties with pagination
func (r *WarrantyRepository) GetAll(limit, offset int) ([]models.Warranty, int64, error) {
	var warranties []models.Warranty
	var total int64

	if err := r.db.Model(&models.Warranty{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Model(&models.Warranty{}).
		Order("end_date DESC").
		Limit(limit).Offset(offset).
		Find(&warranties).Error
	if err != nil {
		return nil, 0, err
	}

	return warranties, total, nil
}

// Update updates a warranty
func (r *WarrantyRepository) Update(warranty *models.Warranty) error {
	return r.db.Save(warranty).Error
}

// Delete deletes a warranty
func (r *WarrantyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Warranty{}, "id = ?", id).Error
}
