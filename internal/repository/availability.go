package repository

import (
	"time"

	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityRepository handles database operations for availability blocks
type AvailabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// Create creates a new availability block
func (r *AvailabilityRepository) Create(block *models.AvailabilityBlock) error {
	return r.db.Create(block).Error
}

// GetByID retrieves an availability block by ID
func (r *AvailabilityRepository) GetByID(id uuid.UUID) (*models.AvailabilityBlock, error) {
	var block models.AvailabilityBlock
	err := r.db.First(&block, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// GetByDateRange retrieves blocks with a date in [start, end); end is exclusive
// so callers can pass a period boundary directly
func (r *AvailabilityRepository) GetByDateRange(start, end time.Time) ([]models.AvailabilityBlock, error) {
	var blocks []models.AvailabilityBlock
	err := r.db.Where("date >= ? AND date < ?", start, end).
		Order("date, start_minute").
		Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

// GetByTechnicianAndDateRange retrieves one technician's blocks in [start, end)
func (r *AvailabilityRepository) GetByTechnicianAndDateRange(technicianID uuid.UUID, start, end time.Time) ([]models.AvailabilityBlock, error) {
	var blocks []models.AvailabilityBlock
	err := r.db.Where("technician_id = ? AND date >= ? AND date < ?", technicianID, start, end).
		Order("date, start_minute").
		Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

// GetOverlapping retrieves a technician's blocks on a day whose minute range
// intersects [startMinute, endMinute). Touching ranges do not intersect.
func (r *AvailabilityRepository) GetOverlapping(technicianID uuid.UUID, date time.Time, startMinute, endMinute int) ([]models.AvailabilityBlock, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	next := day.AddDate(0, 0, 1)

	var blocks []models.AvailabilityBlock
	err := r.db.Where(
		"technician_id = ? AND date >= ? AND date < ? AND start_minute < ? AND ? < end_minute",
		technicianID, day, next, endMinute, startMinute,
	).Order("start_minute").Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

// DeleteByTechnicianAndDate removes all of a technician's blocks on a calendar
// day. Availability submission is an upsert per day: delete then re-create.
func (r *AvailabilityRepository) DeleteByTechnicianAndDate(technicianID uuid.UUID, date time.Time) error {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	next := day.AddDate(0, 0, 1)

	return r.db.Where("technician_id = ? AND date >= ? AND date < ?", technicianID, day, next).
		Delete(&models.AvailabilityBlock{}).Error
}

// Update updates an availability block
func (r *AvailabilityRepository) Update(block *models.AvailabilityBlock) error {
	return r.db.Save(block).Error
}

// Delete deletes an availability block
func (r *AvailabilityRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AvailabilityBlock{}, "id = ?", id).Error
}
