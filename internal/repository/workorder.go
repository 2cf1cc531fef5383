package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkOrderRepository handles database operations for work orders
type WorkOrderRepository struct {
	db *gorm.DB
}

// NewWorkOrderRepository creates a new work order repository
func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

// Create creates a new work order
func (r *WorkOrderRepository) Create(order *models.WorkOrder) error {
	return r.db.Create(order).Error
}

// GetByID retrieves a work order by ID
func (r *WorkOrderRepository) GetByID(id uuid.UUID) (*models.WorkOrder, error) {
	var order models.WorkOrder
	err := r.db.First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByCode retrieves a work order by its display code (e.g. WO-2025-001)
func (r *WorkOrderRepository) GetByCode(code string) (*models.WorkOrder, error) {
	var order models.WorkOrder
	err := r.db.First(&order, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetAll retrieves all work orders with pagination, newest first
func (r *WorkOrderRepository) GetAll(limit, offset int) ([]models.WorkOrder, int64, error) {
	var orders []models.WorkOrder
	var total int64

	if err := r.db.Model(&models.WorkOrder{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Model(&models.WorkOrder{}).
		Order("date DESC, code DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// GetByDateRange retrieves work orders with a date inside [start, end], both inclusive
func (r *WorkOrderRepository) GetByDateRange(start, end time.Time) ([]models.WorkOrder, error) {
	var orders []models.WorkOrder
	err := r.db.Where("date >= ? AND date <= ?", start, end).
		Order("date, code").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByTechnicianID retrieves work orders assigned to a technician with pagination
func (r *WorkOrderRepository) GetByTechnicianID(technicianID uuid.UUID, limit, offset int) ([]models.WorkOrder, int64, error) {
	var orders []models.WorkOrder
	var total int64

	query := r.db.Model(&models.WorkOrder{}).Where("technician_id = ?", technicianID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("date DESC").Limit(limit).Offset(offset).Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// CountByTechnicianAndDate counts a technician's work orders on a calendar day
func (r *WorkOrderRepository) CountByTechnicianAndDate(technicianID uuid.UUID, date time.Time) (int64, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	next := day.AddDate(0, 0, 1)

	var total int64
	err := r.db.Model(&models.WorkOrder{}).
		Where("technician_id = ? AND date >= ? AND date < ?", technicianID, day, next).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// NextCode returns the next unused work order code for a year, e.g. WO-2025-004
func (r *WorkOrderRepository) NextCode(year int) (string, error) {
	prefix := fmt.Sprintf("WO-%d-", year)

	var last string
	err := r.db.Model(&models.WorkOrder{}).
		Where("code LIKE ?", prefix+"%").
		Order("code DESC").
		Limit(1).
		Pluck("code", &last).Error
	if err != nil {
		return "", err
	}

	seq := 1
	if last != "" {
		n, err := strconv.Atoi(strings.TrimPrefix(last, prefix))
		if err != nil {
			return "", fmt.Errorf("malformed work order code %q: %w", last, err)
		}
		seq = n + 1
	}

	return fmt.Sprintf("%s%03d", prefix, seq), nil
}

// Update updates a work order
func (r *WorkOrderRepository) Update(order *models.WorkOrder) error {
	return r.db.Save(order).Error
}

// Delete deletes a work order
func (r *WorkOrderRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.WorkOrder{}, "id = ?", id).Error
}
