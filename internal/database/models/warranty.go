package models

import (
	"time"
)

// Warranty covers completed work for a customer over a date range
type Warranty struct {
	BaseModel
	CustomerName  string         `json:"customer_name" gorm:"size:100;not null" validate:"required"`
	CustomerEmail string         `json:"customer_email" gorm:"size:100;index" validate:"omitempty,email"`
	CustomerPhone string         `json:"customer_phone" gorm:"size:20;index"`
	Service       string         `json:"service" gorm:"size:100;not null" validate:"required"`
	WorkOrderCode string         `json:"work_order_id" gorm:"size:20;not null;index" validate:"required"`
	StartDate     time.Time      `json:"start_date"`
	EndDate       time.Time      `json:"end_date"`
	Status        WarrantyStatus `json:"status" gorm:"size:20;not null;default:active" validate:"omitempty,oneof=active pending expired"`
	Notes         string         `json:"notes" gorm:"size:500"`
}

// TableName returns the table name for Warranty
func (Warranty) TableName() string {
	return "warranties"
}

// IsActive reports whether the warranty covers the given instant
func (w *Warranty) IsActive(now time.Time) bool {
	return w.Status == WarrantyStatusActive && !now.Before(w.StartDate) && !now.After(w.EndDate)
}
