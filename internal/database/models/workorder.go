package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkOrder is a unit of scheduled or completed service work tied to a
// customer and technician. The financial reporting path treats these rows
// as an immutable snapshot within a reporting pass.
type WorkOrder struct {
	BaseModel
	Code         string          `json:"work_order_id" gorm:"size:20;not null;uniqueIndex" validate:"required"` // e.g. WO-2025-001
	Date         time.Time       `json:"date" gorm:"not null;index"`
	CustomerName string          `json:"customer" gorm:"size:100;not null" validate:"required"`
	Service      string          `json:"service" gorm:"size:100;not null;index" validate:"required"` // service category key
	Revenue      float64         `json:"revenue" validate:"gte=0"`
	LaborCost    float64         `json:"labor_cost" validate:"gte=0"`
	MaterialCost float64         `json:"material_cost" validate:"gte=0"`
	Status       WorkOrderStatus `json:"status" gorm:"size:20;not null;default:pending" validate:"omitempty,oneof=pending in-progress completed cancelled"`
	DurationHrs  float64         `json:"duration_hours" validate:"gte=0"`

	TechnicianID *uuid.UUID `json:"technician_id,omitempty" gorm:"type:uuid;index"`
	RequestID    *uuid.UUID `json:"request_id,omitempty" gorm:"type:uuid;index"`
	Notes        string     `json:"notes" gorm:"size:1000"`
}

// TableName returns the table name for WorkOrder
func (WorkOrder) TableName() string {
	return "work_orders"
}

// TotalCost is labor plus material cost
func (w *WorkOrder) TotalCost() float64 {
	return w.LaborCost + w.MaterialCost
}

// Profit is revenue minus total cost
func (w *WorkOrder) Profit() float64 {
	return w.Revenue - w.TotalCost()
}
