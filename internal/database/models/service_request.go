package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceRequest is an inbound request for service work, created either by
// the public appointment form or by a warranty service claim.
type ServiceRequest struct {
	BaseModel
	CustomerID  uuid.UUID  `json:"customer_id" gorm:"type:uuid;not null;index" validate:"required"`
	AddressID   *uuid.UUID `json:"address_id,omitempty" gorm:"type:uuid"`
	ServiceID   *uuid.UUID `json:"service_id,omitempty" gorm:"type:uuid;index"`
	Description string     `json:"description" gorm:"size:1000"`
	PreferredAt time.Time  `json:"preferred_datetime"`

	// Set for warranty service claims
	WarrantyID    *uuid.UUID     `json:"warranty_id,omitempty" gorm:"type:uuid;index"`
	WorkOrderCode string         `json:"work_order_id,omitempty" gorm:"size:20"`
	IssueType     string         `json:"issue_type,omitempty" gorm:"size:40"`
	Urgency       RequestUrgency `json:"urgency,omitempty" gorm:"size:20" validate:"omitempty,oneof=low medium high"`

	// Auto-assigned technician, if one was available
	TechnicianID *uuid.UUID `json:"technician_id,omitempty" gorm:"type:uuid;index"`
}

// TableName returns the table name for ServiceRequest
func (ServiceRequest) TableName() string {
	return "service_requests"
}
