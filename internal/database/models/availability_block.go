package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityBlock is a technician's declared open, assigned or blocked
// time interval on a given calendar day. StartMinute/EndMinute are minutes
// from midnight; StartMinute < EndMinute is enforced at the service layer.
// Overlapping blocks for the same technician may exist in the source data;
// the scheduler exposes a query to detect them but does not reject them.
type AvailabilityBlock struct {
	BaseModel
	TechnicianID   uuid.UUID   `json:"technician_id" gorm:"type:uuid;not null;index" validate:"required"`
	TechnicianName string      `json:"technician_name" gorm:"size:100;not null"`
	Date           time.Time   `json:"date" gorm:"not null;index"`
	StartMinute    int         `json:"start_minute" gorm:"not null" validate:"gte=0,lt=1440"`
	EndMinute      int         `json:"end_minute" gorm:"not null" validate:"gt=0,lte=1440"`
	Status         BlockStatus `json:"status" gorm:"size:20;not null" validate:"required,oneof=available assigned unavailable"`

	// Populated when status is "assigned"
	WorkOrderCode string `json:"work_order_id,omitempty" gorm:"size:20"`
	Customer      string `json:"customer,omitempty" gorm:"size:100"`
	Service       string `json:"service,omitempty" gorm:"size:100"`

	// Populated when status is "unavailable"
	UnavailableType string `json:"unavailable_type,omitempty" gorm:"size:40"`
	Reason          string `json:"reason,omitempty" gorm:"size:500"`

	Notes       string    `json:"notes,omitempty" gorm:"size:500"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// TableName returns the table name for AvailabilityBlock
func (AvailabilityBlock) TableName() string {
	return "availability_blocks"
}
