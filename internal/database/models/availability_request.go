package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityRequest is a technician's pending schedule-change request:
// time off, sick leave, a personal day or an availability change over a
// date range. Requests start pending and are approved or rejected by an
// admin; approval turns the covered days into unavailable blocks.
type AvailabilityRequest struct {
	BaseModel
	TechnicianID   uuid.UUID               `json:"technician_id" gorm:"type:uuid;not null;index" validate:"required"`
	TechnicianName string                  `json:"technician_name" gorm:"size:100;not null"`
	RequestType    AvailabilityRequestType `json:"request_type" gorm:"size:40;not null" validate:"required,oneof=time-off sick-leave personal-day availability-change"`
	StartDate      time.Time               `json:"start_date" gorm:"not null;index"`
	EndDate        time.Time               `json:"end_date" gorm:"not null"`

	// FullDay requests carry no minute range; partial-day requests do
	FullDay     bool `json:"full_day"`
	StartMinute int  `json:"start_minute,omitempty" gorm:"default:0"`
	EndMinute   int  `json:"end_minute,omitempty" gorm:"default:0"`

	Reason      string                    `json:"reason" gorm:"size:1000"`
	Status      AvailabilityRequestStatus `json:"status" gorm:"size:20;not null;index" validate:"required,oneof=pending approved rejected"`
	RequestedAt time.Time                 `json:"requested_at"`

	// Populated once the request has been reviewed
	ReviewedBy      string     `json:"reviewed_by,omitempty" gorm:"size:100"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty" gorm:"size:500"`
}

// TableName returns the table name for AvailabilityRequest
func (AvailabilityRequest) TableName() string {
	return "availability_requests"
}
