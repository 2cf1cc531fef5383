package models

// TechnicianStatus represents the employment status of a technician
type TechnicianStatus string

const (
	TechnicianStatusActive  TechnicianStatus = "active"
	TechnicianStatusOnLeave TechnicianStatus = "on-leave"
)

// BlockStatus represents the state of an availability block
type BlockStatus string

const (
	BlockStatusAvailable   BlockStatus = "available"
	BlockStatusAssigned    BlockStatus = "assigned"
	BlockStatusUnavailable BlockStatus = "unavailable"
)

// AvailabilityRequestType represents the kind of schedule change a
// technician is asking for
type AvailabilityRequestType string

const (
	RequestTypeTimeOff            AvailabilityRequestType = "time-off"
	RequestTypeSickLeave          AvailabilityRequestType = "sick-leave"
	RequestTypePersonalDay        AvailabilityRequestType = "personal-day"
	RequestTypeAvailabilityChange AvailabilityRequestType = "availability-change"
)

// AvailabilityRequestStatus represents the review state of an availability request
type AvailabilityRequestStatus string

const (
	RequestStatusPending  AvailabilityRequestStatus = "pending"
	RequestStatusApproved AvailabilityRequestStatus = "approved"
	RequestStatusRejected AvailabilityRequestStatus = "rejected"
)

// WorkOrderStatus represents the lifecycle state of a work order
type WorkOrderStatus string

const (
	WorkOrderStatusPending    WorkOrderStatus = "pending"
	WorkOrderStatusInProgress WorkOrderStatus = "in-progress"
	WorkOrderStatusCompleted  WorkOrderStatus = "completed"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
)

// WarrantyStatus represents the state of a warranty
type WarrantyStatus string

const (
	WarrantyStatusActive  WarrantyStatus = "active"
	WarrantyStatusPending WarrantyStatus = "pending"
	WarrantyStatusExpired WarrantyStatus = "expired"
)

// RequestUrgency represents how urgent a warranty service request is
type RequestUrgency string

const (
	RequestUrgencyLow    RequestUrgency = "low"
	RequestUrgencyMedium RequestUrgency = "medium"
	RequestUrgencyHigh   RequestUrgency = "high"
)
