package models

import (
	"github.com/google/uuid"
)

// ServiceType is a category of offered services (HVAC, Plumbing, ...)
type ServiceType struct {
	BaseModel
	Name string `json:"service_type_name" gorm:"size:60;not null;uniqueIndex" validate:"required,max=60"`

	Services []Service `json:"services,omitempty" gorm:"foreignKey:ServiceTypeID"`
}

// TableName returns the table name for ServiceType
func (ServiceType) TableName() string {
	return "service_types"
}

// Service is a bookable job in the service catalog
type Service struct {
	BaseModel
	ServiceTypeID uuid.UUID `json:"service_type_id" gorm:"type:uuid;not null;index" validate:"required"`
	JobName       string    `json:"job_name" gorm:"size:100;not null" validate:"required,max=100"`
	JobDesc       string    `json:"job_desc" gorm:"size:500"`
	Price         float64   `json:"service_price" validate:"gte=0"`
	DurationHours float64   `json:"duration_hours" validate:"gte=0"`

	ServiceType *ServiceType `json:"service_type,omitempty" gorm:"foreignKey:ServiceTypeID"`
}

// TableName returns the table name for Service
func (Service) TableName() string {
	return "services"
}
