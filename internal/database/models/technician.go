package models

import (
	"encoding/json"
	"time"
)

// Technician represents a field employee who can be scheduled on work orders
type Technician struct {
	BaseModel
	FirstName      string           `json:"first_name" gorm:"size:50;not null" validate:"required,max=50"`
	LastName       string           `json:"last_name" gorm:"size:50;not null" validate:"required,max=50"`
	Email          string           `json:"email" gorm:"size:100;not null;uniqueIndex" validate:"required,email"`
	Phone          string           `json:"phone" gorm:"size:20"`
	Address        string           `json:"address" gorm:"size:200"`
	Role           string           `json:"role" gorm:"size:40;not null" validate:"required"`
	PayRate        float64          `json:"pay_rate"`
	HireDate       time.Time        `json:"hire_date"`
	Status         TechnicianStatus `json:"status" gorm:"size:20;not null;default:active" validate:"omitempty,oneof=active on-leave"`
	Skills         json.RawMessage  `json:"skills,omitempty" gorm:"type:jsonb" swaggertype:"object"`
	Certifications string           `json:"certifications" gorm:"size:300"`
	Notes          string           `json:"notes" gorm:"size:500"`

	// Default shift boundaries in minutes from midnight
	ShiftStart int `json:"shift_start"`
	ShiftEnd   int `json:"shift_end"`
}

// TableName returns the table name for Technician
func (Technician) TableName() string {
	return "technicians"
}

// FullName returns the technician's display name
func (t *Technician) FullName() string {
	return t.FirstName + " " + t.LastName
}
