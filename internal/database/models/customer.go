package models

import (
	"github.com/google/uuid"
)

// Customer is a person who books appointments and holds warranties
type Customer struct {
	BaseModel
	FirstName string `json:"first_name" gorm:"size:50;not null" validate:"required,max=50"`
	LastName  string `json:"last_name" gorm:"size:50;not null" validate:"required,max=50"`
	Email     string `json:"email" gorm:"size:100;not null;uniqueIndex" validate:"required,email"`
	Phone     string `json:"phone" gorm:"size:20" validate:"omitempty"`

	Addresses []Address `json:"addresses,omitempty" gorm:"foreignKey:CustomerID"`
}

// TableName returns the table name for Customer
func (Customer) TableName() string {
	return "customers"
}

// FullName returns the customer's display name
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Address is a service location belonging to a customer
type Address struct {
	BaseModel
	CustomerID uuid.UUID `json:"customer_id" gorm:"type:uuid;not null;index" validate:"required"`
	Street     string    `json:"address" gorm:"size:200;not null" validate:"required"`
	City       string    `json:"city" gorm:"size:80;not null" validate:"required"`
	State      string    `json:"state" gorm:"size:40;not null" validate:"required"`
	ZipCode    string    `json:"zip_code" gorm:"size:10;not null" validate:"required"`
}

// TableName returns the table name for Address
func (Address) TableName() string {
	return "addresses"
}
