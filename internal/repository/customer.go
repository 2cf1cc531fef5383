package repository

import (
	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerRepository handles database operations for customers and their addresses
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create creates a new customer
func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// GetByID retrieves a customer by ID
func (r *CustomerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByEmail retrieves a customer by email
func (r *CustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetAll retrieves all customers with pagination
func (r *CustomerRepository) GetAll(limit, offset int) ([]models.Customer, int64, error) {
	var customers []models.Customer
	var total int64

	if err := r.db.Model(&models.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Model(&models.Customer{}).
		Order("last_name, first_name").
		Limit(limit).Offset(offset).
		Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

// Update updates a customer
func (r *CustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

// Delete deletes a customer
func (r *CustomerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Customer{}, "id = ?", id).Error
}

// CreateAddress creates a new address for a customer
func (r *CustomerRepository) CreateAddress(address *models.Address) error {
	return r.db.Create(address).Error
}

// GetAddressesByCustomerID retrieves all addresses for a customer
func (r *CustomerRepository) GetAddressesByCustomerID(customerID uuid.UUID) ([]models.Address, error) {
	var addresses []models.Address
	err := r.db.Where("customer_id = ?", customerID).Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}
