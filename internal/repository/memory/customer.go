package memory

import (
	"sort"
	"sync"
	"time"

	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerRepository is an in-memory CustomerRepositoryInterface
type CustomerRepository struct {
	mu        sync.RWMutex
	items     map[uuid.UUID]models.Customer
	addresses map[uuid.UUID]models.Address
}

// NewCustomerRepository creates an empty in-memory customer repository
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		items:     make(map[uuid.UUID]models.Customer),
		addresses: make(map[uuid.UUID]models.Address),
	}
}

// Create stores a new customer
func (r *CustomerRepository) Create(customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now()
		customer.UpdatedAt = customer.CreatedAt
	}
	for _, existing := range r.items {
		if existing.Email == customer.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.items[customer.ID] = *customer
	return nil
}

// GetByID retrieves a customer by ID
func (r *CustomerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

// GetByEmail retrieves a customer by email
func (r *CustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.items {
		if c.Email == email {
			out := c
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetAll retrieves all customers with pagination
func (r *CustomerRepository) GetAll(limit, offset int) ([]models.Customer, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Customer, 0, len(r.items))
	for _, c := range r.items {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].LastName != all[j].LastName {
			return all[i].LastName < all[j].LastName
		}
		return all[i].FirstName < all[j].FirstName
	})

	total := int64(len(all))
	if offset >= len(all) {
		return []models.Customer{}, total, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

// Update replaces a stored customer
func (r *CustomerRepository) Update(customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[customer.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	customer.UpdatedAt = time.Now()
	r.items[customer.ID] = *customer
	return nil
}

// Delete removes a customer
func (r *CustomerRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

// CreateAddress stores a new address
func (r *CustomerRepository) CreateAddress(address *models.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	if address.CreatedAt.IsZero() {
		address.CreatedAt = time.Now()
		address.UpdatedAt = address.CreatedAt
	}
	r.addresses[address.ID] = *address
	return nil
}

// GetAddressesByCustomerID retrieves all addresses for a customer
func (r *CustomerRepository) GetAddressesByCustomerID(customerID uuid.UUID) ([]models.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Address{}
	for _, a := range r.addresses {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
