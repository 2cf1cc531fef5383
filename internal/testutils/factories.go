package testutils

import (
	"time"

	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
)

// TechnicianFactory provides methods to create test Technician data
type TechnicianFactory struct{}

// Create creates a test Technician with default values
func (f *TechnicianFactory) Create() *models.Technician {
	id := uuid.New()
	return &models.Technician{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName: "Mike",
		LastName:  "Rodriguez",
		// unique per instance to satisfy the email index
		Email:      "mike." + id.String()[:8] + "@vargas.com",
		Phone:      "555-0101",
		Role:       "HVAC Technician",
		PayRate:    32.50,
		HireDate:   time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC),
		Status:     models.TechnicianStatusActive,
		ShiftStart: 8 * 60,
		ShiftEnd:   17 * 60,
	}
}

// WithName sets a custom name for the technician
func (f *TechnicianFactory) WithName(first, last string) *models.Technician {
	t := f.Create()
	t.FirstName = first
	t.LastName = last
	return t
}

// WithStatus sets a custom status for the technician
func (f *TechnicianFactory) WithStatus(status models.TechnicianStatus) *models.Technician {
	t := f.Create()
	t.Status = status
	return t
}

// ServiceTypeFactory provides methods to create test ServiceType data
type ServiceTypeFactory struct{}

// Create creates a test ServiceType with default values
func (f *ServiceTypeFactory) Create() *models.ServiceType {
	id := uuid.New()
	return &models.ServiceType{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "HVAC " + id.String()[:8],
	}
}

// WithName sets a custom name for the service type
func (f *ServiceTypeFactory) WithName(name string) *models.ServiceType {
	st := f.Create()
	st.Name = name
	return st
}

// ServiceFactory provides methods to create test Service data
type ServiceFactory struct{}

// Create creates a test Service with default values
func (f *ServiceFactory) Create() *models.Service {
	return &models.Service{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ServiceTypeID: uuid.New(),
		JobName:       "AC Repair",
		JobDesc:       "Diagnose and repair central air conditioning",
		Price:         450,
		DurationHours: 3,
	}
}

// WithServiceType sets the service type ID for the service
func (f *ServiceFactory) WithServiceType(serviceTypeID uuid.UUID) *models.Service {
	s := f.Create()
	s.ServiceTypeID = serviceTypeID
	return s
}

// WithJobName sets a custom job name for the service
func (f *ServiceFactory) WithJobName(jobName string) *models.Service {
	s := f.Create()
	s.JobName = jobName
	return s
}

// CustomerFactory provides methods to create test Customer data
type CustomerFactory struct{}

// Create creates a test Customer with default values
func (f *CustomerFactory) Create() *models.Customer {
	id := uuid.New()
	return &models.Customer{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john." + id.String()[:8] + "@example.com",
		Phone:     "555-0123",
	}
}

// WithEmail sets a custom email for the customer
func (f *CustomerFactory) WithEmail(email string) *models.Customer {
	c := f.Create()
	c.Email = email
	return c
}

// WorkOrderFactory provides methods to create test WorkOrder data
type WorkOrderFactory struct{}

// Create creates a test WorkOrder with default values
func (f *WorkOrderFactory) Create() *models.WorkOrder {
	id := uuid.New()
	return &models.WorkOrder{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Code:         "WO-2025-" + id.String()[:6],
		Date:         time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
		CustomerName: "John Smith",
		Service:      "HVAC Repair",
		Revenue:      450,
		LaborCost:    180,
		MaterialCost: 120,
		Status:       models.WorkOrderStatusCompleted,
		DurationHrs:  3,
	}
}

// WithCode sets a custom code for the work order
func (f *WorkOrderFactory) WithCode(code string) *models.WorkOrder {
	wo := f.Create()
	wo.Code = code
	return wo
}

// WithDate sets a custom date for the work order
func (f *WorkOrderFactory) WithDate(date time.Time) *models.WorkOrder {
	wo := f.Create()
	wo.Date = date
	return wo
}

// WithTechnician sets the assigned technician for the work order
func (f *WorkOrderFactory) WithTechnician(technicianID uuid.UUID) *models.WorkOrder {
	wo := f.Create()
	wo.TechnicianID = &technicianID
	return wo
}

// AvailabilityFactory provides methods to create test AvailabilityBlock data
type AvailabilityFactory struct{}

// Create creates a test AvailabilityBlock with default values
func (f *AvailabilityFactory) Create() *models.AvailabilityBlock {
	return &models.AvailabilityBlock{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TechnicianID:   uuid.New(),
		TechnicianName: "Mike Rodriguez",
		Date:           time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC),
		StartMinute:    8 * 60,
		EndMinute:      12 * 60,
		Status:         models.BlockStatusAvailable,
		SubmittedAt:    time.Now(),
	}
}

// WithTechnician sets the technician for the block
func (f *AvailabilityFactory) WithTechnician(technicianID uuid.UUID, name string) *models.AvailabilityBlock {
	b := f.Create()
	b.TechnicianID = technicianID
	b.TechnicianName = name
	return b
}

// WithDate sets a custom date for the block
func (f *AvailabilityFactory) WithDate(date time.Time) *models.AvailabilityBlock {
	b := f.Create()
	b.Date = date
	return b
}

// WithRange sets the minute range for the block
func (f *AvailabilityFactory) WithRange(startMinute, endMinute int) *models.AvailabilityBlock {
	b := f.Create()
	b.StartMinute = startMinute
	b.EndMinute = endMinute
	return b
}

// WithStatus sets the status for the block
func (f *AvailabilityFactory) WithStatus(status models.BlockStatus) *models.AvailabilityBlock {
	b := f.Create()
	b.Status = status
	return b
}

// WarrantyFactory provides methods to create test Warranty data
type WarrantyFactory struct{}

// Create creates a test Warranty with default values
func (f *WarrantyFactory) Create() *models.Warranty {
	id := uuid.New()
	return &models.Warranty{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CustomerName:  "John Smith",
		CustomerEmail: "john.smith@example.com",
		CustomerPhone: "555-0123",
		Service:       "HVAC Repair",
		WorkOrderCode: "WO-2025-" + id.String()[:6],
		StartDate:     time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		Status:        models.WarrantyStatusActive,
	}
}

// WithContact sets the customer contact fields for the warranty
func (f *WarrantyFactory) WithContact(email, phone string) *models.Warranty {
	w := f.Create()
	w.CustomerEmail = email
	w.CustomerPhone = phone
	return w
}

// WithStatus sets the status for the warranty
func (f *WarrantyFactory) WithStatus(status models.WarrantyStatus) *models.Warranty {
	w := f.Create()
	w.Status = status
	return w
}

// ServiceRequestFactory provides methods to create test ServiceRequest data
type ServiceRequestFactory struct{}

// Create creates a test ServiceRequest with default values
func (f *ServiceRequestFactory) Create() *models.ServiceRequest {
	return &models.ServiceRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CustomerID:  uuid.New(),
		Description: "AC not cooling",
		PreferredAt: time.Date(2025, time.October, 22, 10, 0, 0, 0, time.UTC),
	}
}

// WithCustomer sets the customer ID for the request
func (f *ServiceRequestFactory) WithCustomer(customerID uuid.UUID) *models.ServiceRequest {
	r := f.Create()
	r.CustomerID = customerID
	return r
}

// FactorySet bundles all factories for convenient test setup
type FactorySet struct {
	Technician     *TechnicianFactory
	ServiceType    *ServiceTypeFactory
	Service        *ServiceFactory
	Customer       *CustomerFactory
	WorkOrder      *WorkOrderFactory
	Availability   *AvailabilityFactory
	Warranty       *WarrantyFactory
	ServiceRequest *ServiceRequestFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Technician:     &TechnicianFactory{},
		ServiceType:    &ServiceTypeFactory{},
		Service:        &ServiceFactory{},
		Customer:       &CustomerFactory{},
		WorkOrder:      &WorkOrderFactory{},
		Availability:   &AvailabilityFactory{},
		Warranty:       &WarrantyFactory{},
		ServiceRequest: &ServiceRequestFactory{},
	}
}
