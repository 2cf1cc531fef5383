package repository

import (
	"time"

	"home-services-backend/internal/database/models"

	"github.com/google/uuid"
)

// TechnicianRepositoryInterface defines the interface for technician repository operations
type TechnicianRepositoryInterface interface {
	Create(technician *models.Technician) error
	GetByID(id uuid.UUID) (*models.Technician, error)
	GetByEmail(email string) (*models.Technician, error)
	GetAll(limit, offset int) ([]models.Technician, int64, error)
	GetByStatus(status models.TechnicianStatus, limit, offset int) ([]models.Technician, int64, error)
	Update(technician *models.Technician) error
	Delete(id uuid.UUID) error
}

// ServiceTypeRepositoryInterface defines the interface for service type repository operations
type ServiceTypeRepositoryInterface interface {
	Create(serviceType *models.ServiceType) error
	GetByID(id uuid.UUID) (*models.ServiceType, error)
	GetByName(name string) (*models.ServiceType, error)
	GetAll() ([]models.ServiceType, error)
	GetAllWithServices() ([]models.ServiceType, error)
	Update(serviceType *models.ServiceType) error
	Delete(id uuid.UUID) error
}

// ServiceRepositoryInterface defines the interface for catalog service repository operations
type ServiceRepositoryInterface interface {
	Create(service *models.Service) error
	GetByID(id uuid.UUID) (*models.Service, error)
	GetByJobName(jobName string) (*models.Service, error)
	GetAll(limit, offset int) ([]models.Service, int64, error)
	GetByServiceTypeID(serviceTypeID uuid.UUID) ([]models.Service, error)
	Update(service *models.Service) error
	Delete(id uuid.UUID) error
}

// CustomerRepositoryInterface defines the interface for customer repository operations
type CustomerRepositoryInterface interface {
	Create(customer *models.Customer) error
	GetByID(id uuid.UUID) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	GetAll(limit, offset int) ([]models.Customer, int64, error)
	Update(customer *models.Customer) error
	Delete(id uuid.UUID) error
	CreateAddress(address *models.Address) error
	GetAddressesByCustomerID(customerID uuid.UUID) ([]models.Address, error)
}

// WorkOrderRepositoryInterface defines the interface for work order repository operations
type WorkOrderRepositoryInterface interface {
	Create(order *models.WorkOrder) error
	GetByID(id uuid.UUID) (*models.WorkOrder, error)
	GetByCode(code string) (*models.WorkOrder, error)
	GetAll(limit, offset int) ([]models.WorkOrder, int64, error)
	GetByDateRange(start, end time.Time) ([]models.WorkOrder, error)
	GetByTechnicianID(technicianID uuid.UUID, limit, offset int) ([]models.WorkOrder, int64, error)
	CountByTechnicianAndDate(technicianID uuid.UUID, date time.Time) (int64, error)
	NextCode(year int) (string, error)
	Update(order *models.WorkOrder) error
	Delete(id uuid.UUID) error
}

// AvailabilityRepositoryInterface defines the interface for availability block repository operations
type AvailabilityRepositoryInterface interface {
	Create(block *models.AvailabilityBlock) error
	GetByID(id uuid.UUID) (*models.AvailabilityBlock, error)
	GetByDateRange(start, end time.Time) ([]models.AvailabilityBlock, error)
	GetByTechnicianAndDateRange(technicianID uuid.UUID, start, end time.Time) ([]models.AvailabilityBlock, error)
	GetOverlapping(technicianID uuid.UUID, date time.Time, startMinute, endMinute int) ([]models.AvailabilityBlock, error)
	DeleteByTechnicianAndDate(technicianID uuid.UUID, date time.Time) error
	Update(block *models.AvailabilityBlock) error
	Delete(id uuid.UUID) error
}

// AvailabilityRequestRepositoryInterface defines the interface for availability request repository operations
type AvailabilityRequestRepositoryInterface interface {
	Create(request *models.AvailabilityRequest) error
	GetByID(id uuid.UUID) (*models.AvailabilityRequest, error)
	GetByStatus(status models.AvailabilityRequestStatus) ([]models.AvailabilityRequest, error)
	GetAll() ([]models.AvailabilityRequest, error)
	Update(request *models.AvailabilityRequest) error
	Delete(id uuid.UUID) error
}

// WarrantyRepositoryInterface defines the interface for warranty repository operations
type WarrantyRepositoryInterface interface {
	Create(warranty *models.Warranty) error
	GetByID(id uuid.UUID) (*models.Warranty, error)
	GetByWorkOrderCode(code string) (*models.Warranty, error)
	GetByContact(email, phone string) ([]models.Warranty, error)
	GetAll(limit, offset int) ([]models.Warranty, int64, error)
	Update(warranty *models.Warranty) error
	Delete(id uuid.UUID) error
}

// ServiceRequestRepositoryInterface defines the interface for service request repository operations
type ServiceRequestRepositoryInterface interface {
	Create(request *models.ServiceRequest) error
	GetByID(id uuid.UUID) (*models.ServiceRequest, error)
	GetByCustomerID(customerID uuid.UUID) ([]models.ServiceRequest, error)
	GetAll(limit, offset int) ([]models.ServiceRequest, int64, error)
	Update(request *models.ServiceRequest) error
	Delete(id uuid.UUID) error
}
