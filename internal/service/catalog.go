package service

import (
	"errors"
	"fmt"

	"home-services-backend/internal/database/models"
	apperrors "home-services-backend/internal/errors"
	"home-services-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService handles business logic for the service catalog:
// service types (categories) and the bookable services under them.
type CatalogService struct {
	serviceRepo     repository.ServiceRepositoryInterface
	serviceTypeRepo repository.ServiceTypeRepositoryInterface
	validator       *validator.Validate
}

// NewCatalogService creates a new catalog service
func NewCatalogService(serviceRepo repository.ServiceRepositoryInterface, serviceTypeRepo repository.ServiceTypeRepositoryInterface, validator *validator.Validate) *CatalogService {
	return &CatalogService{
		serviceRepo:     serviceRepo,
		serviceTypeRepo: serviceTypeRepo,
		validator:       validator,
	}
}

// CreateServiceRequest represents the request to create a catalog service
type CreateServiceRequest struct {
	Category      string  `json:"category" validate:"required,max=60"`
	JobName       string  `json:"job_name" validate:"required,max=100"`
	JobDesc       string  `json:"job_desc"`
	Price         float64 `json:"service_price" validate:"gte=0"`
	DurationHours float64 `json:"duration_hours" validate:"gte=0"`
}

// UpdateServiceRequest represents the request to update a catalog service
type UpdateServiceRequest struct {
	Category      *string  `json:"category,omitempty" validate:"omitempty,max=60"`
	JobName       *string  `json:"job_name,omitempty" validate:"omitempty,max=100"`
	JobDesc       *string  `json:"job_desc,omitempty"`
	Price         *float64 `json:"service_price,omitempty" validate:"omitempty,gte=0"`
	DurationHours *float64 `json:"duration_hours,omitempty" validate:"omitempty,gte=0"`
}

// ServiceResponse represents the response for catalog service operations
type ServiceResponse struct {
	ID            uuid.UUID `json:"service_id"`
	Category      string    `json:"category"`
	JobName       string    `json:"job_name"`
	JobDesc       string    `json:"job_desc,omitempty"`
	Price         float64   `json:"service_price"`
	DurationHours float64   `json:"duration_hours"`
}

// ServiceTypeResponse represents the response for service type operations
type ServiceTypeResponse struct {
	ID   uuid.UUID `json:"service_type_id"`
	Name string    `json:"service_type_name"`
}

// CreateService creates a catalog service, creating its category on first use
func (s *CatalogService) CreateService(req *CreateServiceRequest) (*ServiceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	serviceType, err := s.resolveServiceType(req.Category)
	if err != nil {
		return nil, err
	}

	existing, err := s.serviceRepo.GetByJobName(req.JobName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing service: %w", err)
	}
	if existing != nil && existing.ServiceTypeID == serviceType.ID {
		return nil, apperrors.ErrServiceExists
	}

	service := &models.Service{
		ServiceTypeID: serviceType.ID,
		JobName:       req.JobName,
		JobDesc:       req.JobDesc,
		Price:         req.Price,
		DurationHours: req.DurationHours,
	}
	if err := s.serviceRepo.Create(service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	return toServiceResponse(service, serviceType.Name), nil
}

// GetService retrieves a catalog service by ID
func (s *CatalogService) GetService(id uuid.UUID) (*ServiceResponse, error) {
	service, err := s.serviceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	serviceType, err := s.serviceTypeRepo.GetByID(service.ServiceTypeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get service type: %w", err)
	}
	category := ""
	if serviceType != nil {
		category = serviceType.Name
	}

	return toServiceResponse(service, category), nil
}

// ListServices retrieves the full catalog ordered by category then job name
func (s *CatalogService) ListServices() ([]ServiceResponse, error) {
	serviceTypes, err := s.serviceTypeRepo.GetAllWithServices()
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	responses := []ServiceResponse{}
	for _, st := range serviceTypes {
		for i := range st.Services {
			responses = append(responses, *toServiceResponse(&st.Services[i], st.Name))
		}
	}
	return responses, nil
}

// UpdateService updates a catalog service
func (s *CatalogService) UpdateService(id uuid.UUID, req *UpdateServiceRequest) (*ServiceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	service, err := s.serviceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	if req.Category != nil {
		serviceType, err := s.resolveServiceType(*req.Category)
		if err != nil {
			return nil, err
		}
		service.ServiceTypeID = serviceType.ID
	}
	if req.JobName != nil {
		service.JobName = *req.JobName
	}
	if req.JobDesc != nil {
		service.JobDesc = *req.JobDesc
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DurationHours != nil {
		service.DurationHours = *req.DurationHours
	}

	if err := s.serviceRepo.Update(service); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	serviceType, err := s.serviceTypeRepo.GetByID(service.ServiceTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get service type: %w", err)
	}
	return toServiceResponse(service, serviceType.Name), nil
}

// DeleteService deletes a catalog service
func (s *CatalogService) DeleteService(id uuid.UUID) error {
	if _, err := s.serviceRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrServiceNotFound
		}
		return fmt.Errorf("failed to get service: %w", err)
	}

	if err := s.serviceRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

// ListServiceTypes retrieves all service types ordered by name
func (s *CatalogService) ListServiceTypes() ([]ServiceTypeResponse, error) {
	serviceTypes, err := s.serviceTypeRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list service types: %w", err)
	}

	responses := make([]ServiceTypeResponse, len(serviceTypes))
	for i, st := range serviceTypes {
		responses[i] = ServiceTypeResponse{ID: st.ID, Name: st.Name}
	}
	return responses, nil
}

// resolveServiceType finds a service type by name, creating it if missing
func (s *CatalogService) resolveServiceType(name string) (*models.ServiceType, error) {
	serviceType, err := s.serviceTypeRepo.GetByName(name)
	if err == nil {
		return serviceType, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get service type: %w", err)
	}

	serviceType = &models.ServiceType{Name: name}
	if err := s.serviceTypeRepo.Create(serviceType); err != nil {
		return nil, fmt.Errorf("failed to create service type: %w", err)
	}
	return serviceType, nil
}

func toServiceResponse(service *models.Service, category string) *ServiceResponse {
	return &ServiceResponse{
		ID:            service.ID,
		Category:      category,
		JobName:       service.JobName,
		JobDesc:       service.JobDesc,
		Price:         service.Price,
		DurationHours: service.DurationHours,
	}
}
