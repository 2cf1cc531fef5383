package service

import (
	"errors"
	"fmt"
	"time"

	"home-services-backend/internal/database/models"
	apperrors "home-services-backend/internal/errors"
	"home-services-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AppointmentService handles the public booking flow: it records the
// customer, address and service request in one operation and auto-assigns
// the least loaded technician for the preferred day.
type AppointmentService struct {
	customerRepo       repository.CustomerRepositoryInterface
	serviceRepo        repository.ServiceRepositoryInterface
	serviceRequestRepo repository.ServiceRequestRepositoryInterface
	technicianRepo     repository.TechnicianRepositoryInterface
	workOrderRepo      repository.WorkOrderRepositoryInterface
	validator          *validator.Validate
	logger             *logrus.Logger
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	customerRepo repository.CustomerRepositoryInterface,
	serviceRepo repository.ServiceRepositoryInterface,
	serviceRequestRepo repository.ServiceRequestRepositoryInterface,
	technicianRepo repository.TechnicianRepositoryInterface,
	workOrderRepo repository.WorkOrderRepositoryInterface,
	validator *validator.Validate,
	logger *logrus.Logger,
) *AppointmentService {
	return &AppointmentService{
		customerRepo:       customerRepo,
		serviceRepo:        serviceRepo,
		serviceRequestRepo: serviceRequestRepo,
		technicianRepo:     technicianRepo,
		workOrderRepo:      workOrderRepo,
		validator:          validator,
		logger:             logger,
	}
}

// CreateAppointmentRequest is the expanded booking payload: customer
// contact, service address and requested work in a single submission
type CreateAppointmentRequest struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,len=10,numeric"`

	Address string `json:"address" validate:"required,max=200"`
	City    string `json:"city" validate:"required,max=80"`
	State   string `json:"state" validate:"required,max=40"`
	ZipCode string `json:"zip_code" validate:"required,max=10"`

	ServiceID         *uuid.UUID `json:"service_id,omitempty"`
	Description       string     `json:"description" validate:"max=1000"`
	PreferredDateTime string     `json:"preferred_datetime" validate:"required"`
}

// AssignedTechnician identifies the technician picked for an appointment
type AssignedTechnician struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AppointmentResult is the outcome of a booking submission
type AppointmentResult struct {
	RequestID  uuid.UUID           `json:"request_id"`
	Technician *AssignedTechnician `json:"technician,omitempty"`
}

// ConfirmationResponse tells the caller where to go after booking
type ConfirmationResponse struct {
	Redirect string `json:"redirect"`
}

// Create books an appointment: the customer is upserted by email, the
// service address stored, and a service request created with the least
// loaded active technician assigned for the preferred day.
func (s *AppointmentService) Create(req *CreateAppointmentRequest) (*AppointmentResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	preferredAt, err := parsePreferredDateTime(req.PreferredDateTime)
	if err != nil {
		return nil, apperrors.NewValidationError("preferred_datetime", err.Error())
	}

	if req.ServiceID != nil {
		if _, err := s.serviceRepo.GetByID(*req.ServiceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrServiceNotFound
			}
			return nil, fmt.Errorf("failed to get service: %w", err)
		}
	}

	customer, err := s.upsertCustomer(req)
	if err != nil {
		return nil, err
	}

	address := &models.Address{
		CustomerID: customer.ID,
		Street:     req.Address,
		City:       req.City,
		State:      req.State,
		ZipCode:    req.ZipCode,
	}
	if err := s.customerRepo.CreateAddress(address); err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	request := &models.ServiceRequest{
		CustomerID:  customer.ID,
		AddressID:   &address.ID,
		ServiceID:   req.ServiceID,
		Description: req.Description,
		PreferredAt: preferredAt,
	}

	result := &AppointmentResult{}
	technician, err := s.assignTechnician(preferredAt)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNoTechnicianAvailable) {
			return nil, err
		}
		s.logger.WithField("preferred_datetime", req.PreferredDateTime).
			Warn("No technician available for appointment")
	} else {
		request.TechnicianID = &technician.ID
		result.Technician = &AssignedTechnician{
			ID:   technician.ID,
			Name: technician.FullName(),
		}
	}

	if err := s.serviceRequestRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create service request: %w", err)
	}
	result.RequestID = request.ID

	s.logger.WithFields(logrus.Fields{
		"request_id": request.ID,
		"customer":   customer.Email,
		"assigned":   result.Technician != nil,
	}).Info("Appointment created")

	return result, nil
}

// Confirmation returns the post-booking redirect target
func (s *AppointmentService) Confirmation() *ConfirmationResponse {
	return &ConfirmationResponse{Redirect: "/confirmation"}
}

// upsertCustomer finds the customer by email, updating stale contact
// details, or creates a new record
func (s *AppointmentService) upsertCustomer(req *CreateAppointmentRequest) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByEmail(req.Email)
	if err == nil {
		changed := false
		if req.Phone != "" && customer.Phone != req.Phone {
			customer.Phone = req.Phone
			changed = true
		}
		if customer.FirstName != req.FirstName || customer.LastName != req.LastName {
			customer.FirstName = req.FirstName
			customer.LastName = req.LastName
			changed = true
		}
		if changed {
			if err := s.customerRepo.Update(customer); err != nil {
				return nil, fmt.Errorf("failed to update customer: %w", err)
			}
		}
		return customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	customer = &models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// assignTechnician picks the active technician with the fewest work orders
// on the preferred day. Ties resolve to the first technician in listing
// order, so assignment is deterministic.
func (s *AppointmentService) assignTechnician(preferredAt time.Time) (*models.Technician, error) {
	technicians, _, err := s.technicianRepo.GetByStatus(models.TechnicianStatusActive, -1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}
	if len(technicians) == 0 {
		return nil, apperrors.ErrNoTechnicianAvailable
	}

	var best *models.Technician
	var bestCount int64
	for i := range technicians {
		count, err := s.workOrderRepo.CountByTechnicianAndDate(technicians[i].ID, preferredAt)
		if err != nil {
			return nil, fmt.Errorf("failed to count technician workload: %w", err)
		}
		if best == nil || count < bestCount {
			best = &technicians[i]
			bestCount = count
		}
	}
	return best, nil
}

// parsePreferredDateTime accepts the booking form's datetime-local format
// as well as a date-only fallback
func parsePreferredDateTime(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", value)
}
