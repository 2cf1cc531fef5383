package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"home-services-backend/internal/database/models"
	apperrors "home-services-backend/internal/errors"
	"home-services-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// WarrantyService handles warranty lookup, detail requests and service claims
type WarrantyService struct {
	repo               repository.WarrantyRepositoryInterface
	customerRepo       repository.CustomerRepositoryInterface
	serviceRequestRepo repository.ServiceRequestRepositoryInterface
	validator          *validator.Validate
	logger             *logrus.Logger
	now                func() time.Time
}

// NewWarrantyService creates a new warranty service
func NewWarrantyService(
	repo repository.WarrantyRepositoryInterface,
	customerRepo repository.CustomerRepositoryInterface,
	serviceRequestRepo repository.ServiceRequestRepositoryInterface,
	validator *validator.Validate,
	logger *logrus.Logger,
	now func() time.Time,
) *WarrantyService {
	if now == nil {
		now = time.Now
	}
	return &WarrantyService{
		repo:               repo,
		customerRepo:       customerRepo,
		serviceRequestRepo: serviceRequestRepo,
		validator:          validator,
		logger:             logger,
		now:                now,
	}
}

// WarrantyLookupRequest identifies a customer by email and/or phone.
// Phone numbers are entered as exactly ten digits, no separators.
type WarrantyLookupRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,len=10,numeric"`
}

// WarrantyResponse represents a single warranty rendered for display
type WarrantyResponse struct {
	ID            uuid.UUID             `json:"id"`
	CustomerName  string                `json:"customer_name"`
	Service       string                `json:"service"`
	WorkOrderCode string                `json:"work_order_id"`
	StartDate     string                `json:"start_date"`
	EndDate       string                `json:"end_date"`
	Status        models.WarrantyStatus `json:"status"`
	Active        bool                  `json:"active"`
	Notes         string                `json:"notes,omitempty"`
}

// WarrantyLookupResponse lists the warranties found for a contact
type WarrantyLookupResponse struct {
	Warranties []WarrantyResponse `json:"warranties"`
	Count      int                `json:"count"`
}

// WarrantyDetailsRequest asks for warranty details to be sent by email
type WarrantyDetailsRequest struct {
	WarrantyID    *uuid.UUID `json:"warranty_id,omitempty"`
	WorkOrderCode string     `json:"work_order_id,omitempty"`
	Email         string     `json:"email" validate:"omitempty,email"`
	Phone         string     `json:"phone" validate:"omitempty,len=10,numeric"`
}

// WarrantyServiceRequest files a service claim against a warranty
type WarrantyServiceRequest struct {
	WarrantyID         *uuid.UUID `json:"warranty_id,omitempty"`
	WorkOrderCode      string     `json:"work_order_id,omitempty"`
	IssueType          string     `json:"issue_type" validate:"required,max=40"`
	Urgency            string     `json:"urgency" validate:"required,oneof=low medium high"`
	ProblemDescription string     `json:"problem_description" validate:"required,max=1000"`
}

// MessageResponse carries a confirmation message back to the caller
type MessageResponse struct {
	Message string `json:"message"`
}

// Lookup finds the warranties registered to an email or phone number.
// At least one contact field must be given.
func (s *WarrantyService) Lookup(req *WarrantyLookupRequest) (*WarrantyLookupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)
	if email == "" && phone == "" {
		return nil, apperrors.ErrContactRequired
	}

	warranties, err := s.repo.GetByContact(email, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to look up warranties: %w", err)
	}

	now := s.now()
	responses := make([]WarrantyResponse, len(warranties))
	for i := range warranties {
		responses[i] = toWarrantyResponse(&warranties[i], now)
	}

	return &WarrantyLookupResponse{
		Warranties: responses,
		Count:      len(responses),
	}, nil
}

// RequestDetails records a request to have warranty details sent by email
func (s *WarrantyService) RequestDetails(req *WarrantyDetailsRequest) (*MessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Email == "" && req.Phone == "" {
		return nil, apperrors.ErrContactRequired
	}

	warranty, err := s.resolveWarranty(req.WarrantyID, req.WorkOrderCode)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"warranty_id":   warranty.ID,
		"work_order_id": warranty.WorkOrderCode,
		"email":         req.Email,
	}).Info("Warranty details requested")

	return &MessageResponse{
		Message: "Warranty details will be sent to your email shortly",
	}, nil
}

// RequestService files a service claim against a warranty. The customer
// record is upserted from the warranty's contact details and the claim is
// stored as a service request linked back to the warranty.
func (s *WarrantyService) RequestService(req *WarrantyServiceRequest) (*MessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	warranty, err := s.resolveWarranty(req.WarrantyID, req.WorkOrderCode)
	if err != nil {
		return nil, err
	}

	customer, err := s.upsertCustomer(warranty)
	if err != nil {
		return nil, err
	}

	request := &models.ServiceRequest{
		CustomerID:    customer.ID,
		Description:   req.ProblemDescription,
		WarrantyID:    &warranty.ID,
		WorkOrderCode: warranty.WorkOrderCode,
		IssueType:     req.IssueType,
		Urgency:       models.RequestUrgency(req.Urgency),
	}
	if err := s.serviceRequestRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create service request: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"service_request_id": request.ID,
		"warranty_id":        warranty.ID,
		"issue_type":         req.IssueType,
		"urgency":            req.Urgency,
	}).Info("Warranty service request submitted")

	return &MessageResponse{
		Message: "Service request submitted successfully. We will contact you within 24 hours.",
	}, nil
}

// resolveWarranty loads a warranty by ID or by work order code
func (s *WarrantyService) resolveWarranty(id *uuid.UUID, workOrderCode string) (*models.Warranty, error) {
	var warranty *models.Warranty
	var err error
	switch {
	case id != nil:
		warranty, err = s.repo.GetByID(*id)
	case workOrderCode != "":
		warranty, err = s.repo.GetByWorkOrderCode(workOrderCode)
	default:
		return nil, apperrors.ErrWarrantyNotFound
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWarrantyNotFound
		}
		return nil, fmt.Errorf("failed to get warranty: %w", err)
	}
	return warranty, nil
}

// upsertCustomer finds the customer behind a warranty by email, creating a
// record from the warranty's contact details when none exists yet
func (s *WarrantyService) upsertCustomer(warranty *models.Warranty) (*models.Customer, error) {
	if warranty.CustomerEmail != "" {
		customer, err := s.customerRepo.GetByEmail(warranty.CustomerEmail)
		if err == nil {
			return customer, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get customer: %w", err)
		}
	}

	first, last := splitName(warranty.CustomerName)
	customer := &models.Customer{
		FirstName: first,
		LastName:  last,
		Email:     warranty.CustomerEmail,
		Phone:     warranty.CustomerPhone,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], parts[0]
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

func toWarrantyResponse(w *models.Warranty, now time.Time) WarrantyResponse {
	return WarrantyResponse{
		ID:            w.ID,
		CustomerName:  w.CustomerName,
		Service:       w.Service,
		WorkOrderCode: w.WorkOrderCode,
		StartDate:     w.StartDate.Format("2006-01-02"),
		EndDate:       w.EndDate.Format("2006-01-02"),
		Status:        w.Status,
		Active:        w.IsActive(now),
		Notes:         w.Notes,
	}
}
