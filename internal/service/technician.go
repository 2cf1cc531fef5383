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
	"gorm.io/gorm"
)

// TechnicianService handles business logic for technicians
type TechnicianService struct {
	repo      repository.TechnicianRepositoryInterface
	validator *validator.Validate
}

// NewTechnicianService creates a new technician service
func NewTechnicianService(repo repository.TechnicianRepositoryInterface, validator *validator.Validate) *TechnicianService {
	return &TechnicianService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTechnicianRequest represents the request to create a technician
type CreateTechnicianRequest struct {
	FirstName      string  `json:"first_name" validate:"required,max=50"`
	LastName       string  `json:"last_name" validate:"required,max=50"`
	Email          string  `json:"email" validate:"required,email"`
	Phone          string  `json:"phone" validate:"omitempty,len=10,numeric"`
	Address        string  `json:"address"`
	Role           string  `json:"role" validate:"required"`
	PayRate        float64 `json:"pay_rate" validate:"gte=0"`
	HireDate       string  `json:"hire_date" validate:"omitempty,datetime=2006-01-02"`
	Status         string  `json:"status" validate:"omitempty,oneof=active on-leave"`
	Certifications string  `json:"certifications"`
	Notes          string  `json:"notes"`
}

// UpdateTechnicianRequest represents the request to update a technician
type UpdateTechnicianRequest struct {
	FirstName      *string  `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName       *string  `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Phone          *string  `json:"phone,omitempty" validate:"omitempty,len=10,numeric"`
	Address        *string  `json:"address,omitempty"`
	Role           *string  `json:"role,omitempty"`
	PayRate        *float64 `json:"pay_rate,omitempty" validate:"omitempty,gte=0"`
	Status         *string  `json:"status,omitempty" validate:"omitempty,oneof=active on-leave"`
	Certifications *string  `json:"certifications,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// TechnicianResponse represents the response for technician operations
type TechnicianResponse struct {
	ID             uuid.UUID               `json:"id"`
	Name           string                  `json:"name"`
	FirstName      string                  `json:"first_name"`
	LastName       string                  `json:"last_name"`
	Email          string                  `json:"email"`
	Phone          string                  `json:"phone"`
	Address        string                  `json:"address,omitempty"`
	Role           string                  `json:"role"`
	PayRate        float64                 `json:"pay_rate"`
	HireDate       string                  `json:"hire_date,omitempty"`
	Status         models.TechnicianStatus `json:"status"`
	Certifications string                  `json:"certifications,omitempty"`
	Notes          string                  `json:"notes,omitempty"`
}

// TechnicianListResponse represents a paginated list of technicians
type TechnicianListResponse struct {
	Technicians []TechnicianResponse `json:"technicians"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create creates a new technician
func (s *TechnicianService) Create(req *CreateTechnicianRequest) (*TechnicianResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing technician: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTechnicianExists
	}

	status := models.TechnicianStatus(req.Status)
	if status == "" {
		status = models.TechnicianStatusActive
	}

	var hireDate time.Time
	if req.HireDate != "" {
		hireDate, _ = time.Parse("2006-01-02", req.HireDate)
	}

	technician := &models.Technician{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		Role:           req.Role,
		PayRate:        req.PayRate,
		HireDate:       hireDate,
		Status:         status,
		Certifications: req.Certifications,
		Notes:          req.Notes,
	}

	if err := s.repo.Create(technician); err != nil {
		return nil, fmt.Errorf("failed to create technician: %w", err)
	}

	return s.toResponse(technician), nil
}

// GetByID retrieves a technician by ID
func (s *TechnicianService) GetByID(id uuid.UUID) (*TechnicianResponse, error) {
	technician, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTechnicianNotFound
		}
		return nil, fmt.Errorf("failed to get technician: %w", err)
	}

	return s.toResponse(technician), nil
}

// List retrieves technicians with pagination, optionally filtered by status
func (s *TechnicianService) List(status string, page, pageSize int) (*TechnicianListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var technicians []models.Technician
	var total int64
	var err error
	if status != "" {
		technicians, total, err = s.repo.GetByStatus(models.TechnicianStatus(status), pageSize, offset)
	} else {
		technicians, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}

	responses := make([]TechnicianResponse, len(technicians))
	for i := range technicians {
		responses[i] = *s.toResponse(&technicians[i])
	}

	return &TechnicianListResponse{
		Technicians: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Update updates a technician
func (s *TechnicianService) Update(id uuid.UUID, req *UpdateTechnicianRequest) (*TechnicianResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	technician, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTechnicianNotFound
		}
		return nil, fmt.Errorf("failed to get technician: %w", err)
	}

	if req.FirstName != nil {
		technician.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		technician.LastName = *req.LastName
	}
	if req.Phone != nil {
		technician.Phone = *req.Phone
	}
	if req.Address != nil {
		technician.Address = *req.Address
	}
	if req.Role != nil {
		technician.Role = *req.Role
	}
	if req.PayRate != nil {
		technician.PayRate = *req.PayRate
	}
	if req.Status != nil {
		technician.Status = models.TechnicianStatus(*req.Status)
	}
	if req.Certifications != nil {
		technician.Certifications = *req.Certifications
	}
	if req.Notes != nil {
		technician.Notes = *req.Notes
	}

	if err := s.repo.Update(technician); err != nil {
		return nil, fmt.Errorf("failed to update technician: %w", err)
	}

	return s.toResponse(technician), nil
}

// Delete deletes a technician
func (s *TechnicianService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTechnicianNotFound
		}
		return fmt.Errorf("failed to get technician: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete technician: %w", err)
	}
	return nil
}

func (s *TechnicianService) toResponse(t *models.Technician) *TechnicianResponse {
	resp := &TechnicianResponse{
		ID:             t.ID,
		Name:           t.FullName(),
		FirstName:      t.FirstName,
		LastName:       t.LastName,
		Email:          t.Email,
		Phone:          t.Phone,
		Address:        t.Address,
		Role:           t.Role,
		PayRate:        t.PayRate,
		Status:         t.Status,
		Certifications: t.Certifications,
		Notes:          t.Notes,
	}
	if !t.HireDate.IsZero() {
		resp.HireDate = t.HireDate.Format("2006-01-02")
	}
	return resp
}
