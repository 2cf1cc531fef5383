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

// WorkOrderService handles business logic for work orders
type WorkOrderService struct {
	repo      repository.WorkOrderRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewWorkOrderService creates a new work order service
func NewWorkOrderService(repo repository.WorkOrderRepositoryInterface, validator *validator.Validate, now func() time.Time) *WorkOrderService {
	if now == nil {
		now = time.Now
	}
	return &WorkOrderService{
		repo:      repo,
		validator: validator,
		now:       now,
	}
}

// CreateWorkOrderRequest represents the request to create a work order
type CreateWorkOrderRequest struct {
	Code         string  `json:"work_order_id" validate:"omitempty,max=20"`
	Date         string  `json:"date" validate:"required,datetime=2006-01-02"`
	CustomerName string  `json:"customer" validate:"required,max=100"`
	Service      string  `json:"service" validate:"required,max=100"`
	Revenue      float64 `json:"revenue" validate:"gte=0"`
	LaborCost    float64 `json:"labor_cost" validate:"gte=0"`
	MaterialCost float64 `json:"material_cost" validate:"gte=0"`
	Status       string  `json:"status" validate:"omitempty,oneof=pending in-progress completed cancelled"`
	DurationHrs  float64 `json:"duration_hours" validate:"gte=0"`
	TechnicianID *uuid.UUID `json:"technician_id,omitempty"`
	Notes        string  `json:"notes"`
}

// UpdateWorkOrderStatusRequest represents a status transition with optional notes
type UpdateWorkOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in-progress completed cancelled"`
	Notes  string `json:"notes,omitempty" validate:"max=1000"`
}

// WorkOrderResponse represents the response for work order operations
type WorkOrderResponse struct {
	ID           uuid.UUID              `json:"id"`
	Code         string                 `json:"work_order_id"`
	Date         string                 `json:"date"`
	CustomerName string                 `json:"customer"`
	Service      string                 `json:"service"`
	Revenue      float64                `json:"revenue"`
	LaborCost    float64                `json:"labor_cost"`
	MaterialCost float64                `json:"material_cost"`
	TotalCost    float64                `json:"total_cost"`
	Profit       float64                `json:"profit"`
	Status       models.WorkOrderStatus `json:"status"`
	DurationHrs  float64                `json:"duration_hours"`
	TechnicianID *uuid.UUID             `json:"technician_id,omitempty"`
	Notes        string                 `json:"notes,omitempty"`
}

// WorkOrderListResponse represents a paginated list of work orders
type WorkOrderListResponse struct {
	WorkOrders []WorkOrderResponse `json:"work_orders"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// Create creates a work order, generating the next code when none is given
func (s *WorkOrderService) Create(req *CreateWorkOrderRequest) (*WorkOrderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date", err.Error())
	}

	code := req.Code
	if code == "" {
		code, err = s.repo.NextCode(date.Year())
		if err != nil {
			return nil, fmt.Errorf("failed to allocate work order code: %w", err)
		}
	} else {
		existing, err := s.repo.GetByCode(code)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing work order: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrWorkOrderExists
		}
	}

	status := models.WorkOrderStatus(req.Status)
	if status == "" {
		status = models.WorkOrderStatusPending
	}

	order := &models.WorkOrder{
		Code:         code,
		Date:         date,
		CustomerName: req.CustomerName,
		Service:      req.Service,
		Revenue:      req.Revenue,
		LaborCost:    req.LaborCost,
		MaterialCost: req.MaterialCost,
		Status:       status,
		DurationHrs:  req.DurationHrs,
		TechnicianID: req.TechnicianID,
		Notes:        req.Notes,
	}
	if err := s.repo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create work order: %w", err)
	}

	return toWorkOrderResponse(order), nil
}

// GetByCode retrieves a work order by its display code
func (s *WorkOrderService) GetByCode(code string) (*WorkOrderResponse, error) {
	order, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}
	return toWorkOrderResponse(order), nil
}

// List retrieves work orders with pagination, newest first
func (s *WorkOrderService) List(page, pageSize int) (*WorkOrderListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	orders, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}

	responses := make([]WorkOrderResponse, len(orders))
	for i := range orders {
		responses[i] = *toWorkOrderResponse(&orders[i])
	}

	return &WorkOrderListResponse{
		WorkOrders: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// UpdateStatus transitions a work order's status, appending notes if given
func (s *WorkOrderService) UpdateStatus(code string, req *UpdateWorkOrderStatusRequest) (*WorkOrderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	order, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}

	order.Status = models.WorkOrderStatus(req.Status)
	if req.Notes != "" {
		order.Notes = req.Notes
	}

	if err := s.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update work order: %w", err)
	}
	return toWorkOrderResponse(order), nil
}

// Cancel marks a work order cancelled
func (s *WorkOrderService) Cancel(code string) (*WorkOrderResponse, error) {
	return s.UpdateStatus(code, &UpdateWorkOrderStatusRequest{Status: string(models.WorkOrderStatusCancelled)})
}

func toWorkOrderResponse(o *models.WorkOrder) *WorkOrderResponse {
	return &WorkOrderResponse{
		ID:           o.ID,
		Code:         o.Code,
		Date:         o.Date.Format("2006-01-02"),
		CustomerName: o.CustomerName,
		Service:      o.Service,
		Revenue:      o.Revenue,
		LaborCost:    o.LaborCost,
		MaterialCost: o.MaterialCost,
		TotalCost:    o.TotalCost(),
		Profit:       o.Profit(),
		Status:       o.Status,
		DurationHrs:  o.DurationHrs,
		TechnicianID: o.TechnicianID,
		Notes:        o.Notes,
	}
}
