package service

import (
	"errors"
	"fmt"
	"time"

	"home-services-backend/internal/database/models"
	apperrors "home-services-backend/internal/errors"
	"home-services-backend/internal/repository"
	"home-services-backend/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityService handles availability submission, the biweekly
// timesheet views built on top of the schedule package, and the
// time-off request approval workflow.
type AvailabilityService struct {
	repo           repository.AvailabilityRepositoryInterface
	requestRepo    repository.AvailabilityRequestRepositoryInterface
	technicianRepo repository.TechnicianRepositoryInterface
	validator      *validator.Validate
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(
	repo repository.AvailabilityRepositoryInterface,
	requestRepo repository.AvailabilityRequestRepositoryInterface,
	technicianRepo repository.TechnicianRepositoryInterface,
	validator *validator.Validate,
) *AvailabilityService {
	return &AvailabilityService{
		repo:           repo,
		requestRepo:    requestRepo,
		technicianRepo: technicianRepo,
		validator:      validator,
	}
}

// SubmitAvailabilityRequest represents a technician submitting availability
// for one or more calendar days. Submission replaces whatever was previously
// stored for each selected day.
type SubmitAvailabilityRequest struct {
	TechnicianID    uuid.UUID `json:"technician_id" validate:"required"`
	Dates           []string  `json:"dates" validate:"omitempty,dive,datetime=2006-01-02"`
	StartTime       string    `json:"start_time" validate:"required"`
	EndTime         string    `json:"end_time" validate:"required"`
	Status          string    `json:"status" validate:"omitempty,oneof=available unavailable"`
	UnavailableType string    `json:"unavailable_type,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// BlockResponse is a single availability block rendered for display
type BlockResponse struct {
	ID             uuid.UUID          `json:"id"`
	TechnicianID   uuid.UUID          `json:"technician_id"`
	TechnicianName string             `json:"technician_name"`
	Date           string             `json:"date"`
	StartTime      string             `json:"start_time"`
	EndTime        string             `json:"end_time"`
	TimeRange      string             `json:"time_range"`
	Hours          int                `json:"hours"`
	Status         models.BlockStatus `json:"status"`
	WorkOrderCode  string             `json:"work_order_id,omitempty"`
	Customer       string             `json:"customer,omitempty"`
	Service        string             `json:"service,omitempty"`
	UnavailableType string            `json:"unavailable_type,omitempty"`
	Reason         string             `json:"reason,omitempty"`
	Notes          string             `json:"notes,omitempty"`
}

// TimesheetResponse is one two-week window of filtered blocks
type TimesheetResponse struct {
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	PeriodLabel string          `json:"period_label"`
	Blocks      []BlockResponse `json:"blocks"`
}

// OverlapResponse is a pair of conflicting blocks for one technician
type OverlapResponse struct {
	TechnicianID   uuid.UUID `json:"technician_id"`
	TechnicianName string    `json:"technician_name"`
	Date           string    `json:"date"`
	First          string    `json:"first"`
	Second         string    `json:"second"`
}

// Submit stores a technician's availability for the selected days. Each day
// is an upsert: existing blocks for that technician and day are replaced.
func (s *AvailabilityService) Submit(req *SubmitAvailabilityRequest) ([]BlockResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if len(req.Dates) == 0 {
		return nil, apperrors.ErrNoDatesSelected
	}

	startMinute, err := schedule.ParseClock(req.StartTime)
	if err != nil {
		return nil, apperrors.NewValidationError("start_time", err.Error())
	}
	endMinute, err := schedule.ParseClock(req.EndTime)
	if err != nil {
		return nil, apperrors.NewValidationError("end_time", err.Error())
	}
	if startMinute >= endMinute {
		return nil, apperrors.ErrInvalidTimeRange
	}

	technician, err := s.technicianRepo.GetByID(req.TechnicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTechnicianNotFound
		}
		return nil, fmt.Errorf("failed to get technician: %w", err)
	}

	status := models.BlockStatus(req.Status)
	if status == "" {
		status = models.BlockStatusAvailable
	}

	now := time.Now()
	responses := make([]BlockResponse, 0, len(req.Dates))
	for _, ds := range req.Dates {
		date, err := time.Parse("2006-01-02", ds)
		if err != nil {
			return nil, apperrors.NewValidationError("dates", err.Error())
		}

		if err := s.repo.DeleteByTechnicianAndDate(req.TechnicianID, date); err != nil {
			return nil, fmt.Errorf("failed to replace availability: %w", err)
		}

		block := &models.AvailabilityBlock{
			TechnicianID:    req.TechnicianID,
			TechnicianName:  technician.FullName(),
			Date:            date,
			StartMinute:     startMinute,
			EndMinute:       endMinute,
			Status:          status,
			UnavailableType: req.UnavailableType,
			Reason:          req.Reason,
			Notes:           req.Notes,
			SubmittedAt:     now,
		}
		if err := s.repo.Create(block); err != nil {
			return nil, fmt.Errorf("failed to store availability: %w", err)
		}
		responses = append(responses, toBlockResponse(block))
	}

	return responses, nil
}

// Timesheet returns the blocks of the two-week window containing anchor,
// filtered by technician and status. Empty technicianID/status select all;
// unavailable blocks only appear when their status is selected explicitly.
func (s *AvailabilityService) Timesheet(anchor time.Time, technicianID uuid.UUID, status models.BlockStatus) (*TimesheetResponse, error) {
	window := schedule.NewPeriodWindow(anchor)

	blocks, err := s.repo.GetByDateRange(window.Start, window.End())
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}

	filtered := schedule.Filter(blocks, window, technicianID, status)
	responses := make([]BlockResponse, len(filtered))
	for i := range filtered {
		responses[i] = toBlockResponse(&filtered[i])
	}

	return &TimesheetResponse{
		PeriodStart: window.Start.Format("2006-01-02"),
		PeriodEnd:   window.End().AddDate(0, 0, -1).Format("2006-01-02"),
		PeriodLabel: window.Label(),
		Blocks:      responses,
	}, nil
}

// Overlaps reports conflicting same-day block pairs inside the two-week
// window containing anchor. Unavailable blocks participate too; a vacation
// day colliding with an assignment is exactly what this surfaces.
func (s *AvailabilityService) Overlaps(anchor time.Time, technicianID uuid.UUID) ([]OverlapResponse, error) {
	window := schedule.NewPeriodWindow(anchor)

	var blocks []models.AvailabilityBlock
	var err error
	if technicianID != uuid.Nil {
		blocks, err = s.repo.GetByTechnicianAndDateRange(technicianID, window.Start, window.End())
	} else {
		blocks, err = s.repo.GetByDateRange(window.Start, window.End())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}

	overlaps := schedule.FindOverlaps(blocks)
	responses := make([]OverlapResponse, len(overlaps))
	for i, o := range overlaps {
		responses[i] = OverlapResponse{
			TechnicianID:   o.A.TechnicianID,
			TechnicianName: o.A.TechnicianName,
			Date:           o.A.Date.Format("2006-01-02"),
			First:          schedule.FormatTimeRange(o.A.StartMinute, o.A.EndMinute),
			Second:         schedule.FormatTimeRange(o.B.StartMinute, o.B.EndMinute),
		}
	}
	return responses, nil
}

// CreateAvailabilityRequestRequest is a technician asking for time off,
// sick leave, a personal day or an availability change over a date range.
// Full-day requests omit the time fields; partial-day requests require both.
type CreateAvailabilityRequestRequest struct {
	TechnicianID uuid.UUID `json:"technician_id" validate:"required"`
	RequestType  string    `json:"request_type" validate:"required,oneof=time-off sick-leave personal-day availability-change"`
	StartDate    string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string    `json:"end_date" validate:"required,datetime=2006-01-02"`
	FullDay      bool      `json:"full_day"`
	StartTime    string    `json:"start_time,omitempty"`
	EndTime      string    `json:"end_time,omitempty"`
	Reason       string    `json:"reason" validate:"max=1000"`
}

// ReviewAvailabilityRequestRequest carries the reviewer's decision details.
// ReviewedBy defaults to "Admin"; Reason is only used when rejecting.
type ReviewAvailabilityRequestRequest struct {
	ReviewedBy string `json:"reviewed_by,omitempty" validate:"max=100"`
	Reason     string `json:"reason,omitempty" validate:"max=500"`
}

// AvailabilityRequestResponse is an availability request rendered for the
// admin review panel
type AvailabilityRequestResponse struct {
	ID              uuid.UUID                        `json:"id"`
	TechnicianID    uuid.UUID                        `json:"technician_id"`
	TechnicianName  string                           `json:"technician_name"`
	RequestType     models.AvailabilityRequestType   `json:"request_type"`
	StartDate       string                           `json:"start_date"`
	EndDate         string                           `json:"end_date"`
	FullDay         bool                             `json:"full_day"`
	TimeRange       string                           `json:"time_range,omitempty"`
	Reason          string                           `json:"reason"`
	Status          models.AvailabilityRequestStatus `json:"status"`
	RequestedAt     time.Time                        `json:"requested_at"`
	ReviewedBy      string                           `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time                       `json:"reviewed_at,omitempty"`
	RejectionReason string                           `json:"rejection_reason,omitempty"`
}

// CreateRequest files a pending availability request for review
func (s *AvailabilityService) CreateRequest(req *CreateAvailabilityRequestRequest) (*AvailabilityRequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("start_date", err.Error())
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("end_date", err.Error())
	}
	if endDate.Before(startDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	startMinute, endMinute := 0, 24*60
	if !req.FullDay {
		if req.StartTime == "" || req.EndTime == "" {
			return nil, apperrors.NewValidationError("start_time", "required for partial-day requests")
		}
		startMinute, err = schedule.ParseClock(req.StartTime)
		if err != nil {
			return nil, apperrors.NewValidationError("start_time", err.Error())
		}
		endMinute, err = schedule.ParseClock(req.EndTime)
		if err != nil {
			return nil, apperrors.NewValidationError("end_time", err.Error())
		}
		if startMinute >= endMinute {
			return nil, apperrors.ErrInvalidTimeRange
		}
	}

	technician, err := s.technicianRepo.GetByID(req.TechnicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTechnicianNotFound
		}
		return nil, fmt.Errorf("failed to get technician: %w", err)
	}

	request := &models.AvailabilityRequest{
		TechnicianID:   req.TechnicianID,
		TechnicianName: technician.FullName(),
		RequestType:    models.AvailabilityRequestType(req.RequestType),
		StartDate:      startDate,
		EndDate:        endDate,
		FullDay:        req.FullDay,
		StartMinute:    startMinute,
		EndMinute:      endMinute,
		Reason:         req.Reason,
		Status:         models.RequestStatusPending,
		RequestedAt:    time.Now(),
	}
	if err := s.requestRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to store availability request: %w", err)
	}

	resp := toRequestResponse(request)
	return &resp, nil
}

// ListRequests returns availability requests, oldest first. An empty status
// selects all; the review panel asks for pending.
func (s *AvailabilityService) ListRequests(status models.AvailabilityRequestStatus) ([]AvailabilityRequestResponse, error) {
	var requests []models.AvailabilityRequest
	var err error
	if status != "" {
		requests, err = s.requestRepo.GetByStatus(status)
	} else {
		requests, err = s.requestRepo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load availability requests: %w", err)
	}

	responses := make([]AvailabilityRequestResponse, len(requests))
	for i := range requests {
		responses[i] = toRequestResponse(&requests[i])
	}
	return responses, nil
}

// ApproveRequest approves a pending request and marks the covered days
// unavailable, replacing whatever availability was stored for them
func (s *AvailabilityService) ApproveRequest(id uuid.UUID, review *ReviewAvailabilityRequestRequest) (*AvailabilityRequestResponse, error) {
	request, err := s.pendingRequest(id, review)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	request.Status = models.RequestStatusApproved
	request.ReviewedBy = review.ReviewedBy
	request.ReviewedAt = &now
	if err := s.requestRepo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update availability request: %w", err)
	}

	for day := request.StartDate; !day.After(request.EndDate); day = day.AddDate(0, 0, 1) {
		if err := s.repo.DeleteByTechnicianAndDate(request.TechnicianID, day); err != nil {
			return nil, fmt.Errorf("failed to replace availability: %w", err)
		}
		block := &models.AvailabilityBlock{
			TechnicianID:    request.TechnicianID,
			TechnicianName:  request.TechnicianName,
			Date:            day,
			StartMinute:     request.StartMinute,
			EndMinute:       request.EndMinute,
			Status:          models.BlockStatusUnavailable,
			UnavailableType: string(request.RequestType),
			Reason:          request.Reason,
			SubmittedAt:     now,
		}
		if err := s.repo.Create(block); err != nil {
			return nil, fmt.Errorf("failed to store availability: %w", err)
		}
	}

	resp := toRequestResponse(request)
	return &resp, nil
}

// RejectRequest rejects a pending request, recording the reviewer's reason
func (s *AvailabilityService) RejectRequest(id uuid.UUID, review *ReviewAvailabilityRequestRequest) (*AvailabilityRequestResponse, error) {
	request, err := s.pendingRequest(id, review)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	request.Status = models.RequestStatusRejected
	request.ReviewedBy = review.ReviewedBy
	request.ReviewedAt = &now
	request.RejectionReason = review.Reason
	if request.RejectionReason == "" {
		request.RejectionReason = "No reason provided"
	}
	if err := s.requestRepo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update availability request: %w", err)
	}

	resp := toRequestResponse(request)
	return &resp, nil
}

// pendingRequest validates the review payload and loads a request that is
// still awaiting review
func (s *AvailabilityService) pendingRequest(id uuid.UUID, review *ReviewAvailabilityRequestRequest) (*models.AvailabilityRequest, error) {
	if err := s.validator.Struct(review); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if review.ReviewedBy == "" {
		review.ReviewedBy = "Admin"
	}

	request, err := s.requestRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAvailabilityRequestNotFound
		}
		return nil, fmt.Errorf("failed to get availability request: %w", err)
	}
	if request.Status != models.RequestStatusPending {
		return nil, apperrors.ErrRequestAlreadyReviewed
	}
	return request, nil
}

func toRequestResponse(r *models.AvailabilityRequest) AvailabilityRequestResponse {
	resp := AvailabilityRequestResponse{
		ID:              r.ID,
		TechnicianID:    r.TechnicianID,
		TechnicianName:  r.TechnicianName,
		RequestType:     r.RequestType,
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		FullDay:         r.FullDay,
		Reason:          r.Reason,
		Status:          r.Status,
		RequestedAt:     r.RequestedAt,
		ReviewedBy:      r.ReviewedBy,
		ReviewedAt:      r.ReviewedAt,
		RejectionReason: r.RejectionReason,
	}
	if !r.FullDay {
		resp.TimeRange = schedule.FormatTimeRange(r.StartMinute, r.EndMinute)
	}
	return resp
}

func toBlockResponse(b *models.AvailabilityBlock) BlockResponse {
	return BlockResponse{
		ID:              b.ID,
		TechnicianID:    b.TechnicianID,
		TechnicianName:  b.TechnicianName,
		Date:            b.Date.Format("2006-01-02"),
		StartTime:       schedule.FormatMinuteOfDay(b.StartMinute),
		EndTime:         schedule.FormatMinuteOfDay(b.EndMinute),
		TimeRange:       schedule.FormatTimeRange(b.StartMinute, b.EndMinute),
		Hours:           schedule.DurationHours(*b),
		Status:          b.Status,
		WorkOrderCode:   b.WorkOrderCode,
		Customer:        b.Customer,
		Service:         b.Service,
		UnavailableType: b.UnavailableType,
		Reason:          b.Reason,
		Notes:           b.Notes,
	}
}
