package handlers

import (
	"errors"
	"net/http"
	"time"

	"home-services-backend/internal/database/models"
	apperrors "home-services-backend/internal/errors"
	"home-services-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AvailabilityHandler handles HTTP requests for technician availability
type AvailabilityHandler struct {
	availabilityService *service.AvailabilityService
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(availabilityService *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
	}
}

// SubmitAvailability handles POST /availability
// @Summary Submit availability
// @Description Store a technician's availability for one or more days, replacing prior entries per day
// @Tags availability
// @Accept json
// @Produce json
// @Param availability body service.SubmitAvailabilityRequest true "Availability submission"
// @Success 201 {object} map[string]interface{} "Availability stored"
// @Failure 400 {object} map[string]interface{} "Invalid submission"
// @Failure 404 {object} map[string]interface{} "Technician not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /availability [post]
func (h *AvailabilityHandler) SubmitAvailability(c *gin.Context) {
	var req service.SubmitAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blocks, err := h.availabilityService.Submit(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTechnicianNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNoDatesSelected) ||
			errors.Is(err, apperrors.ErrInvalidTimeRange) ||
			isBadRequest(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"blocks": blocks, "total": len(blocks)})
}

// GetTimesheet handles GET /timesheet
// @Summary Get a two-week timesheet
// @Description Get the availability blocks of the two-week window containing the anchor date
// @Tags availability
// @Accept json
// @Produce json
// @Param date query string false "Anchor date (YYYY-MM-DD), defaults to today"
// @Param technician_id query string false "Filter by technician (UUID)"
// @Param status query string false "Filter by status (available, assigned, unavailable)"
// @Success 200 {object} service.TimesheetResponse "Timesheet window"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /timesheet [get]
func (h *AvailabilityHandler) GetTimesheet(c *gin.Context) {
	anchor, technicianID, ok := h.windowParams(c)
	if !ok {
		return
	}

	resp, err := h.availabilityService.Timesheet(anchor, technicianID, models.BlockStatus(c.Query("status")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetOverlaps handles GET /timesheet/overlaps
// @Summary Find scheduling conflicts
// @Description List conflicting same-day block pairs inside the two-week window
// @Tags availability
// @Accept json
// @Produce json
// @Param date query string false "Anchor date (YYYY-MM-DD), defaults to today"
// @Param technician_id query string false "Filter by technician (UUID)"
// @Success 200 {object} map[string]interface{} "Conflicting pairs"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /timesheet/overlaps [get]
func (h *AvailabilityHandler) GetOverlaps(c *gin.Context) {
	anchor, technicianID, ok := h.windowParams(c)
	if !ok {
		return
	}

	overlaps, err := h.availabilityService.Overlaps(anchor, technicianID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"overlaps": overlaps, "total": len(overlaps)})
}

// CreateAvailabilityRequest handles POST /availability-requests
// @Summary File an availability request
// @Description Submit a time-off, sick-leave, personal-day or availability-change request for review
// @Tags availability
// @Accept json
// @Produce json
// @Param request body service.CreateAvailabilityRequestRequest true "Availability request"
// @Success 201 {object} service.AvailabilityRequestResponse "Request filed"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Technician not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /availability-requests [post]
func (h *AvailabilityHandler) CreateAvailabilityRequest(c *gin.Context) {
	var req service.CreateAvailabilityRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.availabilityService.CreateRequest(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTechnicianNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidDateRange) ||
			errors.Is(err, apperrors.ErrInvalidTimeRange) ||
			isBadRequest(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListAvailabilityRequests handles GET /availability-requests
// @Summary List availability requests
// @Description Get availability requests, oldest first, optionally filtered by review status
// @Tags availability
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Success 200 {object} map[string]interface{} "Availability requests"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /availability-requests [get]
func (h *AvailabilityHandler) ListAvailabilityRequests(c *gin.Context) {
	requests, err := h.availabilityService.ListRequests(models.AvailabilityRequestStatus(c.Query("status")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests, "total": len(requests)})
}

// ApproveAvailabilityRequest handles POST /availability-requests/:id/approve
// @Summary Approve an availability request
// @Description Approve a pending request and mark the covered days unavailable
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param review body service.ReviewAvailabilityRequestRequest false "Reviewer details"
// @Success 200 {object} service.AvailabilityRequestResponse "Request approved"
// @Failure 400 {object} map[string]interface{} "Invalid request ID"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Failure 409 {object} map[string]interface{} "Request already reviewed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /availability-requests/{id}/approve [post]
func (h *AvailabilityHandler) ApproveAvailabilityRequest(c *gin.Context) {
	h.reviewRequest(c, h.availabilityService.ApproveRequest)
}

// RejectAvailabilityRequest handles POST /availability-requests/:id/reject
// @Summary Reject an availability request
// @Description Reject a pending request, recording the reviewer's reason
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param review body service.ReviewAvailabilityRequestRequest false "Reviewer details"
// @Success 200 {object} service.AvailabilityRequestResponse "Request rejected"
// @Failure 400 {object} map[string]interface{} "Invalid request ID"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Failure 409 {object} map[string]interface{} "Request already reviewed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /availability-requests/{id}/reject [post]
func (h *AvailabilityHandler) RejectAvailabilityRequest(c *gin.Context) {
	h.reviewRequest(c, h.availabilityService.RejectRequest)
}

// reviewRequest runs the shared approve/reject plumbing. The review body is
// optional; an absent body reviews as "Admin" with no reason.
func (h *AvailabilityHandler) reviewRequest(c *gin.Context, decide func(uuid.UUID, *service.ReviewAvailabilityRequestRequest) (*service.AvailabilityRequestResponse, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}

	var review service.ReviewAvailabilityRequestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&review); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	request, err := decide(id, &review)
	if err != nil {
		if errors.Is(err, apperrors.ErrAvailabilityRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrRequestAlreadyReviewed) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if isBadRequest(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, request)
}

// windowParams parses the shared anchor-date and technician filters
func (h *AvailabilityHandler) windowParams(c *gin.Context) (time.Time, uuid.UUID, bool) {
	anchor := time.Now()
	if ds := c.Query("date"); ds != "" {
		parsed, err := time.Parse("2006-01-02", ds)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return time.Time{}, uuid.Nil, false
		}
		anchor = parsed
	}

	technicianID := uuid.Nil
	if ts := c.Query("technician_id"); ts != "" {
		parsed, err := uuid.Parse(ts)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid technician ID"})
			return time.Time{}, uuid.Nil, false
		}
		technicianID = parsed
	}

	return anchor, technicianID, true
}
