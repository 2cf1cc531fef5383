package handlers

import (
	"errors"
	"net/http"

	apperrors "home-services-backend/internal/errors"
	"home-services-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles the public booking endpoints
type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

// expandedResponse is the booking form's expected envelope
type expandedResponse struct {
	OK     bool                       `json:"ok"`
	Result *service.AppointmentResult `json:"result,omitempty"`
	Error  string                     `json:"error,omitempty"`
}

// CreateExpanded handles POST /workorders/expanded
// @Summary Book an appointment
// @Description Record customer, address and service request in one submission and auto-assign a technician
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body service.CreateAppointmentRequest true "Booking data"
// @Success 201 {object} expandedResponse "Appointment booked"
// @Failure 400 {object} expandedResponse "Invalid booking data"
// @Failure 404 {object} expandedResponse "Referenced service not found"
// @Failure 500 {object} expandedResponse "Internal server error"
// @Router /workorders/expanded [post]
func (h *AppointmentHandler) CreateExpanded(c *gin.Context) {
	var req service.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, expandedResponse{Error: err.Error()})
		return
	}

	result, err := h.appointmentService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, expandedResponse{Error: err.Error()})
			return
		}
		if isBadRequest(err) {
			c.JSON(http.StatusBadRequest, expandedResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, expandedResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, expandedResponse{OK: true, Result: result})
}

// Confirmation handles POST /confirmation
// @Summary Booking confirmation
// @Description Get the redirect target shown after a successful booking
// @Tags appointments
// @Accept json
// @Produce json
// @Success 200 {object} service.ConfirmationResponse "Redirect target"
// @Router /confirmation [post]
func (h *AppointmentHandler) Confirmation(c *gin.Context) {
	c.JSON(http.StatusOK, h.appointmentService.Confirmation())
}
