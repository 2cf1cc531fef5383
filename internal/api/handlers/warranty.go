package handlers

import (
	"errors"
	"net/http"

	apperrors "home-services-backend/internal/errors"
	"home-services-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WarrantyHandler handles HTTP requests for warranty operations
type WarrantyHandler struct {
	warrantyService *service.WarrantyService
}

// NewWarrantyHandler creates a new warranty handler
func NewWarrantyHandler(warrantyService *service.WarrantyService) *WarrantyHandler {
	return &WarrantyHandler{
		warrantyService: warrantyService,
	}
}

// Lookup handles POST /warranty/lookup
// @Summary Look up warranties
// @Description Find the warranties registered to an email or phone number
// @Tags warranty
// @Accept json
// @Produce json
// @Param contact body service.WarrantyLookupRequest true "Email and/or phone"
// @Success 200 {object} service.WarrantyLookupResponse "Warranties found"
// @Failure 400 {object} map[string]interface{} "Email or phone required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /warranty/lookup [post]
func (h *WarrantyHandler) Lookup(c *gin.Context) {
	var req service.WarrantyLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.warrantyService.Lookup(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrContactRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RequestDetails handles POST /warranty/details
// @Summary Request warranty details
// @Description Ask for a warranty's details to be sent to the customer's email
// @Tags warranty
// @Accept json
// @Produce json
// @Param request body service.WarrantyDetailsRequest true "Warranty identifier and contact"
// @Success 200 {object} service.MessageResponse "Request recorded"
// @Failure 400 {object} map[string]interface{} "Email or phone required"
// @Failure 404 {object} map[string]interface{} "Warranty not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /warranty/details [post]
func (h *WarrantyHandler) RequestDetails(c *gin.Context) {
	var req service.WarrantyDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.warrantyService.RequestDetails(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrWarrantyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrContactRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RequestService handles POST /warranty/service
// @Summary File a warranty service claim
// @Description Submit a service request against an existing warranty
// @Tags warranty
// @Accept json
// @Produce json
// @Param claim body service.WarrantyServiceRequest true "Claim details"
// @Success 201 {object} service.MessageResponse "Claim submitted"
// @Failure 400 {object} map[string]interface{} "Invalid claim"
// @Failure 404 {object} map[string]interface{} "Warranty not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /warranty/service [post]
func (h *WarrantyHandler) RequestService(c *gin.Context) {
	var req service.WarrantyServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.warrantyService.RequestService(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrWarrantyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isBadRequest(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}
