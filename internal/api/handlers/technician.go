package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "home-services-backend/internal/errors"
	"home-services-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TechnicianHandler handles HTTP requests for technician operations
type TechnicianHandler struct {
	technicianService *service.TechnicianService
}

// NewTechnicianHandler creates a new technician handler
func NewTechnicianHandler(technicianService *service.TechnicianService) *TechnicianHandler {
	return &TechnicianHandler{
		technicianService: technicianService,
	}
}

// CreateTechnician handles POST /technicians
// @Summary Create a new technician
// @Description Create a technician with the provided details
// @Tags technicians
// @Accept json
// @Produce json
// @Param technician body service.CreateTechnicianRequest true "Technician data"
// @Success 201 {object} service.TechnicianResponse "Successfully created technician"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Technician already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /technicians [post]
func (h *TechnicianHandler) CreateTechnician(c *gin.Context) {
	var req service.CreateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	technician, err := h.technicianService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTechnicianExists) {
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

	c.JSON(http.StatusCreated, technician)
}

// GetTechnician handles GET /technicians/:id
// @Summary Get technician by ID
// @Description Get a specific technician by its UUID
// @Tags technicians
// @Accept json
// @Produce json
// @Param id path string true "Technician ID (UUID)"
// @Success 200 {object} service.TechnicianResponse "Successfully retrieved technician"
// @Failure 400 {object} map[string]interface{} "Invalid technician ID"
// @Failure 404 {object} map[string]interface{} "Technician not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /technicians/{id} [get]
func (h *TechnicianHandler) GetTechnician(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid technician ID"})
		return
	}

	technician, err := h.technicianService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTechnicianNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, technician)
}

// ListTechnicians handles GET /technicians
// @Summary List technicians
// @Description Get technicians with optional status filtering and pagination
// @Tags technicians
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (active, on-leave)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TechnicianListResponse "Successfully retrieved technicians"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /technicians [get]
func (h *TechnicianHandler) ListTechnicians(c *gin.Context) {
	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.technicianService.List(status, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateTechnician handles PUT /technicians/:id
// @Summary Update a technician
// @Description Update a technician's fields; omitted fields are left unchanged
// @Tags technicians
// @Accept json
// @Produce json
// @Param id path string true "Technician ID (UUID)"
// @Param technician body service.UpdateTechnicianRequest true "Fields to update"
// @Success 200 {object} service.TechnicianResponse "Successfully updated technician"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Technician not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /technicians/{id} [put]
func (h *TechnicianHandler) UpdateTechnician(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid technician ID"})
		return
	}

	var req service.UpdateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	technician, err := h.technicianService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTechnicianNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, technician)
}

// DeleteTechnician handles DELETE /technicians/:id
// @Summary Delete a technician
// @Description Delete a technician by its UUID
// @Tags technicians
// @Accept json
// @Produce json
// @Param id path string true "Technician ID (UUID)"
// @Success 204 "Successfully deleted technician"
// @Failure 400 {object} map[string]interface{} "Invalid technician ID"
// @Failure 404 {object} map[string]interface{} "Technician not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /technicians/{id} [delete]
func (h *TechnicianHandler) DeleteTechnician(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid technician ID"})
		return
	}

	if err := h.technicianService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrTechnicianNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
