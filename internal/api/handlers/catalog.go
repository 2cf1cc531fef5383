package handlers

import (
	"errors"
	"net/http"

	apperrors "home-services-backend/internal/errors"
	"home-services-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler handles HTTP requests for the service catalog. The
// services family keeps the booking pages' envelope: {success, data} on
// reads, {success, message} on writes, {success: false, error} on failure.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func catalogError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}

// CreateService handles POST /services
// @Summary Create a catalog service
// @Description Create a bookable service; its category is created on first use
// @Tags catalog
// @Accept json
// @Produce json
// @Param service body service.CreateServiceRequest true "Service data"
// @Success 201 {object} map[string]interface{} "Successfully created service"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Service already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req service.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		catalogError(c, http.StatusBadRequest, err)
		return
	}

	svc, err := h.catalogService.CreateService(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrServiceExists) {
			catalogError(c, http.StatusConflict, err)
			return
		}
		if isBadRequest(err) {
			catalogError(c, http.StatusBadRequest, err)
			return
		}
		catalogError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Service created successfully",
		"data":    svc,
	})
}

// GetService handles GET /services/:id
// @Summary Get service by ID
// @Description Get a specific catalog service by its UUID
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Service ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved service"
// @Failure 400 {object} map[string]interface{} "Invalid service ID"
// @Failure 404 {object} map[string]interface{} "Service not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		catalogError(c, http.StatusBadRequest, errors.New("invalid service ID"))
		return
	}

	svc, err := h.catalogService.GetService(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrServiceNotFound) {
			catalogError(c, http.StatusNotFound, err)
			return
		}
		catalogError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": svc})
}

// ListServices handles GET /services
// @Summary List the service catalog
// @Description Get all catalog services ordered by category then job name
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Successfully retrieved services"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalogService.ListServices()
	if err != nil {
		catalogError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": services})
}

// UpdateService handles PUT /services/:id
// @Summary Update a catalog service
// @Description Update a service's fields; omitted fields are left unchanged
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Service ID (UUID)"
// @Param service body service.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Successfully updated service"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Service not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		catalogError(c, http.StatusBadRequest, errors.New("invalid service ID"))
		return
	}

	var req service.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		catalogError(c, http.StatusBadRequest, err)
		return
	}

	svc, err := h.catalogService.UpdateService(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrServiceNotFound) {
			catalogError(c, http.StatusNotFound, err)
			return
		}
		if isBadRequest(err) {
			catalogError(c, http.StatusBadRequest, err)
			return
		}
		catalogError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service updated successfully",
		"data":    svc,
	})
}

// DeleteService handles DELETE /services/:id
// @Summary Delete a catalog service
// @Description Delete a catalog service by its UUID
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Service ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted service"
// @Failure 400 {object} map[string]interface{} "Invalid service ID"
// @Failure 404 {object} map[string]interface{} "Service not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		catalogError(c, http.StatusBadRequest, errors.New("invalid service ID"))
		return
	}

	if err := h.catalogService.DeleteService(id); err != nil {
		if errors.Is(err, apperrors.ErrServiceNotFound) {
			catalogError(c, http.StatusNotFound, err)
			return
		}
		catalogError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service deleted successfully",
	})
}

// ListServiceTypes handles GET /service-types
// @Summary List service types
// @Description Get all service categories ordered by name
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Successfully retrieved service types"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /service-types [get]
func (h *CatalogHandler) ListServiceTypes(c *gin.Context) {
	types, err := h.catalogService.ListServiceTypes()
	if err != nil {
		catalogError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": types})
}
