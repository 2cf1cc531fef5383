package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "home-services-backend/internal/errors"
	"home-services-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkOrderHandler handles HTTP requests for work order operations
type WorkOrderHandler struct {
	workOrderService *service.WorkOrderService
}

// NewWorkOrderHandler creates a new work order handler
func NewWorkOrderHandler(workOrderService *service.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{
		workOrderService: workOrderService,
	}
}

// CreateWorkOrder handles POST /workorders
// @Summary Create a work order
// @Description Create a work order; a sequential code is generated when none is given
// @Tags workorders
// @Accept json
// @Produce json
// @Param workorder body service.CreateWorkOrderRequest true "Work order data"
// @Success 201 {object} service.WorkOrderResponse "Successfully created work order"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Work order already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workorders [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var req service.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.workOrderService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkOrderExists) {
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

	c.JSON(http.StatusCreated, order)
}

// GetWorkOrder handles GET /workorders/:code
// @Summary Get work order by code
// @Description Get a specific work order by its display code
// @Tags workorders
// @Accept json
// @Produce json
// @Param code path string true "Work order code, e.g. WO-2025-001"
// @Success 200 {object} service.WorkOrderResponse "Successfully retrieved work order"
// @Failure 404 {object} map[string]interface{} "Work order not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workorders/{code} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	order, err := h.workOrderService.GetByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}

// ListWorkOrders handles GET /workorders
// @Summary List work orders
// @Description Get work orders with pagination, newest first
// @Tags workorders
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.WorkOrderListResponse "Successfully retrieved work orders"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workorders [get]
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.workOrderService.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateWorkOrderStatus handles PATCH /workorders/:code/status
// @Summary Update a work order's status
// @Description Transition a work order's status, optionally replacing its notes
// @Tags workorders
// @Accept json
// @Produce json
// @Param code path string true "Work order code"
// @Param status body service.UpdateWorkOrderStatusRequest true "New status and optional notes"
// @Success 200 {object} service.WorkOrderResponse "Successfully updated work order"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Work order not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workorders/{code}/status [patch]
func (h *WorkOrderHandler) UpdateWorkOrderStatus(c *gin.Context) {
	var req service.UpdateWorkOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.workOrderService.UpdateStatus(c.Param("code"), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkOrderNotFound) {
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

	c.JSON(http.StatusOK, order)
}

// CancelWorkOrder handles POST /workorders/:code/cancel
// @Summary Cancel a work order
// @Description Mark a work order cancelled
// @Tags workorders
// @Accept json
// @Produce json
// @Param code path string true "Work order code"
// @Success 200 {object} service.WorkOrderResponse "Successfully cancelled work order"
// @Failure 404 {object} map[string]interface{} "Work order not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workorders/{code}/cancel [post]
func (h *WorkOrderHandler) CancelWorkOrder(c *gin.Context) {
	order, err := h.workOrderService.Cancel(c.Param("code"))
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}
