package service_test

import (
	"testing"

	"home-services-backend/internal/database/models"
	apperrors "home-services-backend/internal/errors"
	"home-services-backend/internal/repository/memory"
	"home-services-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type WorkOrderServiceTestSuite struct {
	suite.Suite
	repo             *memory.WorkOrderRepository
	workOrderService *service.WorkOrderService
	validator        *validator.Validate
}

func (suite *WorkOrderServiceTestSuite) SetupTest() {
	suite.repo = memory.NewWorkOrderRepository()
	suite.validator = validator.New()
	suite.workOrderService = service.NewWorkOrderService(suite.repo, suite.validator, nil)
}

func (suite *WorkOrderServiceTestSuite) createWorkOrder(code, date string) *service.WorkOrderResponse {
	resp, err := suite.workOrderService.Create(&service.CreateWorkOrderRequest{
		Code:         code,
		Date:         date,
		CustomerName: "John Miller",
		Service:      "HVAC Repair",
		Revenue:      450,
		LaborCost:    180,
		MaterialCost: 95,
		DurationHrs:  3.5,
	})
	suite.Require().NoError(err)
	return resp
}

func (suite *WorkOrderServiceTestSuite) TestCreate_ComputesDerivedFields() {
	resp := suite.createWorkOrder("WO-2025-001", "2025-10-06")

	assert.Equal(suite.T(), "WO-2025-001", resp.Code)
	assert.Equal(suite.T(), 275.0, resp.TotalCost)
	assert.Equal(suite.T(), 175.0, resp.Profit)
	assert.Equal(suite.T(), models.WorkOrderStatusPending, resp.Status)
}

func (suite *WorkOrderServiceTestSuite) TestCreate_GeneratesNextCode() {
	suite.createWorkOrder("WO-2025-007", "2025-10-06")

	resp := suite.createWorkOrder("", "2025-10-07")

	assert.Equal(suite.T(), "WO-2025-008", resp.Code)
}

func (suite *WorkOrderServiceTestSuite) TestCreate_CodeSequencesPerYear() {
	suite.createWorkOrder("WO-2024-031", "2024-12-30")

	resp := suite.createWorkOrder("", "2025-01-02")

	assert.Equal(suite.T(), "WO-2025-001", resp.Code)
}

func (suite *WorkOrderServiceTestSuite) TestCreate_DuplicateCode() {
	suite.createWorkOrder("WO-2025-001", "2025-10-06")

	_, err := suite.workOrderService.Create(&service.CreateWorkOrderRequest{
		Code:         "WO-2025-001",
		Date:         "2025-10-07",
		CustomerName: "Sarah Chen",
		Service:      "Plumbing",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderExists)
}

func (suite *WorkOrderServiceTestSuite) TestGetByCode_NotFound() {
	_, err := suite.workOrderService.GetByCode("WO-2025-999")

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderNotFound)
}

func (suite *WorkOrderServiceTestSuite) TestList_NewestFirst() {
	suite.createWorkOrder("WO-2025-001", "2025-10-06")
	suite.createWorkOrder("WO-2025-002", "2025-10-09")

	resp, err := suite.workOrderService.List(1, 20)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), resp.Total)
	assert.Equal(suite.T(), "WO-2025-002", resp.WorkOrders[0].Code)
	assert.Equal(suite.T(), "WO-2025-001", resp.WorkOrders[1].Code)
}

func (suite *WorkOrderServiceTestSuite) TestUpdateStatus_WithNotes() {
	suite.createWorkOrder("WO-2025-001", "2025-10-06")

	resp, err := suite.workOrderService.UpdateStatus("WO-2025-001", &service.UpdateWorkOrderStatusRequest{
		Status: "completed",
		Notes:  "Replaced capacitor, tested cooling cycle",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WorkOrderStatusCompleted, resp.Status)
	assert.Equal(suite.T(), "Replaced capacitor, tested cooling cycle", resp.Notes)
}

func (suite *WorkOrderServiceTestSuite) TestUpdateStatus_InvalidStatus() {
	suite.createWorkOrder("WO-2025-001", "2025-10-06")

	_, err := suite.workOrderService.UpdateStatus("WO-2025-001", &service.UpdateWorkOrderStatusRequest{
		Status: "archived",
	})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *WorkOrderServiceTestSuite) TestCancel() {
	suite.createWorkOrder("WO-2025-001", "2025-10-06")

	resp, err := suite.workOrderService.Cancel("WO-2025-001")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WorkOrderStatusCancelled, resp.Status)
}

func TestWorkOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkOrderServiceTestSuite))
}
