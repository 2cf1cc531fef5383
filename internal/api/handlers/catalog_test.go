package handlers_test

import (
	"net/http"
	"testing"

	"home-services-backend/internal/api/handlers"
	"home-services-backend/internal/repository/memory"
	"home-services-backend/internal/service"
	"home-services-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// CatalogHandlerTestSuite defines the test suite for CatalogHandler
type CatalogHandlerTestSuite struct {
	suite.Suite
	http *testutils.HTTPTestSuite
}

func (suite *CatalogHandlerTestSuite) SetupTest() {
	serviceRepo := memory.NewServiceRepository()
	typeRepo := memory.NewServiceTypeRepository(serviceRepo)
	handler := handlers.NewCatalogHandler(service.NewCatalogService(serviceRepo, typeRepo, validator.New()))

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/api/services", handler.ListServices)
	suite.http.Router.POST("/api/services", handler.CreateService)
	suite.http.Router.PUT("/api/services/:id", handler.UpdateService)
	suite.http.Router.DELETE("/api/services/:id", handler.DeleteService)
	suite.http.Router.GET("/api/service-types", handler.ListServiceTypes)
}

func (suite *CatalogHandlerTestSuite) createService(category, jobName string) service.ServiceResponse {
	recorder := suite.http.MakeRequest(http.MethodPost, "/api/services", service.CreateServiceRequest{
		Category:      category,
		JobName:       jobName,
		JobDesc:       "Test job",
		Price:         250,
		DurationHours: 2,
	})

	var resp struct {
		Success bool                    `json:"success"`
		Message string                  `json:"message"`
		Data    service.ServiceResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	assert.True(suite.T(), resp.Success)
	assert.Equal(suite.T(), "Service created successfully", resp.Message)
	return resp.Data
}

func (suite *CatalogHandlerTestSuite) TestListServices_Envelope() {
	suite.createService("Plumbing", "Drain Cleaning")
	suite.createService("Electrical", "Outlet Install")

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/services", nil)

	var resp struct {
		Success bool                      `json:"success"`
		Data    []service.ServiceResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.True(suite.T(), resp.Success)
	require.Len(suite.T(), resp.Data, 2)
	// ordered by category then job name
	assert.Equal(suite.T(), "Electrical", resp.Data[0].Category)
	assert.Equal(suite.T(), "Outlet Install", resp.Data[0].JobName)
	assert.Equal(suite.T(), "Plumbing", resp.Data[1].Category)
}

func (suite *CatalogHandlerTestSuite) TestCreateService_Duplicate() {
	suite.createService("Plumbing", "Drain Cleaning")

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/services", service.CreateServiceRequest{
		Category: "Plumbing",
		JobName:  "Drain Cleaning",
		Price:    300,
	})

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusConflict, &resp)
	assert.False(suite.T(), resp.Success)
	assert.Contains(suite.T(), resp.Error, "already exists")
}

func (suite *CatalogHandlerTestSuite) TestUpdateService_Success() {
	created := suite.createService("Plumbing", "Drain Cleaning")

	newPrice := 325.0
	recorder := suite.http.MakeRequest(http.MethodPut, "/api/services/"+created.ID.String(), service.UpdateServiceRequest{
		Price: &newPrice,
	})

	var resp struct {
		Success bool                    `json:"success"`
		Message string                  `json:"message"`
		Data    service.ServiceResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.True(suite.T(), resp.Success)
	assert.Equal(suite.T(), "Service updated successfully", resp.Message)
	assert.Equal(suite.T(), 325.0, resp.Data.Price)
}

func (suite *CatalogHandlerTestSuite) TestDeleteService_Success() {
	created := suite.createService("Plumbing", "Drain Cleaning")

	recorder := suite.http.MakeRequest(http.MethodDelete, "/api/services/"+created.ID.String(), nil)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.True(suite.T(), resp.Success)
	assert.Equal(suite.T(), "Service deleted successfully", resp.Message)

	list := suite.http.MakeRequest(http.MethodGet, "/api/services", nil)
	var listResp struct {
		Data []service.ServiceResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), list, http.StatusOK, &listResp)
	assert.Empty(suite.T(), listResp.Data)
}

func (suite *CatalogHandlerTestSuite) TestDeleteService_InvalidID() {
	recorder := suite.http.MakeRequest(http.MethodDelete, "/api/services/not-a-uuid", nil)

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &resp)
	assert.False(suite.T(), resp.Success)
	assert.Equal(suite.T(), "invalid service ID", resp.Error)
}

func (suite *CatalogHandlerTestSuite) TestListServiceTypes_Envelope() {
	suite.createService("Plumbing", "Drain Cleaning")
	suite.createService("Electrical", "Outlet Install")

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/service-types", nil)

	var resp struct {
		Success bool                          `json:"success"`
		Data    []service.ServiceTypeResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.True(suite.T(), resp.Success)
	require.Len(suite.T(), resp.Data, 2)
	assert.Equal(suite.T(), "Electrical", resp.Data[0].Name)
	assert.Equal(suite.T(), "Plumbing", resp.Data[1].Name)
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}
