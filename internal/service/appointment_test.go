package service_test

import (
	"io"
	"testing"
	"time"

	"home-services-backend/internal/database/models"
	apperrors "home-services-backend/internal/errors"
	"home-services-backend/internal/repository/memory"
	"home-services-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AppointmentServiceTestSuite struct {
	suite.Suite
	customerRepo       *memory.CustomerRepository
	serviceRepo        *memory.ServiceRepository
	serviceRequestRepo *memory.ServiceRequestRepository
	technicianRepo     *memory.TechnicianRepository
	workOrderRepo      *memory.WorkOrderRepository
	appointmentService *service.AppointmentService
	validator          *validator.Validate
}

func (suite *AppointmentServiceTestSuite) SetupTest() {
	suite.customerRepo = memory.NewCustomerRepository()
	suite.serviceRepo = memory.NewServiceRepository()
	suite.serviceRequestRepo = memory.NewServiceRequestRepository()
	suite.technicianRepo = memory.NewTechnicianRepository()
	suite.workOrderRepo = memory.NewWorkOrderRepository()
	suite.validator = validator.New()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	suite.appointmentService = service.NewAppointmentService(
		suite.customerRepo,
		suite.serviceRepo,
		suite.serviceRequestRepo,
		suite.technicianRepo,
		suite.workOrderRepo,
		suite.validator,
		logger,
	)
}

func (suite *AppointmentServiceTestSuite) addTechnician(first, last, email string, status models.TechnicianStatus) *models.Technician {
	technician := &models.Technician{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Role:      "HVAC Technician",
		Status:    status,
	}
	suite.Require().NoError(suite.technicianRepo.Create(technician))
	return technician
}

func (suite *AppointmentServiceTestSuite) bookingRequest() *service.CreateAppointmentRequest {
	return &service.CreateAppointmentRequest{
		FirstName:         "Sarah",
		LastName:          "Chen",
		Email:             "sarah.chen@example.com",
		Phone:             "5105550199",
		Address:           "412 Maple Ave",
		City:              "Oakland",
		State:             "CA",
		ZipCode:           "94601",
		Description:       "AC blowing warm air",
		PreferredDateTime: "2025-10-22T09:30",
	}
}

func (suite *AppointmentServiceTestSuite) TestCreate_PhoneMustBeTenDigits() {
	req := suite.bookingRequest()
	req.Phone = "555-0199"

	_, err := suite.appointmentService.Create(req)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *AppointmentServiceTestSuite) TestCreate_AssignsLeastLoadedTechnician() {
	busy := suite.addTechnician("Maria", "Santos", "maria.santos@vargas.com", models.TechnicianStatusActive)
	idle := suite.addTechnician("James", "Wilson", "james.wilson@vargas.com", models.TechnicianStatusActive)

	// two jobs for Maria on the preferred day
	for _, code := range []string{"WO-2025-001", "WO-2025-002"} {
		suite.Require().NoError(suite.workOrderRepo.Create(&models.WorkOrder{
			Code:         code,
			Date:         time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC),
			CustomerName: "Existing Customer",
			Service:      "HVAC Repair",
			TechnicianID: &busy.ID,
		}))
	}

	result, err := suite.appointmentService.Create(suite.bookingRequest())

	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, result.RequestID)
	suite.Require().NotNil(result.Technician)
	assert.Equal(suite.T(), idle.ID, result.Technician.ID)
	assert.Equal(suite.T(), "James Wilson", result.Technician.Name)
}

func (suite *AppointmentServiceTestSuite) TestCreate_TieResolvesDeterministically() {
	suite.addTechnician("Maria", "Santos", "maria.santos@vargas.com", models.TechnicianStatusActive)
	suite.addTechnician("James", "Wilson", "james.wilson@vargas.com", models.TechnicianStatusActive)

	result, err := suite.appointmentService.Create(suite.bookingRequest())

	assert.NoError(suite.T(), err)
	// equal load resolves to the first technician in listing order
	assert.Equal(suite.T(), "Maria Santos", result.Technician.Name)
}

func (suite *AppointmentServiceTestSuite) TestCreate_SkipsOnLeaveTechnicians() {
	suite.addTechnician("Maria", "Santos", "maria.santos@vargas.com", models.TechnicianStatusOnLeave)
	active := suite.addTechnician("James", "Wilson", "james.wilson@vargas.com", models.TechnicianStatusActive)

	result, err := suite.appointmentService.Create(suite.bookingRequest())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), active.ID, result.Technician.ID)
}

func (suite *AppointmentServiceTestSuite) TestCreate_NoTechnicianStillBooks() {
	result, err := suite.appointmentService.Create(suite.bookingRequest())

	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, result.RequestID)
	assert.Nil(suite.T(), result.Technician)

	request, err := suite.serviceRequestRepo.GetByID(result.RequestID)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), request.TechnicianID)
}

func (suite *AppointmentServiceTestSuite) TestCreate_UpsertsCustomerAndAddress() {
	suite.addTechnician("Maria", "Santos", "maria.santos@vargas.com", models.TechnicianStatusActive)

	result, err := suite.appointmentService.Create(suite.bookingRequest())
	suite.Require().NoError(err)

	customer, err := suite.customerRepo.GetByEmail("sarah.chen@example.com")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Sarah Chen", customer.FullName())

	addresses, err := suite.customerRepo.GetAddressesByCustomerID(customer.ID)
	assert.NoError(suite.T(), err)
	suite.Require().Len(addresses, 1)
	assert.Equal(suite.T(), "412 Maple Ave", addresses[0].Street)

	request, err := suite.serviceRequestRepo.GetByID(result.RequestID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), customer.ID, request.CustomerID)
	assert.Equal(suite.T(), addresses[0].ID, *request.AddressID)
	assert.Equal(suite.T(), time.Date(2025, 10, 22, 9, 30, 0, 0, time.UTC), request.PreferredAt)
}

func (suite *AppointmentServiceTestSuite) TestCreate_SecondBookingReusesCustomer() {
	suite.addTechnician("Maria", "Santos", "maria.santos@vargas.com", models.TechnicianStatusActive)

	_, err := suite.appointmentService.Create(suite.bookingRequest())
	suite.Require().NoError(err)

	second := suite.bookingRequest()
	second.Phone = "5105550200"
	second.PreferredDateTime = "2025-10-29T14:00"
	_, err = suite.appointmentService.Create(second)
	suite.Require().NoError(err)

	customers, total, err := suite.customerRepo.GetAll(-1, 0)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), total)
	assert.Equal(suite.T(), "5105550200", customers[0].Phone)
}

func (suite *AppointmentServiceTestSuite) TestCreate_UnknownService() {
	suite.addTechnician("Maria", "Santos", "maria.santos@vargas.com", models.TechnicianStatusActive)

	req := suite.bookingRequest()
	missing := uuid.New()
	req.ServiceID = &missing

	_, err := suite.appointmentService.Create(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrServiceNotFound)
}

func (suite *AppointmentServiceTestSuite) TestCreate_MalformedPreferredDateTime() {
	req := suite.bookingRequest()
	req.PreferredDateTime = "next tuesday"

	_, err := suite.appointmentService.Create(req)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AppointmentServiceTestSuite) TestConfirmation() {
	resp := suite.appointmentService.Confirmation()

	assert.Equal(suite.T(), "/confirmation", resp.Redirect)
}

func TestAppointmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AppointmentServiceTestSuite))
}
