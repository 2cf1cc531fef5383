package service_test

import (
	"testing"
	"time"

	"home-services-backend/internal/database/models"
	apperrors "home-services-backend/internal/errors"
	"home-services-backend/internal/repository/memory"
	"home-services-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AvailabilityServiceTestSuite struct {
	suite.Suite
	repo                *memory.AvailabilityRepository
	requestRepo         *memory.AvailabilityRequestRepository
	technicianRepo      *memory.TechnicianRepository
	availabilityService *service.AvailabilityService
	validator           *validator.Validate
	technicianID        uuid.UUID
}

func (suite *AvailabilityServiceTestSuite) SetupTest() {
	suite.repo = memory.NewAvailabilityRepository()
	suite.requestRepo = memory.NewAvailabilityRequestRepository()
	suite.technicianRepo = memory.NewTechnicianRepository()
	suite.validator = validator.New()
	suite.availabilityService = service.NewAvailabilityService(suite.repo, suite.requestRepo, suite.technicianRepo, suite.validator)

	technician := &models.Technician{
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     "maria.santos@vargas.com",
		Role:      "HVAC Technician",
		Status:    models.TechnicianStatusActive,
	}
	suite.Require().NoError(suite.technicianRepo.Create(technician))
	suite.technicianID = technician.ID
}

// anchor is a Wednesday; its two-week window runs Sunday Oct 19 through
// Saturday Nov 1, 2025.
var availabilityAnchor = time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC)

func (suite *AvailabilityServiceTestSuite) submit(dates []string, start, end string) ([]service.BlockResponse, error) {
	return suite.availabilityService.Submit(&service.SubmitAvailabilityRequest{
		TechnicianID: suite.technicianID,
		Dates:        dates,
		StartTime:    start,
		EndTime:      end,
	})
}

func (suite *AvailabilityServiceTestSuite) TestSubmit_MultipleDates() {
	blocks, err := suite.submit([]string{"2025-10-20", "2025-10-21"}, "08:00", "16:00")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), blocks, 2)
	assert.Equal(suite.T(), "2025-10-20", blocks[0].Date)
	assert.Equal(suite.T(), "8:00 AM", blocks[0].StartTime)
	assert.Equal(suite.T(), "4:00 PM", blocks[0].EndTime)
	assert.Equal(suite.T(), 8, blocks[0].Hours)
	assert.Equal(suite.T(), models.BlockStatusAvailable, blocks[0].Status)
	assert.Equal(suite.T(), "Maria Santos", blocks[0].TechnicianName)
}

func (suite *AvailabilityServiceTestSuite) TestSubmit_ReplacesExistingDay() {
	_, err := suite.submit([]string{"2025-10-20"}, "08:00", "16:00")
	suite.Require().NoError(err)

	_, err = suite.submit([]string{"2025-10-20"}, "10:00", "14:00")
	suite.Require().NoError(err)

	timesheet, err := suite.availabilityService.Timesheet(availabilityAnchor, suite.technicianID, "")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), timesheet.Blocks, 1)
	assert.Equal(suite.T(), "10:00 AM - 2:00 PM", timesheet.Blocks[0].TimeRange)
}

func (suite *AvailabilityServiceTestSuite) TestSubmit_NoDatesSelected() {
	_, err := suite.submit(nil, "08:00", "16:00")

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoDatesSelected)
}

func (suite *AvailabilityServiceTestSuite) TestSubmit_InvalidTimeRange() {
	_, err := suite.submit([]string{"2025-10-20"}, "16:00", "08:00")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)
}

func (suite *AvailabilityServiceTestSuite) TestSubmit_UnknownTechnician() {
	_, err := suite.availabilityService.Submit(&service.SubmitAvailabilityRequest{
		TechnicianID: uuid.New(),
		Dates:        []string{"2025-10-20"},
		StartTime:    "08:00",
		EndTime:      "16:00",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTechnicianNotFound)
}

func (suite *AvailabilityServiceTestSuite) TestTimesheet_WindowAndStatusFilter() {
	_, err := suite.submit([]string{"2025-10-20"}, "08:00", "16:00")
	suite.Require().NoError(err)

	// outside the window containing the anchor
	_, err = suite.submit([]string{"2025-11-05"}, "08:00", "16:00")
	suite.Require().NoError(err)

	// unavailable day inside the window
	_, err = suite.availabilityService.Submit(&service.SubmitAvailabilityRequest{
		TechnicianID:    suite.technicianID,
		Dates:           []string{"2025-10-24"},
		StartTime:       "08:00",
		EndTime:         "16:00",
		Status:          "unavailable",
		UnavailableType: "vacation",
	})
	suite.Require().NoError(err)

	timesheet, err := suite.availabilityService.Timesheet(availabilityAnchor, suite.technicianID, "")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2025-10-19", timesheet.PeriodStart)
	assert.Equal(suite.T(), "2025-11-01", timesheet.PeriodEnd)
	assert.Len(suite.T(), timesheet.Blocks, 1)
	assert.Equal(suite.T(), "2025-10-20", timesheet.Blocks[0].Date)

	unavailable, err := suite.availabilityService.Timesheet(availabilityAnchor, suite.technicianID, models.BlockStatusUnavailable)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), unavailable.Blocks, 1)
	assert.Equal(suite.T(), "2025-10-24", unavailable.Blocks[0].Date)
	assert.Equal(suite.T(), "vacation", unavailable.Blocks[0].UnavailableType)
}

func (suite *AvailabilityServiceTestSuite) TestOverlaps_ReportsConflictingPairs() {
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	first := &models.AvailabilityBlock{
		TechnicianID:   suite.technicianID,
		TechnicianName: "Maria Santos",
		Date:           date,
		StartMinute:    8 * 60,
		EndMinute:      12 * 60,
		Status:         models.BlockStatusAvailable,
	}
	second := &models.AvailabilityBlock{
		TechnicianID:   suite.technicianID,
		TechnicianName: "Maria Santos",
		Date:           date,
		StartMinute:    11 * 60,
		EndMinute:      15 * 60,
		Status:         models.BlockStatusAssigned,
	}
	suite.Require().NoError(suite.repo.Create(first))
	suite.Require().NoError(suite.repo.Create(second))

	overlaps, err := suite.availabilityService.Overlaps(availabilityAnchor, suite.technicianID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), overlaps, 1)
	assert.Equal(suite.T(), "2025-10-20", overlaps[0].Date)
	assert.Equal(suite.T(), "8:00 AM - 12:00 PM", overlaps[0].First)
	assert.Equal(suite.T(), "11:00 AM - 3:00 PM", overlaps[0].Second)
}

func (suite *AvailabilityServiceTestSuite) TestOverlaps_TouchingBlocksDoNotConflict() {
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	suite.Require().NoError(suite.repo.Create(&models.AvailabilityBlock{
		TechnicianID: suite.technicianID,
		Date:         date,
		StartMinute:  8 * 60,
		EndMinute:    12 * 60,
		Status:       models.BlockStatusAvailable,
	}))
	suite.Require().NoError(suite.repo.Create(&models.AvailabilityBlock{
		TechnicianID: suite.technicianID,
		Date:         date,
		StartMinute:  12 * 60,
		EndMinute:    16 * 60,
		Status:       models.BlockStatusAvailable,
	}))

	overlaps, err := suite.availabilityService.Overlaps(availabilityAnchor, suite.technicianID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), overlaps, 0)
}

func TestAvailabilityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityServiceTestSuite))
}
