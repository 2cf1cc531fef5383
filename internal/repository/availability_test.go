//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"home-services-backend/internal/database/models"
	"home-services-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AvailabilityRepositoryTestSuite tests the AvailabilityRepository
type AvailabilityRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AvailabilityRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AvailabilityRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAvailabilityRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AvailabilityRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AvailabilityRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AvailabilityRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetByDateRange tests that the upper bound is exclusive
func (suite *AvailabilityRepositoryTestSuite) TestGetByDateRange() {
	dates := []time.Time{
		time.Date(2025, time.October, 19, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.October, 25, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		suite.NoError(suite.repo.Create(suite.factories.Availability.WithDate(d)))
	}

	start := time.Date(2025, time.October, 19, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC)
	blocks, err := suite.repo.GetByDateRange(start, end)

	suite.NoError(err)
	suite.Len(blocks, 3)
}

// TestGetByTechnicianAndDateRange tests filtering to one technician
func (suite *AvailabilityRepositoryTestSuite) TestGetByTechnicianAndDateRange() {
	techID := uuid.New()
	mine := suite.factories.Availability.WithTechnician(techID, "Mike Rodriguez")
	other := suite.factories.Availability.Create()
	suite.NoError(suite.repo.Create(mine))
	suite.NoError(suite.repo.Create(other))

	start := time.Date(2025, time.October, 19, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC)
	blocks, err := suite.repo.GetByTechnicianAndDateRange(techID, start, end)

	suite.NoError(err)
	suite.Len(blocks, 1)
	suite.Equal(techID, blocks[0].TechnicianID)
}

// TestGetOverlapping tests minute-range intersection on a day
func (suite *AvailabilityRepositoryTestSuite) TestGetOverlapping() {
	techID := uuid.New()
	day := time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC)

	block := suite.factories.Availability.WithTechnician(techID, "Mike Rodriguez")
	block.Date = day
	block.StartMinute = 9 * 60
	block.EndMinute = 12 * 60
	suite.NoError(suite.repo.Create(block))

	// overlaps 9:00-12:00
	overlapping, err := suite.repo.GetOverlapping(techID, day, 11*60, 14*60)
	suite.NoError(err)
	suite.Len(overlapping, 1)

	// touching ranges do not overlap
	overlapping, err = suite.repo.GetOverlapping(techID, day, 12*60, 14*60)
	suite.NoError(err)
	suite.Empty(overlapping)

	// other technicians are ignored
	overlapping, err = suite.repo.GetOverlapping(uuid.New(), day, 9*60, 12*60)
	suite.NoError(err)
	suite.Empty(overlapping)
}

// TestDeleteByTechnicianAndDate tests the per-day upsert delete
func (suite *AvailabilityRepositoryTestSuite) TestDeleteByTechnicianAndDate() {
	techID := uuid.New()
	day := time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC)

	morning := suite.factories.Availability.WithTechnician(techID, "Mike Rodriguez")
	morning.Date = day
	afternoon := suite.factories.Availability.WithTechnician(techID, "Mike Rodriguez")
	afternoon.Date = day
	afternoon.StartMinute = 13 * 60
	afternoon.EndMinute = 17 * 60
	afternoon.Status = models.BlockStatusUnavailable
	nextDay := suite.factories.Availability.WithTechnician(techID, "Mike Rodriguez")
	nextDay.Date = day.AddDate(0, 0, 1)

	suite.NoError(suite.repo.Create(morning))
	suite.NoError(suite.repo.Create(afternoon))
	suite.NoError(suite.repo.Create(nextDay))

	suite.NoError(suite.repo.DeleteByTechnicianAndDate(techID, day))

	start := time.Date(2025, time.October, 19, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC)
	blocks, err := suite.repo.GetByTechnicianAndDateRange(techID, start, end)
	suite.NoError(err)
	suite.Len(blocks, 1)
	suite.Equal(nextDay.ID, blocks[0].ID)
}

// TestAvailabilityRepositoryTestSuite runs the test suite
func TestAvailabilityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityRepositoryTestSuite))
}
