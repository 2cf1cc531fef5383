//go:build integration
// +build integration

package repository

import (
	"testing"

	"home-services-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// WarrantyRepositoryTestSuite tests the WarrantyRepository
type WarrantyRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WarrantyRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *WarrantyRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewWarrantyRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *WarrantyRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WarrantyRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *WarrantyRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetByContact tests warranty lookup by email and phone
func (suite *WarrantyRepositoryTestSuite) TestGetByContact() {
	byEmail := suite.factories.Warranty.WithContact("john.smith@example.com", "")
	byPhone := suite.factories.Warranty.WithContact("", "555-0199")
	both := suite.factories.Warranty.WithContact("john.smith@example.com", "555-0199")
	unrelated := suite.factories.Warranty.WithContact("someone.else@example.com", "555-0000")

	suite.NoError(suite.repo.Create(byEmail))
	suite.NoError(suite.repo.Create(byPhone))
	suite.NoError(suite.repo.Create(both))
	suite.NoError(suite.repo.Create(unrelated))

	// email only
	warranties, err := suite.repo.GetByContact("john.smith@example.com", "")
	suite.NoError(err)
	suite.Len(warranties, 2)

	// phone only
	warranties, err = suite.repo.GetByContact("", "555-0199")
	suite.NoError(err)
	suite.Len(warranties, 2)

	// either matches
	warranties, err = suite.repo.GetByContact("john.smith@example.com", "555-0199")
	suite.NoError(err)
	suite.Len(warranties, 3)

	// neither provided
	warranties, err = suite.repo.GetByContact("", "")
	suite.NoError(err)
	suite.Empty(warranties)
}

// TestGetByWorkOrderCode tests warranty lookup by work order
func (suite *WarrantyRepositoryTestSuite) TestGetByWorkOrderCode() {
	warranty := suite.factories.Warranty.Create()
	warranty.WorkOrderCode = "WO-2025-010"
	suite.NoError(suite.repo.Create(warranty))

	found, err := suite.repo.GetByWorkOrderCode("WO-2025-010")
	suite.NoError(err)
	suite.Equal(warranty.ID, found.ID)

	_, err = suite.repo.GetByWorkOrderCode("WO-2025-404")
	suite.Error(err)
}

// TestWarrantyRepositoryTestSuite runs the test suite
func TestWarrantyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WarrantyRepositoryTestSuite))
}
