//go:build integration
// +build integration

package service_test

import (
	"testing"

	apperrors "team-portal-backend/internal/errors"
	"team-portal-backend/internal/repository"
	"team-portal-backend/internal/service"
	"team-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// UserProfileServiceTestSuite tests the UserProfileService against a real store
type UserProfileServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	svc           *service.UserProfileService
	users         *testutils.UserFactory
	profiles      *testutils.UserProfileFactory
}

func (suite *UserProfileServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	repo := repository.NewUserProfileRepository(suite.baseTestSuite.DB)
	suite.svc = service.NewUserProfileService(repo)
	suite.users = testutils.NewUserFactory()
	suite.profiles = testutils.NewUserProfileFactory()
}

func (suite *UserProfileServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *UserProfileServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *UserProfileServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserProfileServiceTestSuite) createProfile(login, position string) int64 {
	user := suite.users.WithLogin(login)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(user).Error)
	profile := suite.profiles.WithPosition(user.ID, position)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(profile).Error)
	return profile.ID
}

func (suite *UserProfileServiceTestSuite) TestFindAll() {
	suite.createProfile("jane", "Engineer")
	suite.createProfile("john", "Designer")

	all, err := suite.svc.FindAll()

	suite.NoError(err)
	suite.Require().Len(all, 2)
	suite.NotEmpty(all[0].Login)
}

func (suite *UserProfileServiceTestSuite) TestFindOne() {
	id := suite.createProfile("jane", "Engineer")

	dto, err := suite.svc.FindOne(id)

	suite.NoError(err)
	suite.Equal("jane", dto.Login)
	suite.Equal("Engineer", dto.Position)
}

func (suite *UserProfileServiceTestSuite) TestFindOne_NotFound() {
	_, err := suite.svc.FindOne(424242)

	suite.ErrorIs(err, apperrors.ErrUserProfileNotFound)
}

func TestUserProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserProfileServiceTestSuite))
}
