//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"team-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserProfileRepositoryTestSuite tests the UserProfileRepository
type UserProfileRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserProfileRepository
	users         *testutils.UserFactory
	profiles      *testutils.UserProfileFactory
}

func (suite *UserProfileRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserProfileRepository(suite.baseTestSuite.DB)
	suite.users = testutils.NewUserFactory()
	suite.profiles = testutils.NewUserProfileFactory()
}

func (suite *UserProfileRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *UserProfileRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *UserProfileRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserProfileRepositoryTestSuite) TestCreateAndFindByID() {
	user := suite.users.WithLogin("jane")
	suite.Require().NoError(suite.baseTestSuite.DB.Create(user).Error)

	profile := suite.profiles.WithPosition(user.ID, "Tech Lead")
	suite.Require().NoError(suite.repo.Create(profile))

	found, err := suite.repo.FindByID(profile.ID)

	suite.NoError(err)
	suite.Equal("Tech Lead", found.Position)
	suite.Equal("jane", found.User.Login)
}

func (suite *UserProfileRepositoryTestSuite) TestFindByID_NotFound() {
	_, err := suite.repo.FindByID(424242)

	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *UserProfileRepositoryTestSuite) TestFindByUserLogin() {
	user := suite.users.WithLogin("john")
	suite.Require().NoError(suite.baseTestSuite.DB.Create(user).Error)
	profile := suite.profiles.Create(user.ID)
	suite.Require().NoError(suite.repo.Create(profile))

	found, err := suite.repo.FindByUserLogin("john")

	suite.NoError(err)
	suite.Equal(profile.ID, found.ID)
	suite.Equal("john", found.User.Login)
}

func (suite *UserProfileRepositoryTestSuite) TestFindAll() {
	for _, login := range []string{"a-user", "b-user"} {
		user := suite.users.WithLogin(login)
		suite.Require().NoError(suite.baseTestSuite.DB.Create(user).Error)
		suite.Require().NoError(suite.repo.Create(suite.profiles.Create(user.ID)))
	}

	all, err := suite.repo.FindAll()

	suite.NoError(err)
	suite.Len(all, 2)
	suite.NotEmpty(all[0].User.Login)
}

func (suite *UserProfileRepositoryTestSuite) TestDelete() {
	user := suite.users.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(user).Error)
	profile := suite.profiles.Create(user.ID)
	suite.Require().NoError(suite.repo.Create(profile))

	suite.NoError(suite.repo.Delete(profile.ID))

	_, err := suite.repo.FindByID(profile.ID)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUserProfileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserProfileRepositoryTestSuite))
}
