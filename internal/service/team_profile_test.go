//go:build integration
// +build integration

package service_test

import (
	"errors"
	"testing"

	"team-portal-backend/internal/auth"
	"team-portal-backend/internal/database/models"
	apperrors "team-portal-backend/internal/errors"
	"team-portal-backend/internal/repository"
	"team-portal-backend/internal/service"
	"team-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

// TeamProfileServiceTestSuite tests the TeamProfileService against a real store
type TeamProfileServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *repository.TeamProfileRepository
	svc           *service.TeamProfileService
	users         *testutils.UserFactory
	profiles      *testutils.UserProfileFactory
	teams         *testutils.TeamProfileFactory

	admin     *auth.Caller
	member    *auth.Caller
	outsider  *auth.Caller
	anonymous *auth.Caller
}

func (suite *TeamProfileServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = repository.NewTeamProfileRepository(suite.baseTestSuite.DB)
	suite.svc = service.NewTeamProfileService(suite.repo, validator.New())
	suite.users = testutils.NewUserFactory()
	suite.profiles = testutils.NewUserProfileFactory()
	suite.teams = testutils.NewTeamProfileFactory()

	suite.admin = &auth.Caller{Login: "admin", Authorities: []string{models.RoleUser, models.RoleAdmin}}
	suite.member = &auth.Caller{Login: "jane", Authorities: []string{models.RoleUser}}
	suite.outsider = &auth.Caller{Login: "outsider", Authorities: []string{models.RoleUser}}
	suite.anonymous = nil
}

func (suite *TeamProfileServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TeamProfileServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *TeamProfileServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createTeamWithMember persists a team whose only member's user login is login
func (suite *TeamProfileServiceTestSuite) createTeamWithMember(login string) *models.TeamProfile {
	user := suite.users.WithLogin(login)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(user).Error)
	profile := suite.profiles.Create(user.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(profile).Error)

	team := suite.teams.WithMembers(*profile)
	suite.Require().NoError(suite.repo.Create(team))
	return team
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

// ---- Save ----

func (suite *TeamProfileServiceTestSuite) TestSave_AdminCreates() {
	dto, err := suite.svc.Save(suite.admin, &service.TeamProfileDTO{Name: "Platform", Description: "infra"})

	suite.NoError(err)
	suite.Require().NotNil(dto.ID)
	suite.NotZero(*dto.ID)
	suite.Equal("Platform", dto.Name)
	suite.NotEmpty(dto.CreatedAt)
}

func (suite *TeamProfileServiceTestSuite) TestSave_IDAlreadySet() {
	_, err := suite.svc.Save(suite.admin, &service.TeamProfileDTO{ID: int64Ptr(9), Name: "Platform"})

	suite.ErrorIs(err, apperrors.ErrIDAlreadySet)
	suite.True(apperrors.IsValidation(err))
}

func (suite *TeamProfileServiceTestSuite) TestSave_NonAdminRejected() {
	_, err := suite.svc.Save(suite.member, &service.TeamProfileDTO{Name: "Platform"})

	suite.ErrorIs(err, apperrors.ErrAdminRequired)

	// Nothing was written
	all, findErr := suite.svc.FindAll()
	suite.NoError(findErr)
	suite.Empty(all)
}

func (suite *TeamProfileServiceTestSuite) TestSave_AnonymousRejected() {
	_, err := suite.svc.Save(suite.anonymous, &service.TeamProfileDTO{Name: "Platform"})

	suite.ErrorIs(err, apperrors.ErrAdminRequired)
}

func (suite *TeamProfileServiceTestSuite) TestSave_ValidationBeforeAuthorization() {
	// A non-admin with an invalid body sees the validation error, not the role error
	_, err := suite.svc.Save(suite.member, &service.TeamProfileDTO{Name: ""})

	suite.True(apperrors.IsValidation(err))
	suite.False(apperrors.IsAuthorization(err))
}

// ---- Update ----

func (suite *TeamProfileServiceTestSuite) TestUpdate_AdminReplacesFields() {
	team := suite.createTeamWithMember("jane")

	dto, err := suite.svc.Update(suite.admin, team.ID, &service.TeamProfileDTO{
		ID:   int64Ptr(team.ID),
		Name: "Renamed",
	})

	suite.NoError(err)
	suite.Equal("Renamed", dto.Name)
	// Full replacement: omitted description is cleared
	suite.Empty(dto.Description)
}

func (suite *TeamProfileServiceTestSuite) TestUpdate_MemberWithoutAdminRole() {
	team := suite.createTeamWithMember("jane")

	dto, err := suite.svc.Update(suite.member, team.ID, &service.TeamProfileDTO{
		ID:   int64Ptr(team.ID),
		Name: "Member Renamed",
	})

	suite.NoError(err)
	suite.Equal("Member Renamed", dto.Name)
}

func (suite *TeamProfileServiceTestSuite) TestUpdate_OutsiderRejectedStoreUnchanged() {
	team := suite.createTeamWithMember("jane")

	_, err := suite.svc.Update(suite.outsider, team.ID, &service.TeamProfileDTO{
		ID:   int64Ptr(team.ID),
		Name: "Hijacked",
	})

	suite.ErrorIs(err, apperrors.ErrAdminOrMemberRequired)
	suite.True(apperrors.IsAuthorization(err))

	stored, findErr := suite.svc.FindOne(team.ID)
	suite.NoError(findErr)
	suite.Equal(team.Name, stored.Name)
}

func (suite *TeamProfileServiceTestSuite) TestUpdate_NotFoundBeforeAuthorization() {
	// An outsider probing an absent ID gets 404 semantics, not the role error
	_, err := suite.svc.Update(suite.outsider, 424242, &service.TeamProfileDTO{
		ID:   int64Ptr(424242),
		Name: "Ghost",
	})

	suite.ErrorIs(err, apperrors.ErrTeamProfileNotFound)
	suite.False(apperrors.IsAuthorization(err))
}

func (suite *TeamProfileServiceTestSuite) TestUpdate_MembershipDecidedOnStoredEntity() {
	// The caller cannot grant themselves access through the request body;
	// membership comes from the stored member set only.
	team := suite.createTeamWithMember("jane")

	_, err := suite.svc.Update(suite.outsider, team.ID, &service.TeamProfileDTO{
		ID:   int64Ptr(team.ID),
		Name: "Hijacked",
		TeamMembers: []service.TeamMemberDTO{
			{Login: "outsider"},
		},
	})

	suite.ErrorIs(err, apperrors.ErrAdminOrMemberRequired)
}

// ---- PartialUpdate ----

func (suite *TeamProfileServiceTestSuite) TestPartialUpdate_MergesOnlyPresentFields() {
	team := suite.createTeamWithMember("jane")

	dto, err := suite.svc.PartialUpdate(suite.member, team.ID, &service.PartialTeamProfileDTO{
		ID:          int64Ptr(team.ID),
		Description: strPtr("new description"),
	})

	suite.NoError(err)
	suite.Equal(team.Name, dto.Name)
	suite.Equal("new description", dto.Description)
	suite.Equal(team.GithubOrg, dto.GithubOrg)
}

func (suite *TeamProfileServiceTestSuite) TestPartialUpdate_ExplicitEmptyClearsField() {
	team := suite.createTeamWithMember("jane")

	dto, err := suite.svc.PartialUpdate(suite.admin, team.ID, &service.PartialTeamProfileDTO{
		ID:          int64Ptr(team.ID),
		Description: strPtr(""),
	})

	suite.NoError(err)
	suite.Empty(dto.Description)
	suite.Equal(team.Name, dto.Name)
}

func (suite *TeamProfileServiceTestSuite) TestPartialUpdate_NotFound() {
	_, err := suite.svc.PartialUpdate(suite.admin, 424242, &service.PartialTeamProfileDTO{
		ID: int64Ptr(424242),
	})

	suite.ErrorIs(err, apperrors.ErrTeamProfileNotFound)
}

func (suite *TeamProfileServiceTestSuite) TestPartialUpdate_OutsiderRejected() {
	team := suite.createTeamWithMember("jane")

	_, err := suite.svc.PartialUpdate(suite.outsider, team.ID, &service.PartialTeamProfileDTO{
		ID:   int64Ptr(team.ID),
		Name: strPtr("Hijacked"),
	})

	suite.ErrorIs(err, apperrors.ErrAdminOrMemberRequired)
}

// ---- FindAll / FindOne ----

func (suite *TeamProfileServiceTestSuite) TestFindAll_NoCallerNeeded() {
	suite.createTeamWithMember("jane")
	suite.Require().NoError(suite.repo.Create(suite.teams.WithName("Second")))

	all, err := suite.svc.FindAll()

	suite.NoError(err)
	suite.Len(all, 2)
}

func (suite *TeamProfileServiceTestSuite) TestFindOne_IncludesMembers() {
	team := suite.createTeamWithMember("jane")

	dto, err := suite.svc.FindOne(team.ID)

	suite.NoError(err)
	suite.Require().Len(dto.TeamMembers, 1)
	suite.Equal("jane", dto.TeamMembers[0].Login)
}

func (suite *TeamProfileServiceTestSuite) TestFindOne_NotFound() {
	_, err := suite.svc.FindOne(424242)

	suite.ErrorIs(err, apperrors.ErrTeamProfileNotFound)
}

// ---- Delete ----

func (suite *TeamProfileServiceTestSuite) TestDelete_Admin() {
	team := suite.createTeamWithMember("jane")

	suite.NoError(suite.svc.Delete(suite.admin, team.ID))

	_, err := suite.svc.FindOne(team.ID)
	suite.ErrorIs(err, apperrors.ErrTeamProfileNotFound)
}

func (suite *TeamProfileServiceTestSuite) TestDelete_AbsentIDSucceeds() {
	suite.NoError(suite.svc.Delete(suite.admin, 424242))
}

func (suite *TeamProfileServiceTestSuite) TestDelete_Idempotent() {
	team := suite.createTeamWithMember("jane")

	suite.NoError(suite.svc.Delete(suite.admin, team.ID))
	suite.NoError(suite.svc.Delete(suite.admin, team.ID))
}

func (suite *TeamProfileServiceTestSuite) TestDelete_MemberRejected() {
	// Members may edit but never delete; delete is admin only
	team := suite.createTeamWithMember("jane")

	err := suite.svc.Delete(suite.member, team.ID)

	suite.ErrorIs(err, apperrors.ErrAdminRequired)

	_, findErr := suite.svc.FindOne(team.ID)
	suite.NoError(findErr)
}

func (suite *TeamProfileServiceTestSuite) TestDelete_RoleCheckBeforeExistence() {
	// Non-admins are rejected even for IDs that do not exist
	err := suite.svc.Delete(suite.outsider, 424242)

	suite.ErrorIs(err, apperrors.ErrAdminRequired)
	suite.False(errors.Is(err, apperrors.ErrTeamProfileNotFound))
}

func TestTeamProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamProfileServiceTestSuite))
}
