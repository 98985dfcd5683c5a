package handlers_test

import (
	"net/http"
	"testing"

	"team-portal-backend/internal/api/handlers"
	"team-portal-backend/internal/auth"
	apperrors "team-portal-backend/internal/errors"
	"team-portal-backend/internal/mocks"
	"team-portal-backend/internal/service"
	"team-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamProfileHandlerTestSuite defines the test suite for TeamProfileHandler
type TeamProfileHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamProfileServiceInterface
	handler     *handlers.TeamProfileHandler
	http        *testutils.HTTPTestSuite
	caller      *auth.Caller
}

func (suite *TeamProfileHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamProfileServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamProfileHandler(suite.mockService)
	suite.caller = nil

	suite.http = testutils.SetupHTTPTest()
	// The caller field is read per request so each test can swap identities
	suite.http.Router.Use(func(c *gin.Context) {
		auth.WithCaller(suite.caller)(c)
	})
	suite.http.Router.GET("/team-profiles", suite.handler.GetAllTeamProfiles)
	suite.http.Router.POST("/team-profiles", suite.handler.CreateTeamProfile)
	suite.http.Router.GET("/team-profiles/:id", suite.handler.GetTeamProfile)
	suite.http.Router.PUT("/team-profiles/:id", suite.handler.UpdateTeamProfile)
	suite.http.Router.PATCH("/team-profiles/:id", suite.handler.PartialUpdateTeamProfile)
	suite.http.Router.DELETE("/team-profiles/:id", suite.handler.DeleteTeamProfile)
}

func (suite *TeamProfileHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamProfileHandlerTestSuite) asAdmin() *auth.Caller {
	suite.caller = &auth.Caller{Login: "admin", Authorities: []string{"ROLE_ADMIN", "ROLE_USER"}}
	return suite.caller
}

func (suite *TeamProfileHandlerTestSuite) asUser(login string) *auth.Caller {
	suite.caller = &auth.Caller{Login: login, Authorities: []string{"ROLE_USER"}}
	return suite.caller
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func (suite *TeamProfileHandlerTestSuite) TestCreateTeamProfile_Success() {
	caller := suite.asAdmin()
	created := &service.TeamProfileDTO{ID: int64Ptr(7), Name: "Platform"}
	suite.mockService.EXPECT().
		Save(caller, gomock.Any()).
		DoAndReturn(func(_ *auth.Caller, dto *service.TeamProfileDTO) (*service.TeamProfileDTO, error) {
			assert.Nil(suite.T(), dto.ID)
			assert.Equal(suite.T(), "Platform", dto.Name)
			return created, nil
		})

	w := suite.http.MakeRequest(http.MethodPost, "/team-profiles", service.TeamProfileDTO{Name: "Platform"})

	var got service.TeamProfileDTO
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.Equal(suite.T(), int64(7), *got.ID)
	assert.Equal(suite.T(), "/api/team-profiles/7", w.Header().Get("Location"))
	assert.Equal(suite.T(), "teamPortalApp.teamProfile.created", w.Header().Get("X-teamPortalApp-alert"))
	assert.Equal(suite.T(), "7", w.Header().Get("X-teamPortalApp-params"))
}

func (suite *TeamProfileHandlerTestSuite) TestCreateTeamProfile_IDAlreadySet() {
	caller := suite.asAdmin()
	suite.mockService.EXPECT().
		Save(caller, gomock.Any()).
		Return(nil, apperrors.ErrIDAlreadySet)

	w := suite.http.MakeRequest(http.MethodPost, "/team-profiles", service.TeamProfileDTO{ID: int64Ptr(3), Name: "Platform"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "cannot already have an ID")
	assert.Empty(suite.T(), w.Header().Get("X-teamPortalApp-alert"))
}

func (suite *TeamProfileHandlerTestSuite) TestCreateTeamProfile_NonAdminRejected() {
	caller := suite.asUser("jane")
	suite.mockService.EXPECT().
		Save(caller, gomock.Any()).
		Return(nil, apperrors.ErrAdminRequired)

	w := suite.http.MakeRequest(http.MethodPost, "/team-profiles", service.TeamProfileDTO{Name: "Platform"})

	// Authorization failures surface as 400, not 403
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "only admins")
}

func (suite *TeamProfileHandlerTestSuite) TestUpdateTeamProfile_Success() {
	caller := suite.asUser("member-login")
	updated := &service.TeamProfileDTO{ID: int64Ptr(5), Name: "Renamed"}
	suite.mockService.EXPECT().
		Update(caller, int64(5), gomock.Any()).
		Return(updated, nil)

	w := suite.http.MakeRequest(http.MethodPut, "/team-profiles/5", service.TeamProfileDTO{ID: int64Ptr(5), Name: "Renamed"})

	var got service.TeamProfileDTO
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), "Renamed", got.Name)
	assert.Equal(suite.T(), "teamPortalApp.teamProfile.updated", w.Header().Get("X-teamPortalApp-alert"))
	assert.Equal(suite.T(), "5", w.Header().Get("X-teamPortalApp-params"))
}

func (suite *TeamProfileHandlerTestSuite) TestUpdateTeamProfile_MissingBodyID() {
	suite.asAdmin()

	w := suite.http.MakeRequest(http.MethodPut, "/team-profiles/5", service.TeamProfileDTO{Name: "Renamed"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "must have an ID")
}

func (suite *TeamProfileHandlerTestSuite) TestUpdateTeamProfile_IDMismatch() {
	suite.asAdmin()

	w := suite.http.MakeRequest(http.MethodPut, "/team-profiles/5", service.TeamProfileDTO{ID: int64Ptr(6), Name: "Renamed"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "does not match")
}

func (suite *TeamProfileHandlerTestSuite) TestUpdateTeamProfile_NotFound() {
	caller := suite.asAdmin()
	suite.mockService.EXPECT().
		Update(caller, int64(404), gomock.Any()).
		Return(nil, apperrors.ErrTeamProfileNotFound)

	w := suite.http.MakeRequest(http.MethodPut, "/team-profiles/404", service.TeamProfileDTO{ID: int64Ptr(404), Name: "Ghost"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "team profile not found")
}

func (suite *TeamProfileHandlerTestSuite) TestUpdateTeamProfile_NonMemberRejected() {
	caller := suite.asUser("outsider")
	suite.mockService.EXPECT().
		Update(caller, int64(5), gomock.Any()).
		Return(nil, apperrors.ErrAdminOrMemberRequired)

	w := suite.http.MakeRequest(http.MethodPut, "/team-profiles/5", service.TeamProfileDTO{ID: int64Ptr(5), Name: "Renamed"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "only admins or team members")
}

func (suite *TeamProfileHandlerTestSuite) TestPartialUpdateTeamProfile_Success() {
	caller := suite.asUser("member-login")
	merged := &service.TeamProfileDTO{ID: int64Ptr(5), Name: "Kept", Description: "new description"}
	suite.mockService.EXPECT().
		PartialUpdate(caller, int64(5), gomock.Any()).
		DoAndReturn(func(_ *auth.Caller, _ int64, dto *service.PartialTeamProfileDTO) (*service.TeamProfileDTO, error) {
			assert.Nil(suite.T(), dto.Name)
			assert.Equal(suite.T(), "new description", *dto.Description)
			return merged, nil
		})

	w := suite.http.MakeRequest(http.MethodPatch, "/team-profiles/5", service.PartialTeamProfileDTO{
		ID:          int64Ptr(5),
		Description: strPtr("new description"),
	})

	var got service.TeamProfileDTO
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), "Kept", got.Name)
	assert.Equal(suite.T(), "teamPortalApp.teamProfile.updated", w.Header().Get("X-teamPortalApp-alert"))
}

func (suite *TeamProfileHandlerTestSuite) TestPartialUpdateTeamProfile_MergePatchContentType() {
	caller := suite.asAdmin()
	merged := &service.TeamProfileDTO{ID: int64Ptr(5), Name: "Kept"}
	suite.mockService.EXPECT().
		PartialUpdate(caller, int64(5), gomock.Any()).
		Return(merged, nil)

	w := suite.http.MakeRequestWithHeaders(http.MethodPatch, "/team-profiles/5",
		service.PartialTeamProfileDTO{ID: int64Ptr(5), Name: strPtr("Kept")},
		map[string]string{"Content-Type": "application/merge-patch+json"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *TeamProfileHandlerTestSuite) TestPartialUpdateTeamProfile_UnsupportedMediaType() {
	suite.asAdmin()

	w := suite.http.MakeRequestWithHeaders(http.MethodPatch, "/team-profiles/5", nil,
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})

	assert.Equal(suite.T(), http.StatusUnsupportedMediaType, w.Code)
}

func (suite *TeamProfileHandlerTestSuite) TestPartialUpdateTeamProfile_IDMismatch() {
	suite.asAdmin()

	w := suite.http.MakeRequest(http.MethodPatch, "/team-profiles/5", service.PartialTeamProfileDTO{ID: int64Ptr(9)})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "does not match")
}

func (suite *TeamProfileHandlerTestSuite) TestPartialUpdateTeamProfile_NotFound() {
	caller := suite.asAdmin()
	suite.mockService.EXPECT().
		PartialUpdate(caller, int64(404), gomock.Any()).
		Return(nil, apperrors.ErrTeamProfileNotFound)

	w := suite.http.MakeRequest(http.MethodPatch, "/team-profiles/404", service.PartialTeamProfileDTO{ID: int64Ptr(404)})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "")
}

func (suite *TeamProfileHandlerTestSuite) TestGetAllTeamProfiles_Anonymous() {
	// Reads require no caller at all
	suite.mockService.EXPECT().
		FindAll().
		Return([]service.TeamProfileDTO{
			{ID: int64Ptr(1), Name: "Platform"},
			{ID: int64Ptr(2), Name: "Payments"},
		}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/team-profiles", nil)

	var got []service.TeamProfileDTO
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), "Platform", got[0].Name)
}

func (suite *TeamProfileHandlerTestSuite) TestGetTeamProfile_Anonymous() {
	suite.mockService.EXPECT().
		FindOne(int64(1)).
		Return(&service.TeamProfileDTO{ID: int64Ptr(1), Name: "Platform"}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/team-profiles/1", nil)

	var got service.TeamProfileDTO
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), "Platform", got.Name)
}

func (suite *TeamProfileHandlerTestSuite) TestGetTeamProfile_NotFound() {
	suite.mockService.EXPECT().
		FindOne(int64(99)).
		Return(nil, apperrors.ErrTeamProfileNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/team-profiles/99", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "team profile not found")
}

func (suite *TeamProfileHandlerTestSuite) TestGetTeamProfile_InvalidID() {
	w := suite.http.MakeRequest(http.MethodGet, "/team-profiles/abc", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid team profile ID")
}

func (suite *TeamProfileHandlerTestSuite) TestDeleteTeamProfile_Success() {
	caller := suite.asAdmin()
	suite.mockService.EXPECT().
		Delete(caller, int64(5)).
		Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/team-profiles/5", nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Equal(suite.T(), "teamPortalApp.teamProfile.deleted", w.Header().Get("X-teamPortalApp-alert"))
	assert.Equal(suite.T(), "5", w.Header().Get("X-teamPortalApp-params"))
	assert.Empty(suite.T(), w.Body.String())
}

func (suite *TeamProfileHandlerTestSuite) TestDeleteTeamProfile_NonAdminRejected() {
	caller := suite.asUser("jane")
	suite.mockService.EXPECT().
		Delete(caller, int64(5)).
		Return(apperrors.ErrAdminRequired)

	w := suite.http.MakeRequest(http.MethodDelete, "/team-profiles/5", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "only admins")
	assert.Empty(suite.T(), w.Header().Get("X-teamPortalApp-alert"))
}

func (suite *TeamProfileHandlerTestSuite) TestDeleteTeamProfile_AnonymousRejected() {
	suite.mockService.EXPECT().
		Delete(gomock.Nil(), int64(5)).
		Return(apperrors.ErrAdminRequired)

	w := suite.http.MakeRequest(http.MethodDelete, "/team-profiles/5", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "only admins")
}

func (suite *TeamProfileHandlerTestSuite) TestCreateTeamProfile_MalformedBody() {
	suite.asAdmin()

	w := suite.http.MakeRequestWithHeaders(http.MethodPost, "/team-profiles", nil,
		map[string]string{"Content-Type": "application/json"})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestTeamProfileHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamProfileHandlerTestSuite))
}
