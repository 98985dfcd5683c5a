package handlers

import (
	"net/http"
	"strconv"

	"team-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserProfileHandler handles HTTP requests for user profile reads
type UserProfileHandler struct {
	userProfileService service.UserProfileServiceInterface
}

// NewUserProfileHandler creates a new user profile handler
func NewUserProfileHandler(userProfileService service.UserProfileServiceInterface) *UserProfileHandler {
	return &UserProfileHandler{userProfileService: userProfileService}
}

// GetAllUserProfiles handles GET /user-profiles
// @Summary List all user profiles
// @Tags user-profiles
// @Accept json
// @Produce json
// @Success 200 {array} service.UserProfileDTO "Successfully retrieved user profiles"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /user-profiles [get]
func (h *UserProfileHandler) GetAllUserProfiles(c *gin.Context) {
	profiles, err := h.userProfileService.FindAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// GetUserProfile handles GET /user-profiles/:id
// @Summary Get user profile by ID
// @Tags user-profiles
// @Accept json
// @Produce json
// @Param id path int true "User profile ID"
// @Success 200 {object} service.UserProfileDTO "Successfully retrieved user profile"
// @Failure 400 {object} ErrorResponse "Invalid user profile ID"
// @Failure 404 {object} ErrorResponse "User profile not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /user-profiles/{id} [get]
func (h *UserProfileHandler) GetUserProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user profile ID"})
		return
	}

	profile, err := h.userProfileService.FindOne(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
