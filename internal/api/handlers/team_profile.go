package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"team-portal-backend/internal/auth"
	apperrors "team-portal-backend/internal/errors"
	"team-portal-backend/internal/logger"
	"team-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const teamProfileEntity = "teamProfile"

// TeamProfileHandler handles HTTP requests for team profile operations
type TeamProfileHandler struct {
	teamProfileService service.TeamProfileServiceInterface
	log                *logger.Logger
}

// NewTeamProfileHandler creates a new team profile handler
func NewTeamProfileHandler(teamProfileService service.TeamProfileServiceInterface) *TeamProfileHandler {
	return &TeamProfileHandler{
		teamProfileService: teamProfileService,
		log:                logger.New(),
	}
}

// CreateTeamProfile handles POST /team-profiles
// @Summary Create a new team profile
// @Description Create a new team profile. The representation must not carry an ID and the caller must be an admin.
// @Tags team-profiles
// @Accept json
// @Produce json
// @Param teamProfile body service.TeamProfileDTO true "Team profile data"
// @Success 201 {object} service.TeamProfileDTO "Successfully created team profile"
// @Failure 400 {object} ErrorResponse "ID already set, validation failed, or caller is not an admin"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team-profiles [post]
func (h *TeamProfileHandler) CreateTeamProfile(c *gin.Context) {
	var dto service.TeamProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.log.Debugf("request to save TeamProfile : %v", dto.Name)

	result, err := h.teamProfileService.Save(auth.CallerFrom(c), &dto)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/team-profiles/%d", *result.ID))
	setCreationAlert(c, teamProfileEntity, strconv.FormatInt(*result.ID, 10))
	c.JSON(http.StatusCreated, result)
}

// UpdateTeamProfile handles PUT /team-profiles/:id
// @Summary Update a team profile
// @Description Replace an existing team profile. The caller must be an admin or a member of the team.
// @Tags team-profiles
// @Accept json
// @Produce json
// @Param id path int true "Team profile ID"
// @Param teamProfile body service.TeamProfileDTO true "Updated team profile data"
// @Success 200 {object} service.TeamProfileDTO "Successfully updated team profile"
// @Failure 400 {object} ErrorResponse "Invalid ID, validation failed, or caller not authorized"
// @Failure 404 {object} ErrorResponse "Team profile not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team-profiles/{id} [put]
func (h *TeamProfileHandler) UpdateTeamProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team profile ID"})
		return
	}

	var dto service.TeamProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.log.Debugf("request to update TeamProfile : %d", id)

	if dto.ID == nil {
		respondError(c, apperrors.ErrIDMissing)
		return
	}
	if *dto.ID != id {
		respondError(c, apperrors.ErrIDMismatch)
		return
	}

	result, err := h.teamProfileService.Update(auth.CallerFrom(c), id, &dto)
	if err != nil {
		respondError(c, err)
		return
	}

	setUpdateAlert(c, teamProfileEntity, strconv.FormatInt(id, 10))
	c.JSON(http.StatusOK, result)
}

// PartialUpdateTeamProfile handles PATCH /team-profiles/:id
// @Summary Partially update a team profile
// @Description Merge the given fields into an existing team profile; omitted fields keep their stored values. Accepts application/json and application/merge-patch+json.
// @Tags team-profiles
// @Accept json
// @Produce json
// @Param id path int true "Team profile ID"
// @Param teamProfile body service.PartialTeamProfileDTO true "Fields to merge"
// @Success 200 {object} service.TeamProfileDTO "Successfully updated team profile"
// @Failure 400 {object} ErrorResponse "Invalid ID, validation failed, or caller not authorized"
// @Failure 404 {object} ErrorResponse "Team profile not found"
// @Failure 415 {object} ErrorResponse "Unsupported media type"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team-profiles/{id} [patch]
func (h *TeamProfileHandler) PartialUpdateTeamProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team profile ID"})
		return
	}

	if ct := c.ContentType(); ct != "application/json" && ct != "application/merge-patch+json" {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "unsupported media type: " + ct})
		return
	}

	var dto service.PartialTeamProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.log.Debugf("request to partial update TeamProfile : %d", id)

	if dto.ID == nil || *dto.ID != id {
		respondError(c, apperrors.ErrIDMismatch)
		return
	}

	result, err := h.teamProfileService.PartialUpdate(auth.CallerFrom(c), id, &dto)
	if err != nil {
		respondError(c, err)
		return
	}

	setUpdateAlert(c, teamProfileEntity, strconv.FormatInt(id, 10))
	c.JSON(http.StatusOK, result)
}

// GetAllTeamProfiles handles GET /team-profiles
// @Summary List all team profiles
// @Description Get all team profiles in store order. No authorization applied.
// @Tags team-profiles
// @Accept json
// @Produce json
// @Success 200 {array} service.TeamProfileDTO "Successfully retrieved team profiles"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /team-profiles [get]
func (h *TeamProfileHandler) GetAllTeamProfiles(c *gin.Context) {
	h.log.Debug("request to get all TeamProfiles")

	profiles, err := h.teamProfileService.FindAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// GetTeamProfile handles GET /team-profiles/:id
// @Summary Get team profile by ID
// @Description Get a specific team profile. No authorization applied.
// @Tags team-profiles
// @Accept json
// @Produce json
// @Param id path int true "Team profile ID"
// @Success 200 {object} service.TeamProfileDTO "Successfully retrieved team profile"
// @Failure 400 {object} ErrorResponse "Invalid team profile ID"
// @Failure 404 {object} ErrorResponse "Team profile not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /team-profiles/{id} [get]
func (h *TeamProfileHandler) GetTeamProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team profile ID"})
		return
	}
	h.log.Debugf("request to get TeamProfile : %d", id)

	profile, err := h.teamProfileService.FindOne(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteTeamProfile handles DELETE /team-profiles/:id
// @Summary Delete a team profile
// @Description Delete a team profile by ID. Admin only; deleting an absent ID succeeds.
// @Tags team-profiles
// @Accept json
// @Produce json
// @Param id path int true "Team profile ID"
// @Success 204 "Successfully deleted team profile"
// @Failure 400 {object} ErrorResponse "Invalid ID or caller is not an admin"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team-profiles/{id} [delete]
func (h *TeamProfileHandler) DeleteTeamProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team profile ID"})
		return
	}
	h.log.Debugf("request to delete TeamProfile : %d", id)

	if err := h.teamProfileService.Delete(auth.CallerFrom(c), id); err != nil {
		respondError(c, err)
		return
	}

	setDeletionAlert(c, teamProfileEntity, strconv.FormatInt(id, 10))
	c.Status(http.StatusNoContent)
}
