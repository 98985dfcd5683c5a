package handlers

import (
	"errors"
	"net/http"

	"team-portal-backend/internal/auth"
	"team-portal-backend/internal/database/models"
	apperrors "team-portal-backend/internal/errors"
	"team-portal-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AccountHandler returns the authenticated user's account
type AccountHandler struct {
	userRepo *repository.UserRepository
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(userRepo *repository.UserRepository) *AccountHandler {
	return &AccountHandler{userRepo: userRepo}
}

// AccountResponse represents the authenticated account
type AccountResponse struct {
	Login       string   `json:"login"`
	Email       string   `json:"email,omitempty"`
	FirstName   string   `json:"first_name,omitempty"`
	LastName    string   `json:"last_name,omitempty"`
	Authorities []string `json:"authorities"`
	IsAdmin     bool     `json:"is_admin"`
	Activated   bool     `json:"activated"`
}

// GetAccount handles GET /account
// @Summary Get the current account
// @Description Return the authenticated user's account details and authorities
// @Tags account
// @Accept json
// @Produce json
// @Success 200 {object} AccountResponse "Successfully retrieved account"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /account [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	caller := auth.CallerFrom(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	user, err := h.userRepo.FindByLogin(caller.Login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, apperrors.ErrUserNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AccountResponse{
		Login:       user.Login,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Authorities: user.Authorities,
		IsAdmin:     user.HasAuthority(models.RoleAdmin),
		Activated:   user.Activated,
	})
}
