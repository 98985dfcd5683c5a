package service

import (
	"errors"
	"fmt"

	"team-portal-backend/internal/database/models"
	apperrors "team-portal-backend/internal/errors"
	"team-portal-backend/internal/repository"

	"gorm.io/gorm"
)

// UserProfileService handles business logic for user profiles
type UserProfileService struct {
	repo *repository.UserProfileRepository
}

// NewUserProfileService creates a new user profile service
func NewUserProfileService(repo *repository.UserProfileRepository) *UserProfileService {
	return &UserProfileService{repo: repo}
}

// UserProfileDTO is the boundary representation of a user profile
type UserProfileDTO struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Position  string `json:"position,omitempty"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// FindAll retrieves all user profiles
func (s *UserProfileService) FindAll() ([]UserProfileDTO, error) {
	profiles, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get user profiles: %w", err)
	}

	dtos := make([]UserProfileDTO, len(profiles))
	for i, profile := range profiles {
		dtos[i] = *toUserProfileDTO(&profile)
	}
	return dtos, nil
}

// FindOne retrieves a user profile by ID
func (s *UserProfileService) FindOne(id int64) (*UserProfileDTO, error) {
	profile, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserProfileNotFound
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	return toUserProfileDTO(profile), nil
}

func toUserProfileDTO(profile *models.UserProfile) *UserProfileDTO {
	return &UserProfileDTO{
		ID:        profile.ID,
		Login:     profile.User.Login,
		Email:     profile.User.Email,
		FirstName: profile.User.FirstName,
		LastName:  profile.User.LastName,
		Position:  profile.Position,
		Bio:       profile.Bio,
		AvatarURL: profile.AvatarURL,
	}
}
