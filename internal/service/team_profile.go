package service

import (
	"errors"
	"fmt"

	"team-portal-backend/internal/auth"
	"team-portal-backend/internal/database/models"
	apperrors "team-portal-backend/internal/errors"
	"team-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TeamProfileService handles business logic for team profiles
type TeamProfileService struct {
	repo      *repository.TeamProfileRepository
	validator *validator.Validate
}

// NewTeamProfileService creates a new team profile service
func NewTeamProfileService(repo *repository.TeamProfileRepository, validator *validator.Validate) *TeamProfileService {
	return &TeamProfileService{
		repo:      repo,
		validator: validator,
	}
}

// TeamProfileDTO is the boundary representation of a team profile. The ID is
// nullable: absent on create, required and path-matching on update.
type TeamProfileDTO struct {
	ID          *int64          `json:"id,omitempty"`
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Description string          `json:"description,omitempty" validate:"max=500"`
	GithubOrg   string          `json:"github_org,omitempty" validate:"max=100"`
	AvatarURL   string          `json:"avatar_url,omitempty" validate:"omitempty,url,max=200"`
	TeamMembers []TeamMemberDTO `json:"team_members,omitempty"`
	CreatedAt   string          `json:"created_at,omitempty"`
	UpdatedAt   string          `json:"updated_at,omitempty"`
}

// PartialTeamProfileDTO is the merge-patch representation: only fields
// explicitly present overwrite stored values.
type PartialTeamProfileDTO struct {
	ID          *int64  `json:"id,omitempty"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	GithubOrg   *string `json:"github_org,omitempty" validate:"omitempty,max=100"`
	AvatarURL   *string `json:"avatar_url,omitempty" validate:"omitempty,url,max=200"`
}

// TeamMemberDTO is the read-only member entry inside a team profile response
type TeamMemberDTO struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Position  string `json:"position,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Save creates a new team profile. The representation must not carry an ID
// and the caller must be an admin; the store assigns the ID.
func (s *TeamProfileService) Save(caller *auth.Caller, dto *TeamProfileDTO) (*TeamProfileDTO, error) {
	if dto.ID != nil {
		return nil, apperrors.ErrIDAlreadySet
	}
	if err := s.validator.Struct(dto); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !caller.IsAdmin() {
		return nil, apperrors.ErrAdminRequired
	}

	profile := &models.TeamProfile{
		Name:        dto.Name,
		Description: dto.Description,
		GithubOrg:   dto.GithubOrg,
		AvatarURL:   dto.AvatarURL,
	}

	if err := s.repo.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create team profile: %w", err)
	}

	return s.toDTO(profile), nil
}

// Update replaces all descriptive fields of an existing team profile. The
// not-found check runs before the authorization check; both use the same
// fetch so membership is decided on the stored entity.
func (s *TeamProfileService) Update(caller *auth.Caller, id int64, dto *TeamProfileDTO) (*TeamProfileDTO, error) {
	if err := s.validator.Struct(dto); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	profile, err := s.fetchForEdit(caller, id)
	if err != nil {
		return nil, err
	}

	profile.Name = dto.Name
	profile.Description = dto.Description
	profile.GithubOrg = dto.GithubOrg
	profile.AvatarURL = dto.AvatarURL

	if err := s.repo.Save(profile); err != nil {
		return nil, fmt.Errorf("failed to update team profile: %w", err)
	}

	return s.toDTO(profile), nil
}

// PartialUpdate merges the given fields into an existing team profile;
// omitted fields retain their stored values.
func (s *TeamProfileService) PartialUpdate(caller *auth.Caller, id int64, dto *PartialTeamProfileDTO) (*TeamProfileDTO, error) {
	if err := s.validator.Struct(dto); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	profile, err := s.fetchForEdit(caller, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		profile.Name = *dto.Name
	}
	if dto.Description != nil {
		profile.Description = *dto.Description
	}
	if dto.GithubOrg != nil {
		profile.GithubOrg = *dto.GithubOrg
	}
	if dto.AvatarURL != nil {
		profile.AvatarURL = *dto.AvatarURL
	}

	if err := s.repo.Save(profile); err != nil {
		return nil, fmt.Errorf("failed to update team profile: %w", err)
	}

	return s.toDTO(profile), nil
}

// fetchForEdit loads the stored entity with its members and applies the
// admin-or-member rule. Error order: not found, then authorization.
func (s *TeamProfileService) fetchForEdit(caller *auth.Caller, id int64) (*models.TeamProfile, error) {
	profile, err := s.repo.FindWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamProfileNotFound
		}
		return nil, fmt.Errorf("failed to get team profile: %w", err)
	}

	if !auth.CanEditTeamProfile(caller, profile) {
		return nil, apperrors.ErrAdminOrMemberRequired
	}

	return profile, nil
}

// FindAll retrieves all team profiles, order as returned by the store
func (s *TeamProfileService) FindAll() ([]TeamProfileDTO, error) {
	profiles, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get team profiles: %w", err)
	}

	dtos := make([]TeamProfileDTO, len(profiles))
	for i, profile := range profiles {
		dtos[i] = *s.toDTO(&profile)
	}
	return dtos, nil
}

// FindOne retrieves a team profile by ID
func (s *TeamProfileService) FindOne(id int64) (*TeamProfileDTO, error) {
	profile, err := s.repo.FindWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamProfileNotFound
		}
		return nil, fmt.Errorf("failed to get team profile: %w", err)
	}
	return s.toDTO(profile), nil
}

// Delete removes a team profile. Admin only; deleting an absent ID succeeds.
func (s *TeamProfileService) Delete(caller *auth.Caller, id int64) error {
	if !caller.IsAdmin() {
		return apperrors.ErrAdminRequired
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team profile: %w", err)
	}
	return nil
}

// toDTO converts a team profile model to its boundary representation
func (s *TeamProfileService) toDTO(profile *models.TeamProfile) *TeamProfileDTO {
	members := make([]TeamMemberDTO, len(profile.TeamMembers))
	for i, m := range profile.TeamMembers {
		members[i] = TeamMemberDTO{
			ID:        m.ID,
			Login:     m.User.Login,
			Position:  m.Position,
			AvatarURL: m.AvatarURL,
		}
	}

	id := profile.ID
	return &TeamProfileDTO{
		ID:          &id,
		Name:        profile.Name,
		Description: profile.Description,
		GithubOrg:   profile.GithubOrg,
		AvatarURL:   profile.AvatarURL,
		TeamMembers: members,
		CreatedAt:   profile.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   profile.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
