package service

import (
	"team-portal-backend/internal/auth"
)

// TeamProfileServiceInterface defines the operations of the team profile
// service. The caller is passed explicitly into every mutating operation.
type TeamProfileServiceInterface interface {
	Save(caller *auth.Caller, dto *TeamProfileDTO) (*TeamProfileDTO, error)
	Update(caller *auth.Caller, id int64, dto *TeamProfileDTO) (*TeamProfileDTO, error)
	PartialUpdate(caller *auth.Caller, id int64, dto *PartialTeamProfileDTO) (*TeamProfileDTO, error)
	FindAll() ([]TeamProfileDTO, error)
	FindOne(id int64) (*TeamProfileDTO, error)
	Delete(caller *auth.Caller, id int64) error
}

// UserProfileServiceInterface defines the read operations of the user
// profile service
type UserProfileServiceInterface interface {
	FindAll() ([]UserProfileDTO, error)
	FindOne(id int64) (*UserProfileDTO, error)
}
