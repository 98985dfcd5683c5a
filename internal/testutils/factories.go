package testutils

import (
	"team-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Logins carry a UUID
// fragment so repeated inserts never hit the unique index.
func (f *UserFactory) Create() *models.User {
	login := "user-" + uuid.New().String()[:8]

	return &models.User{
		Login:       login,
		Email:       login + "@test.com",
		FirstName:   "John",
		LastName:    "Doe",
		Authorities: []string{models.RoleUser},
		Activated:   true,
	}
}

// WithLogin sets a custom login for the user
func (f *UserFactory) WithLogin(login string) *models.User {
	user := f.Create()
	user.Login = login
	user.Email = login + "@test.com"
	return user
}

// Admin creates a user carrying the admin role
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.Authorities = []string{models.RoleUser, models.RoleAdmin}
	return user
}

// UserProfileFactory provides methods to create test UserProfile data
type UserProfileFactory struct{}

// NewUserProfileFactory creates a new UserProfileFactory
func NewUserProfileFactory() *UserProfileFactory {
	return &UserProfileFactory{}
}

// Create creates a test UserProfile for the given user
func (f *UserProfileFactory) Create(userID int64) *models.UserProfile {
	return &models.UserProfile{
		UserID:    userID,
		Position:  "Software Engineer",
		Bio:       "A test user profile",
		AvatarURL: "https://avatars.test.com/u/1",
	}
}

// WithPosition sets a custom position for the profile
func (f *UserProfileFactory) WithPosition(userID int64, position string) *models.UserProfile {
	profile := f.Create(userID)
	profile.Position = position
	return profile
}

// TeamProfileFactory provides methods to create test TeamProfile data
type TeamProfileFactory struct{}

// NewTeamProfileFactory creates a new TeamProfileFactory
func NewTeamProfileFactory() *TeamProfileFactory {
	return &TeamProfileFactory{}
}

// Create creates a test TeamProfile with default values
func (f *TeamProfileFactory) Create() *models.TeamProfile {
	return &models.TeamProfile{
		Name:        "Test Team",
		Description: "A test team for testing purposes",
		GithubOrg:   "test-org",
		AvatarURL:   "https://avatars.test.com/t/1",
	}
}

// WithName sets a custom name for the team profile
func (f *TeamProfileFactory) WithName(name string) *models.TeamProfile {
	team := f.Create()
	team.Name = name
	return team
}

// WithMembers attaches the given profiles as team members
func (f *TeamProfileFactory) WithMembers(members ...models.UserProfile) *models.TeamProfile {
	team := f.Create()
	team.TeamMembers = members
	return team
}
