package models

// TeamProfile represents a team in the portal. The member set drives the
// admin-or-member edit rule: a caller whose login matches a member's user
// login may modify the profile without the admin role.
type TeamProfile struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`
	GithubOrg   string `json:"github_org" gorm:"size:100" validate:"max=100"`
	AvatarURL   string `json:"avatar_url" gorm:"size:200" validate:"omitempty,url,max=200"`

	// Relationships
	TeamMembers []UserProfile `json:"team_members,omitempty" gorm:"many2many:team_profile_members;"`
}

// TableName returns the table name for TeamProfile
func (TeamProfile) TableName() string {
	return "team_profiles"
}

// HasMemberLogin reports whether any team member's user login matches login.
func (t *TeamProfile) HasMemberLogin(login string) bool {
	if login == "" {
		return false
	}
	for _, m := range t.TeamMembers {
		if m.User.Login == login {
			return true
		}
	}
	return false
}
