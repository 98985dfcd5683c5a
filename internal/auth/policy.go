package auth

import (
	"team-portal-backend/internal/database/models"
)

// Caller is the authenticated identity of the current request, resolved once
// by the middleware and passed explicitly into every operation. A nil Caller
// means the request is anonymous.
type Caller struct {
	Login       string
	Email       string
	Authorities []string
}

// IsAdmin reports whether the caller holds the admin role grant.
func (c *Caller) IsAdmin() bool {
	if c == nil {
		return false
	}
	for _, a := range c.Authorities {
		if a == models.RoleAdmin {
			return true
		}
	}
	return false
}

// CanEditTeamProfile is the shared authorization rule for team profile
// mutations: admins always may; otherwise the caller's login must match one
// of the stored profile's member logins. Membership is decided on the stored
// entity, never on the incoming representation.
func CanEditTeamProfile(caller *Caller, profile *models.TeamProfile) bool {
	if caller.IsAdmin() {
		return true
	}
	if caller == nil || profile == nil {
		return false
	}
	return profile.HasMemberLogin(caller.Login)
}
