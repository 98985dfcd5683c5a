package models

// UserProfile carries the descriptive profile of a user. Team membership is
// expressed through the team_profile_members join table; the login used for
// membership checks lives on the linked User.
type UserProfile struct {
	BaseModel
	UserID    int64  `json:"user_id" gorm:"not null;uniqueIndex" validate:"required"`
	Position  string `json:"position" gorm:"size:100" validate:"max=100"`
	Bio       string `json:"bio" gorm:"size:500" validate:"max=500"`
	AvatarURL string `json:"avatar_url" gorm:"size:200" validate:"omitempty,url,max=200"`

	// Relationships
	User  User          `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Teams []TeamProfile `json:"teams,omitempty" gorm:"many2many:team_profile_members;"`
}

// TableName returns the table name for UserProfile
func (UserProfile) TableName() string {
	return "user_profiles"
}
