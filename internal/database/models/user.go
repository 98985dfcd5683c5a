package models

// Authority role grants as they appear in JWT claims and the users table
const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

// User represents an authenticated account. Tokens are issued by an external
// identity service; this table is the local source of truth for logins and
// role grants.
type User struct {
	BaseModel
	Login       string   `json:"login" gorm:"uniqueIndex;not null;size:50" validate:"required,min=1,max=50"`
	Email       string   `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	FirstName   string   `json:"first_name" gorm:"size:100" validate:"max=100"`
	LastName    string   `json:"last_name" gorm:"size:100" validate:"max=100"`
	Authorities []string `json:"authorities" gorm:"serializer:json;type:jsonb"`
	Activated   bool     `json:"activated" gorm:"default:true"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// HasAuthority reports whether the user holds the given role grant.
func (u *User) HasAuthority(authority string) bool {
	for _, a := range u.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}
