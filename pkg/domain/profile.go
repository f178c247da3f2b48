package domain

import "time"

// Role is a user role in the conference system
type Role string

// roles
const (
	RoleAuthor    Role = "author"
	RoleReviewer  Role = "reviewer"
	RoleOrganizer Role = "organizer"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleAuthor, RoleReviewer, RoleOrganizer:
		return true
	}
	return false
}

// Profile represents a registered user
type Profile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Role        Role      `json:"role"`
	Institution string    `json:"institution,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
