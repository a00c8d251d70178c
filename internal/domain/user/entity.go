package user

import "time"

type Role string

const (
	RoleOwner Role = "owner" // Business owner - full access
	RoleKiosk Role = "kiosk" // Shared portal device - clock toggle only
)

type User struct {
	ID              string
	Email           string
	Name            string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOwner checks if the user is the business owner.
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}
