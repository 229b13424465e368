// Package models contains data structures for the application's domain models.
package models

import "time"

// Role identifies a user's position in the authorization hierarchy.
type Role string

// Roles, ordered from least to most privileged.
const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Level returns the role's position in the hierarchy. Unknown roles rank
// below RoleUser so a malformed role never grants authority.
func (r Role) Level() int {
	switch r {
	case RoleUser:
		return 1
	case RoleAdmin:
		return 2
	case RoleSuperAdmin:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether r carries at least the authority of required.
func (r Role) AtLeast(required Role) bool {
	return r.Level() >= required.Level()
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r.Level() > 0
}

// User represents an account in the Foodcourt application.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
	Hometown string `json:"hometown,omitempty"`
	Bio      string `json:"bio,omitempty"`

	FollowerCount  int `json:"follower_count"`
	FollowingCount int `json:"following_count"`

	// IsFollowing is scoped to the requesting viewer; computed, never stored.
	IsFollowing bool `json:"is_following"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateUserInput carries the mutable profile fields. Nil means "leave as is".
type UpdateUserInput struct {
	Username *string `json:"username,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Hometown *string `json:"hometown,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}
