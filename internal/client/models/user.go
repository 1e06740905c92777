// Package models defines the client-side data models shared by the session
// store, the API client and the feature services.
package models

// Role is the user's authorization role as reported by the backend.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the profile half of an authenticated session.
type User struct {
	ID       ID     `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Role     Role   `json:"role"`
}

// Normalize fills the fields the backend may omit: ImageURL stays empty
// and Role defaults to RoleUser.
func (u User) Normalize() User {
	if u.Role == "" {
		u.Role = RoleUser
	}
	return u
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
