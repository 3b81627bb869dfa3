// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Roles a user can hold. Admin is required for catalog mutation;
// everyone starts as a plain user.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a registered user in the system.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Role is the user's role, RoleAdmin or RoleUser.
	Role string `gorm:"size:20;not null;default:user"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
