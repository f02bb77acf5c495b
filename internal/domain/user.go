package domain

import "time"

// UserStatus represents lifecycle states for a user. Only active users authenticate.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

// User is the domain model for directory subjects. Email and Nickname are the
// two unique login identifiers.
type User struct {
	ID           string
	Name         string
	Email        string
	Nickname     *string
	PasswordHash string
	Company      *string
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive reports whether the user may authenticate.
func (u *User) IsActive() bool {
	return u != nil && u.Status == UserStatusActive
}
