package dto

import (
	"time"

	"github.com/spec-kit/identity-service/internal/domain"
)

// RegisterUserRequest payload for new users.
type RegisterUserRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Nickname *string `json:"nickname,omitempty" validate:"omitempty,max=50"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Company  *string `json:"company,omitempty" validate:"omitempty,max=100"`
}

// UpdateUserRequest is a partial profile change; absent fields are kept and
// an empty nickname clears it.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Nickname *string `json:"nickname,omitempty" validate:"omitempty,max=50"`
	Company  *string `json:"company,omitempty" validate:"omitempty,max=100"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
}

// UserResponse is the public profile of a user.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Nickname  *string   `json:"nickname"`
	Company   *string   `json:"company"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Nickname:  u.Nickname,
		Company:   u.Company,
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
