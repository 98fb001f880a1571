// Package dto defines data transfer objects for the user feature's HTTP transport layer.
package dto

import (
	"time"

	"account_backend/internal/feature/user/domain/entity"
)

// SignupReq represents the request body for creating a user.
// It uses Gin's binding tags for validation (required, email format, password length).
type SignupReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateUserReq represents the request body for updating a user.
// Only these fields may be changed; anything else in the body is ignored.
type UpdateUserReq struct {
	Name     *string `json:"name" binding:"omitempty"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// UserResp is the sanitized projection of a user sent to clients.
// The password hash and salt are stripped before transmission.
type UserResp struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// NewUserResp builds the sanitized projection of a user entity.
func NewUserResp(u *entity.User) UserResp {
	return UserResp{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUserRespList builds sanitized projections for a list of users.
func NewUserRespList(users []*entity.User) []UserResp {
	out := make([]UserResp, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResp(u))
	}
	return out
}
