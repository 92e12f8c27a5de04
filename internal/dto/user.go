package dto

import (
	"github.com/velorapos/velora_backend/internal/core/domain"
)

// CreateUserRequest registers a new web admin / POS user.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest updates mutable user fields.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// UserResponse is the wire shape of a user.
type UserResponse struct {
	UserID   string `json:"userID"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsActive bool   `json:"isActive"`
}

// ToUserResponse converts a domain user to its wire shape.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Name:     u.Name,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}
