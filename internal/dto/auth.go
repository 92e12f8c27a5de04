package dto

import "time"

// LoginRequest carries web admin credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns a signed access token.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

// CreateRegisterTokenRequest names a new POS terminal token.
type CreateRegisterTokenRequest struct {
	Name      string     `json:"name" binding:"required"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// RegisterTokenResponse returns the raw token once, at creation.
type RegisterTokenResponse struct {
	TokenID   string     `json:"tokenID"`
	Name      string     `json:"name"`
	Token     string     `json:"token,omitempty"` // only set on creation
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
