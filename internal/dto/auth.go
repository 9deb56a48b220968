package dto

import (
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
)

// RegisterRequest creates an administrator account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest represents the login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse defines data returned for a user.
type UserResponse struct {
	UserID    int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{UserID: u.UserID, Username: u.Username, CreatedAt: u.CreatedAt}
}

// SessionResponse describes the signed-in user.
type SessionResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}
