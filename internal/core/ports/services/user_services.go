package services

import (
	"context"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
)

// UserSvcFacade manages administrator accounts.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate returns apperrors.ErrUnauthorized for an unknown user or wrong password.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}

// TokenSvcFacade issues session tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
