package services

import (
	"context"
	"strconv"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	portssvc "github.com/SscSPs/floor_assignment_app/internal/core/ports/services"
	"github.com/SscSPs/floor_assignment_app/internal/platform/config"
	"github.com/SscSPs/floor_assignment_app/internal/utils"
)

// tokenService issues the JWTs used as session tokens.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(strconv.FormatInt(user.UserID, 10), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
