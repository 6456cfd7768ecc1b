package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/freelance_books/internal/core/domain"
	portssvc "github.com/SscSPs/freelance_books/internal/core/ports/services"
	"github.com/SscSPs/freelance_books/internal/platform/config"
	"github.com/SscSPs/freelance_books/internal/utils"
)

// tokenService signs bearer tokens for authenticated users.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{BaseService: newBaseService(), cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	signed, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.Now(), s.cfg.JWTExpiryDuration)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return signed.Token, signed.ExpiresAt, nil
}
