package services

import (
	"context"
	"time"

	"github.com/SscSPs/freelance_books/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a bearer token whose subject is the user's ID.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
