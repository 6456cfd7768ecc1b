package services

import (
	"context"
	"time"

	portsrepo "github.com/SscSPs/freelance_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freelance_books/internal/core/ports/services"
)

const healthPingTimeout = 2 * time.Second

type healthService struct {
	BaseService
	checker portsrepo.HealthChecker
}

// NewHealthService creates a health service. A nil checker reports the database as down.
func NewHealthService(checker portsrepo.HealthChecker) portssvc.HealthSvc {
	return &healthService{BaseService: newBaseService(), checker: checker}
}

func (s *healthService) DatabaseConnected(ctx context.Context) bool {
	if s.checker == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	if err := s.checker.Ping(ctx); err != nil {
		s.LogError(ctx, err, "Database ping failed")
		return false
	}
	return true
}
