package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"github.com/SscSPs/freelance_books/internal/core/domain"
	portsrepo "github.com/SscSPs/freelance_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freelance_books/internal/core/ports/services"
	"github.com/SscSPs/freelance_books/internal/dto"
	"github.com/google/uuid"
)

type paymentTermService struct {
	BaseService
	termRepo portsrepo.PaymentTermRepositoryFacade
}

// NewPaymentTermService creates the payment term resolver.
func NewPaymentTermService(termRepo portsrepo.PaymentTermRepositoryFacade) portssvc.PaymentTermSvcFacade {
	return &paymentTermService{BaseService: newBaseService(), termRepo: termRepo}
}

var _ portssvc.PaymentTermSvcFacade = (*paymentTermService)(nil)

func (s *paymentTermService) ListVisiblePaymentTerms(ctx context.Context, userID string) ([]domain.PaymentTerm, error) {
	terms, err := s.termRepo.ListVisiblePaymentTerms(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment terms")
		return nil, fmt.Errorf("failed to list payment terms: %w", err)
	}
	if terms == nil {
		terms = []domain.PaymentTerm{}
	}
	return terms, nil
}

// ResolvePaymentTerm hides terms owned by other users behind a not found error.
func (s *paymentTermService) ResolvePaymentTerm(ctx context.Context, paymentTermID string, userID string) (*domain.PaymentTerm, error) {
	term, err := s.termRepo.FindPaymentTermByID(ctx, paymentTermID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("payment term")
		}
		s.LogError(ctx, err, "Failed to resolve payment term", slog.String("payment_term_id", paymentTermID))
		return nil, fmt.Errorf("failed to resolve payment term: %w", err)
	}
	if !term.VisibleTo(userID) {
		return nil, apperrors.NewNotFoundError("payment term")
	}
	return term, nil
}

func (s *paymentTermService) CreatePaymentTerm(ctx context.Context, req dto.CreatePaymentTermRequest, userID string) (*domain.PaymentTerm, error) {
	if req.NetDays == nil {
		return nil, apperrors.NewValidationError("netDays is required")
	}
	discount, err := domain.NewDiscountOffer(req.DiscountPercent, req.DiscountDays)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	term := domain.PaymentTerm{
		PaymentTermID: uuid.NewString(),
		Scope:         domain.OwnerScope(userID),
		Label:         strings.TrimSpace(req.Label),
		NetDays:       *req.NetDays,
		Discount:      discount,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := term.Validate(); err != nil {
		return nil, err
	}

	if err := s.termRepo.SavePaymentTerm(ctx, term); err != nil {
		s.LogError(ctx, err, "Failed to save payment term")
		return nil, fmt.Errorf("failed to create payment term: %w", err)
	}
	s.LogInfo(ctx, "Payment term created", slog.String("payment_term_id", term.PaymentTermID))
	return &term, nil
}

// DeletePaymentTerm leaves invoices that used the term untouched; they keep
// their own due date and discount snapshot.
func (s *paymentTermService) DeletePaymentTerm(ctx context.Context, paymentTermID string, userID string) error {
	if err := s.termRepo.DeleteOwnedPaymentTerm(ctx, paymentTermID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("payment term")
		}
		s.LogError(ctx, err, "Failed to delete payment term", slog.String("payment_term_id", paymentTermID))
		return fmt.Errorf("failed to delete payment term: %w", err)
	}
	s.LogInfo(ctx, "Payment term deleted", slog.String("payment_term_id", paymentTermID))
	return nil
}

func (s *paymentTermService) SeedDefaultPaymentTerms(ctx context.Context) (int, error) {
	defaults := domain.DefaultPaymentTerms()
	now := s.Now()
	for i := range defaults {
		defaults[i].PaymentTermID = uuid.NewString()
		defaults[i].CreatedAt = now
		defaults[i].LastUpdatedAt = now
	}

	inserted, err := s.termRepo.SeedSystemPaymentTerms(ctx, defaults)
	if err != nil {
		s.LogError(ctx, err, "Failed to seed default payment terms")
		return 0, fmt.Errorf("failed to seed default payment terms: %w", err)
	}
	s.LogInfo(ctx, "Default payment terms seeded", slog.Int("inserted", inserted), slog.Int("catalog", len(defaults)))
	return inserted, nil
}
