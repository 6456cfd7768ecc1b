package services

import (
	"context"

	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/SscSPs/freelance_books/internal/dto"
)

// PaymentTermResolverSvc defines read operations for payment terms
type PaymentTermResolverSvc interface {
	// ListVisiblePaymentTerms returns the system defaults and the user's own terms, ascending by net days.
	ListVisiblePaymentTerms(ctx context.Context, userID string) ([]domain.PaymentTerm, error)

	// ResolvePaymentTerm returns a term visible to userID or apperrors.ErrNotFound.
	ResolvePaymentTerm(ctx context.Context, paymentTermID string, userID string) (*domain.PaymentTerm, error)
}

// PaymentTermWriterSvc defines write operations for payment terms
type PaymentTermWriterSvc interface {
	CreatePaymentTerm(ctx context.Context, req dto.CreatePaymentTermRequest, userID string) (*domain.PaymentTerm, error)

	// DeletePaymentTerm removes a term owned by userID. System terms are not found.
	DeletePaymentTerm(ctx context.Context, paymentTermID string, userID string) error
}

// PaymentTermSeederSvc installs the default catalog.
type PaymentTermSeederSvc interface {
	// SeedDefaultPaymentTerms inserts missing system terms and returns how many were added.
	SeedDefaultPaymentTerms(ctx context.Context) (int, error)
}

// PaymentTermSvcFacade combines all payment term service interfaces
type PaymentTermSvcFacade interface {
	PaymentTermResolverSvc
	PaymentTermWriterSvc
	PaymentTermSeederSvc
}
