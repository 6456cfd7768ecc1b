package repositories

import (
	"context"

	"github.com/SscSPs/freelance_books/internal/core/domain"
)

// PaymentTermReader defines read operations for payment terms
type PaymentTermReader interface {
	// FindPaymentTermByID retrieves a term of any scope.
	FindPaymentTermByID(ctx context.Context, paymentTermID string) (*domain.PaymentTerm, error)

	// ListVisiblePaymentTerms retrieves system terms plus the user's own, ascending by net days.
	ListVisiblePaymentTerms(ctx context.Context, userID string) ([]domain.PaymentTerm, error)
}

// PaymentTermWriter defines write operations for payment terms
type PaymentTermWriter interface {
	// SavePaymentTerm persists a new term.
	SavePaymentTerm(ctx context.Context, term domain.PaymentTerm) error

	// DeleteOwnedPaymentTerm removes a term owned by ownerUserID. System terms and
	// terms of other users yield apperrors.ErrNotFound.
	DeleteOwnedPaymentTerm(ctx context.Context, paymentTermID string, ownerUserID string) error

	// SeedSystemPaymentTerms inserts the given system terms unless a system term with
	// the same label exists. It returns the number of rows inserted.
	SeedSystemPaymentTerms(ctx context.Context, terms []domain.PaymentTerm) (int, error)
}

// PaymentTermRepositoryFacade combines all payment term repository interfaces
type PaymentTermRepositoryFacade interface {
	PaymentTermReader
	PaymentTermWriter
}
