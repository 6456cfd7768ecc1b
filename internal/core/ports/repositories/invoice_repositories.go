package repositories

import (
	"context"

	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// InvoiceReader defines read operations for invoices
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice regardless of owner; callers check ownership.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByOwner retrieves a user's invoices ordered by issue date, newest first.
	ListInvoicesByOwner(ctx context.Context, ownerUserID string) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoices
type InvoiceWriter interface {
	// SaveInvoiceInTx inserts a numbered invoice inside tx. A number already used
	// by the same owner yields apperrors.ErrConflict.
	SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error

	// UpdateInvoice overwrites the mutable fields of an invoice.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice removes an invoice of the given owner.
	DeleteInvoice(ctx context.Context, invoiceID string, ownerUserID string) error
}

// InvoiceSequenceReserver hands out invoice sequence values.
type InvoiceSequenceReserver interface {
	// ReserveInvoiceSequence atomically increments and returns the (owner, year)
	// counter inside tx. A missing counter starts after the invoices already stored
	// for that year.
	ReserveInvoiceSequence(ctx context.Context, tx pgx.Tx, ownerUserID string, year int) (int, error)
}

// InvoiceRepositoryFacade combines all invoice repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
	InvoiceSequenceReserver
}

// InvoiceRepositoryWithTx extends InvoiceRepositoryFacade with transaction capabilities
type InvoiceRepositoryWithTx interface {
	InvoiceRepositoryFacade
	TransactionManager
}
