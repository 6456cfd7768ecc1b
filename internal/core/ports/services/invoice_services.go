package services

import (
	"context"
	"time"

	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/SscSPs/freelance_books/internal/dto"
	"github.com/jackc/pgx/v5"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	// ListInvoices returns the user's invoices with their clients, newest issue date first.
	ListInvoices(ctx context.Context, userID string) ([]domain.InvoiceWithClient, error)

	// GetInvoice returns one invoice with its client. Invoices of other users are not found.
	GetInvoice(ctx context.Context, invoiceID string, userID string) (*domain.InvoiceWithClient, error)
}

// InvoiceWriterSvc defines write operations for invoices
type InvoiceWriterSvc interface {
	// CreateInvoice validates ownership, resolves the payment term, computes amounts
	// and assigns the next number for the issue year.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.InvoiceWithClient, error)

	// UpdateInvoice applies a partial change and recomputes amounts when needed.
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, userID string) (*domain.InvoiceWithClient, error)

	DeleteInvoice(ctx context.Context, invoiceID string, userID string) error
}

// InvoiceDocumentSvc produces the printable form of an invoice
type InvoiceDocumentSvc interface {
	// RenderInvoicePDF renders an owned invoice with the user as seller and the client as buyer.
	RenderInvoicePDF(ctx context.Context, invoiceID string, userID string) (*domain.RenderedInvoice, error)
}

// InvoiceSvcFacade combines all invoice service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
	InvoiceDocumentSvc
}

// InvoiceNumberSequencer assigns per user, per year invoice numbers.
type InvoiceNumberSequencer interface {
	// NextInvoiceNumber reserves the next sequence value for the issue year inside tx
	// and formats it as "<year>-<seq>".
	NextInvoiceNumber(ctx context.Context, tx pgx.Tx, userID string, issueDate time.Time) (string, error)
}

// InvoiceRenderer turns an invoice document into bytes. Equal documents render to equal bytes.
type InvoiceRenderer interface {
	RenderInvoice(doc domain.InvoiceDocument) ([]byte, error)
}

// InvoiceMetricsRecorder receives invoice lifecycle events.
type InvoiceMetricsRecorder interface {
	InvoiceCreated(status domain.InvoiceStatus)
	InvoiceNumberConflict()
	InvoicePDFRendered(duration time.Duration, err error)
}

// HealthSvc reports dependency status
type HealthSvc interface {
	// DatabaseConnected reports whether the database answered a ping.
	DatabaseConnected(ctx context.Context) bool
}
