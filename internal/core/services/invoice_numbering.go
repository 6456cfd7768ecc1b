package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/freelance_books/internal/core/domain"
	portsrepo "github.com/SscSPs/freelance_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freelance_books/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
)

// invoiceNumberSequencer formats numbers from per user, per year counters.
// Reservation happens inside the caller's transaction so a rolled back
// creation does not consume a number.
type invoiceNumberSequencer struct {
	BaseService
	reserver portsrepo.InvoiceSequenceReserver
}

// NewInvoiceNumberSequencer creates a sequencer backed by reserver.
func NewInvoiceNumberSequencer(reserver portsrepo.InvoiceSequenceReserver) portssvc.InvoiceNumberSequencer {
	return &invoiceNumberSequencer{BaseService: newBaseService(), reserver: reserver}
}

func (s *invoiceNumberSequencer) NextInvoiceNumber(ctx context.Context, tx pgx.Tx, userID string, issueDate time.Time) (string, error) {
	year := domain.InvoiceNumberYear(issueDate)
	seq, err := s.reserver.ReserveInvoiceSequence(ctx, tx, userID, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to reserve invoice sequence", slog.Int("year", year))
		return "", fmt.Errorf("failed to reserve invoice number: %w", err)
	}
	number := domain.FormatInvoiceNumber(year, seq)
	s.LogDebug(ctx, "Invoice number reserved", slog.String("invoice_number", number))
	return number, nil
}
