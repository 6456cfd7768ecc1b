package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"github.com/SscSPs/freelance_books/internal/core/domain"
	portsrepo "github.com/SscSPs/freelance_books/internal/core/ports/repositories"
	"github.com/SscSPs/freelance_books/internal/models"
	"github.com/SscSPs/freelance_books/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryWithTx {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure implementation matches interface
var _ portsrepo.InvoiceRepositoryWithTx = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, owner_user_id, client_id, invoice_number, issue_date, due_date, status,
	subtotal, vat_rate, vat_amount, total_amount, discount_percent, discount_days, payment_term_id,
	created_at, last_updated_at`

// ReserveInvoiceSequence bumps the (owner, year) counter under the row lock taken by
// the upsert, so concurrent creators are serialised until tx ends. A fresh counter
// continues after the highest number already stored for that year.
func (r *PgxInvoiceRepository) ReserveInvoiceSequence(ctx context.Context, tx pgx.Tx, ownerUserID string, year int) (int, error) {
	query := `
		INSERT INTO invoice_sequences (owner_user_id, year, last_value)
		VALUES ($1::uuid, $2::int, 1 + (
			SELECT COALESCE(MAX(SPLIT_PART(invoice_number, '-', 2)::int), 0)
			FROM invoices
			WHERE owner_user_id = $1::uuid
			  AND invoice_number LIKE $2::int || '-%'
		))
		ON CONFLICT (owner_user_id, year)
		DO UPDATE SET last_value = invoice_sequences.last_value + 1
		RETURNING last_value;
	`
	var seq int
	if err := tx.QueryRow(ctx, query, ownerUserID, year).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to reserve invoice sequence for %d: %w", year, err)
	}
	return seq, nil
}

func (r *PgxInvoiceRepository) SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := tx.Exec(ctx, query,
		m.InvoiceID,
		m.OwnerUserID,
		m.ClientID,
		m.InvoiceNumber,
		m.IssueDate,
		m.DueDate,
		m.Status,
		m.Subtotal,
		m.VATRate,
		m.VATAmount,
		m.TotalAmount,
		m.DiscountPercent,
		m.DiscountDays,
		m.PaymentTermID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "failed to insert invoice "+m.InvoiceNumber)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	var m models.Invoice
	err := r.Pool.QueryRow(ctx, query, invoiceID).Scan(
		&m.InvoiceID,
		&m.OwnerUserID,
		&m.ClientID,
		&m.InvoiceNumber,
		&m.IssueDate,
		&m.DueDate,
		&m.Status,
		&m.Subtotal,
		&m.VATRate,
		&m.VATAmount,
		&m.TotalAmount,
		&m.DiscountPercent,
		&m.DiscountDays,
		&m.PaymentTermID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

func (r *PgxInvoiceRepository) ListInvoicesByOwner(ctx context.Context, ownerUserID string) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE owner_user_id = $1
		ORDER BY issue_date DESC, invoice_number DESC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	modelInvoices, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Invoice])
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoices: %w", err)
	}
	return mapping.ToDomainInvoiceSlice(modelInvoices), nil
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		UPDATE invoices
		SET issue_date = $1, due_date = $2, status = $3, subtotal = $4, vat_rate = $5,
			vat_amount = $6, total_amount = $7, discount_percent = $8, discount_days = $9,
			last_updated_at = $10
		WHERE invoice_id = $11 AND owner_user_id = $12;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.IssueDate,
		m.DueDate,
		m.Status,
		m.Subtotal,
		m.VATRate,
		m.VATAmount,
		m.TotalAmount,
		m.DiscountPercent,
		m.DiscountDays,
		m.LastUpdatedAt,
		m.InvoiceID,
		m.OwnerUserID,
	)
	if err != nil {
		return mapWriteError(err, "failed to update invoice "+m.InvoiceID)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s: %w", m.InvoiceID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string, ownerUserID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1 AND owner_user_id = $2;`, invoiceID, ownerUserID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
	}
	return nil
}
