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

type PgxPaymentTermRepository struct {
	BaseRepository
}

func newPgxPaymentTermRepository(pool *pgxpool.Pool) portsrepo.PaymentTermRepositoryFacade {
	return &PgxPaymentTermRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentTermRepositoryFacade = (*PgxPaymentTermRepository)(nil)

const paymentTermColumns = `payment_term_id, owner_user_id, label, net_days, discount_percent, discount_days, created_at, last_updated_at`

func (r *PgxPaymentTermRepository) FindPaymentTermByID(ctx context.Context, paymentTermID string) (*domain.PaymentTerm, error) {
	query := `SELECT ` + paymentTermColumns + ` FROM payment_terms WHERE payment_term_id = $1;`
	var m models.PaymentTerm
	err := r.Pool.QueryRow(ctx, query, paymentTermID).Scan(
		&m.PaymentTermID,
		&m.OwnerUserID,
		&m.Label,
		&m.NetDays,
		&m.DiscountPercent,
		&m.DiscountDays,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment term by ID %s: %w", paymentTermID, err)
	}
	term := mapping.ToDomainPaymentTerm(m)
	return &term, nil
}

func (r *PgxPaymentTermRepository) ListVisiblePaymentTerms(ctx context.Context, userID string) ([]domain.PaymentTerm, error) {
	query := `
		SELECT ` + paymentTermColumns + `
		FROM payment_terms
		WHERE owner_user_id IS NULL OR owner_user_id = $1
		ORDER BY net_days ASC, (owner_user_id IS NOT NULL) ASC, label ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment terms: %w", err)
	}
	modelTerms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PaymentTerm])
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment terms: %w", err)
	}
	return mapping.ToDomainPaymentTermSlice(modelTerms), nil
}

func (r *PgxPaymentTermRepository) SavePaymentTerm(ctx context.Context, term domain.PaymentTerm) error {
	m := mapping.ToModelPaymentTerm(term)
	query := `
		INSERT INTO payment_terms (` + paymentTermColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentTermID, m.OwnerUserID, m.Label, m.NetDays, m.DiscountPercent, m.DiscountDays, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "failed to save payment term "+m.PaymentTermID)
	}
	return nil
}

func (r *PgxPaymentTermRepository) DeleteOwnedPaymentTerm(ctx context.Context, paymentTermID string, ownerUserID string) error {
	query := `DELETE FROM payment_terms WHERE payment_term_id = $1 AND owner_user_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, paymentTermID, ownerUserID)
	if err != nil {
		return fmt.Errorf("failed to delete payment term %s: %w", paymentTermID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payment term %s: %w", paymentTermID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPaymentTermRepository) SeedSystemPaymentTerms(ctx context.Context, terms []domain.PaymentTerm) (int, error) {
	query := `
		INSERT INTO payment_terms (` + paymentTermColumns + `)
		VALUES ($1, NULL, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (label) WHERE owner_user_id IS NULL DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, term := range terms {
		if !term.Scope.IsSystem() {
			return 0, fmt.Errorf("seed term %q is not a system term: %w", term.Label, apperrors.ErrValidation)
		}
		m := mapping.ToModelPaymentTerm(term)
		batch.Queue(query, m.PaymentTermID, m.Label, m.NetDays, m.DiscountPercent, m.DiscountDays, m.CreatedAt, m.LastUpdatedAt)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range terms {
		cmdTag, err := results.Exec()
		if err != nil {
			return inserted, mapWriteError(err, "failed to seed payment terms")
		}
		inserted += int(cmdTag.RowsAffected())
	}
	return inserted, nil
}
