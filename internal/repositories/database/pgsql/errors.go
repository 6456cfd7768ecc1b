package pgsql

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"

	constraintInvoiceNumber = "invoices_owner_number_key"
	constraintUserEmail     = "users_email_key"
)

// mapWriteError translates postgres constraint failures into application errors.
func mapWriteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if pgErr.ConstraintName == constraintInvoiceNumber {
				return fmt.Errorf("%s: %w", msg, apperrors.ErrInvoiceNumberTaken)
			}
			if pgErr.ConstraintName == constraintUserEmail {
				return apperrors.NewAppError(http.StatusConflict, "email already registered", apperrors.ErrDuplicate)
			}
			return fmt.Errorf("%s: %w", msg, apperrors.ErrDuplicate)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: still referenced by %s: %w", msg, pgErr.TableName, apperrors.ErrConflict)
		case pgCheckViolation:
			return fmt.Errorf("%s: %s: %w", msg, pgErr.ConstraintName, apperrors.ErrValidation)
		}
	}
	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}
