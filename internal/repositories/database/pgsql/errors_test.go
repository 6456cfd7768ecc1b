package pgsql

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapWriteError(t *testing.T) {
	numberTaken := mapWriteError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintInvoiceNumber}, "insert")
	assert.ErrorIs(t, numberTaken, apperrors.ErrInvoiceNumberTaken)
	assert.ErrorIs(t, numberTaken, apperrors.ErrConflict)

	missingRef := mapWriteError(&pgconn.PgError{Code: pgForeignKeyViolation, TableName: "invoices"}, "insert")
	assert.ErrorIs(t, missingRef, apperrors.ErrConflict)
	assert.NotErrorIs(t, missingRef, apperrors.ErrInvoiceNumberTaken)

	email := mapWriteError(fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintUserEmail}), "insert")
	assert.ErrorIs(t, email, apperrors.ErrDuplicate)

	check := mapWriteError(&pgconn.PgError{Code: pgCheckViolation, ConstraintName: "invoices_subtotal_check"}, "insert")
	assert.ErrorIs(t, check, apperrors.ErrValidation)

	other := mapWriteError(errors.New("connection reset"), "insert")
	var appErr *apperrors.AppError
	require.ErrorAs(t, other, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
}
