package pgsql

import (
	portsrepo "github.com/SscSPs/freelance_books/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		ClientRepo:      newPgxClientRepository(dbPool),
		ExpenseRepo:     newPgxExpenseRepository(dbPool),
		PaymentTermRepo: newPgxPaymentTermRepository(dbPool),
		InvoiceRepo:     newPgxInvoiceRepository(dbPool),
		Health:          &BaseRepository{Pool: dbPool},
	}
}
