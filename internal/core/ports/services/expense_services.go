package services

import (
	"context"

	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/SscSPs/freelance_books/internal/dto"
)

// ExpenseSvcFacade defines operations on a user's expenses
type ExpenseSvcFacade interface {
	// ListExpenses retrieves a user's expenses, newest first.
	ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error)
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string, userID string) error
}
