package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"github.com/SscSPs/freelance_books/internal/core/domain"
	portsrepo "github.com/SscSPs/freelance_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freelance_books/internal/core/ports/services"
	"github.com/SscSPs/freelance_books/internal/dto"
	"github.com/google/uuid"
)

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{BaseService: newBaseService(), expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpensesByOwner(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, nil
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	if req.Amount == nil {
		return nil, apperrors.NewValidationError("amount is required")
	}
	date, err := domain.ParseCalendarDate(req.Date)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		OwnerUserID: userID,
		Amount:      *req.Amount,
		Date:        date,
		Category:    domain.ExpenseCategory(req.Category),
		Description: optionalText(req.Description),
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := expense.Validate(); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense")
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	s.LogInfo(ctx, "Expense recorded", slog.String("expense_id", expense.ExpenseID))
	return &expense, nil
}

func (s *expenseService) getOwnedExpense(ctx context.Context, expenseID, userID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("expense")
		}
		s.LogError(ctx, err, "Failed to find expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	if expense.OwnerUserID != userID {
		return nil, apperrors.NewNotFoundError("expense")
	}
	return expense, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error) {
	expense, err := s.getOwnedExpense(ctx, expenseID, userID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := domain.ParseCalendarDate(*req.Date)
		if err != nil {
			return nil, err
		}
		expense.Date = date
	}
	if req.Category != nil {
		expense.Category = domain.ExpenseCategory(*req.Category)
	}
	if req.Description != nil {
		expense.Description = optionalText(req.Description)
	}
	expense.LastUpdatedAt = s.Now()
	if err := expense.Validate(); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, userID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("expense")
		}
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
