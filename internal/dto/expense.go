package dto

import (
	"time"

	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required,money" swaggertype:"string" example:"49.90"`
	Date        string           `json:"date" binding:"required,datetime=2006-01-02" example:"2024-01-20"`
	Category    string           `json:"category" binding:"required,expense_category" example:"software"`
	Description *string          `json:"description"`
}

// UpdateExpenseRequest changes an expense. Omitted fields keep their value.
type UpdateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty,money" swaggertype:"string"`
	Date        *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Category    *string          `json:"category" binding:"omitempty,expense_category"`
	Description *string          `json:"description"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string    `json:"id"`
	Amount      string    `json:"amount" example:"49.90"`
	Date        string    `json:"date" example:"2024-01-20"`
	Category    string    `json:"category"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Amount:      formatMoney(e.Amount),
		Date:        formatDate(e.Date),
		Category:    string(e.Category),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// ToExpenseResponses converts a slice of domain expenses.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = ToExpenseResponse(&expenses[i])
	}
	return out
}
