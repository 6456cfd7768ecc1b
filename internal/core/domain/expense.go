package domain

import (
	"time"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ExpenseCategory is one of a fixed set of bookkeeping labels.
type ExpenseCategory string

const (
	ExpenseTravel    ExpenseCategory = "travel"
	ExpenseOffice    ExpenseCategory = "office"
	ExpenseSoftware  ExpenseCategory = "software"
	ExpenseHardware  ExpenseCategory = "hardware"
	ExpenseMarketing ExpenseCategory = "marketing"
	ExpenseTraining  ExpenseCategory = "training"
	ExpenseOther     ExpenseCategory = "other"
)

// ExpenseCategories lists the accepted categories in display order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseTravel, ExpenseOffice, ExpenseSoftware, ExpenseHardware,
	ExpenseMarketing, ExpenseTraining, ExpenseOther,
}

// IsValid reports whether c is a known category.
func (c ExpenseCategory) IsValid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense is a single business cost.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	OwnerUserID string          `json:"ownerUserID"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    ExpenseCategory `json:"category"`
	Description *string         `json:"description,omitempty"`
	AuditFields
}

// Validate checks amount, category and ownership.
func (e Expense) Validate() error {
	if err := validateRequired("ownerUserID", e.OwnerUserID); err != nil {
		return err
	}
	if err := ValidateAmount("amount", e.Amount); err != nil {
		return err
	}
	if e.Date.IsZero() {
		return apperrors.NewValidationError("date is required")
	}
	if !e.Category.IsValid() {
		return apperrors.NewValidationError("unknown expense category %q", e.Category)
	}
	return nil
}
