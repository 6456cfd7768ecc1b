package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a row of the expenses table.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	OwnerUserID string          `db:"owner_user_id"`
	Amount      decimal.Decimal `db:"amount"`
	ExpenseDate time.Time       `db:"expense_date"`
	Category    string          `db:"category"`
	Description *string         `db:"description"`
	AuditFields
}
