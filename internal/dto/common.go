package dto

import (
	"time"

	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/shopspring/decimal"
)

// formatMoney renders an amount with exactly two decimals.
func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatDate(t time.Time) string {
	return domain.FormatCalendarDate(t)
}

// ParseOptionalDate parses a YYYY-MM-DD pointer, passing nil through.
func ParseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := domain.ParseCalendarDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
