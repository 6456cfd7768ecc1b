package domain

import (
	"time"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used on the wire and in documents.
const DateLayout = "2006-01-02"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// CalendarDate truncates t to midnight UTC of its calendar day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseCalendarDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseCalendarDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatCalendarDate renders t as YYYY-MM-DD.
func FormatCalendarDate(t time.Time) string {
	return t.Format(DateLayout)
}

var hundred = decimal.NewFromInt(100)

// MaxAmount is the largest amount a NUMERIC(14,2) column can hold.
var MaxAmount = decimal.RequireFromString("999999999999.99")

// RoundMoney rounds to two decimals, half away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// hasAtMostTwoDecimals reports whether d carries no precision beyond cents.
func hasAtMostTwoDecimals(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

// ValidateAmount checks a non-negative monetary amount with at most two decimals.
func ValidateAmount(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return apperrors.NewValidationError("%s must not be negative", field)
	}
	if d.GreaterThan(MaxAmount) {
		return apperrors.NewValidationError("%s must not exceed %s", field, MaxAmount.StringFixed(2))
	}
	if !hasAtMostTwoDecimals(d) {
		return apperrors.NewValidationError("%s must have at most two decimal places", field)
	}
	return nil
}

// ValidatePercent checks a percentage in [0, 100] with at most two decimals.
func ValidatePercent(field string, d decimal.Decimal) error {
	if d.IsNegative() || d.GreaterThan(hundred) {
		return apperrors.NewValidationError("%s must be between 0 and 100", field)
	}
	if !hasAtMostTwoDecimals(d) {
		return apperrors.NewValidationError("%s must have at most two decimal places", field)
	}
	return nil
}

func validateRequired(field, value string) error {
	if value == "" {
		return apperrors.NewValidationError("%s is required", field)
	}
	return nil
}

func validateNonNegativeDays(field string, days int) error {
	if days < 0 {
		return apperrors.NewValidationError("%s must not be negative", field)
	}
	return nil
}
