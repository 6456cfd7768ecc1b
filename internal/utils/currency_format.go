package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with two decimals and a trailing currency symbol.
// Example: 1255.5 with "€" returns "1255.50 €"
func FormatMoney(amount decimal.Decimal, symbol string) string {
	s := amount.StringFixed(2)
	if symbol == "" {
		return s
	}
	return s + " " + symbol
}

// FormatPercent renders a rate without trailing zeros.
// Example: 25.50 returns "25.5", 24.00 returns "24"
func FormatPercent(rate decimal.Decimal) string {
	s := rate.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}
