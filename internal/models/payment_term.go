package models

import "github.com/shopspring/decimal"

// PaymentTerm is a row of the payment_terms table. A NULL owner marks a system term.
type PaymentTerm struct {
	PaymentTermID   string              `db:"payment_term_id"`
	OwnerUserID     *string             `db:"owner_user_id"`
	Label           string              `db:"label"`
	NetDays         int                 `db:"net_days"`
	DiscountPercent decimal.NullDecimal `db:"discount_percent"`
	DiscountDays    *int                `db:"discount_days"`
	AuditFields
}
