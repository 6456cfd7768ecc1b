package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus mirrors the invoice_status column values.
type InvoiceStatus string

// Invoice is a row of the invoices table.
type Invoice struct {
	InvoiceID       string              `db:"invoice_id"`
	OwnerUserID     string              `db:"owner_user_id"`
	ClientID        string              `db:"client_id"`
	InvoiceNumber   string              `db:"invoice_number"`
	IssueDate       time.Time           `db:"issue_date"`
	DueDate         time.Time           `db:"due_date"`
	Status          InvoiceStatus       `db:"status"`
	Subtotal        decimal.Decimal     `db:"subtotal"`
	VATRate         decimal.Decimal     `db:"vat_rate"`
	VATAmount       decimal.Decimal     `db:"vat_amount"`
	TotalAmount     decimal.Decimal     `db:"total_amount"`
	DiscountPercent decimal.NullDecimal `db:"discount_percent"`
	DiscountDays    *int                `db:"discount_days"`
	PaymentTermID   *string             `db:"payment_term_id"`
	AuditFields
}

// InvoiceSequence is the per user and year counter row behind invoice numbers.
type InvoiceSequence struct {
	OwnerUserID string `db:"owner_user_id"`
	Year        int    `db:"year"`
	LastValue   int    `db:"last_value"`
}
