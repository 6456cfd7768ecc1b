package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks where an invoice is in its user driven lifecycle.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceSent  InvoiceStatus = "sent"
	InvoicePaid  InvoiceStatus = "paid"
)

// IsValid reports whether s is one of the known statuses.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid:
		return true
	}
	return false
}

// DefaultVATRate applies when an invoice is created without an explicit rate.
var DefaultVATRate = decimal.RequireFromString("25.5")

// InvoiceAmounts is the derived money block of an invoice.
type InvoiceAmounts struct {
	Subtotal    decimal.Decimal
	VATRate     decimal.Decimal
	VATAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// ComputeInvoiceAmounts derives VAT and total:
// vat = round2(subtotal * rate / 100), total = subtotal + vat.
func ComputeInvoiceAmounts(subtotal, vatRate decimal.Decimal) (InvoiceAmounts, error) {
	if err := ValidateAmount("subtotal", subtotal); err != nil {
		return InvoiceAmounts{}, err
	}
	if err := ValidatePercent("vatRate", vatRate); err != nil {
		return InvoiceAmounts{}, err
	}
	vat := RoundMoney(subtotal.Mul(vatRate).Shift(-2))
	total := subtotal.Add(vat)
	if err := ValidateAmount("totalAmount", total); err != nil {
		return InvoiceAmounts{}, err
	}
	return InvoiceAmounts{
		Subtotal:    subtotal,
		VATRate:     vatRate,
		VATAmount:   vat,
		TotalAmount: total,
	}, nil
}

// Invoice is a bill issued by its owner to one of the owner's clients.
// Discount and DueDate are fixed at creation and never follow later changes
// to the payment term.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	OwnerUserID   string          `json:"ownerUserID"`
	ClientID      string          `json:"clientID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
	Status        InvoiceStatus   `json:"status"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	VATRate       decimal.Decimal `json:"vatRate"`
	VATAmount     decimal.Decimal `json:"vatAmount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Discount      *DiscountOffer  `json:"discount,omitempty"`
	PaymentTermID *string         `json:"paymentTermID,omitempty"`
	AuditFields
}

// ApplyAmounts copies a computed amount block onto the invoice.
func (i *Invoice) ApplyAmounts(a InvoiceAmounts) {
	i.Subtotal = a.Subtotal
	i.VATRate = a.VATRate
	i.VATAmount = a.VATAmount
	i.TotalAmount = a.TotalAmount
}

// Recompute derives VAT and total from the current subtotal and rate.
func (i *Invoice) Recompute() error {
	amounts, err := ComputeInvoiceAmounts(i.Subtotal, i.VATRate)
	if err != nil {
		return err
	}
	i.ApplyAmounts(amounts)
	return nil
}

// NewInvoiceParams carries the caller supplied inputs of an invoice.
type NewInvoiceParams struct {
	InvoiceID   string
	OwnerUserID string
	ClientID    string
	IssueDate   time.Time
	Subtotal    decimal.Decimal
	VATRate     decimal.Decimal
	Status      InvoiceStatus
	CreatedAt   time.Time
}

// NewInvoice builds an unnumbered invoice from its inputs and a resolved payment term.
// The number is assigned separately once a sequence value has been reserved.
func NewInvoice(p NewInvoiceParams, term PaymentTerm) (Invoice, error) {
	if p.Status == "" {
		p.Status = InvoiceDraft
	}
	if !p.Status.IsValid() {
		return Invoice{}, apperrors.NewValidationError("unknown invoice status %q", p.Status)
	}
	amounts, err := ComputeInvoiceAmounts(p.Subtotal, p.VATRate)
	if err != nil {
		return Invoice{}, err
	}
	issue := CalendarDate(p.IssueDate)
	termID := term.PaymentTermID
	inv := Invoice{
		InvoiceID:     p.InvoiceID,
		OwnerUserID:   p.OwnerUserID,
		ClientID:      p.ClientID,
		IssueDate:     issue,
		DueDate:       term.DueDate(issue),
		Status:        p.Status,
		Discount:      term.SnapshotDiscount(),
		PaymentTermID: &termID,
		AuditFields: AuditFields{
			CreatedAt:     p.CreatedAt,
			LastUpdatedAt: p.CreatedAt,
		},
	}
	inv.ApplyAmounts(amounts)
	return inv, nil
}

// InvoiceNumberYear is the calendar year that scopes an invoice's sequence.
func InvoiceNumberYear(issueDate time.Time) int {
	return issueDate.Year()
}

// FormatInvoiceNumber renders "<year>-<seq>" with the sequence zero padded to four digits.
func FormatInvoiceNumber(year, seq int) string {
	return fmt.Sprintf("%d-%04d", year, seq)
}

// InvoiceUpdate is a partial change. Nil fields keep their current value.
type InvoiceUpdate struct {
	IssueDate       *time.Time
	DueDate         *time.Time
	Subtotal        *decimal.Decimal
	VATRate         *decimal.Decimal
	Status          *InvoiceStatus
	DiscountPercent *decimal.Decimal
	DiscountDays    *int
}

// Apply merges u into the invoice and recomputes amounts when subtotal or rate changed.
// Status may move to any known value; transitions are not restricted.
func (i *Invoice) Apply(u InvoiceUpdate, now time.Time) error {
	if u.IssueDate != nil {
		i.IssueDate = CalendarDate(*u.IssueDate)
	}
	if u.DueDate != nil {
		i.DueDate = CalendarDate(*u.DueDate)
	}
	if u.Status != nil {
		if !u.Status.IsValid() {
			return apperrors.NewValidationError("unknown invoice status %q", *u.Status)
		}
		i.Status = *u.Status
	}
	if u.DiscountPercent != nil || u.DiscountDays != nil {
		discount, err := mergeDiscount(i.Discount, u.DiscountPercent, u.DiscountDays)
		if err != nil {
			return err
		}
		i.Discount = discount
	}
	if u.Subtotal != nil || u.VATRate != nil {
		if u.Subtotal != nil {
			i.Subtotal = *u.Subtotal
		}
		if u.VATRate != nil {
			i.VATRate = *u.VATRate
		}
		if err := i.Recompute(); err != nil {
			return err
		}
	}
	i.LastUpdatedAt = now
	return nil
}

func mergeDiscount(current *DiscountOffer, percent *decimal.Decimal, days *int) (*DiscountOffer, error) {
	if current != nil {
		if percent == nil {
			percent = &current.Percent
		}
		if days == nil {
			days = &current.Days
		}
	}
	return NewDiscountOffer(percent, days)
}

// InvoiceWithClient is the read model returned by invoice queries.
type InvoiceWithClient struct {
	Invoice
	Client *Client
}
