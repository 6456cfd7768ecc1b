package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TermScope tells whether a payment term is a system default or belongs to one user.
// The zero value is the system scope.
type TermScope struct {
	ownerUserID string
}

// SystemScope is shared by every user and cannot be modified through the API.
func SystemScope() TermScope {
	return TermScope{}
}

// OwnerScope scopes a term to a single user.
func OwnerScope(userID string) TermScope {
	return TermScope{ownerUserID: userID}
}

// IsSystem reports whether the scope is the shared default scope.
func (s TermScope) IsSystem() bool {
	return s.ownerUserID == ""
}

// OwnerUserID returns the owner and true for user scoped terms.
func (s TermScope) OwnerUserID() (string, bool) {
	return s.ownerUserID, s.ownerUserID != ""
}

// DiscountOffer is an early payment discount: Percent off when paid within Days.
// Percent and Days always travel together.
type DiscountOffer struct {
	Percent decimal.Decimal `json:"percent"`
	Days    int             `json:"days"`
}

// NewDiscountOffer builds an offer from optional parts. Both parts absent yields nil;
// exactly one present is a validation error.
func NewDiscountOffer(percent *decimal.Decimal, days *int) (*DiscountOffer, error) {
	switch {
	case percent == nil && days == nil:
		return nil, nil
	case percent == nil || days == nil:
		return nil, apperrors.NewValidationError("discountPercent and discountDays must be given together")
	}
	offer := &DiscountOffer{Percent: *percent, Days: *days}
	if err := offer.Validate(); err != nil {
		return nil, err
	}
	return offer, nil
}

// Validate checks the offer bounds.
func (o DiscountOffer) Validate() error {
	if err := ValidatePercent("discountPercent", o.Percent); err != nil {
		return err
	}
	return validateNonNegativeDays("discountDays", o.Days)
}

// Describe renders the offer as printed on invoices.
func (o DiscountOffer) Describe() string {
	return fmt.Sprintf("%s%% discount if paid within %d days", o.Percent.String(), o.Days)
}

// PaymentTerm fixes how many days a client has to pay and any early payment discount.
type PaymentTerm struct {
	PaymentTermID string         `json:"paymentTermID"`
	Scope         TermScope      `json:"-"`
	Label         string         `json:"label"`
	NetDays       int            `json:"netDays"`
	Discount      *DiscountOffer `json:"discount,omitempty"`
	AuditFields
}

// Validate checks label and day counts.
func (t PaymentTerm) Validate() error {
	if err := validateRequired("label", t.Label); err != nil {
		return err
	}
	if err := validateNonNegativeDays("netDays", t.NetDays); err != nil {
		return err
	}
	if t.Discount != nil {
		return t.Discount.Validate()
	}
	return nil
}

// VisibleTo reports whether userID may use the term.
func (t PaymentTerm) VisibleTo(userID string) bool {
	owner, owned := t.Scope.OwnerUserID()
	return !owned || owner == userID
}

// DueDate adds the net days to issueDate in calendar days.
func (t PaymentTerm) DueDate(issueDate time.Time) time.Time {
	return CalendarDate(issueDate).AddDate(0, 0, t.NetDays)
}

// SnapshotDiscount returns a copy of the discount offer that does not alias the term.
func (t PaymentTerm) SnapshotDiscount() *DiscountOffer {
	if t.Discount == nil {
		return nil
	}
	snapshot := *t.Discount
	return &snapshot
}

// DefaultPaymentTerms is the catalog seeded as system terms on startup.
// Seeding is keyed by label so it stays idempotent.
func DefaultPaymentTerms() []PaymentTerm {
	return []PaymentTerm{
		{Scope: SystemScope(), Label: "7 days net", NetDays: 7},
		{Scope: SystemScope(), Label: "14 days net", NetDays: 14},
		{Scope: SystemScope(), Label: "30 days net", NetDays: 30},
		{
			Scope:    SystemScope(),
			Label:    "14 days -2%, 30 days net",
			NetDays:  30,
			Discount: &DiscountOffer{Percent: decimal.NewFromInt(2), Days: 14},
		},
	}
}
