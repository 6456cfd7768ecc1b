package mapping

import (
	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/SscSPs/freelance_books/internal/models"
	"github.com/shopspring/decimal"
)

// toModelDiscount splits an offer into its nullable columns.
func toModelDiscount(o *domain.DiscountOffer) (decimal.NullDecimal, *int) {
	if o == nil {
		return decimal.NullDecimal{}, nil
	}
	days := o.Days
	return decimal.NewNullDecimal(o.Percent), &days
}

// toDomainDiscount joins the nullable columns back into an offer.
// Rows with only one column set are treated as having no offer.
func toDomainDiscount(percent decimal.NullDecimal, days *int) *domain.DiscountOffer {
	if !percent.Valid || days == nil {
		return nil
	}
	return &domain.DiscountOffer{Percent: percent.Decimal, Days: *days}
}

// ToModelPaymentTerm converts a domain PaymentTerm to a model PaymentTerm
func ToModelPaymentTerm(d domain.PaymentTerm) models.PaymentTerm {
	m := models.PaymentTerm{
		PaymentTermID: d.PaymentTermID,
		Label:         d.Label,
		NetDays:       d.NetDays,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if owner, ok := d.Scope.OwnerUserID(); ok {
		m.OwnerUserID = &owner
	}
	m.DiscountPercent, m.DiscountDays = toModelDiscount(d.Discount)
	return m
}

// ToDomainPaymentTerm converts a model PaymentTerm to a domain PaymentTerm
func ToDomainPaymentTerm(m models.PaymentTerm) domain.PaymentTerm {
	scope := domain.SystemScope()
	if m.OwnerUserID != nil {
		scope = domain.OwnerScope(*m.OwnerUserID)
	}
	return domain.PaymentTerm{
		PaymentTermID: m.PaymentTermID,
		Scope:         scope,
		Label:         m.Label,
		NetDays:       m.NetDays,
		Discount:      toDomainDiscount(m.DiscountPercent, m.DiscountDays),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentTermSlice converts a slice of model PaymentTerms to a slice of domain PaymentTerms
func ToDomainPaymentTermSlice(ms []models.PaymentTerm) []domain.PaymentTerm {
	ds := make([]domain.PaymentTerm, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentTerm(m)
	}
	return ds
}
