package mapping

import (
	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/SscSPs/freelance_books/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	m := models.Invoice{
		InvoiceID:     d.InvoiceID,
		OwnerUserID:   d.OwnerUserID,
		ClientID:      d.ClientID,
		InvoiceNumber: d.InvoiceNumber,
		IssueDate:     d.IssueDate,
		DueDate:       d.DueDate,
		Status:        models.InvoiceStatus(d.Status),
		Subtotal:      d.Subtotal,
		VATRate:       d.VATRate,
		VATAmount:     d.VATAmount,
		TotalAmount:   d.TotalAmount,
		PaymentTermID: d.PaymentTermID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	m.DiscountPercent, m.DiscountDays = toModelDiscount(d.Discount)
	return m
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:     m.InvoiceID,
		OwnerUserID:   m.OwnerUserID,
		ClientID:      m.ClientID,
		InvoiceNumber: m.InvoiceNumber,
		IssueDate:     m.IssueDate,
		DueDate:       m.DueDate,
		Status:        domain.InvoiceStatus(m.Status),
		Subtotal:      m.Subtotal,
		VATRate:       m.VATRate,
		VATAmount:     m.VATAmount,
		TotalAmount:   m.TotalAmount,
		Discount:      toDomainDiscount(m.DiscountPercent, m.DiscountDays),
		PaymentTermID: m.PaymentTermID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to a slice of domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}
