package dto

import (
	"time"

	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to issue an invoice.
// vatRate defaults to the configured rate and status to draft.
type CreateInvoiceRequest struct {
	ClientID      string           `json:"clientId" binding:"required,uuid"`
	IssueDate     string           `json:"issueDate" binding:"required,datetime=2006-01-02" example:"2024-01-20"`
	Subtotal      *decimal.Decimal `json:"subtotal" binding:"required,money" swaggertype:"string" example:"1000.00"`
	VATRate       *decimal.Decimal `json:"vatRate" binding:"omitempty,percent" swaggertype:"string" example:"25.5"`
	Status        *string          `json:"status" binding:"omitempty,invoice_status"`
	PaymentTermID string           `json:"paymentTermId" binding:"required,uuid"`
}

// UpdateInvoiceRequest changes an invoice. Omitted fields keep their value.
// VAT and total are recomputed when subtotal or vatRate change; dueDate is
// only changed when given explicitly.
type UpdateInvoiceRequest struct {
	IssueDate       *string          `json:"issueDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate         *string          `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Subtotal        *decimal.Decimal `json:"subtotal" binding:"omitempty,money" swaggertype:"string"`
	VATRate         *decimal.Decimal `json:"vatRate" binding:"omitempty,percent" swaggertype:"string"`
	Status          *string          `json:"status" binding:"omitempty,invoice_status"`
	DiscountPercent *decimal.Decimal `json:"discountPercent" binding:"omitempty,percent" swaggertype:"string"`
	DiscountDays    *int             `json:"discountDays" binding:"omitempty,min=0"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID       string         `json:"id"`
	InvoiceNumber   string         `json:"invoiceNumber" example:"2024-0001"`
	ClientID        string         `json:"clientId"`
	Client          *ClientSummary `json:"client,omitempty"`
	IssueDate       string         `json:"issueDate" example:"2024-01-20"`
	DueDate         string         `json:"dueDate" example:"2024-02-03"`
	Status          string         `json:"status" example:"draft"`
	Subtotal        string         `json:"subtotal" example:"1000.00"`
	VATRate         string         `json:"vatRate" example:"25.50"`
	VATAmount       string         `json:"vatAmount" example:"255.00"`
	TotalAmount     string         `json:"totalAmount" example:"1255.00"`
	DiscountPercent *string        `json:"discountPercent,omitempty"`
	DiscountDays    *int           `json:"discountDays,omitempty"`
	PaymentTermID   *string        `json:"paymentTermId,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	LastUpdatedAt   time.Time      `json:"lastUpdatedAt"`
}

// ToInvoiceResponse converts a domain.InvoiceWithClient to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.InvoiceWithClient) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientID:      inv.ClientID,
		Client:        toClientSummary(inv.Client),
		IssueDate:     formatDate(inv.IssueDate),
		DueDate:       formatDate(inv.DueDate),
		Status:        string(inv.Status),
		Subtotal:      formatMoney(inv.Subtotal),
		VATRate:       formatMoney(inv.VATRate),
		VATAmount:     formatMoney(inv.VATAmount),
		TotalAmount:   formatMoney(inv.TotalAmount),
		PaymentTermID: inv.PaymentTermID,
		CreatedAt:     inv.CreatedAt,
		LastUpdatedAt: inv.LastUpdatedAt,
	}
	if inv.Discount != nil {
		percent := formatMoney(inv.Discount.Percent)
		days := inv.Discount.Days
		resp.DiscountPercent = &percent
		resp.DiscountDays = &days
	}
	return resp
}

// ToInvoiceResponses converts a slice of invoices with their clients.
func ToInvoiceResponses(invoices []domain.InvoiceWithClient) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = ToInvoiceResponse(&invoices[i])
	}
	return out
}
