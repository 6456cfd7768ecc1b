package dto

import (
	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentTermRequest defines a user owned payment term.
// discountPercent and discountDays must be given together.
type CreatePaymentTermRequest struct {
	Label           string           `json:"label" binding:"required"`
	NetDays         *int             `json:"netDays" binding:"required,min=0" example:"30"`
	DiscountPercent *decimal.Decimal `json:"discountPercent" binding:"omitempty,percent" swaggertype:"string" example:"2"`
	DiscountDays    *int             `json:"discountDays" binding:"omitempty,min=0" example:"14"`
}

// PaymentTermResponse defines the data returned for a payment term.
type PaymentTermResponse struct {
	PaymentTermID   string  `json:"id"`
	Label           string  `json:"label"`
	NetDays         int     `json:"netDays"`
	DiscountPercent *string `json:"discountPercent,omitempty" example:"2.00"`
	DiscountDays    *int    `json:"discountDays,omitempty"`
	IsDefault       bool    `json:"isDefault"`
}

// ToPaymentTermResponse converts a domain.PaymentTerm to PaymentTermResponse DTO
func ToPaymentTermResponse(t *domain.PaymentTerm) PaymentTermResponse {
	resp := PaymentTermResponse{
		PaymentTermID: t.PaymentTermID,
		Label:         t.Label,
		NetDays:       t.NetDays,
		IsDefault:     t.Scope.IsSystem(),
	}
	if t.Discount != nil {
		percent := formatMoney(t.Discount.Percent)
		days := t.Discount.Days
		resp.DiscountPercent = &percent
		resp.DiscountDays = &days
	}
	return resp
}

// ToPaymentTermResponses converts a slice of domain payment terms.
func ToPaymentTermResponses(terms []domain.PaymentTerm) []PaymentTermResponse {
	out := make([]PaymentTermResponse, len(terms))
	for i := range terms {
		out[i] = ToPaymentTermResponse(&terms[i])
	}
	return out
}
