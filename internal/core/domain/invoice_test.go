package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func intPtr(i int) *int {
	return &i
}

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeInvoiceAmounts(t *testing.T) {
	tests := []struct {
		name      string
		subtotal  string
		vatRate   string
		wantVAT   string
		wantTotal string
	}{
		{name: "default finnish rate", subtotal: "1000", vatRate: "25.5", wantVAT: "255", wantTotal: "1255"},
		{name: "rounds up at half cent", subtotal: "0.05", vatRate: "10", wantVAT: "0.01", wantTotal: "0.06"},
		{name: "rounds down below half cent", subtotal: "0.04", vatRate: "10", wantVAT: "0", wantTotal: "0.04"},
		{name: "fractional product", subtotal: "99.99", vatRate: "24", wantVAT: "24", wantTotal: "123.99"},
		{name: "zero rate", subtotal: "500.50", vatRate: "0", wantVAT: "0", wantTotal: "500.5"},
		{name: "zero subtotal", subtotal: "0", vatRate: "25.5", wantVAT: "0", wantTotal: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ComputeInvoiceAmounts(dec(tt.subtotal), dec(tt.vatRate))
			require.NoError(t, err)
			assert.True(t, dec(tt.wantVAT).Equal(got.VATAmount), "vat: got %s", got.VATAmount)
			assert.True(t, dec(tt.wantTotal).Equal(got.TotalAmount), "total: got %s", got.TotalAmount)
			assert.True(t, got.Subtotal.Add(got.VATAmount).Equal(got.TotalAmount))
		})
	}
}

func TestComputeInvoiceAmounts_Stable(t *testing.T) {
	first, err := domain.ComputeInvoiceAmounts(dec("1234.56"), dec("25.5"))
	require.NoError(t, err)
	second, err := domain.ComputeInvoiceAmounts(first.Subtotal, first.VATRate)
	require.NoError(t, err)
	assert.True(t, first.VATAmount.Equal(second.VATAmount))
	assert.True(t, first.TotalAmount.Equal(second.TotalAmount))
}

func TestComputeInvoiceAmounts_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		vatRate  string
	}{
		{name: "negative subtotal", subtotal: "-1", vatRate: "10"},
		{name: "sub-cent subtotal", subtotal: "10.001", vatRate: "10"},
		{name: "rate above hundred", subtotal: "10", vatRate: "100.01"},
		{name: "negative rate", subtotal: "10", vatRate: "-5"},
		{name: "subtotal above column range", subtotal: "1000000000000", vatRate: "0"},
		{name: "total above column range", subtotal: "999999999999.99", vatRate: "100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ComputeInvoiceAmounts(dec(tt.subtotal), dec(tt.vatRate))
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestComputeInvoiceAmounts_LargestTotal(t *testing.T) {
	got, err := domain.ComputeInvoiceAmounts(dec("499999999999.99"), dec("100"))
	require.NoError(t, err)
	assert.True(t, domain.MaxAmount.Sub(dec("0.01")).Equal(got.TotalAmount), "total: got %s", got.TotalAmount)

	_, err = domain.ComputeInvoiceAmounts(dec("999999999999.99"), dec("0"))
	assert.NoError(t, err)
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "2024-0001", domain.FormatInvoiceNumber(2024, 1))
	assert.Equal(t, "2024-0042", domain.FormatInvoiceNumber(2024, 42))
	assert.Equal(t, "2025-9999", domain.FormatInvoiceNumber(2025, 9999))
	assert.Equal(t, "2025-10000", domain.FormatInvoiceNumber(2025, 10000))
}

func TestNewInvoice(t *testing.T) {
	term := domain.PaymentTerm{
		PaymentTermID: "term-1",
		Label:         "14 days -2%, 30 days net",
		NetDays:       14,
		Discount:      &domain.DiscountOffer{Percent: dec("2"), Days: 7},
	}
	now := time.Date(2024, 1, 20, 15, 4, 5, 0, time.UTC)

	inv, err := domain.NewInvoice(domain.NewInvoiceParams{
		InvoiceID:   "inv-1",
		OwnerUserID: "user-1",
		ClientID:    "client-1",
		IssueDate:   date("2024-01-20"),
		Subtotal:    dec("1000"),
		VATRate:     dec("25.5"),
		CreatedAt:   now,
	}, term)
	require.NoError(t, err)

	assert.Equal(t, domain.InvoiceDraft, inv.Status)
	assert.Equal(t, date("2024-02-03"), inv.DueDate)
	assert.True(t, dec("255").Equal(inv.VATAmount))
	require.NotNil(t, inv.PaymentTermID)
	assert.Equal(t, "term-1", *inv.PaymentTermID)
	require.NotNil(t, inv.Discount)
	assert.Equal(t, 7, inv.Discount.Days)

	// later edits to the term must not leak into the snapshot
	term.Discount.Percent = dec("5")
	term.Discount.Days = 30
	assert.True(t, dec("2").Equal(inv.Discount.Percent))
	assert.Equal(t, 7, inv.Discount.Days)
}

func TestNewInvoice_InvalidStatus(t *testing.T) {
	_, err := domain.NewInvoice(domain.NewInvoiceParams{
		IssueDate: date("2024-01-20"),
		Subtotal:  dec("10"),
		VATRate:   dec("10"),
		Status:    "void",
	}, domain.PaymentTerm{NetDays: 7})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestInvoiceApply_StatusCycle(t *testing.T) {
	inv := domain.Invoice{Status: domain.InvoiceDraft, Subtotal: dec("10"), VATRate: dec("10")}
	for _, next := range []domain.InvoiceStatus{domain.InvoiceSent, domain.InvoicePaid, domain.InvoiceDraft, domain.InvoicePaid} {
		status := next
		require.NoError(t, inv.Apply(domain.InvoiceUpdate{Status: &status}, time.Now()))
		assert.Equal(t, next, inv.Status)
	}
}

func TestInvoiceApply_RecomputesOnlyWhenMoneyChanges(t *testing.T) {
	inv := domain.Invoice{Subtotal: dec("100"), VATRate: dec("24")}
	require.NoError(t, inv.Recompute())
	due := date("2024-03-01")
	inv.DueDate = due

	require.NoError(t, inv.Apply(domain.InvoiceUpdate{Subtotal: decimalPtr(dec("200"))}, time.Now()))
	assert.True(t, dec("48").Equal(inv.VATAmount))
	assert.True(t, dec("248").Equal(inv.TotalAmount))

	require.NoError(t, inv.Apply(domain.InvoiceUpdate{VATRate: decimalPtr(dec("10"))}, time.Now()))
	assert.True(t, dec("20").Equal(inv.VATAmount))
	assert.True(t, dec("220").Equal(inv.TotalAmount))

	newIssue := date("2024-02-10")
	require.NoError(t, inv.Apply(domain.InvoiceUpdate{IssueDate: &newIssue}, time.Now()))
	assert.Equal(t, due, inv.DueDate, "due date is never recomputed")
}

func TestInvoiceApply_Discount(t *testing.T) {
	t.Run("partial update merges with existing offer", func(t *testing.T) {
		inv := domain.Invoice{Discount: &domain.DiscountOffer{Percent: dec("2"), Days: 14}}
		require.NoError(t, inv.Apply(domain.InvoiceUpdate{DiscountDays: intPtr(10)}, time.Now()))
		require.NotNil(t, inv.Discount)
		assert.True(t, dec("2").Equal(inv.Discount.Percent))
		assert.Equal(t, 10, inv.Discount.Days)
	})

	t.Run("half an offer without existing one is rejected", func(t *testing.T) {
		inv := domain.Invoice{}
		err := inv.Apply(domain.InvoiceUpdate{DiscountPercent: decimalPtr(dec("3"))}, time.Now())
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Nil(t, inv.Discount)
	})

	t.Run("both parts create a new offer", func(t *testing.T) {
		inv := domain.Invoice{}
		err := inv.Apply(domain.InvoiceUpdate{DiscountPercent: decimalPtr(dec("3")), DiscountDays: intPtr(5)}, time.Now())
		require.NoError(t, err)
		require.NotNil(t, inv.Discount)
		assert.Equal(t, 5, inv.Discount.Days)
	})
}
