package domain_test

import (
	"testing"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermScope(t *testing.T) {
	system := domain.SystemScope()
	assert.True(t, system.IsSystem())
	_, owned := system.OwnerUserID()
	assert.False(t, owned)

	scoped := domain.OwnerScope("user-1")
	assert.False(t, scoped.IsSystem())
	owner, owned := scoped.OwnerUserID()
	assert.True(t, owned)
	assert.Equal(t, "user-1", owner)

	var zero domain.TermScope
	assert.True(t, zero.IsSystem())
}

func TestPaymentTerm_VisibleTo(t *testing.T) {
	system := domain.PaymentTerm{Scope: domain.SystemScope()}
	own := domain.PaymentTerm{Scope: domain.OwnerScope("user-1")}

	assert.True(t, system.VisibleTo("user-1"))
	assert.True(t, system.VisibleTo("user-2"))
	assert.True(t, own.VisibleTo("user-1"))
	assert.False(t, own.VisibleTo("user-2"))
}

func TestPaymentTerm_DueDate(t *testing.T) {
	tests := []struct {
		issue   string
		netDays int
		want    string
	}{
		{issue: "2024-01-20", netDays: 14, want: "2024-02-03"},
		{issue: "2024-02-20", netDays: 14, want: "2024-03-05"},
		{issue: "2023-02-20", netDays: 14, want: "2023-03-06"},
		{issue: "2024-12-25", netDays: 7, want: "2025-01-01"},
		{issue: "2024-05-05", netDays: 0, want: "2024-05-05"},
	}
	for _, tt := range tests {
		t.Run(tt.issue, func(t *testing.T) {
			term := domain.PaymentTerm{NetDays: tt.netDays}
			assert.Equal(t, date(tt.want), term.DueDate(date(tt.issue)))
		})
	}
}

func TestNewDiscountOffer(t *testing.T) {
	offer, err := domain.NewDiscountOffer(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, offer)

	_, err = domain.NewDiscountOffer(decimalPtr(dec("2")), nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewDiscountOffer(nil, intPtr(14))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewDiscountOffer(decimalPtr(dec("120")), intPtr(14))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewDiscountOffer(decimalPtr(dec("2")), intPtr(-1))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	offer, err = domain.NewDiscountOffer(decimalPtr(dec("2.5")), intPtr(10))
	require.NoError(t, err)
	assert.Equal(t, "2.5% discount if paid within 10 days", offer.Describe())
}

func TestPaymentTerm_Validate(t *testing.T) {
	assert.NoError(t, domain.PaymentTerm{Label: "30 days net", NetDays: 30}.Validate())
	assert.ErrorIs(t, domain.PaymentTerm{NetDays: 30}.Validate(), apperrors.ErrValidation)
	assert.ErrorIs(t, domain.PaymentTerm{Label: "x", NetDays: -1}.Validate(), apperrors.ErrValidation)
}

func TestDefaultPaymentTerms(t *testing.T) {
	terms := domain.DefaultPaymentTerms()
	require.Len(t, terms, 4)
	labels := map[string]bool{}
	for _, term := range terms {
		assert.True(t, term.Scope.IsSystem())
		assert.NoError(t, term.Validate())
		assert.False(t, labels[term.Label], "labels key the seed and must be unique")
		labels[term.Label] = true
	}
	offer := terms[3].Discount
	require.NotNil(t, offer)
	assert.Equal(t, 14, offer.Days)
	assert.Equal(t, 30, terms[3].NetDays)
}
