package handlers

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the domain specific binding tags to gin's validator:
// money, percent, expense_category and invoice_status.
func RegisterValidators() error {
	var err error
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
			return
		}
		err = registerDomainValidators(v)
	})
	return err
}

func registerDomainValidators(v *validator.Validate) error {
	// Decimals are validated through their string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	validations := map[string]validator.Func{
		"money":            validateMoney,
		"percent":          validatePercent,
		"expense_category": validateExpenseCategory,
		"invoice_status":   validateInvoiceStatus,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}

func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(fl.Field().String())
	return d, err == nil
}

func validateMoney(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && domain.ValidateAmount(fl.FieldName(), d) == nil
}

func validatePercent(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && domain.ValidatePercent(fl.FieldName(), d) == nil
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return domain.ExpenseCategory(fl.Field().String()).IsValid()
}

func validateInvoiceStatus(fl validator.FieldLevel) bool {
	return domain.InvoiceStatus(fl.Field().String()).IsValid()
}
