package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsWrapSentinels(t *testing.T) {
	v := NewValidationError("subtotal must not be negative")
	assert.ErrorIs(t, v, ErrValidation)
	assert.Equal(t, "subtotal must not be negative: validation error", v.Error())

	nf := fmt.Errorf("lookup failed: %w", NewNotFoundError("client"))
	assert.ErrorIs(t, nf, ErrNotFound)
	assert.Equal(t, "client not found", PublicMessage(nf, "fallback"))
}

func TestPublicMessage_Fallback(t *testing.T) {
	assert.Equal(t, "fallback", PublicMessage(errors.New("plain"), "fallback"))
	assert.Equal(t, "fallback", PublicMessage(fmt.Errorf("x: %w", ErrNotFound), "fallback"))
}
