package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payRequest struct {
	Amount   string `json:"amount" validate:"required,positive_decimal"`
	Quantity int    `json:"quantity" validate:"gte=1"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&payRequest{Amount: "12.50", Quantity: 1}))

	err := v.Validate(&payRequest{Amount: "-3", Quantity: 0, Email: "nope"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, map[string]string{
		"amount":   "positive_decimal",
		"quantity": "gte=1",
		"email":    "email",
	}, fields)
}

func TestValidator_PositiveDecimal(t *testing.T) {
	v := New()

	for _, bad := range []string{"0", "0.00", "abc", "-0.01"} {
		assert.Error(t, v.Validate(&payRequest{Amount: bad, Quantity: 1}), bad)
	}
	for _, good := range []string{"0.01", "100", "99999.99"} {
		assert.NoError(t, v.Validate(&payRequest{Amount: good, Quantity: 1}), good)
	}
}

func TestFieldErrors_IgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
