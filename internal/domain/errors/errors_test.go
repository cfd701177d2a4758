package errors

import (
	"net/http"
	"testing"

	"shop/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrInsufficientFunds.WithDetails("balance 10.00, need 20.00")

	assert.ErrorIs(t, detailed, ErrInsufficientFunds)
	assert.ErrorIs(t, errors.Wrap(detailed, "pay"), ErrInsufficientFunds)
	assert.NotErrorIs(t, detailed, ErrWalletNotFound)
	assert.Equal(t, "balance 10.00, need 20.00", detailed.Details())
	assert.Empty(t, ErrInsufficientFunds.Details())
}

func TestBaseError_AsAppError(t *testing.T) {
	err := ErrPromoCodeExpired.WrapMessage("redeem")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "PROMO_CODE_EXPIRED", appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert order")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
}
