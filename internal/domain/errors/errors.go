package errors

import (
	"net/http"

	"shop/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still match their predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

func newError(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

// Predefined error types
var (
	// Lookup errors
	ErrProductNotFound         = newError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
	ErrCartItemNotFound        = newError(http.StatusNotFound, "CART_ITEM_NOT_FOUND", "Product is not in the cart")
	ErrShippingAddressNotFound = newError(http.StatusNotFound, "SHIPPING_ADDRESS_NOT_FOUND", "No shipping address on file")
	ErrWalletNotFound          = newError(http.StatusNotFound, "WALLET_NOT_FOUND", "Wallet not found")
	ErrPromoCodeNotFound       = newError(http.StatusNotFound, "PROMO_CODE_NOT_FOUND", "Promo code not found")
	ErrOrderNotFound           = newError(http.StatusNotFound, "ORDER_NOT_FOUND", "No order found for this product")
	ErrUserNotFound            = newError(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrReviewNotFound          = newError(http.StatusNotFound, "REVIEW_NOT_FOUND", "Review not found")

	// Uniqueness conflicts
	ErrCartItemAlreadyExists = newError(http.StatusConflict, "CART_ITEM_ALREADY_EXISTS", "Product is already in the cart")
	ErrReviewAlreadyExists   = newError(http.StatusConflict, "REVIEW_ALREADY_EXISTS", "You have already reviewed this product")
	ErrUserAlreadyExists     = newError(http.StatusConflict, "USER_ALREADY_EXISTS", "This email is already registered")
	ErrDuplicateRequest      = newError(http.StatusConflict, "DUPLICATE_REQUEST", "This request has already been processed")
	ErrShippingAddressInUse  = newError(http.StatusConflict, "SHIPPING_ADDRESS_IN_USE", "Shipping address is referenced by an order")

	// Business rule violations
	ErrValidationFailed      = newError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrPromoCodeExpired      = newError(http.StatusBadRequest, "PROMO_CODE_EXPIRED", "Promo code has expired")
	ErrPromoCodeNotYetActive = newError(http.StatusBadRequest, "PROMO_CODE_NOT_YET_ACTIVE", "Promo code is not active yet")
	ErrPromoCodeExhausted    = newError(http.StatusBadRequest, "PROMO_CODE_USAGE_EXHAUSTED", "Promo code usage limit reached")
	ErrInsufficientFunds     = newError(http.StatusPaymentRequired, "INSUFFICIENT_FUNDS", "Insufficient funds in wallet")
	ErrEmptyCart             = newError(http.StatusBadRequest, "EMPTY_CART", "Cart is empty")

	// Authentication errors
	ErrInvalidCredentials = newError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrUnauthorized       = newError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	ErrInvalidResetToken  = newError(http.StatusBadRequest, "INVALID_RESET_TOKEN", "Password reset link is invalid or expired")

	// General errors
	ErrInternalError = newError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
