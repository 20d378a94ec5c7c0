package errors

import (
	"fmt"
	"net/http"
)

// Error represents an application error with an HTTP status code.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error types
var (
	ErrUnauthorized   = New(http.StatusUnauthorized, "Must be logged in", nil)
	ErrForbidden      = New(http.StatusForbidden, "Admin access required", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)
)

// Storefront error types. Ownership failures are reported as the entity's
// not-found error so callers cannot probe for existence.
var (
	ErrEmptyCart        = New(http.StatusBadRequest, "Cart is empty", nil)
	ErrProductNotFound  = New(http.StatusNotFound, "Product not found", nil)
	ErrCartItemNotFound = New(http.StatusNotFound, "Cart item not found", nil)
	ErrOrderNotFound    = New(http.StatusNotFound, "Order not found", nil)
	ErrUserNotFound     = New(http.StatusNotFound, "User not found", nil)
	ErrPaymentFailed    = New(http.StatusBadRequest, "Payment failed", nil)
)

// ErrInsufficientStock builds the insufficient-stock error naming the product.
func ErrInsufficientStock(productName string) *Error {
	if productName == "" {
		return New(http.StatusBadRequest, "Not enough stock available", nil)
	}
	return New(http.StatusBadRequest, fmt.Sprintf("Not enough stock for %s", productName), nil)
}

// Internal wraps an unexpected error into an internal server error.
func Internal(err error) *Error {
	return New(ErrInternalServer.Code, ErrInternalServer.Message, err)
}
