// internal/pkg/errs/errors.go
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies application errors so the HTTP layer can map them to a
// status code without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindInsufficientStock
	KindSizeNotFound
	KindEmptyCart
	KindOrderCreationFailed
)

// Error is the application error carried across service boundaries.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports invalid input shape or values.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a missing user/product/order/cart-item.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// EmptyCart reports an order attempt against a missing or empty cart.
func EmptyCart() *Error {
	return &Error{Kind: KindEmptyCart, Message: "cart is empty"}
}

// InsufficientStock reports a cart line exceeding the available size stock.
func InsufficientStock(productName string, requested, available int) *Error {
	return &Error{
		Kind: KindInsufficientStock,
		Message: fmt.Sprintf("insufficient stock for product '%s'. Requested: %d, Available: %d",
			productName, requested, available),
	}
}

// SizeNotFound reports a cart line whose (size, color) pair has no stock row.
func SizeNotFound(productID uint, sizeID *uint) *Error {
	size := "none"
	if sizeID != nil {
		size = fmt.Sprintf("%d", *sizeID)
	}
	return &Error{
		Kind:    KindSizeNotFound,
		Message: fmt.Sprintf("product size not found for productId=%d, sizeId=%s", productID, size),
	}
}

// OrderCreationFailed wraps an unexpected failure inside the order
// transaction. Typed errors pass through untouched so their kind survives.
func OrderCreationFailed(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Kind: KindOrderCreationFailed, Message: "failed to create order", Err: err}
}

// KindOf extracts the kind from any error chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// IsClientError reports whether the error maps to a 4xx response.
func IsClientError(err error) bool {
	switch KindOf(err) {
	case KindValidation, KindInsufficientStock, KindSizeNotFound, KindEmptyCart, KindNotFound:
		return true
	}
	return false
}
