// internal/pkg/errs/errors_test.go
package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsufficientStockMessage(t *testing.T) {
	err := InsufficientStock("Air Runner", 10, 5)
	assert.Equal(t, KindInsufficientStock, err.Kind)
	assert.Equal(t, "insufficient stock for product 'Air Runner'. Requested: 10, Available: 5", err.Error())
}

func TestSizeNotFoundMessage(t *testing.T) {
	sizeID := uint(42)
	err := SizeNotFound(7, &sizeID)
	assert.Equal(t, "product size not found for productId=7, sizeId=42", err.Error())

	err = SizeNotFound(7, nil)
	assert.Equal(t, "product size not found for productId=7, sizeId=none", err.Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindEmptyCart, KindOf(EmptyCart()))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOfSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("placing order: %w", EmptyCart())
	assert.Equal(t, KindEmptyCart, KindOf(wrapped))
}

func TestOrderCreationFailedPassesTypedErrorsThrough(t *testing.T) {
	inner := InsufficientStock("Air Runner", 3, 1)
	err := OrderCreationFailed(inner)
	assert.Equal(t, KindInsufficientStock, KindOf(err))
	assert.Equal(t, inner.Error(), err.Error())
}

func TestOrderCreationFailedWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := OrderCreationFailed(cause)
	assert.Equal(t, KindOrderCreationFailed, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to create order")
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(Validation("bad")))
	assert.True(t, IsClientError(NotFound("missing")))
	assert.True(t, IsClientError(EmptyCart()))
	assert.True(t, IsClientError(InsufficientStock("x", 1, 0)))
	assert.False(t, IsClientError(OrderCreationFailed(errors.New("boom"))))
	assert.False(t, IsClientError(errors.New("plain")))
}
