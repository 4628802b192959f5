// internal/domain/order/entity_test.go
package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"pending to processing", StatusPending, StatusProcessing, true},
		{"pending to paid", StatusPending, StatusPaid, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"processing to paid", StatusProcessing, StatusPaid, true},
		{"processing to cancelled", StatusProcessing, StatusCancelled, true},
		{"processing to pending", StatusProcessing, StatusPending, false},
		{"paid to processing", StatusPaid, StatusProcessing, false},
		{"paid to cancelled", StatusPaid, StatusCancelled, false},
		{"cancelled to pending", StatusCancelled, StatusPending, false},
		{"cancelled to paid", StatusCancelled, StatusPaid, false},
		{"unknown status", "Shipped", StatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{Status: tt.from}
			assert.Equal(t, tt.allowed, o.CanTransitionTo(tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, (&Order{Status: StatusPending}).IsTerminal())
	assert.False(t, (&Order{Status: StatusProcessing}).IsTerminal())
	assert.True(t, (&Order{Status: StatusPaid}).IsTerminal())
	assert.True(t, (&Order{Status: StatusCancelled}).IsTerminal())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusCancelled))
	assert.False(t, IsValidStatus("shipped"))
	assert.False(t, IsValidStatus(""))
}

func TestOrderItemSubtotal(t *testing.T) {
	item := &OrderItem{UnitPrice: 259900, Quantity: 3}
	assert.Equal(t, int64(779700), item.Subtotal())
}

func TestCanBeCancelled(t *testing.T) {
	assert.True(t, (&Order{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Order{Status: StatusProcessing}).CanBeCancelled())
	assert.False(t, (&Order{Status: StatusPaid}).CanBeCancelled())
	assert.False(t, (&Order{Status: StatusCancelled}).CanBeCancelled())
}
