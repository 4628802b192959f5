// internal/domain/payment/entity.go
package payment

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/order"
)

// Status is the closed set of payment states
type Status string

// Payment status constants
const (
	StatusPending Status = "Pending"
	StatusSuccess Status = "Success"
	StatusFailed  Status = "Failed"
)

// Payment method constants
const (
	MethodCOD  = "cod"
	MethodCard = "card"
	MethodUPI  = "upi"
)

// Payment represents a payment against an order. The unique index on
// OrderID enforces one payment per order at the database level.
type Payment struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	OrderID         uint           `gorm:"uniqueIndex;not null" json:"order_id"`
	UserID          uint           `gorm:"not null;index" json:"user_id"`
	Amount          int64          `gorm:"not null" json:"amount"` // In paise
	Method          string         `gorm:"not null;size:50" json:"method"`
	Status          Status         `gorm:"not null;default:'Pending';size:20" json:"status"`
	TransactionID   string         `gorm:"size:255" json:"transaction_id"`
	GatewayResponse datatypes.JSON `json:"gateway_response,omitempty"`
	PaidAt          *time.Time     `json:"paid_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`

	// Relationships
	Order *order.Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

// TableName overrides the table name
func (Payment) TableName() string {
	return "payments"
}

// IsCashOnDelivery reports whether the method means pay-on-delivery.
// Matching is case-insensitive and accepts the spelled-out form.
func IsCashOnDelivery(method string) bool {
	m := strings.ToLower(strings.TrimSpace(method))
	return m == MethodCOD || m == "cash on delivery"
}
