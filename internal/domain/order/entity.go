// internal/domain/order/entity.go
package order

import (
	"time"

	"gorm.io/gorm"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/catalog"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/user"
)

// Status is the closed set of order states
type Status string

// Order status constants
const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusPaid       Status = "Paid"
	StatusCancelled  Status = "Cancelled"
)

// Order represents a customer order
type Order struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	Status      Status         `gorm:"not null;default:'Pending';size:20" json:"status"`
	TotalAmount int64          `gorm:"not null" json:"total_amount"` // In paise
	Address     string         `gorm:"type:text" json:"address"`
	City        string         `gorm:"size:100" json:"city"`
	State       string         `gorm:"size:100" json:"state"`
	Pincode     string         `gorm:"size:10" json:"pincode"`
	Phone       string         `gorm:"size:20" json:"phone"`
	OrderDate   time.Time      `json:"order_date"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User  *user.User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items,omitempty"`
}

// OrderItem snapshots a purchased line. ProductName and UnitPrice are
// copied at checkout so later catalog edits do not rewrite history.
type OrderItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uint      `gorm:"not null;index" json:"order_id"`
	ProductID   uint      `gorm:"not null" json:"product_id"`
	ColorID     *uint     `json:"color_id"`
	SizeID      *uint     `json:"size_id"`
	ProductName string    `gorm:"not null;size:255" json:"product_name"`
	SizeName    string    `gorm:"size:20" json:"size_name"`
	ColorName   string    `gorm:"size:100" json:"color_name"`
	UnitPrice   int64     `gorm:"not null" json:"unit_price"` // In paise
	Quantity    int       `gorm:"not null" json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Product *catalog.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName overrides
func (Order) TableName() string     { return "orders" }
func (OrderItem) TableName() string { return "order_items" }

// Subtotal returns the line total
func (oi *OrderItem) Subtotal() int64 {
	return oi.UnitPrice * int64(oi.Quantity)
}

// IsValidStatus reports whether s is a known order status.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// isValidStatusTransition defines allowed status transitions.
// Paid and Cancelled are terminal.
var isValidStatusTransition = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusPaid, StatusCancelled},
	StatusProcessing: {StatusPaid, StatusCancelled},
	StatusPaid:       {},
	StatusCancelled:  {},
}

// CanTransitionTo checks if the order can move to the given status
func (o *Order) CanTransitionTo(newStatus Status) bool {
	allowed, ok := isValidStatusTransition[o.Status]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the order status admits no further change.
func (o *Order) IsTerminal() bool {
	return len(isValidStatusTransition[o.Status]) == 0
}

// CanBeCancelled checks if the order can still be cancelled
func (o *Order) CanBeCancelled() bool {
	return o.CanTransitionTo(StatusCancelled)
}
