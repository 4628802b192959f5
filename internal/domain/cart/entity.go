// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/catalog"
)

// Cart represents a user's shopping cart. One cart per user, created
// lazily on first add.
type Cart struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items,omitempty"`
}

// CartItem represents a line in a cart. ColorID is nullable for
// products sold without a color split; SizeID points at the
// stock-keeping row.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"not null;index" json:"cart_id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	ColorID   *uint     `json:"color_id"`
	SizeID    *uint     `json:"size_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Product *catalog.Product      `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Color   *catalog.ProductColor `gorm:"foreignKey:ColorID" json:"color,omitempty"`
	Size    *catalog.ProductSize  `gorm:"foreignKey:SizeID" json:"size,omitempty"`
}

// TableName overrides
func (Cart) TableName() string     { return "carts" }
func (CartItem) TableName() string { return "cart_items" }

// SameVariant reports whether the item refers to the same
// (product, color, size) combination. Nil color matches only nil color.
func (ci *CartItem) SameVariant(productID uint, colorID, sizeID *uint) bool {
	if ci.ProductID != productID {
		return false
	}
	if !uintPtrEqual(ci.ColorID, colorID) {
		return false
	}
	return uintPtrEqual(ci.SizeID, sizeID)
}

func uintPtrEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
