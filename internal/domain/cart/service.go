// internal/domain/cart/service.go
package cart

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/catalog"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/errs"
)

// Service handles cart business logic
type Service struct {
	db *gorm.DB
}

// NewService creates a new cart service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// AddToCartRequest represents a request to add an item
type AddToCartRequest struct {
	UserID    uint  `json:"user_id" binding:"required"`
	ProductID uint  `json:"product_id" binding:"required"`
	ColorID   *uint `json:"color_id"`
	SizeID    *uint `json:"size_id"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// UpdateQuantityRequest represents a quantity change for a cart item
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartSummary is the cart with computed totals
type CartSummary struct {
	Cart       *Cart `json:"cart"`
	TotalItems int   `json:"total_items"`
	Total      int64 `json:"total"` // In paise
}

// AddToCart adds an item to the user's cart, creating the cart lazily.
// Adding a variant already in the cart increments its quantity.
func (s *Service) AddToCart(req *AddToCartRequest) (*CartItem, error) {
	if req.Quantity < 1 {
		return nil, errs.Validation("quantity must be at least 1")
	}

	var product catalog.Product
	if err := s.db.Where("is_active = ?", true).First(&product, req.ProductID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFound("product not found")
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if req.ColorID != nil {
		var color catalog.ProductColor
		err := s.db.Where("product_id = ?", req.ProductID).First(&color, *req.ColorID).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errs.NotFound("color not found")
			}
			return nil, fmt.Errorf("failed to get product color: %w", err)
		}
	}

	if req.SizeID != nil {
		var size catalog.ProductSize
		if err := s.db.First(&size, *req.SizeID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errs.NotFound("product size not found")
			}
			return nil, fmt.Errorf("failed to get product size: %w", err)
		}
		// The size row must belong to the requested color. A colorless
		// request matches only a colorless size row.
		if !uintPtrEqual(size.ColorID, req.ColorID) {
			return nil, errs.NotFound("product size not found")
		}
		if !size.InStock(req.Quantity) {
			return nil, errs.InsufficientStock(product.Name, req.Quantity, size.Stock)
		}
	}

	cart, err := s.getOrCreateCart(req.UserID)
	if err != nil {
		return nil, err
	}

	// Same (product, color, size) already in the cart merges into one
	// line. Nil color matches only nil color.
	var existing []CartItem
	if err := s.db.Where("cart_id = ? AND product_id = ?", cart.ID, req.ProductID).Find(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart items: %w", err)
	}
	for i := range existing {
		if existing[i].SameVariant(req.ProductID, req.ColorID, req.SizeID) {
			existing[i].Quantity += req.Quantity
			if err := s.db.Save(&existing[i]).Error; err != nil {
				return nil, fmt.Errorf("failed to update cart item: %w", err)
			}
			return &existing[i], nil
		}
	}

	item := &CartItem{
		CartID:    cart.ID,
		ProductID: req.ProductID,
		ColorID:   req.ColorID,
		SizeID:    req.SizeID,
		Quantity:  req.Quantity,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart item: %w", err)
	}
	return item, nil
}

// GetCart returns the user's cart with items, totals computed from the
// current effective unit prices.
func (s *Service) GetCart(userID uint) (*CartSummary, error) {
	var cart Cart
	err := s.db.
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Color").
		Preload("Items.Size").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &CartSummary{Cart: &Cart{UserID: userID}, TotalItems: 0, Total: 0}, nil
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	summary := &CartSummary{Cart: &cart}
	for i := range cart.Items {
		item := &cart.Items[i]
		summary.TotalItems += item.Quantity
		if item.Product != nil {
			summary.Total += item.Product.UnitPrice(item.Color) * int64(item.Quantity)
		}
	}
	return summary, nil
}

// UpdateQuantity sets the quantity of a cart item
func (s *Service) UpdateQuantity(itemID uint, req *UpdateQuantityRequest) (*CartItem, error) {
	if req.Quantity < 1 {
		return nil, errs.Validation("quantity must be at least 1")
	}

	var item CartItem
	if err := s.db.First(&item, itemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFound("cart item not found")
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	if item.SizeID != nil {
		var size catalog.ProductSize
		if err := s.db.First(&size, *item.SizeID).Error; err == nil && !size.InStock(req.Quantity) {
			var product catalog.Product
			name := fmt.Sprintf("product %d", item.ProductID)
			if s.db.First(&product, item.ProductID).Error == nil {
				name = product.Name
			}
			return nil, errs.InsufficientStock(name, req.Quantity, size.Stock)
		}
	}

	item.Quantity = req.Quantity
	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	return &item, nil
}

// RemoveItem deletes a single cart item
func (s *Service) RemoveItem(itemID uint) error {
	result := s.db.Delete(&CartItem{}, itemID)
	if result.Error != nil {
		return fmt.Errorf("failed to remove cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound("cart item not found")
	}
	return nil
}

// ClearCart removes all items from the user's cart
func (s *Service) ClearCart(userID uint) error {
	var cart Cart
	if err := s.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errs.NotFound("cart not found for user %d", userID)
		}
		return fmt.Errorf("failed to get cart: %w", err)
	}

	if err := s.db.Where("cart_id = ?", cart.ID).Delete(&CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *Service) getOrCreateCart(userID uint) (*Cart, error) {
	var cart Cart
	err := s.db.Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	cart = Cart{UserID: userID}
	if err := s.db.Create(&cart).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return &cart, nil
}
