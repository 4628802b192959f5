// internal/domain/wishlist/service.go
package wishlist

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/catalog"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/errs"
)

// Service handles wishlist business logic
type Service struct {
	db *gorm.DB
}

// NewService creates a new wishlist service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Add saves a product to the user's wishlist. Adding the same product
// twice is a no-op.
func (s *Service) Add(userID, productID uint) (*WishlistItem, error) {
	var product catalog.Product
	if err := s.db.Where("is_active = ?", true).First(&product, productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFound("product not found")
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	var existing WishlistItem
	err := s.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to check wishlist: %w", err)
	}

	item := &WishlistItem{UserID: userID, ProductID: productID}
	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to add to wishlist: %w", err)
	}
	return item, nil
}

// List returns the user's wishlist with products
func (s *Service) List(userID uint) ([]WishlistItem, error) {
	var items []WishlistItem
	err := s.db.
		Preload("Product").
		Preload("Product.Images", "is_main_image = ?", true).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}
	return items, nil
}

// Remove deletes a product from the user's wishlist
func (s *Service) Remove(userID, productID uint) error {
	result := s.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&WishlistItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove from wishlist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound("wishlist item not found")
	}
	return nil
}
