// internal/domain/review/service.go
package review

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/catalog"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/errs"
)

// Service handles review business logic
type Service struct {
	db *gorm.DB
}

// NewService creates a new review service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CreateReviewRequest represents a new review
type CreateReviewRequest struct {
	UserID    uint   `json:"user_id" binding:"required"`
	ProductID uint   `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// CreateReview adds a review and refreshes the product's rating summary
func (s *Service) CreateReview(req *CreateReviewRequest) (*Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, errs.Validation("rating must be between 1 and 5")
	}

	var product catalog.Product
	if err := s.db.First(&product, req.ProductID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFound("product not found")
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	var existing Review
	err := s.db.Where("user_id = ? AND product_id = ?", req.UserID, req.ProductID).First(&existing).Error
	if err == nil {
		return nil, errs.Validation("you have already reviewed this product")
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}

	review := &Review{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(review).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.refreshProductRating(tx, req.ProductID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return review, nil
}

// GetProductReviews returns all reviews for a product, newest first
func (s *Service) GetProductReviews(productID uint) ([]Review, error) {
	var reviews []Review
	err := s.db.
		Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	return reviews, nil
}

// DeleteReview removes a review and refreshes the product rating
func (s *Service) DeleteReview(reviewID uint) error {
	var review Review
	if err := s.db.First(&review, reviewID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errs.NotFound("review not found")
		}
		return fmt.Errorf("failed to get review: %w", err)
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Delete(&review).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete review: %w", err)
	}

	if err := s.refreshProductRating(tx, review.ProductID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Service) refreshProductRating(tx *gorm.DB, productID uint) error {
	var agg struct {
		Count int64
		Avg   float64
	}
	err := tx.Model(&Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS avg").
		Where("product_id = ?", productID).
		Scan(&agg).Error
	if err != nil {
		return fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	err = tx.Model(&catalog.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"total_reviews":  agg.Count,
			"average_rating": agg.Avg,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update product rating: %w", err)
	}
	return nil
}
