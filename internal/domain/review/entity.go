// internal/domain/review/entity.go
package review

import (
	"time"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/user"
)

// Review represents a product review. One review per (user, product).
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_reviews_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;index;uniqueIndex:idx_reviews_user_product" json:"product_id"`
	Rating    int       `gorm:"not null" json:"rating"` // 1 to 5
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	User *user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName overrides the table name
func (Review) TableName() string {
	return "reviews"
}
