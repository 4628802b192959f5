// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a shoe product
type Product struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"not null;size:255" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	Price         int64          `gorm:"not null" json:"price"` // Price in paise
	Stock         int            `gorm:"default:0" json:"stock"` // Aggregate across variants, best-effort
	Gender        string         `gorm:"size:20" json:"gender"`
	Material      string         `gorm:"size:100" json:"material"`
	CategoryID    *uint          `gorm:"index" json:"category_id"`
	BrandID       *uint          `gorm:"index" json:"brand_id"`
	TotalReviews  int            `gorm:"default:0" json:"total_reviews"`
	AverageRating float64        `gorm:"default:0" json:"average_rating"`
	IsActive      bool           `json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *Category      `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category,omitempty"`
	Brand    *Brand         `gorm:"foreignKey:BrandID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"brand,omitempty"`
	Colors   []ProductColor `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"colors,omitempty"`
	Images   []ProductImage `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images,omitempty"`
}

// ProductColor represents a color variant of a product
type ProductColor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	ColorName string    `gorm:"not null;size:100" json:"color_name"`
	HexCode   string    `gorm:"size:7" json:"hex_code"`
	Stock     int       `gorm:"default:0" json:"stock"`
	Price     int64     `gorm:"default:0" json:"price"` // Override product price if set
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Sizes  []ProductSize  `gorm:"foreignKey:ColorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sizes,omitempty"`
	Images []ProductImage `gorm:"foreignKey:ColorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images,omitempty"`
}

// ProductSize is the unit of stock-keeping: one row per purchasable
// (color, size) combination. ColorID is nullable for products sold
// without a color split.
type ProductSize struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ColorID     *uint     `gorm:"index" json:"color_id"`
	SizeName    string    `gorm:"not null;size:20" json:"size_name"`
	Stock       int       `gorm:"default:0" json:"stock"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductImage represents product or color-level images
type ProductImage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	ColorID     *uint     `gorm:"index" json:"color_id"`
	ImageURL    string    `gorm:"not null;size:500" json:"image_url"`
	IsMainImage bool      `gorm:"default:false" json:"is_main_image"`
	CreatedAt   time.Time `json:"created_at"`
}

// Category represents product categories
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Brand represents shoe brands
type Brand struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	Logo      string    `gorm:"size:500" json:"logo"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides
func (Product) TableName() string      { return "products" }
func (ProductColor) TableName() string { return "product_colors" }
func (ProductSize) TableName() string  { return "product_sizes" }
func (ProductImage) TableName() string { return "product_images" }
func (Category) TableName() string     { return "categories" }
func (Brand) TableName() string        { return "brands" }

// UnitPrice returns the effective unit price for a color variant,
// falling back to the product price when the color has no override.
func (p *Product) UnitPrice(color *ProductColor) int64 {
	if color != nil && color.Price > 0 {
		return color.Price
	}
	return p.Price
}

// GetFormattedPrice returns price as rupees
func (p *Product) GetFormattedPrice() float64 {
	return float64(p.Price) / 100
}

// InStock reports whether the size variant can currently be purchased.
func (s *ProductSize) InStock(quantity int) bool {
	return s.IsAvailable && s.Stock >= quantity
}
