// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/errs"
)

// Service handles catalog business logic
type Service struct {
	db *gorm.DB
}

// NewService creates a new catalog service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CreateProductRequest represents a new product with its variants
type CreateProductRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	Price       int64                `json:"price" binding:"required,min=1"`
	Gender      string               `json:"gender"`
	Material    string               `json:"material"`
	CategoryID  *uint                `json:"category_id"`
	BrandID     *uint                `json:"brand_id"`
	Colors      []CreateColorRequest `json:"colors"`
	Sizes       []CreateSizeRequest  `json:"sizes"` // Colorless sizes
}

// CreateColorRequest represents a color variant in a product request
type CreateColorRequest struct {
	ColorName string              `json:"color_name" binding:"required"`
	HexCode   string              `json:"hex_code"`
	Price     int64               `json:"price"`
	Sizes     []CreateSizeRequest `json:"sizes"`
}

// CreateSizeRequest represents a size variant in a product request
type CreateSizeRequest struct {
	SizeName string `json:"size_name" binding:"required"`
	Stock    int    `json:"stock" binding:"min=0"`
}

// UpdateStockRequest is a typed stock update for a size variant.
type UpdateStockRequest struct {
	SizeID      uint  `json:"size_id" binding:"required"`
	Stock       *int  `json:"stock"`
	IsAvailable *bool `json:"is_available"`
}

// ProductListFilter narrows the product listing
type ProductListFilter struct {
	CategoryID *uint
	BrandID    *uint
	Gender     string
	Search     string
	Page       int
	Limit      int
}

// CreateProduct creates a product together with its color and size variants
func (s *Service) CreateProduct(req *CreateProductRequest) (*Product, error) {
	product := &Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Gender:      req.Gender,
		Material:    req.Material,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		IsActive:    true,
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(product).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	total := 0
	for _, c := range req.Colors {
		color := &ProductColor{
			ProductID: product.ID,
			ColorName: c.ColorName,
			HexCode:   c.HexCode,
			Price:     c.Price,
			IsActive:  true,
		}
		if err := tx.Create(color).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create product color: %w", err)
		}
		for _, sz := range c.Sizes {
			size := &ProductSize{
				ColorID:     &color.ID,
				SizeName:    sz.SizeName,
				Stock:       sz.Stock,
				IsAvailable: sz.Stock > 0,
			}
			if err := tx.Create(size).Error; err != nil {
				tx.Rollback()
				return nil, fmt.Errorf("failed to create product size: %w", err)
			}
			total += sz.Stock
		}
	}

	// Colorless size rows share the product through cart items only;
	// they carry a nil ColorID.
	for _, sz := range req.Sizes {
		size := &ProductSize{
			ColorID:     nil,
			SizeName:    sz.SizeName,
			Stock:       sz.Stock,
			IsAvailable: sz.Stock > 0,
		}
		if err := tx.Create(size).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create product size: %w", err)
		}
		total += sz.Stock
	}

	if total > 0 {
		if err := tx.Model(product).Update("stock", total).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to update product stock: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.GetProductByID(product.ID)
}

// GetProductByID retrieves a product with variants and relations
func (s *Service) GetProductByID(id uint) (*Product, error) {
	var product Product
	err := s.db.
		Preload("Category").
		Preload("Brand").
		Preload("Colors", "is_active = ?", true).
		Preload("Colors.Sizes").
		Preload("Images").
		First(&product, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFound("product not found")
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// ListProducts returns active products matching the filter
func (s *Service) ListProducts(filter *ProductListFilter) ([]Product, int64, error) {
	query := s.db.Model(&Product{}).Where("is_active = ?", true)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		query = query.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.Gender != "" {
		query = query.Where("LOWER(gender) = ?", strings.ToLower(filter.Gender))
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var products []Product
	err := query.
		Preload("Category").
		Preload("Brand").
		Preload("Images", "is_main_image = ?", true).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	return products, total, nil
}

// UpdateStock applies a typed stock update to a size variant.
// Fields not present in the request are left untouched.
func (s *Service) UpdateStock(req *UpdateStockRequest) (*ProductSize, error) {
	var size ProductSize
	if err := s.db.First(&size, req.SizeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFound("product size not found")
		}
		return nil, fmt.Errorf("failed to get product size: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, errs.Validation("stock cannot be negative")
		}
		updates["stock"] = *req.Stock
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if len(updates) == 0 {
		return &size, nil
	}

	if err := s.db.Model(&size).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}
	return &size, nil
}

// DeleteProduct soft deletes a product
func (s *Service) DeleteProduct(id uint) error {
	result := s.db.Delete(&Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound("product not found")
	}
	return nil
}

// CreateBrand creates a new brand
func (s *Service) CreateBrand(name, logo string) (*Brand, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.Validation("brand name is required")
	}
	brand := &Brand{Name: name, Logo: logo, IsActive: true}
	if err := s.db.Create(brand).Error; err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return brand, nil
}

// ListBrands returns all active brands
func (s *Service) ListBrands() ([]Brand, error) {
	var brands []Brand
	if err := s.db.Where("is_active = ?", true).Order("name").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}

// CreateCategory creates a new category
func (s *Service) CreateCategory(name string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.Validation("category name is required")
	}
	category := &Category{Name: name, IsActive: true}
	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// ListCategories returns all active categories
func (s *Service) ListCategories() ([]Category, error) {
	var categories []Category
	if err := s.db.Where("is_active = ?", true).Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
