// internal/interfaces/http/handlers/product_handler.go
package handlers

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/catalog"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/storage"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	catalog *catalog.Service
	storage storage.Storage
	db      *gorm.DB
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogSvc *catalog.Service, store storage.Storage, db *gorm.DB) *ProductHandler {
	return &ProductHandler{catalog: catalogSvc, storage: store, db: db}
}

// GetProducts handles GET /product/GetProducts
func (h *ProductHandler) GetProducts(c *gin.Context) {
	filter := &catalog.ProductListFilter{
		Gender: c.Query("gender"),
		Search: c.Query("search"),
	}
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.Limit = v
	}
	if v, err := strconv.ParseUint(c.Query("category_id"), 10, 32); err == nil {
		id := uint(v)
		filter.CategoryID = &id
	}
	if v, err := strconv.ParseUint(c.Query("brand_id"), 10, 32); err == nil {
		id := uint(v)
		filter.BrandID = &id
	}

	products, total, err := h.catalog.ListProducts(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Products fetched successfully", gin.H{
		"products": products,
		"total":    total,
		"page":     filter.Page,
		"limit":    filter.Limit,
	})
}

// GetProductByID handles GET /product/GetProductById/:id
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.catalog.GetProductByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Product fetched successfully", product)
}

// AddProduct handles POST /product/AddProduct
func (h *ProductHandler) AddProduct(c *gin.Context) {
	var req catalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.catalog.CreateProduct(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "Product added successfully", product)
}

// DeleteProduct handles DELETE /product/DeleteProduct/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid product ID")
		return
	}

	if err := h.catalog.DeleteProduct(uint(id)); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Product deleted successfully", nil)
}

// UpdateStock handles PATCH /product/UpdateStock
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	var req catalog.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	size, err := h.catalog.UpdateStock(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Stock updated successfully", size)
}

// UploadImages handles POST /product/UploadImages. Files go to the
// configured storage backend; URLs are saved as product images.
func (h *ProductHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondBadRequest(c, "Invalid form data")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondBadRequest(c, "No files uploaded")
		return
	}

	productIDStr := c.PostForm("product_id")
	productID, err := strconv.ParseUint(productIDStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid product_id")
		return
	}

	product, err := h.catalog.GetProductByID(uint(productID))
	if err != nil {
		respondError(c, err)
		return
	}

	var colorID *uint
	if v, err := strconv.ParseUint(c.PostForm("color_id"), 10, 32); err == nil {
		id := uint(v)
		colorID = &id
	}

	var urls []string
	for i, fileHeader := range files {
		f, err := fileHeader.Open()
		if err != nil {
			respondBadRequest(c, "Failed to read uploaded file")
			return
		}

		key := fmt.Sprintf("products/%d/%d-%s%s",
			product.ID, time.Now().Unix(), uuid.New().String()[:8], filepath.Ext(fileHeader.Filename))
		contentType := fileHeader.Header.Get("Content-Type")

		url, err := h.storage.Upload(c.Request.Context(), key, f, contentType)
		f.Close()
		if err != nil {
			respondError(c, err)
			return
		}

		image := catalog.ProductImage{
			ProductID:   product.ID,
			ColorID:     colorID,
			ImageURL:    url,
			IsMainImage: i == 0 && len(product.Images) == 0,
		}
		if err := h.db.Create(&image).Error; err != nil {
			respondError(c, err)
			return
		}
		urls = append(urls, url)
	}

	respondCreated(c, "Images uploaded successfully", gin.H{"urls": urls})
}

type addBrandRequest struct {
	Name string `json:"name" binding:"required"`
	Logo string `json:"logo"`
}

// AddBrand handles POST /product/AddBrand
func (h *ProductHandler) AddBrand(c *gin.Context) {
	var req addBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	brand, err := h.catalog.CreateBrand(req.Name, req.Logo)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Brand added successfully", brand)
}

type addCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddCategory handles POST /product/AddCategory
func (h *ProductHandler) AddCategory(c *gin.Context) {
	var req addCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.catalog.CreateCategory(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Category added successfully", category)
}

// GetBrands handles GET /product/GetBrands
func (h *ProductHandler) GetBrands(c *gin.Context) {
	brands, err := h.catalog.ListBrands()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Brands fetched successfully", brands)
}

// GetCategories handles GET /product/GetCategories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Categories fetched successfully", categories)
}
