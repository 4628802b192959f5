// internal/interfaces/http/handlers/cart_handler.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/cart"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	carts *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

// AddToCart handles POST /cart/add
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req cart.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.carts.AddToCart(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "Item added to cart successfully", item)
}

// GetCart handles GET /cart/user/:id
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid user ID")
		return
	}

	summary, err := h.carts.GetCart(uint(userID))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Cart fetched successfully", summary)
}

// UpdateItem handles PUT /cart/item/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid cart item ID")
		return
	}

	var req cart.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.carts.UpdateQuantity(uint(itemID), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Cart item updated successfully", item)
}

// RemoveItem handles DELETE /cart/item/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid cart item ID")
		return
	}

	if err := h.carts.RemoveItem(uint(itemID)); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Cart item removed successfully", nil)
}

// ClearCart handles DELETE /cart/user/:id
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid user ID")
		return
	}

	if err := h.carts.ClearCart(uint(userID)); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Cart cleared successfully", nil)
}
