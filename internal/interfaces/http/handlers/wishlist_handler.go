// internal/interfaces/http/handlers/wishlist_handler.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/wishlist"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlists *wishlist.Service
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlists *wishlist.Service) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists}
}

type wishlistRequest struct {
	UserID    uint `json:"user_id" binding:"required"`
	ProductID uint `json:"product_id" binding:"required"`
}

// Add handles POST /wishlist/add
func (h *WishlistHandler) Add(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.wishlists.Add(req.UserID, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "Product added to wishlist", item)
}

// List handles GET /wishlist/user/:id
func (h *WishlistHandler) List(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid user ID")
		return
	}

	items, err := h.wishlists.List(uint(userID))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Wishlist fetched successfully", items)
}

// Remove handles DELETE /wishlist/remove
func (h *WishlistHandler) Remove(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.wishlists.Remove(req.UserID, req.ProductID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Product removed from wishlist", nil)
}
