// internal/interfaces/http/handlers/review_handler.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/review"
)

// ReviewHandler handles review endpoints
type ReviewHandler struct {
	reviews *review.Service
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews *review.Service) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// AddReview handles POST /review/AddReview
func (h *ReviewHandler) AddReview(c *gin.Context) {
	var req review.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	r, err := h.reviews.CreateReview(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "Review added successfully", r)
}

// GetReviewsByProductID handles GET /review/GetReviewsByProductId/:productId
func (h *ReviewHandler) GetReviewsByProductID(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid product ID")
		return
	}

	reviews, err := h.reviews.GetProductReviews(uint(productID))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Reviews fetched successfully", reviews)
}

// DeleteReview handles DELETE /review/DeleteReview/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid review ID")
		return
	}

	if err := h.reviews.DeleteReview(uint(reviewID)); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Review deleted successfully", nil)
}
