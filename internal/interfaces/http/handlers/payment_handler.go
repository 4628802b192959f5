// internal/interfaces/http/handlers/payment_handler.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/payment"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	payments *payment.Service
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(payments *payment.Service) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreatePayment handles POST /payment/CreatePayment
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req payment.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	p, err := h.payments.RecordPayment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "Payment recorded successfully", p)
}

// GetAllPayments handles GET /payment/GetAllPayments
func (h *PaymentHandler) GetAllPayments(c *gin.Context) {
	payments, err := h.payments.ListPayments()
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Payments fetched successfully", payments)
}

// GetPaymentByOrderID handles GET /payment/GetPaymentById/:orderId
func (h *PaymentHandler) GetPaymentByOrderID(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid order ID")
		return
	}

	p, err := h.payments.GetByOrderID(uint(orderID))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Payment fetched successfully", p)
}
