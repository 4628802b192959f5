// internal/interfaces/http/handlers/order_handler.go
package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/order"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/pdf"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orders *order.Service
	pdf    *pdf.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *order.Service, pdfSvc *pdf.Service) *OrderHandler {
	return &OrderHandler{orders: orders, pdf: pdfSvc}
}

// CreateOrder handles POST /order/create
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req order.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	o, err := h.orders.PlaceOrder(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "Order placed successfully", o)
}

// GetUserOrders handles GET /order/GetUserOrder/:userId
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid user ID")
		return
	}

	orders, err := h.orders.GetUserOrders(uint(userID))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Orders fetched successfully", orders)
}

// GetAllOrders handles GET /order/GetAllOrders
func (h *OrderHandler) GetAllOrders(c *gin.Context) {
	orders, err := h.orders.GetAllOrders()
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Orders fetched successfully", orders)
}

// GetOrderDetails handles GET /order/GetOrderDetails/:orderId
func (h *OrderHandler) GetOrderDetails(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid order ID")
		return
	}

	o, err := h.orders.GetOrderDetails(uint(orderID))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Order fetched successfully", o)
}

// GetOrdersByStatus handles GET /order/GetOrdersByStatus?status=Pending
func (h *OrderHandler) GetOrdersByStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		respondBadRequest(c, "status query parameter is required")
		return
	}

	orders, err := h.orders.GetOrdersByStatus(order.Status(status))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Orders fetched successfully", orders)
}

// CancelOrder handles PATCH /order/CancelOrder/:id
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid order ID")
		return
	}

	o, err := h.orders.CancelOrder(uint(orderID))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Order cancelled successfully", o)
}

// UpdateOrderStatus handles PATCH /order/UpdateOrderStatus
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req order.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	o, err := h.orders.UpdateStatus(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Order status updated successfully", o)
}

// GetStatistics handles GET /order/AllStatistics
func (h *OrderHandler) GetStatistics(c *gin.Context) {
	stats, err := h.orders.GetStatistics()
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Statistics fetched successfully", stats)
}

// DownloadInvoice handles GET /order/Invoice/:orderId
func (h *OrderHandler) DownloadInvoice(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid order ID")
		return
	}

	o, err := h.orders.GetOrderDetails(uint(orderID))
	if err != nil {
		respondError(c, err)
		return
	}

	buf, err := h.pdf.GenerateInvoice(o)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("invoice-%d.pdf", o.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(200, "application/pdf", buf.Bytes())
}
