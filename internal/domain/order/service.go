// internal/domain/order/service.go
package order

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/cart"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/catalog"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/user"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/errs"
)

// Notifier enqueues order lifecycle emails. Implementations must not
// block the caller.
type Notifier interface {
	EnqueueOrderConfirmation(toEmail, toName string, orderID uint, totalAmount int64)
}

// Service handles order business logic
type Service struct {
	db       *gorm.DB
	notifier Notifier
}

// NewService creates a new order service. notifier may be nil.
func NewService(db *gorm.DB, notifier Notifier) *Service {
	return &Service{db: db, notifier: notifier}
}

// CreateOrderRequest represents a checkout request
type CreateOrderRequest struct {
	UserID  uint   `json:"user_id" binding:"required"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
}

// UpdateStatusRequest represents an admin status change
type UpdateStatusRequest struct {
	OrderID uint   `json:"order_id" binding:"required"`
	Status  Status `json:"status" binding:"required"`
}

// Statistics aggregates order counts and revenue for the admin dashboard
type Statistics struct {
	TotalOrders      int64 `json:"total_orders"`
	PendingOrders    int64 `json:"pending_orders"`
	ProcessingOrders int64 `json:"processing_orders"`
	PaidOrders       int64 `json:"paid_orders"`
	CancelledOrders  int64 `json:"cancelled_orders"`
	TotalRevenue     int64 `json:"total_revenue"` // Paid orders only, in paise
}

// validatedLine carries one cart line through the checkout transaction
// after validation, with everything mutation needs already resolved.
type validatedLine struct {
	item      cart.CartItem
	product   catalog.Product
	color     *catalog.ProductColor
	size      catalog.ProductSize
	unitPrice int64
}

// PlaceOrder converts the user's cart into an order. All lines are
// validated before any stock is touched; a failure on any line leaves
// the database unchanged. Size rows are read under a row lock so two
// concurrent checkouts cannot both pass validation on the same stock.
func (s *Service) PlaceOrder(req *CreateOrderRequest) (*Order, error) {
	var u user.User
	if err := s.db.First(&u, req.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var c cart.Cart
	if err := tx.Preload("Items").Where("user_id = ?", req.UserID).First(&c).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return nil, errs.EmptyCart()
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if len(c.Items) == 0 {
		tx.Rollback()
		return nil, errs.EmptyCart()
	}

	// Validation pass. No writes happen until every line has passed.
	lines := make([]validatedLine, 0, len(c.Items))
	var total int64
	for _, item := range c.Items {
		line, err := s.validateLine(tx, item)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		total += line.unitPrice * int64(line.item.Quantity)
		lines = append(lines, *line)
	}

	order := &Order{
		UserID:      req.UserID,
		Status:      StatusPending,
		TotalAmount: total,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		Phone:       req.Phone,
		OrderDate:   time.Now(),
	}
	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		return nil, errs.OrderCreationFailed(fmt.Errorf("failed to create order: %w", err))
	}

	// Mutation pass.
	for _, line := range lines {
		if err := s.applyLine(tx, order.ID, line); err != nil {
			tx.Rollback()
			return nil, errs.OrderCreationFailed(err)
		}
	}

	if err := tx.Where("cart_id = ?", c.ID).Delete(&cart.CartItem{}).Error; err != nil {
		tx.Rollback()
		return nil, errs.OrderCreationFailed(fmt.Errorf("failed to clear cart: %w", err))
	}

	if err := tx.Commit().Error; err != nil {
		return nil, errs.OrderCreationFailed(fmt.Errorf("failed to commit transaction: %w", err))
	}

	if s.notifier != nil {
		s.notifier.EnqueueOrderConfirmation(u.Email, u.Name, order.ID, order.TotalAmount)
	}

	return s.GetOrderDetails(order.ID)
}

// validateLine resolves and checks one cart line. The size row is read
// FOR UPDATE so its stock cannot change under us before commit.
func (s *Service) validateLine(tx *gorm.DB, item cart.CartItem) (*validatedLine, error) {
	var product catalog.Product
	if err := tx.First(&product, item.ProductID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFound("product %d not found", item.ProductID)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	var color *catalog.ProductColor
	if item.ColorID != nil {
		var pc catalog.ProductColor
		if err := tx.First(&pc, *item.ColorID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errs.SizeNotFound(item.ProductID, item.SizeID)
			}
			return nil, fmt.Errorf("failed to get product color: %w", err)
		}
		color = &pc
	}

	if item.SizeID == nil {
		return nil, errs.SizeNotFound(item.ProductID, item.SizeID)
	}

	// Row locks only exist on Postgres; SQLite serializes writers on
	// its own.
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var size catalog.ProductSize
	err := q.First(&size, *item.SizeID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.SizeNotFound(item.ProductID, item.SizeID)
		}
		return nil, fmt.Errorf("failed to get product size: %w", err)
	}

	// The size row must belong to the color the cart line names.
	// A colorless line matches only a colorless size row.
	if !uintPtrEqual(size.ColorID, item.ColorID) {
		return nil, errs.SizeNotFound(item.ProductID, item.SizeID)
	}

	if size.Stock < item.Quantity {
		return nil, errs.InsufficientStock(product.Name, item.Quantity, size.Stock)
	}

	return &validatedLine{
		item:      item,
		product:   product,
		color:     color,
		size:      size,
		unitPrice: product.UnitPrice(color),
	}, nil
}

// applyLine decrements stock and writes the order item snapshot
func (s *Service) applyLine(tx *gorm.DB, orderID uint, line validatedLine) error {
	newStock := line.size.Stock - line.item.Quantity
	updates := map[string]interface{}{"stock": newStock}
	if newStock == 0 {
		updates["is_available"] = false
	}
	if err := tx.Model(&catalog.ProductSize{}).Where("id = ?", line.size.ID).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update size stock: %w", err)
	}

	// Aggregate product stock is advisory. Floor at zero rather than
	// letting drift push it negative.
	productStock := line.product.Stock - line.item.Quantity
	if productStock < 0 {
		productStock = 0
	}
	if err := tx.Model(&catalog.Product{}).Where("id = ?", line.product.ID).Update("stock", productStock).Error; err != nil {
		return fmt.Errorf("failed to update product stock: %w", err)
	}

	orderItem := &OrderItem{
		OrderID:     orderID,
		ProductID:   line.product.ID,
		ColorID:     line.item.ColorID,
		SizeID:      line.item.SizeID,
		ProductName: line.product.Name,
		SizeName:    line.size.SizeName,
		UnitPrice:   line.unitPrice,
		Quantity:    line.item.Quantity,
	}
	if line.color != nil {
		orderItem.ColorName = line.color.ColorName
	}
	if err := tx.Create(orderItem).Error; err != nil {
		return fmt.Errorf("failed to create order item: %w", err)
	}
	return nil
}

// GetOrderDetails returns one order with items and user
func (s *Service) GetOrderDetails(orderID uint) (*Order, error) {
	var order Order
	err := s.db.
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		First(&order, orderID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFound("order not found")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// GetUserOrders returns all orders of one user, newest first
func (s *Service) GetUserOrders(userID uint) ([]Order, error) {
	var orders []Order
	err := s.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user orders: %w", err)
	}
	return orders, nil
}

// GetAllOrders returns every order, newest first
func (s *Service) GetAllOrders() ([]Order, error) {
	var orders []Order
	err := s.db.
		Preload("User").
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

// GetOrdersByStatus returns orders filtered by status
func (s *Service) GetOrdersByStatus(status Status) ([]Order, error) {
	if !IsValidStatus(status) {
		return nil, errs.Validation("invalid order status: %s", status)
	}
	var orders []Order
	err := s.db.
		Preload("User").
		Preload("Items").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders by status: %w", err)
	}
	return orders, nil
}

// UpdateStatus moves an order to a new status if the transition is allowed
func (s *Service) UpdateStatus(req *UpdateStatusRequest) (*Order, error) {
	if !IsValidStatus(req.Status) {
		return nil, errs.Validation("invalid order status: %s", req.Status)
	}

	var order Order
	if err := s.db.First(&order, req.OrderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFound("order not found")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if !order.CanTransitionTo(req.Status) {
		return nil, errs.Validation("cannot change order status from %s to %s", order.Status, req.Status)
	}

	if err := s.db.Model(&order).Update("status", req.Status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	order.Status = req.Status
	return &order, nil
}

// CancelOrder cancels an order and restores the stock it consumed
func (s *Service) CancelOrder(orderID uint) (*Order, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var order Order
	if err := tx.Preload("Items").First(&order, orderID).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFound("order not found")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if !order.CanBeCancelled() {
		tx.Rollback()
		return nil, errs.Validation("cannot cancel order in status %s", order.Status)
	}

	for _, item := range order.Items {
		if item.SizeID != nil {
			err := tx.Model(&catalog.ProductSize{}).
				Where("id = ?", *item.SizeID).
				Updates(map[string]interface{}{
					"stock":        gorm.Expr("stock + ?", item.Quantity),
					"is_available": true,
				}).Error
			if err != nil {
				tx.Rollback()
				return nil, fmt.Errorf("failed to restore size stock: %w", err)
			}
		}
		err := tx.Model(&catalog.Product{}).
			Where("id = ?", item.ProductID).
			Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to restore product stock: %w", err)
		}
	}

	if err := tx.Model(&order).Update("status", StatusCancelled).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	order.Status = StatusCancelled
	return &order, nil
}

// GetStatistics returns order counts and revenue for the dashboard
func (s *Service) GetStatistics() (*Statistics, error) {
	stats := &Statistics{}

	if err := s.db.Model(&Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	counts := []struct {
		status Status
		dest   *int64
	}{
		{StatusPending, &stats.PendingOrders},
		{StatusProcessing, &stats.ProcessingOrders},
		{StatusPaid, &stats.PaidOrders},
		{StatusCancelled, &stats.CancelledOrders},
	}
	for _, c := range counts {
		if err := s.db.Model(&Order{}).Where("status = ?", c.status).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s orders: %w", c.status, err)
		}
	}

	var revenue struct{ Total int64 }
	err := s.db.Model(&Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("status = ?", StatusPaid).
		Scan(&revenue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	stats.TotalRevenue = revenue.Total

	return stats, nil
}

func uintPtrEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
