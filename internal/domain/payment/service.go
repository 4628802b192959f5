// internal/domain/payment/service.go
package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/order"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/errs"
)

// Notifier enqueues payment emails without blocking the caller
type Notifier interface {
	EnqueuePaymentReceipt(toEmail, toName string, orderID uint, amount int64, method string)
}

// Service handles payment business logic
type Service struct {
	db       *gorm.DB
	gateway  GatewayVerifier
	notifier Notifier
}

// NewService creates a new payment service. gateway and notifier may be nil.
func NewService(db *gorm.DB, gateway GatewayVerifier, notifier Notifier) *Service {
	return &Service{db: db, gateway: gateway, notifier: notifier}
}

// RecordPaymentRequest represents a payment submission
type RecordPaymentRequest struct {
	OrderID       uint         `json:"order_id" binding:"required"`
	Method        string       `json:"method" binding:"required"`
	Amount        int64        `json:"amount" binding:"required,min=1"` // In paise
	TransactionID string       `json:"transaction_id"`
	Status        order.Status `json:"status"` // Desired order status for non-COD, defaults to Paid
}

// RecordPayment records a payment for an order and moves the order
// status accordingly. Cash on delivery keeps the order Pending no
// matter what status was submitted; anything else needs a transaction
// ID and adopts the submitted status, defaulting to Paid, subject to
// the transition rules.
func (s *Service) RecordPayment(ctx context.Context, req *RecordPaymentRequest) (*Payment, error) {
	if strings.TrimSpace(req.Method) == "" {
		return nil, errs.Validation("payment method is required")
	}
	if req.Amount <= 0 {
		return nil, errs.Validation("payment amount must be positive")
	}
	if !IsCashOnDelivery(req.Method) && strings.TrimSpace(req.TransactionID) == "" {
		return nil, errs.Validation("transaction_id is required for %s payments", req.Method)
	}

	var o order.Order
	if err := s.db.Preload("User").First(&o, req.OrderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFound("order not found")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if req.Amount != o.TotalAmount {
		return nil, errs.Validation("payment amount %d does not match order total %d", req.Amount, o.TotalAmount)
	}

	if o.IsTerminal() {
		return nil, errs.Validation("order %d is already %s", o.ID, o.Status)
	}

	var existing Payment
	err := s.db.Where("order_id = ?", req.OrderID).First(&existing).Error
	if err == nil {
		return nil, errs.Validation("payment already recorded for order %d", req.OrderID)
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to check existing payment: %w", err)
	}

	cod := IsCashOnDelivery(req.Method)

	targetStatus := order.StatusPending
	if !cod {
		targetStatus = req.Status
		if targetStatus == "" {
			targetStatus = order.StatusPaid
		}
		if !order.IsValidStatus(targetStatus) {
			return nil, errs.Validation("invalid order status: %s", targetStatus)
		}
		if targetStatus != o.Status && !o.CanTransitionTo(targetStatus) {
			return nil, errs.Validation("cannot change order status from %s to %s", o.Status, targetStatus)
		}
	}

	payment := &Payment{
		OrderID:       o.ID,
		UserID:        o.UserID,
		Amount:        req.Amount,
		Method:        req.Method,
		TransactionID: req.TransactionID,
		Status:        StatusPending,
	}

	if !cod {
		if s.gateway != nil && req.TransactionID != "" {
			result, err := s.gateway.VerifyTransaction(ctx, req.TransactionID)
			if err != nil {
				return nil, fmt.Errorf("payment verification failed: %w", err)
			}
			payment.GatewayResponse = result.Raw
			if !result.Verified {
				payment.Status = StatusFailed
				if err := s.db.Create(payment).Error; err != nil {
					return nil, fmt.Errorf("failed to record payment: %w", err)
				}
				return nil, errs.Validation("payment %s not verified by gateway", req.TransactionID)
			}
		}
		now := time.Now()
		payment.Status = StatusSuccess
		payment.PaidAt = &now
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(payment).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	if targetStatus != o.Status {
		if err := tx.Model(&o).Update("status", targetStatus).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to update order status: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.notifier != nil && o.User != nil {
		s.notifier.EnqueuePaymentReceipt(o.User.Email, o.User.Name, o.ID, payment.Amount, payment.Method)
	}

	return payment, nil
}

// GetByOrderID returns the payment for an order
func (s *Service) GetByOrderID(orderID uint) (*Payment, error) {
	var payment Payment
	if err := s.db.Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFound("payment not found for order %d", orderID)
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

// ListPayments returns all payments, newest first
func (s *Service) ListPayments() ([]Payment, error) {
	var payments []Payment
	err := s.db.
		Preload("Order").
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
