// internal/pkg/email/dispatcher.go
package email

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/config"
)

// Dispatcher delivers emails in the background. Enqueue methods never
// block: when the queue is full the message is dropped and logged.
// Each message gets a bounded number of delivery attempts with backoff.
type Dispatcher struct {
	sender     Sender
	logger     *logrus.Logger
	queue      chan *Message
	maxRetries int
	siteName   string

	wg       sync.WaitGroup
	closeOne sync.Once
}

// NewDispatcher creates a dispatcher and starts its workers
func NewDispatcher(sender Sender, cfg *config.EmailConfig, siteName string, logger *logrus.Logger) *Dispatcher {
	queueSize := cfg.QueueSize
	if queueSize < 1 {
		queueSize = 100
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 2
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 3
	}

	d := &Dispatcher{
		sender:     sender,
		logger:     logger,
		queue:      make(chan *Message, queueSize),
		maxRetries: maxRetries,
		siteName:   siteName,
	}

	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.worker()
	}
	return d
}

// Close stops accepting new messages and waits for queued ones to drain
func (d *Dispatcher) Close() {
	d.closeOne.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

// Enqueue submits a message for background delivery
func (d *Dispatcher) Enqueue(msg *Message) {
	defer func() {
		// Enqueue after Close panics on the closed channel. Dropping
		// the message is the right outcome during shutdown.
		if r := recover(); r != nil {
			d.logger.WithField("type", msg.Type).Warn("Email dropped: dispatcher closed")
		}
	}()

	select {
	case d.queue <- msg:
	default:
		d.logger.WithFields(logrus.Fields{
			"type": msg.Type,
			"to":   msg.To,
		}).Warn("Email dropped: queue full")
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg *Message) {
	var err error
	for attempt := 1; attempt <= d.maxRetries; attempt++ {
		if err = d.sender.Send(msg); err == nil {
			d.logger.WithFields(logrus.Fields{
				"type": msg.Type,
				"to":   msg.To,
			}).Info("Email sent")
			return
		}
		d.logger.WithFields(logrus.Fields{
			"type":    msg.Type,
			"to":      msg.To,
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Email delivery failed")
		if attempt < d.maxRetries {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}
	d.logger.WithFields(logrus.Fields{
		"type": msg.Type,
		"to":   msg.To,
	}).Error("Email delivery gave up")
}

// EnqueueOrderConfirmation sends an order confirmation to the customer
func (d *Dispatcher) EnqueueOrderConfirmation(toEmail, toName string, orderID uint, totalAmount int64) {
	d.Enqueue(&Message{
		To:      []string{toEmail},
		Subject: fmt.Sprintf("%s - Order #%d Confirmed", d.siteName, orderID),
		HTMLContent: fmt.Sprintf(
			"<h2>Thank you for your order, %s!</h2>"+
				"<p>Your order <strong>#%d</strong> has been placed successfully.</p>"+
				"<p>Order total: <strong>₹%.2f</strong></p>"+
				"<p>We will notify you when it ships.</p>",
			toName, orderID, float64(totalAmount)/100),
		Type: TypeOrderConfirmation,
	})
}

// EnqueuePaymentReceipt sends a payment receipt to the customer
func (d *Dispatcher) EnqueuePaymentReceipt(toEmail, toName string, orderID uint, amount int64, method string) {
	d.Enqueue(&Message{
		To:      []string{toEmail},
		Subject: fmt.Sprintf("%s - Payment Received for Order #%d", d.siteName, orderID),
		HTMLContent: fmt.Sprintf(
			"<h2>Payment received</h2>"+
				"<p>Hi %s, we received your payment of <strong>₹%.2f</strong> "+
				"for order <strong>#%d</strong> via %s.</p>",
			toName, float64(amount)/100, orderID, method),
		Type: TypePaymentReceipt,
	})
}

// EnqueueOTP sends a one-time password for a password reset
func (d *Dispatcher) EnqueueOTP(toEmail, code string, expiresAt time.Time) {
	d.Enqueue(&Message{
		To:      []string{toEmail},
		Subject: fmt.Sprintf("%s - Your Password Reset Code", d.siteName),
		HTMLContent: fmt.Sprintf(
			"<h2>Password reset code</h2>"+
				"<p>Your one-time code is <strong>%s</strong>.</p>"+
				"<p>It expires at %s. If you did not request this, ignore this email.</p>",
			code, expiresAt.Format("15:04 MST")),
		Type: TypeOTP,
	})
}

// EnqueueContactMessage forwards a contact form submission to support
func (d *Dispatcher) EnqueueContactMessage(fromEmail, fromName, subject, body string) {
	if subject == "" {
		subject = "Contact form message"
	}
	d.Enqueue(&Message{
		To:      []string{fromEmail},
		Subject: fmt.Sprintf("%s - We received your message", d.siteName),
		HTMLContent: fmt.Sprintf(
			"<h2>Thanks for reaching out, %s!</h2>"+
				"<p>We received your message about \"%s\" and will get back to you soon.</p>"+
				"<blockquote>%s</blockquote>",
			fromName, subject, body),
		Type: TypeContact,
	})
}
