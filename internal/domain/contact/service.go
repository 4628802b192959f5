// internal/domain/contact/service.go
package contact

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/errs"
)

// Notifier forwards contact messages to the support mailbox
type Notifier interface {
	EnqueueContactMessage(fromEmail, fromName, subject, body string)
}

// Service handles contact form submissions
type Service struct {
	db       *gorm.DB
	notifier Notifier
}

// NewService creates a new contact service. notifier may be nil.
func NewService(db *gorm.DB, notifier Notifier) *Service {
	return &Service{db: db, notifier: notifier}
}

// SubmitRequest represents a contact form submission
type SubmitRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Body    string `json:"body" binding:"required"`
}

// Submit stores the message and forwards it to the support mailbox
func (s *Service) Submit(req *SubmitRequest) (*Message, error) {
	if strings.TrimSpace(req.Body) == "" {
		return nil, errs.Validation("message body is required")
	}

	msg := &Message{
		Name:    req.Name,
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := s.db.Create(msg).Error; err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	if s.notifier != nil {
		s.notifier.EnqueueContactMessage(msg.Email, msg.Name, msg.Subject, msg.Body)
	}
	return msg, nil
}

// List returns all contact messages, newest first
func (s *Service) List() ([]Message, error) {
	var messages []Message
	if err := s.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}
