// internal/pkg/email/types.go
package email

// MessageType identifies the kind of email being sent
type MessageType string

const (
	TypeOrderConfirmation MessageType = "order_confirmation"
	TypePaymentReceipt    MessageType = "payment_receipt"
	TypeOTP               MessageType = "otp"
	TypeContact           MessageType = "contact"
)

// Message is one email ready for delivery
type Message struct {
	To          []string    `json:"to"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"html_content"`
	Type        MessageType `json:"type"`
}
