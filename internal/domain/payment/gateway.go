// internal/domain/payment/gateway.go
package payment

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/config"
)

// GatewayVerifier checks a transaction with the payment gateway
type GatewayVerifier interface {
	VerifyTransaction(ctx context.Context, transactionID string) (*GatewayResult, error)
}

// GatewayResult is the gateway's answer for one transaction
type GatewayResult struct {
	Verified bool   `json:"verified"`
	Status   string `json:"status"`
	Raw      []byte `json:"-"`
}

// RestGateway verifies transactions against an HTTP payment gateway
type RestGateway struct {
	client *resty.Client
}

// NewRestGateway creates a gateway client from config
func NewRestGateway(cfg *config.GatewayConfig) *RestGateway {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetBasicAuth(cfg.KeyID, cfg.KeySecret).
		SetHeader("Content-Type", "application/json")
	return &RestGateway{client: client}
}

type gatewayPaymentResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// VerifyTransaction fetches the transaction and reports whether the
// gateway considers it captured.
func (g *RestGateway) VerifyTransaction(ctx context.Context, transactionID string) (*GatewayResult, error) {
	var body gatewayPaymentResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get(fmt.Sprintf("/v1/payments/%s", transactionID))
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode())
	}

	return &GatewayResult{
		Verified: body.Status == "captured" || body.Status == "authorized",
		Status:   body.Status,
		Raw:      resp.Body(),
	}, nil
}
