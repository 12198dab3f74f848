package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/zvrva/tourbooking/config"
)

// KhaltiGateway verifies widget tokens against the Khalti payment verify
// endpoint. The widget itself runs client-side; by the time a token reaches
// this service the amount may already be captured, so verification failures
// after capture are the partial-failure case the booking flow reports.
type KhaltiGateway struct {
	publicKey string
	secretKey string
	baseURL   string
	channels  []string
	client    *http.Client
}

func NewKhaltiGateway(cfg config.KhaltiConfig) *KhaltiGateway {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &KhaltiGateway{
		publicKey: cfg.PublicKey,
		secretKey: cfg.SecretKey,
		baseURL:   cfg.BaseURL,
		channels:  cfg.Channels,
		client:    &http.Client{Timeout: timeout},
	}
}

func (g *KhaltiGateway) Name() string {
	return "khalti"
}

func (g *KhaltiGateway) StartCheckout(ctx context.Context, req CheckoutRequest) (*Handle, error) {
	if req.Token == "" {
		return nil, fmt.Errorf("khalti: checkout token is required")
	}

	handle := NewHandle()
	go func() {
		handle.Deliver(g.verify(ctx, req))
	}()
	return handle, nil
}

func (g *KhaltiGateway) verify(ctx context.Context, req CheckoutRequest) CheckoutResult {
	body, err := json.Marshal(map[string]any{
		"token":  req.Token,
		"amount": req.AmountPaisa,
	})
	if err != nil {
		return CheckoutResult{Outcome: OutcomeFailed, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/v2/payment/verify/", bytes.NewReader(body))
	if err != nil {
		return CheckoutResult{Outcome: OutcomeFailed, Err: err}
	}
	httpReq.Header.Set("Authorization", "Key "+g.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return CheckoutResult{Outcome: OutcomeFailed, Err: fmt.Errorf("khalti verify request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return CheckoutResult{Outcome: OutcomeFailed, Err: fmt.Errorf("khalti verify failed: %s", resp.Status)}
	}

	var out struct {
		IDX string `json:"idx"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return CheckoutResult{Outcome: OutcomeFailed, Err: fmt.Errorf("khalti verify response: %w", err)}
	}

	// The booking keeps the widget token as its payment reference; idx only
	// confirms the transaction exists on Khalti's side.
	if out.IDX == "" {
		return CheckoutResult{Outcome: OutcomeFailed, Err: fmt.Errorf("khalti: empty transaction idx")}
	}
	return CheckoutResult{Outcome: OutcomeSucceeded, Reference: req.Token}
}

var _ Gateway = (*KhaltiGateway)(nil)
