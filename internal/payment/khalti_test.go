package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zvrva/tourbooking/config"
)

func newTestGateway(baseURL string) *KhaltiGateway {
	return NewKhaltiGateway(config.KhaltiConfig{
		PublicKey:      "test_public",
		SecretKey:      "test_secret",
		BaseURL:        baseURL,
		TimeoutSeconds: 2,
	})
}

func awaitResult(t *testing.T, handle *Handle) CheckoutResult {
	t.Helper()
	select {
	case res := <-handle.Result():
		return res
	case <-time.After(3 * time.Second):
		t.Fatal("no checkout result delivered")
		return CheckoutResult{}
	}
}

func TestKhaltiGateway_VerifySuccess(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{"idx": "8xyz123"})
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)
	handle, err := gateway.StartCheckout(context.Background(), CheckoutRequest{
		Token:       "tok_123",
		AmountPaisa: 250000,
		ProductID:   "pkg-1",
		ProductName: "Everest Base Camp",
	})
	assert.NoError(t, err)

	res := awaitResult(t, handle)
	assert.Equal(t, OutcomeSucceeded, res.Outcome)
	assert.Equal(t, "tok_123", res.Reference)
	assert.Equal(t, "Key test_secret", gotAuth)
	assert.Equal(t, "tok_123", gotBody["token"])
	assert.Equal(t, float64(250000), gotBody["amount"])
}

func TestKhaltiGateway_VerifyDeclined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)
	handle, err := gateway.StartCheckout(context.Background(), CheckoutRequest{Token: "tok_bad", AmountPaisa: 100})
	assert.NoError(t, err)

	res := awaitResult(t, handle)
	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.Error(t, res.Err)
}

func TestKhaltiGateway_MissingToken(t *testing.T) {
	gateway := newTestGateway("http://localhost:0")
	handle, err := gateway.StartCheckout(context.Background(), CheckoutRequest{AmountPaisa: 100})
	assert.Nil(t, handle)
	assert.Error(t, err)
}

func TestHandle_LateDeliveryNeverBlocks(t *testing.T) {
	handle := NewHandle()
	handle.Deliver(CheckoutResult{Outcome: OutcomeSucceeded})
	// A second delivery after the waiter is gone must not block.
	handle.Deliver(CheckoutResult{Outcome: OutcomeFailed})

	res := <-handle.Result()
	assert.Equal(t, OutcomeSucceeded, res.Outcome)
}
