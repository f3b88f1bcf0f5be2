package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(serverURL string) *MpesaClient {
	return &MpesaClient{
		BaseURL:   serverURL,
		APIKey:    "test-key",
		Shortcode: "174379",
		Client:    &http.Client{Timeout: 5 * time.Second},
		Logger:    zap.NewNop(),
	}
}

func TestChargeSuccess(t *testing.T) {
	var got stkPushRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/stkpush", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(stkPushResponse{
			Code:      0,
			Status:    "success",
			Reference: "WS_CO_123456",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.Charge(context.Background(), ChargeRequest{
		Phone:  "+254712345678",
		Amount: 3500,
	})
	require.NoError(t, err)

	assert.Equal(t, "WS_CO_123456", result.Reference)
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "174379", got.Shortcode)
	assert.Equal(t, 3500, got.Amount)
}

func TestChargeDeclinedByGateway(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(stkPushResponse{
			Code: 1032,
			Msg:  "Request cancelled by user",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Charge(context.Background(), ChargeRequest{Phone: "+254712345678", Amount: 3500})

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Contains(t, gwErr.Message, "cancelled")
}

func TestChargeHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Charge(context.Background(), ChargeRequest{Phone: "+254712345678", Amount: 3500})

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusUnauthorized, gwErr.StatusCode)
}

func TestChargeRespectsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := newTestClient(server.URL)
	_, err := client.Charge(ctx, ChargeRequest{Phone: "+254712345678", Amount: 3500})
	assert.Error(t, err)
}
