package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"glamora/config"

	"go.uber.org/zap"
)

// Gateway initiates a mobile-money charge. The call is synchronous: the
// caller proceeds only on success, and no webhook or async callback is
// consumed.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// ChargeRequest is the single request the gateway accepts.
type ChargeRequest struct {
	Phone          string                 `json:"phone"`
	Amount         int                    `json:"amount"`
	BookingDetails map[string]interface{} `json:"bookingDetails,omitempty"`
}

// ChargeResult reports a successful charge.
type ChargeResult struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// GatewayError is returned when the gateway rejects or fails a charge.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway error (%d): %s", e.StatusCode, e.Message)
}

type stkPushRequest struct {
	Shortcode      string                 `json:"shortcode"`
	Phone          string                 `json:"phone"`
	Amount         int                    `json:"amount"`
	BookingDetails map[string]interface{} `json:"bookingDetails,omitempty"`
}

type stkPushResponse struct {
	Code      int    `json:"code"`
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Msg       string `json:"msg"`
}

// MpesaClient is a thin HTTP client for the M-Pesa STK-push endpoint.
type MpesaClient struct {
	BaseURL   string
	APIKey    string
	Shortcode string
	Client    *http.Client
	Logger    *zap.Logger
}

// NewMpesaClient builds a client from the loaded configuration.
func NewMpesaClient(logger *zap.Logger) *MpesaClient {
	return &MpesaClient{
		BaseURL:   config.AppConfig.MpesaBaseURL,
		APIKey:    config.AppConfig.MpesaAPIKey,
		Shortcode: config.AppConfig.MpesaShortcode,
		Client:    &http.Client{Timeout: 30 * time.Second},
		Logger:    logger,
	}
}

// Charge POSTs an STK push and waits for the gateway's synchronous verdict.
func (m *MpesaClient) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	payload := stkPushRequest{
		Shortcode:      m.Shortcode,
		Phone:          req.Phone,
		Amount:         req.Amount,
		BookingDetails: req.BookingDetails,
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal charge request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.BaseURL+"/stkpush", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create charge request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+m.APIKey)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := m.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("charge request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		m.Logger.Warn("M-Pesa charge rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return nil, &GatewayError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var gwResp stkPushResponse
	if err := json.Unmarshal(body, &gwResp); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	if gwResp.Code != 0 {
		m.Logger.Warn("M-Pesa charge declined",
			zap.Int("code", gwResp.Code),
			zap.String("msg", gwResp.Msg))
		return nil, &GatewayError{StatusCode: resp.StatusCode, Message: gwResp.Msg}
	}

	m.Logger.Info("M-Pesa charge accepted",
		zap.String("reference", gwResp.Reference),
		zap.Int("amount", req.Amount))
	return &ChargeResult{Reference: gwResp.Reference, Status: gwResp.Status}, nil
}
