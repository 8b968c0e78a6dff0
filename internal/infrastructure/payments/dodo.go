package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/payment"
)

const (
	liveBaseURL = "https://live.dodopayments.com"
	testBaseURL = "https://test.dodopayments.com"
)

// Client talks to the hosted-payments provider's REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *slog.Logger
}

func NewClient(apiKey, environment string, log *slog.Logger) *Client {
	baseURL := testBaseURL
	if environment == "live_mode" {
		baseURL = liveBaseURL
	}

	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		log:        log.With("component", "payments_client"),
	}
}

type createLinkRequest struct {
	ProductID     string `json:"product_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customer_email"`
	PaymentLink   bool   `json:"payment_link"`
}

type createLinkResponse struct {
	PaymentID string `json:"payment_id"`
	URL       string `json:"payment_link"`
}

func (c *Client) CreateLink(ctx context.Context, req payment.LinkRequest) (payment.Link, error) {
	body, err := json.Marshal(createLinkRequest{
		ProductID:     req.ProductID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		CustomerEmail: req.CustomerEmail,
		PaymentLink:   true,
	})
	if err != nil {
		return payment.Link{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return payment.Link{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return payment.Link{}, fmt.Errorf("payments request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return payment.Link{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.log.Error("provider rejected payment link", "status", resp.StatusCode, "body", string(respBody))
		return payment.Link{}, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var linkResp createLinkResponse
	if err := json.Unmarshal(respBody, &linkResp); err != nil {
		return payment.Link{}, fmt.Errorf("decode response: %w", err)
	}

	if linkResp.PaymentID == "" || linkResp.URL == "" {
		return payment.Link{}, fmt.Errorf("provider response missing payment id or link")
	}

	return payment.Link{PaymentID: linkResp.PaymentID, URL: linkResp.URL}, nil
}
