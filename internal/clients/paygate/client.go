// Package paygate is an HTTP client for the payment gateway.
package paygate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/samandr77/reconciler/internal/entity"
	"github.com/samandr77/reconciler/pkg/transport"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	const timeout = 10 * time.Second

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type SubmitPaymentRequest struct {
	Amount int64 `json:"amount"`
}

type SubmitPaymentResponse struct {
	Status string `json:"status"`
}

// SubmitPayment charges the residual amount for one payment and returns the
// status the gateway echoes back. Zero amounts are submitted too: they confirm
// fully credited payments.
func (c *Client) SubmitPayment(ctx context.Context, paymentID string, amount int64) (entity.PaymentStatus, error) {
	b, err := json.Marshal(SubmitPaymentRequest{Amount: amount})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	reqURL := c.baseURL + "/payments/" + url.PathEscape(paymentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad response status %d:\n%s", resp.StatusCode, body)
	}

	var respData SubmitPaymentResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if respData.Status == "" {
		return "", fmt.Errorf("%w: response without status", entity.ErrSchemaMismatch)
	}

	return entity.PaymentStatus(respData.Status), nil
}
