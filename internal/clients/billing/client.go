// Package billing is an HTTP client for the billing service: pending invoices
// and per-organization currency settings.
package billing

import (
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

type PaymentResponse struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Status string `json:"status"`
}

type InvoiceResponse struct {
	ID             string            `json:"id"`
	Amount         int64             `json:"amount"`
	OrganizationID string            `json:"organization_id"`
	Currency       string            `json:"currency"`
	Type           string            `json:"type"`
	Reference      string            `json:"reference,omitempty"`
	Payments       []PaymentResponse `json:"payments,omitempty"`
}

func (c *Client) PendingInvoices(ctx context.Context) ([]entity.Invoice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/invoices", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad response status %d:\n%s", resp.StatusCode, body)
	}

	var respData []InvoiceResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	invoices := make([]entity.Invoice, 0, len(respData))

	for _, v := range respData {
		inv, err := v.toEntity()
		if err != nil {
			return nil, fmt.Errorf("invoice %q: %w", v.ID, err)
		}

		invoices = append(invoices, inv)
	}

	return invoices, nil
}

func (v InvoiceResponse) toEntity() (entity.Invoice, error) {
	if v.ID == "" || v.OrganizationID == "" || v.Currency == "" || v.Type == "" {
		return entity.Invoice{}, fmt.Errorf("%w: missing required invoice field", entity.ErrSchemaMismatch)
	}

	var payments []entity.Payment

	for _, p := range v.Payments {
		if p.ID == "" {
			return entity.Invoice{}, fmt.Errorf("%w: payment without id", entity.ErrSchemaMismatch)
		}

		if p.Amount < 0 {
			return entity.Invoice{}, fmt.Errorf("%w: payment %q has negative amount %d",
				entity.ErrSchemaMismatch, p.ID, p.Amount)
		}

		payments = append(payments, entity.Payment{
			ID:     p.ID,
			Amount: p.Amount,
			Status: entity.PaymentStatus(p.Status),
		})
	}

	return entity.Invoice{
		ID:             v.ID,
		Amount:         v.Amount,
		OrganizationID: v.OrganizationID,
		Currency:       entity.Currency(v.Currency),
		Type:           entity.InvoiceType(v.Type),
		Reference:      v.Reference,
		Payments:       payments,
	}, nil
}

type OrganizationSettingsResponse struct {
	OrganizationID string `json:"organization_id"`
	Currency       string `json:"currency"`
}

func (c *Client) OrganizationCurrency(ctx context.Context, organizationID string) (entity.Currency, error) {
	reqURL := c.baseURL + "/organizations/" + url.PathEscape(organizationID) + "/settings"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

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

	var respData OrganizationSettingsResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if respData.Currency == "" {
		return "", fmt.Errorf("%w: settings without currency", entity.ErrSchemaMismatch)
	}

	return entity.Currency(respData.Currency), nil
}
