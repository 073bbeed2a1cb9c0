// Package paymentgw is the HTTP client for the external payment provider.
// The provider issues invoices and reports their settlement status; settled
// payments also arrive asynchronously through the provider's webhook, which
// is handled by the inbound HTTP layer.
package paymentgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
)

const defaultTimeout = 10 * time.Second

// Client talks to the payment provider's REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a payment provider client for the given base URL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

type createInvoiceRequest struct {
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
}

type createInvoiceResponse struct {
	InvoiceURL string `json:"invoice_url"`
}

type invoiceStatusResponse struct {
	Status string `json:"status"`
}

// CreateInvoice registers an invoice for the order and returns the payment URL.
func (c *Client) CreateInvoice(ctx context.Context, orderID kernel.UUID, amount int64) (string, error) {
	if err := orderID.Validate(); err != nil {
		return "", err
	}

	body, err := json.Marshal(createInvoiceRequest{OrderID: orderID.String(), Amount: amount})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/invoices", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("payment provider returned status %d", resp.StatusCode)
	}

	var payload createInvoiceResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	if payload.InvoiceURL == "" {
		return "", fmt.Errorf("payment provider returned an empty invoice URL")
	}

	return payload.InvoiceURL, nil
}

// StatusFor reports the settlement status of the order's invoice. An invoice
// the provider does not know yet reads as PENDING, so a status poll racing
// invoice creation never fails a command.
func (c *Client) StatusFor(ctx context.Context, orderID kernel.UUID) (payment.Status, error) {
	if err := orderID.Validate(); err != nil {
		return payment.StatusUnknown, err
	}

	url := fmt.Sprintf("%s/invoices/%s", c.baseURL, orderID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return payment.StatusUnknown, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return payment.StatusUnknown, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return payment.StatusPending, nil
	default:
		return payment.StatusUnknown, fmt.Errorf("payment provider returned status %d", resp.StatusCode)
	}

	var payload invoiceStatusResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return payment.StatusUnknown, fmt.Errorf("decode body: %w", err)
	}

	return payment.StatusFromString(payload.Status)
}
