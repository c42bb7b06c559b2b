// Package ledger appends one normalized audit row per accepted
// submission to an external spreadsheet bridge. Delivery is best-effort;
// the caller logs failures and moves on.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Entry is the row shape the sheet bridge expects.
type Entry struct {
	Date          string `json:"date"`
	Time          string `json:"time"`
	PaymentAmount string `json:"paymentAmount"`
	ReceiptNumber string `json:"receiptNumber"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Courses       string `json:"courses"`
}

type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient builds an appender for the given webhook URL. An empty URL
// yields a client whose Append reports ErrNotConfigured.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ErrNotConfigured signals that no webhook URL is set.
var ErrNotConfigured = fmt.Errorf("ledger webhook not configured")

// Configured reports whether a webhook URL is set.
func (c *Client) Configured() bool { return c.url != "" }

// Append posts one row. Any non-2xx response is an error.
func (c *Client) Append(ctx context.Context, e Entry) error {
	if c.url == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode ledger row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build ledger request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post ledger row: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("ledger webhook returned %d", resp.StatusCode)
	}
	return nil
}
