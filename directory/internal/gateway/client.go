package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"log/slog"
)

// HealthStatus is the fulfillment health probe payload.
type HealthStatus struct {
	Status    string  `json:"status"`
	Uptime    float64 `json:"uptime"`
	Timestamp string  `json:"timestamp"`
}

// Order is the fulfillment order payload the gateway relays.
type Order struct {
	ID       int    `json:"id"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	UserID   int    `json:"user_id"`
}

// OrdersPayload is the order-lookup response body the gateway relays.
type OrdersPayload struct {
	Orders []Order `json:"orders"`
}

// Client issues outbound calls to the fulfillment service on behalf of the
// directory. Each inbound gateway request maps to exactly one outbound call;
// there is no caching, retry, or deduplication.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	healthTimeout time.Duration
	logger        *slog.Logger
}

// New constructs a Client pointing at the fulfillment base URL. The order
// timeout bounds order fetches; health probes use the shorter healthTimeout
// since they are liveness signals.
func New(base string, orderTimeout, healthTimeout time.Duration, logger *slog.Logger) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = "http://localhost:5001"
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("invalid fulfillment base url: %w", err)
	}
	if orderTimeout <= 0 {
		orderTimeout = 10 * time.Second
	}
	if healthTimeout <= 0 {
		healthTimeout = 2 * time.Second
	}
	return &Client{
		baseURL:       strings.TrimRight(trimmed, "/"),
		httpClient:    &http.Client{Timeout: orderTimeout},
		healthTimeout: healthTimeout,
		logger:        logger,
	}, nil
}

// BaseURL reports the normalised fulfillment base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get performs one outbound call and decodes the body into v. Any transport
// problem, a non-2xx status, or an undecodable body is a single class of
// failure the caller wraps into the gateway error envelope.
func (c *Client) get(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Health probes the fulfillment health endpoint.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	var status HealthStatus
	if err := c.get(ctx, c.baseURL+"/health", &status); err != nil {
		c.logger.Error("fulfillment health probe failed", "url", c.baseURL+"/health", "error", err)
		return HealthStatus{}, err
	}
	return status, nil
}

// OrdersByUser fetches the order list for one user id. The raw path segment
// is forwarded untouched: the fulfillment service resolves a non-numeric id
// to an empty order list rather than an error.
func (c *Client) OrdersByUser(ctx context.Context, rawID string) (OrdersPayload, error) {
	endpoint := c.baseURL + "/orders-by-user/" + url.PathEscape(rawID)

	var payload OrdersPayload
	if err := c.get(ctx, endpoint, &payload); err != nil {
		c.logger.Error("fulfillment order fetch failed", "user_id", rawID, "url", endpoint, "error", err)
		return OrdersPayload{}, err
	}
	if payload.Orders == nil {
		payload.Orders = []Order{}
	}
	return payload, nil
}
