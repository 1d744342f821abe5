package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client provides typed access to the directory service for clients that
// render the aggregated user/order view.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// New constructs a Client pointing at the provided directory base URL.
func New(base string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = "http://localhost:3000"
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("invalid directory base url: %w", err)
	}
	cli := &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli, nil
}

// APIError represents an error response from the directory service.
type APIError struct {
	Status  int
	Message string
}

func (e APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("directory request failed with status %d", e.Status)
	}
	return fmt.Sprintf("directory request failed (%d): %s", e.Status, e.Message)
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return APIError{Status: resp.StatusCode, Message: extractError(resp.Body)}
	}
	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func extractError(body io.Reader) string {
	if body == nil {
		return ""
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return ""
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return strings.TrimSpace(string(data))
	}
	if payload.Message != "" {
		return strings.TrimSpace(payload.Error + ": " + payload.Message)
	}
	return strings.TrimSpace(payload.Error)
}

// HealthStatus reflects the health probe payload of either service.
type HealthStatus struct {
	Status    string  `json:"status"`
	Uptime    float64 `json:"uptime"`
	Timestamp string  `json:"timestamp"`
}

// Health returns the directory service's own health probe.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var status HealthStatus
	if err := c.get(ctx, "/health", &status); err != nil {
		return HealthStatus{}, err
	}
	return status, nil
}

// User reflects directory user payloads.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListUsers returns the full user list in directory order.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var payload struct {
		Users []User `json:"users"`
	}
	if err := c.get(ctx, "/users", &payload); err != nil {
		return nil, err
	}
	return payload.Users, nil
}

// Order reflects fulfillment order payloads relayed through the gateway.
type Order struct {
	ID       int    `json:"id"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	UserID   int    `json:"user_id"`
}

// OrdersByUser fetches one user's orders through the directory gateway,
// unwrapping the proxy envelope.
func (c *Client) OrdersByUser(ctx context.Context, userID int) ([]Order, error) {
	var payload struct {
		Message string `json:"message"`
		Data    struct {
			Orders []Order `json:"orders"`
		} `json:"data"`
	}
	path := fmt.Sprintf("/gateway/users/%s/orders", url.PathEscape(strconv.Itoa(userID)))
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}
	return payload.Data.Orders, nil
}

// GatewayHealth fetches the fulfillment health status through the directory
// gateway, unwrapping the proxy envelope.
func (c *Client) GatewayHealth(ctx context.Context) (HealthStatus, error) {
	var payload struct {
		Message string       `json:"message"`
		Data    HealthStatus `json:"data"`
	}
	if err := c.get(ctx, "/gateway/health", &payload); err != nil {
		return HealthStatus{}, err
	}
	return payload.Data, nil
}
