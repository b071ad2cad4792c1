package grocy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ducc/stock-panel/internal/logging"
)

const (
	// APIKeyHeader is the header Grocy expects the API key in
	APIKeyHeader = "GROCY-API-KEY"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second
)

// Client is an HTTP client for the Grocy stock API.
//
// The panel uses four operations: the product catalog (once at startup),
// the per-product stock view (on every navigation or action press), and the
// consume/add stock mutations. The API key is attached to every request.
type Client struct {
	// BaseURL is the base URL of the Grocy instance
	// (e.g., "http://192.168.1.20:9283")
	BaseURL string

	// APIKey is the static Grocy API key sent with every request.
	// It comes from external configuration, never from source.
	APIKey string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewClient creates a new Grocy API client.
// baseURL: Grocy base URL without the /api suffix
// apiKey: static API key for the GROCY-API-KEY header
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Products retrieves the full product catalog. The panel calls this once at
// startup to compute the selectable product id range.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	body, err := c.get(ctx, "/api/objects/products")
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, NewParseError("failed to parse product catalog", err)
	}
	return products, nil
}

// StockProduct retrieves the stock view of one product. Fields the service
// omits decode to zero values rather than failing.
func (c *Client) StockProduct(ctx context.Context, id int) (*StockProduct, error) {
	body, err := c.get(ctx, fmt.Sprintf("/api/stock/products/%d", id))
	if err != nil {
		return nil, err
	}

	var sp StockProduct
	if err := json.Unmarshal(body, &sp); err != nil {
		return nil, NewParseError("failed to parse stock product", err)
	}
	return &sp, nil
}

// Consume books one unit of the product out of stock. The unit is never
// marked spoiled.
func (c *Client) Consume(ctx context.Context, id int) error {
	return c.post(ctx, fmt.Sprintf("/api/stock/products/%d/consume", id), consumeRequest{
		Amount:          1,
		TransactionType: "consume",
		Spoiled:         false,
	})
}

// Add books one unit of the product into stock, with no price or expiry
// metadata.
func (c *Client) Add(ctx context.Context, id int) error {
	return c.post(ctx, fmt.Sprintf("/api/stock/products/%d/add", id), addRequest{
		Amount:          1,
		TransactionType: "purchase",
	})
}

// get performs an authenticated GET and returns the response body on any
// 2xx status.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, NewNetworkError("failed to create GET request", err)
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, NewNetworkError("GET "+path+" failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	logging.LogRemoteCall(http.MethodGet, path, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewHTTPError(resp.StatusCode, "GET "+path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}
	return body, nil
}

// post performs an authenticated POST with a JSON body and succeeds on any
// 2xx status.
func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return NewParseError("failed to encode request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return NewNetworkError("failed to create POST request", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewNetworkError("POST "+path+" failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	logging.LogRemoteCall(http.MethodPost, path, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return NewHTTPError(resp.StatusCode, "POST "+path)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set(APIKeyHeader, c.APIKey)
	req.Header.Set("Accept", "application/json")
}
