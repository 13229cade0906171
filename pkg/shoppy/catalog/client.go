package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// DefaultBaseURL is the public catalog the application browses.
const DefaultBaseURL = "https://fakestoreapi.com"

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

const (
	maxBodyBytes  = 4 << 20
	maxImageBytes = 10 << 20
)

// Options configures a Client.
type Options struct {
	BaseURL    string        // Catalog root, defaults to DefaultBaseURL
	HTTPClient *http.Client  // Defaults to a client with Timeout applied
	Timeout    time.Duration // Per-request timeout, zero means none
	Logger     *slog.Logger  // Defaults to slog.Default()
}

// Client fetches products from the remote catalog.
// It is safe for concurrent use.
type Client struct {
	base   string
	http   *http.Client
	logger *slog.Logger
	images singleflight.Group
}

// NewClient creates a Client. The base URL must be absolute.
func NewClient(opts Options) (*Client, error) {
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("catalog: invalid base url %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("catalog: base url %q must be absolute", base)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		base:   strings.TrimRight(base, "/"),
		http:   httpClient,
		logger: logger,
	}, nil
}

// BaseURL returns the catalog root the client talks to.
func (c *Client) BaseURL() string {
	return c.base
}

// Products fetches the full collection. The order is returned as received.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product

	body, requestID, err := c.get(ctx, "products", c.base+"/products", maxBodyBytes)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(body, &products); err != nil {
		return nil, c.fail("products", requestID, ErrMalformed, err)
	}

	c.logger.Debug("Fetched products", "request_id", requestID, "count", len(products))
	return products, nil
}

// Product fetches a single product by identifier.
// The public catalog answers an unknown id with an empty 200 body, which is
// reported as ErrNotFound just like a 404.
func (c *Client) Product(ctx context.Context, id int) (Product, error) {
	var product Product

	body, requestID, err := c.get(ctx, "product", c.base+"/products/"+strconv.Itoa(id), maxBodyBytes)
	if err != nil {
		return Product{}, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Product{}, c.fail("product", requestID, ErrNotFound, fmt.Errorf("id %d", id))
	}

	if err := json.Unmarshal(trimmed, &product); err != nil {
		return Product{}, c.fail("product", requestID, ErrMalformed, err)
	}

	c.logger.Debug("Fetched product", "request_id", requestID, "product_id", product.ID)
	return product, nil
}

// Image downloads the bytes behind a product image URL.
// Concurrent calls for the same URL share one request.
func (c *Client) Image(ctx context.Context, imageURL string) ([]byte, error) {
	v, err, _ := c.images.Do(imageURL, func() (any, error) {
		body, _, err := c.get(ctx, "image", imageURL, maxImageBytes)
		return body, err
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *Client) get(ctx context.Context, op, target string, limit int64) ([]byte, string, error) {
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, requestID, c.fail(op, requestID, ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			c.logger.Debug("Catalog request abandoned", "op", op, "request_id", requestID)
			return nil, requestID, ctxErr
		}
		return nil, requestID, c.fail(op, requestID, ErrTransport, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, requestID, c.fail(op, requestID, ErrNotFound, fmt.Errorf("GET %s: %s", target, resp.Status))
	case resp.StatusCode/100 != 2:
		return nil, requestID, c.fail(op, requestID, ErrTransport, fmt.Errorf("GET %s: %s", target, resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, requestID, ctxErr
		}
		return nil, requestID, c.fail(op, requestID, ErrTransport, err)
	}
	if int64(len(body)) > limit {
		return nil, requestID, c.fail(op, requestID, ErrTransport, fmt.Errorf("body exceeds %d bytes", limit))
	}

	return body, requestID, nil
}

func (c *Client) fail(op, requestID string, kind, err error) error {
	fe := &FetchError{Kind: kind, Op: op, RequestID: requestID, Err: err}
	c.logger.Error("Catalog request failed", "op", op, "request_id", requestID, "kind", fe.KindName(), "error", err)
	return fe
}
