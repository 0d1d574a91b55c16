package products

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Extractor fetches product data from the extraction service.
type Extractor interface {
	Extract(ctx context.Context, req ExtractionRequest) (ExtractionResponse, error)
	ByASIN(ctx context.Context, asin string) (ExtractionResponse, error)
}

// Client calls the product extraction service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Client for baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Extract posts req to /api/extract.
func (c *Client) Extract(ctx context.Context, req ExtractionRequest) (ExtractionResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return ExtractionResponse{}, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/extract", bytes.NewReader(payload))
	if err != nil {
		return ExtractionResponse{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	return c.do(httpReq)
}

// ByASIN fetches /api/product/{asin}.
func (c *Client) ByASIN(ctx context.Context, asin string) (ExtractionResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/product/"+url.PathEscape(asin), nil)
	if err != nil {
		return ExtractionResponse{}, err
	}
	return c.do(httpReq)
}

func (c *Client) do(req *http.Request) (ExtractionResponse, error) {
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return ExtractionResponse{}, fmt.Errorf("product service timeout: %w", err)
		}
		return ExtractionResponse{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return ExtractionResponse{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ExtractionResponse{}, fmt.Errorf("product service returned %s", resp.Status)
	}

	var parsed ExtractionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ExtractionResponse{}, fmt.Errorf("product response parse: %w", err)
	}
	if parsed.Warnings == nil {
		parsed.Warnings = []string{}
	}
	return parsed, nil
}
