package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client queries the remote catalog service over HTTP.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a catalog client. The token is sent as a bearer token
// on every request; an empty token means unauthenticated access.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetTimeout sets the timeout for catalog requests.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.http.Timeout = timeout
}

// Lookup fetches the catalog entry for a class id.
func (c *Client) Lookup(ctx context.Context, classID string) (*NodeType, error) {
	endpoint := fmt.Sprintf("%s/api/v1/types/%s", c.baseURL, url.PathEscape(classID))

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", status)
	}

	var entry NodeType
	if err := json.Unmarshal(body, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode catalog entry: %w", err)
	}
	return &entry, nil
}

// Search queries the catalog for entries matching a token.
func (c *Client) Search(ctx context.Context, token string) ([]NodeType, error) {
	endpoint := fmt.Sprintf("%s/api/v1/types?q=%s", c.baseURL, url.QueryEscape(token))

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", status)
	}

	var entries []NodeType
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode catalog entries: %w", err)
	}
	return entries, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read catalog response: %w", err)
	}
	return body, resp.StatusCode, nil
}
