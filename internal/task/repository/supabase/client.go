package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP wrapper for the Supabase PostgREST API.
type Client struct {
	baseURL    string
	serviceKey string
	table      string
	httpClient *http.Client
}

// NewClient creates a new Supabase REST client for one table.
func NewClient(baseURL, serviceKey, table string) *Client {
	if table == "" {
		table = "tasks"
	}
	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		table:      table,
		httpClient: &http.Client{},
	}
}

// Ping issues a minimal read against the table to verify the API is reachable
// and the service key is accepted. Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	var rows []json.RawMessage
	return c.do(ctx, http.MethodGet, "?limit=1&select=id", nil, &rows)
}

// do executes one REST call against the table and decodes the reply into out
// when out is non-nil.
func (c *Client) do(ctx context.Context, method, query string, payload, out interface{}) error {
	url := fmt.Sprintf("%s/rest/v1/%s%s", c.baseURL, c.table, query)

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal supabase request: %w", err)
		}
		body = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build supabase request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("apikey", c.serviceKey)
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.serviceKey))
	if method == http.MethodPost || method == http.MethodPatch {
		httpReq.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call supabase API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("supabase API error %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode supabase response: %w", err)
	}
	return nil
}
