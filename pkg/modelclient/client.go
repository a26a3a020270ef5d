package modelclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP client for the hosted model endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a model endpoint client. The per-call deadline is supplied
// by the caller's context, not by the client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// SetBaseURL overrides the endpoint URL (used by tests).
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// Parse sends a feature-tagged parse request.
func (c *Client) Parse(ctx context.Context, req ParseRequest) (*ParseResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, NewModelError(KindValidation, fmt.Errorf("failed to marshal parse request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+parsePath, bytes.NewBuffer(body))
	if err != nil {
		return nil, NewModelError(KindValidation, fmt.Errorf("failed to build parse request: %w", err))
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, NewModelError(classifyTransport(ctx, err), fmt.Errorf("failed to call model API: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, NewModelError(classifyStatus(resp.StatusCode),
			fmt.Errorf("model API error %d: %s", resp.StatusCode, string(raw)))
	}

	var result ParseResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, NewModelError(KindValidation, fmt.Errorf("failed to decode model response: %w", err))
	}

	if !result.Success {
		return nil, NewModelError(KindAPI, fmt.Errorf("model signaled failure: %s", result.Error))
	}

	return &result, nil
}

// ChatStream forwards the conversation and returns the raw reply stream.
func (c *Client) ChatStream(ctx context.Context, req ChatRequest) (io.ReadCloser, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, NewModelError(KindValidation, fmt.Errorf("failed to marshal chat request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatPath, bytes.NewBuffer(body))
	if err != nil {
		return nil, NewModelError(KindValidation, fmt.Errorf("failed to build chat request: %w", err))
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, NewModelError(classifyTransport(ctx, err), fmt.Errorf("failed to call chat API: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, NewModelError(classifyStatus(resp.StatusCode),
			fmt.Errorf("chat API error %d: %s", resp.StatusCode, string(raw)))
	}

	return resp.Body, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
