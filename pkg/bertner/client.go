// Package bertner is a client for a hosted BERT named-entity-recognition
// model served through the HuggingFace Inference API.
package bertner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client calls a token-classification inference endpoint. It holds no
// mutable state after construction and is safe for concurrent use.
type Client struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIURL overrides the inference endpoint base URL.
func WithAPIURL(url string) Option {
	return func(c *Client) { c.apiURL = url }
}

// WithModel overrides the model identifier.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// NewClient creates a new NER inference client with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		apiURL:     DefaultAPIURL,
		model:      DefaultModel,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the model identifier being used.
func (c *Client) Model() string {
	return c.model
}

// Recognize runs named-entity recognition over text and returns the
// detected spans, sub-token fragments aggregated into whole words.
func (c *Client) Recognize(ctx context.Context, text string) ([]Span, error) {
	url := fmt.Sprintf("%s/%s", c.apiURL, c.model)

	body, err := json.Marshal(tokenClassificationRequest{
		Inputs:     text,
		Parameters: requestParameters{AggregationStrategy: AggregationSimple},
		Options:    requestOptions{WaitForModel: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call inference API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("inference API error %d: %s", resp.StatusCode, string(raw))
	}

	var spans []Span
	if err := json.NewDecoder(resp.Body).Decode(&spans); err != nil {
		return nil, fmt.Errorf("failed to decode inference response: %w", err)
	}

	return spans, nil
}
