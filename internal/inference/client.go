// Package inference is the HTTP client for the model-serving sidecar that
// hosts the pretrained sentiment, emotion and linguistic models. Transient
// failures (429 and 5xx) are retried with exponential backoff; anything
// still failing degrades at the engine's adapter boundary.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "mood-mirror/1.0"
)

// errTransient marks responses worth retrying.
var errTransient = errors.New("transient inference error")

// Client talks to the inference sidecar.
type Client struct {
	baseURL    string
	httpClient *http.Client

	// Backoff between retry attempts; a request is tried
	// len(retryDelays)+1 times.
	retryDelays []time.Duration
}

// NewClient creates a client for the sidecar at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		retryDelays: []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second},
	}
}

// textRequest is the shared request body for all sidecar endpoints.
type textRequest struct {
	Text string `json:"text"`
}

// post sends a JSON body to path and decodes the response into out,
// retrying transient failures with exponential backoff.
func (c *Client) post(ctx context.Context, path string, text string, out any) error {
	body, err := json.Marshal(textRequest{Text: text})
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= len(c.retryDelays); attempt++ {
		// Wait before retry (skip on first attempt)
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryDelays[attempt-1]):
			}
		}

		err := c.doPost(ctx, path, body, out)
		if err == nil {
			return nil
		}

		if errors.Is(err, errTransient) {
			lastErr = err
			continue
		}

		// Non-retryable error
		return err
	}

	return lastErr
}

// doPost performs a single request.
func (c *Client) doPost(ctx context.Context, path string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("inference %s: %s: %s: %w", path, resp.Status, msg, errTransient)
		}
		return fmt.Errorf("inference %s: %s: %s", path, resp.Status, msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
