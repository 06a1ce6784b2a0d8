// Package client provides the HTTP client for the assistant API and the
// client-held conversation state.
//
// The backend is stateless: the client owns the message log and sends the
// entire history on every turn.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/orbinite/gids/internal/chat"
)

// DefaultTimeout bounds a single API call, completion included.
const DefaultTimeout = 3 * time.Minute

// ErrAPI wraps error payloads returned by the server.
var ErrAPI = errors.New("api error")

// Client talks to the assistant's REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatRequest struct {
	History []chat.Message `json:"history"`
}

type chatResponse struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Chat sends the full conversation history and returns the model's reply.
func (c *Client) Chat(ctx context.Context, history []chat.Message) (string, error) {
	var out chatResponse
	if err := c.postJSON(ctx, "/api/chat", chatRequest{History: history}, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if jsonErr := json.Unmarshal(data, &apiErr); jsonErr == nil && apiErr.Error != "" {
			if apiErr.Message != "" {
				return fmt.Errorf("%w: %s (%s)", ErrAPI, apiErr.Message, apiErr.Error)
			}
			return fmt.Errorf("%w: %s", ErrAPI, apiErr.Error)
		}
		return fmt.Errorf("%w: unexpected status %d", ErrAPI, resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
