// Package placeholder is a client for the public JSONPlaceholder demo API.
package placeholder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/statelab/internal/logger"
)

const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// Client talks to the demo API. There is no retry and no auth header.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a client for baseURL. A zero timeout means no timeout.
func New(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// ListUsers fetches GET /users.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// CreatePost sends POST /posts and returns the echoed post. Every call
// creates a new post; nothing is deduplicated.
func (c *Client) CreatePost(ctx context.Context, p NewPost) (Post, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return Post{}, fmt.Errorf("encode post: %w", err)
	}
	var out Post
	if err := c.do(ctx, http.MethodPost, "/posts", payload, &out); err != nil {
		return Post{}, fmt.Errorf("create post: %w", err)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	log := logger.With("placeholder").With().
		Str("method", method).
		Str("url", req.URL.String()).
		Str("request_id", reqID).
		Logger()

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		log.Warn().Err(err).Dur("duration", duration).Msg("request_failed")
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	log.Debug().Int("status", resp.StatusCode).Dur("duration", duration).Msg("request_completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
