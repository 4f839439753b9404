package backend

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

	"github.com/SergeyKozhin/liferabbit/internal/model"
	"golang.org/x/oauth2"
)

// Client talks to the goals REST backend. Calls are never retried and have
// no timeout of their own; they end when the caller's context does.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client whose requests carry the bearer token from tokens
// whenever it has one.
func New(baseURL string, tokens oauth2.TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: &bearerTransport{source: tokens, base: http.DefaultTransport},
		},
	}
}

type bearerTransport struct {
	source oauth2.TokenSource
	base   http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.source == nil {
		return t.base.RoundTrip(req)
	}

	tok, err := t.source.Token()
	if err != nil {
		if errors.Is(err, model.ErrNoSession) {
			return t.base.RoundTrip(req)
		}
		return nil, fmt.Errorf("token: %w", err)
	}

	r := req.Clone(req.Context())
	tok.SetAuthHeader(r)

	return t.base.RoundTrip(r)
}

// do sends one request and decodes a JSON response into out when out is
// not nil and the response has a body.
func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		observe(op, start, err)
	}()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPayload, op, err)
	}

	return nil
}
