// Package blobstore talks to the remote key/value storage that keeps the
// application's data as opaque JSON strings, and emulates it for local runs.
package blobstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrNotFound means the store answered without a data envelope.
	ErrNotFound = errors.New("item not found")
	// ErrMalformedEnvelope means the store's answer could not be decoded.
	ErrMalformedEnvelope = errors.New("malformed envelope")
	// ErrUnauthorized means the store rejected the token.
	ErrUnauthorized = errors.New("unauthorized")
)

// Item is the stored pair. Value is the caller's JSON string, encoded a
// second time inside the envelope.
type Item struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Envelope is the wrapper the store returns around an item.
type Envelope struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Data    *Item  `json:"data,omitempty"`
}

type setRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Token string `json:"token"`
}

// Client issues GET and POST requests against a single endpoint with a
// static token.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	log      *zap.SugaredLogger
}

// NewClient creates a client. A zero timeout means requests only end
// with their context.
func NewClient(endpoint, token string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		http:     &http.Client{Timeout: timeout},
		log:      log.Named("blobstore"),
	}
}

// SetItem stores value under key. There is no retry.
func (c *Client) SetItem(ctx context.Context, key, value string) error {
	body, err := json.Marshal(setRequest{Key: key, Value: value, Token: c.token})
	if err != nil {
		return fmt.Errorf("encode set request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build set request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("set item %q: %w", key, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if err := statusError(resp.StatusCode); err != nil {
		return fmt.Errorf("set item %q: %w", key, err)
	}

	c.log.Debugw("item stored", "key", key, "bytes", len(value))
	return nil
}

// GetItem fetches the item stored under key. The returned Value still
// has to be decoded by the caller.
func (c *Client) GetItem(ctx context.Context, key string) (Item, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return Item{}, fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("key", key)
	q.Set("token", c.token)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Item{}, fmt.Errorf("build get request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Item{}, fmt.Errorf("get item %q: %w", key, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := statusError(resp.StatusCode); err != nil {
		return Item{}, fmt.Errorf("get item %q: %w", key, err)
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return Item{}, fmt.Errorf("get item %q: %w: %v", key, ErrMalformedEnvelope, err)
	}
	if env.Data == nil {
		c.log.Debugw("item absent", "key", key, "message", env.Message)
		return Item{}, ErrNotFound
	}

	return *env.Data, nil
}

func statusError(code int) error {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code >= 400:
		return fmt.Errorf("unexpected status %d", code)
	}
	return nil
}
