// Package store talks to the remote task collection over HTTP.
package store

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

	"github.com/google/uuid"
	"github.com/pablasso/taskapp/internal/task"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries a per-request identifier so client and store logs line up.
const RequestIDHeader = "X-Request-ID"

// Lister fetches the whole collection.
type Lister interface {
	List(ctx context.Context) ([]task.Record, error)
}

// Getter fetches a single record.
type Getter interface {
	Get(ctx context.Context, id task.ID) (task.Record, error)
}

// Saver creates and updates records.
type Saver interface {
	Create(ctx context.Context, rec task.Record) (task.Record, error)
	Update(ctx context.Context, id task.ID, rec task.Record) (task.Record, error)
}

// Deleter removes records.
type Deleter interface {
	Delete(ctx context.Context, id task.ID) error
}

// API is the full set of collection operations.
type API interface {
	Lister
	Getter
	Saver
	Deleter
}

// Client performs CRUD calls against a single collection resource.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithTimeout sets a per-request timeout. Zero means no timeout. The HTTP
// client is copied first, so a client passed to WithHTTPClient keeps its own
// timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// New creates a Client for the collection at baseURL (e.g. https://host/data).
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: missing host", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(u.String(), "/"),
		httpClient: &http.Client{},
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the collection URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches every record in the collection.
func (c *Client) List(ctx context.Context) ([]task.Record, error) {
	var records []task.Record
	if err := c.do(ctx, "list", http.MethodGet, c.baseURL, nil, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []task.Record{}
	}
	return records, nil
}

// Get fetches the record with the given id.
func (c *Client) Get(ctx context.Context, id task.ID) (task.Record, error) {
	var rec task.Record
	if err := c.do(ctx, "get", http.MethodGet, c.itemURL(id), nil, &rec); err != nil {
		return task.Record{}, err
	}
	return rec, nil
}

// Create posts a new record. The store assigns and returns the identifier.
func (c *Client) Create(ctx context.Context, rec task.Record) (task.Record, error) {
	rec.ID = ""
	var created task.Record
	if err := c.do(ctx, "create", http.MethodPost, c.baseURL, rec, &created); err != nil {
		return task.Record{}, err
	}
	return created, nil
}

// Update replaces the record with the given id.
func (c *Client) Update(ctx context.Context, id task.ID, rec task.Record) (task.Record, error) {
	var updated task.Record
	if err := c.do(ctx, "update", http.MethodPut, c.itemURL(id), rec, &updated); err != nil {
		return task.Record{}, err
	}
	return updated, nil
}

// Delete removes the record with the given id.
func (c *Client) Delete(ctx context.Context, id task.ID) error {
	return c.do(ctx, "delete", http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *Client) itemURL(id task.ID) string {
	return c.baseURL + "/" + url.PathEscape(id.String())
}

// do issues exactly one request. A nil out discards the response body.
func (c *Client) do(ctx context.Context, op, method, target string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Op: op, Err: fmt.Errorf("failed to encode request: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.log.With().Str("op", op).Str("method", method).Str("url", target).Str("request_id", requestID).Logger()
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("request failed")
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	log.Debug().Int("status", resp.StatusCode).Dur("latency", time.Since(start)).Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Warn().Int("status", resp.StatusCode).Msg("store rejected request")
		return &Error{Op: op, StatusCode: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		log.Warn().Err(err).Msg("failed to decode response")
		return &Error{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
