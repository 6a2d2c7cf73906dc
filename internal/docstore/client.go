// Package docstore is a client for the hosted document store (Appwrite REST
// shape) that backs programs, newsletter signups and contact messages.
package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/revenland/revenland/internal/domain"
)

// AutoID asks Create to generate a unique document identifier
const AutoID = "unique()"

// RequestError is returned when the store rejects a request
type RequestError struct {
	Method  string
	Path    string
	Status  int
	Type    string // store error type, e.g. "document_invalid_structure"
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: unexpected status code: %d", e.Method, e.Path, e.Status)
}

// Unwrap lets callers match any rejection with errors.Is(err, domain.ErrRequestRejected)
func (e *RequestError) Unwrap() error {
	return domain.ErrRequestRejected
}

// Client talks to one project of the document store. Create one per process
// and share it between services.
type Client struct {
	endpoint   string
	project    string
	apiKey     string
	httpClient *http.Client
	newID      func() string
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithAPIKey sends a server API key with every request
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithTimeout bounds every request. Zero leaves the store default in place.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithIDGenerator replaces the generator used for AutoID
func WithIDGenerator(gen func() string) Option {
	return func(c *Client) { c.newID = gen }
}

// NewClient creates a new document store client
func NewClient(endpoint, project string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		project:    project,
		httpClient: &http.Client{},
		newID:      uuid.NewString,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the base URL the client talks to
func (c *Client) Endpoint() string {
	return c.endpoint
}

func documentsPath(databaseID, collectionID string) string {
	return fmt.Sprintf("/databases/%s/collections/%s/documents",
		url.PathEscape(databaseID), url.PathEscape(collectionID))
}

// List returns the documents of a collection in store order
func (c *Client) List(ctx context.Context, databaseID, collectionID string) ([]Document, error) {
	body, err := c.doRequest(ctx, http.MethodGet, documentsPath(databaseID, collectionID), nil)
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := decode(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Documents == nil {
		resp.Documents = []Document{}
	}
	return resp.Documents, nil
}

// Create stores a new document. Pass AutoID to have an identifier generated.
func (c *Client) Create(ctx context.Context, databaseID, collectionID, documentID string, fields map[string]any) (Document, error) {
	if documentID == "" || documentID == AutoID {
		documentID = c.newID()
	}

	body, err := c.doRequest(ctx, http.MethodPost, documentsPath(databaseID, collectionID),
		createRequest{DocumentID: documentID, Data: fields})
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := decode(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return doc, nil
}

// Update changes only the given fields of a document
func (c *Client) Update(ctx context.Context, databaseID, collectionID, documentID string, fields map[string]any) (Document, error) {
	if documentID == "" {
		return nil, fmt.Errorf("update: document ID is required")
	}
	path := documentsPath(databaseID, collectionID) + "/" + url.PathEscape(documentID)

	body, err := c.doRequest(ctx, http.MethodPatch, path, updateRequest{Data: fields})
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := decode(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return doc, nil
}

// Ping checks that the endpoint answers like a document store and returns its version
func (c *Client) Ping(ctx context.Context) (string, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/health/version", nil)
	if err != nil {
		return "", err
	}

	var hv healthVersion
	if err := json.Unmarshal(body, &hv); err != nil {
		return "", fmt.Errorf("not a document store: %w", err)
	}
	if hv.Version == "" {
		return "", fmt.Errorf("not a document store: missing version")
	}
	return hv.Version, nil
}

// doRequest performs a single request against the store. Failures are not
// retried; the caller decides what to show the user.
func (c *Client) doRequest(ctx context.Context, method, path string, payload any) ([]byte, error) {
	reqURL := c.endpoint + path

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Appwrite-Project", c.project)
	if c.apiKey != "" {
		req.Header.Set("X-Appwrite-Key", c.apiKey)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("docstore request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Error("docstore request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrServerOffline, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	reqErr := &RequestError{Method: method, Path: path, Status: resp.StatusCode}
	var eb errorResponse
	if json.Unmarshal(body, &eb) == nil {
		reqErr.Type = eb.Type
		reqErr.Message = eb.Message
	}

	c.logger.Error("docstore request error",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"type", reqErr.Type,
		"message", reqErr.Message,
	)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthFailed, reqErr)
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %w", domain.ErrNotFound, reqErr)
	}
	return nil, reqErr
}

// decode unmarshals keeping numbers exact so integer attributes survive
func decode(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(v)
}
