// Package listapi is an HTTP client for the back-office list API.
package listapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/backoffice/internal/domain"
)

const (
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 64 << 10
)

// FallbackMessage is shown when a failed request carries no server message.
const FallbackMessage = "Something went wrong, please try again."

// APIError is returned for every non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("listapi: status %d", e.Status)
	}
	return fmt.Sprintf("listapi: status %d: %s", e.Status, e.Message)
}

// UserMessage returns the text to show an operator for err: the server's
// message when there is one, otherwise FallbackMessage.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return FallbackMessage
}

// Client talks to the list API rooted at baseURL (e.g. http://host/api).
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client. A nil httpClient gets a default one with a 15s
// timeout.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        logger.With("adapter", "listapi"),
	}
}

// ListItems fetches rows of a sortable collection.
func (c *Client) ListItems(ctx context.Context, entity domain.Entity, q Query) (*ListResponse[Item], error) {
	var resp ListResponse[Item]
	if err := c.do(ctx, http.MethodGet, q.Values(), nil, &resp, string(entity)); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListRecords fetches rows of a ledger collection.
func (c *Client) ListRecords(ctx context.Context, entity domain.Entity, q Query) (*ListResponse[Record], error) {
	var resp ListResponse[Record]
	if err := c.do(ctx, http.MethodGet, q.Values(), nil, &resp, string(entity)); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Reorder persists the full, renumbered order of a collection and returns the
// number of updated rows.
func (c *Client) Reorder(ctx context.Context, entity domain.Entity, items []domain.ReorderItem) (int, error) {
	var resp ReorderResponse
	err := c.do(ctx, http.MethodPost, nil, ReorderRequest{Items: items}, &resp, string(entity), "bulk-update-sort")
	if err != nil {
		return 0, err
	}
	return resp.Data.Updated, nil
}

// BulkAction applies action to the records of entity. params (the active
// filter) are forwarded only in All mode.
func (c *Client) BulkAction(ctx context.Context, entity domain.Entity, action domain.BulkAction, req BulkActionRequest, params url.Values) (*BulkActionResponse, error) {
	if req.Mode != domain.BulkModeAll {
		params = nil
	} else {
		req.IDs = nil
	}

	var resp BulkActionResponse
	if err := c.do(ctx, http.MethodPost, params, req, &resp, string(entity), "bulk-update", string(action)); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method string, params url.Values, body, dst any, path ...string) error {
	reqURL, err := url.JoinPath(c.baseURL, path...)
	if err != nil {
		return fmt.Errorf("listapi: build url: %w", err)
	}
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("listapi: encode body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("listapi: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("listapi: %s %s: %w", method, reqURL, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "listapi response",
		slog.String("method", method),
		slog.String("url", reqURL),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("listapi: decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}
	var body errorBody
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Message = body.Error
	}
	return apiErr
}
