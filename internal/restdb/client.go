package restdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
)

// BadShapeError reports a response body that did not decode into the shape
// the caller expected. It wraps the underlying decode error so callers can
// still inspect it.
type BadShapeError struct {
	Table string
	Err   error
}

func (e *BadShapeError) Error() string {
	return fmt.Sprintf("restdb: bad response shape for table %q: %v", e.Table, e.Err)
}

func (e *BadShapeError) Unwrap() error { return e.Err }

// Filters holds equality filters, encoded as `column=eq.value` query
// parameters the way the hosted table API expects.
type Filters map[string]string

// Client talks to the hosted table API. It is the only place in the
// repository that knows about the wire format; entity packages supply their
// own row types and mapping.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

func NewClient(baseURL, anonKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, anonKey: anonKey, httpClient: httpClient}
}

// Select fetches all rows of table matching filters and decodes them into
// dest (a pointer to a slice of row structs).
func (c *Client) Select(ctx context.Context, table string, filters Filters, dest any) error {
	body, err := c.do(ctx, http.MethodGet, table, filters, nil)
	if err != nil {
		return err
	}
	return c.decode(table, body, dest)
}

// Insert posts payload as a new row. When dest is non-nil the returned
// representation (an array of rows) is decoded into it.
func (c *Client) Insert(ctx context.Context, table string, payload, dest any) error {
	body, err := c.do(ctx, http.MethodPost, table, nil, payload)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	return c.decode(table, body, dest)
}

// Update patches all rows matching filters with the given column values.
func (c *Client) Update(ctx context.Context, table string, filters Filters, payload, dest any) error {
	body, err := c.do(ctx, http.MethodPatch, table, filters, payload)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	return c.decode(table, body, dest)
}

// Delete removes all rows matching filters.
func (c *Client) Delete(ctx context.Context, table string, filters Filters) error {
	_, err := c.do(ctx, http.MethodDelete, table, filters, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, table string, filters Filters, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(table, filters), reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet && method != http.MethodDelete {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("restdb: %s %s failed: %s", method, table, resp.Status)
	}
	return body, nil
}

func (c *Client) endpoint(table string, filters Filters) string {
	u := c.baseURL + "/rest/v1/" + table
	if len(filters) == 0 {
		return u
	}
	// stable order keeps request URLs deterministic for tests and logs
	cols := make([]string, 0, len(filters))
	for col := range filters {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	q := url.Values{}
	for _, col := range cols {
		q.Set(col, "eq."+filters[col])
	}
	return u + "?" + q.Encode()
}

func (c *Client) decode(table string, body []byte, dest any) error {
	if err := json.Unmarshal(body, dest); err != nil {
		return &BadShapeError{Table: table, Err: err}
	}
	return nil
}
