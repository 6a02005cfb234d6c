// Package rest talks to the employee REST API over HTTP.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/csg33k/employee-manager/internal/domain"
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Code)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

type Client struct {
	base *url.URL
	http *http.Client
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:5000". A nil httpClient uses a plain http.Client with no
// timeout; requests end when their context does.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api url %q must be absolute", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{base: u, http: httpClient}, nil
}

// wireEmployee accepts both "id" and the document-store style "_id".
type wireEmployee struct {
	domain.Employee
	MongoID string `json:"_id,omitempty"`
}

func (w wireEmployee) toDomain() domain.Employee {
	e := w.Employee
	if e.ID == "" {
		e.ID = w.MongoID
	}
	return e
}

func (c *Client) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var wire []wireEmployee
	if err := c.do(ctx, http.MethodGet, "/employees", nil, &wire); err != nil {
		return nil, err
	}
	list := make([]domain.Employee, 0, len(wire))
	for _, w := range wire {
		list = append(list, w.toDomain())
	}
	return list, nil
}

// CreateEmployee posts a draft. The response body is ignored; callers
// re-fetch the list.
func (c *Client) CreateEmployee(ctx context.Context, e domain.Employee) error {
	e.ID = ""
	return c.do(ctx, http.MethodPost, "/employees", e, nil)
}

// UpdateEmployee replaces the record with the full copy, id included.
func (c *Client) UpdateEmployee(ctx context.Context, e domain.Employee) error {
	if !e.Persisted() {
		return fmt.Errorf("update employee: missing id")
	}
	return c.do(ctx, http.MethodPut, "/employees/"+url.PathEscape(e.ID), e, nil)
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("delete employee: missing id")
	}
	return c.do(ctx, http.MethodDelete, "/employees/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, rd)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}
