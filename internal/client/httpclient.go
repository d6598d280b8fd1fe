package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/quotejournal/internal/models"
	"github.com/dmitrijs2005/quotejournal/internal/token"
)

// HTTPClient is the net/http implementation of Client.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
}

// NewHTTPClient returns a client for the API at baseURL. Outgoing
// requests attach the token currently held by store, when there is one.
func NewHTTPClient(baseURL string, store token.Store) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Transport: &bearerTransport{store: store, base: http.DefaultTransport},
		},
	}
}

// bearerTransport attaches the stored token to every outgoing request as
// an Authorization: Bearer header. When no token is stored (or the store
// cannot be read) the request goes out unmodified and the server decides
// what to do with it.
type bearerTransport struct {
	store token.Store
	base  http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	tok, err := t.store.Get(req.Context())
	if err != nil || tok == "" {
		return t.base.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+tok)
	return t.base.RoundTrip(clone)
}

// do issues a request and returns the raw response body. A transport
// failure wraps ErrUnavailable; a non-2xx status becomes a *APIError.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newAPIError(resp.StatusCode, data)
	}
	return data, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}

	data, err := c.do(ctx, http.MethodPost, "/auth/login", payload)
	if err != nil {
		return "", err
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (string, error) {
	payload := map[string]string{"name": name, "email": email, "password": password}

	data, err := c.do(ctx, http.MethodPost, "/auth/register", payload)
	if err != nil {
		return "", err
	}
	return messageFromBody(data), nil
}

func (c *HTTPClient) ListQuotes(ctx context.Context, scope QuoteScope) ([]models.Quote, error) {
	data, err := c.do(ctx, http.MethodGet, scope.path(), nil)
	if err != nil {
		return nil, err
	}

	var quotes []models.Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("failed to decode quote list: %w", err)
	}
	return quotes, nil
}

func (c *HTTPClient) CreateQuote(ctx context.Context, quote models.NewQuote) error {
	_, err := c.do(ctx, http.MethodPost, "/quotes", quote)
	return err
}

func (c *HTTPClient) DeleteQuote(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/quotes/"+id, nil)
	return err
}

func (c *HTTPClient) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	data, err := c.do(ctx, http.MethodGet, "/admin/dashboard", nil)
	if err != nil {
		return nil, err
	}

	var d models.Dashboard
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard response: %w", err)
	}
	return &d, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/admin/users/"+id, nil)
	return err
}

func (c *HTTPClient) SetUserRole(ctx context.Context, id string, role string) error {
	payload := map[string]string{"role": role}
	_, err := c.do(ctx, http.MethodPut, "/admin/users/"+id+"/role", payload)
	return err
}

// messageFromBody extracts a human-readable confirmation message from a
// response body. Servers answer the register endpoint with a bare JSON
// string, a {"message": ...} object, or plain text; all three map to the
// displayed message.
func messageFromBody(data []byte) string {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}
	return strings.TrimSpace(string(data))
}
