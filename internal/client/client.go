package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/ship-console/internal/domain"
	"github.com/DjordjeVuckovic/ship-console/pkg/pagination"
	"github.com/go-http-utils/headers"
)

const appsPath = "/api/v1/app"

// StatusError is returned for any non-200 API response
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.Code, strings.TrimSpace(e.Body))
}

// AppClient is the REST binding of the app endpoints
type AppClient struct {
	baseURL *url.URL
	client  *http.Client
}

func NewAppClient(baseURL string) (*AppClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api base url %q: scheme and host are required", baseURL)
	}

	return &AppClient{
		baseURL: u,
		client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// List fetches the page at cursor, keeping only apps whose name starts with query
func (c *AppClient) List(ctx context.Context, cursor pagination.Cursor, query string) (*pagination.Collection[domain.App], error) {
	params := cursor.Query()
	if query != "" {
		params.Set("q", query)
	}
	return c.Follow(ctx, appsPath+"?"+params.Encode())
}

// Follow fetches the page a next/previous reference points at. Relative
// references resolve against the base URL.
func (c *AppClient) Follow(ctx context.Context, ref string) (*pagination.Collection[domain.App], error) {
	target, err := c.resolve(ref)
	if err != nil {
		return nil, err
	}

	var col pagination.Collection[domain.App]
	if err := c.get(ctx, target, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// Get fetches one app by name
func (c *AppClient) Get(ctx context.Context, name string) (*domain.App, error) {
	target, err := c.resolve(appsPath + "/" + url.PathEscape(name))
	if err != nil {
		return nil, err
	}

	var resp struct {
		Objects domain.App `json:"Objects"`
	}
	if err := c.get(ctx, target, &resp); err != nil {
		return nil, err
	}
	return &resp.Objects, nil
}

func (c *AppClient) resolve(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid reference %q: %w", ref, err)
	}
	return c.baseURL.ResolveReference(u).String(), nil
}

func (c *AppClient) get(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("api create request: %w", err)
	}
	req.Header.Set(headers.Accept, "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("api decode response: %w", err)
	}
	return nil
}
