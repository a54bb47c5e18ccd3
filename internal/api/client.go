// Package api implements the HTTP client for the model indexing service.
// The surface is four synchronous calls: list folders, list models, search,
// and (via the session package) establish a tenant session. Errors carry the
// HTTP status so callers can report them; a 401 maps to ErrUnauthorized so
// the session layer can react.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/studiowebux/shapecli/internal/types"
)

// RequestTimeout bounds every backend call. The interaction core treats
// these calls as blocking; the timeout is this boundary's policy.
const RequestTimeout = 30 * time.Second

// ErrUnauthorized indicates the tenant session is missing or expired.
var ErrUnauthorized = errors.New("unauthorized")

// TokenFunc supplies the bearer token for the active tenant session.
// It reports false when no session is established.
type TokenFunc func() (string, bool)

// Client talks to one tenant's API endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenFunc
}

// NewClient creates a client for the given resolved (tenant-specific) base
// URL. token may be nil for endpoints that allow anonymous access.
func NewClient(baseURL string, token TokenFunc) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: RequestTimeout},
		token:   token,
	}
}

// ListFolders returns the tenant's folders in backend order.
func (c *Client) ListFolders(ctx context.Context) ([]types.Folder, error) {
	var out struct {
		Folders []types.Folder `json:"folders"`
	}
	if err := c.get(ctx, "/v2/folders", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return out.Folders, nil
}

// ListModels returns the models contained in the given folders, in backend
// order. An empty folder set yields an empty list without a round trip.
func (c *Client) ListModels(ctx context.Context, folderIDs []int) ([]types.Model, error) {
	if len(folderIDs) == 0 {
		return nil, nil
	}

	params := url.Values{}
	for _, id := range folderIDs {
		params.Add("folderId", strconv.Itoa(id))
	}

	var out struct {
		Models []types.Model `json:"models"`
	}
	if err := c.get(ctx, "/v2/models", params, &out); err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	if err := validateModels(out.Models); err != nil {
		return nil, err
	}
	return out.Models, nil
}

// Search submits a text query against the tenant's indexed models.
func (c *Client) Search(ctx context.Context, query string) ([]types.Model, error) {
	params := url.Values{}
	params.Set("q", query)

	var out struct {
		Models []types.Model `json:"models"`
	}
	if err := c.get(ctx, "/v2/models/search", params, &out); err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	if err := validateModels(out.Models); err != nil {
		return nil, err
	}
	return out.Models, nil
}

func validateModels(models []types.Model) error {
	for _, m := range models {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("malformed response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != nil {
		if tok, ok := c.token(); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, truncateBody(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// truncateBody keeps error messages status-line sized.
func truncateBody(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
