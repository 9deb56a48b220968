package display

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/dto"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Source is what the Rotator reads the board from.
type Source interface {
	Layout(ctx context.Context) (*dto.DisplayLayoutResponse, error)
	Board(ctx context.Context, mode string, page int) (*dto.BoardResponse, error)
}

// Client reads the public board API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client for the server at baseURL (e.g. http://localhost:8080).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

var _ Source = (*Client)(nil)

// Layout fetches the active layout, or the default grid when none is active.
func (c *Client) Layout(ctx context.Context) (*dto.DisplayLayoutResponse, error) {
	var layout dto.DisplayLayoutResponse
	if err := c.get(ctx, "/api/v1/public/layout", nil, &layout); err != nil {
		return nil, err
	}
	return &layout, nil
}

// Board fetches one composed page of today's board.
func (c *Client) Board(ctx context.Context, mode string, page int) (*dto.BoardResponse, error) {
	q := url.Values{}
	if mode != "" {
		q.Set("mode", mode)
	}
	q.Set("page", strconv.Itoa(page))

	var board dto.BoardResponse
	if err := c.get(ctx, "/api/v1/public/board", q, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, apiErr.Error)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
