package unicafe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/yanqian/unicafe/internal/domain/menu"
	apperrors "github.com/yanqian/unicafe/pkg/errors"
	"github.com/yanqian/unicafe/pkg/metrics"
	"github.com/yanqian/unicafe/pkg/util"
)

const (
	DefaultBaseURL   = "http://messi.hyyravintolat.fi/publicapi"
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "unicafe-cli/1.0"
)

// Config tunes the API client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client fetches restaurants and menus from the public menu API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
	usage      *metrics.Usage
}

// NewClient builds an API client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ua := strings.TrimSpace(cfg.UserAgent)
	if ua == "" {
		ua = DefaultUserAgent
	}
	return &Client{
		baseURL:   strings.TrimRight(base, "/"),
		userAgent: ua,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With("component", "unicafe.client"),
		now:    util.NowUTC,
		usage:  &metrics.Usage{},
	}
}

// WithClock returns a copy of c that infers menu years from now.
func (c *Client) WithClock(now func() time.Time) *Client {
	cp := *c
	cp.now = util.Clock(now)
	return &cp
}

// Usage reports how many API calls this client made and how they failed.
func (c *Client) Usage() metrics.UsageSnapshot {
	return c.usage.Snapshot()
}

// Restaurants lists every restaurant known to the API.
func (c *Client) Restaurants(ctx context.Context) ([]menu.Restaurant, error) {
	raw, err := fetch[[]restaurantWire](ctx, c, c.baseURL+"/restaurants")
	if err != nil {
		return nil, err
	}
	restaurants, err := toRestaurants(raw)
	if err != nil {
		return nil, menu.DecodeError(err)
	}
	return restaurants, nil
}

// Menus returns the published menus of one restaurant in API order.
func (c *Client) Menus(ctx context.Context, restaurantID int64) ([]menu.Menu, error) {
	raw, err := fetch[[]menuWire](ctx, c, fmt.Sprintf("%s/restaurant/%d", c.baseURL, restaurantID))
	if err != nil {
		return nil, err
	}
	menus, err := toMenus(raw, menu.DateOf(c.now()))
	if err != nil {
		return nil, menu.DecodeError(err)
	}
	return menus, nil
}

// fetch performs a GET and decodes the {status, data} envelope. Failures are
// classified in order: transport, HTTP status, body read, JSON shape. The
// envelope status field is read but never checked.
func fetch[T any](ctx context.Context, c *Client, endpoint string) (T, error) {
	data, err := doFetch[T](ctx, c, endpoint)
	c.usage.Record(apperrors.CodeOf(err))
	return data, err
}

func doFetch[T any](ctx context.Context, c *Client, endpoint string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return zero, menu.TransportError(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, menu.TransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("menu api bad status", "url", endpoint, "status", resp.StatusCode)
		return zero, menu.BadStatusError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, menu.TransportError(fmt.Errorf("read response: %w", err))
	}
	c.logger.Debug("menu api response", "url", endpoint, "status", resp.StatusCode, "bytes", len(body))

	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return zero, menu.DecodeError(err)
	}
	if env.Status == nil {
		return zero, menu.DecodeError(missingField("status"))
	}
	if env.Data == nil {
		return zero, menu.DecodeError(missingField("data"))
	}
	return *env.Data, nil
}

var errMissingField = errors.New("missing field")

func missingField(name string) error {
	return fmt.Errorf("%w %q", errMissingField, name)
}
