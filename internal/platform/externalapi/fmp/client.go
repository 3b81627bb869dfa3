package fmp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/btw02/Stock-Manager/internal/feature/stocks/domain/entity"
	"github.com/btw02/Stock-Manager/internal/feature/stocks/usecase"
	"github.com/btw02/Stock-Manager/internal/platform/externalapi/fmp/dto"
	"github.com/btw02/Stock-Manager/internal/shared/ratelimiter"
)

// Client is the MarketRepository implementation backed by the
// Financial Modeling Prep profile endpoint. Every call is exactly one
// outbound request; there is no caching and no automatic retry.
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// Compile-time check that Client implements MarketRepository.
var _ usecase.MarketRepository = (*Client)(nil)

// NewClient creates a Client with the given configuration and HTTP
// client. limiter throttles outbound calls and may be nil.
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// FindProfile fetches the company profile for a symbol and maps it
// onto the internal stock shape. The provider answers with a JSON
// array; only index 0 is consumed. A well-formed empty array or an
// HTTP 404 means the symbol is unknown and yields
// usecase.ErrProfileNotFound; all other transport failures, error
// statuses and malformed payloads collapse into
// usecase.ErrMarketUnavailable so a provider outage degrades
// enrichment without leaking transport errors upward.
func (c *Client) FindProfile(ctx context.Context, symbol string) (*entity.Stock, error) {
	if c.limiter != nil {
		c.limiter.WaitIfNeeded()
	}

	q := url.Values{}
	q.Set("apikey", c.cfg.APIKey)
	u := fmt.Sprintf("%s/profile/%s?%s", c.cfg.BaseURL, url.PathEscape(strings.ToUpper(symbol)), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("fmp: build request: %w", usecase.ErrMarketUnavailable)
	}

	res, err := c.client.Do(req)
	if err != nil {
		slog.Warn("fmp request failed", "symbol", symbol, "error", err)
		return nil, fmt.Errorf("fmp: %v: %w", err, usecase.ErrMarketUnavailable)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode == http.StatusNotFound {
		return nil, usecase.ErrProfileNotFound
	}
	if res.StatusCode >= 400 {
		slog.Warn("fmp returned error status", "symbol", symbol, "status", res.StatusCode)
		return nil, fmt.Errorf("fmp: http %d: %w", res.StatusCode, usecase.ErrMarketUnavailable)
	}

	var profiles []dto.Profile
	if err := json.NewDecoder(res.Body).Decode(&profiles); err != nil {
		slog.Warn("fmp returned malformed payload", "symbol", symbol, "error", err)
		return nil, fmt.Errorf("fmp: decode: %w", usecase.ErrMarketUnavailable)
	}

	if len(profiles) == 0 {
		return nil, usecase.ErrProfileNotFound
	}

	p := profiles[0]
	// ID is left zero: it is assigned by the store on persistence.
	return &entity.Stock{
		Symbol:      p.Symbol,
		CompanyName: p.CompanyName,
		Purchase:    p.Price,
		LastDiv:     p.LastDiv,
		Industry:    p.Industry,
		MarketCap:   p.MktCap,
	}, nil
}
