// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"time"

	"github.com/btw02/Stock-Manager/internal/platform/externalapi/fmp"
	infrahttp "github.com/btw02/Stock-Manager/internal/platform/http"
	"github.com/btw02/Stock-Manager/internal/shared/ratelimiter"
)

// fmpCallsPerMinute keeps the client inside the FMP free-tier budget.
const fmpCallsPerMinute = 250

// NewMarket creates a fully configured FMP client with HTTP client and
// rate limiter.
func NewMarket() *fmp.Client {
	cfg := fmp.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(fmpCallsPerMinute, time.Minute)
	return fmp.NewClient(cfg, httpClient, limiter)
}
