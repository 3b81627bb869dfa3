// Package fmp provides a client for the Financial Modeling Prep
// company-profile API.
package fmp

import (
	"os"
	"time"
)

const defaultBaseURL = "https://financialmodelingprep.com/api/v3"

// Config holds configuration for the Financial Modeling Prep client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads FMP configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("FMP_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("FMP_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
