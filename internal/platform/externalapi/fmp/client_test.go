package fmp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btw02/Stock-Manager/internal/feature/stocks/usecase"
)

func testConfig(baseURL string) Config {
	return Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	client := NewClient(testConfig("https://api.test.com"), &http.Client{}, nil)

	require.NotNil(t, client)
	assert.Equal(t, "test-key", client.cfg.APIKey)
}

// TestClient_FindProfile_Success verifies request shape and field
// mapping from the provider payload onto the internal stock.
func TestClient_FindProfile_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profile/AAPL", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"symbol": "AAPL",
				"companyName": "Apple Inc.",
				"price": 150.25,
				"lastDiv": 0.96,
				"industry": "Consumer Electronics",
				"mktCap": 2000000000
			},
			{
				"symbol": "AAPL.SW",
				"companyName": "Apple Inc. (Swiss)",
				"price": 140.00,
				"lastDiv": 0.96,
				"industry": "Consumer Electronics",
				"mktCap": 1900000000
			}
		]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), server.Client(), nil)

	stock, err := client.FindProfile(context.Background(), "aapl")
	require.NoError(t, err)

	// Only the first array element is consumed.
	assert.Equal(t, "AAPL", stock.Symbol)
	assert.Equal(t, "Apple Inc.", stock.CompanyName)
	assert.Equal(t, 150.25, stock.Purchase)
	assert.Equal(t, 0.96, stock.LastDiv)
	assert.Equal(t, "Consumer Electronics", stock.Industry)
	assert.EqualValues(t, 2_000_000_000, stock.MarketCap)
	assert.Zero(t, stock.ID, "the store assigns the id, never the provider")
}

// TestClient_FindProfile_EmptyArray verifies that a well-formed empty
// answer means the symbol is unknown, not that the provider is down.
func TestClient_FindProfile_EmptyArray(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), server.Client(), nil)

	_, err := client.FindProfile(context.Background(), "NOPE")
	assert.ErrorIs(t, err, usecase.ErrProfileNotFound)
}

// TestClient_FindProfile_HTTP404 verifies that the provider's 404 is
// an absence signal like the empty array, not an outage.
func TestClient_FindProfile_HTTP404(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), server.Client(), nil)

	_, err := client.FindProfile(context.Background(), "NOPE")
	assert.ErrorIs(t, err, usecase.ErrProfileNotFound)
	assert.NotErrorIs(t, err, usecase.ErrMarketUnavailable)
}

// TestClient_FindProfile_SoftFailures verifies that every transport
// and payload failure collapses into the provider-unavailable signal.
func TestClient_FindProfile_SoftFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http 401",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "http 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"not":"an array"`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(testConfig(server.URL), server.Client(), nil)

			_, err := client.FindProfile(context.Background(), "AAPL")
			assert.ErrorIs(t, err, usecase.ErrMarketUnavailable)
		})
	}
}

// TestClient_FindProfile_Timeout verifies that a hanging provider is
// the same soft failure as any other transient error.
func TestClient_FindProfile_Timeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	httpClient := &http.Client{Timeout: 20 * time.Millisecond}
	client := NewClient(testConfig(server.URL), httpClient, nil)

	_, err := client.FindProfile(context.Background(), "AAPL")
	assert.ErrorIs(t, err, usecase.ErrMarketUnavailable)
}

// TestClient_FindProfile_ConnectionRefused verifies the network-error path.
func TestClient_FindProfile_ConnectionRefused(t *testing.T) {
	t.Parallel()

	// A server that is already closed refuses connections.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(testConfig(server.URL), &http.Client{}, nil)

	_, err := client.FindProfile(context.Background(), "AAPL")
	assert.ErrorIs(t, err, usecase.ErrMarketUnavailable)
}
