// Package usecase implements the business logic for the stocks feature.
package usecase

import "errors"

var (
	// ErrStockNotFound is returned when no stock exists for the given
	// id, or when an import symbol is unknown both locally and at the
	// market-data provider.
	ErrStockNotFound = errors.New("stock not found")

	// ErrSymbolTaken is returned when a create or update would violate
	// symbol uniqueness.
	ErrSymbolTaken = errors.New("symbol already exists")

	// ErrInvalidSortField is returned when a query names a sort field
	// that is not in the sortable set. It is raised before any store
	// access.
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrProfileNotFound is returned by the market adapter when the
	// provider has no profile for the requested symbol.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrMarketUnavailable is returned when the market-data provider
	// could not be reached or answered with something unusable. It is
	// distinct from ErrStockNotFound so callers can tell an outage
	// from true absence.
	ErrMarketUnavailable = errors.New("market data provider unavailable")
)
