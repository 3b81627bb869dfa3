package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/btw02/Stock-Manager/internal/feature/stocks/domain/entity"
)

// StockRepository abstracts the persistence layer for stock records.
// Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type StockRepository interface {
	// List returns the stocks matching the query, sorted and sliced to
	// the requested page. The query is assumed normalized and valid.
	List(ctx context.Context, q Query) ([]entity.Stock, error)

	// FindByID retrieves a stock by id. Returns ErrStockNotFound if absent.
	FindByID(ctx context.Context, id uint) (*entity.Stock, error)

	// FindBySymbol retrieves a stock by its exact symbol.
	// Returns ErrStockNotFound if absent.
	FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error)

	// Create persists a new stock and assigns its id.
	// Returns ErrSymbolTaken on a symbol-uniqueness violation.
	Create(ctx context.Context, stock *entity.Stock) error

	// Update replaces the mutable fields of the stock with the given id.
	// Returns ErrStockNotFound if absent, ErrSymbolTaken if the new
	// symbol collides with another record.
	Update(ctx context.Context, id uint, stock *entity.Stock) (*entity.Stock, error)

	// Delete removes the stock with the given id and returns the
	// removed record. Returns ErrStockNotFound if absent.
	Delete(ctx context.Context, id uint) (*entity.Stock, error)
}

// MarketRepository abstracts the external market-data provider.
// FindProfile returns ErrProfileNotFound when the provider has no
// profile for the symbol and ErrMarketUnavailable on any transport or
// payload failure; it never persists anything.
type MarketRepository interface {
	FindProfile(ctx context.Context, symbol string) (*entity.Stock, error)
}

// StockUsecase implements the catalog query engine and the
// synchronization flows against the market-data provider.
type StockUsecase struct {
	stocks StockRepository
	market MarketRepository
}

// NewStockUsecase creates a new StockUsecase with the given repositories.
func NewStockUsecase(stocks StockRepository, market MarketRepository) *StockUsecase {
	return &StockUsecase{stocks: stocks, market: market}
}

// List applies the query against the store. The sort field is checked
// before any store access; page bounds are clamped, not rejected.
func (u *StockUsecase) List(ctx context.Context, q Query) ([]entity.Stock, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	q.Normalize()
	return u.stocks.List(ctx, q)
}

// Get retrieves a single stock by id.
func (u *StockUsecase) Get(ctx context.Context, id uint) (*entity.Stock, error) {
	return u.stocks.FindByID(ctx, id)
}

// Create persists a caller-supplied stock. Symbol uniqueness is
// enforced atomically by the store's unique index, so the losing side
// of a concurrent duplicate create gets ErrSymbolTaken.
func (u *StockUsecase) Create(ctx context.Context, stock *entity.Stock) (*entity.Stock, error) {
	if err := u.stocks.Create(ctx, stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// Update performs a full replace of the mutable fields of the stock
// with the given id. Last committed write wins under concurrency.
func (u *StockUsecase) Update(ctx context.Context, id uint, stock *entity.Stock) (*entity.Stock, error) {
	return u.stocks.Update(ctx, id, stock)
}

// Delete removes a stock and returns the removed record so the caller
// can report what was deleted. Comments on the stock are removed by
// the store's cascade constraint.
func (u *StockUsecase) Delete(ctx context.Context, id uint) (*entity.Stock, error) {
	return u.stocks.Delete(ctx, id)
}

// GetOrImport returns the local record for the symbol, pulling it from
// the market-data provider on a local miss. The operation is
// idempotent: repeated calls for a present symbol return the existing
// record and never create a duplicate. On a provider miss nothing is
// persisted and ErrStockNotFound is returned; a provider outage
// surfaces as ErrMarketUnavailable and is not retried here.
//
// The second return value reports whether the record was imported on
// this call.
func (u *StockUsecase) GetOrImport(ctx context.Context, symbol string) (*entity.Stock, bool, error) {
	stock, err := u.stocks.FindBySymbol(ctx, symbol)
	if err == nil {
		return stock, false, nil
	}
	if !errors.Is(err, ErrStockNotFound) {
		return nil, false, err
	}

	fetched, err := u.market.FindProfile(ctx, symbol)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, false, ErrStockNotFound
		}
		return nil, false, err
	}

	if err := u.stocks.Create(ctx, fetched); err != nil {
		// A concurrent import of the same symbol may have won the race;
		// the unique index makes the store end with exactly one record,
		// so fall back to reading it.
		if errors.Is(err, ErrSymbolTaken) {
			existing, findErr := u.stocks.FindBySymbol(ctx, symbol)
			if findErr == nil {
				return existing, false, nil
			}
		}
		return nil, false, err
	}

	slog.Info("imported stock from market data provider",
		"symbol", fetched.Symbol, "id", fetched.ID)
	return fetched, true, nil
}
