// Package adapters provides the repository implementations for the
// stocks feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/btw02/Stock-Manager/internal/feature/stocks/domain/entity"
	"github.com/btw02/Stock-Manager/internal/feature/stocks/usecase"
)

// stockPostgres is the gorm implementation of the StockRepository
// interface. Filtering, sorting and pagination are pushed into SQL so
// the contract holds regardless of catalog size.
type stockPostgres struct {
	db *gorm.DB
}

var _ usecase.StockRepository = (*stockPostgres)(nil)

// NewStockRepository creates a new stockPostgres repository on the
// given DB connection.
func NewStockRepository(db *gorm.DB) *stockPostgres {
	return &stockPostgres{db: db}
}

// sortColumns maps query sort fields onto ORDER BY columns. The query
// is validated in the usecase before it reaches the adapter, so an
// unknown field here means id order.
var sortColumns = map[string]string{
	usecase.SortBySymbol:    "symbol",
	usecase.SortByMarketCap: "market_cap",
}

// isDuplicateKey reports whether the error is a unique-constraint
// violation. gorm's TranslateError covers the sqlite test driver;
// SQLSTATE 23505 covers postgres when translation is off.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// List returns the page of stocks matching the query. Both substring
// filters are conjunctive and case-insensitive; ties on the sort key
// are broken by ascending id so pagination stays deterministic across
// repeated calls on an unchanged catalog.
func (r *stockPostgres) List(ctx context.Context, q usecase.Query) ([]entity.Stock, error) {
	tx := r.db.WithContext(ctx).Model(&entity.Stock{})

	if q.Symbol != "" {
		tx = tx.Where("LOWER(symbol) LIKE ?", "%"+strings.ToLower(q.Symbol)+"%")
	}
	if q.CompanyName != "" {
		tx = tx.Where("LOWER(company_name) LIKE ?", "%"+strings.ToLower(q.CompanyName)+"%")
	}

	if col, ok := sortColumns[q.SortBy]; ok {
		dir := "ASC"
		if q.Descending {
			dir = "DESC"
		}
		tx = tx.Order(col + " " + dir)
	}
	tx = tx.Order("id ASC")

	var stocks []entity.Stock
	if err := tx.Offset(q.Offset()).Limit(q.PageSize).Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindByID retrieves a stock by id.
func (r *stockPostgres) FindByID(ctx context.Context, id uint) (*entity.Stock, error) {
	var s entity.Stock
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindBySymbol retrieves a stock by its exact symbol.
func (r *stockPostgres) FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	var s entity.Stock
	if err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts a stock and assigns its id. The unique index on
// symbol is the arbiter for concurrent creates: the loser gets
// usecase.ErrSymbolTaken.
func (r *stockPostgres) Create(ctx context.Context, stock *entity.Stock) error {
	if err := r.db.WithContext(ctx).Create(stock).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrSymbolTaken
		}
		return err
	}
	return nil
}

// Update replaces all mutable fields of the stock with the given id.
// The write is a single statement keyed by primary key, so two
// concurrent updates resolve last-committed-wins.
func (r *stockPostgres) Update(ctx context.Context, id uint, stock *entity.Stock) (*entity.Stock, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Symbol = stock.Symbol
	existing.CompanyName = stock.CompanyName
	existing.Purchase = stock.Purchase
	existing.LastDiv = stock.LastDiv
	existing.Industry = stock.Industry
	existing.MarketCap = stock.MarketCap

	if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, usecase.ErrSymbolTaken
		}
		return nil, err
	}
	return existing, nil
}

// Delete removes the stock with the given id and returns the removed
// record. Comments referencing the stock go with it via the cascade
// constraint on the comments table.
func (r *stockPostgres) Delete(ctx context.Context, id uint) (*entity.Stock, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).Delete(&entity.Stock{}, id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Lost a race with a concurrent delete.
		return nil, usecase.ErrStockNotFound
	}
	return existing, nil
}
