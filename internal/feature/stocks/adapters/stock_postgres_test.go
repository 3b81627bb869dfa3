package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/btw02/Stock-Manager/internal/feature/stocks/domain/entity"
	"github.com/btw02/Stock-Manager/internal/feature/stocks/usecase"
)

// setupTestDB prepares an in-memory SQLite database for tests.
// TranslateError mirrors the production gorm config so duplicate-key
// mapping behaves the same.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Stock{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedStock creates a stock row for tests.
func seedStock(t *testing.T, db *gorm.DB, symbol, companyName string, marketCap int64) *entity.Stock {
	t.Helper()

	stock := &entity.Stock{
		Symbol:      symbol,
		CompanyName: companyName,
		Purchase:    100,
		LastDiv:     0.5,
		Industry:    "Technology",
		MarketCap:   marketCap,
	}
	err := db.Create(stock).Error
	require.NoError(t, err, "failed to seed stock")

	return stock
}

func listQuery(mod func(*usecase.Query)) usecase.Query {
	q := usecase.Query{Page: 1, PageSize: usecase.DefaultPageSize}
	if mod != nil {
		mod(&q)
	}
	return q
}

func symbolsOf(stocks []entity.Stock) []string {
	out := make([]string, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, s.Symbol)
	}
	return out
}

// TestStockPostgres_List verifies filtering, sorting and pagination in
// one table-driven pass.
func TestStockPostgres_List(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, db *gorm.DB) {
		seedStock(t, db, "AAPL", "Apple Inc.", 2_000_000_000)
		seedStock(t, db, "MSFT", "Microsoft Corp.", 1_800_000_000)
		seedStock(t, db, "TSLA", "Tesla Inc.", 800_000_000)
		seedStock(t, db, "TM", "Toyota Motor", 250_000_000)
	}

	tests := []struct {
		name            string
		query           usecase.Query
		expectedSymbols []string
	}{
		{
			name:            "empty filters return the whole catalog in id order",
			query:           listQuery(nil),
			expectedSymbols: []string{"AAPL", "MSFT", "TSLA", "TM"},
		},
		{
			name: "symbol filter is a case-insensitive substring match",
			query: listQuery(func(q *usecase.Query) {
				q.Symbol = "ts"
			}),
			expectedSymbols: []string{"TSLA"},
		},
		{
			name: "company name filter is a case-insensitive substring match",
			query: listQuery(func(q *usecase.Query) {
				q.CompanyName = "inc"
			}),
			expectedSymbols: []string{"AAPL", "TSLA"},
		},
		{
			name: "filters combine conjunctively",
			query: listQuery(func(q *usecase.Query) {
				q.Symbol = "t"
				q.CompanyName = "motor"
			}),
			expectedSymbols: []string{"TM"},
		},
		{
			name: "sort by symbol ascending",
			query: listQuery(func(q *usecase.Query) {
				q.SortBy = usecase.SortBySymbol
			}),
			expectedSymbols: []string{"AAPL", "MSFT", "TM", "TSLA"},
		},
		{
			name: "sort by market cap descending",
			query: listQuery(func(q *usecase.Query) {
				q.SortBy = usecase.SortByMarketCap
				q.Descending = true
			}),
			expectedSymbols: []string{"AAPL", "MSFT", "TSLA", "TM"},
		},
		{
			name: "market cap desc page 1 size 1 yields the largest cap",
			query: listQuery(func(q *usecase.Query) {
				q.SortBy = usecase.SortByMarketCap
				q.Descending = true
				q.PageSize = 1
			}),
			expectedSymbols: []string{"AAPL"},
		},
		{
			name: "page beyond the result count yields an empty slice, not an error",
			query: listQuery(func(q *usecase.Query) {
				q.Page = 5
				q.PageSize = 10
			}),
			expectedSymbols: []string{},
		},
		{
			name: "filter with no match yields an empty slice",
			query: listQuery(func(q *usecase.Query) {
				q.Symbol = "ZZZZ"
			}),
			expectedSymbols: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewStockRepository(db)
			seed(t, db)

			stocks, err := repo.List(context.Background(), tt.query)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedSymbols, symbolsOf(stocks))
		})
	}
}

// TestStockPostgres_List_SortReversal verifies that ascending and
// descending market-cap orderings are exact reverses of each other on
// the same data set.
func TestStockPostgres_List_SortReversal(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)
	seedStock(t, db, "AAPL", "Apple Inc.", 2_000_000_000)
	seedStock(t, db, "MSFT", "Microsoft Corp.", 1_800_000_000)
	seedStock(t, db, "TSLA", "Tesla Inc.", 800_000_000)

	asc, err := repo.List(context.Background(), listQuery(func(q *usecase.Query) {
		q.SortBy = usecase.SortByMarketCap
	}))
	require.NoError(t, err)

	desc, err := repo.List(context.Background(), listQuery(func(q *usecase.Query) {
		q.SortBy = usecase.SortByMarketCap
		q.Descending = true
	}))
	require.NoError(t, err)

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].Symbol, desc[len(desc)-1-i].Symbol)
	}
}

// TestStockPostgres_List_TieBreak verifies that equal sort keys are
// ordered by ascending id so pagination stays deterministic.
func TestStockPostgres_List_TieBreak(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)
	first := seedStock(t, db, "AAA", "Alpha", 500)
	second := seedStock(t, db, "BBB", "Beta", 500)
	third := seedStock(t, db, "CCC", "Gamma", 500)

	stocks, err := repo.List(context.Background(), listQuery(func(q *usecase.Query) {
		q.SortBy = usecase.SortByMarketCap
		q.Descending = true
	}))
	require.NoError(t, err)
	require.Len(t, stocks, 3)

	assert.Equal(t, []uint{first.ID, second.ID, third.ID},
		[]uint{stocks[0].ID, stocks[1].ID, stocks[2].ID})
}

// TestStockPostgres_List_PaginationPartition verifies that
// concatenating all pages reproduces the full sorted result exactly
// once each.
func TestStockPostgres_List_PaginationPartition(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)

	symbols := []string{"AAPL", "AMZN", "GOOG", "META", "MSFT", "NVDA", "TSLA"}
	for i, sym := range symbols {
		seedStock(t, db, sym, sym+" Co.", int64(1000*(i+1)))
	}

	const pageSize = 3
	var collected []string
	for page := 1; ; page++ {
		stocks, err := repo.List(context.Background(), listQuery(func(q *usecase.Query) {
			q.SortBy = usecase.SortBySymbol
			q.Page = page
			q.PageSize = pageSize
		}))
		require.NoError(t, err)
		if len(stocks) == 0 {
			break
		}
		collected = append(collected, symbolsOf(stocks)...)
	}

	assert.Equal(t, symbols, collected, "pages must partition the sorted result")
}

// TestStockPostgres_FindBySymbol verifies the exact-symbol lookup used
// by the synchronization flow.
func TestStockPostgres_FindBySymbol(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)
	seeded := seedStock(t, db, "AAPL", "Apple Inc.", 2_000_000_000)

	found, err := repo.FindBySymbol(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, found.ID)

	_, err = repo.FindBySymbol(context.Background(), "MSFT")
	assert.ErrorIs(t, err, usecase.ErrStockNotFound)
}

// TestStockPostgres_Create_DuplicateSymbol verifies that the unique
// index arbitrates duplicate creates and the store ends with exactly
// one record for the symbol.
func TestStockPostgres_Create_DuplicateSymbol(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)

	first := &entity.Stock{Symbol: "AAPL", CompanyName: "Apple Inc."}
	require.NoError(t, repo.Create(context.Background(), first))
	assert.NotZero(t, first.ID, "create must assign an id")

	dup := &entity.Stock{Symbol: "AAPL", CompanyName: "Apple Clone"}
	err := repo.Create(context.Background(), dup)
	assert.ErrorIs(t, err, usecase.ErrSymbolTaken)

	var count int64
	require.NoError(t, db.Model(&entity.Stock{}).Where("symbol = ?", "AAPL").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

// TestStockPostgres_Update verifies full replace, missing-id handling
// and symbol-collision detection on update.
func TestStockPostgres_Update(t *testing.T) {
	t.Parallel()

	t.Run("replaces all mutable fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewStockRepository(db)
		seeded := seedStock(t, db, "AAPL", "Apple Inc.", 2_000_000_000)

		updated, err := repo.Update(context.Background(), seeded.ID, &entity.Stock{
			Symbol:      "AAPL",
			CompanyName: "Apple Incorporated",
			Purchase:    160,
			LastDiv:     0.55,
			Industry:    "Consumer Electronics",
			MarketCap:   2_200_000_000,
		})
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, updated.ID)
		assert.Equal(t, "Apple Incorporated", updated.CompanyName)
		assert.EqualValues(t, 2_200_000_000, updated.MarketCap)

		reloaded, err := repo.FindByID(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, 160.0, reloaded.Purchase)
	})

	t.Run("missing id yields not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewStockRepository(db)

		_, err := repo.Update(context.Background(), 999, &entity.Stock{Symbol: "AAPL"})
		assert.ErrorIs(t, err, usecase.ErrStockNotFound)
	})

	t.Run("symbol change onto an existing symbol yields conflict", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewStockRepository(db)
		seedStock(t, db, "AAPL", "Apple Inc.", 2_000_000_000)
		other := seedStock(t, db, "MSFT", "Microsoft Corp.", 1_800_000_000)

		_, err := repo.Update(context.Background(), other.ID, &entity.Stock{
			Symbol:      "AAPL",
			CompanyName: "Microsoft Corp.",
		})
		assert.ErrorIs(t, err, usecase.ErrSymbolTaken)
	})
}

// TestStockPostgres_Delete verifies that delete returns the removed
// record and that a missing id leaves the store untouched.
func TestStockPostgres_Delete(t *testing.T) {
	t.Parallel()

	t.Run("returns the removed record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewStockRepository(db)
		seeded := seedStock(t, db, "AAPL", "Apple Inc.", 2_000_000_000)

		deleted, err := repo.Delete(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "AAPL", deleted.Symbol)

		_, err = repo.FindByID(context.Background(), seeded.ID)
		assert.ErrorIs(t, err, usecase.ErrStockNotFound)
	})

	t.Run("missing id yields not found and leaves the store unchanged", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewStockRepository(db)
		seedStock(t, db, "AAPL", "Apple Inc.", 2_000_000_000)

		_, err := repo.Delete(context.Background(), 999)
		assert.ErrorIs(t, err, usecase.ErrStockNotFound)

		var count int64
		require.NoError(t, db.Model(&entity.Stock{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}
