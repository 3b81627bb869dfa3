package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/btw02/Stock-Manager/internal/feature/comments/domain/entity"
	"github.com/btw02/Stock-Manager/internal/feature/comments/usecase"
	stockentity "github.com/btw02/Stock-Manager/internal/feature/stocks/domain/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&stockentity.Stock{}, &entity.Comment{}))
	return db
}

func seedStock(t *testing.T, db *gorm.DB, symbol string) *stockentity.Stock {
	t.Helper()

	s := &stockentity.Stock{Symbol: symbol, CompanyName: symbol + " Inc.", Purchase: 100, MarketCap: 1_000_000}
	require.NoError(t, db.Create(s).Error)
	return s
}

func seedComment(t *testing.T, db *gorm.DB, stockID, userID uint, title string) *entity.Comment {
	t.Helper()

	c := &entity.Comment{StockID: stockID, UserID: userID, Title: title, Content: "content of " + title}
	require.NoError(t, db.Create(c).Error)
	return c
}

func TestCommentPostgres_ListByStock(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCommentRepository(db)

	aapl := seedStock(t, db, "AAPL")
	msft := seedStock(t, db, "MSFT")
	first := seedComment(t, db, aapl.ID, 1, "first")
	second := seedComment(t, db, aapl.ID, 2, "second")
	seedComment(t, db, msft.ID, 1, "other stock")

	comments, err := repo.ListByStock(context.Background(), aapl.ID)
	require.NoError(t, err)

	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID, "oldest comment comes first")
	assert.Equal(t, second.ID, comments[1].ID)
}

func TestCommentPostgres_ListByStock_Empty(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	aapl := seedStock(t, db, "AAPL")

	comments, err := repo.ListByStock(context.Background(), aapl.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentPostgres_FindByID(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	aapl := seedStock(t, db, "AAPL")
	seeded := seedComment(t, db, aapl.ID, 1, "hello")

	got, err := repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Title)

	_, err = repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, usecase.ErrCommentNotFound)
}

func TestCommentPostgres_Update(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	aapl := seedStock(t, db, "AAPL")
	seeded := seedComment(t, db, aapl.ID, 1, "before")

	seeded.Title = "after"
	seeded.Content = "updated content"
	require.NoError(t, repo.Update(context.Background(), seeded))

	got, err := repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, "updated content", got.Content)
	assert.Equal(t, uint(1), got.UserID, "the owner never changes on update")
}

func TestCommentPostgres_Delete(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	aapl := seedStock(t, db, "AAPL")
	seeded := seedComment(t, db, aapl.ID, 1, "doomed")

	require.NoError(t, repo.Delete(context.Background(), seeded.ID))

	_, err := repo.FindByID(context.Background(), seeded.ID)
	assert.ErrorIs(t, err, usecase.ErrCommentNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), seeded.ID), usecase.ErrCommentNotFound)
}

func TestStockReader_Exists(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	reader := NewStockReader(db)
	aapl := seedStock(t, db, "AAPL")

	ok, err := reader.Exists(context.Background(), aapl.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = reader.Exists(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, ok)
}
