// Package adapters provides the repository implementations for the
// comments feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/btw02/Stock-Manager/internal/feature/comments/domain/entity"
	"github.com/btw02/Stock-Manager/internal/feature/comments/usecase"
	stockentity "github.com/btw02/Stock-Manager/internal/feature/stocks/domain/entity"
)

// commentPostgres is the gorm implementation of CommentRepository.
type commentPostgres struct {
	db *gorm.DB
}

var _ usecase.CommentRepository = (*commentPostgres)(nil)

// NewCommentRepository creates a new commentPostgres repository.
func NewCommentRepository(db *gorm.DB) *commentPostgres {
	return &commentPostgres{db: db}
}

// ListByStock returns all comments on a stock, oldest first.
func (r *commentPostgres) ListByStock(ctx context.Context, stockID uint) ([]entity.Comment, error) {
	var comments []entity.Comment
	if err := r.db.WithContext(ctx).
		Where("stock_id = ?", stockID).
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByID retrieves a comment by id.
func (r *commentPostgres) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	var c entity.Comment
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCommentNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a comment and assigns its id.
func (r *commentPostgres) Create(ctx context.Context, comment *entity.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// Update writes back the mutable fields of an existing comment.
func (r *commentPostgres) Update(ctx context.Context, comment *entity.Comment) error {
	return r.db.WithContext(ctx).Model(comment).
		Updates(map[string]any{"title": comment.Title, "content": comment.Content}).Error
}

// Delete removes the comment with the given id.
func (r *commentPostgres) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCommentNotFound
	}
	return nil
}

// stockReader answers existence checks against the stocks table for
// the comment usecase.
type stockReader struct {
	db *gorm.DB
}

var _ usecase.StockReader = (*stockReader)(nil)

// NewStockReader creates a StockReader over the given DB connection.
func NewStockReader(db *gorm.DB) *stockReader {
	return &stockReader{db: db}
}

// Exists reports whether a stock with the given id is present.
func (r *stockReader) Exists(ctx context.Context, stockID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&stockentity.Stock{}).
		Where("id = ?", stockID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
