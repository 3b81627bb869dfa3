package usecase

import (
	"context"

	"github.com/btw02/Stock-Manager/internal/feature/comments/domain/entity"
)

// CommentRepository abstracts the persistence layer for comments.
// Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type CommentRepository interface {
	// ListByStock returns all comments on a stock, oldest first.
	ListByStock(ctx context.Context, stockID uint) ([]entity.Comment, error)

	// FindByID retrieves a comment by id. Returns ErrCommentNotFound if absent.
	FindByID(ctx context.Context, id uint) (*entity.Comment, error)

	// Create persists a new comment and assigns its id.
	Create(ctx context.Context, comment *entity.Comment) error

	// Update replaces the title and content of an existing comment.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes the comment with the given id.
	// Returns ErrCommentNotFound if absent.
	Delete(ctx context.Context, id uint) error
}

// StockReader reports whether the target stock of a comment operation
// exists. It deliberately exposes nothing else of the stock.
type StockReader interface {
	Exists(ctx context.Context, stockID uint) (bool, error)
}

// Caller identifies the authenticated user performing an operation.
// IsAdmin is the role capability resolved by the identity layer; the
// usecase only consumes the predicate and never manages identity.
type Caller struct {
	UserID  uint
	IsAdmin bool
}

// canMutate reports whether the caller may change the comment:
// the owner always can, an admin always can.
func (c Caller) canMutate(comment *entity.Comment) bool {
	return c.IsAdmin || comment.UserID == c.UserID
}

// CommentUsecase implements comment creation and owner/admin
// constrained mutation.
type CommentUsecase struct {
	comments CommentRepository
	stocks   StockReader
}

// NewCommentUsecase creates a new CommentUsecase.
func NewCommentUsecase(comments CommentRepository, stocks StockReader) *CommentUsecase {
	return &CommentUsecase{comments: comments, stocks: stocks}
}

// requireStock maps a missing target stock to ErrStockNotFound.
func (u *CommentUsecase) requireStock(ctx context.Context, stockID uint) error {
	ok, err := u.stocks.Exists(ctx, stockID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrStockNotFound
	}
	return nil
}

// ListForStock returns all comments on an existing stock.
func (u *CommentUsecase) ListForStock(ctx context.Context, stockID uint) ([]entity.Comment, error) {
	if err := u.requireStock(ctx, stockID); err != nil {
		return nil, err
	}
	return u.comments.ListByStock(ctx, stockID)
}

// Create attaches a new comment to an existing stock, stamped with the
// caller's identity as owner.
func (u *CommentUsecase) Create(ctx context.Context, stockID uint, caller Caller, title, content string) (*entity.Comment, error) {
	if err := u.requireStock(ctx, stockID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		Title:   title,
		Content: content,
		StockID: stockID,
		UserID:  caller.UserID,
	}
	if err := u.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Update replaces the title and content of a comment. Only the owner
// or an admin may do this; anyone else gets ErrNotOwner, not an empty
// result.
func (u *CommentUsecase) Update(ctx context.Context, id uint, caller Caller, title, content string) (*entity.Comment, error) {
	comment, err := u.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.canMutate(comment) {
		return nil, ErrNotOwner
	}

	comment.Title = title
	comment.Content = content
	if err := u.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment under the same owner-or-admin rule.
func (u *CommentUsecase) Delete(ctx context.Context, id uint, caller Caller) error {
	comment, err := u.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !caller.canMutate(comment) {
		return ErrNotOwner
	}
	return u.comments.Delete(ctx, id)
}
