// Package usecase implements the business logic for the comments feature.
package usecase

import "errors"

var (
	// ErrCommentNotFound is returned when no comment exists for the given id.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrStockNotFound is returned when the target stock of a comment
	// operation does not exist.
	ErrStockNotFound = errors.New("stock not found")

	// ErrNotOwner is returned when a caller who is neither the comment
	// owner nor an admin attempts to mutate a comment. This is a
	// capability failure, not an absence: the caller learns the
	// comment exists but is off limits.
	ErrNotOwner = errors.New("not the comment owner")
)
