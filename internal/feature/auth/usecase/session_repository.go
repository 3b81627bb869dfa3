package usecase

import (
	"context"

	"github.com/btw02/Stock-Manager/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for refresh-token
// sessions. Following Go convention: interfaces are defined by the
// consumer (usecase), not the provider (adapters).
type SessionRepository interface {
	// Create persists a new session to the storage.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its ID (refresh token value).
	// Returns ErrSessionNotFound if absent.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Revoke marks a session as revoked by setting RevokedAt.
	Revoke(ctx context.Context, id string) error

	// RevokeAllByUserID revokes all sessions for a given user.
	RevokeAllByUserID(ctx context.Context, userID uint) error
}
