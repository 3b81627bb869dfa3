package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/btw02/Stock-Manager/internal/feature/auth/domain/entity"
	"github.com/btw02/Stock-Manager/internal/feature/auth/usecase"
)

// SessionModel is the database row for a refresh-token session. Kept
// separate from the domain entity so storage concerns stay out of it.
type SessionModel struct {
	ID        string `gorm:"primaryKey;size:64"`
	UserID    uint   `gorm:"not null;index"`
	UserAgent string `gorm:"size:512"`
	IPAddress string `gorm:"size:64"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null;index"`
	RevokedAt *time.Time
}

// TableName fixes the table name regardless of gorm pluralization.
func (SessionModel) TableName() string {
	return "sessions"
}

func toSessionModel(s *entity.Session) SessionModel {
	return SessionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		UserAgent: s.UserAgent,
		IPAddress: s.IPAddress,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
		RevokedAt: s.RevokedAt,
	}
}

func (m SessionModel) toEntity() *entity.Session {
	return &entity.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		UserAgent: m.UserAgent,
		IPAddress: m.IPAddress,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
		RevokedAt: m.RevokedAt,
	}
}

// sessionPostgres is the database-backed SessionRepository used when
// redis is not available.
type sessionPostgres struct {
	db *gorm.DB
}

var _ usecase.SessionRepository = (*sessionPostgres)(nil)

// NewSessionRepository creates a new sessionPostgres instance.
func NewSessionRepository(db *gorm.DB) *sessionPostgres {
	return &sessionPostgres{db: db}
}

// Create persists a new session row.
func (r *sessionPostgres) Create(ctx context.Context, s *entity.Session) error {
	m := toSessionModel(s)
	return r.db.WithContext(ctx).Create(&m).Error
}

// FindByID retrieves a session by refresh token value.
func (r *sessionPostgres) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	var m SessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return m.toEntity(), nil
}

// Revoke stamps RevokedAt on the session.
func (r *sessionPostgres) Revoke(ctx context.Context, id string) error {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&SessionModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", now)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrSessionNotFound
	}
	return nil
}

// RevokeAllByUserID revokes every active session of a user.
func (r *sessionPostgres) RevokeAllByUserID(ctx context.Context, userID uint) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&SessionModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error
}
