package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/btw02/Stock-Manager/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8

	// sessionTTL is how long a refresh-token session stays valid.
	sessionTTL = 30 * 24 * time.Hour
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailAlreadyExists when
	// the email is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email. Returns ErrUserNotFound
	// if absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by id. Returns ErrUserNotFound if absent.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator mints signed access tokens. Following Go convention:
// interfaces are defined by the consumer (usecase), not the provider
// (platform/jwt).
type JWTGenerator interface {
	GenerateToken(userID uint, email, role string) (string, error)
}

// ClientInfo carries the request metadata stamped onto a session.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users        UserRepository
	sessions     SessionRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		sessions:     sessions,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword checks the password against the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// newSessionID returns a 64-character hex refresh token.
func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Signup registers a new user with a hashed password. New users always
// get the plain user role; admins are promoted out of band.
func (u *authUsecase) Signup(ctx context.Context, email, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Email: email, Password: string(hashed), Role: entity.RoleUser}
	return u.users.Create(ctx, user)
}

// Login authenticates the user and, on success, returns a signed
// access token and a refresh token backed by a stored session.
// A bcrypt comparison runs even when the user does not exist, to keep
// the timing of both outcomes close.
func (u *authUsecase) Login(ctx context.Context, email, password string, client ClientInfo) (token, refresh string, err error) {
	user, findErr := u.users.FindByEmail(ctx, email)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path when
	// the user is unknown.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if findErr == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if findErr != nil || compareErr != nil {
		return "", "", ErrInvalidCredentials
	}

	token, err = u.jwtGenerator.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate token: %w", err)
	}

	refresh, err = newSessionID()
	if err != nil {
		return "", "", err
	}
	now := time.Now()
	session := &entity.Session{
		ID:        refresh,
		UserID:    user.ID,
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", "", fmt.Errorf("failed to create session: %w", err)
	}

	return token, refresh, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// session itself is left in place until logout or expiry.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}
	if !session.IsValid() {
		return "", ErrInvalidRefreshToken
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		return "", err
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Logout revokes the session behind the given refresh token. Revoking
// an unknown token is not an error; logout is idempotent.
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	if err := u.sessions.Revoke(ctx, refreshToken); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}
