package entity

import "time"

// Session is a refresh-token session. The ID doubles as the refresh
// token value (64-character hex string) handed to the client.
type Session struct {
	ID        string     // refresh token value
	UserID    uint       // owning user
	UserAgent string     // client User-Agent at login
	IPAddress string     // client IP at login
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time // nil while active
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsRevoked returns true if the session has been revoked.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsValid returns true if the session is neither expired nor revoked.
func (s *Session) IsValid() bool {
	return !s.IsExpired() && !s.IsRevoked()
}
