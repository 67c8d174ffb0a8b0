package domain

import "time"

// SessionTTL is the absolute lifetime of a session. It is not extended on use.
const SessionTTL = 24 * time.Hour

// Session is the server-held record behind an opaque session token. LoginKey
// and Role are a snapshot taken at login; later role changes on the identity
// only apply after the user logs in again.
type Session struct {
	IdentityID string    `json:"identity_id"`
	LoginKey   string    `json:"login_key"`
	Role       Role      `json:"role"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ExpiredAt reports whether the session is no longer valid at now.
func (s *Session) ExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
