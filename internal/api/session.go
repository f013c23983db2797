// internal/api/session.go
package api

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session holds the bearer token for the authenticated user. One instance
// is owned by the composition root and shared by every client; access is
// serialized so login, logout and request building can race safely.
type Session struct {
	mu    sync.RWMutex
	token string
}

// NewSession returns an empty, unauthenticated session.
func NewSession() *Session {
	return &Session{}
}

// Set installs a freshly issued token.
func (s *Session) Set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Token returns the current token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Clear drops the token. Called by logout regardless of whether the server
// acknowledged the request.
func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

// Authenticated reports whether a token is currently installed.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Expired peeks at the token's exp claim without verifying the signature.
// Verification belongs to the server; the client only wants to know whether
// sending the token is pointless. A token without a readable exp claim is
// treated as not expired.
func (s *Session) Expired(now time.Time) bool {
	token := s.Token()
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
