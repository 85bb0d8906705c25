package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("invalid password")

// AuthService guards the admin panel with a single bcrypt-hashed password.
// Auth is off entirely when no hash is configured, which keeps local dev and
// the storefront-only deployments open. Sessions live in memory; a restart
// logs every admin out.
type AuthService struct {
	hash string

	mu       sync.Mutex
	sessions map[string]time.Time
}

func NewAuthService(passwordHash string) *AuthService {
	return &AuthService{hash: passwordHash, sessions: map[string]time.Time{}}
}

func (s *AuthService) Enabled() bool { return s.hash != "" }

func (s *AuthService) Login(password string) (string, error) {
	if !s.Enabled() {
		return "", ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(s.hash), []byte(password)) != nil {
		return "", ErrBadCreds
	}
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = time.Now()
	s.mu.Unlock()
	return token, nil
}

func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

func (s *AuthService) Valid(token string) bool {
	s.mu.Lock()
	_, ok := s.sessions[token]
	s.mu.Unlock()
	return ok
}
