// Package auth implements the login stub: a single configured admin account,
// bcrypt-checked credentials, opaque session tokens, and a static role to
// permission table. Sessions live in memory and die with the process.
package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the email or password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Session is an issued login session.
type Session struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// rolePermissions is the static permission table. There is only one real role;
// viewer exists so the check endpoint has something to deny.
var rolePermissions = map[string][]string{
	"admin": {
		"properties:read", "properties:write",
		"contacts:read", "contacts:write",
		"leases:read", "leases:write",
		"applications:read", "applications:write",
		"admin:reset",
	},
	"viewer": {
		"properties:read", "contacts:read", "leases:read", "applications:read",
	},
}

// Service validates credentials and tracks issued sessions.
type Service struct {
	adminEmail string
	adminHash  []byte

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewService hashes the configured admin password up front so the plaintext
// is not kept around.
func NewService(adminEmail, adminPassword string) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &Service{
		adminEmail: adminEmail,
		adminHash:  hash,
		sessions:   map[string]*Session{},
	}, nil
}

// Login checks the credentials against the configured admin account and
// issues a fresh session token on success.
func (s *Service) Login(email, password string) (*Session, error) {
	if email != s.adminEmail {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := &Session{
		Token:     uuid.NewString(),
		Email:     email,
		Role:      "admin",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session, nil
}

// SessionByToken returns the session for a token, if one was issued.
func (s *Service) SessionByToken(token string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	return session, ok
}

// HasPermission answers whether a role grants a permission.
func HasPermission(role, permission string) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// Permissions returns the permission list for a role.
func Permissions(role string) []string {
	perms := rolePermissions[role]
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}
