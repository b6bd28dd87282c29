package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reachly-hq/reachly-portal/pkg/config"
	"github.com/reachly-hq/reachly-portal/pkg/enums"
	redisclient "github.com/reachly-hq/reachly-portal/pkg/redis"
	redislib "github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

// Record is the server-side state tied to one portal session. The backend
// token never reaches the browser; it lives here for the session's lifetime.
type Record struct {
	BackendToken string            `json:"backend_token"`
	Role         enums.AccountRole `json:"role"`
	Email        string            `json:"email"`
}

type sessionStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type sessionKeyer interface {
	SessionKey(sessionID string) string
}

// Manager handles portal session creation, lookup, and revocation.
type Manager struct {
	store sessionStore
	keyer sessionKeyer
	ttl   time.Duration
}

// Checker exposes the read-only surface needed by middleware.
type Checker interface {
	Lookup(ctx context.Context, sessionID string) (*Record, error)
	HasSession(ctx context.Context, sessionID string) (bool, error)
}

// Revoker exposes the logout surface.
type Revoker interface {
	Revoke(ctx context.Context, sessionID string) error
}

// NewManager constructs a session manager backed by Redis.
func NewManager(client *redisclient.Client, cfg config.SessionConfig) (*Manager, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	ttl := cfg.TTL()
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}

	return &Manager{
		store: client,
		keyer: client,
		ttl:   ttl,
	}, nil
}

// Create stores the record under a fresh session ID and returns the ID.
func (m *Manager) Create(ctx context.Context, record Record) (string, error) {
	if strings.TrimSpace(record.BackendToken) == "" {
		return "", fmt.Errorf("backend token is required")
	}
	if !record.Role.IsValid() {
		return "", fmt.Errorf("invalid account role %q", record.Role)
	}
	if strings.TrimSpace(record.Email) == "" {
		return "", fmt.Errorf("account email is required")
	}

	sessionID := NewSessionID()
	payload, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encoding session record: %w", err)
	}
	if err := m.store.Set(ctx, m.keyer.SessionKey(sessionID), string(payload), m.ttl); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Lookup returns the record stored for the session ID, or ErrSessionNotFound.
func (m *Manager) Lookup(ctx context.Context, sessionID string) (*Record, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrSessionNotFound
	}
	raw, err := m.store.Get(ctx, m.keyer.SessionKey(sessionID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var record Record
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("decoding session record: %w", err)
	}
	return &record, nil
}

// HasSession reports whether the session ID still has an active record.
func (m *Manager) HasSession(ctx context.Context, sessionID string) (bool, error) {
	_, err := m.Lookup(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Revoke deletes the session record, invalidating the matching JWT.
func (m *Manager) Revoke(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("session id is required")
	}
	return m.store.Del(ctx, m.keyer.SessionKey(sessionID))
}

// NewSessionID produces a stable identifier used as the JWT jti/Redis key.
func NewSessionID() string {
	return uuid.NewString()
}
