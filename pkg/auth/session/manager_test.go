package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/reachly-hq/reachly-portal/pkg/enums"
	redislib "github.com/redis/go-redis/v9"
)

type mockStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string]string)}
}

func (m *mockStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = fmt.Sprint(value)
	return nil
}

func (m *mockStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return val, nil
}

func (m *mockStore) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *mockStore) SessionKey(sessionID string) string {
	return fmt.Sprintf("sess:%s", sessionID)
}

func TestManagerCreateLookupRevoke(t *testing.T) {
	store := newMockStore()
	manager := &Manager{
		store: store,
		keyer: store,
		ttl:   time.Hour,
	}

	ctx := context.Background()
	record := Record{
		BackendToken: "backend-jwt",
		Role:         enums.AccountRoleVendor,
		Email:        "vendor@example.com",
	}

	sessionID, err := manager.Create(ctx, record)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sessionID == "" {
		t.Fatal("expected a session id")
	}

	got, err := manager.Lookup(ctx, sessionID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.BackendToken != record.BackendToken || got.Role != record.Role || got.Email != record.Email {
		t.Fatalf("lookup returned %+v, want %+v", got, record)
	}

	ok, err := manager.HasSession(ctx, sessionID)
	if err != nil || !ok {
		t.Fatalf("expected active session, got ok=%v err=%v", ok, err)
	}

	if err := manager.Revoke(ctx, sessionID); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := manager.Lookup(ctx, sessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after revoke, got %v", err)
	}
	if ok, _ := manager.HasSession(ctx, sessionID); ok {
		t.Fatal("expected session gone after revoke")
	}
}

func TestManagerCreateValidatesRecord(t *testing.T) {
	store := newMockStore()
	manager := &Manager{store: store, keyer: store, ttl: time.Hour}
	ctx := context.Background()

	cases := []Record{
		{Role: enums.AccountRoleAdmin, Email: "a@b.com"},
		{BackendToken: "tok", Role: "ghost", Email: "a@b.com"},
		{BackendToken: "tok", Role: enums.AccountRoleBuyer},
	}
	for i, rec := range cases {
		if _, err := manager.Create(ctx, rec); err == nil {
			t.Fatalf("case %d: expected validation error for %+v", i, rec)
		}
	}
}

func TestManagerLookupMissing(t *testing.T) {
	store := newMockStore()
	manager := &Manager{store: store, keyer: store, ttl: time.Hour}

	if _, err := manager.Lookup(context.Background(), "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
