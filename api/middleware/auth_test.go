package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgauth "github.com/reachly-hq/reachly-portal/pkg/auth"
	"github.com/reachly-hq/reachly-portal/pkg/auth/session"
	"github.com/reachly-hq/reachly-portal/pkg/config"
	"github.com/reachly-hq/reachly-portal/pkg/enums"
)

func sessionConfig() config.SessionConfig {
	return config.SessionConfig{JWTSecret: "secret", JWTIssuer: "reachly-portal", TTLMinutes: 60}
}

type stubSessions struct {
	records map[string]*session.Record
	err     error
}

func (s stubSessions) Lookup(ctx context.Context, sessionID string) (*session.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	if record, ok := s.records[sessionID]; ok {
		return record, nil
	}
	return nil, session.ErrSessionNotFound
}

func (s stubSessions) HasSession(ctx context.Context, sessionID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.records[sessionID]
	return ok, nil
}

func mintTestToken(t *testing.T, sessionID string) string {
	t.Helper()
	token, err := pkgauth.MintSessionToken(sessionConfig(), time.Now(), pkgauth.SessionTokenPayload{
		SessionID: sessionID,
		Role:      enums.AccountRoleVendor,
		Email:     "vendor@acme.com",
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestAuthRejectsMissingToken(t *testing.T) {
	handler := Auth(sessionConfig(), stubSessions{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	handler := Auth(sessionConfig(), stubSessions{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsRevokedSession(t *testing.T) {
	token := mintTestToken(t, "sess-1")
	handler := Auth(sessionConfig(), stubSessions{records: map[string]*session.Record{}}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("revoked session should read as 401, got %d", resp.Code)
	}
}

func TestAuthSeedsContextFromSessionRecord(t *testing.T) {
	token := mintTestToken(t, "sess-1")
	sessions := stubSessions{records: map[string]*session.Record{
		"sess-1": {BackendToken: "backend-jwt", Role: enums.AccountRoleVendor, Email: "vendor@acme.com"},
	}}

	var captured struct {
		sessionID    string
		role         string
		email        string
		backendToken string
	}
	handler := Auth(sessionConfig(), sessions, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.sessionID = SessionIDFromContext(r.Context())
		captured.role = RoleFromContext(r.Context())
		captured.email = EmailFromContext(r.Context())
		captured.backendToken = BackendTokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if captured.sessionID != "sess-1" {
		t.Fatalf("expected session id in context, got %q", captured.sessionID)
	}
	if captured.role != "vendor" || captured.email != "vendor@acme.com" {
		t.Fatalf("unexpected identity %+v", captured)
	}
	if captured.backendToken != "backend-jwt" {
		t.Fatalf("backend token should be resolved from the session record, got %q", captured.backendToken)
	}
}

func TestAuthSurfacesStoreFailure(t *testing.T) {
	token := mintTestToken(t, "sess-1")
	handler := Auth(sessionConfig(), stubSessions{err: errors.New("redis down")}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("store failures are dependency errors, got %d", resp.Code)
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireRole(enums.AccountRoleAdmin, nil)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithSession(req.Context(), "sess-1", "vendor", "v@acme.com", "tok"))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("vendor hitting an admin route should get 403, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithSession(req.Context(), "sess-1", "admin", "a@x.com", "tok"))
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("admin should pass, got %d", resp.Code)
	}
}
