package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reachly-hq/reachly-portal/api/middleware"
	"github.com/reachly-hq/reachly-portal/internal/auth"
	"github.com/reachly-hq/reachly-portal/pkg/enums"
	pkgerrors "github.com/reachly-hq/reachly-portal/pkg/errors"
	"github.com/reachly-hq/reachly-portal/pkg/types"
)

type fakeAuthService struct {
	loginFn  func(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error)
	logouts  []string
	resetErr error
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, req)
	}
	return nil, pkgerrors.New(pkgerrors.CodeInternal, "not configured")
}

func (f *fakeAuthService) Logout(ctx context.Context, sessionID string) error {
	f.logouts = append(f.logouts, sessionID)
	return nil
}

func (f *fakeAuthService) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) (string, error) {
	return "Check your inbox", nil
}

func (f *fakeAuthService) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	return f.resetErr
}

func TestLoginHandlerReturnsEnvelope(t *testing.T) {
	svc := &fakeAuthService{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
			if req.Email != "vendor@acme.com" {
				t.Fatalf("unexpected email %q", req.Email)
			}
			if req.ClientIP == "" {
				t.Fatal("client ip should be resolved from the request")
			}
			return &auth.LoginResponse{
				Token:       "portal-jwt",
				Role:        enums.AccountRoleVendor,
				Email:       req.Email,
				LandingPath: "/vendor-dashboard",
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"vendor@acme.com","password":"hunter2"}`))
	resp := httptest.NewRecorder()
	Login(svc, nil)(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	data := envelope.Data.(map[string]any)
	if data["token"] != "portal-jwt" || data["landingPath"] != "/vendor-dashboard" {
		t.Fatalf("unexpected payload %v", data)
	}
}

func TestLoginHandlerRejectsBadBody(t *testing.T) {
	svc := &fakeAuthService{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
			t.Fatal("service must not be called for an invalid body")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"not-an-email","password":"p"}`))
	resp := httptest.NewRecorder()
	Login(svc, nil)(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestLoginHandlerSurfacesInvalidCredentials(t *testing.T) {
	svc := &fakeAuthService{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"vendor@acme.com","password":"wrong"}`))
	resp := httptest.NewRecorder()
	Login(svc, nil)(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Error.Message != "Invalid credentials" {
		t.Fatalf("backend message should surface verbatim, got %q", envelope.Error.Message)
	}
}

func TestLogoutHandlerUsesSessionFromContext(t *testing.T) {
	svc := &fakeAuthService{}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req = req.WithContext(middleware.WithSession(req.Context(), "sess-7", "vendor", "v@acme.com", "tok"))
	resp := httptest.NewRecorder()
	Logout(svc, nil)(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if len(svc.logouts) != 1 || svc.logouts[0] != "sess-7" {
		t.Fatalf("unexpected logouts %v", svc.logouts)
	}
}
