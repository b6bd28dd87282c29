package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/reachly-hq/reachly-portal/pkg/auth"
	"github.com/reachly-hq/reachly-portal/pkg/auth/session"
	"github.com/reachly-hq/reachly-portal/pkg/backend"
	"github.com/reachly-hq/reachly-portal/pkg/config"
	"github.com/reachly-hq/reachly-portal/pkg/enums"
	pkgerrors "github.com/reachly-hq/reachly-portal/pkg/errors"
)

const tooManyAttemptsMessage = "too many attempts, try again later"

// Service defines the behavior needed by the auth controller.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (string, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}

// LoginRequest carries the credentials plus the caller IP for rate limiting.
type LoginRequest struct {
	Email    string
	Password string
	ClientIP string
}

// LoginResponse is what the browser gets back: a portal token, never the
// backend one.
type LoginResponse struct {
	Token       string            `json:"token"`
	Role        enums.AccountRole `json:"role"`
	Email       string            `json:"email"`
	LandingPath string            `json:"landingPath"`
}

// ForgotPasswordRequest carries the account email plus the caller IP.
type ForgotPasswordRequest struct {
	Email    string
	ClientIP string
}

// ResetPasswordRequest completes a reset using the emailed token.
type ResetPasswordRequest struct {
	ResetToken      string
	Password        string
	ConfirmPassword string
}

type backendGateway interface {
	Login(ctx context.Context, email, password string) (*backend.LoginResult, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, resetToken, password string) error
}

type sessionManager interface {
	Create(ctx context.Context, record session.Record) (string, error)
	Revoke(ctx context.Context, sessionID string) error
}

type rateLimiter interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

type service struct {
	backend    backendGateway
	sessions   sessionManager
	limiter    rateLimiter
	sessionCfg config.SessionConfig
	limitCfg   config.AuthRateLimitConfig
	now        func() time.Time
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Backend        backendGateway
	SessionManager sessionManager
	RateLimiter    rateLimiter
	SessionConfig  config.SessionConfig
	RateLimits     config.AuthRateLimitConfig
	Clock          func() time.Time
}

// NewService constructs a login service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Backend == nil {
		return nil, fmt.Errorf("backend gateway is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}
	return &service{
		backend:    params.Backend,
		sessions:   params.SessionManager,
		limiter:    params.RateLimiter,
		sessionCfg: params.SessionConfig,
		limitCfg:   params.RateLimits,
		now:        clock,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	if err := s.allow(ctx, "login:email:"+email, int64(s.limitCfg.LoginEmailLimit), s.limitCfg.LoginWindow); err != nil {
		return nil, err
	}
	if req.ClientIP != "" {
		if err := s.allow(ctx, "login:ip:"+req.ClientIP, int64(s.limitCfg.LoginIPLimit), s.limitCfg.LoginWindow); err != nil {
			return nil, err
		}
	}

	result, err := s.backend.Login(ctx, email, req.Password)
	if err != nil {
		return nil, err
	}

	sessionID, err := s.sessions.Create(ctx, session.Record{
		BackendToken: result.Token,
		Role:         result.Role,
		Email:        result.Email,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create session")
	}

	token, err := auth.MintSessionToken(s.sessionCfg, s.now(), auth.SessionTokenPayload{
		SessionID: sessionID,
		Role:      result.Role,
		Email:     result.Email,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint session token")
	}

	return &LoginResponse{
		Token:       token,
		Role:        result.Role,
		Email:       result.Email,
		LandingPath: landingPath(result.Role),
	}, nil
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "revoke session")
	}
	return nil
}

func (s *service) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	if err := s.allow(ctx, "reset:email:"+email, int64(s.limitCfg.ResetEmailLimit), s.limitCfg.ResetWindow); err != nil {
		return "", err
	}
	if req.ClientIP != "" {
		if err := s.allow(ctx, "reset:ip:"+req.ClientIP, int64(s.limitCfg.ResetIPLimit), s.limitCfg.ResetWindow); err != nil {
			return "", err
		}
	}

	return s.backend.ForgotPassword(ctx, email)
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if req.Password == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "password is required")
	}
	if req.Password != req.ConfirmPassword {
		return pkgerrors.New(pkgerrors.CodeValidation, "passwords do not match")
	}
	return s.backend.ResetPassword(ctx, req.ResetToken, req.Password)
}

// allow applies one fixed-window limit. A nil limiter or non-positive limit
// disables the check.
func (s *service) allow(ctx context.Context, scope string, limit int64, window time.Duration) error {
	if s.limiter == nil || limit <= 0 || window <= 0 {
		return nil
	}
	allowed, _, err := s.limiter.FixedWindowAllow(ctx, scope, limit, window)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rate limit check")
	}
	if !allowed {
		return pkgerrors.New(pkgerrors.CodeRateLimit, tooManyAttemptsMessage)
	}
	return nil
}

func landingPath(role enums.AccountRole) string {
	switch role {
	case enums.AccountRoleBuyer:
		return "/buyer-dashboard"
	case enums.AccountRoleVendor:
		return "/vendor-dashboard"
	case enums.AccountRoleAdmin:
		return "/admin-dashboard"
	}
	return "/"
}
