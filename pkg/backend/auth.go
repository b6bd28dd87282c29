package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	pkgerrors "github.com/reachly-hq/reachly-portal/pkg/errors"
)

// Login exchanges credentials for a backend token, role, and account email.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}
	body := map[string]string{"email": email, "password": password}
	var resp LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" || !resp.Role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "backend login response is incomplete")
	}
	return &resp, nil
}

// ToggleActivation flips the active flag on a vendor or buyer account.
func (c *Client) ToggleActivation(ctx context.Context, token, email string) error {
	if strings.TrimSpace(email) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "account email is required")
	}
	return c.do(ctx, http.MethodPost, "/auth/toggle-activation/"+url.PathEscape(email), token, nil, nil)
}

// ForgotPassword requests a password reset email and returns the backend message.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	body := map[string]string{"email": email}
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/forgot-password", "", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ResetPassword completes a password reset using the emailed token.
func (c *Client) ResetPassword(ctx context.Context, resetToken, password string) error {
	if strings.TrimSpace(resetToken) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "reset token is required")
	}
	if password == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "password is required")
	}
	body := map[string]string{"password": password}
	return c.do(ctx, http.MethodPost, "/auth/reset-password/"+url.PathEscape(resetToken), "", body, nil)
}
