package middleware

import "context"

type contextKey string

const (
	ctxSessionID    contextKey = "session_id"
	ctxRole         contextKey = "actor_role"
	ctxEmail        contextKey = "account_email"
	ctxBackendToken contextKey = "backend_token"
)

func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}

func RoleFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxRole).(string); ok {
		return v
	}
	return ""
}

func EmailFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxEmail).(string); ok {
		return v
	}
	return ""
}

// BackendTokenFromContext returns the upstream token stored for the session.
// Only handlers behind the auth middleware will see a non-empty value.
func BackendTokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxBackendToken).(string); ok {
		return v
	}
	return ""
}

// WithSession seeds the context the way the auth middleware does. Exported
// for handler tests.
func WithSession(ctx context.Context, sessionID, role, email, backendToken string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxSessionID, sessionID)
	ctx = context.WithValue(ctx, ctxRole, role)
	ctx = context.WithValue(ctx, ctxEmail, email)
	return context.WithValue(ctx, ctxBackendToken, backendToken)
}
