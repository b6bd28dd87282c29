package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/reachly-hq/reachly-portal/pkg/enums"
)

// SessionTokenPayload captures the data available when minting a portal session JWT.
type SessionTokenPayload struct {
	SessionID string
	Role      enums.AccountRole
	Email     string
}

// SessionTokenClaims represents the typed JWT issued to browsers. The jti
// doubles as the Redis session key, so revoking the record kills the token.
type SessionTokenClaims struct {
	Role  enums.AccountRole `json:"role"`
	Email string            `json:"email"`
	jwt.RegisteredClaims
}

// SessionID returns the identifier tying the token to its Redis record.
func (c *SessionTokenClaims) SessionID() string {
	return c.ID
}
