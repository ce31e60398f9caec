package pasetotoken

import (
	"time"

	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the app-facing token payload.
type Claims struct {
	Type TokenType

	UserID    uuid.UUID
	SessionID uuid.UUID

	Issuer   string
	Audience string

	ExpiresAt time.Time
	TokenID   string // jti
	Subject   string
}

// GetUserID implements reqctx.AuthClaims.
func (c *Claims) GetUserID() uuid.UUID {
	return c.UserID
}

// GetSessionID implements reqctx.AuthClaims.
func (c *Claims) GetSessionID() uuid.UUID {
	return c.SessionID
}

// GetTokenType implements reqctx.AuthClaims.
func (c *Claims) GetTokenType() string {
	return string(c.Type)
}

// IsExpired reports whether the token's expiry has passed.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
