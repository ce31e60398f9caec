// Package pasetotoken issues and verifies v4.local PASETO tokens for the
// access/refresh pair used by the auth service.
package pasetotoken

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	paseto "aidanwoods.dev/go-paseto"
	"github.com/google/uuid"
)

type Config struct {
	// SymmetricHex is the hex-encoded v4.local key. Empty generates an
	// ephemeral key, which invalidates all tokens on restart.
	SymmetricHex string

	Issuer   string
	Audience string

	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Manager struct {
	cfg   Config
	key   paseto.V4SymmetricKey
	parse paseto.Parser
}

func New(cfg Config) (*Manager, error) {
	if cfg.Issuer == "" {
		return nil, ErrConfig{Msg: "Issuer is required"}
	}
	if cfg.Audience == "" {
		return nil, ErrConfig{Msg: "Audience is required"}
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 30 * 24 * time.Hour
	}

	var key paseto.V4SymmetricKey
	if hexKey := strings.TrimSpace(cfg.SymmetricHex); hexKey != "" {
		k, err := paseto.V4SymmetricKeyFromHex(hexKey)
		if err != nil {
			return nil, ErrConfig{Msg: "invalid symmetric key hex: " + err.Error()}
		}
		key = k
	} else {
		key = paseto.NewV4SymmetricKey()
	}

	p := paseto.NewParser()
	p.AddRule(paseto.IssuedBy(cfg.Issuer))
	p.AddRule(paseto.ForAudience(cfg.Audience))
	p.AddRule(paseto.NotExpired())

	return &Manager{cfg: cfg, key: key, parse: p}, nil
}

func (m *Manager) AccessTTL() time.Duration  { return m.cfg.AccessTTL }
func (m *Manager) RefreshTTL() time.Duration { return m.cfg.RefreshTTL }

func (m *Manager) IssueAccess(userID, sessionID uuid.UUID) (string, error) {
	return m.issue(TokenTypeAccess, userID, sessionID, m.cfg.AccessTTL)
}

func (m *Manager) IssueRefresh(userID, sessionID uuid.UUID) (string, error) {
	return m.issue(TokenTypeRefresh, userID, sessionID, m.cfg.RefreshTTL)
}

func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	tok, err := m.parse.ParseV4Local(m.key, tokenStr, nil)
	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}
	claims, err := extractClaims(tok, m.cfg.Issuer, m.cfg.Audience)
	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}
	return claims, nil
}

func (m *Manager) issue(tt TokenType, userID, sessionID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()

	tok := paseto.NewToken()
	tok.SetIssuer(m.cfg.Issuer)
	tok.SetAudience(m.cfg.Audience)
	tok.SetJti(randHex(16))
	tok.SetIssuedAt(now)
	tok.SetNotBefore(now)
	tok.SetExpiration(now.Add(ttl))
	tok.SetSubject(userID.String())

	tok.SetString("typ", string(tt))
	tok.SetString("uid", userID.String())
	tok.SetString("sid", sessionID.String())

	return tok.V4Encrypt(m.key, nil), nil
}

func randHex(nBytes int) string {
	b := make([]byte, nBytes)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func extractClaims(tok *paseto.Token, iss, aud string) (*Claims, error) {
	jti, err := tok.GetJti()
	if err != nil {
		return nil, err
	}
	sub, err := tok.GetSubject()
	if err != nil {
		return nil, err
	}
	exp, err := tok.GetExpiration()
	if err != nil {
		return nil, err
	}

	out := &Claims{
		Issuer:    iss,
		Audience:  aud,
		TokenID:   jti,
		Subject:   sub,
		ExpiresAt: exp,
	}

	typ, err := tok.GetString("typ")
	if err != nil {
		return nil, err
	}
	out.Type = TokenType(typ)

	uidStr, err := tok.GetString("uid")
	if err != nil {
		return nil, err
	}
	if out.UserID, err = uuid.Parse(uidStr); err != nil {
		return nil, err
	}

	sidStr, err := tok.GetString("sid")
	if err != nil {
		return nil, err
	}
	if out.SessionID, err = uuid.Parse(sidStr); err != nil {
		return nil, err
	}

	return out, nil
}
