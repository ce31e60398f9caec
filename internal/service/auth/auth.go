package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/bookora/bookora_backend/internal/model"
	pasetotoken "github.com/bookora/bookora_backend/pkg/paseto"
	"github.com/bookora/bookora_backend/pkg/util/password"
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Email    string
	Password string
}

type LoginRequest struct {
	Email    string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// Store is the persistence surface the auth service needs.
type Store interface {
	CreateUser(ctx context.Context, u *model.User) error
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	// SessionActive reports whether a session id still exists in Redis.
	SessionActive(ctx context.Context, sessionID uuid.UUID) (bool, error)
	Me(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	store  Store
	rdb    *redis.Client
	paseto *pasetotoken.Manager
}

func New(store Store, rdb *redis.Client, paseto *pasetotoken.Manager) Service {
	return &authService{store: store, rdb: rdb, paseto: paseto}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if !reEmail.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.store.UserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: passHash,
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.store.UserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		// Burn a verify anyway so a missing account is not distinguishable
		// by timing.
		password.Verify("$argon2id$v=19$m=65536,t=3,p=2$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", req.Password)
		return nil, ErrInvalidCredentials
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(ctx, u)
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())
	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Sliding session: each refresh extends the session TTL.
	s.rdb.Expire(ctx, sessionKey, s.paseto.RefreshTTL())

	// Issue a new access token only; the refresh token stays the same
	// until logout.
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.paseto.AccessTTL().Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired, not an error from the client's view.
		slog.Debug("logout: session not found in Redis", "session_id", sessionID)
	}
	return nil
}

func (s *authService) SessionActive(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	err := s.rdb.Get(ctx, redisKeySession(sessionID.String())).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get session: %w", err)
	}
	return true, nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	u, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *authService) createSession(ctx context.Context, u *model.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), s.paseto.RefreshTTL()).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(u.ID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.paseto.AccessTTL().Seconds()),
	}, nil
}
