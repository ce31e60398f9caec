package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Config{
		Issuer:     "bookora",
		Audience:   "bookora-api",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 30 * 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestIssueAndVerifyRoundtrip(t *testing.T) {
	m := newTestManager(t)
	userID := uuid.New()
	sessionID := uuid.New()

	tests := []struct {
		name  string
		issue func(uuid.UUID, uuid.UUID) (string, error)
		want  TokenType
	}{
		{"access", m.IssueAccess, TokenTypeAccess},
		{"refresh", m.IssueRefresh, TokenTypeRefresh},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tok, err := tc.issue(userID, sessionID)
			if err != nil {
				t.Fatalf("issue: %v", err)
			}

			claims, err := m.Verify(tok)
			if err != nil {
				t.Fatalf("Verify: %v", err)
			}
			if claims.Type != tc.want {
				t.Errorf("Type = %q, want %q", claims.Type, tc.want)
			}
			if claims.UserID != userID {
				t.Errorf("UserID = %s, want %s", claims.UserID, userID)
			}
			if claims.SessionID != sessionID {
				t.Errorf("SessionID = %s, want %s", claims.SessionID, sessionID)
			}
			if claims.IsExpired() {
				t.Error("fresh token reported expired")
			}
		})
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Verify("v4.local.not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	m1 := newTestManager(t)
	m2 := newTestManager(t)

	tok, err := m1.IssueAccess(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// m2 generated its own ephemeral key; m1's token must not verify.
	if _, err := m2.Verify(tok); err == nil {
		t.Fatal("expected error for token issued under a different key")
	}
}

func TestNewRequiresIssuerAndAudience(t *testing.T) {
	if _, err := New(Config{Audience: "a"}); err == nil {
		t.Error("expected error for missing issuer")
	}
	if _, err := New(Config{Issuer: "i"}); err == nil {
		t.Error("expected error for missing audience")
	}
	if _, err := New(Config{Issuer: "i", Audience: "a", SymmetricHex: "zz"}); err == nil {
		t.Error("expected error for invalid key hex")
	}
}

func TestKeyFromHexIsStable(t *testing.T) {
	const keyHex = "707172737475767778797a7b7c7d7e7f808182838485868788898a8b8c8d8e8f"

	m1, err := New(Config{Issuer: "i", Audience: "a", SymmetricHex: keyHex})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m2, err := New(Config{Issuer: "i", Audience: "a", SymmetricHex: keyHex})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tok, err := m1.IssueAccess(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := m2.Verify(tok); err != nil {
		t.Fatalf("token issued under the same hex key failed to verify: %v", err)
	}
}
