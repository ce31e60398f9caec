package password

import (
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	hash, err := Hash("correcthorsebatterystaple")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=") {
		t.Errorf("Hash() format invalid, got %s", hash)
	}
	if parts := strings.Split(hash, "$"); len(parts) != 6 {
		t.Errorf("Hash() expected 6 parts, got %d", len(parts))
	}
}

func TestVerify(t *testing.T) {
	password := "mysecretpassword"
	hash, err := Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  error
	}{
		{"correct password", hash, password, nil},
		{"wrong password", hash, "wrongpassword", ErrMismatch},
		{"invalid hash format", "notahash", password, ErrInvalidHash},
		{"empty password against valid hash", hash, "", ErrMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Verify(tt.hash, tt.password); err != tt.wantErr {
				t.Errorf("Verify() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHashUniqueness(t *testing.T) {
	hash1, _ := Hash("samepassword")
	hash2, _ := Hash("samepassword")
	if hash1 == hash2 {
		t.Error("two hashes of the same password share a salt")
	}
}

func TestMatch(t *testing.T) {
	hash, _ := Hash("pw")
	if !Match(hash, "pw") {
		t.Error("Match() = false for correct password")
	}
	if Match(hash, "other") {
		t.Error("Match() = true for wrong password")
	}
}
