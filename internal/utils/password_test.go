package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	password := "correct horse battery staple"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if hash == password {
		t.Fatal("hash must not equal the plaintext")
	}

	if !VerifyPassword(password, hash) {
		t.Error("expected password to verify against its own hash")
	}
}

func TestHashPassword_EmbedsCostFactor(t *testing.T) {
	hash, err := HashPassword("some-password")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// bcrypt hashes are self-describing: $2a$<cost>$<salt+digest>
	if !strings.HasPrefix(hash, "$2a$10$") {
		t.Errorf("expected bcrypt hash with cost 10, got prefix %q", hash[:7])
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	password := "same-password"

	first, err := HashPassword(password)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	second, err := HashPassword(password)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if first == second {
		t.Error("hashing the same password twice must produce different hashes (random salt)")
	}

	if !VerifyPassword(password, first) {
		t.Error("first hash must verify")
	}
	if !VerifyPassword(password, second) {
		t.Error("second hash must verify")
	}
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	if !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got: %v", err)
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("right-password")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if VerifyPassword("wrong-password", hash) {
		t.Error("expected verification to fail for a different password")
	}
}

func TestVerifyPassword_MalformedHash_FailsClosed(t *testing.T) {
	tests := []struct {
		name       string
		storedHash string
	}{
		{"empty hash", ""},
		{"garbage", "not-a-bcrypt-hash"},
		{"truncated", "$2a$10$short"},
		{"plain digest", "5f4dcc3b5aa765d61d8327deb882cf99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if VerifyPassword("anything", tt.storedHash) {
				t.Error("expected verification to fail closed for a malformed stored hash")
			}
		})
	}
}
