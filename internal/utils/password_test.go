package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !VerifyPassword("s3cret", hash) {
		t.Error("expected hash to verify against original password")
	}
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
	if !VerifyPassword("same-password", first) || !VerifyPassword("same-password", second) {
		t.Error("expected both hashes to verify")
	}
}

func TestHashPassword_OverlongPassword(t *testing.T) {
	// bcrypt rejects inputs longer than 72 bytes
	_, err := HashPassword(strings.Repeat("a", 80))
	if err == nil {
		t.Error("expected error for password over bcrypt input limit")
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("right")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if VerifyPassword("wrong", hash) {
		t.Error("expected verification to fail for wrong password")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	if VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Error("expected verification to fail for malformed stored hash")
	}
	if VerifyPassword("anything", "") {
		t.Error("expected verification to fail for empty stored hash")
	}
}
