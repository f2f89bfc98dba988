package service

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "correct horse battery staple") {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword(hash, "wrong password") {
		t.Fatalf("wrong password accepted")
	}
}

func TestHashPassword_DefaultCost(t *testing.T) {
	hash, err := HashPassword("password123", 0)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	h1, _ := HashPassword("same-password", bcrypt.MinCost)
	h2, _ := HashPassword("same-password", bcrypt.MinCost)
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "whatever") {
		t.Fatalf("malformed hash must never verify")
	}
	if CheckPassword(strings.Repeat("x", 60), "whatever") {
		t.Fatalf("garbage hash must never verify")
	}
}
