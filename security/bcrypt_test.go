package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashVerify(t *testing.T) {

	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "correct horse" {
		t.Fatalf("hash must not equal the password")
	}
	if !h.Verify("correct horse", hash) {
		t.Errorf("expected password to verify")
	}
	if h.Verify("wrong horse", hash) {
		t.Errorf("expected wrong password to fail")
	}
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {

	if got := NewBcryptHasher(0).cost; got != DefaultCost {
		t.Errorf("expected default cost %d, got %d", DefaultCost, got)
	}
}
