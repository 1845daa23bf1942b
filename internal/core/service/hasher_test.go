package service

import (
	"strings"
	"testing"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(4) // min cost keeps the test fast

	digest, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if digest == "pw123" || digest == "" {
		t.Fatalf("digest must not equal plaintext")
	}
	if !h.Verify("pw123", digest) {
		t.Fatalf("expected verify to succeed")
	}
	if h.Verify("wrongpw", digest) {
		t.Fatalf("expected verify to fail for wrong password")
	}
}

func TestBcryptHasher_SaltedDigests(t *testing.T) {
	h := NewBcryptHasher(4)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password must differ (embedded salt)")
	}
}

func TestBcryptHasher_SelfDescribingDigest(t *testing.T) {
	// The digest carries its own cost; a hasher built with a different cost
	// must still verify it.
	writer := NewBcryptHasher(4)
	reader := NewBcryptHasher(10)

	digest, err := writer.Hash("pw123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Fatalf("unexpected digest format: %q", digest)
	}
	if !reader.Verify("pw123", digest) {
		t.Fatalf("digest should verify regardless of the verifier's cost setting")
	}
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	h := NewBcryptHasher(99)

	digest, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("expected fallback to default cost, got error: %v", err)
	}
	if !h.Verify("pw123", digest) {
		t.Fatalf("expected verify to succeed")
	}
}
