package security

import "testing"

func TestHashSecretTokenStableAndDistinct(t *testing.T) {
	a := HashSecretToken("token-a")
	if a != HashSecretToken("token-a") {
		t.Fatal("expected stable digest for identical token")
	}
	if a == HashSecretToken("token-b") {
		t.Fatal("expected distinct digests for distinct tokens")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
	if a == "token-a" {
		t.Fatal("digest must not echo the raw token")
	}
}
