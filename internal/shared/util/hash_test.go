package util

import "testing"

func TestHashString(t *testing.T) {
	prompt := "You are an expert resume writer"
	got := HashString(prompt)
	if got != HashString(prompt) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	if got == HashString(prompt+" ") {
		t.Fatalf("expected different hash for different input")
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}
