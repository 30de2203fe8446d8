package middleware

import (
	"strings"
	"testing"
)

func TestValidKey(t *testing.T) {
	cases := map[string]bool{
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa":     true,  // 32-hex
		"  aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa ":  true,  // trimmed
		"123e4567-e89b-12d3-a456-426614174000": true,  // uuid
		"short":                                false,
		"":                                     false,
		strings.Repeat("g", 32):                false, // not hex
	}
	for k, want := range cases {
		if got := validKey(k); got != want {
			t.Errorf("validKey(%q) = %v, want %v", k, got, want)
		}
	}
}

func TestBuildKey(t *testing.T) {
	got := buildKey("POST", "/loan/:id/payment", "abc")
	want := "idemp:post:/loan/:id/payment:abc"
	if got != want {
		t.Fatalf("buildKey = %q, want %q", got, want)
	}
}

func TestBodyHash_StableAndDistinct(t *testing.T) {
	a := bodyHash([]byte("600"))
	if a != bodyHash([]byte("600")) {
		t.Fatal("hash not stable")
	}
	if a == bodyHash([]byte("601")) {
		t.Fatal("distinct bodies must hash differently")
	}
	if len(a) != 64 {
		t.Fatalf("hash length = %d, want 64", len(a))
	}
}
