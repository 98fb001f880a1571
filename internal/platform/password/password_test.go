package password

import (
	"encoding/hex"
	"testing"
)

// TestGenerateSalt verifies salts are well formed and unique.
func TestGenerateSalt(t *testing.T) {
	t.Parallel()

	salt1, err := GenerateSalt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := hex.DecodeString(salt1); err != nil {
		t.Errorf("salt is not valid hex: %v", err)
	}
	if len(salt1) != saltBytes*2 {
		t.Errorf("expected salt length %d, got %d", saltBytes*2, len(salt1))
	}

	salt2, err := GenerateSalt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if salt1 == salt2 {
		t.Error("expected two generated salts to differ")
	}
}

// TestHash verifies the digest is deterministic under a fixed salt and
// changes when either input changes.
func TestHash(t *testing.T) {
	t.Parallel()

	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h1, err := Hash("correct horse battery staple", salt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, err := Hash("correct horse battery staple", salt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h1 != h2 {
		t.Error("expected identical inputs to hash identically")
	}

	other, err := Hash("different password", salt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other == h1 {
		t.Error("expected different passwords to hash differently")
	}

	otherSalt, _ := GenerateSalt()
	resalted, err := Hash("correct horse battery staple", otherSalt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resalted == h1 {
		t.Error("expected different salts to produce different hashes")
	}
}

// TestHash_InvalidSalt verifies a non-hex salt is rejected.
func TestHash_InvalidSalt(t *testing.T) {
	t.Parallel()

	if _, err := Hash("password", "not-hex"); err == nil {
		t.Error("expected error for invalid salt")
	}
}

// TestVerify verifies round-trips and rejections.
func TestVerify(t *testing.T) {
	t.Parallel()

	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hashed, err := Hash("p@ssw0rd", salt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		plaintext string
		salt      string
		hashed    string
		want      bool
	}{
		{"correct password", "p@ssw0rd", salt, hashed, true},
		{"wrong password", "wrong", salt, hashed, false},
		{"empty password", "", salt, hashed, false},
		{"wrong salt", "p@ssw0rd", "00000000000000000000000000000000", hashed, false},
		{"invalid salt", "p@ssw0rd", "zz", hashed, false},
		{"empty hash", "p@ssw0rd", salt, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Verify(tt.plaintext, tt.salt, tt.hashed); got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}
