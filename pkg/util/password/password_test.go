package password

import (
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	hash, err := Hash("clave-matrona-2024")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=") {
		t.Errorf("Hash() format invalid, got %s", hash)
	}
	if parts := strings.Split(hash, "$"); len(parts) != 6 {
		t.Errorf("Hash() expected 6 PHC parts, got %d", len(parts))
	}
}

func TestVerify(t *testing.T) {
	password := "clave-segura"

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
		{"wrong password", hash, "otra-clave", ErrMismatch},
		{"invalid hash format", "notahash", password, ErrInvalidHash},
		{"empty password", hash, "", ErrMismatch},
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
	hash1, _ := Hash("misma-clave")
	hash2, _ := Hash("misma-clave")

	if hash1 == hash2 {
		t.Error("Hash() should salt each hash independently")
	}
	if !Match(hash1, "misma-clave") || !Match(hash2, "misma-clave") {
		t.Error("both salted hashes must still verify")
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantLen int
	}{
		{"default for zero", 0, 16},
		{"default for negative", -5, 16},
		{"explicit length", 24, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.length)
			if err != nil {
				t.Fatalf("Generate(%d) error: %v", tt.length, err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("Generate(%d) length = %d, want %d", tt.length, len(got), tt.wantLen)
			}
		})
	}

	a, _ := Generate(16)
	b, _ := Generate(16)
	if a == b {
		t.Error("Generate() should not repeat")
	}
}
