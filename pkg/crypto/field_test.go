package crypto

import (
	"strings"
	"testing"
)

const testKeyHex = "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"

func TestNewEncryptedField(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid 32-byte key", testKeyHex, false},
		{"not hex", "zz", true},
		{"too short", "00112233", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEncryptedField(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewEncryptedField() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStoreAndOpen(t *testing.T) {
	f, err := NewEncryptedField(testKeyHex)
	if err != nil {
		t.Fatalf("NewEncryptedField() error = %v", err)
	}

	rut := "12345678-9"
	hash, ct, err := f.Store(rut)
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	if len(hash) != 64 {
		t.Errorf("Store() hash length = %d, want 64 hex chars", len(hash))
	}
	if strings.Contains(ct, rut) {
		t.Error("ciphertext contains plaintext")
	}

	got, err := f.Open(ct)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got != rut {
		t.Errorf("Open() = %q, want %q", got, rut)
	}
}

func TestStoreDeterministicHashRandomCiphertext(t *testing.T) {
	f, _ := NewEncryptedField(testKeyHex)

	h1, ct1, _ := f.Store("12345678-9")
	h2, ct2, _ := f.Store("12345678-9")

	if h1 != h2 {
		t.Error("hash must be deterministic for equality lookups")
	}
	if ct1 == ct2 {
		t.Error("ciphertext must use a fresh nonce per Store")
	}
}

func TestMatches(t *testing.T) {
	f, _ := NewEncryptedField(testKeyHex)
	hash, _, _ := f.Store("12345678-9")

	if !f.Matches(hash, "12345678-9") {
		t.Error("Matches() = false for the stored plaintext")
	}
	if f.Matches(hash, "11111111-1") {
		t.Error("Matches() = true for a different plaintext")
	}
}

func TestOpenRejectsTamperedCiphertext(t *testing.T) {
	f, _ := NewEncryptedField(testKeyHex)
	_, ct, _ := f.Store("Maria Perez Soto")

	tests := []struct {
		name string
		ct   string
	}{
		{"not base64", "!!!not-base64!!!"},
		{"truncated", ct[:8]},
		{"flipped", "A" + ct[1:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.Open(tt.ct); err == nil {
				t.Error("Open() accepted invalid ciphertext")
			}
		})
	}
}

func TestOpenWrongKey(t *testing.T) {
	f1, _ := NewEncryptedField(testKeyHex)
	f2, _ := NewEncryptedField(strings.Repeat("ab", 32))

	_, ct, _ := f1.Store("secreto")
	if _, err := f2.Open(ct); err == nil {
		t.Error("Open() with a different key should fail authentication")
	}
}
