// Package crypto implements the searchable-encryption contract used for
// sensitive personal data (RUT, nombre, teléfono): every protected value is
// persisted as a SHA-256 hash column for equality lookup plus an
// AES-256-GCM ciphertext column holding the recoverable value.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

var (
	ErrInvalidKey         = errors.New("encryption key must be 32 bytes")
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)

// EncryptedField binds the hash and ciphertext halves of a protected column
// pair to a single AES-256 key. Entities never touch the primitives directly.
type EncryptedField struct {
	key []byte
}

// NewEncryptedField builds a field codec from a 64-char hex AES-256 key.
func NewEncryptedField(hexKey string) (*EncryptedField, error) {
	b, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid hex key: %w", err)
	}
	if len(b) != 32 {
		return nil, ErrInvalidKey
	}
	return &EncryptedField{key: b}, nil
}

// Store produces the (hash, ciphertext) pair for a plaintext value.
// The hash is deterministic so the ciphertext column never needs to be
// scanned for equality searches.
func (f *EncryptedField) Store(plaintext string) (hash, ciphertext string, err error) {
	ciphertext, err = f.seal(plaintext)
	if err != nil {
		return "", "", err
	}
	return Hash(plaintext), ciphertext, nil
}

// Open recovers the plaintext from a ciphertext produced by Store.
func (f *EncryptedField) Open(ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("base64 decode: %w", err)
	}

	gcm, err := f.gcm()
	if err != nil {
		return "", err
	}

	if len(data) < gcm.NonceSize() {
		return "", ErrCiphertextTooShort
	}

	nonce, ct := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}
	return string(plaintext), nil
}

// Matches reports whether plaintext corresponds to a stored hash,
// in constant time.
func (f *EncryptedField) Matches(hash, plaintext string) bool {
	return subtle.ConstantTimeCompare([]byte(hash), []byte(Hash(plaintext))) == 1
}

func (f *EncryptedField) seal(plaintext string) (string, error) {
	gcm, err := f.gcm()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ct := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ct), nil
}

func (f *EncryptedField) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(f.key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}
	return gcm, nil
}

// Hash returns the SHA-256 hex digest of value. Deterministic, so unique
// indexes on hash columns double as uniqueness checks on the plaintext.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
