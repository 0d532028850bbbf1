// Package seal encrypts small payloads with AES-256-GCM.
//
// Sealed output is the ciphertext followed by the 16 byte tag. The nonce is
// not part of the output; callers store it alongside.
package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
)

const (
	// KeySize is the AES-256 key length.
	KeySize = 32
	// NonceSize is the GCM nonce length.
	NonceSize = 12
	// TagSize is the GCM authentication tag length.
	TagSize = 16
)

var (
	ErrInvalidKey         = errors.New("seal: invalid key size")
	ErrInvalidNonce       = errors.New("seal: invalid nonce size")
	ErrCiphertextTooShort = errors.New("seal: ciphertext too short")
	// ErrAuthentication is returned when the tag doesn't verify.
	ErrAuthentication = errors.New("seal: message authentication failed")
)

// GenerateKey returns a fresh random key.
func GenerateKey() ([]byte, error) {
	return random(KeySize)
}

// GenerateNonce returns a fresh random nonce. A nonce must never be reused
// with the same key.
func GenerateNonce() ([]byte, error) {
	return random(NonceSize)
}

func random(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("seal: %w", err)
	}
	return b, nil
}

// Encrypt seals plaintext and returns ciphertext||tag. aad may be nil.
func Encrypt(key, nonce, plaintext, aad []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	return gcm.Seal(make([]byte, 0, len(plaintext)+TagSize), nonce, plaintext, aad), nil
}

// Decrypt opens ciphertext||tag produced by Encrypt with the same key, nonce
// and aad.
func Decrypt(key, nonce, sealed, aad []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	if len(sealed) < TagSize {
		return nil, ErrCiphertextTooShort
	}

	pt, err := gcm.Open(make([]byte, 0, len(sealed)-TagSize), nonce, sealed, aad)
	if err != nil {
		return nil, ErrAuthentication
	}
	return pt, nil
}

func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}
	if len(nonce) != NonceSize {
		return nil, ErrInvalidNonce
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithTagSize(block, TagSize)
}
