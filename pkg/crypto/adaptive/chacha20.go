// Package adaptive provides hardware-aware authenticated encryption.
package adaptive

import (
	"golang.org/x/crypto/chacha20poly1305"
)

// NewChaCha20 builds a ChaCha20-Poly1305 cipher over a 32-byte key.
func NewChaCha20(key []byte) (Cipher, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, ErrKeySize
	}

	c, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead{inner: c}, nil
}
