// Package adaptive provides hardware-aware authenticated encryption.
package adaptive

import (
	"crypto/aes"
	"crypto/cipher"
)

// NewAESGCM builds an AES-256-GCM cipher over a 32-byte key.
func NewAESGCM(key []byte) (Cipher, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return aead{inner: gcm}, nil
}
