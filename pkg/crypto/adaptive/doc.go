// Package adaptive provides hardware-aware authenticated encryption.
//
// It implements a cipher abstraction that selects the best available
// AEAD for the host: AES-256-GCM where hardware AES support exists,
// ChaCha20-Poly1305 otherwise. All cipher operations are safe for
// concurrent use.
//
// Usage:
//
//	cipher, err := adaptive.New(key)
//	encrypted, err := cipher.Encrypt(plaintext, aad)
//	plaintext, err := cipher.Decrypt(encrypted, aad)
package adaptive
