// Package adaptive provides hardware-aware authenticated encryption.
package adaptive

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
	"runtime"
)

// KeySize is the key length every cipher in this package accepts.
const KeySize = 32

var (
	// ErrKeySize is returned for keys that are not KeySize bytes.
	ErrKeySize = errors.New("adaptive: key must be 32 bytes")

	// ErrCiphertextShort is returned when a ciphertext is too small to
	// carry its nonce.
	ErrCiphertextShort = errors.New("adaptive: ciphertext shorter than nonce")
)

// Cipher seals and opens small secrets under a fixed key. The random
// nonce travels prepended to the ciphertext, so a sealed value is
// self-contained. Implementations are safe for concurrent use.
type Cipher interface {
	// Encrypt seals plaintext, binding it to aad.
	Encrypt(plaintext, aad []byte) ([]byte, error)

	// Decrypt opens a value produced by Encrypt under the same key and
	// aad. Tampered data, the wrong key, or the wrong aad all fail
	// authentication.
	Decrypt(ciphertext, aad []byte) ([]byte, error)
}

// New returns the AEAD best suited to the host: AES-256-GCM where the
// architecture accelerates AES, ChaCha20-Poly1305 otherwise. Both sides
// of a seal/open pair must use the same algorithm, which holds as long
// as the sealed value never leaves the machine.
func New(key []byte) (Cipher, error) {
	if hardwareAES() {
		return NewAESGCM(key)
	}
	return NewChaCha20(key)
}

// hardwareAES reports whether the architecture carries AES acceleration.
// Go's crypto/aes uses AES-NI on amd64 and the crypto extensions on
// arm64; elsewhere ChaCha20 is the faster constant-time choice.
func hardwareAES() bool {
	return runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64"
}

// aead adapts a crypto/cipher AEAD to the Cipher interface.
type aead struct {
	inner cipher.AEAD
}

func (a aead) Encrypt(plaintext, aad []byte) ([]byte, error) {
	nonce := make([]byte, a.inner.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	// Seal appends to the nonce slice, so the nonce rides in front.
	return a.inner.Seal(nonce, nonce, plaintext, aad), nil
}

func (a aead) Decrypt(ciphertext, aad []byte) ([]byte, error) {
	n := a.inner.NonceSize()
	if len(ciphertext) < n {
		return nil, ErrCiphertextShort
	}
	return a.inner.Open(nil, ciphertext[:n], ciphertext[n:], aad)
}
