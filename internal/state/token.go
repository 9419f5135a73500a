// Package state provides durable local state for the SkillShare client.
package state

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/hkdf"

	"github.com/skillshare/skillshare-go/internal/core/domain"
	"github.com/skillshare/skillshare-go/pkg/crypto/adaptive"
)

// tokenKey is the slot holding the encrypted auth token.
var tokenKey = []byte("auth/token")

// tokenAAD binds the ciphertext to its slot so a value moved to another
// key fails authentication.
var tokenAAD = []byte("skillshare.auth.token")

const (
	masterKeyLength = 32
	keyFileMode     = os.FileMode(0o600)
)

// TokenStore persists the auth token encrypted at rest.
//
// The AEAD key is derived from a machine-local master key file via
// HKDF, so the Badger directory alone is not enough to recover the
// token.
type TokenStore struct {
	store  *Store
	cipher adaptive.Cipher
}

// NewTokenStore creates a token store backed by s, deriving its cipher
// key from the master key file at keyPath. The key file is created
// with 0600 permissions on first use.
func NewTokenStore(s *Store, keyPath string) (*TokenStore, error) {
	master, err := loadOrCreateMasterKey(keyPath)
	if err != nil {
		return nil, err
	}
	defer zeroKey(master)

	subkey, err := deriveSubkey(master, "token-at-rest", masterKeyLength)
	if err != nil {
		return nil, err
	}

	cipher, err := adaptive.New(subkey)
	if err != nil {
		return nil, fmt.Errorf("state: token cipher: %w", err)
	}

	return &TokenStore{store: s, cipher: cipher}, nil
}

// Save encrypts and persists the token. An empty token clears the slot.
func (t *TokenStore) Save(token string) error {
	if token == "" {
		return t.Clear()
	}

	ciphertext, err := t.cipher.Encrypt([]byte(token), tokenAAD)
	if err != nil {
		return fmt.Errorf("state: encrypt token: %w", err)
	}
	if err := t.store.Set(tokenKey, ciphertext); err != nil {
		return domain.ErrStorage.WithCause(err)
	}
	return nil
}

// Load returns the persisted token.
// Returns domain.ErrTokenNotFound when no token is stored or when the
// stored value fails decryption (a corrupt or foreign slot is treated
// as absent, not fatal).
func (t *TokenStore) Load() (string, error) {
	ciphertext, err := t.store.Get(tokenKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return "", domain.ErrTokenNotFound
		}
		return "", domain.ErrStorage.WithCause(err)
	}

	plaintext, err := t.cipher.Decrypt(ciphertext, tokenAAD)
	if err != nil {
		return "", domain.ErrTokenNotFound.WithCause(err)
	}
	return string(plaintext), nil
}

// Clear removes the persisted token. Clearing an empty slot is not an
// error.
func (t *TokenStore) Clear() error {
	if err := t.store.Delete(tokenKey); err != nil {
		return domain.ErrStorage.WithCause(err)
	}
	return nil
}

// loadOrCreateMasterKey reads the master key file, generating a new
// random key on first use.
func loadOrCreateMasterKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != masterKeyLength {
			return nil, fmt.Errorf("state: master key file %s has invalid length %d", path, len(key))
		}
		return key, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("state: read master key: %w", err)
	}

	key = make([]byte, masterKeyLength)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("state: generate master key: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("state: create key dir: %w", err)
	}
	if err := os.WriteFile(path, key, keyFileMode); err != nil {
		return nil, fmt.Errorf("state: write master key: %w", err)
	}
	return key, nil
}

// deriveSubkey derives a purpose-bound subkey from the master key using
// HKDF. Separate purposes get independent keys from one key file.
func deriveSubkey(masterKey []byte, info string, length int) ([]byte, error) {
	reader := hkdf.New(sha256.New, masterKey, nil, []byte(info))
	key := make([]byte, length)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("state: derive subkey: %w", err)
	}
	return key, nil
}

// zeroKey overwrites key material after use.
func zeroKey(key []byte) {
	for i := range key {
		key[i] = 0
	}
}
