package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"
	"sync"
)

// Static errors for err113 compliance.
var (
	ErrNoPrivateKey = errors.New("no private key configured")
)

// KeyProvider supplies the private API key for each request.
type KeyProvider interface {
	GetKey(ctx context.Context) (string, error)
}

// StaticKey is a fixed private key.
type StaticKey string

// GetKey returns the key, or ErrNoPrivateKey when it is empty.
func (k StaticKey) GetKey(_ context.Context) (string, error) {
	if strings.TrimSpace(string(k)) == "" {
		return "", ErrNoPrivateKey
	}

	return string(k), nil
}

// EnvKey reads the private key from an environment variable on every
// request.
type EnvKey string

// GetKey returns the variable's value, or ErrNoPrivateKey when unset.
func (k EnvKey) GetKey(ctx context.Context) (string, error) {
	return StaticKey(os.Getenv(string(k))).GetKey(ctx)
}

// KeyStore holds a private key that can be replaced while requests are in
// flight, e.g. during key rotation.
type KeyStore struct {
	mutex sync.RWMutex
	key   string
}

// NewKeyStore creates a store holding key.
func NewKeyStore(key string) *KeyStore {
	return &KeyStore{key: key}
}

// Set replaces the stored key.
func (s *KeyStore) Set(key string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.key = key
}

// Get returns the stored key.
func (s *KeyStore) Get() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.key
}

// Clear removes the stored key.
func (s *KeyStore) Clear() {
	s.Set("")
}

// GetKey implements KeyProvider.
func (s *KeyStore) GetKey(ctx context.Context) (string, error) {
	return StaticKey(s.Get()).GetKey(ctx)
}

// BasicAuthorization renders the Authorization header value for key: the
// key is the user name and the password is empty.
func BasicAuthorization(key string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(key+":"))
}

// MaskKey hides all but the last four characters of key for display.
func MaskKey(key string) string {
	const visible = 4

	if len(key) <= visible {
		return strings.Repeat("*", len(key))
	}

	return strings.Repeat("*", len(key)-visible) + key[len(key)-visible:]
}
