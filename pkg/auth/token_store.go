package auth

import (
	"os"
	"sync"
)

// TokenStore owns the one opaque session token. Presence of a token
// is the only validity check the client performs: there is no expiry
// and no signature, matching the documented security model.
type TokenStore interface {
	// Get returns the stored token, or "" when none is stored.
	Get() (string, error)

	// Set stores the token, replacing any previous one.
	Set(token string) error

	// Clear removes the stored token.
	Clear() error
}

// MemoryTokenStore keeps the token in process memory. Suitable for
// tests and short-lived tools.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokenStore creates an empty in-memory token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Get returns the stored token.
func (m *MemoryTokenStore) Get() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

// Set stores the token.
func (m *MemoryTokenStore) Set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

// Clear removes the stored token.
func (m *MemoryTokenStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// FileTokenStore persists the token to a file, the closest analog to
// the browser's local storage for a CLI session.
type FileTokenStore struct {
	mu   sync.Mutex
	path string
}

// NewFileTokenStore creates a token store backed by the given path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Get reads the stored token; a missing file means no token.
func (f *FileTokenStore) Get() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Set writes the token with owner-only permissions.
func (f *FileTokenStore) Set(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return os.WriteFile(f.path, []byte(token), 0o600)
}

// Clear removes the token file; clearing an absent token is not an
// error.
func (f *FileTokenStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
