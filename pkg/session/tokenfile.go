package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenFile persists the bearer token across runs. The file holds one
// string; its absence means an anonymous session. The current value is
// cached in memory so it can serve as the API client's token provider.
type TokenFile struct {
	mu    sync.RWMutex
	path  string
	token string
}

func NewTokenFile(path string) *TokenFile {
	tf := &TokenFile{path: path}
	if raw, err := os.ReadFile(path); err == nil {
		tf.token = strings.TrimSpace(string(raw))
	}
	return tf
}

// Current returns the cached token, or "" when anonymous.
func (t *TokenFile) Current() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.token
}

func (t *TokenFile) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(t.path, []byte(token+"\n"), 0o600); err != nil {
		return err
	}
	t.mu.Lock()
	t.token = token
	t.mu.Unlock()
	return nil
}

// Clear forgets the token. A missing file is not an error.
func (t *TokenFile) Clear() error {
	t.mu.Lock()
	t.token = ""
	t.mu.Unlock()
	if err := os.Remove(t.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
