// Package store is a file-backed key/value snapshot store. It stands in for
// the browser's local storage: one JSON file per key under a state
// directory, written synchronously on every change so the document survives
// any network failure.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Well-known keys. The values persisted under them mirror the browser app:
// the resume document, the theme preference, the session token, the user
// display payload and the AI circuit-breaker deadline.
const (
	KeyResume       = "my_resume_app_data"
	KeyTheme        = "theme"
	KeyToken        = "token"
	KeyUserSession  = "user_session"
	KeyBlockedUntil = "gemini_blocked_until"
)

type Store struct {
	dir string
}

// Open creates the state directory if needed and returns a store over it.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("store: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	// keys are fixed identifiers; the replacement only guards against
	// accidental path separators
	key = strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, key+".json")
}

// Get returns the raw value for key. A missing key is not an error.
func (s *Store) Get(key string) ([]byte, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Set writes the value for key via a rename so readers never observe a
// partial write.
func (s *Store) Set(key string, value []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// GetJSON decodes the value for key into v.
func (s *Store) GetJSON(key string, v interface{}) (bool, error) {
	b, ok, err := s.Get(key)
	if err != nil || !ok {
		return ok, err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return true, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func (s *Store) SetJSON(key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, b)
}
