// Package prefs is folio's client-local storage: a small key/value file that
// survives restarts. Only the theme preference lives here today.
package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

const (
	// StateDirEnv is the env var override for the state directory (for testing).
	StateDirEnv = "FOLIO_STATE_DIR"
	// DefaultStateBase is the default state directory relative to the home dir.
	DefaultStateBase = ".folio"
	// FileName is the preferences file inside the state directory.
	FileName = "prefs.yaml"
)

// Store reads and writes string preferences.
// Layout: <state dir>/prefs.yaml, a flat YAML mapping.
type Store struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

// DefaultDir returns the state directory: FOLIO_STATE_DIR if set, else ~/.folio.
func DefaultDir() (string, error) {
	if dir := os.Getenv(StateDirEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultStateBase), nil
}

// Open loads the store rooted at dir. A missing file is an empty store; a
// corrupt file is reported so the caller can decide to continue in memory.
func Open(dir string) (*Store, error) {
	s := &Store{
		path:   filepath.Join(dir, FileName),
		values: make(map[string]string),
	}
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if err := yaml.Unmarshal(b, &s.values); err != nil {
		return s, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and atomically rewrites the file.
// On write failure the in-memory value is still updated.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value

	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}
