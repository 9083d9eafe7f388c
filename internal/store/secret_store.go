package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"modhub/internal/domain"
)

const secretsFile = "secrets.json"

// SecretFileStore keeps named secrets in <dir>/secrets.json, mode 0600.
// Values are not encrypted; they are protected by file permissions only.
type SecretFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSecretFileStore returns a SecretFileStore rooted at dir.
func NewSecretFileStore(dir string) *SecretFileStore {
	return &SecretFileStore{dir: dir}
}

// SaveSecret stores value under name.
func (s *SecretFileStore) SaveSecret(name string, value string) error {
	if name == "" {
		return fmt.Errorf("%w: empty secret name", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}
	m[name] = value
	return writeJSON(s.path(), m, 0o600)
}

// LoadSecret returns the value stored under name and whether it exists.
func (s *SecretFileStore) LoadSecret(name string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := m[name]
	return v, ok, nil
}

// DeleteSecret removes name. Removing a missing secret is not an error.
func (s *SecretFileStore) DeleteSecret(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := m[name]; !ok {
		return nil
	}
	delete(m, name)
	return writeJSON(s.path(), m, 0o600)
}

func (s *SecretFileStore) load() (map[string]string, error) {
	m := make(map[string]string)
	if _, err := readJSON(s.path(), &m); err != nil {
		return nil, fmt.Errorf("read secrets: %w", err)
	}
	return m, nil
}

func (s *SecretFileStore) path() string { return filepath.Join(s.dir, secretsFile) }

// Compile-time assertion that SecretFileStore implements domain.SecretStore.
var _ domain.SecretStore = (*SecretFileStore)(nil)
