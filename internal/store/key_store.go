package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"modhub/internal/domain"
)

const (
	keysDir       = "keys"
	keyFileSuffix = ".json"
)

var keyNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

// keyFile is the on-disk form of one saved key.
type keyFile struct {
	Name         string        `json:"name"`
	Scheme       domain.Scheme `json:"crypto_type"`
	Address      string        `json:"address"`
	PublicKey    string        `json:"public_key"`
	BoxPublicKey string        `json:"box_public_key"`
	Private      sealedBlob    `json:"private"`
}

// KeyFileStore persists named key material under <dir>/keys.
type KeyFileStore struct {
	dir string
	kdf scryptParams
	mu  sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore rooted at dir.
func NewKeyFileStore(dir string) *KeyFileStore {
	return &KeyFileStore{dir: dir, kdf: defaultScrypt}
}

// SaveKey seals key under passphrase and writes it as name, replacing any
// existing key of that name.
func (s *KeyFileStore) SaveKey(name string, passphrase string, key domain.KeyMaterial) error {
	if err := validateKeyName(name); err != nil {
		return err
	}
	if passphrase == "" {
		return fmt.Errorf("%w: empty passphrase", domain.ErrInvalidInput)
	}
	if _, err := domain.ParseScheme(string(key.Scheme)); err != nil {
		return err
	}
	if key.PrivateKey == "" {
		return fmt.Errorf("%w: key has no private part", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := seal(passphrase, []byte(key.PrivateKey), []byte(name), s.kdf)
	if err != nil {
		return fmt.Errorf("seal key %q: %w", name, err)
	}
	return writeJSON(s.path(name), keyFile{
		Name:         name,
		Scheme:       key.Scheme,
		Address:      key.Address,
		PublicKey:    key.PublicKey,
		BoxPublicKey: key.BoxPublicKey,
		Private:      sealed,
	}, 0o600)
}

// LoadKey reads and unseals the key saved as name.
func (s *KeyFileStore) LoadKey(name string, passphrase string) (domain.KeyMaterial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kf, err := s.read(name)
	if err != nil {
		return domain.KeyMaterial{}, err
	}
	priv, err := open(passphrase, kf.Private, []byte(name))
	if err != nil {
		return domain.KeyMaterial{}, fmt.Errorf("key %q: %w", name, err)
	}
	km := kf.material()
	km.PrivateKey = string(priv)
	return km, nil
}

// LoadPublic returns the key saved as name without its private part.
func (s *KeyFileStore) LoadPublic(name string) (domain.KeyMaterial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kf, err := s.read(name)
	if err != nil {
		return domain.KeyMaterial{}, err
	}
	return kf.material(), nil
}

// ListKeys returns the saved key names in lexical order.
func (s *KeyFileStore) ListKeys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(filepath.Join(s.dir, keysDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), keyFileSuffix) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), keyFileSuffix)
		if keyNamePattern.MatchString(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// DeleteKey removes the key saved as name.
func (s *KeyFileStore) DeleteKey(name string) error {
	if err := validateKeyName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	found, err := removeFile(s.path(name))
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %q", domain.ErrKeyNotFound, name)
	}
	return nil
}

func (s *KeyFileStore) read(name string) (keyFile, error) {
	if err := validateKeyName(name); err != nil {
		return keyFile{}, err
	}
	var kf keyFile
	found, err := readJSON(s.path(name), &kf)
	if err != nil {
		return keyFile{}, fmt.Errorf("read key %q: %w", name, err)
	}
	if !found {
		return keyFile{}, fmt.Errorf("%w: %q", domain.ErrKeyNotFound, name)
	}
	return kf, nil
}

func (s *KeyFileStore) path(name string) string {
	return filepath.Join(s.dir, keysDir, name+keyFileSuffix)
}

func (kf keyFile) material() domain.KeyMaterial {
	return domain.KeyMaterial{
		Scheme:       kf.Scheme,
		Address:      kf.Address,
		PublicKey:    kf.PublicKey,
		BoxPublicKey: kf.BoxPublicKey,
	}
}

func validateKeyName(name string) error {
	if !keyNamePattern.MatchString(name) {
		return fmt.Errorf("%w: key name %q (letters, digits, '.', '_', '-'; max 64)", domain.ErrInvalidInput, name)
	}
	return nil
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)

