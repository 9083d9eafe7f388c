package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"modhub/internal/crypto"
	"modhub/internal/domain"
	"modhub/internal/services/token"
)

const (
	// ConfigFilename is read from the home directory.
	ConfigFilename = "config.yaml"
	// HomeEnv overrides the default home directory.
	HomeEnv = "MODHUB_HOME"

	defaultHomeDir = ".modhub"
	defaultListen  = "127.0.0.1:8787"
)

// Config holds runtime options for building the app.
type Config struct {
	Home        string          `yaml:"-"`                      // config directory, e.g. $HOME/.modhub
	Network     uint16          `yaml:"network"`                // SS58 network prefix for sr25519 addresses
	Scheme      string          `yaml:"scheme"`                 // default scheme for new keys
	TokenTTL    time.Duration   `yaml:"token_ttl"`              // default token lifetime
	VerifierURL string          `yaml:"verifier_url,omitempty"` // remote verifier base URL, optional
	Listen      string          `yaml:"listen"`                 // verifier listen address
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
	Log         LogConfig       `yaml:"log"`

	HTTP *http.Client `yaml:"-"` // optional; defaults to a client with Timeout set
}

// RateLimitConfig bounds verifier requests per client address. Zero RPS
// disables limiting.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the built-in defaults rooted at home.
func DefaultConfig(home string) Config {
	return Config{
		Home:      home,
		Network:   crypto.DefaultNetwork,
		Scheme:    domain.EdwardsSeeded.String(),
		TokenTTL:  token.DefaultTTL,
		Listen:    defaultListen,
		RateLimit: RateLimitConfig{RPS: 10, Burst: 20},
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// DefaultHome is $MODHUB_HOME, or ~/.modhub.
func DefaultHome() (string, error) {
	if h := os.Getenv(HomeEnv); h != "" {
		return h, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultHomeDir), nil
}

// LoadConfig returns the defaults for home overlaid by home/config.yaml, if
// that file exists.
func LoadConfig(home string) (Config, error) {
	cfg := DefaultConfig(home)
	b, err := os.ReadFile(filepath.Join(home, ConfigFilename))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, cfg.Validate()
	}
	if err != nil {
		return Config{}, err
	}
	if err := decodeConfig(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", ConfigFilename, err)
	}
	return cfg, cfg.Validate()
}

func decodeConfig(b []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Home == "" {
		return errors.New("config: home is empty")
	}
	if _, err := domain.ParseScheme(c.Scheme); err != nil {
		return fmt.Errorf("config: scheme: %w", err)
	}
	if c.Network > 16383 {
		return fmt.Errorf("config: network %d out of range", c.Network)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("config: token_ttl must be positive, got %s", c.TokenTTL)
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return errors.New("config: rate_limit values must not be negative")
	}
	return nil
}

// DefaultScheme is the parsed Scheme field.
func (c Config) DefaultScheme() domain.Scheme {
	s, err := domain.ParseScheme(c.Scheme)
	if err != nil {
		return domain.EdwardsSeeded
	}
	return s
}

// WriteConfig stores cfg as home/config.yaml.
func WriteConfig(cfg Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(cfg.Home, ConfigFilename), b, 0o600)
}
