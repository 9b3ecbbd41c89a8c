package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
)

var (
	ErrNotFound = errors.New("configuration not found")
	ErrCorrupt  = errors.New("configuration is corrupt")
)

// SetupFunc produces a fresh configuration when none can be loaded.
type SetupFunc func() (*Config, error)

// Store reads and writes the configuration file as a single unit.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Read parses the configuration file. A missing file yields ErrNotFound; a file
// that does not parse or lacks the key or model yields ErrCorrupt.
func (s *Store) Read() (*Config, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrCorrupt, s.path, err)
	}

	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if !cfg.Complete() {
		return nil, fmt.Errorf("%w: api_key and model must both be set", ErrCorrupt)
	}
	return &cfg, nil
}

// Load returns the stored configuration, or the result of setup when the file is
// missing or unusable.
func (s *Store) Load(setup SetupFunc) (*Config, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg, err := s.Read()
	if err == nil {
		return cfg, nil
	}

	if errors.Is(err, ErrNotFound) {
		ancli.Noticef("no configuration found, running first-time setup\n")
	} else {
		ancli.Warnf("failed to load configuration: %v\n", err)
		ancli.Noticef("running setup again to fix configuration\n")
	}
	return setup()
}

// Save writes the whole configuration, replacing any existing file.
func (s *Store) Save(cfg *Config) error {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	b = append(b, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, fileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set config permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}
