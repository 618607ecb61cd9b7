// Package store persists the flight configuration as a YAML document.
// It stands in for the flight controller's parameter EEPROM.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/fcconsole/internal/flight"
	"github.com/dshills/fcconsole/internal/logging"
)

// ErrCorrupt indicates the stored document could not be decoded.
var ErrCorrupt = errors.New("store: corrupt configuration")

const currentVersion = 1

// document is the on-disk form.
type document struct {
	Version int           `yaml:"version"`
	SavedAt time.Time     `yaml:"saved_at"`
	Config  flight.Config `yaml:"config"`
}

// Store reads and writes one configuration file.
type Store struct {
	path   string
	logger *logging.Logger
}

// New creates a store backed by the file at path.
func New(path string, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Null()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored configuration. A missing file yields the factory
// defaults. Keys absent from the file keep their default values.
func (s *Store) Load() (flight.Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("no stored configuration at %s, using defaults", s.path)
			return flight.Defaults(), nil
		}
		return flight.Config{}, fmt.Errorf("store: read %s: %w", s.path, err)
	}

	doc := document{Config: flight.Defaults()}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return flight.Config{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	if doc.Version > currentVersion {
		return flight.Config{}, fmt.Errorf("%w: %s: unsupported version %d (max supported: %d)",
			ErrCorrupt, s.path, doc.Version, currentVersion)
	}

	return doc.Config, nil
}

// Save writes cfg. The file is replaced atomically using a temporary file
// and rename.
func (s *Store) Save(cfg *flight.Config) error {
	doc := document{
		Version: currentVersion,
		SavedAt: time.Now().UTC(),
		Config:  *cfg,
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("store: marshal: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: create directory: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("store: write temp file: %w", err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("store: rename temp file: %w", err)
	}

	s.logger.Info("configuration written to %s", s.path)
	return nil
}

// ResetDefaults replaces cfg with the factory configuration and saves it.
func (s *Store) ResetDefaults(cfg *flight.Config) error {
	*cfg = flight.Defaults()
	return s.Save(cfg)
}
