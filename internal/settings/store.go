package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFile is the settings file used when none is configured.
const DefaultFile = ".gtai.json"

// ErrInvalid is returned by Save for settings that fail validation.
var ErrInvalid = errors.New("invalid settings")

// Store reads and writes Settings as a JSON file.
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the settings file is present. Any stat failure
// counts as absent.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && info.Mode().IsRegular()
}

// Load returns the stored settings. The bool is false when the file is
// absent or its contents are unusable (bad JSON, wrong field types,
// invalid language codes); both cases mean first-run setup is needed.
func (s *Store) Load() (Settings, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Settings{}, false
	}

	var loaded Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		return Settings{}, false
	}
	if err := loaded.Validate(); err != nil {
		return Settings{}, false
	}

	return loaded, true
}

// Save validates and writes settings, replacing the previous file.
func (s *Store) Save(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
