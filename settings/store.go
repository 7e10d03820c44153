// File: settings/store.go
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/lguibr/duopong/game"
)

// FileStore keeps Settings in a TOML file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

// Load returns game.ErrSettingsUnavailable when the file does not exist.
func (s *FileStore) Load() (game.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out game.Settings
	if _, err := toml.DecodeFile(s.path, &out); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return game.Settings{}, game.ErrSettingsUnavailable
		}
		return game.Settings{}, fmt.Errorf("settings: decode %s: %w", s.path, err)
	}
	return out, nil
}

// Save replaces the file atomically so a crash never leaves half a file.
func (s *FileStore) Save(settings game.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("settings: create dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("settings: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(settings); err != nil {
		tmp.Close()
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("settings: flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("settings: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("settings: replace %s: %w", s.path, err)
	}
	return nil
}

// MemoryStore is a SettingsStore that lives only as long as the process.
// The SSH host uses one per connection.
type MemoryStore struct {
	mu    sync.Mutex
	saved *game.Settings
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load() (game.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saved == nil {
		return game.Settings{}, game.ErrSettingsUnavailable
	}
	return *s.saved, nil
}

func (s *MemoryStore) Save(settings game.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = &settings
	return nil
}

var (
	_ game.SettingsStore = (*FileStore)(nil)
	_ game.SettingsStore = (*MemoryStore)(nil)
)
