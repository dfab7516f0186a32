package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store is the persistence capability for the recent color list. Implementations
// overwrite the full list on every save; there is no partial update.
type Store interface {
	Load() ([]string, error)
	Save(colors []string) error
}

// historyFile is the JSON layout of the persisted recent color list.
type historyFile struct {
	Version string   `json:"version"`
	Colors  []string `json:"colors"`
}

// FileStore persists the recent color list as a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore rooted at path, creating the parent
// directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Load reads the persisted list from disk.
func (s *FileStore) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var file historyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}

	return file.Colors, nil
}

// Save overwrites the persisted list atomically.
func (s *FileStore) Save(colors []string) error {
	file := historyFile{
		Version: "1.0",
		Colors:  colors,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	// Write to temporary file first
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// MemStore is an in-memory Store used in tests and as the degraded-mode
// fallback when no state directory is usable.
type MemStore struct {
	colors []string
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Load returns the stored list.
func (s *MemStore) Load() ([]string, error) {
	result := make([]string, len(s.colors))
	copy(result, s.colors)
	return result, nil
}

// Save replaces the stored list.
func (s *MemStore) Save(colors []string) error {
	s.colors = make([]string, len(colors))
	copy(s.colors, colors)
	return nil
}
