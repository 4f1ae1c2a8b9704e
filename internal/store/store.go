// Package store provides whole-file JSON persistence for radard's cache
// documents (the project-state snapshot and the suggestion history).
//
// Each document is one JSON file, fully replaced on every save. Writes go
// through a temp file followed by a rename so concurrent readers see either
// the old or the new document, never a partial one.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Errors for store operations.
var (
	ErrCorrupted = errors.New("cache file corrupted")
)

// Store loads and saves a single JSON document.
type Store interface {
	// Load unmarshals the document into v. Returns false with a nil error
	// when no document has been saved yet.
	Load(v any) (bool, error)

	// Save marshals v and replaces the document wholesale.
	Save(v any) error
}

// FileStore is a Store backed by one JSON file on disk.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a FileStore for the given file path. The parent
// directory is created on first save, not here.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and unmarshals the document.
func (s *FileStore) Load(v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrCorrupted, s.path, err)
	}
	return true, nil
}

// Save writes the document atomically (write-temp-then-rename).
func (s *FileStore) Save(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename %s: %w", tmpPath, err)
	}

	return nil
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
