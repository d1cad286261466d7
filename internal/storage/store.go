package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Store is the durable key-value storage the picker persists state
// through: the recently-used lists and the last color preset.
type Store interface {
	Get(key string) (json.RawMessage, bool)
	Set(key string, value any) error
	Delete(key string) error
}

// fileStore is the concrete implementation, backed by a single JSON file
type fileStore struct {
	filePath string
	data     map[string]json.RawMessage
}

// NewFileStore creates a store backed by the given file. A missing or
// malformed file degrades to an empty store rather than failing.
func NewFileStore(path string) Store {
	fs := &fileStore{
		filePath: path,
		data:     make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Could not read store file %s: %v", path, err)
		}
		return fs
	}

	if err := json.Unmarshal(raw, &fs.data); err != nil {
		// Malformed persisted state is treated as empty, never propagated
		log.Printf("Malformed store file %s, starting empty: %v", path, err)
		fs.data = make(map[string]json.RawMessage)
	}
	return fs
}

// DefaultPath returns the store location under the user config directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "iconpick", "store.json")
}

// Get returns the raw value stored under key, if any
func (fs *fileStore) Get(key string) (json.RawMessage, bool) {
	v, ok := fs.data[key]
	return v, ok
}

// Set marshals value and persists it under key
func (fs *fileStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %q: %w", key, err)
	}
	fs.data[key] = raw
	return fs.flush()
}

// Delete removes key and persists the change
func (fs *fileStore) Delete(key string) error {
	if _, ok := fs.data[key]; !ok {
		return nil
	}
	delete(fs.data, key)
	return fs.flush()
}

func (fs *fileStore) flush() error {
	dir := filepath.Dir(fs.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	raw, err := json.MarshalIndent(fs.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	if err := os.WriteFile(fs.filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}
