package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONKV is a key-value store backed by a single JSON file. Writes go
// through a temp file and rename so a crash never leaves a half-written
// store behind.
type JSONKV struct {
	path string
	data map[string]string
}

// OpenJSONKV opens or creates the file-backed store.
func OpenJSONKV(path string) (*JSONKV, error) {
	kv := &JSONKV{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return kv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &kv.data); err != nil {
			return nil, fmt.Errorf("failed to parse storage: %w", err)
		}
	}
	return kv, nil
}

func (s *JSONKV) Get(key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *JSONKV) Set(key, value string) error {
	s.data[key] = value
	return s.flush()
}

func (s *JSONKV) Delete(key string) error {
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

func (s *JSONKV) Close() error {
	return nil
}

func (s *JSONKV) Path() string {
	return s.path
}

func (s *JSONKV) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}
