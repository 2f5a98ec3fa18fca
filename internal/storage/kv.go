// Package storage persists the goal document. The underlying primitive is a
// flat key-value store holding string values; the full document lives under
// one key as a serialized JSON blob, with a handful of small flag keys
// beside it.
package storage

import (
	"path/filepath"
	"strings"
)

// KV is the local key-value storage primitive. Implementations are not safe
// for concurrent use by multiple processes sharing the same path.
type KV interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error

	// Path returns the backing file path.
	Path() string
}

// Open selects a provider by path extension: .json files use the plain JSON
// file store, everything else the SQLite store.
func Open(path string) (KV, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return OpenJSONKV(path)
	}
	return OpenSQLiteKV(path)
}
