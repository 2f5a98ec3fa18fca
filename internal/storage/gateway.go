package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/logger"
	"github.com/goaltrack/goaltrack/internal/migrate"
	"github.com/goaltrack/goaltrack/internal/models"
)

// Gateway reads and writes the normalized document through the key-value
// store, and handles export and import files. Every document write is
// synchronous and whole; there is no debouncing, batching, or partial write.
type Gateway struct {
	kv  KV
	now func() time.Time
}

// NewGateway wraps a key-value store.
func NewGateway(kv KV) *Gateway {
	return &Gateway{kv: kv, now: time.Now}
}

// NewGatewayWithClock is NewGateway with an injectable clock for tests.
func NewGatewayWithClock(kv KV, now func() time.Time) *Gateway {
	return &Gateway{kv: kv, now: now}
}

// KV exposes the underlying store for the flag keys beside the document.
func (g *Gateway) KV() KV {
	return g.kv
}

// Save builds the full document around the goal list, stamps lastModified,
// and writes the serialized blob under the document key.
func (g *Gateway) Save(goals []models.Goal, meta models.Document) (models.Document, error) {
	doc := models.Document{
		Version:      constants.DataVersion,
		Schema:       constants.DataSchema,
		CreatedAt:    meta.CreatedAt,
		LastModified: g.now().UnixMilli(),
		Goals:        goals,
		Settings:     meta.Settings,
	}
	if doc.CreatedAt == 0 {
		doc.CreatedAt = doc.LastModified
	}
	if doc.Settings == (models.Settings{}) {
		doc.Settings = models.DefaultSettings()
	}

	if err := g.Write(doc); err != nil {
		return models.Document{}, err
	}
	return doc, nil
}

// Write serializes a fully built document under the document key without
// restamping it.
func (g *Gateway) Write(doc models.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	return g.kv.Set(constants.KeyGoals, string(data))
}

// Load returns the raw stored document bytes. Absence and read failures both
// yield nil; failures are logged, not surfaced.
func (g *Gateway) Load() []byte {
	value, ok, err := g.kv.Get(constants.KeyGoals)
	if err != nil {
		logger.Error("failed to load document", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return []byte(value)
}

// Export writes the document shape to goal-tracker-data-<YYYY-MM-DD>.json in
// dir and returns the file path.
func (g *Gateway) Export(goals []models.Goal, meta models.Document, dir string) (string, error) {
	now := g.now()
	doc := models.Document{
		Version:      constants.DataVersion,
		Schema:       constants.DataSchema,
		CreatedAt:    meta.CreatedAt,
		LastModified: now.UnixMilli(),
		Goals:        goals,
		Settings:     meta.Settings,
	}
	if doc.CreatedAt == 0 {
		doc.CreatedAt = doc.LastModified
	}
	if doc.Settings == (models.Settings{}) {
		doc.Settings = models.DefaultSettings()
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize export: %w", err)
	}

	name := constants.ExportFilePrefix + now.Format(constants.DateFormat) + ".json"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}

// Import parses and validates raw file bytes, migrates them to the current
// schema, and returns the replacement document. Partial or merge import is
// not supported; the caller replaces state wholesale.
func (g *Gateway) Import(raw []byte) (models.Document, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return models.Document{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if !migrate.Validate(v) {
		return models.Document{}, fmt.Errorf("invalid data format")
	}
	return migrate.Migrate(v, g.now()), nil
}

// WriteRecoveryBackup dumps raw corrupted bytes to
// recovery-backup-<epochMillis>.json in dir, best-effort, before the caller
// falls back to defaults.
func (g *Gateway) WriteRecoveryBackup(raw []byte, dir string) (string, error) {
	name := fmt.Sprintf("%s%d.json", constants.RecoveryFilePrefix, g.now().UnixMilli())
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0600); err != nil {
		return "", fmt.Errorf("failed to write recovery backup: %w", err)
	}
	return path, nil
}

// DarkMode reads the dark-mode flag. Storage failures degrade silently to
// false with a logged warning.
func (g *Gateway) DarkMode() bool {
	value, ok, err := g.kv.Get(constants.KeyDarkMode)
	if err != nil {
		logger.Warn("failed to read dark mode flag", "error", err)
		return false
	}
	return ok && value == "true"
}

// SetDarkMode stores the flag as a "true"/"false" string.
func (g *Gateway) SetDarkMode(on bool) error {
	value := "false"
	if on {
		value = "true"
	}
	return g.kv.Set(constants.KeyDarkMode, value)
}

// LastBackupDate reads the daily backup marker.
func (g *Gateway) LastBackupDate() string {
	value, _, err := g.kv.Get(constants.KeyLastBackupDate)
	if err != nil {
		logger.Warn("failed to read last backup date", "error", err)
		return ""
	}
	return value
}

// SetLastBackupDate stores the daily backup marker.
func (g *Gateway) SetLastBackupDate(date string) error {
	return g.kv.Set(constants.KeyLastBackupDate, date)
}

// ActiveTimers reads the persisted timer session snapshot.
func (g *Gateway) ActiveTimers() []byte {
	value, ok, err := g.kv.Get(constants.KeyActiveTimers)
	if err != nil {
		logger.Warn("failed to read timer sessions", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return []byte(value)
}

// SetActiveTimers stores the timer session snapshot.
func (g *Gateway) SetActiveTimers(snapshot []byte) error {
	return g.kv.Set(constants.KeyActiveTimers, string(snapshot))
}
