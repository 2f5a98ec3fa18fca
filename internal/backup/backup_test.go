package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupStore(t *testing.T) (string, *Manager) {
	t.Helper()
	dir := t.TempDir()
	storePath := filepath.Join(dir, "store.json")
	if err := os.WriteFile(storePath, []byte(`{"goals":"[]"}`), 0600); err != nil {
		t.Fatal(err)
	}
	return storePath, NewManager(storePath)
}

func TestManager_Create(t *testing.T) {
	storePath, mgr := setupStore(t)

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	name := filepath.Base(path)
	if !strings.HasPrefix(name, "goaltrack-") || !strings.HasSuffix(name, ".json") {
		t.Errorf("unexpected backup name: %s", name)
	}

	original, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatal(err)
	}
	copied, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(original) != string(copied) {
		t.Error("backup content differs from the store")
	}
}

func TestManager_Create_MissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := mgr.Create(); err == nil {
		t.Error("expected error for missing storage file")
	}
}

func TestManager_Create_UniqueNames(t *testing.T) {
	_, mgr := setupStore(t)

	first, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}
	// Same minute, so the second backup must fall back to a finer name.
	second, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Errorf("expected distinct backup paths, both were %s", first)
	}
}

func TestManager_List(t *testing.T) {
	_, mgr := setupStore(t)

	// Empty directory case.
	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 0 {
		t.Fatalf("expected no backups, got %d", len(backups))
	}

	if _, err := mgr.Create(); err != nil {
		t.Fatal(err)
	}

	backups, err = mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("expected non-zero backup size")
	}
	if backups[0].Timestamp.IsZero() {
		t.Error("expected parsed timestamp")
	}
}

func TestManager_List_IgnoresForeignFiles(t *testing.T) {
	_, mgr := setupStore(t)
	if _, err := mgr.Create(); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(mgr.Dir(), "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(mgr.Dir(), "goaltrack-garbage.json"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Errorf("expected foreign files ignored, got %d entries", len(backups))
	}
}

func TestManager_Restore(t *testing.T) {
	storePath, mgr := setupStore(t)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}

	// Change the store after the backup.
	if err := os.WriteFile(storePath, []byte(`{"goals":"changed"}`), 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	restored, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(restored) != `{"goals":"[]"}` {
		t.Errorf("expected original content back, got %s", restored)
	}
}

func TestManager_Restore_MissingBackup(t *testing.T) {
	_, mgr := setupStore(t)
	if err := mgr.Restore(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing backup file")
	}
}

func TestManager_Restore_RejectsEmptyBackup(t *testing.T) {
	_, mgr := setupStore(t)

	empty := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(empty, nil, 0600); err != nil {
		t.Fatal(err)
	}
	if err := mgr.Restore(empty); err == nil {
		t.Error("expected empty backup to be rejected")
	}
}

func TestNewManager_DefaultSuffix(t *testing.T) {
	mgr := NewManager("/tmp/store")
	if mgr.suffix != ".db" {
		t.Errorf("expected .db default suffix, got %s", mgr.suffix)
	}
}
