package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/MasterPack/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "backup", "masterpack-backup.json")

	catalog := model.SampleCatalog()
	profiles := []model.PalletProfile{customProfile()}

	if err := ExportAllData(path, catalog, profiles); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}

	if backup.Version == "" {
		t.Error("expected version in backup")
	}
	if backup.CreatedAt == "" {
		t.Error("expected creation timestamp in backup")
	}
	if len(backup.Catalog.Products) != len(catalog.Products) {
		t.Errorf("expected %d products, got %d", len(catalog.Products), len(backup.Catalog.Products))
	}
	if len(backup.Profiles) != 1 {
		t.Errorf("expected 1 profile, got %d", len(backup.Profiles))
	}
}

func TestImportAllDataRejectsMissingVersion(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"catalog":{}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for backup without version")
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	if _, err := ImportAllData(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Fatal("expected error for missing backup file")
	}
}
