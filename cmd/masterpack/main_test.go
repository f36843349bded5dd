package main

import (
	"path/filepath"
	"testing"

	"github.com/piwi3910/MasterPack/internal/model"
	"github.com/piwi3910/MasterPack/internal/project"
)

func testProfile(name string) model.PalletProfile {
	pallet := model.DefaultPalletConfig()
	pallet.FootprintX = 42
	pallet.FootprintY = 42
	return model.PalletProfile{Name: name, Pallet: pallet}
}

func TestAddCustomProfile(t *testing.T) {
	t.Run("appends and clears built-in flag", func(t *testing.T) {
		p := testProfile("Club Store 42x42")
		p.IsBuiltIn = true

		updated, err := addCustomProfile(nil, p)
		if err != nil {
			t.Fatalf("addCustomProfile returned error: %v", err)
		}
		if len(updated) != 1 {
			t.Fatalf("expected 1 profile, got %d", len(updated))
		}
		if updated[0].IsBuiltIn {
			t.Error("saved custom profile must not be marked built-in")
		}
	})

	t.Run("rejects built-in name collision", func(t *testing.T) {
		if _, err := addCustomProfile(nil, testProfile("GMA 48x40")); err == nil {
			t.Fatal("expected error for built-in name collision")
		}
	})

	t.Run("rejects duplicate custom name", func(t *testing.T) {
		existing := []model.PalletProfile{testProfile("Club Store 42x42")}
		if _, err := addCustomProfile(existing, testProfile("Club Store 42x42")); err == nil {
			t.Fatal("expected error for duplicate custom name")
		}
	})

	t.Run("rejects empty name and invalid pallet", func(t *testing.T) {
		if _, err := addCustomProfile(nil, testProfile("")); err == nil {
			t.Fatal("expected error for empty name")
		}
		bad := testProfile("Bad Deck")
		bad.Pallet.FootprintX = 0
		if _, err := addCustomProfile(nil, bad); err == nil {
			t.Fatal("expected error for invalid pallet")
		}
	})
}

func TestRestoreBackup(t *testing.T) {
	tmpDir := t.TempDir()
	backupPath := filepath.Join(tmpDir, "backup.json")
	catalogPath := filepath.Join(tmpDir, "catalog.json")
	profilesPath := filepath.Join(tmpDir, "profiles.json")

	catalog := model.SampleCatalog()
	profile := testProfile("Club Store 42x42")
	profile.IsBuiltIn = true
	if err := project.ExportAllData(backupPath, catalog, []model.PalletProfile{profile}); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := project.ImportAllData(backupPath)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if err := restoreBackup(backup, catalogPath, profilesPath); err != nil {
		t.Fatalf("restoreBackup failed: %v", err)
	}

	restoredCatalog, err := project.LoadCatalog(catalogPath)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(restoredCatalog.Products) != len(catalog.Products) {
		t.Errorf("expected %d products, got %d", len(catalog.Products), len(restoredCatalog.Products))
	}

	restoredProfiles, err := project.LoadCustomProfiles(profilesPath)
	if err != nil {
		t.Fatalf("LoadCustomProfiles failed: %v", err)
	}
	if len(restoredProfiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(restoredProfiles))
	}
	if restoredProfiles[0].IsBuiltIn {
		t.Error("restored profiles must not be marked built-in")
	}
}

func TestRestoreBackupRejectsEmptyCatalog(t *testing.T) {
	tmpDir := t.TempDir()
	backup := project.BackupData{Version: "1.0.0"}

	err := restoreBackup(backup,
		filepath.Join(tmpDir, "catalog.json"),
		filepath.Join(tmpDir, "profiles.json"))
	if err == nil {
		t.Fatal("expected error for backup without products")
	}
}
