package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/MasterPack/internal/model"
)

func TestDefaultConfigDir(t *testing.T) {
	dir := DefaultConfigDir()
	if dir == "" {
		t.Fatal("expected non-empty config dir")
	}
	if filepath.Base(dir) != ".masterpack" {
		t.Errorf("expected .masterpack, got %s", filepath.Base(dir))
	}
}

func TestSaveAndLoadProject(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "projects", "retail-q3.json")

	proj := model.NewProject()
	proj.Name = "Retail Q3"
	proj.Catalog = model.SampleCatalog().Products
	proj.Pallet.TargetHeight = 72

	if err := SaveProject(path, proj); err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}

	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if loaded.Name != "Retail Q3" {
		t.Errorf("expected project name Retail Q3, got %q", loaded.Name)
	}
	if len(loaded.Catalog) != len(proj.Catalog) {
		t.Errorf("expected %d products, got %d", len(proj.Catalog), len(loaded.Catalog))
	}
	if loaded.Pallet.TargetHeight != 72 {
		t.Errorf("expected target height 72, got %f", loaded.Pallet.TargetHeight)
	}
}

func TestLoadProjectReturnsFreshWhenMissing(t *testing.T) {
	proj, err := LoadProject(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if proj.Name != "Untitled" {
		t.Errorf("expected fresh project, got name %q", proj.Name)
	}
	if proj.Catalog == nil {
		t.Error("fresh project catalog should not be nil")
	}
}

func TestLoadProjectRejectsCorruptFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.json")
	if err := os.WriteFile(path, []byte("nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProject(path); err == nil {
		t.Fatal("expected error for corrupt project file")
	}
}
