package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/MasterPack/internal/model"
)

func TestDefaultCatalogPath(t *testing.T) {
	path, err := DefaultCatalogPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path == "" {
		t.Fatal("expected non-empty path")
	}
	if filepath.Base(path) != "catalog.json" {
		t.Errorf("expected filename catalog.json, got %s", filepath.Base(path))
	}
	dir := filepath.Base(filepath.Dir(path))
	if dir != ".masterpack" {
		t.Errorf("expected parent dir .masterpack, got %s", dir)
	}
}

func TestSaveAndLoadCatalog(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test_catalog.json")

	cat := model.Catalog{
		Products: []model.ProductUnit{
			model.NewProductUnit("MUG-11OZ", 4.5, 3.5, 4.0, 0.9),
		},
	}

	if err := SaveCatalog(path, cat); err != nil {
		t.Fatalf("SaveCatalog failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("catalog file was not created")
	}

	loaded, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	if len(loaded.Products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(loaded.Products))
	}
	if loaded.Products[0].SKU != "MUG-11OZ" {
		t.Errorf("expected SKU MUG-11OZ, got %q", loaded.Products[0].SKU)
	}
	if loaded.Products[0].Unit.Length != 4.5 {
		t.Errorf("expected unit length 4.5, got %f", loaded.Products[0].Unit.Length)
	}
}

func TestLoadCatalogCreatesSample(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "new_catalog.json")

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(cat.Products) == 0 {
		t.Error("expected sample products in new catalog")
	}

	// The sample should have been persisted
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("sample catalog was not written to disk")
	}
}

func TestLoadCatalogRejectsCorruptFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCatalog(path); err == nil {
		t.Fatal("expected error for corrupt catalog file")
	}
}

func TestImportCatalogMergesAndSkipsDuplicates(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "import.json")

	shared := model.NewProductUnit("SHARED", 2, 2, 2, 0.5)
	incoming := model.Catalog{
		Products: []model.ProductUnit{
			shared,
			model.NewProductUnit("NEW-SKU", 6, 4, 3, 1.0),
		},
	}
	if err := SaveCatalog(path, incoming); err != nil {
		t.Fatal(err)
	}

	existing := model.Catalog{Products: []model.ProductUnit{shared}}
	merged, err := ImportCatalog(path, existing)
	if err != nil {
		t.Fatalf("ImportCatalog failed: %v", err)
	}

	if len(merged.Products) != 2 {
		t.Fatalf("expected 2 products after merge, got %d", len(merged.Products))
	}
}

func TestImportCatalogMissingFile(t *testing.T) {
	existing := model.SampleCatalog()
	merged, err := ImportCatalog(filepath.Join(t.TempDir(), "nope.json"), existing)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if len(merged.Products) != len(existing.Products) {
		t.Error("existing catalog should be returned unchanged on error")
	}
}
