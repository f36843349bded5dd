// Package project persists projects, catalogs and pallet profiles as JSON
// under the user's home directory.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/MasterPack/internal/model"
)

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.masterpack/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".masterpack")
}

// SaveProject persists a project to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveProject(path string, proj model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(proj, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProject reads a project from the given path.
// If the file does not exist, it returns a fresh project with no error.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewProject(), nil
		}
		return model.Project{}, err
	}
	var proj model.Project
	if err := json.Unmarshal(data, &proj); err != nil {
		return model.Project{}, err
	}
	// Ensure Catalog is never nil
	if proj.Catalog == nil {
		proj.Catalog = []model.ProductUnit{}
	}
	return proj, nil
}
