package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/MasterPack/internal/model"
)

// DefaultProfilesPath returns the default file path for custom pallet
// profiles. This is located at ~/.masterpack/profiles.json.
func DefaultProfilesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".masterpack", "profiles.json"), nil
}

// SaveCustomProfiles saves custom pallet profiles to a JSON file.
func SaveCustomProfiles(path string, profiles []model.PalletProfile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCustomProfiles loads custom pallet profiles from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomProfiles(path string) ([]model.PalletProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.PalletProfile{}, nil
		}
		return nil, err
	}

	var profiles []model.PalletProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, err
	}

	// Ensure loaded profiles are not marked as built-in
	for i := range profiles {
		profiles[i].IsBuiltIn = false
	}
	return profiles, nil
}

// LoadCustomProfilesFromDefault loads custom profiles from the default path.
func LoadCustomProfilesFromDefault() ([]model.PalletProfile, error) {
	path, err := DefaultProfilesPath()
	if err != nil {
		return nil, err
	}
	return LoadCustomProfiles(path)
}

// ExportProfile exports a single pallet profile to a JSON file (for sharing).
func ExportProfile(path string, profile model.PalletProfile) error {
	profile.IsBuiltIn = false
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportProfile imports a single pallet profile from a JSON file.
func ImportProfile(path string) (model.PalletProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.PalletProfile{}, err
	}

	var profile model.PalletProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return model.PalletProfile{}, err
	}

	profile.IsBuiltIn = false
	if profile.Name == "" {
		return model.PalletProfile{}, errors.New("imported profile has no name")
	}
	if !profile.Pallet.Valid() {
		return model.PalletProfile{}, errors.New("imported profile has an invalid pallet")
	}
	return profile, nil
}
