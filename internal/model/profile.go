package model

// PalletProfile is a named, reusable pallet configuration.
type PalletProfile struct {
	Name      string       `json:"name"`
	Pallet    PalletConfig `json:"pallet"`
	IsBuiltIn bool         `json:"is_built_in"`
}

// BuiltInPalletProfiles returns the standard pallet footprints shipped
// with the application. Dimensions in inches.
func BuiltInPalletProfiles() []PalletProfile {
	gma := DefaultPalletConfig()

	euro := gma
	euro.FootprintX = 47.2
	euro.FootprintY = 31.5
	euro.BaseHeight = 5.7

	half := gma
	half.FootprintX = 24
	half.FootprintY = 40

	return []PalletProfile{
		{Name: "GMA 48x40", Pallet: gma, IsBuiltIn: true},
		{Name: "EUR 1200x800", Pallet: euro, IsBuiltIn: true},
		{Name: "Half GMA 24x40", Pallet: half, IsBuiltIn: true},
	}
}

// FindPalletProfile returns the profile with the given name from the
// built-ins followed by the supplied custom profiles.
func FindPalletProfile(name string, custom []PalletProfile) (PalletProfile, bool) {
	for _, p := range BuiltInPalletProfiles() {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range custom {
		if p.Name == name {
			return p, true
		}
	}
	return PalletProfile{}, false
}
