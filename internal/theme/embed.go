package theme

import "embed"

// EmbeddedThemes contains all bundled theme files.
//
//go:embed themes/*.toml
var EmbeddedThemes embed.FS

// DefaultThemeName is the name of the built-in default theme.
const DefaultThemeName = "default"

// BundledThemes lists all embedded theme names.
var BundledThemes = []string{"default", "mono"}

// GetEmbeddedTheme retrieves a bundled theme by name.
func GetEmbeddedTheme(name string) (*Theme, bool) {
	data, err := EmbeddedThemes.ReadFile("themes/" + name + ".toml")
	if err != nil {
		return nil, false
	}
	th, err := Parse(name, data)
	if err != nil {
		return nil, false
	}
	th.IsDefault = name == DefaultThemeName
	return th, true
}
