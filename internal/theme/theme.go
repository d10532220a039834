// Package theme maps the menu class names to lipgloss styles. Styling is
// deliberately outside the menu core: the core applies class identifiers,
// a theme decides what they look like.
package theme

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

// Theme holds the resolved styles for the three menu classes.
type Theme struct {
	Name      string    // theme name (without .toml extension)
	Path      string    // full path to the theme file (empty for bundled)
	ModTime   time.Time // last modification time
	IsDefault bool      // true if this is the bundled default theme

	Menu         lipgloss.Style // container frame
	Item         lipgloss.Style // one row
	ItemDisabled lipgloss.Style // disabled row, applied instead of Item
}

// fileTheme is the TOML shape of a theme file.
type fileTheme struct {
	Menu         styleSpec `toml:"menu"`
	Item         styleSpec `toml:"item"`
	ItemDisabled styleSpec `toml:"item_disabled"`
}

// styleSpec is one style block in a theme file.
type styleSpec struct {
	Foreground string `toml:"foreground"` // color name, ANSI number, or hex
	Background string `toml:"background"`
	Border     string `toml:"border"` // rounded, normal, thick, double, none
	Bold       bool   `toml:"bold"`
	Faint      bool   `toml:"faint"`
	Italic     bool   `toml:"italic"`
}

// Parse builds a Theme from TOML content.
func Parse(name string, data []byte) (*Theme, error) {
	var ft fileTheme
	if err := toml.Unmarshal(data, &ft); err != nil {
		return nil, err
	}
	return &Theme{
		Name:         name,
		Menu:         ft.Menu.style(),
		Item:         ft.Item.style(),
		ItemDisabled: ft.ItemDisabled.style(),
	}, nil
}

func (s styleSpec) style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Faint {
		st = st.Faint(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	switch s.Border {
	case "rounded":
		st = st.Border(lipgloss.RoundedBorder())
	case "normal":
		st = st.Border(lipgloss.NormalBorder())
	case "thick":
		st = st.Border(lipgloss.ThickBorder())
	case "double":
		st = st.Border(lipgloss.DoubleBorder())
	}
	return st
}
