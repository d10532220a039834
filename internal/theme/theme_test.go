package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`
[menu]
border = "rounded"
foreground = "252"

[item]
foreground = "252"

[item_disabled]
faint = true
italic = true
`)

	th, err := Parse("custom", data)
	require.NoError(t, err)

	assert.Equal(t, "custom", th.Name)
	assert.Equal(t, lipgloss.RoundedBorder(), th.Menu.GetBorderStyle())
	assert.Equal(t, lipgloss.Color("252"), th.Item.GetForeground())
	assert.True(t, th.ItemDisabled.GetFaint())
	assert.True(t, th.ItemDisabled.GetItalic())
	assert.False(t, th.Item.GetBold())
}

func TestParse_InvalidTOML(t *testing.T) {
	_, err := Parse("bad", []byte("menu = ["))
	assert.Error(t, err)
}

func TestGetEmbeddedTheme(t *testing.T) {
	for _, name := range BundledThemes {
		t.Run(name, func(t *testing.T) {
			th, ok := GetEmbeddedTheme(name)
			require.True(t, ok)
			assert.Equal(t, name, th.Name)
			assert.Empty(t, th.Path, "bundled themes have no backing file")
			assert.Equal(t, name == DefaultThemeName, th.IsDefault)
		})
	}

	_, ok := GetEmbeddedTheme("no-such-theme")
	assert.False(t, ok)
}

func TestLoader_UserThemeTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	userTheme := `
[item]
bold = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "default.toml"), []byte(userTheme), 0644))

	l := NewLoader(dir, nil)
	th := l.Load("default")

	assert.True(t, th.Item.GetBold(), "user file shadows the bundled theme")
	assert.Equal(t, filepath.Join(dir, "default.toml"), th.Path)
	assert.Equal(t, th, l.Current())
}

func TestLoader_FallsBackToBundled(t *testing.T) {
	l := NewLoader(t.TempDir(), nil)

	th := l.Load("mono")
	assert.Equal(t, "mono", th.Name)
	assert.Empty(t, th.Path)
}

func TestLoader_UnknownNameFallsBackToDefault(t *testing.T) {
	l := NewLoader(t.TempDir(), nil)

	th := l.Load("missing")
	require.NotNil(t, th)
	assert.Equal(t, DefaultThemeName, th.Name)
	assert.True(t, th.IsDefault)
}

func TestLoader_EmptyNameMeansDefault(t *testing.T) {
	l := NewLoader("", nil)

	th := l.Load("")
	assert.Equal(t, DefaultThemeName, th.Name)
}

func TestLoader_LoadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "night.toml")
	require.NoError(t, os.WriteFile(path, []byte("[menu]\nborder = \"double\"\n"), 0644))

	l := NewLoader("", nil)
	th, err := l.LoadPath(path)
	require.NoError(t, err)

	assert.Equal(t, "night", th.Name)
	assert.Equal(t, path, th.Path)
	assert.False(t, th.ModTime.IsZero())
	assert.Equal(t, lipgloss.DoubleBorder(), th.Menu.GetBorderStyle())
}

func TestLoader_CurrentBeforeAnyLoad(t *testing.T) {
	l := NewLoader("", nil)

	th := l.Current()
	require.NotNil(t, th)
	assert.Equal(t, DefaultThemeName, th.Name)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("x", filepath.Join(t.TempDir(), "x.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestNewWatcher_BundledThemeNotWatched(t *testing.T) {
	th, ok := GetEmbeddedTheme(DefaultThemeName)
	require.True(t, ok)

	w, err := NewWatcher(th, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.toml")
	require.NoError(t, os.WriteFile(path, []byte("[item]\nbold = true\n"), 0644))

	th, err := LoadFile("live", path)
	require.NoError(t, err)

	w, err := NewWatcher(th, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, w)

	assert.NoError(t, w.Stop())
}
