package theme

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Loader resolves themes by name or path, with user files taking
// precedence over bundled ones.
type Loader struct {
	mu        sync.RWMutex
	logger    *slog.Logger
	themesDir string
	current   *Theme
}

// NewLoader creates a theme loader searching the given directory for user
// themes. An empty dir disables user overrides.
func NewLoader(themesDir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:    logger,
		themesDir: themesDir,
	}
}

// Load resolves a theme by name. Resolution order:
//  1. user themes directory (<themesDir>/<name>.toml)
//  2. bundled themes
//
// Falls back to the bundled default when the name resolves nowhere.
func (l *Loader) Load(name string) *Theme {
	if name == "" {
		name = DefaultThemeName
	}

	if l.themesDir != "" {
		path := filepath.Join(l.themesDir, name+".toml")
		if th, err := LoadFile(name, path); err == nil {
			l.setCurrent(th)
			return th
		} else if !os.IsNotExist(err) {
			l.logger.Warn("failed to load user theme", "name", name, "error", err)
		}
	}

	if th, ok := GetEmbeddedTheme(name); ok {
		l.setCurrent(th)
		return th
	}

	l.logger.Warn("theme not found, using default", "name", name)
	th, _ := GetEmbeddedTheme(DefaultThemeName)
	l.setCurrent(th)
	return th
}

// LoadPath loads a theme from an explicit file path.
func (l *Loader) LoadPath(path string) (*Theme, error) {
	name := filepath.Base(path)
	name = name[:len(name)-len(filepath.Ext(name))]
	th, err := LoadFile(name, path)
	if err != nil {
		return nil, err
	}
	l.setCurrent(th)
	return th, nil
}

// Current returns the most recently loaded theme, or the bundled default.
func (l *Loader) Current() *Theme {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.current != nil {
		return l.current
	}
	th, _ := GetEmbeddedTheme(DefaultThemeName)
	return th
}

func (l *Loader) setCurrent(th *Theme) {
	l.mu.Lock()
	l.current = th
	l.mu.Unlock()
}

// LoadFile parses a theme from a file on disk.
func LoadFile(name, path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	th, err := Parse(name, data)
	if err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}
	th.Path = path
	th.ModTime = info.ModTime()
	return th, nil
}
