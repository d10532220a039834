package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ctxmenu/ctxmenu"
	"github.com/ctxmenu/ctxmenu/internal/config"
	"github.com/ctxmenu/ctxmenu/internal/theme"
	"github.com/ctxmenu/ctxmenu/internal/tui"
)

// runDemo builds the document, attaches menus to its targets, and runs the
// terminal host.
func runDemo() error {
	loader := theme.NewLoader(config.ThemeDir(), logger)
	var th *theme.Theme
	if cfg.Theme.Path != "" {
		loaded, err := loader.LoadPath(cfg.Theme.Path)
		if err != nil {
			return fmt.Errorf("failed to load theme: %w", err)
		}
		th = loaded
	} else {
		th = loader.Load(cfg.Theme.Name)
	}

	doc := ctxmenu.NewDocument(80, 24, logger)
	ctrl := ctxmenu.New(doc, cfg, logger)

	renderer := tui.NewRenderer(th)
	doc.SetMeasurer(renderer.Measure)

	// Hot-reload the theme while the demo runs. Bundled themes have no
	// backing file and get no watcher.
	watcher, err := theme.NewWatcher(th, renderer.SetTheme, logger)
	if err != nil {
		logger.Warn("theme watcher unavailable", "error", err)
	} else if watcher != nil {
		if err := watcher.Start(); err != nil {
			logger.Warn("failed to start theme watcher", "error", err)
		} else {
			defer watcher.Stop()
		}
	}

	status := &tui.Status{}
	buildTargets(doc)

	def, err := demoDefinition(status)
	if err != nil {
		return err
	}
	ctrl.Attach(".target", def, ctxmenu.WithAnchor(cfg.Menu.Anchor))
	ctrl.OnClose(func(menuID string, reason ctxmenu.CloseReason) {
		logger.Debug("menu gone", "menu_id", menuID, "reason", string(reason))
	})

	model := tui.NewModel(doc, renderer, ctrl, status, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}
	return nil
}

// buildTargets inserts a few boxes the demo menus attach to.
func buildTargets(doc *ctxmenu.Document) {
	names := []string{"report.txt", "notes.md", "archive.tar"}
	for i, name := range names {
		el := ctxmenu.NewElement("box")
		el.SetID(fmt.Sprintf("target-%d", i))
		el.AddClass("target")
		el.SetContent("[ " + name + " ]")
		el.SetRect(ctxmenu.Rect{X: 4, Y: 2 + i*3, Width: len(name) + 4, Height: 1})
		doc.Insert(el)
	}

	hint := ctxmenu.NewElement("hint")
	hint.SetContent("right-click a target to open its menu, ? for help")
	hint.SetRect(ctxmenu.Rect{X: 4, Y: 12, Width: 50, Height: 1})
	doc.Insert(hint)
}

// demoDefinition returns the menu definition: from --menu when given,
// otherwise a built-in one. File-loaded items are bound to the same
// status-line handlers by key where the keys match.
func demoDefinition(status *tui.Status) (ctxmenu.Definition, error) {
	report := func(action string) ctxmenu.SelectFunc {
		return func(trigger *ctxmenu.Element, key string, row *ctxmenu.Element, data any) {
			status.Set(action + " " + trigger.ID())
		}
	}

	if globalOpts.menuFile != "" {
		def, err := ctxmenu.LoadDefinition(globalOpts.menuFile)
		if err != nil {
			return nil, err
		}
		for _, entry := range def {
			def.BindHandler(entry.Key, report(entry.Key))
		}
		return def, nil
	}

	return ctxmenu.Definition{
		{Key: "open", Spec: ctxmenu.Options{Label: "Open", Title: "Open the file", OnSelect: report("opened")}},
		{Key: "rename", Spec: ctxmenu.Do(report("renamed"))},
		{Key: "----", Spec: nil},
		{Key: "delete", Spec: ctxmenu.Options{Label: "Delete", Enabled: ctxmenu.Bool(false)}},
	}, nil
}
