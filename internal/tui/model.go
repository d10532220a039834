package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ctxmenu/ctxmenu/internal/surface"
)

// MenuState is the slice of the menu controller the host needs.
type MenuState interface {
	IsOpen() bool
	Close()
}

// triggerRight is the event dispatched for a right mouse press. Left
// presses dispatch the plain pointer-down event.
const triggerRight = "contextmenu"

// tickMsg drives the status line's relative timestamp.
type tickMsg time.Time

// Model is the Bubble Tea model hosting a document. It forwards terminal
// events into the document, flushes the deferred-tick queue after every
// update, and renders the tree with the open menu composited on top.
type Model struct {
	doc      *surface.Document
	renderer *Renderer
	menus    MenuState
	status   *Status
	logger   *slog.Logger

	keys     KeyMap
	help     help.Model
	showHelp bool
	ready    bool
}

// NewModel creates the host model.
func NewModel(doc *surface.Document, renderer *Renderer, menus MenuState, status *Status, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		doc:      doc,
		renderer: renderer,
		menus:    menus,
		status:   status,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Bottom row is the status line; the document gets the rest.
		m.doc.SetViewport(msg.Width, msg.Height-1)
		m.ready = true

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, m.keys.Close):
			m.menus.Close()
		}

	case tickMsg:
		cmd = tick()
	}

	// Run deferred work (menu measure/place/reveal) now that this event's
	// tree mutations are complete.
	m.doc.FlushTicks()

	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		m.doc.Dispatch(surface.Event{Name: surface.EventScroll})
		return
	}

	if msg.Action != tea.MouseActionPress {
		return
	}

	switch msg.Button {
	case tea.MouseButtonRight:
		m.doc.DispatchAt(triggerRight, msg.X, msg.Y)
	case tea.MouseButtonLeft:
		m.doc.DispatchAt(surface.EventPointerDown, msg.X, msg.Y)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	view := m.renderer.View(m.doc)

	statusLine := m.status.View()
	if m.showHelp {
		statusLine = m.help.View(m.keys)
	}
	return view + "\n" + statusLine
}
